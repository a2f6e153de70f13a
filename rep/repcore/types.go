// This file contains general types shared across the replay data model.

package repcore

import "fmt"

// Point describes a three-component coordinate, used for actor locations,
// rotations and rigid body velocities. The component type varies by use
// (int32 for absolute coordinates, *int8 for optional rotation components).
type Point[T any] struct {
	X, Y, Z T
}

// String returns a string representation of the point in the format:
//
//	"x=X, y=Y, z=Z"
func (p Point[T]) String() string {
	return fmt.Sprint("x=", p.X, ", y=", p.Y, ", z=", p.Z)
}
