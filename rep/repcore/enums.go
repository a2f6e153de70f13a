// This file contains general enum types.

package repcore

import "fmt"

// Enum is the base / common part of enum types.
type Enum struct {
	// Name of the entity
	Name string
}

// String returns the string representation of the enum (the name).
// Defined with value receiver so this gets called even if a non-pointer is used.
func (e Enum) String() string {
	return e.Name
}

// UnknownEnum constructs a new Enum for an unknown entity with a name:
//
//	"Unknown 0xID"
//
// ID must be an integer number.
func UnknownEnum(ID any) Enum {
	return Enum{fmt.Sprintf("Unknown 0x%x", ID)}
}

// RemoteIDSystem identifies the platform a UniqueId's remote id belongs to.
type RemoteIDSystem struct {
	Enum

	// ID as it appears on the wire (the UniqueId system byte)
	ID byte
}

// RemoteIDSystems is an enumeration of the known platform systems.
var RemoteIDSystems = []*RemoteIDSystem{
	{Enum{"Local"}, 0x00},
	{Enum{"Steam"}, 0x01},
	{Enum{"PlayStation"}, 0x02},
	{Enum{"Xbox"}, 0x04},
	{Enum{"Switch"}, 0x06},
}

// Named remote id systems
var (
	RemoteIDSystemLocal       = RemoteIDSystems[0]
	RemoteIDSystemSteam       = RemoteIDSystems[1]
	RemoteIDSystemPlayStation = RemoteIDSystems[2]
	RemoteIDSystemXbox        = RemoteIDSystems[3]
	RemoteIDSystemSwitch      = RemoteIDSystems[4]
)

// RemoteIDSystemByID returns the RemoteIDSystem for a given wire ID.
// A new RemoteIDSystem with Unknown name is returned if one is not found
// for the given ID (preserving the unknown ID); the caller must still treat
// an unrecognized system byte as fatal per the attribute dispatcher contract.
func RemoteIDSystemByID(ID byte) *RemoteIDSystem {
	for _, s := range RemoteIDSystems {
		if s.ID == ID {
			return s
		}
	}
	return &RemoteIDSystem{UnknownEnum(ID), ID}
}
