// This file contains the closed error taxonomy the parser raises and
// parseProtected recovers into ordinary returned errors.

package repparser

import "fmt"

// Kind identifies one of the closed set of ways a replay can fail to
// decode.
type Kind int

const (
	IndexOutOfBounds Kind = iota
	ChecksumMismatch
	InvalidUTF16
	InvalidWindows1252
	UnknownProperty
	UnknownName
	UnknownObject
	UnknownClass
	UnknownObjectClass
	UnknownStreamID
	UnknownAttributeIndex
	UnknownAttribute
	UnknownActor
)

var kindNames = [...]string{
	"index out of bounds",
	"checksum mismatch",
	"invalid UTF-16",
	"invalid Windows-1252",
	"unknown property",
	"unknown name",
	"unknown object",
	"unknown class",
	"unknown object class",
	"unknown stream id",
	"unknown attribute index",
	"unknown attribute",
	"unknown actor",
}

func (k Kind) String() string {
	if int(k) < 0 || int(k) >= len(kindNames) {
		return "unknown error"
	}
	return kindNames[k]
}

// Error is the single error type every decode failure is reported as. It is
// raised as a panic at the point of failure and turned into a normal
// returned error by parseProtected, which is the only place recover() is
// used in this package.
type Error struct {
	Kind Kind

	// Detail gives the offending value (a property label, class name,
	// stream id, …) where one is available.
	Detail string
}

func (e *Error) Error() string {
	if e.Detail == "" {
		return e.Kind.String()
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Detail)
}

// fail panics with a *Error of the given kind. Every raw-data rejection in
// this package goes through fail so parseProtected can recover it.
func fail(kind Kind, detail string) {
	panic(&Error{Kind: kind, Detail: detail})
}
