// This file contains the types describing one decoded tick of the
// replication stream: Frame, Replication and its Created/Updated/Destroyed
// variants.

package rep

import "github.com/rlreplay/rlrep/rep/repcore"

// Frame is one game tick: a timestamp, the delta since the previous tick,
// and the ordered replications that occurred on it.
type Frame struct {
	Time         float32
	Delta        float32
	Replications []Replication
}

// Replication is a single per-frame event on an actor channel.
type Replication struct {
	// Actor is the channel id the event applies to.
	Actor uint32

	// Value is one of *Created, *Updated or Destroyed.
	Value ReplicationValue
}

// ReplicationValue is the closed sum of replication event shapes.
type ReplicationValue interface {
	replicationValue()
}

// Created records a new actor coming into existence on a channel.
type Created struct {
	Unknown bool

	// NameIndex is present iff the header version carries name_index
	// (Version.HasNameIndex()).
	NameIndex *uint32
	Name      *Text

	ObjectIndex uint32
	Object      Text

	ClassID   uint32
	ClassName Text

	// Location is present iff ClassName names a class with location
	// capability (see repparser's class-name capability sets).
	Location *repcore.Point[int32]

	// Rotation is present iff ClassName names a class with rotation
	// capability. Each component is independently optional.
	Rotation *repcore.Point[*int8]
}

func (*Created) replicationValue() {}

// Updated carries the attribute updates applied to an already-created
// actor.
type Updated struct {
	Attributes []Attribute
}

func (*Updated) replicationValue() {}

// Destroyed marks an actor channel as closed.
type Destroyed struct{}

func (Destroyed) replicationValue() {}
