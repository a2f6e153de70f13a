package repparser

import (
	"math"
	"testing"

	"github.com/rlreplay/rlrep/rep"
)

func TestDecodeFrameDestroyedAndCreated(t *testing.T) {
	w := &bitWriter{}

	const maxChannels = 1023
	timeBits := math.Float32bits(1.5)
	deltaBits := math.Float32bits(0.016)

	w.writeBits(uint64(timeBits), 32)
	w.writeBits(uint64(deltaBits), 32)

	// Replication 1: Destroyed, actor 3.
	w.writeBool(true) // another replication follows
	w.writeSerializedInt(3, maxChannels)
	w.writeBool(false) // is_open = false -> Destroyed

	// Replication 2: Created, actor 7, object index 10, no location/rotation.
	w.writeBool(true) // another replication follows
	w.writeSerializedInt(7, maxChannels)
	w.writeBool(true)  // is_open
	w.writeBool(true)  // is_new -> Created
	w.writeBool(false) // unknown
	w.writeBits(10, 32) // object_index

	w.writeBool(false) // no more replications

	br := newBitReader(w.bytes())

	objects := make([]string, 11)
	objects[10] = "SomeObject\x00"

	ctx := &decodeContext{
		names:       nil,
		objects:     objects,
		classes:     newClassByObjectIndex([]rep.Class{{Name: rep.Text{Value: "TAGame.Default__\x00"}, ID: 5}}),
		classAttrs:  map[uint32]classAttributes{},
		version:     rep.NewVersion(1, 0, 0, false),
		maxChannels: maxChannels,
		liveActors:  make(map[uint32]uint32),
	}

	frame := decodeFrame(br, ctx)

	if frame.Time != 1.5 {
		t.Fatalf("Time = %v, want 1.5", frame.Time)
	}
	if len(frame.Replications) != 2 {
		t.Fatalf("got %d replications, want 2", len(frame.Replications))
	}

	rep1 := frame.Replications[0]
	if rep1.Actor != 3 {
		t.Fatalf("replication 1 actor = %d, want 3", rep1.Actor)
	}
	if _, ok := rep1.Value.(rep.Destroyed); !ok {
		t.Fatalf("replication 1 value = %T, want rep.Destroyed", rep1.Value)
	}

	rep2 := frame.Replications[1]
	if rep2.Actor != 7 {
		t.Fatalf("replication 2 actor = %d, want 7", rep2.Actor)
	}
	created, ok := rep2.Value.(*rep.Created)
	if !ok {
		t.Fatalf("replication 2 value = %T, want *rep.Created", rep2.Value)
	}
	if created.ObjectIndex != 10 {
		t.Fatalf("ObjectIndex = %d, want 10", created.ObjectIndex)
	}
	if created.ClassID != 5 {
		t.Fatalf("ClassID = %d, want 5", created.ClassID)
	}
	if created.Location != nil || created.Rotation != nil {
		t.Fatal("a class absent from both capability sets should carry neither location nor rotation")
	}
	if ctx.liveActors[7] != 5 {
		t.Fatalf("liveActors[7] = %d, want 5", ctx.liveActors[7])
	}
}
