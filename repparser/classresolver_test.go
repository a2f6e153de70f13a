package repparser

import (
	"testing"

	"github.com/rlreplay/rlrep/rep"
)

func TestResolveClassAttributesChildShadowsParent(t *testing.T) {
	caches := []rep.Cache{
		{
			ClassID:          1,
			ParentClassIndex: 0,
			ClassIndex:       1,
			Objects: []rep.CacheObject{
				{ObjectID: 100, StreamID: 0},
			},
		},
		{
			ClassID:          2,
			ParentClassIndex: 1,
			ClassIndex:       2,
			Objects: []rep.CacheObject{
				{ObjectID: 200, StreamID: 0}, // shadows the parent's stream id 0
				{ObjectID: 201, StreamID: 1},
			},
		},
	}

	attrs := resolveClassAttributes(caches)

	child := attrs[2]
	if got := child[0]; got != 200 {
		t.Fatalf("child.attrs[0] = %d, want 200 (child shadows parent)", got)
	}
	if got := child[1]; got != 201 {
		t.Fatalf("child.attrs[1] = %d, want 201", got)
	}

	parent := attrs[1]
	if got := parent[0]; got != 100 {
		t.Fatalf("parent.attrs[0] = %d, want 100", got)
	}
}

func TestResolveClassAttributesClosestAncestor(t *testing.T) {
	caches := []rep.Cache{
		{ClassID: 1, ParentClassIndex: 0, ClassIndex: 1, Objects: []rep.CacheObject{{ObjectID: 10, StreamID: 0}}},
		{ClassID: 2, ParentClassIndex: 5, ClassIndex: 3, Objects: []rep.CacheObject{{ObjectID: 20, StreamID: 1}}},
	}

	attrs := resolveClassAttributes(caches)

	// No exact class_index == 5 entry exists; the closest entry with
	// class_index <= 5 is class 1 (class_index 1).
	child := attrs[2]
	if got := child[0]; got != 10 {
		t.Fatalf("child.attrs[0] = %d, want 10 (inherited via closest ancestor)", got)
	}
}

func TestClassByObjectIndexGreatestLowerBound(t *testing.T) {
	idx := newClassByObjectIndex([]rep.Class{
		{Name: rep.Text{Value: "A\x00"}, ID: 10},
		{Name: rep.Text{Value: "B\x00"}, ID: 20},
		{Name: rep.Text{Value: "C\x00"}, ID: 30},
	})

	id, name, ok := idx.Lookup(25)
	if !ok || id != 20 || name != "B\x00" {
		t.Fatalf("Lookup(25) = (%d, %q, %v), want (20, \"B\\x00\", true)", id, name, ok)
	}

	if _, _, ok := idx.Lookup(5); ok {
		t.Fatal("Lookup(5) should fail: no class id below 5")
	}
}
