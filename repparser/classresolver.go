// This file contains the class resolver: it turns the content section's
// flat caches list into a class_id -> (stream_id -> object_id) attribute
// table, and the classes list into a greatest-lower-bound index used to
// recover a class from an object index.

package repparser

import (
	"sort"

	"github.com/rlreplay/rlrep/rep"
)

// classAttributes maps a stream id to the object id it names, for one
// resolved class.
type classAttributes map[uint32]uint32

// maxKey returns the largest key in m, or 0 if m is empty.
func (m classAttributes) maxKey() uint32 {
	var max uint32
	for k := range m {
		if k > max {
			max = k
		}
	}
	return max
}

// recentClass is one entry of the resolver's most-recent-first parent
// search stack.
type recentClass struct {
	classIndex uint32
	classID    uint32
}

// resolveClassAttributes builds class_id -> attrs by walking caches in
// file order, accumulating each class's own stream_id/object_id pairs and
// merging in its resolved parent's attributes without overriding entries
// the class already defines itself.
func resolveClassAttributes(caches []rep.Cache) map[uint32]classAttributes {
	classIDToAttrs := make(map[uint32]classAttributes, len(caches))
	var recent []recentClass

	for _, cache := range caches {
		attrs := make(classAttributes, len(cache.Objects))
		for _, o := range cache.Objects {
			attrs[o.StreamID] = o.ObjectID
		}

		parentClassID, found := findParent(recent, cache.ParentClassIndex)
		if found {
			if parentAttrs, ok := classIDToAttrs[parentClassID]; ok {
				for streamID, objectID := range parentAttrs {
					if _, exists := attrs[streamID]; !exists {
						attrs[streamID] = objectID
					}
				}
			}
		}

		classIDToAttrs[cache.ClassID] = attrs
		recent = append([]recentClass{{cache.ClassIndex, cache.ClassID}}, recent...)
	}

	return classIDToAttrs
}

// findParent looks for an exact class_index match first, then falls back
// to the closest ancestor (the most recent entry with class_index <=
// parentClassIndex).
func findParent(recent []recentClass, parentClassIndex uint32) (classID uint32, found bool) {
	for _, e := range recent {
		if e.classIndex == parentClassIndex {
			return e.classID, true
		}
	}
	for _, e := range recent {
		if e.classIndex <= parentClassIndex {
			return e.classID, true
		}
	}
	return 0, false
}

// classByObjectIndex answers the greatest-lower-bound query Created
// replications use to recover a class from an object index: the class
// whose id is the largest one strictly less than the object index.
type classByObjectIndex struct {
	ids   []uint32
	names []string
}

func newClassByObjectIndex(classes []rep.Class) *classByObjectIndex {
	sorted := make([]rep.Class, len(classes))
	copy(sorted, classes)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].ID < sorted[j].ID })

	idx := &classByObjectIndex{
		ids:   make([]uint32, len(sorted)),
		names: make([]string, len(sorted)),
	}
	for i, c := range sorted {
		idx.ids[i] = c.ID
		idx.names[i] = c.Name.Value
	}
	return idx
}

// Lookup returns the class with the largest id strictly less than
// objectIndex.
func (idx *classByObjectIndex) Lookup(objectIndex uint32) (classID uint32, className string, ok bool) {
	i := sort.Search(len(idx.ids), func(i int) bool { return idx.ids[i] >= objectIndex })
	if i == 0 {
		return 0, "", false
	}
	i--
	return idx.ids[i], idx.names[i], true
}
