// This file contains the types describing the replay content section: the
// outer lists (levels, keyframes, messages, marks, packages, objects,
// names, classes, caches) and the decoded frame stream.

package rep

// Content models the replay content section.
type Content struct {
	Levels    []Text
	Keyframes []Keyframe
	Messages  []Message
	Marks     []Mark
	Packages  []Text
	Objects   []Text
	Names     []Text
	Classes   []Class
	Caches    []Cache

	// Frames is the fully decoded per-frame replication stream. It is left
	// empty when the parser is configured with Config.Frames == false.
	Frames []Frame

	// Debug holds optional debug info.
	Debug *ContentDebug `json:"-"`
}

// Keyframe indexes into the frame stream for seeking.
type Keyframe struct {
	Time   float32
	Frame  uint32
	Offset uint32
}

// Message is a HUD/chat-style message tied to a frame.
type Message struct {
	Frame uint32
	Label Text
	Value Text
}

// Mark is a replay-scrubber bookmark tied to a frame.
type Mark struct {
	Value Text
	Frame uint32
}

// Class names a replicable type; ID is the class id used throughout the
// replication stream.
type Class struct {
	Name Text
	ID   uint32
}

// Cache is a per-class record mapping stream ids to object ids, with a
// parent link used to synthesize the full attribute table (see the class
// resolver in package repparser).
type Cache struct {
	ClassID          uint32
	ParentClassIndex uint32
	ClassIndex       uint32
	Objects          []CacheObject
}

// CacheObject is one stream-id -> object-id mapping entry of a Cache.
type CacheObject struct {
	ObjectID uint32
	StreamID uint32
}

// ContentDebug holds debug info for the content section.
type ContentDebug struct {
	// FrameBytes is the raw, bit-packed embedded frame blob.
	FrameBytes []byte
}
