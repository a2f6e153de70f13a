// This file contains the header section decoder: version, label and
// property dictionary.

package repparser

import "github.com/rlreplay/rlrep/rep"

func decodeHeader(r *ByteReader) *rep.Header {
	major := r.GetUint32()
	minor := r.GetUint32()

	var patch uint32
	hasPatch := rep.HasPatchField(major, minor)
	if hasPatch {
		patch = r.GetUint32()
	}

	version := rep.NewVersion(major, minor, patch, hasPatch)

	return &rep.Header{
		Version:    version,
		Label:      r.GetText(),
		Properties: GetDictionary(r, decodeProperty),
	}
}

// numFramesKey and maxChannelsKey are the header property labels the
// replication decoder reads its bounds from.
const (
	numFramesKey       = "NumFrames\x00"
	maxChannelsKey     = "MaxChannels\x00"
	defaultMaxChannels = 1023
)

// headerInt reads an Int property by label, falling back to def if the
// property isn't present.
func headerInt(props rep.Dictionary[rep.Property], label string, def uint32) uint32 {
	for _, e := range props.Entries {
		if e.Key.Value == label && e.Value.Value.Kind == rep.PropertyInt {
			return e.Value.Value.Int
		}
	}
	return def
}
