// This file contains the types describing the replay header: the version,
// label and property dictionary.

package rep

import "github.com/blang/semver/v4"

// Header models the replay header section.
type Header struct {
	// Version of the engine that wrote the replay.
	Version Version

	// Label is the header's free-form title text (usually "TAGame.Replay_Soccar_TA").
	Label Text

	// Properties is the header's property dictionary (NumFrames, MaxChannels,
	// player/team metadata, …).
	Properties Dictionary[Property]

	// Debug holds optional debug info.
	Debug *HeaderDebug `json:"-"`
}

// Version is the replay's engine version. Patch is present only for
// versions where (Major, Minor) >= (868, 18); HasPatch records whether a
// patch value was actually present on the wire, since a versionless Patch
// field would be ambiguous with patch 0.
type Version struct {
	semver.Version
	HasPatch bool
}

// minPatchVersion is the (major, minor) threshold at and above which the
// header carries a patch component.
var minPatchVersion = semver.Version{Major: 868, Minor: 18}

// NewVersion builds a Version from its components. HasPatch is taken as
// given; callers decoding a header compute it with HasPatchField.
func NewVersion(major, minor uint32, patch uint32, hasPatch bool) Version {
	v := Version{
		Version: semver.Version{Major: uint64(major), Minor: uint64(minor), Patch: uint64(patch)},
	}
	v.HasPatch = hasPatch
	return v
}

// HasPatchField tells whether the header version carries a patch component,
// i.e. whether (Major, Minor) >= (868, 18).
func HasPatchField(major, minor uint32) bool {
	v := semver.Version{Major: uint64(major), Minor: uint64(minor)}
	return v.GTE(minPatchVersion)
}

// nameIndexVersion is the version at and above which a Created replication
// carries an explicit name_index field.
var nameIndexVersion = semver.Version{Major: 868, Minor: 14, Patch: 0}

// HasNameIndex tells whether a Created replication carries a name_index
// field at the given engine version.
func (v Version) HasNameIndex() bool {
	return v.Version.GTE(nameIndexVersion)
}

// Text is a length-prefixed, NUL-terminated string as it appears in the
// wire format. Size is the raw size field (negative for UTF-16LE, otherwise
// Windows-1252, per the encoding rule in ByteReader.GetText).
type Text struct {
	Size  int32
	Value string
}

// Dictionary is an insertion-ordered sequence of (Text, T) pairs terminated
// by a sentinel key. Terminator is the key text that ended the sequence
// ("None\x00" or "\x00\x00\x00None\x00").
type Dictionary[T any] struct {
	Entries    []DictionaryEntry[T]
	Terminator Text
}

// DictionaryEntry is one key/value pair of a Dictionary.
type DictionaryEntry[T any] struct {
	Key   Text
	Value T
}

// PropertyKind identifies which field of a PropertyValue is populated.
type PropertyKind byte

const (
	PropertyArray PropertyKind = iota
	PropertyBool
	PropertyByte
	PropertyFloat
	PropertyInt
	PropertyName
	PropertyQWord
	PropertyStr
)

// Property is a single header dictionary entry's typed value.
type Property struct {
	Label Text
	Size  uint64
	Value PropertyValue
}

// PropertyValue is the closed sum of property payload shapes. Exactly the
// field(s) matching Kind are meaningful.
type PropertyValue struct {
	Kind PropertyKind

	Array []Dictionary[Property]

	Bool byte

	// ByteKey/ByteValue back the Byte variant. ByteValue is nil iff
	// ByteKey.Value == "OnlinePlatform_Steam\x00".
	ByteKey   Text
	ByteValue *Text

	Float float32

	Int uint32

	Name Text

	QWord uint64

	Str Text
}

// HeaderDebug holds debug info for the header section.
type HeaderDebug struct {
	// Data is the raw, uncompressed data of the section.
	Data []byte
}
