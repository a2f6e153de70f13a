// This file contains the Replay type and its components which model a
// complete Rocket League replay.

package rep

// Replay models a Rocket League replay file: a header section followed by
// a content section, each stored with its own size and CRC-32.
type Replay struct {
	// Header of the replay.
	Header *Section[*Header]

	// Content of the replay: lists, frames and the replication stream.
	Content *Section[*Content]
}

// Section wraps a decoded value together with the on-disk size and CRC-32
// of the bytes it was decoded from.
type Section[T any] struct {
	// Size is the byte length of the section body (excludes the size and
	// CRC fields themselves).
	Size uint32

	// CRC is the stored checksum of the section body.
	CRC uint32

	// Value is the decoded section payload.
	Value T
}
