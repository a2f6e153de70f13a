// This file contains ByteReader, the byte-aligned, length-checked cursor
// used to decode the header section and the outer lists of the content
// section.

package repparser

import (
	"encoding/binary"
	"math"

	"github.com/rlreplay/rlrep/rep"
)

// ByteReader reads little-endian primitives from an in-memory byte slice,
// advancing a cursor. Every read that would run past the end of the slice
// panics with a *Error{Kind: IndexOutOfBounds}, recovered by
// parseProtected.
type ByteReader struct {
	b   []byte
	pos uint32
}

func newByteReader(b []byte) *ByteReader {
	return &ByteReader{b: b}
}

// require panics if n bytes aren't available from the current position.
func (r *ByteReader) require(n uint32) {
	if uint64(r.pos)+uint64(n) > uint64(len(r.b)) {
		fail(IndexOutOfBounds, "")
	}
}

// GetBytes returns the next n bytes and advances the cursor.
func (r *ByteReader) GetBytes(n uint32) []byte {
	r.require(n)
	b := r.b[r.pos : r.pos+n]
	r.pos += n
	return b
}

// GetByte returns the next byte.
func (r *ByteReader) GetByte() byte {
	return r.GetBytes(1)[0]
}

// GetBool reads a byte and reports whether it is non-zero.
func (r *ByteReader) GetBool() bool {
	return r.GetByte() != 0
}

// GetUint16 reads the next 2 bytes as a little-endian uint16.
func (r *ByteReader) GetUint16() uint16 {
	return binary.LittleEndian.Uint16(r.GetBytes(2))
}

// GetUint32 reads the next 4 bytes as a little-endian uint32.
func (r *ByteReader) GetUint32() uint32 {
	return binary.LittleEndian.Uint32(r.GetBytes(4))
}

// GetUint64 reads the next 8 bytes as a little-endian uint64.
func (r *ByteReader) GetUint64() uint64 {
	return binary.LittleEndian.Uint64(r.GetBytes(8))
}

// GetInt32 reads the next 4 bytes as a little-endian, two's complement
// int32.
func (r *ByteReader) GetInt32() int32 {
	return int32(r.GetUint32())
}

// GetFloat32 reads the next 4 bytes as a little-endian IEEE-754 float32.
func (r *ByteReader) GetFloat32() float32 {
	return math.Float32frombits(r.GetUint32())
}

// Remaining reports how many bytes are left to read.
func (r *ByteReader) Remaining() uint32 {
	return uint32(len(r.b)) - r.pos
}

// textNoneTerminator and textNoneTerminatorAlt are the two spellings a
// dictionary's terminating key can take on the wire.
const (
	textNoneTerminator    = "None\x00"
	textNoneTerminatorAlt = "\x00\x00\x00None\x00"
)

// sizeRewrite is the header length value that is read back as 8 bytes
// instead of taken at face value; present in replays whose label was
// patched after the fact.
const sizeRewrite = 0x05000000

// GetText reads a length-prefixed string: a negative size selects a
// UTF-16LE body (|size| UTF-16 code units), a non-negative size selects a
// Windows-1252 body of that many bytes (with the historical sizeRewrite
// exception).
func (r *ByteReader) GetText() rep.Text {
	size := r.GetInt32()

	if size < 0 {
		n := uint32(-size) * 2
		b := r.GetBytes(n)
		s, ok := decodeUTF16LE(b)
		if !ok {
			fail(InvalidUTF16, "")
		}
		return rep.Text{Size: size, Value: s}
	}

	n := size
	if n == sizeRewrite {
		n = 8
	}
	b := r.GetBytes(uint32(n))
	s, ok := decodeWindows1252(b)
	if !ok {
		fail(InvalidWindows1252, "")
	}
	return rep.Text{Size: size, Value: s}
}

// GetList reads a uint32 count followed by that many values, each decoded
// by decodeValue.
func GetList[T any](r *ByteReader, decodeValue func(*ByteReader) T) []T {
	n := r.GetUint32()
	values := make([]T, n)
	for i := range values {
		values[i] = decodeValue(r)
	}
	return values
}

// GetDictionary reads (key, value) pairs until a terminating key is found.
// The terminating key itself is returned as Terminator and is not appended
// to Entries.
func GetDictionary[T any](r *ByteReader, decodeValue func(*ByteReader) T) rep.Dictionary[T] {
	var d rep.Dictionary[T]
	for {
		key := r.GetText()
		if key.Value == textNoneTerminator || key.Value == textNoneTerminatorAlt {
			d.Terminator = key
			return d
		}
		value := decodeValue(r)
		d.Entries = append(d.Entries, rep.DictionaryEntry[T]{Key: key, Value: value})
	}
}
