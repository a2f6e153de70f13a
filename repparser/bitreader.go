// This file contains BitReader, the bit-granular cursor the replication
// decoder and attribute dispatcher read the embedded frame stream with.
// Bits are consumed LSB-first within each byte.

package repparser

import (
	"math"

	"github.com/rlreplay/rlrep/rep"
)

// BitReader reads individual bits, and the fixed- and variable-width
// values built from them, out of a byte slice. Reading past the end of the
// slice panics with a *Error{Kind: IndexOutOfBounds}, recovered by
// parseProtected.
type BitReader struct {
	b      []byte
	bitPos uint64
}

func newBitReader(b []byte) *BitReader {
	return &BitReader{b: b}
}

// GetBool reads a single bit and reports whether it is set.
func (r *BitReader) GetBool() bool {
	byteIndex := r.bitPos / 8
	if byteIndex >= uint64(len(r.b)) {
		fail(IndexOutOfBounds, "")
	}
	bitIndex := r.bitPos % 8
	r.bitPos++
	return r.b[byteIndex]&(1<<bitIndex) != 0
}

// GetBits reads n bits (n <= 64), LSB-first, and assembles them into an
// integer with the first bit read as the least significant bit.
func (r *BitReader) GetBits(n int) uint64 {
	var v uint64
	for i := 0; i < n; i++ {
		if r.GetBool() {
			v |= 1 << uint(i)
		}
	}
	return v
}

// GetByte reads 8 bits as a byte.
func (r *BitReader) GetByte() byte {
	return byte(r.GetBits(8))
}

// GetInt8 reads 8 bits as a two's complement int8.
func (r *BitReader) GetInt8() int8 {
	return int8(r.GetBits(8))
}

// GetUint32 reads 32 bits as a uint32.
func (r *BitReader) GetUint32() uint32 {
	return uint32(r.GetBits(32))
}

// GetInt32 reads 32 bits as a two's complement int32.
func (r *BitReader) GetInt32() int32 {
	return int32(r.GetBits(32))
}

// GetFloat32 reads 32 bits as an IEEE-754 float32.
func (r *BitReader) GetFloat32() float32 {
	return math.Float32frombits(r.GetUint32())
}

// GetBitsAsBools reads n bits and returns each as a bool, in read order.
func (r *BitReader) GetBitsAsBools(n int) []bool {
	bits := make([]bool, n)
	for i := range bits {
		bits[i] = r.GetBool()
	}
	return bits
}

// serializedIntMaxIndex returns ceil(log2(limit)): the smallest n such that
// 1<<n >= limit. limit == 0 is handled by the caller as a special case.
func serializedIntMaxIndex(limit uint32) uint32 {
	var n uint32
	for (uint64(1) << n) < uint64(limit) {
		n++
	}
	return n
}

// GetSerializedInt reads the format's variable-width, bounded, prefix-free
// integer encoding: a value in [0, limit], consuming as few bits as the
// bound allows. limit == 0 consumes no bits and returns 0.
func (r *BitReader) GetSerializedInt(limit uint32) uint32 {
	if limit == 0 {
		return 0
	}

	maxIndex := serializedIntMaxIndex(limit)
	var value uint32
	for index := uint32(0); ; index++ {
		step := uint32(1) << index
		if index >= maxIndex || value+step > limit {
			break
		}
		if r.GetBool() {
			value += step
		}
	}
	return value
}

// GetText reads a length-prefixed string out of the bit stream using the
// same size/encoding rule as ByteReader.GetText; the attribute dispatcher
// uses this for inline strings (product names, reservation names, …) that
// appear inside the replication stream rather than the header's text
// tables.
func (r *BitReader) GetText() rep.Text {
	size := r.GetInt32()

	if size < 0 {
		n := int(-size) * 2
		b := make([]byte, n)
		for i := range b {
			b[i] = r.GetByte()
		}
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
	b := make([]byte, n)
	for i := range b {
		b[i] = r.GetByte()
	}
	s, ok := decodeWindows1252(b)
	if !ok {
		fail(InvalidWindows1252, "")
	}
	return rep.Text{Size: size, Value: s}
}

// GetBitOption reads a presence bit, then, if set, the value produced by
// decodeValue. Go methods can't be generic, so this is a package function
// taking the reader explicitly.
func GetBitOption[T any](r *BitReader, decodeValue func(*BitReader) T) *T {
	if !r.GetBool() {
		return nil
	}
	v := decodeValue(r)
	return &v
}
