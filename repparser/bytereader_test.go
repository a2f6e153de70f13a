package repparser

import (
	"encoding/binary"
	"testing"

	"github.com/rlreplay/rlrep/rep"
)

func leUint32(v uint32) []byte {
	b := make([]byte, 4)
	binary.LittleEndian.PutUint32(b, v)
	return b
}

func TestGetTextWindows1252(t *testing.T) {
	body := append(leUint32(3), []byte("Hi\x00")...)
	r := newByteReader(body)

	text := r.GetText()
	if text.Value != "Hi\x00" {
		t.Fatalf("got %q", text.Value)
	}
	if r.Remaining() != 0 {
		t.Fatalf("remaining = %d, want 0", r.Remaining())
	}
}

func TestGetTextUTF16LE(t *testing.T) {
	body := append(leUint32(uint32(int32(-3))), []byte{'H', 0x00, 'i', 0x00, 0x00, 0x00}...)
	r := newByteReader(body)

	text := r.GetText()
	if text.Value != "Hi\x00" {
		t.Fatalf("got %q", text.Value)
	}
}

func TestGetTextSizeRewrite(t *testing.T) {
	body := append(leUint32(sizeRewrite), []byte("1234567\x00")...)
	r := newByteReader(body)

	text := r.GetText()
	if text.Value != "1234567\x00" {
		t.Fatalf("got %q", text.Value)
	}
}

func TestGetDictionaryTerminators(t *testing.T) {
	for _, terminator := range []string{textNoneTerminator, textNoneTerminatorAlt} {
		body := append(leUint32(uint32(len(terminator))), []byte(terminator)...)
		r := newByteReader(body)

		d := GetDictionary(r, func(r *ByteReader) rep.Property { return rep.Property{} })
		if len(d.Entries) != 0 {
			t.Fatalf("expected no entries, got %d", len(d.Entries))
		}
		if d.Terminator.Value != terminator {
			t.Fatalf("terminator = %q, want %q", d.Terminator.Value, terminator)
		}
	}
}

func TestGetBytesOutOfBounds(t *testing.T) {
	r := newByteReader([]byte{0x01, 0x02})

	defer func() {
		rec := recover()
		if rec == nil {
			t.Fatal("expected panic")
		}
		e, ok := rec.(*Error)
		if !ok || e.Kind != IndexOutOfBounds {
			t.Fatalf("expected IndexOutOfBounds, got %v", rec)
		}
	}()

	r.GetBytes(3)
}
