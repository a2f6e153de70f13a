package repparser

import "testing"

func TestDecodeWindows1252RoundTrip(t *testing.T) {
	// "Hi\x00" in the representable ASCII subset of Windows-1252.
	s, ok := decodeWindows1252([]byte{'H', 'i', 0x00})
	if !ok {
		t.Fatal("decode failed")
	}
	if s != "Hi\x00" {
		t.Fatalf("got %q", s)
	}
}

func TestDecodeWindows1252Undefined(t *testing.T) {
	for _, b := range []byte{0x81, 0x8D, 0x8F, 0x90, 0x9D} {
		if _, ok := decodeWindows1252([]byte{b}); ok {
			t.Fatalf("byte 0x%02x should be undefined in Windows-1252", b)
		}
	}
}

func TestDecodeUTF16LERoundTrip(t *testing.T) {
	// "Hi\x00" as UTF-16LE code units.
	b := []byte{'H', 0x00, 'i', 0x00, 0x00, 0x00}
	s, ok := decodeUTF16LE(b)
	if !ok {
		t.Fatal("decode failed")
	}
	if s != "Hi\x00" {
		t.Fatalf("got %q", s)
	}
}

func TestDecodeUTF16LEUnpairedSurrogate(t *testing.T) {
	// 0xD800 is a lone high surrogate with no following low surrogate.
	b := []byte{0x00, 0xD8}
	if _, ok := decodeUTF16LE(b); ok {
		t.Fatal("expected decode failure for unpaired surrogate")
	}
}
