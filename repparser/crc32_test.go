package repparser

import "testing"

func TestCRC32Success(t *testing.T) {
	body := []byte{0xDE, 0xAD, 0xBE, 0xEF}
	want := crc32Of(body)

	checkCRC32(body, want) // must not panic
}

func TestCRC32Mismatch(t *testing.T) {
	body := []byte{0xDE, 0xAD, 0xBE, 0xEF}
	want := crc32Of(body)

	for i := range body {
		flipped := append([]byte(nil), body...)
		flipped[i] ^= 0xFF

		func() {
			defer func() {
				r := recover()
				if r == nil {
					t.Fatalf("byte %d: expected panic on mismatched CRC", i)
				}
				e, ok := r.(*Error)
				if !ok || e.Kind != ChecksumMismatch {
					t.Fatalf("byte %d: expected ChecksumMismatch, got %v", i, r)
				}
			}()
			checkCRC32(flipped, want)
		}()
	}
}
