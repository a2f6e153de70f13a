package repparser

import "testing"

func TestGetSerializedIntBound(t *testing.T) {
	// limit=19; bit stream 1,0,0,0,1 (LSB-first within 0b00010001):
	// accept step 1 (v=1), skip 2, skip 4, skip 8, accept step 16
	// (1+16=17 <= 19) -> v=17.
	br := newBitReader([]byte{0b00010001})

	got := br.GetSerializedInt(19)
	if got != 17 {
		t.Fatalf("GetSerializedInt(19) = %d, want 17", got)
	}
}

func TestGetSerializedIntZeroLimit(t *testing.T) {
	br := newBitReader([]byte{0xFF})

	got := br.GetSerializedInt(0)
	if got != 0 {
		t.Fatalf("GetSerializedInt(0) = %d, want 0", got)
	}
	if br.bitPos != 0 {
		t.Fatalf("GetSerializedInt(0) consumed %d bits, want 0", br.bitPos)
	}
}

func TestGetSerializedIntWithinBound(t *testing.T) {
	for limit := uint32(1); limit <= 64; limit++ {
		for pattern := 0; pattern < 256; pattern++ {
			br := newBitReader([]byte{byte(pattern), byte(pattern >> 1), 0xFF, 0xFF})
			got := br.GetSerializedInt(limit)
			if got > limit {
				t.Fatalf("GetSerializedInt(%d) = %d, want <= %d", limit, got, limit)
			}
		}
	}
}

func TestGetBoolLSBFirst(t *testing.T) {
	br := newBitReader([]byte{0b00000101})

	if !br.GetBool() {
		t.Fatal("bit 0 should be set")
	}
	if br.GetBool() {
		t.Fatal("bit 1 should be clear")
	}
	if !br.GetBool() {
		t.Fatal("bit 2 should be set")
	}
}
