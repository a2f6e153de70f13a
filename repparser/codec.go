// This file contains the two text codecs the wire format's Text values are
// decoded with, built on golang.org/x/text rather than hand-ported tables.

package repparser

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

// utf16Codec decodes little-endian UTF-16 with no byte-order mark.
var utf16Codec = unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)

// decodeWindows1252 decodes b as Windows-1252. Five byte values (0x81,
// 0x8D, 0x8F, 0x90, 0x9D) are undefined in that code page; charmap decodes
// them as the matching C1 control code points, so decodeWindows1252 rejects
// them explicitly and reports failure.
func decodeWindows1252(b []byte) (string, bool) {
	s := make([]byte, 0, len(b))
	for _, c := range b {
		switch c {
		case 0x81, 0x8D, 0x8F, 0x90, 0x9D:
			return "", false
		}
		r := charmap.Windows1252.DecodeByte(c)
		if r == utf8.RuneError {
			return "", false
		}
		s = utf8.AppendRune(s, r)
	}
	return string(s), true
}

// decodeUTF16LE decodes b as little-endian UTF-16. The x/text decoder
// substitutes U+FFFD for unpaired surrogates rather than erroring, so an
// unpaired surrogate is detected by scanning the result for the
// replacement rune and rejected.
func decodeUTF16LE(b []byte) (string, bool) {
	decoded, err := utf16Codec.NewDecoder().Bytes(b)
	if err != nil {
		return "", false
	}
	s := string(decoded)
	if strings.ContainsRune(s, utf8.RuneError) {
		return "", false
	}
	return s, true
}
