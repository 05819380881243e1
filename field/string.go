package field

import (
	"fmt"
	"strings"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

// Fixed-width identifier fields are padded to their declared width with
// spaces or NULs; the decoders below strip that padding after conversion.
const fieldPadding = " \x00"

func isASCII(b []byte) bool {
	for _, c := range b {
		if c >= 0x80 {
			return false
		}
	}
	return true
}

// StringLatin1 decodes an n-byte Latin-1 identifier field at off.
func StringLatin1(b []byte, off, n int) (string, error) {
	raw, err := Slice(b, off, n)
	if err != nil {
		return "", err
	}
	// Fast path: ASCII is identical in Latin-1 and UTF-8.
	if isASCII(raw) {
		return strings.TrimRight(string(raw), fieldPadding), nil
	}
	decoded, err := charmap.ISO8859_1.NewDecoder().Bytes(raw)
	if err != nil {
		return "", fmt.Errorf("decode latin-1 field: %w", err)
	}
	return strings.TrimRight(string(decoded), fieldPadding), nil
}

// StringUCS2BE decodes an n-byte big-endian UCS-2 identifier field at off.
// n counts bytes, not code units, and must be even.
func StringUCS2BE(b []byte, off, n int) (string, error) {
	return stringUCS2(b, off, n, unicode.BigEndian)
}

// StringUCS2LE decodes an n-byte little-endian UCS-2 identifier field at off.
// n counts bytes, not code units, and must be even.
func StringUCS2LE(b []byte, off, n int) (string, error) {
	return stringUCS2(b, off, n, unicode.LittleEndian)
}

func stringUCS2(b []byte, off, n int, order unicode.Endianness) (string, error) {
	if n%2 != 0 {
		// An odd width cannot hold whole 16-bit units.
		return "", boundsErr(off, n, len(b))
	}
	raw, err := Slice(b, off, n)
	if err != nil {
		return "", err
	}
	decoded, err := unicode.UTF16(order, unicode.IgnoreBOM).NewDecoder().Bytes(raw)
	if err != nil {
		return "", fmt.Errorf("decode ucs-2 field: %w", err)
	}
	return strings.TrimRight(string(decoded), fieldPadding), nil
}
