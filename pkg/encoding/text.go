// Package encoding provides text decoding helpers for palette files.
package encoding

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

const bom = "\ufeff"

// DecodeLine returns data as a UTF-8 string.
// Valid UTF-8 is returned unchanged; anything else is treated as Windows-1252,
// the encoding older palette editors on Windows saved with.
func DecodeLine(data []byte) string {
	if utf8.Valid(data) {
		return string(data)
	}
	// Windows-1252 maps every byte, so decoding cannot fail
	result, _, _ := transform.Bytes(charmap.Windows1252.NewDecoder(), data)
	return string(result)
}

// TrimBOM removes a leading UTF-8 byte order mark.
func TrimBOM(s string) string {
	return strings.TrimPrefix(s, bom)
}
