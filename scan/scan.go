// Package scan counts and decodes multibyte text for diagnostic and
// display purposes. Encodings are explicit; no locale state is consulted.
package scan

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

// ErrOddLength indicates UTF-16 input with an odd byte count.
var ErrOddLength = errors.New("scan: utf16 input has odd length")

// RuneLen returns the number of characters in the UTF-8 bytes b. Each
// invalid byte counts as one character.
func RuneLen(b []byte) int {
	return utf8.RuneCount(b)
}

// UTF16Len returns the number of characters in the UTF-16LE bytes b.
// Surrogate pairs count as one character.
func UTF16Len(b []byte) (int, error) {
	if len(b)%2 != 0 {
		return 0, ErrOddLength
	}
	if len(b) == 0 {
		return 0, nil
	}
	dec := unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM).NewDecoder()
	decoded, err := dec.Bytes(b)
	if err != nil {
		return 0, fmt.Errorf("scan: utf16 decode: %w", err)
	}
	return utf8.RuneCount(decoded), nil
}

// Latin1String decodes Windows-1252 bytes to a string.
func Latin1String(b []byte) (string, error) {
	// Fast path: ASCII is identical in Windows-1252 and UTF-8.
	if isASCII(b) {
		return string(b), nil
	}
	decoded, err := charmap.Windows1252.NewDecoder().Bytes(b)
	if err != nil {
		return "", fmt.Errorf("scan: windows-1252 decode: %w", err)
	}
	return string(decoded), nil
}

func isASCII(b []byte) bool {
	for _, c := range b {
		if c >= 0x80 {
			return false
		}
	}
	return true
}
