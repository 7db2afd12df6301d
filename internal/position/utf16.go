// Package position converts between LSP UTF-16 positions and Go byte
// offsets.
package position

import (
	"unicode/utf16"
	"unicode/utf8"
)

// UTF16ToByteOffset converts a UTF-16 code unit offset to a byte offset.
// LSP positions use UTF-16 code units, but Go strings are UTF-8 byte
// sequences. Offsets landing inside a surrogate pair clamp to the start
// of the rune.
func UTF16ToByteOffset(s string, utf16Col int) int {
	if utf16Col <= 0 {
		return 0
	}

	units := 0
	byteOffset := 0

	for byteOffset < len(s) && units < utf16Col {
		r, size := utf8.DecodeRuneInString(s[byteOffset:])
		if r == utf8.RuneError && size == 1 {
			// Invalid UTF-8 byte; treat as a single unit
			byteOffset++
			units++
			continue
		}

		runeUTF16Len := utf16.RuneLen(r)
		if runeUTF16Len == 2 && units+1 == utf16Col {
			break
		}

		units += runeUTF16Len
		byteOffset += size
	}

	return byteOffset
}

// StringLengthUTF16 returns the length of s in UTF-16 code units.
func StringLengthUTF16(s string) int {
	utf16Count := 0
	for _, r := range s {
		utf16Count += utf16.RuneLen(r)
	}
	return utf16Count
}
