package common

import (
	"unicode/utf16"
)

// ToBytes converts typed text to the exact bytes that get hashed.
// Key text is printable ASCII, so this is a plain UTF-8 byte copy:
// percent-escaping and un-escaping the string yields the same bytes.
func ToBytes(text string) []byte {
	return []byte(text)
}

// TextLength returns the length of text in UTF-16 code units.
// Equals len(text) for ASCII input
func TextLength(text string) int {
	n := 0
	for _, r := range text {
		// invalid UTF-8 decodes as U+FFFD, one unit
		n += max(utf16.RuneLen(r), 1)
	}
	return n
}
