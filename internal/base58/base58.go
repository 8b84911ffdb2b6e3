package base58

import (
	"errors"
	"fmt"
	"strings"

	mrbase58 "github.com/mr-tron/base58"
)

// Alphabet is the Bitcoin base-58 alphabet (no 0, O, I, l)
const Alphabet = "123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"

// ErrInvalidCharacter is returned when decoding text with a symbol outside Alphabet
var ErrInvalidCharacter = errors.New("invalid base58 character")

var alphabet = mrbase58.NewAlphabet(Alphabet)

// Encode converts bytes to base-58 text. Each leading zero byte becomes one '1'.
func Encode(input []byte) string {
	if len(input) == 0 {
		return ""
	}
	return mrbase58.EncodeAlphabet(input, alphabet)
}

// Decode converts base-58 text back to bytes, restoring leading zero bytes
func Decode(text string) ([]byte, error) {
	if text == "" {
		return []byte{}, nil
	}
	if i := strings.IndexFunc(text, func(r rune) bool {
		return !strings.ContainsRune(Alphabet, r)
	}); i >= 0 {
		return nil, fmt.Errorf("%w %q at position %d", ErrInvalidCharacter, text[i:i+1], i)
	}

	out, err := mrbase58.DecodeAlphabet(text, alphabet)
	if err != nil {
		return nil, fmt.Errorf("failed to decode base58: %w", err)
	}
	return out, nil
}
