// Package compactkey validates and decodes short, hand-typeable private key
// encodings. A candidate is accepted when it is 22 or 30 characters long and
// SHA-256(candidate + terminator) starts with a zero byte; the secret is
// SHA-256(candidate), optionally post-processed by the format.
package compactkey

import (
	"errors"
	"fmt"
	"strings"

	"github.com/AlexZinkM/minikey-wif/internal/common"
	"github.com/AlexZinkM/minikey-wif/internal/crypto"
)

// HbitsPrefix is stripped from hbits input before validation
const HbitsPrefix = "hbits://"

var (
	ErrLengthMismatch  = errors.New("compact key must be 22 or 30 characters")
	ErrInvalidChecksum = errors.New("compact key checksum byte is not zero")
)

// acceptedLengths are the legacy 22-character and current 30-character forms
var acceptedLengths = [...]int{22, 30}

// Format describes one compact-key encoding
type Format struct {
	name       string
	terminator string
	compressed bool
	transform  func(secret []byte)
}

var (
	// Minikey is the Casascius mini private key format
	Minikey = &Format{
		name:       "minikey",
		terminator: "?",
		compressed: false,
	}

	// Hbits differs from Minikey in terminator, a XOR mask on the secret, and compressed output
	Hbits = &Format{
		name:       "hbits",
		terminator: "!",
		compressed: true,
		transform:  xorHbitsMask,
	}
)

// Name returns the format name
func (f *Format) Name() string {
	return f.name
}

// Terminator returns the character appended to the candidate for the checksum hash
func (f *Format) Terminator() string {
	return f.terminator
}

// Compressed reports whether WIF output for this format carries the compression marker
func (f *Format) Compressed() bool {
	return f.compressed
}

// IsValid reports whether text passes the length and checksum gates
func (f *Format) IsValid(text string) bool {
	return f.Check(text) == nil
}

// Check is IsValid with the failure reason
func (f *Format) Check(text string) error {
	if !hasAcceptedLength(text) {
		return ErrLengthMismatch
	}
	if crypto.SHA256(common.ToBytes(text + f.terminator))[0] != 0x00 {
		return ErrInvalidChecksum
	}
	return nil
}

// Decode derives the 32-byte secret from text.
// The checksum is not verified; call IsValid first.
func (f *Format) Decode(text string) ([]byte, error) {
	if !hasAcceptedLength(text) {
		return nil, fmt.Errorf("%s: %w (got %d)", f.name, ErrLengthMismatch, common.TextLength(text))
	}

	secret := crypto.SHA256(common.ToBytes(text))
	if f.transform != nil {
		f.transform(secret)
	}
	return secret, nil
}

func (f *Format) String() string {
	return f.name
}

// StripPrefix removes a leading "hbits://" from text, if present
func StripPrefix(text string) string {
	return strings.TrimPrefix(text, HbitsPrefix)
}

func hasAcceptedLength(text string) bool {
	n := common.TextLength(text)
	for _, l := range acceptedLengths {
		if n == l {
			return true
		}
	}
	return false
}
