// Package wif encodes and decodes private keys in Wallet Import Format:
// base58(0x80 || secret || [0x01] || checksum), where checksum is the first
// four bytes of SHA-256(SHA-256) over everything before it.
package wif

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/AlexZinkM/minikey-wif/internal/base58"
	"github.com/AlexZinkM/minikey-wif/internal/crypto"
)

const (
	Version          = byte(0x80) // Bitcoin mainnet private key
	CompressedMarker = byte(0x01)
	ChecksumLength   = 4
	SecretLength     = 32
)

var (
	ErrInvalidLength    = errors.New("invalid WIF length")
	ErrInvalidVersion   = errors.New("invalid WIF version byte")
	ErrChecksumMismatch = errors.New("WIF checksum mismatch")
)

// Encode builds the WIF text for secret
func Encode(secret []byte, compressed bool) string {
	size := len(secret) + 1 + ChecksumLength
	if compressed {
		size++
	}

	buf := make([]byte, size)
	buf[0] = Version
	copy(buf[1:], secret)
	if compressed {
		buf[1+len(secret)] = CompressedMarker
	}

	// Checksum covers everything except the 4 reserved trailing bytes
	body := buf[:size-ChecksumLength]
	copy(buf[size-ChecksumLength:], crypto.DoubleSHA256(body)[:ChecksumLength])

	return base58.Encode(buf)
}

// Decode parses WIF text and returns the 32-byte secret and compression flag
func Decode(text string) (secret []byte, compressed bool, err error) {
	raw, err := base58.Decode(text)
	if err != nil {
		return nil, false, err
	}

	switch len(raw) {
	case 1 + SecretLength + ChecksumLength:
	case 1 + SecretLength + 1 + ChecksumLength:
		if raw[1+SecretLength] != CompressedMarker {
			return nil, false, fmt.Errorf("%w: bad compression marker 0x%02x", ErrInvalidLength, raw[1+SecretLength])
		}
		compressed = true
	default:
		return nil, false, fmt.Errorf("%w: %d bytes", ErrInvalidLength, len(raw))
	}

	if raw[0] != Version {
		return nil, false, fmt.Errorf("%w: 0x%02x", ErrInvalidVersion, raw[0])
	}

	body := raw[:len(raw)-ChecksumLength]
	if !bytes.Equal(raw[len(raw)-ChecksumLength:], crypto.DoubleSHA256(body)[:ChecksumLength]) {
		return nil, false, ErrChecksumMismatch
	}

	secret = make([]byte, SecretLength)
	copy(secret, raw[1:1+SecretLength])
	return secret, compressed, nil
}
