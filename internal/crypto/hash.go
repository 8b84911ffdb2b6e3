package crypto

import (
	"crypto/sha256"
)

// SHA256 returns the SHA-256 digest of data
func SHA256(data []byte) []byte {
	sum := sha256.Sum256(data)
	return sum[:]
}

// DoubleSHA256 returns SHA-256(SHA-256(data)), the checksum hash used by WIF
func DoubleSHA256(data []byte) []byte {
	first := sha256.Sum256(data)
	second := sha256.Sum256(first[:])
	return second[:]
}
