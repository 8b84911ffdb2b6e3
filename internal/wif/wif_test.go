package wif

import (
	"bytes"
	"encoding/hex"
	"errors"
	"math/rand"
	"strings"
	"testing"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg"

	"github.com/AlexZinkM/minikey-wif/internal/base58"
)

const wikiSecretHex = "0C28FCA386C7A227600B2FE50B7CAE11EC86D3BF1FBE471BE89827E19D72AA1D"

func mustHex(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	if err != nil {
		t.Fatalf("bad hex %q: %v", s, err)
	}
	return b
}

func TestEncodeBitcoinWikiExample(t *testing.T) {
	expected := "5HueCGU8rMjxEXxiPuD5BDku4MkFqeZyd4dZ1jvhTVqvbTLvyTJ"
	if got := Encode(mustHex(t, wikiSecretHex), false); got != expected {
		t.Fatalf("expected %s, got %s", expected, got)
	}
}

func TestEncodeLayout(t *testing.T) {
	secret := mustHex(t, wikiSecretHex)

	for _, compressed := range []bool{false, true} {
		raw, err := base58.Decode(Encode(secret, compressed))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		expectedLen := 37
		if compressed {
			expectedLen = 38
		}
		if len(raw) != expectedLen {
			t.Fatalf("compressed=%v: expected %d bytes, got %d", compressed, expectedLen, len(raw))
		}
		if raw[0] != Version {
			t.Fatalf("expected version 0x80, got 0x%02x", raw[0])
		}
		if !bytes.Equal(raw[1:33], secret) {
			t.Fatalf("secret not embedded at offset 1")
		}
		if compressed && raw[33] != CompressedMarker {
			t.Fatalf("expected compression marker, got 0x%02x", raw[33])
		}
	}
}

func TestEncodeMatchesBtcutil(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 32; i++ {
		secret := make([]byte, SecretLength)
		rng.Read(secret)
		secret[0] |= 0x01 // keep it a non-zero scalar

		privKey, _ := btcec.PrivKeyFromBytes(secret)
		for _, compressed := range []bool{false, true} {
			ref, err := btcutil.NewWIF(privKey, &chaincfg.MainNetParams, compressed)
			if err != nil {
				t.Fatalf("btcutil: %v", err)
			}
			if got := Encode(secret, compressed); got != ref.String() {
				t.Fatalf("secret %x compressed=%v: expected %s, got %s", secret, compressed, ref.String(), got)
			}
		}
	}
}

func TestEncodePrefixCharacter(t *testing.T) {
	secret := mustHex(t, wikiSecretHex)
	if got := Encode(secret, false); !strings.HasPrefix(got, "5") || len(got) != 51 {
		t.Fatalf("uncompressed WIF should start with 5 and be 51 chars, got %s", got)
	}
	got := Encode(secret, true)
	if (got[0] != 'K' && got[0] != 'L') || len(got) != 52 {
		t.Fatalf("compressed WIF should start with K or L and be 52 chars, got %s", got)
	}
}

func TestDecodeRoundTrip(t *testing.T) {
	secret := mustHex(t, wikiSecretHex)
	for _, compressed := range []bool{false, true} {
		gotSecret, gotCompressed, err := Decode(Encode(secret, compressed))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !bytes.Equal(gotSecret, secret) || gotCompressed != compressed {
			t.Fatalf("expected %x/%v, got %x/%v", secret, compressed, gotSecret, gotCompressed)
		}
	}
}

func TestDecodeErrors(t *testing.T) {
	secret := mustHex(t, wikiSecretHex)
	valid := Encode(secret, false)

	// flip the last symbol to break the checksum
	last := valid[len(valid)-1]
	replacement := byte('2')
	if last == '2' {
		replacement = '3'
	}
	tampered := valid[:len(valid)-1] + string(replacement)

	testnet := make([]byte, 37)
	testnet[0] = 0xef
	copy(testnet[1:], secret)

	cases := []struct {
		name     string
		input    string
		expected error
	}{
		{"bad character", "5HueCGU8rMjxEXxiPuD5BDku4MkFqeZyd4dZ1jvhTVqvbTLvyT0", base58.ErrInvalidCharacter},
		{"checksum", tampered, ErrChecksumMismatch},
		{"too short", base58.Encode([]byte{0x80, 1, 2, 3}), ErrInvalidLength},
		{"version", base58.Encode(testnet), ErrInvalidVersion},
	}

	for _, tc := range cases {
		_, _, err := Decode(tc.input)
		if !errors.Is(err, tc.expected) {
			t.Fatalf("%s: expected %v, got %v", tc.name, tc.expected, err)
		}
	}
}
