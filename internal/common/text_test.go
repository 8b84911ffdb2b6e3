package common

import (
	"bytes"
	"testing"
)

func TestToBytesASCII(t *testing.T) {
	input := "S6c56bnXQiBjk9mqSYE7ykVQ7NzrRy?"
	got := ToBytes(input)
	if !bytes.Equal(got, []byte(input)) {
		t.Fatalf("expected %x, got %x", []byte(input), got)
	}
}

func TestToBytesKeepsPercentLiteral(t *testing.T) {
	got := ToBytes("a%41b")
	expected := []byte{'a', '%', '4', '1', 'b'}
	if !bytes.Equal(got, expected) {
		t.Fatalf("expected %x, got %x", expected, got)
	}
}

func TestToBytesNonASCII(t *testing.T) {
	got := ToBytes("é")
	expected := []byte{0xC3, 0xA9}
	if !bytes.Equal(got, expected) {
		t.Fatalf("expected %x, got %x", expected, got)
	}
}

func TestTextLength(t *testing.T) {
	cases := []struct {
		input    string
		expected int
	}{
		{"", 0},
		{"abc", 3},
		{"é", 1},
		{"€", 1},
		{"😀", 2},
		{"\xff", 1},
		{"S23c2fe8dbd330539a5fbab16a7602", 30},
	}

	for _, tc := range cases {
		if got := TextLength(tc.input); got != tc.expected {
			t.Fatalf("TextLength(%q): expected %d, got %d", tc.input, tc.expected, got)
		}
	}
}
