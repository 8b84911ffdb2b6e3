package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"
)

// ErrNotTerminal is returned when a hidden prompt is requested without an interactive stdin
var ErrNotTerminal = errors.New("stdin is not a terminal: run interactively or pass the key as an argument")

// PromptForKey reads a minikey or hbits key from the terminal without echo.
// Surrounding whitespace is trimmed; the key itself is returned verbatim.
func PromptForKey() (string, error) {
	raw, err := readHidden("Enter private key: ")
	if err != nil {
		return "", err
	}
	defer clear(raw)

	key := strings.TrimSpace(string(raw))
	if key == "" {
		return "", errors.New("key cannot be empty")
	}
	return key, nil
}

// PromptForPassword reads a key file password from the terminal without echo.
// Caller must zero the returned slice after use.
func PromptForPassword(prompt string) ([]byte, error) {
	raw, err := readHidden(prompt)
	if err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return nil, errors.New("password cannot be empty")
	}

	out := make([]byte, len(raw))
	copy(out, raw)
	clear(raw)
	return out, nil
}

func readHidden(prompt string) ([]byte, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return nil, ErrNotTerminal
	}
	fmt.Fprint(os.Stderr, prompt)
	defer fmt.Fprintln(os.Stderr)

	raw, err := term.ReadPassword(fd)
	if err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}
	return raw, nil
}
