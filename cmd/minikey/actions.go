package main

import (
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/AlexZinkM/minikey-wif/converter"
	"github.com/AlexZinkM/minikey-wif/internal/config"
	"github.com/AlexZinkM/minikey-wif/internal/crypto"
	"github.com/AlexZinkM/minikey-wif/internal/model"
	"github.com/AlexZinkM/minikey-wif/internal/wif"

	"github.com/urfave/cli/v2"
)

const networkBitcoin = "bitcoin"

// Prompts are variables so tests can run without a terminal
var (
	promptForKey      = config.PromptForKey
	promptForPassword = config.PromptForPassword
)

func initConfig(_ *cli.Context) error {
	return config.Init()
}

// ConvertAction prints one line per key: the WIF or "invalid input"
func ConvertAction(c *cli.Context) error {
	keys := c.Args().Slice()
	if len(keys) == 0 {
		key, err := promptForKey()
		if err != nil {
			return err
		}
		keys = []string{key}
	}

	var lastWIF string
	for _, key := range keys {
		out := converter.Convert(key)
		fmt.Fprintln(c.App.Writer, out)
		if out != converter.InvalidInput {
			lastWIF = out
		}
	}

	qrPath := c.String("qr")
	if qrPath == "" {
		return nil
	}
	if lastWIF == "" {
		return errors.New("no valid key to encode as QR code")
	}

	png, err := converter.QRCode(lastWIF, config.GetQRSize())
	if err != nil {
		return err
	}
	if err := os.WriteFile(qrPath, png, 0600); err != nil {
		return fmt.Errorf("failed to write QR code: %w", err)
	}
	return nil
}

// ExportAction converts a key and writes the WIF to an encrypted key file
func ExportAction(c *cli.Context) error {
	key := c.Args().First()
	if key == "" {
		var err error
		if key, err = promptForKey(); err != nil {
			return err
		}
	}

	resp := converter.Process(key)
	if !resp.Valid {
		return errors.New(converter.InvalidInput)
	}

	password, err := promptForPassword("Enter key file password: ")
	if err != nil {
		return err
	}
	defer clear(password)

	confirm, err := promptForPassword("Repeat password: ")
	if err != nil {
		return err
	}
	defer clear(confirm)
	if string(password) != string(confirm) {
		return errors.New("passwords do not match")
	}

	path := keyFilePath(c.String("out"))
	keyData := &model.KeyData{
		WIF:       resp.WIF,
		CreatedAt: time.Now().Format(time.RFC3339),
	}
	if err := crypto.EncryptKeyFile(path, networkBitcoin, resp.Format, resp.Compressed, keyData, password); err != nil {
		return fmt.Errorf("failed to export key: %w", err)
	}

	fmt.Fprintf(c.App.Writer, "%s key saved to %s\n", resp.Format, path)
	return nil
}

// ImportAction decrypts a key file, verifies the stored WIF and prints it
func ImportAction(c *cli.Context) error {
	path := keyFilePath(c.String("in"))

	password, err := promptForPassword("Enter key file password: ")
	if err != nil {
		return err
	}
	defer clear(password)

	keyFile, keyData, err := crypto.DecryptKeyFile(path, password)
	if err != nil {
		return fmt.Errorf("failed to import key: %w", err)
	}

	_, compressed, err := wif.Decode(keyData.WIF)
	if err != nil {
		return fmt.Errorf("key file holds a corrupt WIF: %w", err)
	}
	if compressed != keyFile.Compressed {
		return errors.New("key file header does not match stored WIF")
	}

	fmt.Fprintln(c.App.Writer, keyData.WIF)
	return nil
}

// DecodeWIFAction prints the hex secret and compression flag of a WIF
func DecodeWIFAction(c *cli.Context) error {
	if c.NArg() != 1 {
		return errors.New("expected exactly one WIF argument")
	}

	secret, compressed, err := wif.Decode(c.Args().First())
	if err != nil {
		return err
	}
	defer clear(secret)

	fmt.Fprintf(c.App.Writer, "secret:     %s\ncompressed: %t\n", hex.EncodeToString(secret), compressed)
	return nil
}

// keyFilePath resolves relative paths against KEY_FILE_DIR
func keyFilePath(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(config.GetKeyFileDir(), path)
}
