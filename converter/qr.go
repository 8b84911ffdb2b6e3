package converter

import (
	"encoding/base64"
	"errors"
	"fmt"

	"github.com/skip2/go-qrcode"
)

// ErrNothingToEncode is returned when asked for a QR code of an invalid conversion
var ErrNothingToEncode = errors.New("no WIF to encode")

// QRCode renders the WIF as a PNG QR code of size x size pixels
func QRCode(wifText string, size int) ([]byte, error) {
	if wifText == "" || wifText == InvalidInput {
		return nil, ErrNothingToEncode
	}

	// Medium recovery keeps the code scannable from a printed page
	qr, err := qrcode.New(wifText, qrcode.Medium)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	png, err := qr.PNG(size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}
	return png, nil
}

// QRCodeBase64 is QRCode encoded in base64, ready for a data URL
func QRCodeBase64(wifText string, size int) (string, error) {
	png, err := QRCode(wifText, size)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(png), nil
}
