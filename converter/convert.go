package converter

import (
	"github.com/AlexZinkM/minikey-wif/compactkey"
	"github.com/AlexZinkM/minikey-wif/internal/model"
	"github.com/AlexZinkM/minikey-wif/internal/wif"
)

// InvalidInput is returned by Convert when text matches no supported format
const InvalidInput = "invalid input"

// Convert turns minikey or hbits text into WIF, or returns InvalidInput.
// It never panics and never returns an error.
func Convert(text string) string {
	return Process(text).WIF
}

// Process converts text and reports which format matched
func Process(text string) *model.ConvertResponse {
	// hbits is checked on the stripped text, minikey on the original
	noPrefix := compactkey.StripPrefix(text)
	if compactkey.Hbits.IsValid(noPrefix) {
		return encode(compactkey.Hbits, noPrefix)
	}
	if compactkey.Minikey.IsValid(text) {
		return encode(compactkey.Minikey, text)
	}

	return &model.ConvertResponse{WIF: InvalidInput}
}

func encode(format *compactkey.Format, text string) *model.ConvertResponse {
	secret, err := format.Decode(text)
	if err != nil {
		// unreachable once IsValid passed
		return &model.ConvertResponse{WIF: InvalidInput}
	}
	defer clear(secret)

	return &model.ConvertResponse{
		WIF:        wif.Encode(secret, format.Compressed()),
		Valid:      true,
		Format:     format.Name(),
		Compressed: format.Compressed(),
	}
}
