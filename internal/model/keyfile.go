package model

// KeyFile represents .cwt file structure
type KeyFile struct {
	Network    string `json:"network"`
	Format     string `json:"format"`
	Compressed bool   `json:"compressed"`
	Salt       string `json:"salt"`
	Nonce      string `json:"nonce"`
	CipherText string `json:"cipherText"`
}

// KeyData represents decrypted key file contents
type KeyData struct {
	WIF       string `json:"wif"`
	CreatedAt string `json:"createdAt"`
}
