package model

// ConvertRequest represents request for POST /convert
type ConvertRequest struct {
	Key string `json:"key" binding:"required"`
}

// ConvertResponse represents response for GET and POST /convert
type ConvertResponse struct {
	WIF        string `json:"wif"` // WIF text or "invalid input"
	Valid      bool   `json:"valid"`
	Format     string `json:"format,omitempty"` // "minikey" or "hbits"
	Compressed bool   `json:"compressed"`
	QR         string `json:"qr,omitempty"` // base64 PNG, only when requested
}
