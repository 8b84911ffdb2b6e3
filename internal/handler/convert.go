package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/AlexZinkM/minikey-wif/converter"
	"github.com/AlexZinkM/minikey-wif/internal/model"

	"go.uber.org/zap"
)

// maxBodyBytes caps POST bodies; keys are at most a few dozen bytes
const maxBodyBytes = 4 << 10

// ConvertHandler serves key conversion endpoints
type ConvertHandler struct {
	qrSize int
	log    *zap.Logger
}

// NewConvertHandler creates a new ConvertHandler
func NewConvertHandler(qrSize int, log *zap.Logger) *ConvertHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &ConvertHandler{
		qrSize: qrSize,
		log:    log,
	}
}

// Convert handles GET and POST /convert
// @Summary      Convert minikey or hbits key to WIF
// @Description  GET reads the key from the minikey query parameter, POST from the JSON body.
// @Description  An unrecognised key is not an error: the response has valid=false and wif="invalid input".
// @Tags         convert
// @Accept       json
// @Produce      json
// @Param        minikey  query     string                false  "Key text (GET)"
// @Param        qr       query     bool                  false  "Include base64 PNG QR code of the WIF"
// @Param        request  body      model.ConvertRequest  false  "Key text (POST)"
// @Success      200      {object}  model.ConvertResponse
// @Failure      400      {object}  model.ErrorResponse
// @Router       /convert [get]
// @Router       /convert [post]
func (h *ConvertHandler) Convert(w http.ResponseWriter, r *http.Request) {
	var key string
	switch r.Method {
	case http.MethodGet:
		key = r.URL.Query().Get("minikey")
	case http.MethodPost:
		var req model.ConvertRequest
		body := http.MaxBytesReader(w, r.Body, maxBodyBytes)
		if err := json.NewDecoder(body).Decode(&req); err != nil {
			if errors.Is(err, io.EOF) {
				err = errors.New("empty request body")
			}
			writeError(w, http.StatusBadRequest, model.CodeBadRequest, err.Error())
			return
		}
		key = req.Key
	default:
		writeError(w, http.StatusMethodNotAllowed, model.CodeMethodNotAllowed, "Method not allowed. Should be GET or POST")
		return
	}

	resp := converter.Process(key)
	h.log.Info("convert",
		zap.String("method", r.Method),
		zap.Bool("valid", resp.Valid),
		zap.String("format", resp.Format),
	)

	if resp.Valid && wantQR(r) {
		qr, err := converter.QRCodeBase64(resp.WIF, h.qrSize)
		if err != nil {
			h.log.Error("qr code", zap.Error(err))
			writeError(w, http.StatusInternalServerError, model.CodeInternal, err.Error())
			return
		}
		resp.QR = qr
	}

	writeJSON(w, http.StatusOK, resp)
}

// QRCode handles GET /convert/qr
// @Summary      WIF as QR code
// @Description  Converts the key and returns the WIF as a PNG QR code
// @Tags         convert
// @Produce      png
// @Param        minikey  query     string  true  "Key text"
// @Success      200
// @Failure      422      {object}  model.ErrorResponse
// @Router       /convert/qr [get]
func (h *ConvertHandler) QRCode(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, model.CodeMethodNotAllowed, "Method not allowed. Should be GET")
		return
	}

	resp := converter.Process(r.URL.Query().Get("minikey"))
	if !resp.Valid {
		writeError(w, http.StatusUnprocessableEntity, model.CodeInvalidInput, converter.InvalidInput)
		return
	}

	png, err := converter.QRCode(resp.WIF, h.qrSize)
	if err != nil {
		h.log.Error("qr code", zap.Error(err))
		writeError(w, http.StatusInternalServerError, model.CodeInternal, err.Error())
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)
	w.Write(png)
}

func wantQR(r *http.Request) bool {
	v, err := strconv.ParseBool(r.URL.Query().Get("qr"))
	return err == nil && v
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	// responses carry private keys
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, msg string) {
	writeJSON(w, status, model.ErrorResponse{Error: msg, Code: code})
}
