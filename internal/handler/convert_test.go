package handler

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/AlexZinkM/minikey-wif/converter"
	"github.com/AlexZinkM/minikey-wif/internal/model"
)

const (
	minikeyVector = "S6c56bnXQiBjk9mqSYE7ykVQ7NzrRy"
	hbitsVector   = "hbits://S23c2fe8dbd330539a5fbab16a7602"
)

func newTestHandler() *ConvertHandler {
	return NewConvertHandler(128, nil)
}

func decodeConvert(t *testing.T, rec *httptest.ResponseRecorder) model.ConvertResponse {
	t.Helper()
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Fatalf("expected JSON content type, got %q", ct)
	}
	var resp model.ConvertResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	return resp
}

func TestConvertGet(t *testing.T) {
	h := newTestHandler()

	cases := []struct {
		key    string
		valid  bool
		format string
	}{
		{minikeyVector, true, "minikey"},
		{hbitsVector, true, "hbits"},
		{"not a key", false, ""},
		{"", false, ""},
	}

	for _, tc := range cases {
		req := httptest.NewRequest(http.MethodGet, "/convert?minikey="+url.QueryEscape(tc.key), nil)
		rec := httptest.NewRecorder()
		h.Convert(rec, req)

		resp := decodeConvert(t, rec)
		if resp.Valid != tc.valid || resp.Format != tc.format {
			t.Fatalf("key %q: unexpected %+v", tc.key, resp)
		}
		if resp.WIF != converter.Convert(tc.key) {
			t.Fatalf("key %q: expected %s, got %s", tc.key, converter.Convert(tc.key), resp.WIF)
		}
		if resp.QR != "" {
			t.Fatal("QR should be omitted unless requested")
		}
	}
}

func TestConvertPost(t *testing.T) {
	h := newTestHandler()
	body := `{"key":"` + minikeyVector + `"}`

	req := httptest.NewRequest(http.MethodPost, "/convert", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Convert(rec, req)

	resp := decodeConvert(t, rec)
	if !resp.Valid || resp.Compressed || resp.WIF != converter.Convert(minikeyVector) {
		t.Fatalf("unexpected %+v", resp)
	}
}

func TestConvertPostBadBody(t *testing.T) {
	h := newTestHandler()

	for _, body := range []string{"", "{", strings.Repeat("x", maxBodyBytes+1)} {
		req := httptest.NewRequest(http.MethodPost, "/convert", strings.NewReader(body))
		rec := httptest.NewRecorder()
		h.Convert(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("body %.10q: expected 400, got %d", body, rec.Code)
		}
		var errResp model.ErrorResponse
		if err := json.NewDecoder(rec.Body).Decode(&errResp); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if errResp.Code != model.CodeBadRequest || errResp.Error == "" {
			t.Fatalf("unexpected error response %+v", errResp)
		}
	}
}

func TestConvertMethodNotAllowed(t *testing.T) {
	h := newTestHandler()
	req := httptest.NewRequest(http.MethodDelete, "/convert", nil)
	rec := httptest.NewRecorder()
	h.Convert(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected 405, got %d", rec.Code)
	}
}

func TestConvertWithQR(t *testing.T) {
	h := newTestHandler()
	req := httptest.NewRequest(http.MethodGet, "/convert?qr=true&minikey="+minikeyVector, nil)
	rec := httptest.NewRecorder()
	h.Convert(rec, req)

	resp := decodeConvert(t, rec)
	png, err := base64.StdEncoding.DecodeString(resp.QR)
	if err != nil {
		t.Fatalf("QR is not base64: %v", err)
	}
	if !strings.HasPrefix(string(png), "\x89PNG") {
		t.Fatal("QR is not a PNG")
	}
}

func TestQRCodeEndpoint(t *testing.T) {
	h := newTestHandler()

	req := httptest.NewRequest(http.MethodGet, "/convert/qr?minikey="+url.QueryEscape(hbitsVector), nil)
	rec := httptest.NewRecorder()
	h.QRCode(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "image/png" {
		t.Fatalf("expected image/png, got %q", ct)
	}
	if !strings.HasPrefix(rec.Body.String(), "\x89PNG") {
		t.Fatal("body is not a PNG")
	}
}

func TestQRCodeEndpointInvalid(t *testing.T) {
	h := newTestHandler()

	req := httptest.NewRequest(http.MethodGet, "/convert/qr?minikey=bogus", nil)
	rec := httptest.NewRecorder()
	h.QRCode(rec, req)

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", rec.Code)
	}
	var errResp model.ErrorResponse
	if err := json.NewDecoder(rec.Body).Decode(&errResp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if errResp.Code != model.CodeInvalidInput || errResp.Error != converter.InvalidInput {
		t.Fatalf("unexpected error response %+v", errResp)
	}
}
