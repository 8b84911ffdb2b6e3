package api

import (
	"net/http"

	_ "github.com/AlexZinkM/minikey-wif/docs"
	"github.com/AlexZinkM/minikey-wif/internal/config"
	"github.com/AlexZinkM/minikey-wif/internal/handler"

	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"
)

// SetupRouter sets up router with handlers
func SetupRouter(log *zap.Logger) http.Handler {
	convertHandler := handler.NewConvertHandler(config.GetQRSize(), log)

	mux := http.NewServeMux()

	// Swagger UI
	mux.HandleFunc("/swagger/", httpSwagger.WrapHandler)

	mux.HandleFunc("/convert", convertHandler.Convert)
	mux.HandleFunc("/convert/qr", convertHandler.QRCode)

	return enableCORS(mux)
}

// enableCORS lets a static page on another origin call the API
func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
