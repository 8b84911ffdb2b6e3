package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// Config contains all configuration parameters for the application.
type Config struct {
	Port       string `envconfig:"PORT" default:"8080"`
	QRSize     int    `envconfig:"QR_SIZE" default:"256"`
	LogLevel   string `envconfig:"LOG_LEVEL" default:"info"`
	KeyFileDir string `envconfig:"KEY_FILE_DIR" default:"."`
}

// cfg is the global configuration instance
var cfg *Config

// Init loads configuration from environment variables.
func Init() error {
	c := &Config{}
	if err := envconfig.Process("", c); err != nil {
		return fmt.Errorf("failed to process config: %w", err)
	}
	if c.QRSize < 21 {
		return fmt.Errorf("QR_SIZE must be at least 21 pixels, got %d", c.QRSize)
	}
	cfg = c
	return nil
}

// Get returns the global configuration instance.
// Panics if Init() was not called.
func Get() *Config {
	if cfg == nil {
		panic("config not initialized, call Init() first")
	}
	return cfg
}

// GetPort returns port from configuration
func GetPort() string {
	return Get().Port
}

// GetQRSize returns QR code PNG size in pixels
func GetQRSize() int {
	return Get().QRSize
}

// GetLogLevel returns log level name
func GetLogLevel() string {
	return Get().LogLevel
}

// GetKeyFileDir returns directory for relative key file paths
func GetKeyFileDir() string {
	return Get().KeyFileDir
}
