package config

import (
	"os"
	"time"

	"go.uber.org/zap"
)

const (
	defaultSheetURL = "https://docs.google.com/spreadsheets/d/e/2PACX-1vThepfVPAV7nRGgU6vKdxlN7pBOiNFuQM9MwVVRyEmFVFgbHsW3KpjvlpVXsT65mLijkPVGa7JZqrc_/pub?gid=243273262&single=true&output=csv"
	defaultFormURL  = "https://forms.gle/3GgeJSzXh2sK1rHJ9"
	defaultReport   = "https://forms.gle/beKtbsgbV8Rxr9jg7"
)

// Config holds all configuration for the application.
type Config struct {
	AppEnv       string
	SheetURL     string
	FormURL      string
	ReportURL    string
	FetchTimeout time.Duration

	// Initial view state.
	Search string
	Sort   string
	Detail string
}

// LoadFromEnv loads configuration from environment variables.
func LoadFromEnv() *Config {
	timeout, err := time.ParseDuration(getEnv("FETCH_TIMEOUT", "15s"))
	if err != nil || timeout <= 0 {
		timeout = 15 * time.Second
	}

	return &Config{
		AppEnv:       getEnv("APP_ENV", "development"),
		SheetURL:     getEnv("SHEET_URL", defaultSheetURL),
		FormURL:      getEnv("FORM_URL", defaultFormURL),
		ReportURL:    getEnv("REPORT_URL", defaultReport),
		FetchTimeout: timeout,
		Search:       os.Getenv("DIRECTORY_SEARCH"),
		Sort:         getEnv("DIRECTORY_SORT", "quality_desc"),
		Detail:       os.Getenv("DIRECTORY_DETAIL"),
	}
}

// NewLogger creates a new Zap logger based on the config.
func NewLogger(cfg *Config) (*zap.Logger, error) {
	if cfg.AppEnv == "production" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
