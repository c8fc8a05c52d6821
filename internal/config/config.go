package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	PricesDir      string
	HTMLExportPath string
	XLSXExportPath string
	LogLevel       string
}

func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		PricesDir:      getEnv("PRICES_DIR", "."),
		HTMLExportPath: getEnv("EXPORT_HTML_PATH", "search_results.html"),
		XLSXExportPath: getEnv("EXPORT_XLSX_PATH", "search_results.xlsx"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}
