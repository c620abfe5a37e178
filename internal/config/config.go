package config

import (
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	APIBaseURL  string
	StateDBPath string
	LogLevel    string
	HTTPTimeout time.Duration
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func Load() *Config {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("Notice: .env file not found: %v. Using system environment variables", err)
	}

	timeout := 15 * time.Second
	if v := os.Getenv("HTTP_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			timeout = d
		} else {
			log.Printf("Notice: invalid HTTP_TIMEOUT %q, using default %s", v, timeout)
		}
	}

	home, _ := os.UserHomeDir()
	return &Config{
		APIBaseURL:  getenv("SHOPEASY_API_URL", "http://localhost:5000/api"),
		StateDBPath: getenv("SHOPEASY_STATE_DB", filepath.Join(home, ".shopeasy", "state.db")),
		LogLevel:    getenv("LOG_LEVEL", "info"),
		HTTPTimeout: timeout,
	}
}
