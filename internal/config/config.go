package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const (
	DefaultPort        = "8080"
	DefaultDataFile    = "flights.json"
	DefaultCatalogSize = 100
)

// Config holds all runtime configuration. Each field corresponds to an
// environment variable; a .env file is honored when present.
type Config struct {
	Port        string // API_PORT
	DataFile    string // DATA_FILE, JSON snapshot path
	DatabaseURL string // DATABASE_URL, switches persistence to Postgres when set
	RedisAddr   string // REDIS_ADDR, enables search caching when set
	CatalogSize int    // CATALOG_SIZE, flights generated on empty state
	// SIMULATE_LATENCY=false disables the per-operation delays
	SimulateLatency bool
}

// Load reads configuration from the environment
func Load() Config {
	// Missing .env is fine; the environment still applies
	_ = godotenv.Load()

	return Config{
		Port:            getenv("API_PORT", DefaultPort),
		DataFile:        getenv("DATA_FILE", DefaultDataFile),
		DatabaseURL:     os.Getenv("DATABASE_URL"),
		RedisAddr:       os.Getenv("REDIS_ADDR"),
		CatalogSize:     getenvInt("CATALOG_SIZE", DefaultCatalogSize),
		SimulateLatency: os.Getenv("SIMULATE_LATENCY") != "false",
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getenvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return fallback
}
