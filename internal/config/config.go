package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

const (
	BackendMemory = "memory"
	BackendSQLite = "sqlite"
	BackendMongo  = "mongo"
)

type Config struct {
	Addr            string
	StorageBackend  string
	SQLitePath      string
	MongoURI        string
	MongoDatabase   string
	SessionLifetime time.Duration
}

// Load reads the configuration from the environment. Call godotenv.Load
// first to pick up a .env file.
func Load() (*Config, error) {
	cfg := &Config{
		Addr:            ":4000",
		StorageBackend:  BackendMemory,
		SQLitePath:      "./decoration_room.db",
		MongoDatabase:   "decoration_room",
		SessionLifetime: 24 * time.Hour,
	}

	if v := os.Getenv("ADDR"); v != "" {
		cfg.Addr = v
	}
	if v := os.Getenv("STORAGE_BACKEND"); v != "" {
		cfg.StorageBackend = v
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.SQLitePath = v
	}
	if v := os.Getenv("MONGO_DATABASE"); v != "" {
		cfg.MongoDatabase = v
	}
	cfg.MongoURI = os.Getenv("MONGO_URI")

	if v := os.Getenv("SESSION_LIFETIME_HOURS"); v != "" {
		hours, err := strconv.Atoi(v)
		if err != nil || hours <= 0 {
			return nil, fmt.Errorf("SESSION_LIFETIME_HOURS inválido: %q", v)
		}
		cfg.SessionLifetime = time.Duration(hours) * time.Hour
	}

	switch cfg.StorageBackend {
	case BackendMemory, BackendSQLite:
	case BackendMongo:
		if cfg.MongoURI == "" {
			return nil, fmt.Errorf("MONGO_URI não configurado para STORAGE_BACKEND=mongo")
		}
	default:
		return nil, fmt.Errorf("STORAGE_BACKEND desconhecido: %q", cfg.StorageBackend)
	}

	return cfg, nil
}
