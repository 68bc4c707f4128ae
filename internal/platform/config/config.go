package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config is centralized process configuration.
// Keep infra values here and pass typed config into builders.
type Config struct {
	ServiceName string
	HTTPPort    string

	DataFile    string
	SheetURL    string
	SheetAPIKey string

	CacheDir     string
	ExportDir    string
	PostgresDSN  string
	SnapshotKeep int

	RefreshInterval time.Duration

	EnableArchive       bool
	EnableAutoRefresh   bool
	EnableSnapshotPrune bool
}

func Load() (Config, error) {
	service := os.Getenv("SERVICE_NAME")
	if service == "" {
		service = "tensio"
	}

	port := os.Getenv("HTTP_PORT")
	if port == "" {
		port = "8080"
	}

	cacheDir := os.Getenv("CACHE_DIR")
	if cacheDir == "" {
		cacheDir = ".tensio/cache"
	}

	exportDir := os.Getenv("EXPORT_DIR")
	if exportDir == "" {
		exportDir = ".tensio/exports"
	}

	return Config{
		ServiceName: service,
		HTTPPort:    port,

		DataFile:    os.Getenv("DATA_FILE"),
		SheetURL:    os.Getenv("SHEET_URL"),
		SheetAPIKey: os.Getenv("SHEET_API_KEY"),

		CacheDir:     cacheDir,
		ExportDir:    exportDir,
		PostgresDSN:  os.Getenv("POSTGRES_DSN"),
		SnapshotKeep: envInt("SNAPSHOT_KEEP", 10),

		RefreshInterval: envDuration("REFRESH_INTERVAL", 15*time.Minute),

		EnableArchive:       envBool("ENABLE_ARCHIVE", false),
		EnableAutoRefresh:   envBool("ENABLE_AUTO_REFRESH", true),
		EnableSnapshotPrune: envBool("ENABLE_SNAPSHOT_PRUNE", true),
	}, nil
}

func envBool(name string, fallback bool) bool {
	raw := strings.TrimSpace(strings.ToLower(os.Getenv(name)))
	if raw == "" {
		return fallback
	}
	switch raw {
	case "1", "true", "t", "yes", "y", "on":
		return true
	case "0", "false", "f", "no", "n", "off":
		return false
	default:
		return fallback
	}
}

func envInt(name string, fallback int) int {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return value
}

func envDuration(name string, fallback time.Duration) time.Duration {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return fallback
	}
	value, err := time.ParseDuration(raw)
	if err != nil {
		return fallback
	}
	return value
}
