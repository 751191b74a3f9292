package main

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config is the host configuration, read from the environment.
type Config struct {
	Seed          int64
	Ducks         int
	Ponds         int
	Width         float64
	Height        float64
	DBPath        string
	Speed         float64
	ReportSeconds int
	LogLevel      slog.Level
}

// loadConfig reads an optional .env file, then the environment.
func loadConfig(envFile string) (Config, error) {
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, err
	}

	return Config{
		Seed:          int64(envIntOrDefault("DUCKSIM_SEED", 42)),
		Ducks:         envIntOrDefault("DUCKSIM_DUCKS", 5),
		Ponds:         envIntOrDefault("DUCKSIM_PONDS", 3),
		Width:         envFloatOrDefault("DUCKSIM_WIDTH", 800),
		Height:        envFloatOrDefault("DUCKSIM_HEIGHT", 600),
		DBPath:        envOrDefault("DUCKSIM_DB", "data/duckpond.db"),
		Speed:         envFloatOrDefault("DUCKSIM_SPEED", 1),
		ReportSeconds: envIntOrDefault("DUCKSIM_REPORT_SECONDS", 10),
		LogLevel:      parseLevel(envOrDefault("DUCKSIM_LOG_LEVEL", "info")),
	}, nil
}

func envOrDefault(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func envIntOrDefault(key string, defaultVal int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return defaultVal
}

func envFloatOrDefault(key string, defaultVal float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return defaultVal
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	return slog.LevelInfo
}
