package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds runtime configuration parsed from environment variables.
type Config struct {
	HTTPAddr        string
	DataDir         string
	CORSOrigins     []string
	ShutdownTimeout time.Duration
}

// FromEnv builds Config with defaults, overridden by environment variables.
func FromEnv() Config {
	return Config{
		HTTPAddr:        envOrDefault("HTTP_ADDR", ":8080"),
		DataDir:         envOrDefault("DATA_DIR", "./data"),
		CORSOrigins:     envList("CORS_ORIGINS", []string{"http://localhost:3000"}),
		ShutdownTimeout: envDuration("SHUTDOWN_TIMEOUT_SECONDS", 10*time.Second),
	}
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envList(key string, def []string) []string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return def
	}
	return out
}

func envDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		seconds, err := strconv.Atoi(v)
		if err == nil {
			return time.Duration(seconds) * time.Second
		}
	}
	return def
}
