package config

import (
	"fmt"
	"os"
	"strings"
)

type Config struct {
	HTTPAddr string

	DATSBaseURL  string
	DATSClientID string
	DATSPasscode string

	// DatabaseURL is optional; without it the assistant keeps no local
	// trip log and answers from the remote service only.
	DatabaseURL string

	DevMode bool
}

func FromEnv() (Config, error) {
	cfg := Config{
		HTTPAddr:     envDefault("HTTP_ADDR", ":8080"),
		DATSBaseURL:  envDefault("DATS_BASE_URL", "https://dats.edmonton.ca"),
		DATSClientID: strings.TrimSpace(os.Getenv("DATS_CLIENT_ID")),
		DATSPasscode: strings.TrimSpace(os.Getenv("DATS_PASSCODE")),
		DatabaseURL:  strings.TrimSpace(os.Getenv("DATABASE_URL")),
		DevMode:      strings.TrimSpace(os.Getenv("DEV_MODE")) == "1",
	}
	if cfg.DATSClientID == "" {
		return cfg, fmt.Errorf("DATS_CLIENT_ID is required (your DATS registration number)")
	}
	if cfg.DATSPasscode == "" {
		return cfg, fmt.Errorf("DATS_PASSCODE is required")
	}
	return cfg, nil
}

func envDefault(k, d string) string {
	v := strings.TrimSpace(os.Getenv(k))
	if v == "" {
		return d
	}
	return v
}
