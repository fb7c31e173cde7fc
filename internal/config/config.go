package config

import (
	"fmt"
	"os"
	"strings"
)

type Config struct {
	Port string

	JWTSecret string

	// Empty means domain events are disabled.
	KafkaBrokers []string

	LogLevel string
	GoEnv    string
}

func Load() (Config, error) {
	cfg := Config{
		Port:      os.Getenv("PORT"),
		JWTSecret: os.Getenv("JWT_SECRET"),
		LogLevel:  os.Getenv("LOG_LEVEL"),
		GoEnv:     os.Getenv("GO_ENV"),
	}

	if v := os.Getenv("KAFKA_BROKERS"); v != "" {
		for _, b := range strings.Split(v, ",") {
			if b = strings.TrimSpace(b); b != "" {
				cfg.KafkaBrokers = append(cfg.KafkaBrokers, b)
			}
		}
	}

	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.JWTSecret == "" {
		return Config{}, fmt.Errorf("JWT_SECRET is required")
	}

	return cfg, nil
}
