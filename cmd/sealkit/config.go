package main

import (
	"github.com/caarlos0/env/v11"
	_ "github.com/joho/godotenv/autoload" // Load .env file automatically
)

// Config carries process-level defaults resolved from the environment.
// Flags take precedence over all of these.
type Config struct {
	SecretKey   string `env:"SEALKIT_SECRET_KEY"`
	Salt        string `env:"SEALKIT_SALT"`
	AWSSecretID string `env:"SEALKIT_AWS_SECRET_ID"`
	AWSRegion   string `env:"AWS_REGION"`
}

func loadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
