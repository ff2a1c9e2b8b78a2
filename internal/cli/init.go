// Package cli provides the household command tree and the bootstrap
// helpers cmd/household runs before it.
package cli

import (
	"os"

	"github.com/joho/godotenv"

	"household/internal/config"
	"household/internal/log"
)

// SetupLogger builds the process logger from cfg.
// Returns the configured logger and sets it as the default logger.
func SetupLogger(cfg *config.Config) *log.Logger {
	logger := log.New(cfg.LoggerConfig())
	log.SetDefault(logger)
	return logger
}

// LoadEnvFile loads the .env file for local development.
// Errors are ignored silently as the file is optional.
func LoadEnvFile() {
	_ = godotenv.Load()
}

// LoadAndValidateConfig loads configuration and validates it.
// Returns the config or exits the process on validation failure.
func LoadAndValidateConfig(logger *log.Logger) *config.Config {
	cfg, err := loadConfig(logger)
	if err != nil {
		os.Exit(1)
	}
	return cfg
}

func loadConfig(logger *log.Logger) (*config.Config, error) {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		logger.WithComponent(log.ComponentConfig).Error("Configuration validation failed",
			log.FieldOperation, log.OpValidate,
			log.FieldError, err)
		return nil, err
	}
	return cfg, nil
}
