package config

import (
	"fmt"
	"os"
	"strings"

	"household/internal/core"
	"household/internal/log"
)

// Output formats understood by the report renderer and the CLI.
const (
	FormatText = "text"
	FormatJSON = "json"
)

type Config struct {
	// Logging
	LogLevel  string
	LogFormat string

	// Reports
	ReportCurrency string
	Output         string
}

func Load() *Config {
	cfg := &Config{
		LogLevel:  getEnv("HOUSEHOLD_LOG_LEVEL", "info"),
		LogFormat: getEnv("HOUSEHOLD_LOG_FORMAT", FormatText),

		ReportCurrency: getEnv("HOUSEHOLD_REPORT_CURRENCY", string(core.USD)),
		Output:         getEnv("HOUSEHOLD_OUTPUT", FormatText),
	}

	return cfg
}

// Validate validates the configuration and returns an error if invalid
func (c *Config) Validate() error {
	var errors []string

	if !log.ValidLevel(c.LogLevel) {
		errors = append(errors, fmt.Sprintf("invalid log level '%s': must be one of debug, info, warn, error", c.LogLevel))
	}

	if !validFormat(c.LogFormat) {
		errors = append(errors, fmt.Sprintf("invalid log format '%s': must be one of %v", c.LogFormat, Formats()))
	}

	if _, err := core.ParseCurrency(c.ReportCurrency); err != nil {
		errors = append(errors, fmt.Sprintf("invalid report currency '%s': must be one of %v", c.ReportCurrency, core.Currencies()))
	}

	if !validFormat(c.Output) {
		errors = append(errors, fmt.Sprintf("invalid output format '%s': must be one of %v", c.Output, Formats()))
	}

	// Return combined errors
	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errors, "\n- "))
	}

	return nil
}

// Currency returns the report currency, falling back to USD when unset or unknown.
func (c *Config) Currency() core.Currency {
	cur, err := core.ParseCurrency(c.ReportCurrency)
	if err != nil {
		return core.USD
	}
	return cur
}

// LoggerConfig maps the logging settings onto a log.Config writing to stderr.
func (c *Config) LoggerConfig() log.Config {
	lc := log.DefaultConfig()
	lc.Level = log.ParseLevel(c.LogLevel)
	lc.Format = c.LogFormat
	return lc
}

// Formats lists the accepted output and log formats.
func Formats() []string {
	return []string{FormatText, FormatJSON}
}

func validFormat(format string) bool {
	for _, f := range Formats() {
		if f == format {
			return true
		}
	}
	return false
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
