// Package config provides configuration for the importer. Environment
// settings are loaded once at startup and validated to fail fast; per-run
// options come from the command line and are validated separately.
package config

import "time"

// Config holds all environment configuration.
type Config struct {
	API     APIConfig
	Files   FilesConfig
	Logging LoggingConfig
}

// APIConfig holds Action Network API settings.
type APIConfig struct {
	// BaseURL is the OSDI entry point (default: https://actionnetwork.org/api/v2/)
	BaseURL string `env:"AN_API_URL" envDefault:"https://actionnetwork.org/api/v2/"`

	// Timeout bounds each HTTP request (default: 30s)
	Timeout time.Duration `env:"AN_HTTP_TIMEOUT" envDefault:"30s"`
}

// FilesConfig holds default locations and names used when flags are absent.
type FilesConfig struct {
	// ProfilesFile maps profile names to API tokens (default: an_profiles.yaml)
	ProfilesFile string `env:"AN_PROFILES_FILE" envDefault:"an_profiles.yaml"`

	// MappingFile is the tag mapping CSV (default: maptags-curated.csv)
	MappingFile string `env:"AN_MAPPING_FILE" envDefault:"maptags-curated.csv"`

	// DefaultProfile is used when no profile argument is given (default: SURJ Bay Area)
	DefaultProfile string `env:"AN_DEFAULT_PROFILE" envDefault:"SURJ Bay Area"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: debug, info, warn, error (default: info)
	Level string `env:"LOG_LEVEL" envDefault:"info"`

	// Format is the log format: text or json (default: text)
	Format string `env:"LOG_FORMAT" envDefault:"text"`
}
