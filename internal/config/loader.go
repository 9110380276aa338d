package config

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/caarlos0/env/v11"
)

// Load reads configuration from environment variables.
// It applies defaults for unset values and validates the result.
func Load() (*Config, error) {
	cfg := &Config{}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config load: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}

	return cfg, nil
}

// Validate checks that the configuration is valid.
// Returns an error describing all validation failures.
func (c *Config) Validate() error {
	var errs []string

	// API validation
	u, err := url.Parse(c.API.BaseURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		errs = append(errs, fmt.Sprintf("AN_API_URL (%q) must be an absolute http(s) URL", c.API.BaseURL))
	}
	if c.API.Timeout <= 0 {
		errs = append(errs, "AN_HTTP_TIMEOUT must be positive")
	}

	// Files validation
	if strings.TrimSpace(c.Files.ProfilesFile) == "" {
		errs = append(errs, "AN_PROFILES_FILE must not be empty")
	}
	if strings.TrimSpace(c.Files.MappingFile) == "" {
		errs = append(errs, "AN_MAPPING_FILE must not be empty")
	}
	if strings.TrimSpace(c.Files.DefaultProfile) == "" {
		errs = append(errs, "AN_DEFAULT_PROFILE must not be empty")
	}

	// Logging validation
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[strings.ToLower(c.Logging.Level)] {
		errs = append(errs, fmt.Sprintf("LOG_LEVEL (%q) must be one of: debug, info, warn, error", c.Logging.Level))
	}

	validFormats := map[string]bool{"text": true, "json": true}
	if !validFormats[strings.ToLower(c.Logging.Format)] {
		errs = append(errs, fmt.Sprintf("LOG_FORMAT (%q) must be one of: text, json", c.Logging.Format))
	}

	if len(errs) > 0 {
		return fmt.Errorf("validation failed:\n  - %s", strings.Join(errs, "\n  - "))
	}

	return nil
}

// String returns a one-line summary of the config for debug logging.
func (c *Config) String() string {
	var b strings.Builder
	b.WriteString("Config{")
	b.WriteString(fmt.Sprintf("API: {BaseURL: %q, Timeout: %s}, ", c.API.BaseURL, c.API.Timeout))
	b.WriteString(fmt.Sprintf("Files: {Profiles: %q, Mapping: %q, DefaultProfile: %q}, ",
		c.Files.ProfilesFile, c.Files.MappingFile, c.Files.DefaultProfile))
	b.WriteString(fmt.Sprintf("Logging: {Level: %q, Format: %q}",
		c.Logging.Level, c.Logging.Format))
	b.WriteString("}")
	return b.String()
}
