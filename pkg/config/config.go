package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"

	"howmanyq-sitegen/pkg/errors"
)

// Config holds all application configuration
type Config struct {
	// App
	Env string

	// Site
	SiteRoot string
	BaseURL  string

	// Generated artifacts
	NavOutput     string
	SitemapOutput string

	// Preview server
	PreviewPort string
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Try to load .env file, but don't fail if it doesn't exist
	_ = godotenv.Load()

	cfg := &Config{
		Env:           getEnv("ENV", "development"),
		SiteRoot:      getEnv("SITE_ROOT", "."),
		BaseURL:       strings.TrimRight(getEnv("BASE_URL", "https://howmanyq.com"), "/"),
		NavOutput:     getEnv("NAV_OUTPUT", "navigation_data.json"),
		SitemapOutput: getEnv("SITEMAP_OUTPUT", "sitemap.xml"),
		PreviewPort:   getEnv("PREVIEW_PORT", "8080"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate checks that required configuration values are set and usable
func (c *Config) Validate() error {
	if c.SiteRoot == "" {
		return errors.NewConfigMissingRequired("SITE_ROOT")
	}
	if c.BaseURL == "" {
		return errors.NewConfigMissingRequired("BASE_URL")
	}
	if !strings.HasPrefix(c.BaseURL, "http://") && !strings.HasPrefix(c.BaseURL, "https://") {
		return errors.NewConfigValidationFailed("BASE_URL", "must be an absolute http(s) URL")
	}
	if c.NavOutput == "" {
		return errors.NewConfigMissingRequired("NAV_OUTPUT")
	}
	if c.SitemapOutput == "" {
		return errors.NewConfigMissingRequired("SITEMAP_OUTPUT")
	}
	return nil
}

// NavPath returns the navigation document path, resolved against the
// site root when NAV_OUTPUT is relative.
func (c *Config) NavPath() string {
	return c.resolve(c.NavOutput)
}

// SitemapPath returns the sitemap path, resolved against the site root
// when SITEMAP_OUTPUT is relative.
func (c *Config) SitemapPath() string {
	return c.resolve(c.SitemapOutput)
}

func (c *Config) resolve(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(c.SiteRoot, path)
}

// IsDevelopment returns true if running in development mode
func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

// IsProduction returns true if running in production mode
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
