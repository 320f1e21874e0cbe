package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// Config chứa toàn bộ application configuration
// Struct này được populate từ environment variables
type Config struct {
	App     AppConfig
	Contact ContactConfig
	Content ContentConfig
	CORS    CORSConfig
}

type AppConfig struct {
	Name        string
	Environment string // development, staging, production
	Port        string
	Version     string
}

// =====================================================
// CONTACT RELAY CONFIGURATION
// =====================================================

// ContactConfig configures the outbound form-relay call.
// The endpoint is resolved once here and injected into the contact
// service, so the submission action never reads the environment itself.
type ContactConfig struct {
	RelayURL       string // production relay endpoint (FormSpree-style)
	TestRelayURL   string // local mock endpoint used outside production
	TestMode       bool   // true -> relay calls go to TestRelayURL
	TimeoutSeconds int    // outbound HTTP client timeout
}

// Endpoint returns the relay URL the contact service POSTs to.
// One flag-driven switch, no dynamic discovery.
func (c ContactConfig) Endpoint() string {
	if c.TestMode {
		return c.TestRelayURL
	}
	return c.RelayURL
}

// ContentConfig points at the on-disk content collections.
// Paths are fixed relative to the project root; the env overrides exist
// mainly so deployments can relocate the content checkout.
type ContentConfig struct {
	PostsDir    string
	ProjectsDir string
}

type CORSConfig struct {
	AllowedOrigin string
}

// Load đọc config từ environment variables
func Load() (*Config, error) {
	cfg := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "Portfolio API"),
			Environment: getEnv("APP_ENV", "development"),
			Port:        getEnv("APP_PORT", "8080"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
		},
		Contact: ContactConfig{
			RelayURL:       getEnv("CONTACT_RELAY_URL", "https://formspree.io/f/xeogbrzn"),
			TestRelayURL:   getEnv("CONTACT_TEST_RELAY_URL", "http://localhost:8080/api/v1/test/relay-mock"),
			TestMode:       getEnvBool("CONTACT_TEST_MODE", false),
			TimeoutSeconds: getEnvInt("CONTACT_RELAY_TIMEOUT", 30),
		},
		Content: ContentConfig{
			PostsDir:    getEnv("CONTENT_POSTS_DIR", filepath.Join("content", "blog", "posts")),
			ProjectsDir: getEnv("CONTENT_PROJECTS_DIR", filepath.Join("content", "projects")),
		},
		CORS: CORSConfig{
			AllowedOrigin: getEnv("CORS_ALLOWED_ORIGIN", "*"),
		},
	}

	// Validate critical config
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate kiểm tra config có hợp lệ không
func (c *Config) Validate() error {
	// Production không được trỏ vào relay mock
	if c.App.Environment == "production" {
		if c.Contact.TestMode {
			return fmt.Errorf("CONTACT_TEST_MODE must not be set in production")
		}
		if c.Contact.RelayURL == "" {
			return fmt.Errorf("CONTACT_RELAY_URL must be set in production")
		}
	}

	if c.Contact.TimeoutSeconds <= 0 {
		return fmt.Errorf("CONTACT_RELAY_TIMEOUT must be positive")
	}

	if c.Content.PostsDir == "" {
		return fmt.Errorf("CONTENT_POSTS_DIR must not be empty")
	}
	if c.Content.ProjectsDir == "" {
		return fmt.Errorf("CONTENT_PROJECTS_DIR must not be empty")
	}

	return nil
}

// Helper functions
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}
