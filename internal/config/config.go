package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

var ErrEmptyEnvironmentVariable = errors.New("empty environment variable")

const defaultPort = 5000

// Config holds all application configuration
type Config struct {
	Server ServerConfig
	Twilio TwilioConfig
	Voice  VoiceConfig
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Port           int
	AllowedOrigins []string
}

// TwilioConfig holds the settings used to verify inbound callbacks.
// Signature verification is disabled when AuthToken is empty.
type TwilioConfig struct {
	AuthToken     string
	PublicBaseURL string
}

// VoiceConfig holds call-flow settings
type VoiceConfig struct {
	DefaultRegion string // libphonenumber region used for numbers without a leading +
}

// Load reads and validates the environment
func Load() (*Config, error) {
	// Load env.local in non-production environments
	if os.Getenv("GO_ENV") != "production" {
		if err := godotenv.Load("env.local"); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to load env.local: %w", err)
		}
	}

	cfg := &Config{}

	var err error
	port := getEnvWithDefault("PORT", strconv.Itoa(defaultPort))
	cfg.Server.Port, err = strconv.Atoi(port)
	if err != nil {
		return nil, fmt.Errorf("failed to parse PORT: %w", err)
	}
	if cfg.Server.Port <= 0 || cfg.Server.Port > 65535 {
		return nil, fmt.Errorf("PORT out of range: %d", cfg.Server.Port)
	}
	cfg.Server.AllowedOrigins = splitList(getEnvWithDefault("CORS_ALLOWED_ORIGINS", "*"))

	cfg.Twilio.AuthToken = os.Getenv("TWILIO_AUTH_TOKEN")
	if cfg.Twilio.AuthToken != "" {
		if cfg.Twilio.PublicBaseURL, err = requireEnv("PUBLIC_BASE_URL"); err != nil {
			return nil, err
		}
		cfg.Twilio.PublicBaseURL = strings.TrimRight(cfg.Twilio.PublicBaseURL, "/")
	}

	cfg.Voice.DefaultRegion = strings.ToUpper(os.Getenv("DEFAULT_REGION"))

	return cfg, nil
}

// SignatureValidationEnabled reports whether inbound callbacks must carry a valid X-Twilio-Signature
func (c *TwilioConfig) SignatureValidationEnabled() bool {
	return c.AuthToken != ""
}

// requireEnv retrieves an environment variable or returns an error if empty
func requireEnv(key string) (string, error) {
	value := os.Getenv(key)
	if value == "" {
		return "", fmt.Errorf("%s is not set: %w", key, ErrEmptyEnvironmentVariable)
	}
	return value, nil
}

// getEnvWithDefault retrieves an environment variable or returns a default value
func getEnvWithDefault(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func splitList(value string) []string {
	var out []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
