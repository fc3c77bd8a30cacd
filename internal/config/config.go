// Package config resolves the hirebase configuration once at startup.
// Precedence: built-in defaults, then ~/.hirebase/config.toml, then
// environment variables. The resulting Config is immutable and threaded
// into constructors; nothing else reads the environment ad hoc.
package config

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"
)

// DefaultBaseURL is the backend API base URL used when nothing else is
// configured.
const DefaultBaseURL = "http://127.0.0.1:5001/api"

// Config is the process-wide application configuration.
type Config struct {
	API    APIConfig    `toml:"api"`
	Upload UploadConfig `toml:"upload"`
}

// APIConfig configures the backend HTTP client.
type APIConfig struct {
	// BaseURL is the backend REST base URL, without trailing slash.
	BaseURL string `toml:"base_url"`

	// TimeoutSeconds bounds each request attempt.
	TimeoutSeconds int `toml:"timeout_seconds"`

	// MaxAttempts is the total attempt ceiling for transient failures.
	MaxAttempts int `toml:"max_attempts"`

	// RetryDelayMillis is the fixed backoff between attempts.
	RetryDelayMillis int `toml:"retry_delay_millis"`

	// RequestsPerSecond throttles outgoing calls proactively.
	RequestsPerSecond float64 `toml:"requests_per_second"`
}

// UploadConfig configures client-side upload validation.
type UploadConfig struct {
	// MaxFileSizeMB is the per-file size ceiling.
	MaxFileSizeMB int `toml:"max_file_size_mb"`
}

func defaults() Config {
	return Config{
		API: APIConfig{
			BaseURL:           DefaultBaseURL,
			TimeoutSeconds:    30,
			MaxAttempts:       3,
			RetryDelayMillis:  1000,
			RequestsPerSecond: 10,
		},
		Upload: UploadConfig{
			MaxFileSizeMB: 10,
		},
	}
}

// Load resolves configuration from defaults, the config file in the
// hirebase config directory (~/.hirebase by default), and environment
// variables. A .env file in the working directory is honoured for local
// development.
func Load() (Config, error) {
	// Only effective locally; ignored when no .env file exists.
	_ = godotenv.Load()

	dir, err := configDir()
	if err != nil {
		return Config{}, err
	}
	return loadFrom(filepath.Join(dir, "config.toml"))
}

func loadFrom(path string) (Config, error) {
	cfg := defaults()

	data, err := os.ReadFile(path)
	if err == nil {
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return Config{}, err
		}
	} else if !os.IsNotExist(err) {
		return Config{}, err
	}

	applyEnvOverrides(&cfg)
	return cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	// HIREBASE_API_URL wins; REACT_APP_API_URL is honoured for parity
	// with the web frontend's environment.
	if v := getEnv("HIREBASE_API_URL", getEnv("REACT_APP_API_URL", "")); v != "" {
		cfg.API.BaseURL = v
	}
	if v := getEnvInt("HIREBASE_TIMEOUT_SECONDS", 0); v > 0 {
		cfg.API.TimeoutSeconds = v
	}
	if v := getEnvInt("HIREBASE_MAX_ATTEMPTS", 0); v > 0 {
		cfg.API.MaxAttempts = v
	}
	if v := getEnvInt("HIREBASE_RETRY_DELAY_MILLIS", 0); v > 0 {
		cfg.API.RetryDelayMillis = v
	}
}

func configDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".hirebase"), nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
