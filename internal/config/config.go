// Package config loads the carewizard configuration file.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

// DefaultConfigFilename is looked up in the working directory when --config is not given.
const DefaultConfigFilename = "carewizard.yaml"

// Environment variables that override the file.
const (
	EnvGenAIAPIKey = "CAREWIZARD_GENAI_API_KEY"
	EnvLogLevel    = "CAREWIZARD_LOG_LEVEL"
)

// Advisor backends.
const (
	BackendCanned = "canned"
	BackendGenAI  = "genai"
)

// Config is the complete carewizard configuration.
type Config struct {
	Advisor AdvisorConfig `yaml:"advisor"`
	Reports ReportsConfig `yaml:"reports"`
	Logging LoggingConfig `yaml:"logging"`
}

// AdvisorConfig selects who answers in the advisor chat.
type AdvisorConfig struct {
	Backend string `yaml:"backend"`
	Model   string `yaml:"model"`
	APIKey  string `yaml:"api_key,omitempty"`
	// CannedReply replaces the default placeholder reply of the canned backend.
	CannedReply string `yaml:"canned_reply,omitempty"`
}

// ReportsConfig locates the report database. An empty Database keeps reports in memory
// for the duration of the command.
type ReportsConfig struct {
	Database string `yaml:"database"`
	// SeedSamples stores the sample reports when the database is empty.
	SeedSamples bool `yaml:"seed_samples"`
}

// LoggingConfig configures zap.
type LoggingConfig struct {
	Level string `yaml:"level"`
	// File receives logs of the interactive commands. Empty disables them.
	File string `yaml:"file,omitempty"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		Advisor: AdvisorConfig{
			Backend: BackendCanned,
			Model:   "gemini-2.0-flash",
		},
		Reports: ReportsConfig{
			Database:    DefaultDatabasePath(),
			SeedSamples: true,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load reads path over the defaults, applies environment overrides and validates the result.
// A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	case os.IsNotExist(err):
	default:
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg.applyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return cfg, nil
}

// DefaultConfigPath returns carewizard.yaml in the working directory.
func DefaultConfigPath() string {
	cwd, err := os.Getwd()
	if err != nil {
		return DefaultConfigFilename
	}
	return filepath.Join(cwd, DefaultConfigFilename)
}

// DefaultDatabasePath returns carewizard/reports.db under the user configuration directory,
// or reports.db in the working directory when that directory is unknown.
func DefaultDatabasePath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "reports.db"
	}
	return filepath.Join(dir, "carewizard", "reports.db")
}

// Save writes the configuration to path.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

func (c *Config) applyEnvOverrides() {
	if key := os.Getenv(EnvGenAIAPIKey); key != "" {
		c.Advisor.APIKey = key
	}
	if level := os.Getenv(EnvLogLevel); level != "" {
		c.Logging.Level = level
	}
}

// Validate checks the values that cannot be fixed up later.
func (c *Config) Validate() error {
	c.Advisor.Backend = strings.ToLower(strings.TrimSpace(c.Advisor.Backend))
	switch c.Advisor.Backend {
	case BackendCanned:
	case BackendGenAI:
		if c.Advisor.APIKey == "" {
			return fmt.Errorf("%w (set %s)", ErrMissingAPIKey, EnvGenAIAPIKey)
		}
	default:
		return fmt.Errorf("%w: %q", ErrInvalidBackend, c.Advisor.Backend)
	}

	if _, err := c.LogLevel(); err != nil {
		return err
	}
	return nil
}

// LogLevel parses Logging.Level.
func (c *Config) LogLevel() (zapcore.Level, error) {
	lvl, err := zapcore.ParseLevel(c.Logging.Level)
	if err != nil {
		return zapcore.InfoLevel, fmt.Errorf("%w: %q", ErrInvalidLogLevel, c.Logging.Level)
	}
	return lvl, nil
}
