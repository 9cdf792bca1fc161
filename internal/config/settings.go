package config

import (
	"fmt"
	"os"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	defaultLogLevel    = "warn"
	defaultLogEncoding = "json"

	envLogLevel    = "MINIGREP_LOG_LEVEL"
	envLogEncoding = "MINIGREP_LOG_ENCODING"
)

var (
	validLogLevels    = []string{"debug", "info", "warn", "error"}
	validLogEncodings = []string{"json", "console"}
)

// Settings aggregates ambient runtime settings resolved from multiple sources.
// Precedence: CLI flags > YAML config > Environment variables > Defaults
type Settings struct {
	LogLevel    string
	LogEncoding string
}

// yamlSettings represents the YAML configuration file structure.
type yamlSettings struct {
	LogLevel    string `yaml:"log_level"`
	LogEncoding string `yaml:"log_encoding"`
}

// CLIOverrides holds command-line flag overrides.
type CLIOverrides struct {
	ConfigFile  string
	LogLevel    *string
	LogEncoding *string
}

// Load resolves Settings from multiple sources with precedence:
// CLI flags > YAML config > Environment variables > Defaults
func Load(overrides *CLIOverrides, lookupEnv LookupFunc) (Settings, error) {
	settings := defaultSettings()

	// Environment first so that YAML and flags can override it
	if lookupEnv != nil {
		applyEnvSettings(&settings, lookupEnv)
	}

	if overrides != nil && overrides.ConfigFile != "" {
		yamlCfg, err := loadFromFile(overrides.ConfigFile)
		if err != nil {
			return Settings{}, fmt.Errorf("load YAML config: %w", err)
		}
		applyYAMLSettings(&settings, yamlCfg)
	}

	if overrides != nil {
		applyCLIOverrides(&settings, overrides)
	}

	if err := validateSettings(settings); err != nil {
		return Settings{}, err
	}

	return settings, nil
}

// defaultSettings returns Settings with default values.
func defaultSettings() Settings {
	return Settings{
		LogLevel:    defaultLogLevel,
		LogEncoding: defaultLogEncoding,
	}
}

// loadFromFile loads settings from a YAML file.
func loadFromFile(path string) (*yamlSettings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	var yamlCfg yamlSettings
	if err := yaml.Unmarshal(data, &yamlCfg); err != nil {
		return nil, fmt.Errorf("parse YAML: %w", err)
	}

	return &yamlCfg, nil
}

func applyYAMLSettings(settings *Settings, yamlCfg *yamlSettings) {
	if level := strings.TrimSpace(yamlCfg.LogLevel); level != "" {
		settings.LogLevel = strings.ToLower(level)
	}
	if encoding := strings.TrimSpace(yamlCfg.LogEncoding); encoding != "" {
		settings.LogEncoding = strings.ToLower(encoding)
	}
}

func applyEnvSettings(settings *Settings, lookupEnv LookupFunc) {
	if level, ok := lookupEnv(envLogLevel); ok && strings.TrimSpace(level) != "" {
		settings.LogLevel = strings.ToLower(strings.TrimSpace(level))
	}
	if encoding, ok := lookupEnv(envLogEncoding); ok && strings.TrimSpace(encoding) != "" {
		settings.LogEncoding = strings.ToLower(strings.TrimSpace(encoding))
	}
}

func applyCLIOverrides(settings *Settings, overrides *CLIOverrides) {
	if overrides.LogLevel != nil && *overrides.LogLevel != "" {
		settings.LogLevel = strings.ToLower(*overrides.LogLevel)
	}
	if overrides.LogEncoding != nil && *overrides.LogEncoding != "" {
		settings.LogEncoding = strings.ToLower(*overrides.LogEncoding)
	}
}

func validateSettings(settings Settings) error {
	if !slices.Contains(validLogLevels, settings.LogLevel) {
		return fmt.Errorf("log level must be one of %s, got %q", strings.Join(validLogLevels, ", "), settings.LogLevel)
	}
	if !slices.Contains(validLogEncodings, settings.LogEncoding) {
		return fmt.Errorf("log encoding must be one of %s, got %q", strings.Join(validLogEncodings, ", "), settings.LogEncoding)
	}
	return nil
}
