package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/jakechorley/volunteer-manager/pkg/core/model"
)

// Storage backends
const (
	BackendFile     = "file"
	BackendSQLite   = "sqlite"
	BackendPostgres = "postgres"
	BackendSheets   = "sheets"
)

// StorageConfig selects where the volunteer and event lists are kept
type StorageConfig struct {
	Backend       string `yaml:"backend" env:"VOLUNTEER_STORAGE_BACKEND" validate:"required,oneof=file sqlite postgres sheets"`
	SQLitePath    string `yaml:"sqlitePath,omitempty" validate:"required_if=Backend sqlite"`
	DatabaseURL   string `yaml:"databaseURL,omitempty" env:"VOLUNTEER_DATABASE_URL" validate:"required_if=Backend postgres"`
	SpreadsheetID string `yaml:"spreadsheetID,omitempty" validate:"required_if=Backend sheets"`
}

// SheetsConfig locates the roster to import volunteers from and the tab events are published to
type SheetsConfig struct {
	RosterSheetID  string `yaml:"rosterSheetID,omitempty" validate:"required_with=RosterTab"`
	RosterTab      string `yaml:"rosterTab,omitempty" validate:"required_with=RosterSheetID"`
	PublishSheetID string `yaml:"publishSheetID,omitempty" validate:"required_with=PublishTab"`
	PublishTab     string `yaml:"publishTab,omitempty" validate:"required_with=PublishSheetID"`
}

// PreferencesConfig holds user preferences
type PreferencesConfig struct {
	DataPath string `yaml:"dataPath,omitempty"`
}

// Config represents the application configuration
type Config struct {
	Storage     StorageConfig     `yaml:"storage"`
	Sheets      SheetsConfig      `yaml:"sheets,omitempty"`
	Preferences PreferencesConfig `yaml:"preferences,omitempty"`
}

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// Default returns the configuration used when no config file exists: a JSON file in data/
func Default() *Config {
	return &Config{
		Storage:     StorageConfig{Backend: BackendFile},
		Preferences: PreferencesConfig{DataPath: model.DefaultUserPrefs().DataPath},
	}
}

// Load loads and validates the configuration for env from volunteer_config[.env].yaml
// It looks for the config file in the current directory first, then in the user's home directory.
// If neither has one, the defaults are used.
func Load(env string) (*Config, error) {
	configPath, err := findConfigFile(env)
	if err != nil {
		cfg := Default()
		if err := applyEnv(cfg); err != nil {
			return nil, err
		}
		if err := Validate(cfg); err != nil {
			return nil, err
		}
		return cfg, nil
	}

	return LoadFromPath(configPath)
}

// LoadFromPath loads and validates the configuration from a specific path
func LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := applyEnv(cfg); err != nil {
		return nil, err
	}

	if err := Validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// applyEnv overrides file values with any VOLUNTEER_* environment variables that are set
func applyEnv(cfg *Config) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("failed to parse environment overrides: %w", err)
	}
	return nil
}

// Validate validates the configuration struct
func Validate(cfg *Config) error {
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	return nil
}

// UserPrefs returns the model preferences described by the config
func (c *Config) UserPrefs() model.UserPrefs {
	prefs := model.DefaultUserPrefs()
	if c.Preferences.DataPath != "" {
		prefs.DataPath = c.Preferences.DataPath
	}
	return prefs
}

// findConfigFile returns the config file for env ("volunteer_config.test.yaml" for env "test")
func findConfigFile(env string) (string, error) {
	return findFile(envFileName("volunteer_config", env, "yaml"))
}

// envFileName builds base[.env].ext
func envFileName(base, env, ext string) string {
	if env == "" {
		return base + "." + ext
	}
	return base + "." + env + "." + ext
}

// findFile looks for fileName in the current directory, then in the home directory
func findFile(fileName string) (string, error) {
	if _, err := os.Stat(fileName); err == nil {
		return fileName, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	homePath := filepath.Join(homeDir, fileName)
	if _, err := os.Stat(homePath); err == nil {
		return homePath, nil
	}

	return "", fmt.Errorf("%s not found in current directory or home directory", fileName)
}
