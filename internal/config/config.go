package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
)

// Config holds the unified application configuration
type Config struct {
	JournalDir  string `json:"journal_dir"`
	DateFormat  string `json:"date_format"`
	DefaultView string `json:"default_view"`
	GridGap     int    `json:"grid_gap"`
}

// Settings represents the config file structure
type Settings struct {
	JournalDir  string `json:"journal_dir"`
	DateFormat  string `json:"date_format,omitempty"`
	DefaultView string `json:"default_view,omitempty"`
	GridGap     int    `json:"grid_gap,omitempty"`
}

// CLIFlags holds parsed CLI flags
type CLIFlags struct {
	JournalDir string
}

var globalConfig *Config

// Load loads configuration with priority: CLI flags > env vars > config file > default
func Load(flags CLIFlags) (*Config, error) {
	cfg := &Config{
		DateFormat:  "Jan 2, 2006",
		DefaultView: "feed",
		GridGap:     2,
	}

	// Try loading config file first for base values
	configPath, err := getConfigPath()
	if err == nil {
		if fileConfig, err := loadConfigFile(configPath); err == nil {
			if fileConfig.JournalDir != "" {
				cfg.JournalDir = expandPath(fileConfig.JournalDir)
			}
			if fileConfig.DateFormat != "" {
				cfg.DateFormat = fileConfig.DateFormat
			}
			if fileConfig.DefaultView != "" {
				cfg.DefaultView = fileConfig.DefaultView
			}
			if fileConfig.GridGap > 0 {
				cfg.GridGap = fileConfig.GridGap
			}
		}
	}

	// Priority 2: Environment variables override config file
	if envDir := os.Getenv("GLIM_JOURNAL"); envDir != "" {
		cfg.JournalDir = expandPath(envDir)
	}

	// Priority 1: CLI flags override everything
	if flags.JournalDir != "" {
		cfg.JournalDir = expandPath(flags.JournalDir)
	}

	// Default directory if nothing configured
	if cfg.JournalDir == "" {
		defaultDir, err := GetDefaultDir()
		if err != nil {
			return nil, err
		}
		cfg.JournalDir = defaultDir
	}

	globalConfig = cfg
	return cfg, nil
}

// Get returns the loaded config
func Get() *Config {
	return globalConfig
}

// GetDefaultDir returns the default journal directory path
func GetDefaultDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, "glim"), nil
}

// getConfigPath returns the path to the configuration file
func getConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".config", "glim", "config.json"), nil
}

// loadConfigFile loads configuration from the settings file
func loadConfigFile(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var settings Settings
	if err := json.Unmarshal(data, &settings); err != nil {
		return nil, err
	}

	return &settings, nil
}

// EnsureJournalDir creates the journal directory if it is missing
func (c *Config) EnsureJournalDir() error {
	return os.MkdirAll(c.JournalDir, 0755)
}

// EnsureConfigFile creates the config file with defaults if it doesn't exist
func EnsureConfigFile() error {
	configPath, err := getConfigPath()
	if err != nil {
		return err
	}

	if _, err := os.Stat(configPath); err == nil {
		return nil
	}

	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return err
	}

	defaultDir, err := GetDefaultDir()
	if err != nil {
		return err
	}

	settings := Settings{
		JournalDir:  defaultDir,
		DateFormat:  "Jan 2, 2006",
		DefaultView: "feed",
		GridGap:     2,
	}

	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0644)
}

func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(homeDir, path[2:])
	}
	return path
}
