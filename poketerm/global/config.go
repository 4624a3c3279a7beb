package global

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
)

const (
	mb = 1000000

	defaultMaxLogSize = 2.5 * mb
	defaultMaxLogs    = 2
)

// GlobalConfig is read from config.json in the config dir, then overridden by environment variables
type GlobalConfig struct {
	// Directory to load data from instead of the bundled data
	DataDir string `json:"data_dir" env:"POKEDEX_DATA_DIR"`
	LogDir  string `json:"log_dir" env:"POKEDEX_LOG_DIR"`
	Debug   bool   `json:"debug" env:"POKEDEX_DEBUG"`
	// Size in bytes a log file can get to before it gets rolled over
	MaxLogSize int64 `json:"max_log_size" env:"POKEDEX_MAX_LOG_SIZE"`
	// How many log files, including the current one, are kept around
	MaxLogs int `json:"max_logs" env:"POKEDEX_MAX_LOGS"`
}

func DefaultConfigDir() string {
	configDir, _ := os.UserConfigDir()
	return filepath.Join(configDir, "pokedex")
}

func configLocation(configDir string) string {
	return filepath.Join(configDir, "config.json")
}

// LoadConfig reads the config file in configDir, writing one with default values if there isn't one yet.
// Environment variables override whatever is in the file.
func LoadConfig(configDir string) (GlobalConfig, error) {
	if err := os.MkdirAll(configDir, 0750); err != nil {
		return GlobalConfig{}, fmt.Errorf("creating config dir: %w", err)
	}

	config := GlobalConfig{}

	configContents, err := os.ReadFile(configLocation(configDir))
	switch {
	case errors.Is(err, fs.ErrNotExist) || (err == nil && len(configContents) == 0):
		config = populateConfig(configDir, config)
		if err := SaveConfig(configDir, config); err != nil {
			return GlobalConfig{}, err
		}
	case err != nil:
		return GlobalConfig{}, fmt.Errorf("reading config: %w", err)
	default:
		if err := json.Unmarshal(configContents, &config); err != nil {
			return GlobalConfig{}, fmt.Errorf("parsing %s: %w", configLocation(configDir), err)
		}
	}

	if err := env.Parse(&config); err != nil {
		return GlobalConfig{}, fmt.Errorf("parse env: %w", err)
	}

	return populateConfig(configDir, config), nil
}

func SaveConfig(configDir string, config GlobalConfig) error {
	jsonBytes, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return err
	}

	if err := os.WriteFile(configLocation(configDir), jsonBytes, 0644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	return nil
}

func populateConfig(configDir string, config GlobalConfig) GlobalConfig {
	if config.LogDir == "" {
		config.LogDir = filepath.Join(configDir, "logs")
	}
	if config.MaxLogSize <= 0 {
		config.MaxLogSize = defaultMaxLogSize
	}
	if config.MaxLogs <= 0 {
		config.MaxLogs = defaultMaxLogs
	}

	return config
}
