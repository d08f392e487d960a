// Package config handles global configuration and ontology file resolution.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// GlobalConfig represents configuration stored in ~/.config/lcs/config.yml.
type GlobalConfig struct {
	DataDir   string `yaml:"data_dir,omitempty"`
	CacheDir  string `yaml:"cache_dir,omitempty"`
	Algorithm string `yaml:"algorithm,omitempty"`
	LogLevel  string `yaml:"log_level,omitempty"`
}

const (
	// GlobalConfigDir is the directory name under XDG_CONFIG_HOME.
	GlobalConfigDir = "lcs"
	// GlobalConfigFile is the config file name.
	GlobalConfigFile = "config.yml"
)

// Environment variables that override the config file.
const (
	EnvDataDir   = "LCS_DATA_DIR"
	EnvCacheDir  = "LCS_CACHE_DIR"
	EnvAlgorithm = "LCS_ALGORITHM"
	EnvLogLevel  = "LCS_LOG_LEVEL"
)

// DefaultDataDir is where bare ontology names are looked up when nothing is configured.
const DefaultDataDir = "data"

// globalConfigCache caches the loaded global config.
var globalConfigCache *GlobalConfig

// GlobalConfigPath returns the path to the global config file.
// Respects XDG_CONFIG_HOME, defaults to ~/.config/lcs/config.yml.
func GlobalConfigPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, GlobalConfigDir, GlobalConfigFile)
}

// LoadGlobalConfig loads the global configuration file and applies
// environment overrides. A missing file is not an error.
func LoadGlobalConfig() (*GlobalConfig, error) {
	if globalConfigCache != nil {
		return globalConfigCache, nil
	}

	cfg := &GlobalConfig{}
	if path := GlobalConfigPath(); path != "" {
		data, err := os.ReadFile(path)
		if err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("reading global config: %w", err)
		}
		if err == nil {
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parsing global config: %w", err)
			}
		}
	}

	cfg.applyEnv()

	// Expand tilde in directories
	cfg.DataDir = ExpandTilde(cfg.DataDir)
	cfg.CacheDir = ExpandTilde(cfg.CacheDir)

	globalConfigCache = cfg
	return cfg, nil
}

func (c *GlobalConfig) applyEnv() {
	if v := os.Getenv(EnvDataDir); v != "" {
		c.DataDir = v
	}
	if v := os.Getenv(EnvCacheDir); v != "" {
		c.CacheDir = v
	}
	if v := os.Getenv(EnvAlgorithm); v != "" {
		c.Algorithm = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.LogLevel = v
	}
}

// ResetGlobalConfigCache clears the cached global config.
// Useful for testing.
func ResetGlobalConfigCache() {
	globalConfigCache = nil
}

// GetDataDir returns the configured data directory, or DefaultDataDir.
func GetDataDir() string {
	cfg, err := LoadGlobalConfig()
	if err != nil || cfg.DataDir == "" {
		return DefaultDataDir
	}
	return cfg.DataDir
}

// GetCacheDir returns the configured cache directory, falling back to the
// user cache directory.
func GetCacheDir() string {
	cfg, err := LoadGlobalConfig()
	if err == nil && cfg.CacheDir != "" {
		return cfg.CacheDir
	}
	dir, err := os.UserCacheDir()
	if err != nil {
		return filepath.Join(os.TempDir(), GlobalConfigDir)
	}
	return filepath.Join(dir, GlobalConfigDir)
}

// GetAlgorithm returns the configured LCS algorithm name (may be empty).
func GetAlgorithm() string {
	cfg, err := LoadGlobalConfig()
	if err != nil {
		return ""
	}
	return cfg.Algorithm
}

// GetLogLevel returns the configured log level name (may be empty).
func GetLogLevel() string {
	cfg, err := LoadGlobalConfig()
	if err != nil {
		return ""
	}
	return cfg.LogLevel
}

// ExpandTilde expands a leading ~ to the user's home directory.
func ExpandTilde(path string) string {
	if len(path) == 0 || path[0] != '~' {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}
