// pkg/core/config.go
package core

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// EnvCacheDir overrides the default cache location.
const EnvCacheDir = "RESLOC_CACHE_DIR"

// Config holds resloc configuration
type Config struct {
	Package      string   `yaml:"package"`       // Package the tool locates resources for
	APIVersion   string   `yaml:"api_version"`   // major.minor naming the resource dir
	Layout       string   `yaml:"layout"`        // Packaging flavor: res, share, flat
	SourceDir    string   `yaml:"source_dir"`    // Checkout root for uninstalled mode
	UserIncludes []string `yaml:"user_includes"` // Highest-priority search dirs
	SystemDirs   []string `yaml:"system_dirs"`   // System-wide search dirs
	CachePath    string   `yaml:"cache_path"`    // Synced index and unpacked bundles
	Extensions   []string `yaml:"extensions"`    // Resource file extensions
	Debug        bool     `yaml:"debug"`
}

// DefaultConfig returns a default configuration
func DefaultConfig() *Config {
	return &Config{
		Package:    "resloc",
		APIVersion: "1.0",
		Layout:     "res",
		SystemDirs: []string{
			"/usr/local/share/resloc",
			"/usr/share/resloc",
		},
		CachePath:  getDefaultCachePath(),
		Extensions: []string{".m4"},
		Debug:      false,
	}
}

// LoadConfig loads configuration from file
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return DefaultConfig(), nil
		}
		path = filepath.Join(home, ".config", "resloc", "config.yaml")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}

// SaveConfig saves configuration to file
func SaveConfig(cfg *Config, path string) error {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return err
		}
		path = filepath.Join(home, ".config", "resloc", "config.yaml")
	}

	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	return nil
}

func getDefaultCachePath() string {
	if path := os.Getenv(EnvCacheDir); path != "" {
		return path
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(os.TempDir(), "resloc")
	}

	return filepath.Join(home, ".cache", "resloc")
}
