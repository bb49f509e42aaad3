package core

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config is the persisted BirdNest configuration. It is loaded once at
// startup and only written back by explicit `config set` actions.
type Config struct {
	// PackageManager forces a system backend ("pikman" or "apt");
	// "auto" probes the host.
	PackageManager string `yaml:"package_manager"`
	AutoConfirm    bool   `yaml:"auto_confirm"`
	FlatpakEnabled bool   `yaml:"flatpak_enabled"`
}

// DefaultConfig returns the configuration written on first run.
func DefaultConfig() Config {
	return Config{
		PackageManager: string(KindAuto),
		AutoConfirm:    false,
		FlatpakEnabled: true,
	}
}

// ConfigPath returns the per-user config file location.
func ConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}
	return filepath.Join(home, ".config", "birdnest", "config.yaml"), nil
}

// LoadConfig loads the configuration from path, or from the per-user
// location when path is empty. A missing file yields defaults, persisted
// for the next run; a malformed file is a ConfigError.
func LoadConfig(path string) (Config, error) {
	if path == "" {
		var err error
		path, err = ConfigPath()
		if err != nil {
			return DefaultConfig(), nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg := DefaultConfig()
			// First-run write is best effort; a read-only home
			// should not block operation.
			_ = SaveConfig(cfg, path)
			return cfg, nil
		}
		return Config{}, &ConfigError{Path: path, Err: err}
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, &ConfigError{Path: path, Err: err}
	}

	if cfg.PackageManager == "" {
		cfg.PackageManager = string(KindAuto)
	}
	if !BackendKind(cfg.PackageManager).Valid() {
		return Config{}, &ConfigError{
			Path: path,
			Err:  fmt.Errorf("unknown package_manager %q (want auto, pikman or apt)", cfg.PackageManager),
		}
	}

	return cfg, nil
}

// SaveConfig writes the configuration to path, or to the per-user
// location when path is empty.
func SaveConfig(cfg Config, path string) error {
	if path == "" {
		var err error
		path, err = ConfigPath()
		if err != nil {
			return err
		}
	}

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
