package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load loads the configuration.
// Search order: customPath -> ~/.term2048/config.yaml -> ./configs/term2048.yaml -> embedded default.
// A custom path that cannot be read or parsed is a hard error; the
// fallback locations are best-effort.
func Load(customPath string) (Config, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return Config{}, fmt.Errorf("config: cannot read %s: %w", customPath, err)
		}
		return parse(data, customPath)
	}

	if userPath := userConfigPath(); userPath != "" {
		if data, err := os.ReadFile(userPath); err == nil {
			if cfg, err := parse(data, userPath); err == nil {
				return cfg, nil
			}
		}
	}

	if data, err := os.ReadFile("configs/term2048.yaml"); err == nil {
		if cfg, err := parse(data, "configs/term2048.yaml"); err == nil {
			return cfg, nil
		}
	}

	cfg, err := parse(defaultYAML, "embedded default")
	if err != nil {
		return Default(), nil
	}
	return cfg, nil
}

// parse unmarshals and validates one config source. Missing fields fall
// back to the built-in defaults.
func parse(data []byte, source string) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: cannot parse %s: %w", source, err)
	}
	if cfg.Game.GridSize < 2 {
		return Config{}, fmt.Errorf("config: %s: grid_size %d is below the minimum of 2", source, cfg.Game.GridSize)
	}
	if cfg.Playback.DelayMS < 0 {
		return Config{}, fmt.Errorf("config: %s: delay_ms must not be negative", source)
	}
	return cfg, nil
}

// userConfigPath returns the per-user config location, or empty if the
// home directory is unavailable.
func userConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".term2048", "config.yaml")
}
