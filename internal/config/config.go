// Package config provides YAML-based configuration loading for the
// term2048 CLI. File values seed the defaults; command-line flags
// override them.
package config

// Config is the on-disk configuration.
type Config struct {
	Game     GameConfig     `yaml:"game"`
	Playback PlaybackConfig `yaml:"playback"`
	Storage  StorageConfig  `yaml:"storage"`
}

// GameConfig holds board parameters.
type GameConfig struct {
	// GridSize is the board dimension. The reference game is 4x4;
	// anything below 2 is rejected at load time.
	GridSize int `yaml:"grid_size"`
}

// PlaybackConfig holds replay pacing parameters.
type PlaybackConfig struct {
	// DelayMS paces playback so a human can follow it. Ignored in
	// unattended batch runs.
	DelayMS int `yaml:"delay_ms"`
}

// StorageConfig holds persistence parameters.
type StorageConfig struct {
	// DBPath is the SQLite high-score database location.
	DBPath string `yaml:"db_path"`
}
