package config

import (
	_ "embed"
)

//go:embed defaults/term2048.yaml
var defaultYAML []byte

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Game:     GameConfig{GridSize: 4},
		Playback: PlaybackConfig{DelayMS: 250},
		Storage:  StorageConfig{DBPath: "~/.term2048/scores.db"},
	}
}
