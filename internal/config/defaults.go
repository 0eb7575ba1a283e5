package config

import (
	_ "embed"
)

//go:embed defaults/tetris.yaml
var defaultTetrisYAML []byte

// DefaultTetrisConfig returns the built-in configuration.
// It matches defaults/tetris.yaml.
func DefaultTetrisConfig() TetrisConfig {
	return TetrisConfig{
		Gravity: GravityConfig{
			InitialIntervalMS: 800,
			MinIntervalMS:     100,
			LevelStepMS:       50,
		},
		Keys: KeysConfig{
			Left:     []string{"left", "a", "h"},
			Right:    []string{"right", "d", "l"},
			SoftDrop: []string{"down", "s", "j"},
			Rotate:   []string{"up", "w", "k"},
			HardDrop: []string{" "},
			Pause:    []string{"p"},
			Restart:  []string{"r"},
		},
	}
}

// DefaultYAML returns the embedded default YAML, e.g. for `tetris config`-style dumps.
func DefaultYAML() []byte {
	return defaultTetrisYAML
}
