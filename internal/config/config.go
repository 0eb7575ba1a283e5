// Package config provides YAML-based configuration loading for the game:
// the gravity schedule and the key bindings.
package config

import (
	"errors"
	"fmt"
)

// TetrisConfig contains all user-tunable configuration.
type TetrisConfig struct {
	Gravity GravityConfig `yaml:"gravity"`
	Keys    KeysConfig    `yaml:"keys"`
}

// GravityConfig defines how fast pieces fall per level.
// interval = max(min, initial - (level-1)*step)
type GravityConfig struct {
	InitialIntervalMS int `yaml:"initial_interval_ms"`
	MinIntervalMS     int `yaml:"min_interval_ms"`
	LevelStepMS       int `yaml:"level_step_ms"`
}

// KeysConfig lists the key names bound to each player intent.
type KeysConfig struct {
	Left     []string `yaml:"left"`
	Right    []string `yaml:"right"`
	SoftDrop []string `yaml:"soft_drop"`
	Rotate   []string `yaml:"rotate"`
	HardDrop []string `yaml:"hard_drop"`
	Pause    []string `yaml:"pause"`
	Restart  []string `yaml:"restart"`
}

var (
	ErrInvalidGravity = errors.New("invalid gravity settings")
	ErrUnboundIntent  = errors.New("intent has no key bound")
)

// Validate checks that the configuration can drive a game.
func (c TetrisConfig) Validate() error {
	g := c.Gravity
	if g.InitialIntervalMS <= 0 || g.MinIntervalMS <= 0 {
		return fmt.Errorf("config: %w: intervals must be positive (initial=%d, min=%d)",
			ErrInvalidGravity, g.InitialIntervalMS, g.MinIntervalMS)
	}
	if g.LevelStepMS < 0 {
		return fmt.Errorf("config: %w: level_step_ms must not be negative (got %d)",
			ErrInvalidGravity, g.LevelStepMS)
	}
	if g.MinIntervalMS > g.InitialIntervalMS {
		return fmt.Errorf("config: %w: min_interval_ms %d exceeds initial_interval_ms %d",
			ErrInvalidGravity, g.MinIntervalMS, g.InitialIntervalMS)
	}

	intents := []struct {
		name string
		keys []string
	}{
		{"left", c.Keys.Left},
		{"right", c.Keys.Right},
		{"soft_drop", c.Keys.SoftDrop},
		{"rotate", c.Keys.Rotate},
		{"hard_drop", c.Keys.HardDrop},
	}
	for _, in := range intents {
		if len(in.keys) == 0 {
			return fmt.Errorf("config: %w: %s", ErrUnboundIntent, in.name)
		}
	}
	return nil
}
