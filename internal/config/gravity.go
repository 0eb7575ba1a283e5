package config

import "time"

// GravitySchedule maps a level to the interval between gravity ticks.
type GravitySchedule struct {
	initial time.Duration
	min     time.Duration
	step    time.Duration
}

// NewGravitySchedule creates a schedule from config values.
func NewGravitySchedule(cfg GravityConfig) *GravitySchedule {
	return &GravitySchedule{
		initial: time.Duration(cfg.InitialIntervalMS) * time.Millisecond,
		min:     time.Duration(cfg.MinIntervalMS) * time.Millisecond,
		step:    time.Duration(cfg.LevelStepMS) * time.Millisecond,
	}
}

// DefaultGravitySchedule returns the classic 800ms → 100ms schedule.
func DefaultGravitySchedule() *GravitySchedule {
	return NewGravitySchedule(DefaultTetrisConfig().Gravity)
}

// Interval returns the gravity interval for a level (levels start at 1).
func (g *GravitySchedule) Interval(level int) time.Duration {
	if level < 1 {
		level = 1
	}
	return max(g.min, g.initial-time.Duration(level-1)*g.step)
}
