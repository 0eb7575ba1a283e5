package tetris

import (
	"time"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/registry"
)

// GameID is the registry and score-table identifier.
const GameID = "tetris"

// Minimum terminal size: well (22x22) + side panel.
const (
	minScreenW = 40
	minScreenH = 22
)

// configPath stores the custom config path set via CLI
var configPath string

// SetConfigPath sets the config file path used on the next Reset.
func SetConfigPath(path string) {
	configPath = path
}

func init() {
	registry.Register(GameID, func() registry.Game {
		return New()
	})
}

// Game adapts Engine to the platform step loop. Each Step applies the
// frame's actions in arrival order, then advances the gravity clock.
type Game struct {
	engine   *Engine
	clock    Clock
	schedule *config.GravitySchedule
	cfg      config.TetrisConfig

	// armedLevel is the level the clock interval was computed for.
	armedLevel int
	frame      time.Duration
	tick       uint64

	screenW  int
	screenH  int
	paused   bool
	tooSmall bool
}

var _ registry.Resizer = (*Game)(nil)

// New creates a new game instance. Call Reset before stepping it.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Tetris"
}

// Reset loads configuration and starts a new game from cfg.Seed.
// Any pending gravity tick from the previous game is discarded.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	gameCfg, err := config.LoadTetris(configPath)
	if err != nil {
		gameCfg = config.DefaultTetrisConfig()
	}
	g.cfg = gameCfg
	g.schedule = config.NewGravitySchedule(gameCfg.Gravity)

	tickRate := cfg.TickRate
	if tickRate <= 0 {
		tickRate = core.DefaultConfig().TickRate
	}
	g.frame = time.Second / time.Duration(tickRate)
	g.tick = 0
	g.paused = false
	g.Resize(cfg.ScreenW, cfg.ScreenH)

	if g.engine == nil {
		g.engine = NewEngine(cfg.Seed)
	} else {
		g.engine.Reset(cfg.Seed)
	}
	g.armedLevel = g.engine.Level()
	g.clock.Arm(g.schedule.Interval(g.armedLevel))
}

// Resize updates the screen dimensions without touching game state.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.tooSmall = w < minScreenW || h < minScreenH
}

// Step applies one frame of input and gravity.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if g.engine == nil || g.engine.GameOver() {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused || g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	changed := false
	for _, a := range in.Actions() {
		if g.apply(a) {
			changed = true
		}
		g.syncClock()
	}

	if g.clock.Advance(g.frame) {
		if g.engine.Tick() {
			changed = true
		}
		g.syncClock()
	}

	return core.StepResult{State: g.State(), Changed: changed}
}

// apply routes one action to the matching engine command.
func (g *Game) apply(a core.Action) bool {
	switch a {
	case core.ActionLeft:
		return g.engine.Move(-1)
	case core.ActionRight:
		return g.engine.Move(1)
	case core.ActionDown:
		return g.engine.Tick()
	case core.ActionRotate:
		return g.engine.Rotate()
	case core.ActionDrop:
		return g.engine.HardDrop()
	}
	return false
}

// syncClock re-arms gravity after a level change and stops it on game over.
func (g *Game) syncClock() {
	if g.engine.GameOver() {
		g.clock.Stop()
		return
	}
	if lvl := g.engine.Level(); lvl != g.armedLevel {
		g.armedLevel = lvl
		g.clock.Arm(g.schedule.Interval(lvl))
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.engine == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:    g.engine.Score(),
		Level:    g.engine.Level(),
		Lines:    g.engine.Lines(),
		GameOver: g.engine.GameOver(),
		Paused:   g.paused || g.tooSmall,
	}
}

// Snapshot returns a copy of the engine state.
func (g *Game) Snapshot() Snapshot {
	return g.engine.Snapshot()
}

// GravityInterval returns the period the gravity clock is armed with.
func (g *Game) GravityInterval() time.Duration {
	return g.clock.Interval()
}
