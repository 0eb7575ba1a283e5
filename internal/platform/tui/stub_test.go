package tui

import (
	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/registry"
)

// stubGame records what the platform asks of it.
type stubGame struct {
	resets int
	cfg    core.RuntimeConfig
	frames []core.InputFrame
	state  core.GameState
}

func (g *stubGame) ID() string    { return "stub" }
func (g *stubGame) Title() string { return "Stub" }

func (g *stubGame) Reset(cfg core.RuntimeConfig) {
	g.resets++
	g.cfg = cfg
	g.state = core.GameState{Level: 1}
}

func (g *stubGame) Step(in core.InputFrame) core.StepResult {
	g.frames = append(g.frames, in.Clone())
	return core.StepResult{State: g.state}
}

func (g *stubGame) Render(dst *core.Screen) {
	dst.DrawText(0, 0, "stub")
}

func (g *stubGame) State() core.GameState { return g.state }

// resizableGame also follows terminal resizes.
type resizableGame struct {
	stubGame
	w, h int
}

func (g *resizableGame) Resize(w, h int) {
	g.w, g.h = w, h
}

var lastStub *stubGame

func init() {
	registry.Register("tui-stub", func() registry.Game {
		lastStub = &stubGame{}
		return lastStub
	})
}
