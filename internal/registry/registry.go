// Package registry lets games announce themselves to the platform.
// A game package registers a factory from init(); the CLI, the menu and
// the SSH sessions only ever see the registry, never the game packages.
package registry

import (
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// Game is what the platform drives once per frame. Implementations hold
// pure logic; key mapping, timing and terminal output belong to the platform.
type Game interface {
	// ID is the stable key used by the CLI and the score table.
	ID() string

	// Title is the display name.
	Title() string

	// Reset starts a fresh game sized and seeded from cfg.
	Reset(cfg core.RuntimeConfig)

	// Step applies one frame of input and advances the simulation.
	Step(in core.InputFrame) core.StepResult

	// Render draws the game into dst.
	Render(dst *core.Screen)

	// State reports score, level, lines and the game-over/paused flags.
	State() core.GameState
}

// Resizer is implemented by games that can follow a terminal resize
// without restarting. Games without it are Reset on resize.
type Resizer interface {
	Resize(w, h int)
}

// GameInfo describes a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory creates a new game instance.
type Factory func() Game

type entry struct {
	title   string
	factory Factory
}

var (
	mu      sync.RWMutex
	entries = map[string]entry{}
)

// Register adds a game factory under id. The title is read from a throwaway
// instance. Registering the same id twice panics.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, dup := entries[id]; dup {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}
	entries[id] = entry{title: f().Title(), factory: f}
}

// List returns all registered games ordered by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	games := make([]GameInfo, 0, len(entries))
	for id, e := range entries {
		games = append(games, GameInfo{ID: id, Title: e.title})
	}
	slices.SortFunc(games, func(a, b GameInfo) int {
		return strings.Compare(a.ID, b.ID)
	})
	return games
}

// Create returns a new instance of the game registered under id.
func Create(id string) (Game, error) {
	mu.RLock()
	e, ok := entries[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return e.factory(), nil
}

// Exists reports whether id is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := entries[id]
	return ok
}
