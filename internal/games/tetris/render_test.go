package tetris

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// wellOrigin is the top-left wall corner on an 80x24 screen.
var wellOrigin = core.NewRect(0, 0, 80, 24).Centered(wellW+gap+panelW, wellH)

func cellAt(scr *core.Screen, x, y int) core.Cell {
	return scr.GetCell(wellOrigin.X+1+x*cellWidth, wellOrigin.Y+1+y)
}

func TestRenderDrawsActiveAndLocked(t *testing.T) {
	g := newTestGame(t, O)
	g.engine.board[19][0] = I
	board := g.engine.board
	scr := core.NewScreen(80, 24)

	g.Render(scr)

	if c := cellAt(scr, 4, 0); c.Rune != '█' || c.Color != core.ColorYellow {
		t.Errorf("active O cell = %+v, expected yellow block", c)
	}
	if c := cellAt(scr, 0, 19); c.Rune != '█' || c.Color != core.ColorCyan {
		t.Errorf("locked I cell = %+v, expected cyan block", c)
	}
	if c := cellAt(scr, 9, 10); c.Rune == '█' {
		t.Error("empty cell drawn as a block")
	}
	if g.engine.board != board {
		t.Error("Render must not modify the board")
	}
}

func TestRenderPanel(t *testing.T) {
	g := newTestGame(t, O)
	g.engine.score = 1200
	scr := core.NewScreen(80, 24)

	g.Render(scr)

	out := scr.String()
	for _, want := range []string{"T E T R I S", "Score", "1200", "Level", "Lines", "Next"} {
		if !strings.Contains(out, want) {
			t.Errorf("panel missing %q", want)
		}
	}
}

func TestRenderOverlays(t *testing.T) {
	g := newTestGame(t, O)
	scr := core.NewScreen(80, 24)

	g.Step(frame(core.ActionPause))
	g.Render(scr)
	if !strings.Contains(scr.String(), "PAUSED") {
		t.Error("expected pause overlay")
	}

	g.Step(frame(core.ActionPause))
	g.engine.gameOver = true
	g.Render(scr)
	out := scr.String()
	if !strings.Contains(out, "GAME OVER") {
		t.Error("expected game over overlay")
	}
	if strings.Contains(out, "PAUSED") {
		t.Error("pause overlay should be gone")
	}
}

func TestRenderTooSmall(t *testing.T) {
	g := newTestGame(t, O)
	g.Resize(30, 10)
	scr := core.NewScreen(30, 10)

	g.Render(scr)

	if !strings.Contains(scr.String(), "Window too small") {
		t.Error("expected too-small message")
	}
}

func TestColorOf(t *testing.T) {
	seen := make(map[core.Color]Kind)
	for _, k := range Kinds {
		c := ColorOf(k)
		if c == core.ColorDefault {
			t.Errorf("%s has no color", k)
		}
		if prev, ok := seen[c]; ok {
			t.Errorf("%s and %s share a color", prev, k)
		}
		seen[c] = k
	}
	if ColorOf(Empty) != core.ColorDefault {
		t.Error("Empty should use the default color")
	}
}
