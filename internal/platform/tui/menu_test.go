package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-tetris/internal/storage"
)

func TestMenuNavigation(t *testing.T) {
	m := NewMenuModel(nil, testRuntime())
	if len(m.items) == 0 {
		t.Fatal("menu should list registered games")
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyUp})
	m = next.(MenuModel)
	if m.cursor != 0 {
		t.Error("cursor should not move above the first item")
	}

	for range len(m.items) + 3 {
		next, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
		m = next.(MenuModel)
	}
	if m.cursor != len(m.items)-1 {
		t.Errorf("cursor = %d, expected %d", m.cursor, len(m.items)-1)
	}

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(MenuModel)
	if m.Selected() == nil || cmd == nil {
		t.Fatal("enter should select the current item")
	}
	if m.Selected().GameID != m.Current().GameID {
		t.Error("selection should be the item under the cursor")
	}
}

func TestMenuShowsHighScore(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()
	store.SaveScore("tui-stub", storage.Result{Score: 4200, Level: 4, Lines: 33})

	m := NewMenuModel(store, testRuntime())

	if !strings.Contains(m.View(), "best 4200") {
		t.Error("menu should show the best score")
	}
}

func TestCenterText(t *testing.T) {
	if got := centerText("ab", 6); got != "  ab" {
		t.Errorf("centerText = %q, expected %q", got, "  ab")
	}
	if got := centerText("toolong", 3); got != "toolong" {
		t.Errorf("centerText should not pad text wider than the screen, got %q", got)
	}
}
