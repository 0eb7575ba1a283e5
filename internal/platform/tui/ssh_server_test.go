package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
)

func updateSession(t *testing.T, m SessionModel, msg tea.Msg) (SessionModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	sm, ok := next.(SessionModel)
	if !ok {
		t.Fatalf("Update returned %T, expected SessionModel", next)
	}
	return sm, cmd
}

// selectStub moves the menu cursor onto the registered stub game.
func selectStub(t *testing.T, m SessionModel) SessionModel {
	t.Helper()
	for i, item := range m.menu.items {
		if item.GameID == "tui-stub" {
			m.menu.cursor = i
			return m
		}
	}
	t.Fatal("stub game not in menu")
	return m
}

func TestSessionIDIsUUID(t *testing.T) {
	a := NewSessionModel(nil, testRuntime(), DefaultKeyMap(), "alice")
	b := NewSessionModel(nil, testRuntime(), DefaultKeyMap(), "alice")

	if _, err := uuid.Parse(a.SessionID()); err != nil {
		t.Errorf("SessionID %q is not a UUID: %v", a.SessionID(), err)
	}
	if a.SessionID() == b.SessionID() {
		t.Error("sessions should get distinct IDs")
	}
}

func TestSessionMenuGameMenu(t *testing.T) {
	m := selectStub(t, NewSessionModel(nil, testRuntime(), DefaultKeyMap(), "alice"))

	m, cmd := updateSession(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.view != viewGame || m.game == nil {
		t.Fatal("enter should start the selected game")
	}
	if cmd == nil {
		t.Error("starting a game should schedule its first tick")
	}
	g := lastStub

	// Pause, then leave.
	g.state.Paused = true
	m, _ = updateSession(t, m, TickMsg{ID: m.game.tickID})
	m, _ = updateSession(t, m, tea.KeyMsg{Type: tea.KeyEsc})

	if m.view != viewMenu || m.game != nil {
		t.Error("back should return to the menu")
	}
	if m.quitting {
		t.Error("leaving a game must not end the session")
	}
}

func TestSessionScoreboard(t *testing.T) {
	m := NewSessionModel(nil, testRuntime(), DefaultKeyMap(), "bob")

	m, _ = updateSession(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.view != viewScores || m.scoreboard == nil {
		t.Fatal("tab should open the scoreboard")
	}
	if m.View() == "" {
		t.Error("scoreboard view should not be empty")
	}

	m, _ = updateSession(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.view != viewMenu {
		t.Error("back should return to the menu")
	}
}

func TestSessionQuit(t *testing.T) {
	m := NewSessionModel(nil, testRuntime(), DefaultKeyMap(), "carol")

	m, cmd := updateSession(t, m, runeKey('q'))
	if !m.quitting || cmd == nil {
		t.Error("q in the menu should end the session")
	}
}

func TestSessionTracksWindowSize(t *testing.T) {
	m := NewSessionModel(nil, testRuntime(), DefaultKeyMap(), "dave")

	m, _ = updateSession(t, m, tea.WindowSizeMsg{Width: 120, Height: 50})
	if m.config.ScreenW != 120 || m.menu.Config().ScreenH != 50 {
		t.Error("resize should reach the session and the menu")
	}
}
