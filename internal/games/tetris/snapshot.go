package tetris

// Stats is the score panel data.
type Stats struct {
	Score int
	Level int
	Lines int
}

// Snapshot is an immutable copy of the engine state for rendering and tests.
// Mutating a snapshot never affects the engine.
type Snapshot struct {
	Board    Board
	Active   *Piece
	Next     *Piece
	Score    int
	Level    int
	Lines    int
	GameOver bool
}

// Snapshot returns a copy of the current state.
func (e *Engine) Snapshot() Snapshot {
	return Snapshot{
		Board:    e.board,
		Active:   clonePiece(e.active),
		Next:     clonePiece(e.next),
		Score:    e.score,
		Level:    e.level,
		Lines:    e.lines,
		GameOver: e.gameOver,
	}
}

func clonePiece(p *Piece) *Piece {
	if p == nil {
		return nil
	}
	c := p.Clone()
	return &c
}

// Stats returns the score, level and line count.
func (s Snapshot) Stats() Stats {
	return Stats{Score: s.Score, Level: s.Level, Lines: s.Lines}
}

// Composite returns the board with the active piece drawn over a copy of it.
// Cells of the piece outside the board are skipped.
func (s Snapshot) Composite() Board {
	grid := s.Board
	if s.Active == nil {
		return grid
	}
	for _, c := range s.Active.Cells() {
		if c.X < 0 || c.X >= Width || c.Y < 0 || c.Y >= Height {
			continue
		}
		grid[c.Y][c.X] = s.Active.Kind
	}
	return grid
}
