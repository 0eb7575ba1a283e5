// Package tetris implements the classic falling-block game.
//
// Engine holds the rules: collision, locking, line clears, scoring and
// leveling. It is driven by discrete commands (Move, Rotate, Tick, HardDrop,
// Reset) and never fails: a command that cannot apply leaves the state as it
// was. Game adapts the engine to the platform's fixed-rate step loop and owns
// the gravity Clock.
package tetris

import (
	"math/rand"
)

const (
	linePoints    = 100
	linesPerLevel = 10
)

// Engine owns a single game's state. It is not safe for concurrent use;
// the platform serializes all commands onto one goroutine.
type Engine struct {
	rng *rand.Rand

	board    Board
	active   *Piece
	next     *Piece
	score    int
	level    int
	lines    int
	gameOver bool
}

// NewEngine creates an engine with a fresh game seeded by seed.
func NewEngine(seed int64) *Engine {
	e := &Engine{}
	e.Reset(seed)
	return e
}

// Reset starts a new game: empty board, zero score and lines, level 1,
// two new random pieces.
func (e *Engine) Reset(seed int64) {
	e.rng = rand.New(rand.NewSource(seed))
	e.board = Board{}
	e.score = 0
	e.level = 1
	e.lines = 0
	e.gameOver = false
	active := e.randomPiece()
	next := e.randomPiece()
	e.active = &active
	e.next = &next
}

// randomPiece picks a kind uniformly and places it at the spawn position.
func (e *Engine) randomPiece() Piece {
	return NewPiece(Kinds[e.rng.Intn(len(Kinds))])
}

// playable reports whether commands other than Reset may act.
func (e *Engine) playable() bool {
	return e.active != nil && !e.gameOver
}

// Move shifts the active piece one column left (dir < 0) or right (dir > 0).
// Returns false when the move is blocked or not applicable.
func (e *Engine) Move(dir int) bool {
	if !e.playable() || dir == 0 {
		return false
	}
	if dir < 0 {
		dir = -1
	} else {
		dir = 1
	}

	pos := e.active.Pos
	pos.X += dir
	if !e.board.Fits(e.active.Shape, pos) {
		return false
	}
	e.active.Pos = pos
	return true
}

// Rotate turns the active piece a quarter clockwise in place.
// There are no kicks: if the rotated shape does not fit at the same
// position the rotation is rejected.
func (e *Engine) Rotate() bool {
	if !e.playable() {
		return false
	}

	rotated := e.active.Shape.Rotate()
	if !e.board.Fits(rotated, e.active.Pos) {
		return false
	}
	e.active.Shape = rotated
	return true
}

// Tick applies one step of gravity. The active piece moves down a row if it
// can; otherwise it locks where it is, full rows clear, score and level
// update, and the next piece spawns. Returns false only when no-op.
func (e *Engine) Tick() bool {
	if !e.playable() {
		return false
	}

	pos := e.active.Pos
	pos.Y++
	if e.board.Fits(e.active.Shape, pos) {
		e.active.Pos = pos
		return true
	}

	e.lock()
	return true
}

// HardDrop drops the active piece straight to its resting row and locks it.
func (e *Engine) HardDrop() bool {
	if !e.playable() {
		return false
	}

	e.active.Pos.Y = e.dropRow()
	return e.Tick()
}

// dropRow returns the lowest row the active piece can reach from its
// current position without passing through anything.
func (e *Engine) dropRow() int {
	pos := e.active.Pos
	for e.board.Fits(e.active.Shape, Position{X: pos.X, Y: pos.Y + 1}) {
		pos.Y++
	}
	return pos.Y
}

// lock merges the active piece into the board and advances to the next piece.
func (e *Engine) lock() {
	e.board.Lock(*e.active)

	cleared := e.board.ClearLines()
	e.score += cleared * linePoints * e.level
	e.lines += cleared
	e.level = e.lines/linesPerLevel + 1

	e.active = e.next
	next := e.randomPiece()
	e.next = &next

	if e.active != nil && !e.board.Fits(e.active.Shape, SpawnPosition) {
		e.gameOver = true
	}
}

// Score returns the current score.
func (e *Engine) Score() int {
	return e.score
}

// Level returns the current level, starting at 1.
func (e *Engine) Level() int {
	return e.level
}

// Lines returns the total number of cleared rows.
func (e *Engine) Lines() int {
	return e.lines
}

// GameOver reports whether a spawned piece collided with the stack.
func (e *Engine) GameOver() bool {
	return e.gameOver
}
