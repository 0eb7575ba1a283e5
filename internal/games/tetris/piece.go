package tetris

// Kind is the content of a board cell: empty or the tetromino that filled it.
// Gameplay treats every non-empty kind the same; the kind only drives color.
type Kind uint8

const (
	Empty Kind = iota
	I
	O
	T
	S
	Z
	J
	L
)

// Kinds lists the seven tetrominoes in a fixed order.
var Kinds = [...]Kind{I, O, T, S, Z, J, L}

// String returns the single-letter name of the kind.
func (k Kind) String() string {
	switch k {
	case I:
		return "I"
	case O:
		return "O"
	case T:
		return "T"
	case S:
		return "S"
	case Z:
		return "Z"
	case J:
		return "J"
	case L:
		return "L"
	default:
		return "."
	}
}

// Shape is a rectangular occupancy grid, indexed [row][col] from its top-left origin.
type Shape [][]bool

// shapes holds the spawn orientation of each tetromino.
// Rotations are derived at runtime by Shape.Rotate.
var shapes = map[Kind]Shape{
	I: {
		{true, true, true, true},
	},
	O: {
		{true, true},
		{true, true},
	},
	T: {
		{true, true, true},
		{false, true, false},
	},
	S: {
		{false, true, true},
		{true, true, false},
	},
	Z: {
		{true, true, false},
		{false, true, true},
	},
	J: {
		{true, false, false},
		{true, true, true},
	},
	L: {
		{false, false, true},
		{true, true, true},
	},
}

// ShapeOf returns a fresh copy of the spawn shape for a kind.
// Empty has no shape and returns nil.
func ShapeOf(k Kind) Shape {
	s, ok := shapes[k]
	if !ok {
		return nil
	}
	return s.Clone()
}

// Rows returns the shape height.
func (s Shape) Rows() int {
	return len(s)
}

// Cols returns the shape width.
func (s Shape) Cols() int {
	if len(s) == 0 {
		return 0
	}
	return len(s[0])
}

// Rotate returns the shape turned a quarter clockwise: transpose, then
// reverse each resulting row. The receiver is not modified.
func (s Shape) Rotate() Shape {
	rows, cols := s.Rows(), s.Cols()
	out := make(Shape, cols)
	for i := range cols {
		out[i] = make([]bool, rows)
		for j := range rows {
			out[i][j] = s[rows-1-j][i]
		}
	}
	return out
}

// Clone returns a deep copy of the shape.
func (s Shape) Clone() Shape {
	out := make(Shape, len(s))
	for y, row := range s {
		out[y] = make([]bool, len(row))
		copy(out[y], row)
	}
	return out
}

// Equal reports whether two shapes have the same dimensions and cells.
func (s Shape) Equal(other Shape) bool {
	if s.Rows() != other.Rows() || s.Cols() != other.Cols() {
		return false
	}
	for y := range s {
		for x := range s[y] {
			if s[y][x] != other[y][x] {
				return false
			}
		}
	}
	return true
}

// each calls fn with the shape-relative coordinates of every occupied cell.
func (s Shape) each(fn func(x, y int)) {
	for y, row := range s {
		for x, filled := range row {
			if filled {
				fn(x, y)
			}
		}
	}
}

// Position is a board coordinate; for a piece it locates the shape's origin.
type Position struct {
	X, Y int
}

// Piece is a tetromino placed on the board.
type Piece struct {
	Kind  Kind
	Shape Shape
	Pos   Position
}

// SpawnPosition is where every new piece appears.
var SpawnPosition = Position{X: Width/2 - 1, Y: 0}

// NewPiece creates a piece of the given kind at the spawn position.
func NewPiece(k Kind) Piece {
	return Piece{
		Kind:  k,
		Shape: ShapeOf(k),
		Pos:   SpawnPosition,
	}
}

// Clone returns a copy of the piece that shares no memory with the original.
func (p Piece) Clone() Piece {
	p.Shape = p.Shape.Clone()
	return p
}

// Cells returns the board coordinates the piece covers at its position.
func (p Piece) Cells() []Position {
	cells := make([]Position, 0, 4)
	p.Shape.each(func(x, y int) {
		cells = append(cells, Position{X: p.Pos.X + x, Y: p.Pos.Y + y})
	})
	return cells
}
