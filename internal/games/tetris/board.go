package tetris

// Board dimensions. They never change.
const (
	Width  = 10
	Height = 20
)

// Board is the playfield, indexed [row][col] with row 0 at the top.
// It is an array so that assignment copies it.
type Board [Height][Width]Kind

// Occupied reports whether the cell at (x, y) holds a locked block.
// Coordinates off the board are reported as empty.
func (b *Board) Occupied(x, y int) bool {
	if x < 0 || x >= Width || y < 0 || y >= Height {
		return false
	}
	return b[y][x] != Empty
}

// Fits reports whether a shape placed at pos stays inside the walls and floor
// and overlaps no locked block. Cells above the top edge (y < 0) are allowed.
func (b *Board) Fits(shape Shape, pos Position) bool {
	fits := true
	shape.each(func(x, y int) {
		bx, by := pos.X+x, pos.Y+y
		switch {
		case bx < 0 || bx >= Width:
			fits = false
		case by >= Height:
			fits = false
		case by >= 0 && b[by][bx] != Empty:
			fits = false
		}
	})
	return fits
}

// Lock writes the piece's kind into every covered cell on the board.
// Cells above the top edge are dropped.
func (b *Board) Lock(p Piece) {
	for _, c := range p.Cells() {
		if c.Y < 0 || c.Y >= Height || c.X < 0 || c.X >= Width {
			continue
		}
		b[c.Y][c.X] = p.Kind
	}
}

// RowComplete reports whether every cell in row y is occupied.
func (b *Board) RowComplete(y int) bool {
	for x := range Width {
		if b[y][x] == Empty {
			return false
		}
	}
	return true
}

// ClearLines removes every complete row, shifts the remaining rows down in
// their original order, and fills the top with empty rows.
// Returns the number of rows removed.
func (b *Board) ClearLines() int {
	var out Board
	write := Height - 1
	for y := Height - 1; y >= 0; y-- {
		if b.RowComplete(y) {
			continue
		}
		out[write] = b[y]
		write--
	}
	*b = out
	return write + 1
}

// Filled returns the number of occupied cells.
func (b *Board) Filled() int {
	n := 0
	for y := range Height {
		for x := range Width {
			if b[y][x] != Empty {
				n++
			}
		}
	}
	return n
}
