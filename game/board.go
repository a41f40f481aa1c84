package game

import "fmt"

// Size is the board edge length. Othello is always played on 8x8.
const Size = 8

// Color identifies one of the two players.
type Color uint8

const (
	Black Color = 1
	White Color = 2
)

// Opponent returns the other color.
func (c Color) Opponent() Color {
	if c == Black {
		return White
	}
	return Black
}

func (c Color) String() string {
	switch c {
	case Black:
		return "Black"
	case White:
		return "White"
	default:
		return "None"
	}
}

// Cell is the content of one board square: Empty, or a disc of a Color.
type Cell uint8

const Empty Cell = 0

// Occupied reports whether the cell holds a disc.
func (c Cell) Occupied() bool {
	return c != Empty
}

// Color returns the owner of the disc in the cell. Only meaningful when
// Occupied.
func (c Cell) Color() Color {
	return Color(c)
}

// Square addresses one board cell by (row, column), both in [0, 7].
type Square struct {
	Row int
	Col int
}

func (s Square) String() string {
	return fmt.Sprintf("(%d,%d)", s.Row, s.Col)
}

// Direction is one of the eight compass direction vectors.
type Direction struct {
	DR int
	DC int
}

// Directions lists the eight compass directions, the lines along which
// discs are bracketed and flipped.
var Directions = [8]Direction{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// InBounds reports whether (row, col) is on the board.
func InBounds(row, col int) bool {
	return row >= 0 && row < Size && col >= 0 && col < Size
}

// Board is an 8x8 grid of cells. It is a plain value: assigning a Board
// copies the whole grid, so callers can branch on hypothetical moves
// without aliasing each other's state. Discs are placed and flipped only
// through Apply, never by direct cell assignment.
type Board struct {
	cells [Size][Size]Cell
}

// NewBoard returns an empty board.
func NewBoard() Board {
	return Board{}
}

// NewStartBoard returns a board with the standard four-disc central setup:
// two White discs on the main diagonal, two Black on the anti-diagonal.
func NewStartBoard() Board {
	var b Board
	b.setDisc(Square{3, 3}, White)
	b.setDisc(Square{4, 4}, White)
	b.setDisc(Square{3, 4}, Black)
	b.setDisc(Square{4, 3}, Black)
	return b
}

// NewBoardWithDiscs returns a board with the given discs already placed,
// for setting up a position directly rather than replaying a game.
// Gameplay mutation still only flows through Apply.
func NewBoardWithDiscs(black, white []Square) (Board, error) {
	var b Board
	place := func(squares []Square, c Color) error {
		for _, s := range squares {
			if !InBounds(s.Row, s.Col) {
				return fmt.Errorf("%w: %v", ErrOutOfBounds, s)
			}
			b.setDisc(s, c)
		}
		return nil
	}
	if err := place(black, Black); err != nil {
		return Board{}, err
	}
	if err := place(white, White); err != nil {
		return Board{}, err
	}
	return b, nil
}

// Cell returns the content of the cell at (row, col), or ErrOutOfBounds.
func (b Board) Cell(row, col int) (Cell, error) {
	if !InBounds(row, col) {
		return Empty, fmt.Errorf("%w: (%d,%d)", ErrOutOfBounds, row, col)
	}
	return b.cells[row][col], nil
}

// at is the unchecked accessor for callers that already validated bounds.
func (b Board) at(s Square) Cell {
	return b.cells[s.Row][s.Col]
}

func (b *Board) setDisc(s Square, c Color) {
	b.cells[s.Row][s.Col] = Cell(c)
}

// Count returns the number of discs of the given color.
func (b Board) Count(c Color) int {
	n := 0
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			if b.cells[row][col] == Cell(c) {
				n++
			}
		}
	}
	return n
}

// IsFull reports whether no empty cell remains.
func (b Board) IsFull() bool {
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			if b.cells[row][col] == Empty {
				return false
			}
		}
	}
	return true
}

// Line returns the squares reached by walking from s in direction d, in
// walk order, excluding s itself, until the board edge. The move generator
// composes this scan primitive to find bracketed discs.
func (b Board) Line(s Square, d Direction) []Square {
	var squares []Square
	row, col := s.Row+d.DR, s.Col+d.DC
	for InBounds(row, col) {
		squares = append(squares, Square{row, col})
		row += d.DR
		col += d.DC
	}
	return squares
}
