package game

// Evaluator scores a board from one color's perspective. Higher is
// strictly better for that color. Evaluators are pure: they depend only
// on the board content and the two colors, never on turn or history.
type Evaluator func(b Board, c Color) int

// DiscDifferential scores a board as own discs minus opponent discs, the
// zero-sum baseline every search depth bottoms out on.
func DiscDifferential(b Board, c Color) int {
	return b.Count(c) - b.Count(c.Opponent())
}

// Weights for Positional. Corners can never be flipped back and borders
// are hard to attack, so they outweigh interior discs.
const (
	cornerWeight   = 8
	borderWeight   = 4
	interiorWeight = 1
)

// Positional scores a board by disc placement: each disc counts its
// square's weight, signed for its owner.
func Positional(b Board, c Color) int {
	score := 0
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			cell := b.cells[row][col]
			if !cell.Occupied() {
				continue
			}
			w := squareWeight(row, col)
			if cell.Color() == c {
				score += w
			} else {
				score -= w
			}
		}
	}
	return score
}

func squareWeight(row, col int) int {
	onRowEdge := row == 0 || row == Size-1
	onColEdge := col == 0 || col == Size-1
	switch {
	case onRowEdge && onColEdge:
		return cornerWeight
	case onRowEdge || onColEdge:
		return borderWeight
	default:
		return interiorWeight
	}
}
