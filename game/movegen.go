package game

import "fmt"

// LegalMoves enumerates every legal move for color on the board, in
// row-major scan order (row first, then column). The order matters: the
// searchers inherit it as their tie-break order, so both minimax and
// alpha-beta pick the same move among equals.
func LegalMoves(b Board, c Color) []Move {
	var moves []Move
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			s := Square{row, col}
			flips := flipsFor(b, s, c, Directions[:])
			if len(flips) > 0 {
				moves = append(moves, Move{To: s, Flips: flips})
			}
		}
	}
	return moves
}

// Apply places a disc of color at the move's square and flips every
// bracketed opponent disc, returning the resulting board. The input board
// is left untouched. The flip set is recomputed from the board, so a
// stale or tampered Move.Flips cannot corrupt the result.
func Apply(b Board, m Move, c Color) (Board, error) {
	if !InBounds(m.To.Row, m.To.Col) {
		return b, fmt.Errorf("%w: %v", ErrOutOfBounds, m.To)
	}
	flips := flipsFor(b, m.To, c, Directions[:])
	if len(flips) == 0 {
		return b, fmt.Errorf("%w: %v is not legal for %v", ErrIllegalMove, m.To, c)
	}
	next := b
	next.setDisc(m.To, c)
	for _, s := range flips {
		next.setDisc(s, c)
	}
	return next, nil
}

// flipsFor computes the full flip set for placing color at s: the union
// over the given directions of every bracketed opponent line. The result
// is empty when s is occupied or no direction brackets, i.e. exactly when
// the move is illegal. Directions are disjoint lines from s, so the union
// is the same whatever order they are scanned in.
func flipsFor(b Board, s Square, c Color, dirs []Direction) []Square {
	if b.at(s) != Empty {
		return nil
	}
	var flips []Square
	for _, d := range dirs {
		flips = append(flips, flipsAlong(b, s, d, c)...)
	}
	return flips
}

// flipsAlong returns the opponent discs bracketed in one direction: a run
// of one or more opponent discs immediately followed by a disc of color.
// Anything else (edge, empty cell, own disc first) brackets nothing.
func flipsAlong(b Board, s Square, d Direction, c Color) []Square {
	opponent := Cell(c.Opponent())
	var run []Square
	for _, sq := range b.Line(s, d) {
		switch b.at(sq) {
		case opponent:
			run = append(run, sq)
		case Cell(c):
			return run
		default:
			return nil
		}
	}
	return nil
}
