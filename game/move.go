package game

// Move is a disc placement for one player: the target square plus the
// opponent discs it would flip. Flips is computed by LegalMoves and is
// transient; it is never stored on the board, and Apply recomputes it
// rather than trusting the caller's copy.
type Move struct {
	To    Square
	Flips []Square
}

func (m Move) String() string {
	return m.To.String()
}
