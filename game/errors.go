package game

import "errors"

var (
	// ErrOutOfBounds reports a coordinate outside the 8x8 grid. Input
	// validated against LegalMoves never triggers it.
	ErrOutOfBounds = errors.New("coordinates are out of range")

	// ErrIllegalMove reports a move that is not legal for the current
	// player, or any move attempted on a finished game.
	ErrIllegalMove = errors.New("illegal move")
)
