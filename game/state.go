package game

import "fmt"

// Status is the lifecycle state of a game.
type Status uint8

const (
	InProgress Status = iota
	Terminal
)

// Outcome describes where a game stands. Winner and Draw are only
// meaningful when Status is Terminal; a drawn game has Draw set and a
// zero Winner.
type Outcome struct {
	Status Status
	Winner Color
	Draw   bool
}

// GameState is a full game position: the board, the color to move, and
// the number of consecutive passes leading up to it. It is a plain value;
// Play and Pass return a new state and never mutate the receiver, so a
// search can branch on copies without any sharing between siblings.
type GameState struct {
	Board  Board
	Turn   Color
	Passes int
}

// NewGameState returns the standard starting position, Black to move.
func NewGameState() GameState {
	return GameState{Board: NewStartBoard(), Turn: Black}
}

// LegalMoves returns the moves available to the color on turn, in
// row-major order.
func (gs GameState) LegalMoves() []Move {
	return LegalMoves(gs.Board, gs.Turn)
}

// Play applies a move for the color on turn and advances the turn,
// resetting the pass count. It fails with ErrIllegalMove on a finished
// game or an illegal square, leaving the prior state untouched.
func (gs GameState) Play(m Move) (GameState, error) {
	if gs.Terminal() {
		return gs, fmt.Errorf("%w: the game is over", ErrIllegalMove)
	}
	board, err := Apply(gs.Board, m, gs.Turn)
	if err != nil {
		return gs, err
	}
	return GameState{Board: board, Turn: gs.Turn.Opponent()}, nil
}

// Pass records that the color on turn has no legal move and hands the
// turn over. Passing is itself a rule-bound event: it is illegal while a
// legal move exists or once the game is over.
func (gs GameState) Pass() (GameState, error) {
	if gs.Terminal() {
		return gs, fmt.Errorf("%w: the game is over", ErrIllegalMove)
	}
	if len(gs.LegalMoves()) > 0 {
		return gs, fmt.Errorf("%w: %v has a legal move and cannot pass", ErrIllegalMove, gs.Turn)
	}
	return GameState{Board: gs.Board, Turn: gs.Turn.Opponent(), Passes: gs.Passes + 1}, nil
}

// Terminal reports whether the game is over: both players passed in
// succession, or no empty cell remains.
func (gs GameState) Terminal() bool {
	return gs.Passes >= 2 || gs.Board.IsFull()
}

// Outcome reports the game status and, on a finished game, the winner by
// disc count or a draw.
func (gs GameState) Outcome() Outcome {
	if !gs.Terminal() {
		return Outcome{Status: InProgress}
	}
	black := gs.Board.Count(Black)
	white := gs.Board.Count(White)
	switch {
	case black > white:
		return Outcome{Status: Terminal, Winner: Black}
	case white > black:
		return Outcome{Status: Terminal, Winner: White}
	default:
		return Outcome{Status: Terminal, Draw: true}
	}
}
