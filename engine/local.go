package engine

import (
	"errors"
	"fmt"
	"io"

	"github.com/rs/zerolog/log"

	"othello/game"
)

// Engine runs a local game between two players, rendering the board to
// out before each ply. It owns the live GameState; players only ever see
// value copies of it.
type Engine struct {
	State game.GameState
	black Player
	white Player
	out   io.Writer
}

// NewLocal sets up a game from the standard starting position.
func NewLocal(black, white Player, out io.Writer) *Engine {
	if black == nil || white == nil {
		panic("both players are required")
	}
	if out == nil {
		out = io.Discard
	}
	return &Engine{State: game.NewGameState(), black: black, white: white, out: out}
}

func (e *Engine) player(c game.Color) Player {
	if c == game.Black {
		return e.black
	}
	return e.white
}

// Run loops until the game is over: render, ask the player on turn for a
// move (or record a forced pass), apply, repeat. It returns the final
// outcome; an abandoned game returns the in-progress outcome as is.
func (e *Engine) Run() game.Outcome {
	log.Info().Str("black", e.black.Name()).Str("white", e.white.Name()).Msg("game starting")

	for !e.State.Terminal() {
		fmt.Fprint(e.out, BoardASCII(e.State.Board))
		fmt.Fprintf(e.out, "Black %d - White %d\n", e.State.Board.Count(game.Black), e.State.Board.Count(game.White))

		player := e.player(e.State.Turn)
		if len(e.State.LegalMoves()) == 0 {
			next, err := e.State.Pass()
			if err != nil {
				panic(err)
			}
			fmt.Fprintf(e.out, "%v has no legal move and passes\n", e.State.Turn)
			log.Info().Stringer("color", e.State.Turn).Str("player", player.Name()).Msg("pass")
			e.State = next
			continue
		}

		move, ok := player.ChooseMove(e.State)
		if !ok {
			log.Warn().Str("player", player.Name()).Msg("player gave up with moves available, abandoning game")
			break
		}
		next, err := e.State.Play(move)
		if err != nil {
			// A well-behaved player never returns an illegal move; the
			// human player validates input before returning. Reject and
			// ask again.
			if errors.Is(err, game.ErrIllegalMove) || errors.Is(err, game.ErrOutOfBounds) {
				fmt.Fprintf(e.out, "%v is not a legal move\n", move)
				log.Warn().Str("player", player.Name()).Stringer("move", move).Msg("rejected illegal move")
				continue
			}
			panic(err)
		}
		log.Info().Stringer("color", e.State.Turn).Str("player", player.Name()).Stringer("move", move).Msg("move played")
		e.State = next
	}

	outcome := e.State.Outcome()
	if outcome.Status == game.Terminal {
		fmt.Fprint(e.out, BoardASCII(e.State.Board))
		black := e.State.Board.Count(game.Black)
		white := e.State.Board.Count(game.White)
		if outcome.Draw {
			fmt.Fprintf(e.out, "Game over: draw, %d - %d\n", black, white)
		} else {
			fmt.Fprintf(e.out, "Game over: %v wins %d - %d\n", outcome.Winner, black, white)
		}
		log.Info().Stringer("winner", outcome.Winner).Bool("draw", outcome.Draw).Int("black", black).Int("white", white).Msg("game over")
	}
	return outcome
}
