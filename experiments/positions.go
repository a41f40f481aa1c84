package experiments

import (
	"golang.org/x/exp/rand"

	"othello/game"
)

// Sample generates n distinct in-progress positions reachable from the
// standard start by playing uniformly random legal moves for a random
// number of plies. The seed makes a sample reproducible, so experiment
// runs and the equivalence tests can be replayed.
func Sample(n int, seed uint64) []game.GameState {
	rng := rand.New(rand.NewSource(seed))
	positions := make([]game.GameState, 0, n)
	for len(positions) < n {
		state := playout(rng, 2+rng.Intn(40))
		if !state.Terminal() {
			positions = append(positions, state)
		}
	}
	return positions
}

func playout(rng *rand.Rand, plies int) game.GameState {
	state := game.NewGameState()
	for i := 0; i < plies && !state.Terminal(); i++ {
		moves := state.LegalMoves()
		var (
			next game.GameState
			err  error
		)
		if len(moves) == 0 {
			next, err = state.Pass()
		} else {
			next, err = state.Play(moves[rng.Intn(len(moves))])
		}
		if err != nil {
			panic(err)
		}
		state = next
	}
	return state
}
