package searcher

import "othello/game"

// MaxDepth bounds the depth a caller may request for a machine move.
const MaxDepth = 10

// SearchResult is the answer to a "find the best move" request: the
// chosen move and the score the search assigns to it, relative to the
// color that was on turn at the root. Pass is set when the mover has no
// legal move; the shell advances the turn without placing a disc. Nodes
// counts every state the search evaluated, the pruning-efficiency metric
// the comparison harness reports on.
type SearchResult struct {
	Move  game.Move
	Pass  bool
	Score int
	Nodes int
}

// Searcher finds the best move for the player on turn, looking ahead a
// fixed number of plies. Implementations borrow the state read-only and
// simulate on private copies; the caller's state is never mutated.
type Searcher interface {
	Search(state game.GameState, depth int) SearchResult
}

// Option configures a searcher.
type Option func(*settings)

type settings struct {
	evaluate game.Evaluator
}

// WithEvaluator replaces the default disc-differential leaf evaluator.
func WithEvaluator(evaluate game.Evaluator) Option {
	return func(s *settings) {
		if evaluate != nil {
			s.evaluate = evaluate
		}
	}
}

func newSettings(options []Option) settings {
	s := settings{evaluate: game.DiscDifferential}
	for _, option := range options {
		option(&s)
	}
	return s
}
