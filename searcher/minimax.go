package searcher

import (
	"math"

	"othello/game"
)

// Minimax is plain depth-bounded minimax search, no pruning. It exists as
// the reference implementation the harness checks AlphaBeta against;
// production play uses AlphaBeta.
type Minimax struct {
	settings
}

// NewMinimax returns a minimax searcher scoring leaves with the
// disc-differential evaluator unless overridden.
func NewMinimax(options ...Option) *Minimax {
	return &Minimax{newSettings(options)}
}

// Search returns the best move for the player on turn, looking depth
// plies ahead. The score is relative to that player: positions good for
// them score high even on plies where the opponent moves. When several
// moves tie, the first in row-major order wins.
func (m *Minimax) Search(state game.GameState, depth int) SearchResult {
	moves := state.LegalMoves()
	if len(moves) == 0 {
		return SearchResult{Pass: true}
	}

	root := state.Turn
	nodes := 0
	best := moves[0]
	bestScore := math.MinInt
	for _, mv := range moves {
		next, err := state.Play(mv)
		if err != nil {
			panic(err)
		}
		score := m.score(next, root, depth-1, &nodes)
		if score > bestScore {
			best = mv
			bestScore = score
		}
	}
	return SearchResult{Move: best, Score: bestScore, Nodes: nodes}
}

// score evaluates a position for root, alternating between maximizing on
// root's plies and minimizing on the opponent's. A mover with no legal
// move passes: the turn flips and one ply of depth is spent, but no disc
// is placed.
func (m *Minimax) score(state game.GameState, root game.Color, depth int, nodes *int) int {
	*nodes++
	if depth <= 0 || state.Terminal() {
		return m.evaluate(state.Board, root)
	}

	moves := state.LegalMoves()
	if len(moves) == 0 {
		passed, err := state.Pass()
		if err != nil {
			panic(err)
		}
		return m.score(passed, root, depth-1, nodes)
	}

	maximizing := state.Turn == root
	best := math.MaxInt
	if maximizing {
		best = math.MinInt
	}
	for _, mv := range moves {
		next, err := state.Play(mv)
		if err != nil {
			panic(err)
		}
		score := m.score(next, root, depth-1, nodes)
		if maximizing && score > best {
			best = score
		} else if !maximizing && score < best {
			best = score
		}
	}
	return best
}
