package searcher

import (
	"math"

	"othello/game"
)

// AlphaBeta is depth-bounded minimax with alpha-beta pruning: it keeps a
// [alpha, beta] window of scores still worth distinguishing and skips any
// subtree proven unable to affect the root choice. Moves are examined in
// the same row-major order as Minimax and ties break the same way, so for
// any position and depth it returns exactly Minimax's move and score
// while visiting no more nodes.
type AlphaBeta struct {
	settings
}

// NewAlphaBeta returns an alpha-beta searcher scoring leaves with the
// disc-differential evaluator unless overridden.
func NewAlphaBeta(options ...Option) *AlphaBeta {
	return &AlphaBeta{newSettings(options)}
}

// Search returns the best move for the player on turn, looking depth
// plies ahead.
func (a *AlphaBeta) Search(state game.GameState, depth int) SearchResult {
	moves := state.LegalMoves()
	if len(moves) == 0 {
		return SearchResult{Pass: true}
	}

	root := state.Turn
	nodes := 0
	best := moves[0]
	bestScore := math.MinInt
	alpha, beta := math.MinInt, math.MaxInt
	for _, mv := range moves {
		next, err := state.Play(mv)
		if err != nil {
			panic(err)
		}
		score := a.score(next, root, depth-1, alpha, beta, &nodes)
		if score > bestScore {
			best = mv
			bestScore = score
		}
		if bestScore > alpha {
			alpha = bestScore
		}
	}
	return SearchResult{Move: best, Score: bestScore, Nodes: nodes}
}

func (a *AlphaBeta) score(state game.GameState, root game.Color, depth, alpha, beta int, nodes *int) int {
	*nodes++
	if depth <= 0 || state.Terminal() {
		return a.evaluate(state.Board, root)
	}

	moves := state.LegalMoves()
	if len(moves) == 0 {
		passed, err := state.Pass()
		if err != nil {
			panic(err)
		}
		return a.score(passed, root, depth-1, alpha, beta, nodes)
	}

	if state.Turn == root {
		// Maximizing ply: once a child reaches beta, the opponent above
		// would never allow this position, so the rest are skipped.
		best := math.MinInt
		for _, mv := range moves {
			next, err := state.Play(mv)
			if err != nil {
				panic(err)
			}
			score := a.score(next, root, depth-1, alpha, beta, nodes)
			if score > best {
				best = score
			}
			if best > alpha {
				alpha = best
			}
			if best >= beta {
				break
			}
		}
		return best
	}

	// Minimizing ply, symmetric: once a child falls to alpha, the mover
	// above already has a line at least this good elsewhere.
	best := math.MaxInt
	for _, mv := range moves {
		next, err := state.Play(mv)
		if err != nil {
			panic(err)
		}
		score := a.score(next, root, depth-1, alpha, beta, nodes)
		if score < best {
			best = score
		}
		if best < beta {
			beta = best
		}
		if best <= alpha {
			break
		}
	}
	return best
}
