// Package experiments compares the two searchers over sampled positions:
// both must agree on every move and score, while alpha-beta visits fewer
// nodes. Results go to CSV for offline analysis.
package experiments

import (
	"time"

	"github.com/rs/zerolog/log"

	"othello/experiments/metrics"
	"othello/game"
	"othello/searcher"
)

const (
	NumPositions = 20
	MaxDepth     = 5
	Seed         = 20240817
)

// RunPruningExperiment searches every sampled position with minimax and
// alpha-beta at each depth, checks agreement, and reports total node
// visits per algorithm.
func RunPruningExperiment() {
	positions := Sample(NumPositions, Seed)
	minimax := searcher.NewMinimax()
	alphabeta := searcher.NewAlphaBeta()

	var records []metrics.SearchRecord
	minimaxNodes, alphabetaNodes := 0, 0
	disagreements := 0

	for i, state := range positions {
		for depth := 1; depth <= MaxDepth; depth++ {
			plain := runSearch(minimax, state, depth)
			pruned := runSearch(alphabeta, state, depth)
			records = append(records,
				record(i, depth, "minimax", plain),
				record(i, depth, "alphabeta", pruned))
			minimaxNodes += plain.result.Nodes
			alphabetaNodes += pruned.result.Nodes

			if plain.result.Pass != pruned.result.Pass ||
				plain.result.Move.To != pruned.result.Move.To ||
				plain.result.Score != pruned.result.Score {
				disagreements++
				log.Error().
					Int("position", i).
					Int("depth", depth).
					Stringer("minimax", plain.result.Move).
					Stringer("alphabeta", pruned.result.Move).
					Int("minimaxScore", plain.result.Score).
					Int("alphabetaScore", pruned.result.Score).
					Msg("searchers disagree")
			}
		}
		log.Info().Int("position", i).Msg("position done")
	}

	writer, err := metrics.NewWriter()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create metrics writer")
	}
	if err := writer.WriteSearchRecords(records); err != nil {
		log.Fatal().Err(err).Msg("failed to write search records")
	}

	log.Info().
		Int("positions", NumPositions).
		Int("maxDepth", MaxDepth).
		Int("minimaxNodes", minimaxNodes).
		Int("alphabetaNodes", alphabetaNodes).
		Int("disagreements", disagreements).
		Str("dir", writer.Dir()).
		Msg("pruning experiment finished")
}

type timedResult struct {
	result   searcher.SearchResult
	duration time.Duration
}

func runSearch(s searcher.Searcher, state game.GameState, depth int) timedResult {
	start := time.Now()
	result := s.Search(state, depth)
	return timedResult{result: result, duration: time.Since(start)}
}

func record(position, depth int, algorithm string, r timedResult) metrics.SearchRecord {
	move := "pass"
	if !r.result.Pass {
		move = r.result.Move.String()
	}
	return metrics.SearchRecord{
		Position:  position,
		Depth:     depth,
		Algorithm: algorithm,
		Move:      move,
		Score:     r.result.Score,
		Nodes:     r.result.Nodes,
		Duration:  r.duration,
	}
}
