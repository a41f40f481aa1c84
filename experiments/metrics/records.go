package metrics

import "time"

// SearchRecord captures one search run during a pruning experiment: which
// algorithm searched which sampled position at which depth, what it chose
// and how much of the tree it had to visit.
type SearchRecord struct {
	Position  int
	Depth     int
	Algorithm string
	Move      string
	Score     int
	Nodes     int
	Duration  time.Duration
}
