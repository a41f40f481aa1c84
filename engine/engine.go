package engine

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"othello/game"
	"othello/searcher"
)

// Player produces moves for one color. ChooseMove is only called while
// the player has at least one legal move; it returns false to signal the
// player cannot or will not move (a search reporting a forced pass, or a
// human hanging up the input).
type Player interface {
	Name() string
	ChooseMove(state game.GameState) (game.Move, bool)
}

// SearchPlayer is the machine opponent: it answers every ChooseMove by
// running its searcher at a fixed depth.
type SearchPlayer struct {
	name     string
	searcher searcher.Searcher
	depth    int
}

// NewSearchPlayer wraps a searcher at the given depth. The depth must be
// in [1, searcher.MaxDepth].
func NewSearchPlayer(name string, s searcher.Searcher, depth int) (*SearchPlayer, error) {
	if depth < 1 || depth > searcher.MaxDepth {
		return nil, fmt.Errorf("search depth must be in [1, %d], got %d", searcher.MaxDepth, depth)
	}
	return &SearchPlayer{name: name, searcher: s, depth: depth}, nil
}

func (p *SearchPlayer) Name() string {
	return p.name
}

func (p *SearchPlayer) ChooseMove(state game.GameState) (game.Move, bool) {
	result := p.searcher.Search(state, p.depth)
	if result.Pass {
		return game.Move{}, false
	}
	log.Debug().
		Str("player", p.name).
		Stringer("move", result.Move).
		Int("score", result.Score).
		Int("nodes", result.Nodes).
		Msg("search finished")
	return result.Move, true
}
