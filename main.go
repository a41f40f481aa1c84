package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"othello/engine"
	"othello/experiments"
	"othello/game"
	"othello/searcher"
)

func main() {
	color := flag.String("color", "black", "color the human plays: black or white")
	depth := flag.Int("depth", 4, "machine search depth in plies (1-10)")
	eval := flag.String("eval", "discs", "machine evaluation: discs or positional")
	verbose := flag.Bool("verbose", false, "log search diagnostics")
	compare := flag.Bool("compare", false, "run the minimax vs alpha-beta pruning experiment instead of a game")
	flag.Parse()

	level := zerolog.InfoLevel
	if *verbose {
		level = zerolog.DebugLevel
	}
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level).With().Timestamp().Logger()

	if *compare {
		experiments.RunPruningExperiment()
		return
	}

	humanColor, err := parseColor(*color)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid -color")
	}
	evaluate, err := parseEvaluator(*eval)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid -eval")
	}

	human := engine.NewHumanPlayer("you", os.Stdin, os.Stdout)
	machine, err := engine.NewSearchPlayer("machine", searcher.NewAlphaBeta(searcher.WithEvaluator(evaluate)), *depth)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid -depth")
	}

	var e *engine.Engine
	if humanColor == game.Black {
		e = engine.NewLocal(human, machine, os.Stdout)
	} else {
		e = engine.NewLocal(machine, human, os.Stdout)
	}
	e.Run()
}

func parseColor(s string) (game.Color, error) {
	switch strings.ToLower(s) {
	case "black":
		return game.Black, nil
	case "white":
		return game.White, nil
	default:
		return 0, fmt.Errorf("got %q, want black or white", s)
	}
}

func parseEvaluator(s string) (game.Evaluator, error) {
	switch strings.ToLower(s) {
	case "discs":
		return game.DiscDifferential, nil
	case "positional":
		return game.Positional, nil
	default:
		return nil, fmt.Errorf("got %q, want discs or positional", s)
	}
}
