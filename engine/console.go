package engine

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"othello/game"
)

const rowSeparator = "+---+---+---+---+---+---+---+---+\n"

// BoardASCII renders a board in the classic console format, one row of
// cells per board row, X for Black and O for White.
func BoardASCII(b game.Board) string {
	var sb strings.Builder
	for row := 0; row < game.Size; row++ {
		sb.WriteString(rowSeparator)
		for col := 0; col < game.Size; col++ {
			cell, err := b.Cell(row, col)
			if err != nil {
				panic(err)
			}
			sb.WriteString(cellASCII(cell))
		}
		sb.WriteString("|\n")
	}
	sb.WriteString(rowSeparator)
	return sb.String()
}

func cellASCII(c game.Cell) string {
	switch {
	case !c.Occupied():
		return "|   "
	case c.Color() == game.Black:
		return "| X "
	default:
		return "| O "
	}
}

// HumanPlayer reads moves as "row col" pairs from in, re-prompting until
// the input names a legal move.
type HumanPlayer struct {
	name string
	in   *bufio.Scanner
	out  io.Writer
}

func NewHumanPlayer(name string, in io.Reader, out io.Writer) *HumanPlayer {
	return &HumanPlayer{name: name, in: bufio.NewScanner(in), out: out}
}

func (p *HumanPlayer) Name() string {
	return p.name
}

// ChooseMove prompts until the human enters one of the legal moves.
// Returns false when the input stream ends.
func (p *HumanPlayer) ChooseMove(state game.GameState) (game.Move, bool) {
	moves := state.LegalMoves()
	for {
		fmt.Fprintf(p.out, "%v to move, enter row and column (0-7): ", state.Turn)
		if !p.in.Scan() {
			return game.Move{}, false
		}
		var row, col int
		if _, err := fmt.Sscanf(p.in.Text(), "%d %d", &row, &col); err != nil {
			fmt.Fprintln(p.out, "could not read a move, expected two numbers like: 2 3")
			continue
		}
		for _, m := range moves {
			if m.To == (game.Square{Row: row, Col: col}) {
				return m, true
			}
		}
		fmt.Fprintf(p.out, "(%d,%d) is not a legal move for %v\n", row, col, state.Turn)
	}
}
