package engine

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"othello/game"
)

func TestBoardASCIIStartPosition(t *testing.T) {
	expected := "+---+---+---+---+---+---+---+---+\n" +
		"|   |   |   |   |   |   |   |   |\n" +
		"+---+---+---+---+---+---+---+---+\n" +
		"|   |   |   |   |   |   |   |   |\n" +
		"+---+---+---+---+---+---+---+---+\n" +
		"|   |   |   |   |   |   |   |   |\n" +
		"+---+---+---+---+---+---+---+---+\n" +
		"|   |   |   | O | X |   |   |   |\n" +
		"+---+---+---+---+---+---+---+---+\n" +
		"|   |   |   | X | O |   |   |   |\n" +
		"+---+---+---+---+---+---+---+---+\n" +
		"|   |   |   |   |   |   |   |   |\n" +
		"+---+---+---+---+---+---+---+---+\n" +
		"|   |   |   |   |   |   |   |   |\n" +
		"+---+---+---+---+---+---+---+---+\n" +
		"|   |   |   |   |   |   |   |   |\n" +
		"+---+---+---+---+---+---+---+---+\n"

	require.Equal(t, expected, BoardASCII(game.NewStartBoard()))
}

func TestHumanPlayerChooseMove(t *testing.T) {
	t.Run("accepts a legal move", func(t *testing.T) {
		var out bytes.Buffer
		player := NewHumanPlayer("tester", strings.NewReader("2 3\n"), &out)

		move, ok := player.ChooseMove(game.NewGameState())

		require.True(t, ok)
		require.Equal(t, game.Square{Row: 2, Col: 3}, move.To)
	})

	t.Run("re-prompts on garbage and illegal squares", func(t *testing.T) {
		var out bytes.Buffer
		input := "over there\n0 0\n99 99\n5 4\n"
		player := NewHumanPlayer("tester", strings.NewReader(input), &out)

		move, ok := player.ChooseMove(game.NewGameState())

		require.True(t, ok)
		require.Equal(t, game.Square{Row: 5, Col: 4}, move.To)
		require.Contains(t, out.String(), "could not read a move")
		require.Contains(t, out.String(), "(0,0) is not a legal move")
		require.Contains(t, out.String(), "(99,99) is not a legal move")
	})

	t.Run("reports end of input", func(t *testing.T) {
		var out bytes.Buffer
		player := NewHumanPlayer("tester", strings.NewReader(""), &out)

		_, ok := player.ChooseMove(game.NewGameState())

		require.False(t, ok)
	})
}
