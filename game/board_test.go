package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewBoard(t *testing.T) {
	b := NewBoard()

	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			cell, err := b.Cell(row, col)
			require.NoError(t, err)
			require.Equal(t, Empty, cell, "new board should be empty at (%d,%d)", row, col)
		}
	}
	require.False(t, b.IsFull())
	require.Zero(t, b.Count(Black))
	require.Zero(t, b.Count(White))
}

func TestNewStartBoard(t *testing.T) {
	b := NewStartBoard()

	wantWhite := []Square{{3, 3}, {4, 4}}
	wantBlack := []Square{{3, 4}, {4, 3}}
	for _, s := range wantWhite {
		cell, err := b.Cell(s.Row, s.Col)
		require.NoError(t, err)
		require.Equal(t, Cell(White), cell, "expected White at %v", s)
	}
	for _, s := range wantBlack {
		cell, err := b.Cell(s.Row, s.Col)
		require.NoError(t, err)
		require.Equal(t, Cell(Black), cell, "expected Black at %v", s)
	}
	require.Equal(t, 2, b.Count(Black))
	require.Equal(t, 2, b.Count(White))
}

func TestBoardCellOutOfBounds(t *testing.T) {
	b := NewStartBoard()

	for _, s := range []Square{{-1, 0}, {0, -1}, {8, 0}, {0, 8}, {-3, 12}} {
		_, err := b.Cell(s.Row, s.Col)
		require.ErrorIs(t, err, ErrOutOfBounds, "coordinates %v are off the board", s)
	}
}

func TestNewBoardWithDiscs(t *testing.T) {
	t.Run("places the given discs", func(t *testing.T) {
		b, err := NewBoardWithDiscs([]Square{{0, 0}}, []Square{{7, 7}})
		require.NoError(t, err)
		require.Equal(t, 1, b.Count(Black))
		require.Equal(t, 1, b.Count(White))
	})

	t.Run("rejects discs off the board", func(t *testing.T) {
		_, err := NewBoardWithDiscs([]Square{{8, 0}}, nil)
		require.ErrorIs(t, err, ErrOutOfBounds)
	})
}

func TestBoardIsFull(t *testing.T) {
	var black, white []Square
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			if (row+col)%2 == 0 {
				black = append(black, Square{row, col})
			} else {
				white = append(white, Square{row, col})
			}
		}
	}
	b, err := NewBoardWithDiscs(black, white)
	require.NoError(t, err)

	require.True(t, b.IsFull())
	require.Equal(t, 32, b.Count(Black))
	require.Equal(t, 32, b.Count(White))
}

func TestBoardLine(t *testing.T) {
	b := NewBoard()

	t.Run("walks to the edge excluding the start", func(t *testing.T) {
		got := b.Line(Square{3, 3}, Direction{0, 1})
		require.Equal(t, []Square{{3, 4}, {3, 5}, {3, 6}, {3, 7}}, got)
	})

	t.Run("diagonal from a corner", func(t *testing.T) {
		got := b.Line(Square{0, 0}, Direction{1, 1})
		require.Len(t, got, 7)
		require.Equal(t, Square{1, 1}, got[0])
		require.Equal(t, Square{7, 7}, got[6])
	})

	t.Run("empty from the edge looking out", func(t *testing.T) {
		require.Empty(t, b.Line(Square{0, 0}, Direction{-1, 0}))
	})
}

func TestBoardIsValue(t *testing.T) {
	// Assigning a board copies the grid: branches in a search must never
	// see each other's mutations.
	a := NewStartBoard()
	b := a
	b.setDisc(Square{0, 0}, Black)

	cell, err := a.Cell(0, 0)
	require.NoError(t, err)
	require.Equal(t, Empty, cell, "copy mutation must not leak into the original")
}

func TestColorOpponent(t *testing.T) {
	require.Equal(t, White, Black.Opponent())
	require.Equal(t, Black, White.Opponent())
}
