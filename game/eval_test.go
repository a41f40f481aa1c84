package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDiscDifferential(t *testing.T) {
	t.Run("zero for the starting position", func(t *testing.T) {
		b := NewStartBoard()
		require.Zero(t, DiscDifferential(b, Black))
		require.Zero(t, DiscDifferential(b, White))
	})

	t.Run("counts discs from the given perspective", func(t *testing.T) {
		b, err := NewBoardWithDiscs(
			[]Square{{0, 0}, {0, 1}, {0, 2}},
			[]Square{{7, 7}})
		require.NoError(t, err)

		require.Equal(t, 2, DiscDifferential(b, Black))
		require.Equal(t, -2, DiscDifferential(b, White))
	})

	t.Run("is zero-sum", func(t *testing.T) {
		next, err := Apply(NewStartBoard(), Move{To: Square{2, 3}}, Black)
		require.NoError(t, err)
		require.Equal(t, DiscDifferential(next, Black), -DiscDifferential(next, White))
	})
}

func TestPositional(t *testing.T) {
	t.Run("corner outweighs border outweighs interior", func(t *testing.T) {
		corner, err := NewBoardWithDiscs([]Square{{0, 0}}, nil)
		require.NoError(t, err)
		border, err := NewBoardWithDiscs([]Square{{0, 3}}, nil)
		require.NoError(t, err)
		interior, err := NewBoardWithDiscs([]Square{{3, 3}}, nil)
		require.NoError(t, err)

		require.Greater(t, Positional(corner, Black), Positional(border, Black))
		require.Greater(t, Positional(border, Black), Positional(interior, Black))
		require.Equal(t, 1, Positional(interior, Black))
	})

	t.Run("opponent discs count against", func(t *testing.T) {
		b, err := NewBoardWithDiscs([]Square{{0, 0}}, []Square{{7, 7}})
		require.NoError(t, err)
		require.Zero(t, Positional(b, Black), "equal corners cancel out")

		b, err = NewBoardWithDiscs([]Square{{0, 0}}, []Square{{3, 3}})
		require.NoError(t, err)
		require.Positive(t, Positional(b, Black))
		require.Negative(t, Positional(b, White))
	})

	t.Run("zero for the starting position", func(t *testing.T) {
		require.Zero(t, Positional(NewStartBoard(), Black))
	})
}
