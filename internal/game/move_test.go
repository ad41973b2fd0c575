package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActions(t *testing.T) {
	t.Run("Empty board yields all cells in row-major order", func(t *testing.T) {
		actions := Actions(InitialState())

		require.Len(t, actions, 9)
		for i, a := range actions {
			assert.Equal(t, Action{Row: i / 3, Col: i % 3}, a)
		}
	})

	t.Run("Only empty cells are listed", func(t *testing.T) {
		b := Board{
			{PlayerX, PlayerO, PlayerX},
			{None, PlayerO, None},
			{PlayerO, PlayerX, None},
		}

		assert.Equal(t, []Action{{1, 0}, {1, 2}, {2, 2}}, Actions(b))
	})

	t.Run("Full board has no actions", func(t *testing.T) {
		b := Board{
			{PlayerX, PlayerO, PlayerX},
			{PlayerX, PlayerO, PlayerO},
			{PlayerO, PlayerX, PlayerX},
		}

		assert.Empty(t, Actions(b))
	})
}

func TestResult(t *testing.T) {
	t.Run("Marks the cell for the player to move", func(t *testing.T) {
		b := Board{
			{PlayerX, None, None},
			{None, None, None},
			{None, None, None},
		}

		next, err := Result(b, Action{Row: 1, Col: 1})

		require.NoError(t, err)
		assert.Equal(t, PlayerO, next[1][1])
		assert.Equal(t, None, b[1][1], "original board must not change")
	})

	t.Run("Differs from the input in exactly one cell", func(t *testing.T) {
		b := Board{
			{PlayerX, PlayerO, None},
			{None, PlayerX, None},
			{None, None, PlayerO},
		}

		for _, a := range Actions(b) {
			next, err := Result(b, a)
			require.NoError(t, err)

			diff := 0
			for r := range Size {
				for c := range Size {
					if next[r][c] != b[r][c] {
						diff++
						assert.Equal(t, a, Action{Row: r, Col: c})
						assert.Equal(t, Player(b), next[r][c])
					}
				}
			}
			assert.Equal(t, 1, diff)
		}
	})

	t.Run("Rejects an occupied cell", func(t *testing.T) {
		b := Board{
			{PlayerX, None, None},
			{None, None, None},
			{None, None, None},
		}

		_, err := Result(b, Action{Row: 0, Col: 0})

		assert.ErrorIs(t, err, ErrInvalidMove)
	})

	t.Run("Rejects coordinates outside the grid", func(t *testing.T) {
		for _, a := range []Action{{-1, 0}, {0, -1}, {3, 0}, {0, 3}} {
			_, err := Result(InitialState(), a)
			assert.ErrorIs(t, err, ErrInvalidMove, "action %s", a)
		}
	})

	t.Run("Turns alternate along any line of play", func(t *testing.T) {
		b := InitialState()
		want := PlayerX
		for !Terminal(b) {
			require.Equal(t, want, Player(b))
			actions := Actions(b)
			next, err := Result(b, actions[len(actions)-1])
			require.NoError(t, err)
			b = next
			want = Opponent(want)
		}
	})
}
