package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenFloodsAndSignalsWin(t *testing.T) {
	// One mine in a corner region; opening the far corner floods every
	// other cell: the zero-count interior plus the count-1 border.
	b := newBoard(4, 1)
	b.at(Pos{0, 0}).kind = mineCell

	won, err := b.Open(Pos{3, 3})
	require.NoError(t, err)
	assert.True(t, won, "last non-mine cell count reached zero")
	assert.Equal(t, 0, b.Remaining())

	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			p := Pos{x, y}
			if p == (Pos{0, 0}) {
				assert.False(t, b.IsOpen(p), "mines stay closed")
				continue
			}
			assert.Truef(t, b.IsOpen(p), "cell %v", p)
		}
	}
	assert.Equal(t, 1, b.NeighborMines(Pos{1, 1}))
	assert.Equal(t, 0, b.NeighborMines(Pos{2, 2}))
}

func TestOpenStopsAtNumberedBorder(t *testing.T) {
	b := newBoard(5, 1)
	b.at(Pos{4, 0}).kind = mineCell

	// A direct click on a numbered cell opens just that cell.
	won, err := b.Open(Pos{3, 1})
	require.NoError(t, err)
	assert.False(t, won)
	assert.True(t, b.IsOpen(Pos{3, 1}))
	assert.False(t, b.IsOpen(Pos{2, 1}), "no flood from a nonzero cell")
	assert.Equal(t, 5*5-1-1, b.Remaining())
}

func TestOpenIdempotent(t *testing.T) {
	b := newBoard(4, 1)
	b.at(Pos{0, 0}).kind = mineCell

	_, err := b.Open(Pos{3, 3})
	require.NoError(t, err)
	remaining := b.Remaining()

	won, err := b.Open(Pos{3, 3})
	require.NoError(t, err)
	assert.True(t, won, "win state is stable")
	assert.Equal(t, remaining, b.Remaining(), "reopening is a no-op")
}

func TestOpenErrors(t *testing.T) {
	b := newBoard(4, 1)
	b.at(Pos{1, 1}).kind = mineCell

	_, err := b.Open(Pos{-1, 0})
	assert.ErrorIs(t, err, ErrOutOfBounds)

	_, err = b.Open(Pos{1, 1})
	assert.ErrorIs(t, err, ErrOpenMine)
	assert.False(t, b.IsOpen(Pos{1, 1}), "failed open must not mutate")
}

func TestFlagBlocksDirectClickButNotFlood(t *testing.T) {
	b := newBoard(4, 1)
	b.at(Pos{0, 0}).kind = mineCell

	// Flag an empty cell far from the mine.
	require.NoError(t, b.ToggleFlag(Pos{3, 0}))

	// Direct click is ignored.
	won, err := b.Open(Pos{3, 0})
	require.NoError(t, err)
	assert.False(t, won)
	assert.False(t, b.IsOpen(Pos{3, 0}))

	// The flood from elsewhere steps onto it regardless.
	won, err = b.Open(Pos{3, 3})
	require.NoError(t, err)
	assert.True(t, won)
	assert.True(t, b.IsOpen(Pos{3, 0}))
	assert.False(t, b.IsFlagged(Pos{3, 0}), "opening clears the flag")
}

func TestToggleFlag(t *testing.T) {
	b := newBoard(4, 1)
	b.at(Pos{1, 1}).kind = mineCell

	require.NoError(t, b.ToggleFlag(Pos{2, 2}))
	assert.True(t, b.IsFlagged(Pos{2, 2}))
	require.NoError(t, b.ToggleFlag(Pos{2, 2}))
	assert.False(t, b.IsFlagged(Pos{2, 2}))

	// Mines are flaggable too.
	require.NoError(t, b.ToggleFlag(Pos{1, 1}))
	assert.True(t, b.IsFlagged(Pos{1, 1}))

	assert.ErrorIs(t, b.ToggleFlag(Pos{9, 9}), ErrOutOfBounds)

	_, err := b.Open(Pos{3, 0})
	require.NoError(t, err)
	assert.ErrorIs(t, b.ToggleFlag(Pos{3, 0}), ErrFlagOpen)
}
