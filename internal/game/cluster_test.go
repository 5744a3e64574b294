package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// placeMine writes a mine at p and runs the cluster merge, the same
// sequence Populate uses after accepting a candidate.
func placeMine(b *Board, p Pos) {
	b.at(p).kind = mineCell
	b.mergeClusters(p)
}

func TestClusterIDSentinels(t *testing.T) {
	b := newBoard(4, 0)

	id, ok := b.clusterID(Pos{-1, 2})
	assert.True(t, ok, "out of bounds is the boundary sentinel")
	assert.Equal(t, 0, id)

	_, ok = b.clusterID(Pos{1, 1})
	assert.False(t, ok, "empty cells have no cluster id")

	placeMine(b, Pos{1, 1})
	id, ok = b.clusterID(Pos{1, 1})
	assert.True(t, ok)
	assert.Equal(t, 1, id, "fresh ids start at 1; 0 stays reserved for the boundary")
}

func TestMergeAdjacentMines(t *testing.T) {
	b := newBoard(6, 0)

	placeMine(b, Pos{1, 1})
	placeMine(b, Pos{4, 4})
	a, _ := b.clusterID(Pos{1, 1})
	c, _ := b.clusterID(Pos{4, 4})
	assert.NotEqual(t, a, c, "disjoint mines get distinct clusters")

	// Bridge them into a single L-shaped cluster.
	placeMine(b, Pos{2, 1})
	placeMine(b, Pos{3, 1})
	got, _ := b.clusterID(Pos{3, 1})
	want, _ := b.clusterID(Pos{1, 1})
	assert.Equal(t, want, got)
}

func TestMergeJoinsTwoClustersUnderMinimumID(t *testing.T) {
	b := newBoard(8, 0)

	placeMine(b, Pos{1, 1}) // cluster 1
	placeMine(b, Pos{3, 1}) // cluster 2
	first, _ := b.clusterID(Pos{1, 1})
	second, _ := b.clusterID(Pos{3, 1})
	require.Less(t, first, second)

	// The connecting mine touches both; everything collapses to the
	// minimum id.
	placeMine(b, Pos{2, 1})
	for _, p := range []Pos{{1, 1}, {2, 1}, {3, 1}} {
		id, ok := b.clusterID(p)
		require.True(t, ok)
		assert.Equal(t, first, id)
	}
}

func TestPropagateWalksWholeCluster(t *testing.T) {
	b := newBoard(8, 0)

	// Two snakes; the bridge touches only their heads, so the second
	// snake's tail is reassigned purely by propagation.
	left := []Pos{{1, 1}, {1, 2}, {1, 3}}
	right := []Pos{{3, 1}, {3, 2}, {3, 3}, {4, 3}}
	for _, p := range append(append([]Pos{}, left...), right...) {
		placeMine(b, p)
	}
	placeMine(b, Pos{2, 1})

	want, _ := b.clusterID(Pos{1, 1})
	for _, p := range right {
		id, ok := b.clusterID(p)
		require.True(t, ok)
		assert.Equal(t, want, id)
	}
	assertClusterClosure(t, b)
}

// assertClusterClosure checks the invariant that orthogonally adjacent
// mines always share one id.
func assertClusterClosure(t *testing.T, b *Board) {
	t.Helper()
	for y := 0; y < b.dim; y++ {
		for x := 0; x < b.dim; x++ {
			p := Pos{x, y}
			if !b.IsMine(p) {
				continue
			}
			for _, d := range Orthogonals {
				n := p.Add(d)
				if !b.IsMine(n) {
					continue
				}
				a, _ := b.clusterID(p)
				c, _ := b.clusterID(n)
				require.Equalf(t, a, c, "mines %v and %v in different clusters", p, n)
			}
		}
	}
}
