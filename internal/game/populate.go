// internal/game/populate.go
//
// Mine placement: rejection sampling over a shrinking pool of eligible
// positions. Rejected candidates leave the pool for good, so each draw
// strictly shrinks the search set and the loop always terminates.

package game

import (
	"errors"
	"math/rand"
)

// ErrPoolExhausted is returned when the eligible pool empties before
// the requested mine count is placed. Fatal to the round; callers
// restart generation rather than retrying in place.
var ErrPoolExhausted = errors.New("mine placement: eligible pool exhausted")

// Populate builds a dim×dim board holding exactly mines mines. The 3×3
// block around first stays mine-free, and every accepted mine respects
// the surround and island constraints in validate.go.
func Populate(dim, mines int, first Pos, rng *rand.Rand) (*Board, error) {
	b := newBoard(dim, mines)

	pool := make([]Pos, 0, dim*dim)
	for y := 0; y < dim; y++ {
		for x := 0; x < dim; x++ {
			p := Pos{x, y}
			if chebyshev(p, first) <= 1 {
				continue
			}
			pool = append(pool, p)
		}
	}

	for placed := 0; placed < mines; {
		if len(pool) == 0 {
			return nil, ErrPoolExhausted
		}
		// Draw without replacement (swap-remove).
		i := rng.Intn(len(pool))
		p := pool[i]
		pool[i] = pool[len(pool)-1]
		pool = pool[:len(pool)-1]

		c := b.at(p)
		c.kind = mineCell
		if b.wouldViolate(p) {
			c.kind = closedCell
			continue
		}
		b.mergeClusters(p)
		placed++
	}
	return b, nil
}
