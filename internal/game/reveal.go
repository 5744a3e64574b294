// internal/game/reveal.go
//
// Reveal engine and flag toggling for the play phase. Opening a
// zero-count cell floods outward through its neighbors; the flood
// ignores flags (they only block direct clicks) and stops at cells
// bordering a mine.

package game

import "errors"

var (
	// ErrOutOfBounds marks a position outside the board. Calls like
	// this are bugs in the surrounding glue; the typed error keeps
	// them from corrupting state.
	ErrOutOfBounds = errors.New("position out of bounds")

	// ErrOpenMine is returned when Open is called on a mine. The
	// caller is expected to detect mine clicks itself and run its own
	// lose path.
	ErrOpenMine = errors.New("open: cell is a mine")

	// ErrFlagOpen is returned when toggling a flag on a revealed cell.
	ErrFlagOpen = errors.New("flag: cell already open")
)

// Open reveals the cell at p. Opening an already-open cell is a no-op,
// as is a direct click on a flagged cell. Returns true once the last
// non-mine cell has been opened (the win signal).
func (b *Board) Open(p Pos) (bool, error) {
	if !b.InBounds(p) {
		return false, ErrOutOfBounds
	}
	c := b.at(p)
	if c.kind == mineCell {
		return false, ErrOpenMine
	}
	if c.kind == openCell || c.flagged {
		return b.remaining == 0, nil
	}
	b.flood(p)
	return b.remaining == 0, nil
}

// flood opens p and, if no mine borders it, every still-closed
// neighbor. A zero count means no neighbor is a mine, so the recursion
// never steps onto one; it terminates because opened cells are never
// revisited.
func (b *Board) flood(p Pos) {
	c := b.at(p)
	c.kind = openCell
	c.flagged = false
	b.remaining--

	if b.NeighborMines(p) != 0 {
		return
	}
	for _, n := range b.neighbors(p) {
		if b.at(n).kind == closedCell {
			b.flood(n)
		}
	}
}

// ToggleFlag flips the flag bit on a closed or mine cell.
func (b *Board) ToggleFlag(p Pos) error {
	if !b.InBounds(p) {
		return ErrOutOfBounds
	}
	c := b.at(p)
	if c.kind == openCell {
		return ErrFlagOpen
	}
	c.flagged = !c.flagged
	return nil
}
