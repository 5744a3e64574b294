// internal/game/board.go
//
// Board storage: a flat dim×dim array of cells plus bounds checks.
// A cell is one of three kinds (closed, open, mine); the flag bit is
// meaningful only on closed and mine cells, and the group id only on
// mines (it identifies the orthogonally connected mine cluster the
// cell belongs to during generation).

package game

type cellKind uint8

const (
	closedCell cellKind = iota
	openCell
	mineCell
)

type cell struct {
	kind    cellKind
	flagged bool
	group   int // mine cluster id; meaningful only when kind == mineCell
}

// Board is one round's minefield. It is built by Populate and then
// mutated only by Open and ToggleFlag.
type Board struct {
	dim       int
	cells     []cell
	mines     int
	remaining int // closed non-mine cells left to open; 0 means won
	nextGroup int // monotonically increasing cluster id source
}

func newBoard(dim, mines int) *Board {
	return &Board{
		dim:       dim,
		cells:     make([]cell, dim*dim),
		mines:     mines,
		remaining: dim*dim - mines,
	}
}

// Dim returns the board's side length.
func (b *Board) Dim() int { return b.dim }

// Mines returns the total mine count.
func (b *Board) Mines() int { return b.mines }

// Remaining returns how many non-mine cells are still closed.
func (b *Board) Remaining() int { return b.remaining }

// InBounds reports whether p lies on the board.
func (b *Board) InBounds(p Pos) bool {
	return p.X >= 0 && p.X < b.dim && p.Y >= 0 && p.Y < b.dim
}

// at returns the cell at p. Callers must have bounds-checked p;
// an out-of-bounds access here is a bug in the calling code.
func (b *Board) at(p Pos) *cell {
	return &b.cells[p.Y*b.dim+p.X]
}

// IsMine reports whether p holds a mine. False out of bounds.
func (b *Board) IsMine(p Pos) bool {
	return b.InBounds(p) && b.at(p).kind == mineCell
}

// IsOpen reports whether p has been revealed.
func (b *Board) IsOpen(p Pos) bool {
	return b.InBounds(p) && b.at(p).kind == openCell
}

// IsFlagged reports whether p carries a flag.
func (b *Board) IsFlagged(p Pos) bool {
	return b.InBounds(p) && b.at(p).flagged
}

// neighbors returns the up-to-8 in-bounds positions adjacent to p,
// recomputed on every call.
func (b *Board) neighbors(p Pos) []Pos {
	out := make([]Pos, 0, 8)
	for _, d := range Directions {
		if n := p.Add(d); b.InBounds(n) {
			out = append(out, n)
		}
	}
	return out
}

// NeighborMines counts the mines among p's in-bounds neighbors.
func (b *Board) NeighborMines(p Pos) int {
	count := 0
	for _, n := range b.neighbors(p) {
		if b.at(n).kind == mineCell {
			count++
		}
	}
	return count
}
