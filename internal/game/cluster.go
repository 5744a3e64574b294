// internal/game/cluster.go
//
// Mine cluster bookkeeping. Every mine carries a group id; two
// orthogonally adjacent mines always share one. The id doubles as the
// substrate for the island checks in validate.go, where out-of-bounds
// counts as the sentinel cluster 0 so that the board edge can pinch
// pockets closed just like a mine arm can.

package game

// clusterID resolves the cluster id seen by the containment checks:
// 0 for an out-of-bounds position (the boundary sentinel), the mine's
// group id for a mine, and ok=false for an in-bounds empty cell.
func (b *Board) clusterID(p Pos) (int, bool) {
	if !b.InBounds(p) {
		return 0, true
	}
	c := b.at(p)
	if c.kind != mineCell {
		return 0, false
	}
	return c.group, true
}

// commonClusterID returns the shared cluster id of p's two neighbors in
// directions d1 and d2, if both are non-empty and agree.
func (b *Board) commonClusterID(p, d1, d2 Pos) (int, bool) {
	a, ok := b.clusterID(p.Add(d1))
	if !ok {
		return 0, false
	}
	c, ok := b.clusterID(p.Add(d2))
	if !ok || a != c {
		return 0, false
	}
	return a, true
}

// propagate reassigns id across the orthogonally connected mines
// reachable from p, which is known to carry a different id. exclude is
// the direction we just arrived from; skipping it avoids re-walking the
// triggering edge, while the id-equality check is what actually
// terminates the walk.
func (b *Board) propagate(p Pos, id int, exclude Pos) {
	b.at(p).group = id
	for _, d := range Orthogonals {
		if d == exclude {
			continue
		}
		n := p.Add(d)
		if !b.InBounds(n) {
			continue
		}
		if c := b.at(n); c.kind == mineCell && c.group != id {
			b.propagate(n, id, d.Neg())
		}
	}
}

// mergeClusters runs after a mine is accepted at p: the new mine takes
// the minimum id among its orthogonal mine neighbors (or a fresh one if
// it touches none), and every adjacent cluster is folded into that id.
func (b *Board) mergeClusters(p Pos) {
	id := 0
	for _, d := range Orthogonals {
		n := p.Add(d)
		if !b.InBounds(n) {
			continue
		}
		if c := b.at(n); c.kind == mineCell && (id == 0 || c.group < id) {
			id = c.group
		}
	}
	if id == 0 {
		b.nextGroup++
		id = b.nextGroup
	}
	b.at(p).group = id
	for _, d := range Orthogonals {
		n := p.Add(d)
		if !b.InBounds(n) {
			continue
		}
		if c := b.at(n); c.kind == mineCell && c.group != id {
			b.propagate(n, id, d.Neg())
		}
	}
}
