// internal/game/validate.go
//
// Placement constraints. wouldViolate is asked about a candidate mine
// that has already been tentatively written to the board (so neighbor
// queries see the hypothetical state, while cluster ids are still the
// pre-placement ones). A placement is rejected when it would fully
// surround some cell with mines, or when it would pinch the empty
// region into separate pockets.
//
// The pinch predicate is deliberately local: two axis-aligned checks
// plus a corner check over cluster ids. It is the authoritative rule
// for this game, not a general graph-connectivity test.

package game

// wouldViolate reports whether the tentative mine at p breaks either
// placement constraint.
func (b *Board) wouldViolate(p Pos) bool {
	return b.anySurrounded(p) || b.createsIsland(p)
}

// anySurrounded reports whether p itself, or any of its neighbors, now
// has every in-bounds neighbor occupied by a mine.
func (b *Board) anySurrounded(p Pos) bool {
	if b.surrounded(p) {
		return true
	}
	for _, n := range b.neighbors(p) {
		if b.surrounded(n) {
			return true
		}
	}
	return false
}

func (b *Board) surrounded(p Pos) bool {
	for _, n := range b.neighbors(p) {
		if b.at(n).kind != mineCell {
			return false
		}
	}
	return true
}

// createsIsland reports whether the mine at p would close off a pocket
// of empty cells: first along the vertical axis, then the horizontal
// one, then across each of the four cell corners.
func (b *Board) createsIsland(p Pos) bool {
	if b.pinchesAxis(p, North, South, West, East) {
		return true
	}
	if b.pinchesAxis(p, West, East, North, South) {
		return true
	}
	return b.pinchesCorner(p)
}

// pinchesAxis handles one axis: d1/d2 are the shared-cluster pair
// (North/South for the vertical check), s1/s2 the two wrap sides
// (West/East respectively). With both pair neighbors in cluster id:
//
//   - cluster wraps the whole s1 side (s1 and both its diagonals):
//     pinch iff the cluster also reaches s2 with no diagonal escape
//     next to it;
//   - cluster wraps the whole s2 side: pinch iff it also reaches s1
//     and at least one of s1's diagonals;
//   - cluster wraps neither side: the pair alone already isolates a
//     pocket — unconditional pinch.
func (b *Board) pinchesAxis(p, d1, d2, s1, s2 Pos) bool {
	id, ok := b.commonClusterID(p, d1, d2)
	if !ok {
		return false
	}
	in := func(d Pos) bool {
		v, ok := b.clusterID(p.Add(d))
		return ok && v == id
	}
	switch {
	case in(s1) && in(s1.Add(d1)) && in(s1.Add(d2)):
		return in(s2) && !(in(s2.Add(d1)) || in(s2.Add(d2)))
	case in(s2) && in(s2.Add(d1)) && in(s2.Add(d2)):
		return in(s1) && (in(s1.Add(d2)) || in(s1.Add(d1)))
	default:
		return true
	}
}

// pinchesCorner checks the four square corners of p: if an orthogonal
// direction d, its clockwise neighbor d', and the diagonal between
// them all resolve to one cluster, the mine at p closes a diamond
// shaped pocket.
func (b *Board) pinchesCorner(p Pos) bool {
	for _, d := range Orthogonals {
		cw := d.Clockwise()
		id, ok := b.commonClusterID(p, d, cw)
		if !ok {
			continue
		}
		if v, ok := b.clusterID(p.Add(d).Add(cw)); ok && v == id {
			return true
		}
	}
	return false
}
