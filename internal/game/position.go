// internal/game/position.go
//
// Integer grid coordinates and the eight compass directions.
// Positions are value types: arithmetic returns new values and never
// mutates. The y axis grows downward (row order), so North is (0,-1).

package game

// Pos is an integer board coordinate (or a direction offset).
type Pos struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Add returns p+q componentwise.
func (p Pos) Add(q Pos) Pos { return Pos{p.X + q.X, p.Y + q.Y} }

// Sub returns p-q componentwise.
func (p Pos) Sub(q Pos) Pos { return Pos{p.X - q.X, p.Y - q.Y} }

// Neg returns the opposite direction.
func (p Pos) Neg() Pos { return Pos{-p.X, -p.Y} }

// Clockwise rotates a direction 90° clockwise on a y-down grid:
// (x, y) → (y, -x). North becomes West, West becomes South, and so on.
func (p Pos) Clockwise() Pos { return Pos{p.Y, -p.X} }

// The eight unit directions.
var (
	North     = Pos{0, -1}
	NorthEast = Pos{1, -1}
	East      = Pos{1, 0}
	SouthEast = Pos{1, 1}
	South     = Pos{0, 1}
	SouthWest = Pos{-1, 1}
	West      = Pos{-1, 0}
	NorthWest = Pos{-1, -1}
)

// Directions lists all eight neighbor offsets.
var Directions = [8]Pos{North, NorthEast, East, SouthEast, South, SouthWest, West, NorthWest}

// Orthogonals is the 4-direction subset used for mine cluster adjacency.
var Orthogonals = [4]Pos{North, East, South, West}

// chebyshev is the L∞ distance between two positions: adjacent cells
// (including diagonals) are at distance 1.
func chebyshev(a, b Pos) int {
	dx := abs(a.X - b.X)
	dy := abs(a.Y - b.Y)
	if dx > dy {
		return dx
	}
	return dy
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
