// internal/game/view.go
//
// Renderer-facing projection of a round. The view never leaks mine
// positions while a game is in progress; once the round is lost, every
// mine is shown.

package game

// CellView is the client-visible state of one cell.
type CellView struct {
	State string `json:"state"` // "hidden" | "flagged" | "opened"
	Count int    `json:"count"` // neighbor mine count, opened cells only
	Mine  bool   `json:"mine"`
}

// View renders the whole board. Before the opening reveal every cell
// is hidden.
func (g *Game) View() [][]CellView {
	grid := make([][]CellView, g.Dim)
	for y := range grid {
		grid[y] = make([]CellView, g.Dim)
	}
	if g.Board == nil {
		for y := range grid {
			for x := range grid[y] {
				grid[y][x] = CellView{State: "hidden"}
			}
		}
		return grid
	}

	lost := g.Finished && !g.Won
	for y := 0; y < g.Dim; y++ {
		for x := 0; x < g.Dim; x++ {
			p := Pos{x, y}
			v := CellView{State: "hidden"}
			switch {
			case g.Board.IsOpen(p):
				v.State = "opened"
				v.Count = g.Board.NeighborMines(p)
			case lost && g.Board.IsMine(p):
				v.State = "opened"
				v.Mine = true
			case g.Board.IsFlagged(p):
				v.State = "flagged"
			}
			grid[y][x] = v
		}
	}
	return grid
}
