// internal/game/session.go
//
// One playable round. A Game validates its parameters up front but
// delays minefield generation until the first reveal, so the 3×3 safe
// zone can be centered on wherever the player clicks first. Seeded
// games (the daily mode) generate immediately instead, with the safe
// zone fixed at the board center, so one seed means one shared board.
//
// State transitions: playing → won (last empty cell opened) or
// playing → lost (a mine revealed). Finished games reject further
// moves.

package game

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	mrand "math/rand"
	"time"
)

const (
	// MinDimension and MaxDimension bound the board side length. The
	// placement constraints are tuned for boards in this range.
	MinDimension = 4
	MaxDimension = 20
)

var (
	ErrBadDimension = errors.New("dimension must be between 4 and 20")
	ErrBadMineCount = errors.New("mine count must be between 1 and dim²/3")
	ErrGameFinished = errors.New("game finished")
	ErrNoBoard      = errors.New("reveal a cell before flagging")
)

// MaxMines is the placement cap for a side length: one third of the
// board, rounded down. Above that the rejection sampler is liable to
// exhaust its pool.
func MaxMines(dim int) int { return dim * dim / 3 }

// Game holds the state of a single round.
type Game struct {
	ID    string // unique game identifier (random hex string)
	Dim   int    // board side length
	Mines int    // total mines to place
	Mode  string // "normal" | "daily"

	Board    *Board // nil until the first reveal of a normal game
	Moves    int    // reveal/flag actions taken
	Finished bool
	Won      bool

	rng *mrand.Rand
}

// NewGame constructs an unseeded round; the board appears on the first
// reveal.
func NewGame(dim, mines int) (*Game, error) {
	if err := validateParams(dim, mines); err != nil {
		return nil, err
	}
	return &Game{
		ID:    randomID(),
		Dim:   dim,
		Mines: mines,
		Mode:  "normal",
		rng:   mrand.New(mrand.NewSource(time.Now().UnixNano())),
	}, nil
}

// NewSeededGame constructs a round whose minefield is derived entirely
// from seed, generated up front with the safe zone at the board
// center. Every caller with the same parameters gets the same board.
func NewSeededGame(dim, mines int, seed int64) (*Game, error) {
	if err := validateParams(dim, mines); err != nil {
		return nil, err
	}
	rng := mrand.New(mrand.NewSource(seed))
	center := Pos{dim / 2, dim / 2}
	board, err := Populate(dim, mines, center, rng)
	if err != nil {
		return nil, err
	}
	return &Game{
		ID:    randomID(),
		Dim:   dim,
		Mines: mines,
		Mode:  "daily",
		Board: board,
		rng:   rng,
	}, nil
}

func validateParams(dim, mines int) error {
	if dim < MinDimension || dim > MaxDimension {
		return ErrBadDimension
	}
	if mines < 1 || mines > MaxMines(dim) {
		return ErrBadMineCount
	}
	return nil
}

// Reveal opens the cell at p, generating the minefield first if this
// is the opening move. Returns the resulting state string.
//
// A flagged cell ignores the click. Revealing a mine finishes the game
// as a loss; opening the last empty cell finishes it as a win.
func (g *Game) Reveal(p Pos) (string, error) {
	if g.Finished {
		return g.State(), ErrGameFinished
	}
	if p.X < 0 || p.X >= g.Dim || p.Y < 0 || p.Y >= g.Dim {
		return g.State(), ErrOutOfBounds
	}
	if g.Board == nil {
		board, err := Populate(g.Dim, g.Mines, p, g.rng)
		if err != nil {
			return g.State(), err
		}
		g.Board = board
	}
	g.Moves++

	if g.Board.IsMine(p) {
		if g.Board.IsFlagged(p) {
			return g.State(), nil
		}
		g.Finished = true
		return g.State(), nil
	}
	won, err := g.Board.Open(p)
	if err != nil {
		return g.State(), err
	}
	if won {
		g.Finished, g.Won = true, true
	}
	return g.State(), nil
}

// Flag toggles the flag at p. Flagging is only possible once the board
// exists (after the opening reveal).
func (g *Game) Flag(p Pos) (string, error) {
	if g.Finished {
		return g.State(), ErrGameFinished
	}
	if g.Board == nil {
		return g.State(), ErrNoBoard
	}
	if err := g.Board.ToggleFlag(p); err != nil {
		return g.State(), err
	}
	g.Moves++
	return g.State(), nil
}

// State reports a coarse string representation of the current state.
func (g *Game) State() string {
	if g.Finished {
		if g.Won {
			return "won"
		}
		return "lost"
	}
	return "playing"
}

// randomID returns a compact 16-hex-char identifier.
// Collisions are extremely unlikely given crypto/rand entropy.
func randomID() string {
	var b [8]byte
	_, _ = rand.Read(b[:])
	return hex.EncodeToString(b[:])
}
