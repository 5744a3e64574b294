// internal/httpserver/routes_daily.go
//
// HTTP routes for the shared daily board.
// Exposes two endpoints under /daily:
//   - POST /daily/new  → start today's board (creates or reuses a session)
//   - GET  /daily/info → today's date and board parameters
//
// Every player of a given UTC date gets the identical minefield: the
// board seed is derived from the date and a server salt, and generation
// runs up front with the safe zone fixed at the board center. Each user
// (or anon cookie) gets one attempt per day; reveals and flags go
// through the normal /game endpoints against the returned gameId.

package httpserver

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/minefield/go-server/internal/daily"
	"github.com/minefield/go-server/internal/game"
)

// Board parameters for the daily mode; every date uses the same shape.
const (
	dailyDimension = 16
	dailyMines     = 40
)

// dailyServer wraps dependencies for /daily endpoints.
type dailyServer struct {
	srv      *Server
	salt     string
	sessions map[string]string // active gameIDs keyed by userID|date
	mu       sync.Mutex        // guards sessions
}

// mountDaily registers all /daily routes.
func (s *Server) mountDaily(r chi.Router) {
	dd := &dailyServer{
		srv:      s,
		salt:     getEnv("DAILY_SALT", "local_dev_salt"),
		sessions: make(map[string]string),
	}
	r.Route("/daily", func(r chi.Router) {
		r.Post("/new", dd.handleNew)
		r.Get("/info", dd.handleInfo)
	})
}

// todayKey returns today's date key and the deterministic board seed.
func (d *dailyServer) todayKey() (date string, seed int64) {
	now := time.Now().UTC()
	return daily.DateKey(now), daily.Seed(now, d.salt)
}

// userIDWithAnon returns the authenticated user ID if logged in,
// otherwise ensures an anonymous ID via Server.ensureAnonID.
func (d *dailyServer) userIDWithAnon(w http.ResponseWriter, r *http.Request) string {
	if me, _ := r.Context().Value(ctxUserKey{}).(*authUser); me != nil {
		return me.ID
	}
	return d.srv.ensureAnonID(w, r)
}

// -----------------------------------------------------------------------------
// /daily/new

// dailyNewRes is returned by /daily/new.
type dailyNewRes struct {
	GameID    string `json:"gameId"`
	Date      string `json:"date"`
	Dimension int    `json:"dimension"`
	Mines     int    `json:"mines"`
	Played    bool   `json:"played"`
}

// handleNew creates or reuses a daily session for the current date.
// - If the user already finished today's board (DB row) → Played=true.
// - Otherwise create/reuse an in-memory session and return GameID.
func (d *dailyServer) handleNew(w http.ResponseWriter, r *http.Request) {
	uid := d.userIDWithAnon(w, r)
	date, seed := d.todayKey()

	// Check if already played (persisted in DB on finish).
	if played, err := d.alreadyPlayed(r, uid, date); err == nil && played {
		_ = json.NewEncoder(w).Encode(dailyNewRes{Date: date, Dimension: dailyDimension, Mines: dailyMines, Played: true})
		return
	}

	// Reuse or create session in memory.
	key := uid + "|" + date
	d.mu.Lock()
	if id, ok := d.sessions[key]; ok {
		d.mu.Unlock()
		_ = json.NewEncoder(w).Encode(dailyNewRes{GameID: id, Date: date, Dimension: dailyDimension, Mines: dailyMines})
		return
	}
	d.mu.Unlock()

	g, err := game.NewSeededGame(dailyDimension, dailyMines, seed)
	if err != nil {
		log.Error().Err(err).Str("date", date).Msg("generate daily board")
		http.Error(w, `{"error":"generation_failed"}`, http.StatusInternalServerError)
		return
	}
	g.Mode = "daily"
	if err := d.srv.store.Save(r.Context(), g); err != nil {
		http.Error(w, `{"error":"save_failed"}`, http.StatusInternalServerError)
		return
	}
	d.insertDailyRow(r, uid, g, date)

	d.mu.Lock()
	d.sessions[key] = g.ID
	d.mu.Unlock()

	_ = json.NewEncoder(w).Encode(dailyNewRes{GameID: g.ID, Date: date, Dimension: g.Dim, Mines: g.Mines})
}

// alreadyPlayed reports whether a finished daily game exists for this
// owner and date.
func (d *dailyServer) alreadyPlayed(r *http.Request, uid, date string) (bool, error) {
	var cnt int
	err := d.srv.db.QueryRowContext(r.Context(),
		`SELECT COUNT(1) FROM games
		 WHERE mode='daily' AND daily_date=? AND status!='playing'
		   AND (user_id=? OR anonymous_id=?)`,
		date, uid, uid,
	).Scan(&cnt)
	return cnt > 0, err
}

// insertDailyRow persists the owner row for a daily game (best effort).
func (d *dailyServer) insertDailyRow(r *http.Request, uid string, g *game.Game, date string) {
	now := time.Now().UTC().Format(time.RFC3339)
	ownerCol := `anonymous_id`
	if me, _ := r.Context().Value(ctxUserKey{}).(*authUser); me != nil {
		ownerCol = `user_id`
	}
	_, err := d.srv.db.Exec(`INSERT INTO games (id, `+ownerCol+`, mode, daily_date, dimension, mines, started_at, status, moves)
	                         VALUES (?,?,?,?,?,?,?,?,0)`,
		g.ID, uid, "daily", date, g.Dim, g.Mines, now, "playing")
	if err != nil {
		log.Warn().Err(err).Str("gameId", g.ID).Msg("insert daily game row")
	}
}

// -----------------------------------------------------------------------------
// /daily/info

// dailyInfoRes is returned by /daily/info.
type dailyInfoRes struct {
	Date      string `json:"date"`
	Dimension int    `json:"dimension"`
	Mines     int    `json:"mines"`
}

// handleInfo reports today's board parameters without starting a game.
func (d *dailyServer) handleInfo(w http.ResponseWriter, r *http.Request) {
	date, _ := d.todayKey()
	_ = json.NewEncoder(w).Encode(dailyInfoRes{Date: date, Dimension: dailyDimension, Mines: dailyMines})
}
