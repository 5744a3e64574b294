// internal/httpserver/server_test.go
//
// End-to-end handler tests: a real sqlite database (temp file), the
// in-memory session store, and an HTTP client with a cookie jar so the
// anonymous-identity and auth cookies behave as they do in production.

package httpserver

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minefield/go-server/internal/game"
	"github.com/minefield/go-server/internal/store"
)

func newTestEnv(t *testing.T) (*httptest.Server, *http.Client) {
	t.Helper()

	db, err := sql.Open("sqlite3", filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	schema, err := os.ReadFile(filepath.Join("..", "..", "sql", "001_init.sql"))
	require.NoError(t, err)
	_, err = db.Exec(string(schema))
	require.NoError(t, err)

	srv := httptest.NewServer(New(store.NewMemoryStore(), db).Router())
	t.Cleanup(srv.Close)

	jar, err := cookiejar.New(nil)
	require.NoError(t, err)
	return srv, &http.Client{Jar: jar}
}

func postJSON(t *testing.T, c *http.Client, url string, body any, out any) *http.Response {
	t.Helper()
	b, err := json.Marshal(body)
	require.NoError(t, err)
	res, err := c.Post(url, "application/json", bytes.NewReader(b))
	require.NoError(t, err)
	defer res.Body.Close()
	if out != nil && res.StatusCode < 300 {
		require.NoError(t, json.NewDecoder(res.Body).Decode(out))
	}
	return res
}

func getJSON(t *testing.T, c *http.Client, url string, out any) *http.Response {
	t.Helper()
	res, err := c.Get(url)
	require.NoError(t, err)
	defer res.Body.Close()
	if out != nil && res.StatusCode < 300 {
		require.NoError(t, json.NewDecoder(res.Body).Decode(out))
	}
	return res
}

func TestHealthAndPresets(t *testing.T) {
	srv, c := newTestEnv(t)

	res := getJSON(t, c, srv.URL+"/health", nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)

	var ps []map[string]any
	res = getJSON(t, c, srv.URL+"/presets", &ps)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	require.Len(t, ps, 3)
	assert.Equal(t, "beginner", ps[0]["name"])
}

func TestGameFlow(t *testing.T) {
	srv, c := newTestEnv(t)

	var created newGameRes
	res := postJSON(t, c, srv.URL+"/game/new", newGameReq{Dimension: 9, Mines: 10}, &created)
	require.Equal(t, http.StatusOK, res.StatusCode)
	require.NotEmpty(t, created.GameID)
	assert.Equal(t, 9, created.Dimension)

	// First reveal: safe zone guarantees the game keeps going.
	var mv moveRes
	res = postJSON(t, c, srv.URL+"/game/reveal", moveReq{GameID: created.GameID, X: 4, Y: 4}, &mv)
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, "playing", mv.State)
	require.Len(t, mv.Board, 9)
	assert.Equal(t, "opened", mv.Board[4][4].State)

	// Flag some still-hidden cell.
	target := game.Pos{X: -1, Y: -1}
	for y := range mv.Board {
		for x := range mv.Board[y] {
			if mv.Board[y][x].State == "hidden" {
				target = game.Pos{X: x, Y: y}
				break
			}
		}
		if target.X >= 0 {
			break
		}
	}
	require.GreaterOrEqual(t, target.X, 0, "some cell stays hidden after one reveal")

	res = postJSON(t, c, srv.URL+"/game/flag", moveReq{GameID: created.GameID, X: target.X, Y: target.Y}, &mv)
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, "flagged", mv.Board[target.Y][target.X].State)

	// Reconnect: GET returns the same view.
	var got moveRes
	res = getJSON(t, c, srv.URL+"/game/"+created.GameID, &got)
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, mv.Board, got.Board)
}

func TestNewGameRejectsBadParams(t *testing.T) {
	srv, c := newTestEnv(t)

	res := postJSON(t, c, srv.URL+"/game/new", newGameReq{Dimension: 50, Mines: 10}, nil)
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)

	res = postJSON(t, c, srv.URL+"/game/new", newGameReq{Preset: "nightmare"}, nil)
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)

	res = postJSON(t, c, srv.URL+"/game/new", newGameReq{Dimension: 9, Mines: 80}, nil)
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
}

func TestMoveOnUnknownGame(t *testing.T) {
	srv, c := newTestEnv(t)

	res := postJSON(t, c, srv.URL+"/game/reveal", moveReq{GameID: "nope", X: 0, Y: 0}, nil)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
}

func TestDefaultPresetWhenBodyEmpty(t *testing.T) {
	srv, c := newTestEnv(t)

	var created newGameRes
	res := postJSON(t, c, srv.URL+"/game/new", map[string]any{}, &created)
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, 9, created.Dimension)
	assert.Equal(t, 10, created.Mines)
}

func TestAuthFlow(t *testing.T) {
	srv, c := newTestEnv(t)

	res := postJSON(t, c, srv.URL+"/auth/signup", map[string]string{
		"Username": "player_one", "Password": "hunter2hunter2",
	}, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)

	var me authUser
	res = getJSON(t, c, srv.URL+"/auth/me", &me)
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, "player_one", me.Username)

	var stats map[string]any
	res = getJSON(t, c, srv.URL+"/stats/me", &stats)
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.EqualValues(t, 0, stats["gamesPlayed"])

	res = postJSON(t, c, srv.URL+"/auth/logout", nil, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	res = getJSON(t, c, srv.URL+"/auth/me", nil)
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)

	res = postJSON(t, c, srv.URL+"/auth/login", map[string]string{
		"Username": "player_one", "Password": "wrong-password",
	}, nil)
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)

	res = postJSON(t, c, srv.URL+"/auth/login", map[string]string{
		"Username": "player_one", "Password": "hunter2hunter2",
	}, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
}

func TestSignupValidation(t *testing.T) {
	srv, c := newTestEnv(t)

	res := postJSON(t, c, srv.URL+"/auth/signup", map[string]string{
		"Username": "ab", "Password": "hunter2hunter2",
	}, nil)
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)

	res = postJSON(t, c, srv.URL+"/auth/signup", map[string]string{
		"Username": "player_two", "Password": "short",
	}, nil)
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
}

func TestDailyNewReusesSession(t *testing.T) {
	srv, c := newTestEnv(t)

	var first dailyNewRes
	res := postJSON(t, c, srv.URL+"/daily/new", nil, &first)
	require.Equal(t, http.StatusOK, res.StatusCode)
	require.NotEmpty(t, first.GameID)
	assert.False(t, first.Played)
	assert.Equal(t, dailyDimension, first.Dimension)

	var second dailyNewRes
	res = postJSON(t, c, srv.URL+"/daily/new", nil, &second)
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, first.GameID, second.GameID, "same user, same day, same session")

	var info dailyInfoRes
	res = getJSON(t, c, srv.URL+"/daily/info", &info)
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, first.Date, info.Date)
}
