package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	return NewRouter(Defaults{Rows: 12, Cols: 12, Percent: 0.15, MaxPaths: 100})
}

func doSolve(t *testing.T, query string) (*httptest.ResponseRecorder, SolveResponse) {
	t.Helper()
	r := newTestRouter()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/solve"+query, nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	var resp SolveResponse
	if rec.Code == http.StatusOK {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	}

	return rec, resp
}

// TestSolve_Defaults verifies a bare request solves the default scenario.
func TestSolve_Defaults(t *testing.T) {
	rec, resp := doSolve(t, "?seed=42")
	require.Equal(t, http.StatusOK, rec.Code)

	require.NotEmpty(t, resp.RequestID)
	require.Equal(t, 12, resp.Rows)
	require.Equal(t, 12, resp.Cols)
	require.Equal(t, 4, resp.Connectivity)
	require.Equal(t, int64(42), resp.Seed)
	require.Equal(t, 0, resp.Start.Row)
	require.Greater(t, resp.Goal.Row, 6)
	require.NotEmpty(t, resp.GridText)

	if resp.Found {
		require.NotEmpty(t, resp.Paths)
		require.Equal(t, resp.GoalDistance, len(resp.Paths[0])-1)
	} else {
		require.Empty(t, resp.Paths)
		require.Equal(t, -1, resp.GoalDistance)
	}
}

// TestSolve_DeterministicSeed verifies two requests with the same seed
// return the same scenario and paths.
func TestSolve_DeterministicSeed(t *testing.T) {
	_, a := doSolve(t, "?seed=7&rows=10&cols=10&conn=8")
	_, b := doSolve(t, "?seed=7&rows=10&cols=10&conn=8")

	require.Equal(t, a.Start, b.Start)
	require.Equal(t, a.Goal, b.Goal)
	require.Equal(t, a.GridText, b.GridText)
	require.Equal(t, a.GoalDistance, b.GoalDistance)
	require.Equal(t, a.Paths, b.Paths)
}

// TestSolve_BadParams verifies malformed parameters answer 400.
func TestSolve_BadParams(t *testing.T) {
	cases := []struct {
		name  string
		query string
	}{
		{"RowsNotInt", "?rows=abc"},
		{"PercentNotFloat", "?percent=lots"},
		{"PercentOutOfRange", "?percent=0.5"},
		{"GridTooSmall", "?rows=4&cols=4"},
		{"BadConn", "?conn=6"},
		{"NegativeMaxPaths", "?maxPaths=-2"},
		{"SeedNotInt", "?seed=x"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec, _ := doSolve(t, tc.query)
			require.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

// TestSolve_AllPathsCapped verifies multi-path mode respects maxPaths.
func TestSolve_AllPathsCapped(t *testing.T) {
	rec, resp := doSolve(t, "?seed=11&all=true&maxPaths=5")
	require.Equal(t, http.StatusOK, rec.Code)

	if resp.Found {
		require.NotEmpty(t, resp.Paths)
		require.LessOrEqual(t, len(resp.Paths), 5)
		for _, p := range resp.Paths {
			require.Equal(t, resp.GoalDistance, len(p)-1)
		}
	}
}

// TestSolve_CORSPreflight verifies OPTIONS short-circuits with 204.
func TestSolve_CORSPreflight(t *testing.T) {
	r := newTestRouter()
	req := httptest.NewRequest(http.MethodOptions, "/api/v1/solve", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNoContent, rec.Code)
	require.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}
