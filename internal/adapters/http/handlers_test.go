package httpadapter

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"svw.info/nonogram/internal/hint"
	"svw.info/nonogram/internal/solver"
	"svw.info/nonogram/internal/usecase"
	"svw.info/nonogram/internal/validator"
)

func testMux(t *testing.T) *http.ServeMux {
	t.Helper()
	uc := usecase.NewService(solver.NewPropagationSolver(), nil, validator.New(), hint.NewForced(), nil)
	mux := http.NewServeMux()
	New(uc).Register(mux)
	return mux
}

func post(t *testing.T, mux *http.ServeMux, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	return rec
}

func TestHintRejectsMismatchedGrid(t *testing.T) {
	mux := testMux(t)
	cases := []struct {
		name string
		body string
	}{
		{
			"rows wider than the puzzle",
			`{"rows":[[1],[1]],"columns":[[1],[1]],"grid":[["?","?","?","?","?"],["?","?","?","?","?"]]}`,
		},
		{
			"too few grid rows",
			`{"rows":[[1],[1]],"columns":[[1],[1]],"grid":[["?","?"]]}`,
		},
		{
			"ragged grid rows",
			`{"rows":[[1],[1]],"columns":[[1],[1]],"grid":[["?","?"],["?"]]}`,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := post(t, mux, "/api/hint", tc.body)
			require.Equal(t, http.StatusBadRequest, rec.Code)
			require.Contains(t, rec.Body.String(), "grid")
		})
	}
}

func TestHintWithWellFormedGrid(t *testing.T) {
	mux := testMux(t)
	rec := post(t, mux, "/api/hint",
		`{"rows":[[3]],"columns":[[1],[1],[1]],"grid":[["?","?","?"]]}`)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `"found":true`)
}

func TestSolveEndpoint(t *testing.T) {
	mux := testMux(t)
	rec := post(t, mux, "/api/solve", `{"rows":[[3]],"columns":[[1],[1],[1]]}`)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `"rendered":"# # #"`)

	rec = post(t, mux, "/api/solve", `{"rows":[[5]],"columns":[[1],[1],[1]]}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}
