package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amalbasheer/Game-analytics/internal/api/respond"
	"github.com/amalbasheer/Game-analytics/internal/config"
	"github.com/amalbasheer/Game-analytics/internal/dashboard"
)

// --------------------------------------------------------------------------
// Fakes
// --------------------------------------------------------------------------

type fakeRows struct {
	cols []string
	rows [][]any
	idx  int
}

func (r *fakeRows) Close()                        {}
func (r *fakeRows) Err() error                    { return nil }
func (r *fakeRows) CommandTag() pgconn.CommandTag { return pgconn.CommandTag{} }
func (r *fakeRows) RawValues() [][]byte           { return nil }
func (r *fakeRows) Conn() *pgx.Conn               { return nil }
func (r *fakeRows) Scan(dest ...any) error        { return errors.New("not implemented") }

func (r *fakeRows) FieldDescriptions() []pgconn.FieldDescription {
	fds := make([]pgconn.FieldDescription, len(r.cols))
	for i, c := range r.cols {
		fds[i] = pgconn.FieldDescription{Name: c}
	}
	return fds
}

func (r *fakeRows) Next() bool {
	if r.idx >= len(r.rows) {
		return false
	}
	r.idx++
	return true
}

func (r *fakeRows) Values() ([]any, error) { return r.rows[r.idx-1], nil }

type fakeQuerier struct {
	lastSQL  string
	lastArgs []any
	rows     *fakeRows
	queryErr error
}

func (q *fakeQuerier) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	q.lastSQL = sql
	q.lastArgs = args
	if q.queryErr != nil {
		return nil, q.queryErr
	}
	if q.rows == nil {
		return &fakeRows{cols: []string{}}, nil
	}
	return q.rows, nil
}

func testHandler(q dashboard.Querier) *Handler {
	return &Handler{q: q, cfg: &config.Config{}}
}

func decodePage(t *testing.T, rec *httptest.ResponseRecorder) respond.PageResponse {
	t.Helper()
	var resp respond.PageResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	return resp
}

// --------------------------------------------------------------------------
// Tests
// --------------------------------------------------------------------------

func TestGetRankingsParsesFilters(t *testing.T) {
	q := &fakeQuerier{rows: &fakeRows{
		cols: []string{"competitor_name", "rank"},
		rows: [][]any{{"A", float64(1)}, {"B", float64(3)}},
	}}
	h := testHandler(q)

	req := httptest.NewRequest(http.MethodGet, "/rankings?min_rank=1&max_rank=5&name=a", nil)
	rec := httptest.NewRecorder()
	h.GetRankings(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, q.lastSQL, "c.name ILIKE $1")
	assert.Contains(t, q.lastSQL, "cr.rank >= $2 AND cr.rank <= $3")
	assert.Equal(t, []any{"%a%", 1, 5}, q.lastArgs)

	resp := decodePage(t, rec)
	assert.Equal(t, []string{"competitor_name", "rank"}, resp.Data.Columns)
	require.Len(t, resp.Data.Rows, 2)
	assert.Empty(t, resp.Banners)
}

func TestGetRankingsRejectsBadRange(t *testing.T) {
	h := testHandler(&fakeQuerier{})

	req := httptest.NewRequest(http.MethodGet, "/rankings?min_rank=abc", nil)
	rec := httptest.NewRecorder()
	h.GetRankings(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	var resp respond.ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "INVALID_FILTER", resp.Error.Code)
}

func TestGetCompetitionsDegradedMode(t *testing.T) {
	h := testHandler(nil)

	req := httptest.NewRequest(http.MethodGet, "/competitions", nil)
	rec := httptest.NewRecorder()
	h.GetCompetitions(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	resp := decodePage(t, rec)
	assert.Empty(t, resp.Data.Rows)

	// One connection warning plus the empty-result info message.
	require.Len(t, resp.Banners, 2)
	assert.Equal(t, dashboard.BannerWarning, resp.Banners[0].Level)
	assert.Equal(t, dashboard.BannerInfo, resp.Banners[1].Level)
}

func TestGetCompetitionsAppliesDropdownFilters(t *testing.T) {
	q := &fakeQuerier{}
	h := testHandler(q)

	req := httptest.NewRequest(http.MethodGet, "/competitions?category=ATP+Tour&gender=All", nil)
	rec := httptest.NewRecorder()
	h.GetCompetitions(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, q.lastSQL, "WHERE cat.category_name = $1")
	assert.NotContains(t, q.lastSQL, "gender")
	assert.Equal(t, []any{"ATP Tour"}, q.lastArgs)
}

func TestGetVenuesCountrySwitch(t *testing.T) {
	q := &fakeQuerier{}
	h := testHandler(q)

	rec := httptest.NewRecorder()
	h.GetVenues(rec, httptest.NewRequest(http.MethodGet, "/venues", nil))
	assert.Contains(t, q.lastSQL, "JOIN complexes c ON v.complex_id = c.complex_id")
	assert.NotContains(t, q.lastSQL, "WHERE")

	rec = httptest.NewRecorder()
	h.GetVenues(rec, httptest.NewRequest(http.MethodGet, "/venues?country=Spain", nil))
	assert.Contains(t, q.lastSQL, "WHERE v.country_name = $1")
	assert.Equal(t, []any{"Spain"}, q.lastArgs)
}

func TestGetCompetitorDetailsRequiresName(t *testing.T) {
	h := testHandler(&fakeQuerier{})

	rec := httptest.NewRecorder()
	h.GetCompetitorDetails(rec, httptest.NewRequest(http.MethodGet, "/rankings/competitor", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetTopRankedLimit(t *testing.T) {
	q := &fakeQuerier{}
	h := testHandler(q)

	rec := httptest.NewRecorder()
	h.GetTopRanked(rec, httptest.NewRequest(http.MethodGet, "/rankings/top?limit=3", nil))
	assert.Equal(t, []any{3}, q.lastArgs)

	rec = httptest.NewRecorder()
	h.GetTopRanked(rec, httptest.NewRequest(http.MethodGet, "/rankings/top", nil))
	assert.Equal(t, []any{dashboard.DefaultLeaderboardSize}, q.lastArgs)
}

func TestHealthCheck(t *testing.T) {
	h := testHandler(nil)

	rec := httptest.NewRecorder()
	h.HealthCheck(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHealthCheckDBWithoutPool(t *testing.T) {
	h := testHandler(nil)

	rec := httptest.NewRecorder()
	h.HealthCheckDB(rec, httptest.NewRequest(http.MethodGet, "/health/db", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
