package handler

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/amalbasheer/Game-analytics/internal/api/respond"
	"github.com/amalbasheer/Game-analytics/internal/dashboard"
)

// GetRankings searches ranked competitors by name, rank/points range, and
// country.
// @Summary Search competitor rankings
// @Description Lists ranked competitors ordered by rank. Name matches case-insensitively on a substring; rank and points ranges default to the full permitted ranges.
// @Tags rankings
// @Produce json
// @Param name query string false "Competitor name substring"
// @Param min_rank query int false "Minimum rank" default(1)
// @Param max_rank query int false "Maximum rank" default(10000)
// @Param min_points query int false "Minimum points" default(0)
// @Param max_points query int false "Maximum points" default(1000000)
// @Param country query string false "Country name"
// @Success 200 {object} respond.PageResponse
// @Failure 400 {object} respond.ErrorResponse
// @Router /rankings [get]
func (h *Handler) GetRankings(w http.ResponseWriter, r *http.Request) {
	f, err := parseRankingFilter(r.URL.Query())
	if err != nil {
		respond.WriteError(w, http.StatusBadRequest, "INVALID_FILTER", err.Error())
		return
	}

	s := h.session()
	t := s.SearchCompetitors(r.Context(), f)
	respond.WritePage(w, t, s.Banners())
}

// GetCompetitorDetails returns one competitor's full ranking record.
// @Summary Competitor details
// @Description Returns the full ranking record for the competitor with the given exact name.
// @Tags rankings
// @Produce json
// @Param name query string true "Competitor name (exact)"
// @Success 200 {object} respond.PageResponse
// @Failure 400 {object} respond.ErrorResponse
// @Router /rankings/competitor [get]
func (h *Handler) GetCompetitorDetails(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")
	if name == "" {
		respond.WriteError(w, http.StatusBadRequest, "MISSING_NAME", "name query parameter is required")
		return
	}

	s := h.session()
	t := s.CompetitorDetails(r.Context(), name)
	respond.WritePage(w, t, s.Banners())
}

// GetTopRanked returns the best-ranked competitors.
// @Summary Top-ranked competitors
// @Description Returns the best-ranked competitors, ten by default.
// @Tags rankings
// @Produce json
// @Param limit query int false "Row limit" default(10)
// @Success 200 {object} respond.PageResponse
// @Router /rankings/top [get]
func (h *Handler) GetTopRanked(w http.ResponseWriter, r *http.Request) {
	s := h.session()
	t := s.TopRanked(r.Context(), intParam(r.URL.Query(), "limit", dashboard.DefaultLeaderboardSize))
	respond.WritePage(w, t, s.Banners())
}

// GetPointsLeaders returns the competitors with the highest points.
// @Summary Points leaders
// @Description Returns the competitors with the highest points, ten by default.
// @Tags rankings
// @Produce json
// @Param limit query int false "Row limit" default(10)
// @Success 200 {object} respond.PageResponse
// @Router /rankings/points-leaders [get]
func (h *Handler) GetPointsLeaders(w http.ResponseWriter, r *http.Request) {
	s := h.session()
	t := s.PointsLeaders(r.Context(), intParam(r.URL.Query(), "limit", dashboard.DefaultLeaderboardSize))
	respond.WritePage(w, t, s.Banners())
}

// GetCountryAnalysis returns competitor counts and average points per country.
// @Summary Country-wise analysis
// @Description Returns the number of competitors and the average points per country.
// @Tags rankings
// @Produce json
// @Success 200 {object} respond.PageResponse
// @Router /rankings/by-country [get]
func (h *Handler) GetCountryAnalysis(w http.ResponseWriter, r *http.Request) {
	s := h.session()
	t := s.CountryAnalysis(r.Context())
	respond.WritePage(w, t, s.Banners())
}

// GetCompetitorCountries returns the distinct competitor countries.
// @Summary Competitor countries
// @Description Returns the distinct countries competitors come from, for the country dropdown.
// @Tags rankings
// @Produce json
// @Success 200 {object} respond.PageResponse
// @Router /rankings/countries [get]
func (h *Handler) GetCompetitorCountries(w http.ResponseWriter, r *http.Request) {
	s := h.session()
	t := s.CompetitorCountries(r.Context())
	respond.WritePage(w, t, s.Banners())
}

// --------------------------------------------------------------------------
// Query parameter parsing
// --------------------------------------------------------------------------

// parseRankingFilter builds a RankingFilter from query parameters, leaving
// absent range parameters at the full permitted ranges.
func parseRankingFilter(q url.Values) (dashboard.RankingFilter, error) {
	f := dashboard.NewRankingFilter()
	f.Name = q.Get("name")
	f.Country = q.Get("country")

	for _, p := range []struct {
		key  string
		dest *int
	}{
		{"min_rank", &f.MinRank},
		{"max_rank", &f.MaxRank},
		{"min_points", &f.MinPoints},
		{"max_points", &f.MaxPoints},
	} {
		v := q.Get(p.key)
		if v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return f, fmt.Errorf("%s must be an integer", p.key)
		}
		*p.dest = n
	}
	return f, nil
}

func intParam(q url.Values, key string, fallback int) int {
	if v := q.Get(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
