package handler

import (
	"net/http"

	"github.com/amalbasheer/Game-analytics/internal/api/respond"
	"github.com/amalbasheer/Game-analytics/internal/dashboard"
)

// GetCompetitions lists competitions constrained by the dropdown filters.
// @Summary List competitions
// @Description Lists competitions with their categories, filtered by category, type, gender, and level. "All" or an absent parameter leaves a column unconstrained.
// @Tags competitions
// @Produce json
// @Param category query string false "Category name"
// @Param type query string false "Competition type (singles, doubles, mixed)"
// @Param gender query string false "Gender (men, women, mixed)"
// @Param level query string false "Level (e.g. atp_250, wta_premier)"
// @Success 200 {object} respond.PageResponse
// @Router /competitions [get]
func (h *Handler) GetCompetitions(w http.ResponseWriter, r *http.Request) {
	f := dashboard.CompetitionFilter{
		Category: r.URL.Query().Get("category"),
		Type:     r.URL.Query().Get("type"),
		Gender:   r.URL.Query().Get("gender"),
		Level:    r.URL.Query().Get("level"),
	}

	s := h.session()
	t := s.FilteredCompetitions(r.Context(), f)
	respond.WritePage(w, t, s.Banners())
}

// GetCompetitionsPerCategory returns competition counts per category.
// @Summary Competitions per category
// @Description Returns the number of competitions in each category; the source data for the category bar chart.
// @Tags competitions
// @Produce json
// @Success 200 {object} respond.PageResponse
// @Router /competitions/by-category [get]
func (h *Handler) GetCompetitionsPerCategory(w http.ResponseWriter, r *http.Request) {
	s := h.session()
	t := s.CompetitionsPerCategory(r.Context())
	respond.WritePage(w, t, s.Banners())
}

// GetCompetitionHierarchy returns parent/sub competition relationships.
// @Summary Competition hierarchy
// @Description Lists parent and sub-competition relationships; top-level competitions appear under "--- Top Level ---".
// @Tags competitions
// @Produce json
// @Success 200 {object} respond.PageResponse
// @Router /competitions/hierarchy [get]
func (h *Handler) GetCompetitionHierarchy(w http.ResponseWriter, r *http.Request) {
	s := h.session()
	t := s.CompetitionHierarchy(r.Context())
	respond.WritePage(w, t, s.Banners())
}

// GetCompetitionFilterOptions returns the dropdown option lists.
// @Summary Competition filter options
// @Description Returns the distinct categories, types, genders, and levels backing the filter dropdowns.
// @Tags competitions
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /competitions/filters [get]
func (h *Handler) GetCompetitionFilterOptions(w http.ResponseWriter, r *http.Request) {
	s := h.session()
	opts := s.FilterOptions(r.Context())
	respond.WriteJSONObject(w, http.StatusOK, map[string]interface{}{
		"options": opts,
		"banners": s.Banners(),
	})
}
