package handler

import (
	"net/http"

	"github.com/amalbasheer/Game-analytics/internal/api/respond"
	"github.com/amalbasheer/Game-analytics/internal/dashboard"
)

// GetVenues lists venues with their complexes, optionally for one country.
// @Summary List venues
// @Description Lists all venues and the complexes they belong to. With the country parameter, restricts to venues in that country.
// @Tags venues
// @Produce json
// @Param country query string false "Country name"
// @Success 200 {object} respond.PageResponse
// @Router /venues [get]
func (h *Handler) GetVenues(w http.ResponseWriter, r *http.Request) {
	s := h.session()
	var t dashboard.Table
	if country := r.URL.Query().Get("country"); country != "" && country != dashboard.FilterAll {
		t = s.VenuesByCountry(r.Context(), dashboard.VenueFilter{Country: country})
	} else {
		t = s.VenuesWithComplexes(r.Context())
	}
	respond.WritePage(w, t, s.Banners())
}

// GetVenuesPerComplex returns venue counts per complex.
// @Summary Venues per complex
// @Description Returns the number of venues hosted by each complex; the source data for the complex bar chart.
// @Tags venues
// @Produce json
// @Success 200 {object} respond.PageResponse
// @Router /venues/by-complex [get]
func (h *Handler) GetVenuesPerComplex(w http.ResponseWriter, r *http.Request) {
	s := h.session()
	t := s.VenuesPerComplex(r.Context())
	respond.WritePage(w, t, s.Banners())
}

// GetMultiVenueComplexes returns complexes hosting more than one venue.
// @Summary Multi-venue complexes
// @Description Identifies complexes with more than one venue, with the venue names aggregated per complex.
// @Tags venues
// @Produce json
// @Success 200 {object} respond.PageResponse
// @Router /venues/multi-venue-complexes [get]
func (h *Handler) GetMultiVenueComplexes(w http.ResponseWriter, r *http.Request) {
	s := h.session()
	t := s.MultiVenueComplexes(r.Context())
	respond.WritePage(w, t, s.Banners())
}

// GetVenueCountries returns the distinct venue countries.
// @Summary Venue countries
// @Description Returns the distinct countries venues are located in, for the country dropdown.
// @Tags venues
// @Produce json
// @Success 200 {object} respond.PageResponse
// @Router /venues/countries [get]
func (h *Handler) GetVenueCountries(w http.ResponseWriter, r *http.Request) {
	s := h.session()
	t := s.VenueCountries(r.Context())
	respond.WritePage(w, t, s.Banners())
}
