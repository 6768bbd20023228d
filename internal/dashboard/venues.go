package dashboard

import (
	"context"
	"fmt"
)

const venuesWithComplexesSQL = `
SELECT
    v.venue_name,
    c.complex_name,
    v.city_name,
    v.country_name,
    v.timezone
FROM venues v
JOIN complexes c ON v.complex_id = c.complex_id
ORDER BY c.complex_name, v.venue_name`

const venuesPerComplexSQL = `
SELECT
    c.complex_name,
    COUNT(v.venue_id) AS number_of_venues
FROM complexes c
LEFT JOIN venues v ON c.complex_id = v.complex_id
GROUP BY c.complex_name
ORDER BY number_of_venues DESC`

const venuesByCountrySQL = `
SELECT
    v.venue_name,
    v.city_name,
    v.country_name,
    v.timezone,
    c.complex_name
FROM venues v
LEFT JOIN complexes c ON v.complex_id = c.complex_id
%s
ORDER BY v.venue_name`

const multiVenueComplexesSQL = `
SELECT
    c.complex_name,
    COUNT(v.venue_id) AS number_of_venues,
    STRING_AGG(v.venue_name, ', ' ORDER BY v.venue_name) AS venue_list
FROM complexes c
JOIN venues v ON c.complex_id = v.complex_id
GROUP BY c.complex_name
HAVING COUNT(v.venue_id) > 1
ORDER BY number_of_venues DESC`

// VenuesWithComplexes lists every venue with the complex it belongs to.
func (s *Session) VenuesWithComplexes(ctx context.Context) Table {
	return s.Run(ctx, venuesWithComplexesSQL)
}

// VenuesPerComplex counts venues per complex. Feeds the complex bar chart.
func (s *Session) VenuesPerComplex(ctx context.Context) Table {
	return s.Run(ctx, venuesPerComplexSQL)
}

// VenuesByCountry lists the venues located in one country.
func (s *Session) VenuesByCountry(ctx context.Context, f VenueFilter) Table {
	where, args := f.Where()
	t := s.Run(ctx, fmt.Sprintf(venuesByCountrySQL, where), args...)
	s.InfoIfEmpty(t, "No venues found for the selected country.")
	return t
}

// MultiVenueComplexes identifies complexes hosting more than one venue,
// with the venue names aggregated into a single list per complex.
func (s *Session) MultiVenueComplexes(ctx context.Context) Table {
	return s.Run(ctx, multiVenueComplexesSQL)
}

// VenueCountries loads the distinct venue countries for the dropdown.
func (s *Session) VenueCountries(ctx context.Context) Table {
	return s.Run(ctx, "distinct_venue_countries")
}
