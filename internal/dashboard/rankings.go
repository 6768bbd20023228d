package dashboard

import (
	"context"
	"fmt"
)

const searchCompetitorsSQL = `
SELECT
    c.name AS competitor_name,
    cr.rank,
    cr.movement,
    cr.points,
    cr.competitions_played,
    c.country,
    c.country_code
FROM competitor_rankings cr
JOIN competitors c ON cr.competitor_id = c.competitor_id
%s
ORDER BY cr.rank`

const competitorDetailsSQL = `
SELECT
    c.name AS competitor_name,
    cr.rank,
    cr.movement,
    cr.points,
    cr.competitions_played,
    c.country,
    c.country_code,
    c.abbreviation
FROM competitor_rankings cr
JOIN competitors c ON cr.competitor_id = c.competitor_id
WHERE c.name = $1`

const topRankedSQL = `
SELECT
    c.name AS competitor_name,
    cr.rank,
    cr.points,
    c.country
FROM competitor_rankings cr
JOIN competitors c ON cr.competitor_id = c.competitor_id
ORDER BY cr.rank
LIMIT $1`

const pointsLeadersSQL = `
SELECT
    c.name AS competitor_name,
    cr.points,
    cr.rank,
    c.country
FROM competitor_rankings cr
JOIN competitors c ON cr.competitor_id = c.competitor_id
ORDER BY cr.points DESC
LIMIT $1`

const countryAnalysisSQL = `
SELECT
    c.country,
    COUNT(c.competitor_id) AS number_of_competitors,
    AVG(cr.points) AS average_points
FROM competitors c
JOIN competitor_rankings cr ON c.competitor_id = cr.competitor_id
GROUP BY c.country
ORDER BY number_of_competitors DESC`

// DefaultLeaderboardSize is the row limit for the leaderboard sections.
const DefaultLeaderboardSize = 10

// SearchCompetitors lists ranked competitors constrained by the search and
// filter state, ordered by rank.
func (s *Session) SearchCompetitors(ctx context.Context, f RankingFilter) Table {
	where, args := f.Where()
	t := s.Run(ctx, fmt.Sprintf(searchCompetitorsSQL, where), args...)
	s.InfoIfEmpty(t, "No competitors found matching the selected filters.")
	return t
}

// CompetitorDetails returns the full ranking record for one competitor.
func (s *Session) CompetitorDetails(ctx context.Context, name string) Table {
	t := s.Run(ctx, competitorDetailsSQL, name)
	s.InfoIfEmpty(t, "No competitor found with that name.")
	return t
}

// TopRanked lists the best-ranked competitors.
func (s *Session) TopRanked(ctx context.Context, limit int) Table {
	if limit <= 0 {
		limit = DefaultLeaderboardSize
	}
	return s.Run(ctx, topRankedSQL, limit)
}

// PointsLeaders lists the competitors with the highest points.
func (s *Session) PointsLeaders(ctx context.Context, limit int) Table {
	if limit <= 0 {
		limit = DefaultLeaderboardSize
	}
	return s.Run(ctx, pointsLeadersSQL, limit)
}

// CountryAnalysis reports competitor count and average points per country.
func (s *Session) CountryAnalysis(ctx context.Context) Table {
	return s.Run(ctx, countryAnalysisSQL)
}

// CompetitorCountries loads the distinct competitor countries for the
// dropdown.
func (s *Session) CompetitorCountries(ctx context.Context) Table {
	return s.Run(ctx, "distinct_competitor_countries")
}
