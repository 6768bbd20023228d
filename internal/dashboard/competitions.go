package dashboard

import (
	"context"
	"fmt"
)

const filteredCompetitionsSQL = `
SELECT
    c.competition_name,
    cat.category_name,
    c.type,
    c.gender,
    c.level,
    CASE WHEN c.parent_id IS NULL THEN 'Yes' ELSE 'No' END AS is_top_level
FROM competitions c
JOIN categories cat ON c.category_id = cat.category_id
%s
ORDER BY cat.category_name, c.competition_name`

const competitionsPerCategorySQL = `
SELECT
    cat.category_name,
    COUNT(c.competition_id) AS number_of_competitions
FROM categories cat
LEFT JOIN competitions c ON cat.category_id = c.category_id
GROUP BY cat.category_name
ORDER BY number_of_competitions DESC`

const competitionHierarchySQL = `
SELECT
    COALESCE(p.competition_name, '--- Top Level ---') AS parent_competition,
    s.competition_name AS sub_competition,
    s.type,
    s.gender,
    s.level
FROM competitions s
LEFT JOIN competitions p ON s.parent_id = p.competition_id
ORDER BY parent_competition, sub_competition`

// FilteredCompetitions lists competitions with their categories, constrained
// by the active dropdown filters.
func (s *Session) FilteredCompetitions(ctx context.Context, f CompetitionFilter) Table {
	where, args := f.Where()
	t := s.Run(ctx, fmt.Sprintf(filteredCompetitionsSQL, where), args...)
	s.InfoIfEmpty(t, "No competitions found matching the selected filters.")
	return t
}

// CompetitionsPerCategory counts competitions per category. Feeds the
// category bar chart.
func (s *Session) CompetitionsPerCategory(ctx context.Context) Table {
	return s.Run(ctx, competitionsPerCategorySQL)
}

// CompetitionHierarchy lists parent and sub-competition relationships.
func (s *Session) CompetitionHierarchy(ctx context.Context) Table {
	return s.Run(ctx, competitionHierarchySQL)
}

// CompetitionFilterOptions holds the distinct values backing the
// competitions page dropdowns.
type CompetitionFilterOptions struct {
	Categories Table `json:"categories"`
	Types      Table `json:"types"`
	Genders    Table `json:"genders"`
	Levels     Table `json:"levels"`
}

// FilterOptions loads the dropdown option lists via the prepared lookups.
func (s *Session) FilterOptions(ctx context.Context) CompetitionFilterOptions {
	return CompetitionFilterOptions{
		Categories: s.Run(ctx, "distinct_categories"),
		Types:      s.Run(ctx, "distinct_competition_types"),
		Genders:    s.Run(ctx, "distinct_competition_genders"),
		Levels:     s.Run(ctx, "distinct_competition_levels"),
	}
}
