package dashboard

import (
	"fmt"
	"strings"
)

// FilterAll is the sentinel dropdown value meaning "do not constrain on this
// column". An empty string is treated the same way.
const FilterAll = "All"

// Permitted ranges for the numeric ranking filters. A range pair left at the
// full permitted range emits no predicate, so all-default filters compose to
// an empty WHERE clause and the query returns every row.
const (
	MinRank   = 1
	MaxRank   = 10000
	MinPoints = 0
	MaxPoints = 1000000
)

// whereBuilder accumulates AND-joined predicates with positional parameters.
// Values are always bound as $n arguments, never spliced into the SQL text.
type whereBuilder struct {
	conds []string
	args  []any
}

// equal appends `column = $n` for an active dropdown value; the FilterAll
// sentinel and the empty string are skipped.
func (b *whereBuilder) equal(column, value string) {
	if value == "" || value == FilterAll {
		return
	}
	b.args = append(b.args, value)
	b.conds = append(b.conds, fmt.Sprintf("%s = $%d", column, len(b.args)))
}

// contains appends a case-insensitive substring match for a text filter.
func (b *whereBuilder) contains(column, value string) {
	if value == "" {
		return
	}
	b.args = append(b.args, "%"+value+"%")
	b.conds = append(b.conds, fmt.Sprintf("%s ILIKE $%d", column, len(b.args)))
}

// between appends both bounds of a numeric range filter unless the pair sits
// at the full permitted range.
func (b *whereBuilder) between(column string, lo, hi, min, max int) {
	if lo == min && hi == max {
		return
	}
	b.args = append(b.args, lo)
	b.conds = append(b.conds, fmt.Sprintf("%s >= $%d", column, len(b.args)))
	b.args = append(b.args, hi)
	b.conds = append(b.conds, fmt.Sprintf("%s <= $%d", column, len(b.args)))
}

// clause returns the composed WHERE clause (with leading "WHERE ") and its
// bound arguments. No active filters yields an empty clause.
func (b *whereBuilder) clause() (string, []any) {
	if len(b.conds) == 0 {
		return "", nil
	}
	return "WHERE " + strings.Join(b.conds, " AND "), b.args
}

// CompetitionFilter holds the dropdown state of the competitions page.
type CompetitionFilter struct {
	Category string
	Type     string
	Gender   string
	Level    string
}

// Where composes the WHERE clause for the filtered competitions query.
func (f CompetitionFilter) Where() (string, []any) {
	var b whereBuilder
	b.equal("cat.category_name", f.Category)
	b.equal("c.type", f.Type)
	b.equal("c.gender", f.Gender)
	b.equal("c.level", f.Level)
	return b.clause()
}

// VenueFilter holds the dropdown state of the venues page.
type VenueFilter struct {
	Country string
}

// Where composes the WHERE clause for the venues-by-country query.
func (f VenueFilter) Where() (string, []any) {
	var b whereBuilder
	b.equal("v.country_name", f.Country)
	return b.clause()
}

// RankingFilter holds the search and filter state of the rankings page.
// Construct it with NewRankingFilter so the range bounds start at the full
// permitted ranges.
type RankingFilter struct {
	Name      string
	MinRank   int
	MaxRank   int
	MinPoints int
	MaxPoints int
	Country   string
}

// NewRankingFilter returns a filter with every field unconstrained.
func NewRankingFilter() RankingFilter {
	return RankingFilter{
		MinRank:   MinRank,
		MaxRank:   MaxRank,
		MinPoints: MinPoints,
		MaxPoints: MaxPoints,
	}
}

// Where composes the WHERE clause for the competitor search query.
func (f RankingFilter) Where() (string, []any) {
	var b whereBuilder
	b.contains("c.name", f.Name)
	b.between("cr.rank", f.MinRank, f.MaxRank, MinRank, MaxRank)
	b.between("cr.points", f.MinPoints, f.MaxPoints, MinPoints, MaxPoints)
	b.equal("c.country", f.Country)
	return b.clause()
}
