package dashboard

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompetitionFilterAllDefaults(t *testing.T) {
	for _, f := range []CompetitionFilter{
		{},
		{Category: FilterAll, Type: FilterAll, Gender: FilterAll, Level: FilterAll},
	} {
		where, args := f.Where()
		assert.Empty(t, where)
		assert.Nil(t, args)
	}
}

func TestCompetitionFilterSingle(t *testing.T) {
	f := CompetitionFilter{Category: "ATP Tour"}
	where, args := f.Where()
	assert.Equal(t, "WHERE cat.category_name = $1", where)
	assert.Equal(t, []any{"ATP Tour"}, args)
}

func TestCompetitionFilterCombined(t *testing.T) {
	f := CompetitionFilter{
		Category: "ATP Tour",
		Type:     "singles",
		Gender:   FilterAll, // inactive
		Level:    "atp_250",
	}
	where, args := f.Where()
	assert.Equal(t, "WHERE cat.category_name = $1 AND c.type = $2 AND c.level = $3", where)
	assert.Equal(t, []any{"ATP Tour", "singles", "atp_250"}, args)
}

func TestVenueFilter(t *testing.T) {
	where, args := VenueFilter{Country: "Spain"}.Where()
	assert.Equal(t, "WHERE v.country_name = $1", where)
	assert.Equal(t, []any{"Spain"}, args)

	where, args = VenueFilter{}.Where()
	assert.Empty(t, where)
	assert.Nil(t, args)
}

func TestRankingFilterDefaultsComposeEmpty(t *testing.T) {
	where, args := NewRankingFilter().Where()
	assert.Empty(t, where)
	assert.Nil(t, args)
}

func TestRankingFilterRankRange(t *testing.T) {
	f := NewRankingFilter()
	f.MinRank = 1
	f.MaxRank = 5
	where, args := f.Where()
	assert.Equal(t, "WHERE cr.rank >= $1 AND cr.rank <= $2", where)
	assert.Equal(t, []any{1, 5}, args)
}

func TestRankingFilterInvertedRangeStillComposes(t *testing.T) {
	// lo > hi composes normally; the store returns zero rows for it.
	f := NewRankingFilter()
	f.MinRank = 10
	f.MaxRank = 5
	where, args := f.Where()
	assert.Equal(t, "WHERE cr.rank >= $1 AND cr.rank <= $2", where)
	assert.Equal(t, []any{10, 5}, args)
}

func TestRankingFilterNameSubstring(t *testing.T) {
	f := NewRankingFilter()
	f.Name = "nadal"
	where, args := f.Where()
	assert.Equal(t, "WHERE c.name ILIKE $1", where)
	assert.Equal(t, []any{"%nadal%"}, args)
}

func TestRankingFilterAllActive(t *testing.T) {
	f := RankingFilter{
		Name:      "a",
		MinRank:   2,
		MaxRank:   50,
		MinPoints: 100,
		MaxPoints: 2000,
		Country:   "Spain",
	}
	where, args := f.Where()
	assert.Equal(t,
		"WHERE c.name ILIKE $1 AND cr.rank >= $2 AND cr.rank <= $3"+
			" AND cr.points >= $4 AND cr.points <= $5 AND c.country = $6",
		where)
	assert.Equal(t, []any{"%a%", 2, 50, 100, 2000, "Spain"}, args)
}
