package dashboard

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunNilHandleWarnsOncePerCall(t *testing.T) {
	s := NewSession(nil)

	t1 := s.Run(context.Background(), "SELECT 1")
	assert.True(t, t1.Empty())
	assert.Empty(t, t1.Columns)
	require.Len(t, s.Banners(), 1)
	assert.Equal(t, BannerWarning, s.Banners()[0].Level)

	t2 := s.Run(context.Background(), "SELECT 2")
	assert.True(t, t2.Empty())
	assert.Len(t, s.Banners(), 2)
}

func TestRunQueryErrorBecomesBanner(t *testing.T) {
	q := &fakeQuerier{queryErr: errors.New(`relation "nope" does not exist`)}
	s := NewSession(q)

	res := s.Run(context.Background(), "SELECT * FROM nope")
	assert.True(t, res.Empty())
	require.Len(t, s.Banners(), 1)
	assert.Equal(t, BannerError, s.Banners()[0].Level)
	assert.Contains(t, s.Banners()[0].Message, `relation "nope" does not exist`)
}

func TestRunRowsErrorBecomesBanner(t *testing.T) {
	q := &fakeQuerier{rows: &fakeRows{
		cols:    []string{"country"},
		rowsErr: errors.New("connection reset"),
	}}
	s := NewSession(q)

	res := s.Run(context.Background(), "SELECT country FROM competitors")
	assert.True(t, res.Empty())
	require.Len(t, s.Banners(), 1)
	assert.Equal(t, BannerError, s.Banners()[0].Level)
	assert.True(t, q.rows.closed)
}

func TestRunPreservesColumnAndRowOrder(t *testing.T) {
	q := &fakeQuerier{rows: &fakeRows{
		cols: []string{"country"},
		rows: [][]any{{"ESP"}, {"FRA"}, {"USA"}},
	}}
	s := NewSession(q)

	res := s.Run(context.Background(), "SELECT DISTINCT country FROM competitors ORDER BY country")
	require.Equal(t, []string{"country"}, res.Columns)
	require.Len(t, res.Rows, 3)
	assert.Equal(t, [][]any{{"ESP"}, {"FRA"}, {"USA"}}, res.Rows)
	assert.Empty(t, s.Banners())
	assert.True(t, q.rows.closed)
}

func TestRunMultiColumnOrder(t *testing.T) {
	q := &fakeQuerier{rows: &fakeRows{
		cols: []string{"competitor_name", "rank", "points"},
		rows: [][]any{
			{"A", int64(1), int64(900)},
			{"B", int64(3), int64(700)},
		},
	}}
	s := NewSession(q)

	res := s.Run(context.Background(), "SELECT ...")
	assert.Equal(t, []string{"competitor_name", "rank", "points"}, res.Columns)
	assert.Equal(t, "A", res.Rows[0][0])
	assert.Equal(t, int64(3), res.Rows[1][1])
}

func TestInfoIfEmpty(t *testing.T) {
	s := NewSession(nil)

	s.InfoIfEmpty(Table{Columns: []string{"a"}, Rows: [][]any{{1}}}, "nothing here")
	assert.Empty(t, s.Banners())

	s.InfoIfEmpty(Table{}, "nothing here")
	require.Len(t, s.Banners(), 1)
	assert.Equal(t, BannerInfo, s.Banners()[0].Level)
	assert.Equal(t, "nothing here", s.Banners()[0].Message)
}
