package dashboard

import (
	"math/big"
	"testing"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
)

func TestTableEmpty(t *testing.T) {
	assert.True(t, Table{}.Empty())
	assert.True(t, Table{Columns: []string{"a"}}.Empty())
	assert.False(t, Table{Columns: []string{"a"}, Rows: [][]any{{1}}}.Empty())
}

func TestTableColumn(t *testing.T) {
	tbl := Table{
		Columns: []string{"name", "rank"},
		Rows:    [][]any{{"A", 1}, {"B", 2}},
	}
	assert.Equal(t, []any{1, 2}, tbl.Column("rank"))
	assert.Equal(t, []any{"A", "B"}, tbl.Column("name"))
	assert.Nil(t, tbl.Column("missing"))
}

func TestNormalizeNumeric(t *testing.T) {
	n := pgtype.Numeric{Int: big.NewInt(123450), Exp: -2, Valid: true}
	got := normalizeValue(n)
	assert.InDelta(t, 1234.5, got, 0.0001)

	assert.Nil(t, normalizeValue(pgtype.Numeric{}))
	assert.Equal(t, "text", normalizeValue("text"))
	assert.Equal(t, int64(7), normalizeValue(int64(7)))
}
