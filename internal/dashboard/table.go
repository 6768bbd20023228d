package dashboard

import (
	"math/big"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

// Table is an ordered list of named columns plus an ordered list of rows,
// each row aligned to the columns. Column order follows the SELECT list and
// row order follows the store's result order.
type Table struct {
	Columns []string `json:"columns"`
	Rows    [][]any  `json:"rows"`
}

// Empty reports whether the table has no rows.
func (t Table) Empty() bool {
	return len(t.Rows) == 0
}

// Column returns the values of the named column, or nil if absent.
func (t Table) Column(name string) []any {
	idx := -1
	for i, c := range t.Columns {
		if c == name {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil
	}
	vals := make([]any, 0, len(t.Rows))
	for _, row := range t.Rows {
		vals = append(vals, row[idx])
	}
	return vals
}

// collectTable materializes all rows eagerly. Closing the rows is the
// caller's responsibility.
func collectTable(rows pgx.Rows) (Table, error) {
	fields := rows.FieldDescriptions()
	cols := make([]string, len(fields))
	for i, f := range fields {
		cols[i] = string(f.Name)
	}

	t := Table{Columns: cols, Rows: [][]any{}}
	for rows.Next() {
		vals, err := rows.Values()
		if err != nil {
			return Table{Columns: []string{}, Rows: [][]any{}}, err
		}
		row := make([]any, len(vals))
		for i, v := range vals {
			row[i] = normalizeValue(v)
		}
		t.Rows = append(t.Rows, row)
	}
	if err := rows.Err(); err != nil {
		return Table{Columns: []string{}, Rows: [][]any{}}, err
	}
	return t, nil
}

// normalizeValue flattens driver-specific wrapper types into plain Go values
// so tables marshal cleanly and render without type switches downstream.
func normalizeValue(v any) any {
	switch x := v.(type) {
	case pgtype.Numeric:
		if !x.Valid {
			return nil
		}
		f, err := x.Float64Value()
		if err != nil || !f.Valid {
			return nil
		}
		return f.Float64
	case *big.Int:
		return x.Int64()
	default:
		return v
	}
}
