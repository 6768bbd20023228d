package dashboard

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// fakeRows implements pgx.Rows over an in-memory result set.
type fakeRows struct {
	cols    []string
	rows    [][]any
	idx     int
	rowsErr error
	closed  bool
}

func (r *fakeRows) Close()                       { r.closed = true }
func (r *fakeRows) Err() error                   { return r.rowsErr }
func (r *fakeRows) CommandTag() pgconn.CommandTag { return pgconn.CommandTag{} }
func (r *fakeRows) RawValues() [][]byte          { return nil }
func (r *fakeRows) Conn() *pgx.Conn              { return nil }
func (r *fakeRows) Scan(dest ...any) error       { return errors.New("not implemented") }

func (r *fakeRows) FieldDescriptions() []pgconn.FieldDescription {
	fds := make([]pgconn.FieldDescription, len(r.cols))
	for i, c := range r.cols {
		fds[i] = pgconn.FieldDescription{Name: c}
	}
	return fds
}

func (r *fakeRows) Next() bool {
	if r.rowsErr != nil {
		return false
	}
	if r.idx >= len(r.rows) {
		return false
	}
	r.idx++
	return true
}

func (r *fakeRows) Values() ([]any, error) {
	return r.rows[r.idx-1], nil
}

// fakeQuerier records the last query and serves canned rows or an error.
type fakeQuerier struct {
	lastSQL  string
	lastArgs []any
	calls    int
	rows     *fakeRows
	queryErr error
}

func (q *fakeQuerier) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	q.calls++
	q.lastSQL = sql
	q.lastArgs = args
	if q.queryErr != nil {
		return nil, q.queryErr
	}
	if q.rows == nil {
		return &fakeRows{cols: []string{}}, nil
	}
	return q.rows, nil
}
