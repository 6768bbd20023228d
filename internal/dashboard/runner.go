// Package dashboard implements the shared query layer behind the analytics
// pages: a per-render query session, the filter-to-WHERE composer, and the
// page queries for competitions, venues, and competitor rankings.
//
// Every failure degrades to an empty table plus a user-visible banner; no
// query error ever propagates to the caller.
package dashboard

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
)

// Querier is the subset of pgxpool.Pool the session needs. Each Query call
// borrows a connection from the pool and releases it when the returned rows
// are closed, regardless of outcome.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// BannerLevel classifies user-visible messages produced during a render.
type BannerLevel string

const (
	BannerInfo    BannerLevel = "info"
	BannerWarning BannerLevel = "warning"
	BannerError   BannerLevel = "error"
)

// Banner is a message surfaced to the viewer alongside the rendered tables.
type Banner struct {
	Level   BannerLevel `json:"level"`
	Message string      `json:"message"`
}

// Session runs the queries for one page render and collects the banners the
// render produced. Create one per request; it is not safe for concurrent use.
type Session struct {
	q       Querier
	banners []Banner
}

// NewSession creates a session over the given handle. A nil handle is valid:
// every query then yields an empty table plus a warning.
func NewSession(q Querier) *Session {
	return &Session{q: q}
}

// Run executes the SQL and materializes the full result. On any failure
// (nil handle, execution error, scan error) it records a banner and returns
// an empty table. Column order follows the SELECT list; row order follows
// the store's result order.
func (s *Session) Run(ctx context.Context, sql string, args ...any) Table {
	empty := Table{Columns: []string{}, Rows: [][]any{}}

	if s.q == nil {
		s.Warnf("Database connection not established. Some features may not work.")
		return empty
	}

	rows, err := s.q.Query(ctx, sql, args...)
	if err != nil {
		s.Errorf("Error executing query: %v", err)
		return empty
	}
	defer rows.Close()

	t, err := collectTable(rows)
	if err != nil {
		s.Errorf("Error executing query: %v", err)
		return empty
	}
	return t
}

// Banners returns the messages collected so far, in emission order.
func (s *Session) Banners() []Banner {
	return s.banners
}

// Infof records an informational banner.
func (s *Session) Infof(format string, args ...any) {
	s.append(BannerInfo, format, args...)
}

// Warnf records a warning banner.
func (s *Session) Warnf(format string, args ...any) {
	s.append(BannerWarning, format, args...)
}

// Errorf records an error banner.
func (s *Session) Errorf(format string, args ...any) {
	s.append(BannerError, format, args...)
}

// InfoIfEmpty records an informational banner when the table has no rows.
// An empty result is not an error; it gets its own message kind.
func (s *Session) InfoIfEmpty(t Table, message string) {
	if t.Empty() {
		s.Infof("%s", message)
	}
}

func (s *Session) append(level BannerLevel, format string, args ...any) {
	s.banners = append(s.banners, Banner{Level: level, Message: fmt.Sprintf(format, args...)})
}
