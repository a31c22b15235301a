// Package listview derives what a listing page shows from an in-memory
// record set: newest-first ordering, conjunctive username/shipping-line
// filters, and fixed-size pagination. Everything is a pure function over
// the input slice; the source data is never mutated.
package listview

import (
	"sort"
	"time"

	"github.com/ravi-codingcity/Origin-Frontend/internal/models"
	"github.com/ravi-codingcity/Origin-Frontend/internal/normalize"
)

// Page sizes used by the pages: the view-all tables show 50 entries, the
// own-records panels next to the entry forms show 30.
const (
	DefaultPageSize    = 50
	OwnRecordsPageSize = 30
)

// Row is any charge record variant.
type Row interface {
	Base() *models.ChargeBase
}

// Query is the caller-controlled view state. The filter forms submit
// without a page parameter, so changing a filter lands on page 1.
type Query struct {
	UsernameFilter     string
	ShippingLineFilter string
	Page               int
	PageSize           int
}

// Result is everything a listing page renders.
type Result struct {
	Rows                []Row
	Page                int
	TotalPages          int
	FilteredCount       int
	TotalCount          int
	UsernameOptions     []string
	ShippingLineOptions []string
}

// Apply composes sort, filter and paginate. cachedName feeds the display
// name fallback so filtering and option enumeration agree on every
// record's owner.
func Apply(rows []Row, q Query, cachedName string) Result {
	if q.PageSize <= 0 {
		q.PageSize = DefaultPageSize
	}
	if q.Page < 1 {
		q.Page = 1
	}

	sorted := Sort(rows)
	filtered := Filter(sorted, q.UsernameFilter, q.ShippingLineFilter, cachedName)
	pageRows, page, totalPages := Paginate(filtered, q.Page, q.PageSize)

	return Result{
		Rows:                pageRows,
		Page:                page,
		TotalPages:          totalPages,
		FilteredCount:       len(filtered),
		TotalCount:          len(rows),
		UsernameOptions:     UsernameOptions(sorted, cachedName),
		ShippingLineOptions: ShippingLineOptions(sorted),
	}
}

// Sort returns a new slice ordered by creation time descending, falling
// back to the update time, then the epoch. Records with equal or
// unparsable dates order by reverse lexical ID compare, which keeps the
// result stable and the sort idempotent.
func Sort(rows []Row) []Row {
	out := make([]Row, len(rows))
	copy(out, rows)

	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i].Base(), out[j].Base()

		ta, oka := recordTime(a)
		tb, okb := recordTime(b)

		if !oka || !okb || ta.Equal(tb) {
			return a.ID > b.ID
		}
		return ta.After(tb)
	})

	return out
}

// Filter keeps records matching both optional filters: owner display name
// and shipping line. An empty filter matches everything.
func Filter(rows []Row, usernameFilter, shippingLineFilter, cachedName string) []Row {
	out := make([]Row, 0, len(rows))
	for _, row := range rows {
		base := row.Base()
		if usernameFilter != "" && normalize.DisplayName(base, cachedName) != usernameFilter {
			continue
		}
		if shippingLineFilter != "" && base.ShippingLine != shippingLineFilter {
			continue
		}
		out = append(out, row)
	}
	return out
}

// Paginate slices out the 1-indexed page. An out-of-range page yields an
// empty slice after clamping into [1, totalPages]; an empty input has
// zero total pages and page 1.
func Paginate(rows []Row, page, pageSize int) ([]Row, int, int) {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}

	totalPages := (len(rows) + pageSize - 1) / pageSize

	if page < 1 {
		page = 1
	}
	if totalPages > 0 && page > totalPages {
		page = totalPages
	}

	start := (page - 1) * pageSize
	if start >= len(rows) {
		return []Row{}, page, totalPages
	}

	end := start + pageSize
	if end > len(rows) {
		end = len(rows)
	}

	return rows[start:end], page, totalPages
}

// UsernameOptions enumerates distinct owner display names over the
// unfiltered dataset, sorted, with the empty "all" option first.
func UsernameOptions(rows []Row, cachedName string) []string {
	seen := make(map[string]struct{}, len(rows))
	for _, row := range rows {
		seen[normalize.DisplayName(row.Base(), cachedName)] = struct{}{}
	}
	return collectOptions(seen)
}

// ShippingLineOptions enumerates distinct shipping lines, sorted, with
// the empty "all" option first.
func ShippingLineOptions(rows []Row) []string {
	seen := make(map[string]struct{}, len(rows))
	for _, row := range rows {
		if line := row.Base().ShippingLine; line != "" {
			seen[line] = struct{}{}
		}
	}
	return collectOptions(seen)
}

func collectOptions(seen map[string]struct{}) []string {
	out := make([]string, 0, len(seen)+1)
	for value := range seen {
		out = append(out, value)
	}
	sort.Strings(out)
	return append([]string{""}, out...)
}

// dateLayouts covers what the backend has emitted over time: Mongo-style
// RFC3339 timestamps with and without millis, and bare dates.
var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// recordTime resolves a record's ordering time: createdAt, else
// updatedAt, else timestamp, else the epoch. ok is false when no field
// parses.
func recordTime(base *models.ChargeBase) (time.Time, bool) {
	raw := base.CreatedAt
	if raw == "" {
		raw = base.UpdatedAt
	}
	if raw == "" {
		raw = base.Timestamp
	}
	if raw == "" {
		return time.Unix(0, 0), true
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
