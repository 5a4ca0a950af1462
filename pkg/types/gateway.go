package types

import "context"

// Row is one raw result row from a Cargo query: remote column name (exact
// casing, e.g. "AttackRange") to the raw string value. Absent columns and
// empty values are equivalent for parsing purposes.
type Row map[string]string

// Get returns the raw value for a column, or "" when the column is absent.
func (r Row) Get(column string) string {
	return r[column]
}

// CargoQuery describes one Cargo table query. Tables entries may carry an
// alias ("Tenures=T"); Fields entries are qualified when the query spans
// multiple tables. Empty clause strings are omitted from the request.
type CargoQuery struct {
	Tables  []string
	Fields  []string
	Where   string
	OrderBy string
	JoinOn  string
	GroupBy string

	// Limit caps the total number of rows returned across pagination.
	// Zero means no cap.
	Limit int
}

// Gateway is the single query boundary between the typed client and the
// wiki. Implementations paginate internally; callers see the full row set.
// Failures are returned as-is and wrapped once by the calling operation.
type Gateway interface {
	// Query runs one Cargo query and returns every matching row.
	Query(ctx context.Context, q CargoQuery) ([]Row, error)

	// ImageInfo resolves file page titles (e.g. "File:T1logo square.png")
	// to their URLs. Titles with no image info are absent from the result;
	// a lookup that resolves nothing is not an error.
	ImageInfo(ctx context.Context, titles ...string) (map[string]string, error)
}
