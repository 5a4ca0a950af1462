// Package leaguepedia is a typed query client for the Leaguepedia
// esports wiki. It turns the wiki's Cargo tables into Go record types:
// champions, items, players, contracts, roster changes, standings,
// scoreboards, tournaments, and team rosters. Every query escapes its
// inputs, paginates to completion, and coerces the wiki's raw strings
// into typed fields where a malformed value reads as nil rather than
// an error.
package leaguepedia

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/mesh-intelligence/rift/internal/cargo"
	"github.com/mesh-intelligence/rift/internal/namecache"
	"github.com/mesh-intelligence/rift/internal/paths"
	"github.com/mesh-intelligence/rift/internal/schema"
	"github.com/mesh-intelligence/rift/pkg/types"
)

// dateLayout renders clock values into Cargo date literals.
const dateLayout = "2006-01-02"

// Client queries a Leaguepedia-style Cargo endpoint and returns typed
// records. A Client is safe for concurrent use.
type Client struct {
	gateway types.Gateway
	names   *namecache.Cache // nil when caching is disabled

	// now supplies the clock for date-window queries; tests pin it.
	now func() time.Time
}

// New creates a Client from cfg. The config is validated first and the
// name-resolution cache is opened only when cfg.Cache.Enabled; with an
// empty Cache.Dir the platform cache directory is used.
//
// Example:
//
//	client, err := leaguepedia.New(types.DefaultConfig())
//	if err != nil {
//	    return err
//	}
//	defer client.Close()
func New(cfg types.Config) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	c := &Client{
		gateway: cargo.NewClient(cfg),
		now:     time.Now,
	}
	if cfg.Cache.Enabled {
		dir := cfg.Cache.Dir
		if dir == "" {
			var err error
			dir, err = paths.DefaultCacheDir()
			if err != nil {
				return nil, fmt.Errorf("resolving cache dir: %w", err)
			}
		}
		names, err := namecache.Open(dir, cfg.Cache.TTL)
		if err != nil {
			return nil, fmt.Errorf("opening name cache: %w", err)
		}
		c.names = names
	}
	return c, nil
}

// NewWithGateway creates a Client over a caller-supplied gateway, with
// no name-resolution cache. Tests use it to substitute a fake endpoint.
func NewWithGateway(gw types.Gateway) *Client {
	return &Client{
		gateway: gw,
		now:     time.Now,
	}
}

// Close releases the name-resolution cache. Safe on a cache-less Client
// and safe to call more than once.
func (c *Client) Close() error {
	if c.names == nil {
		return nil
	}
	return c.names.Close()
}

// today renders the current clock as a Cargo date literal.
func (c *Client) today() string {
	return c.now().UTC().Format(dateLayout)
}

// mapRows converts raw rows into typed records through each type's
// column schema. Malformed values inside a row leave their fields nil;
// only a misdeclared schema errors.
func mapRows[T any](rows []types.Row) ([]T, error) {
	out := make([]T, 0, len(rows))
	for _, row := range rows {
		var rec T
		if err := schema.Unmarshal(row, &rec); err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, nil
}

// fetch runs q and maps the rows, wrapping gateway failures with the
// entity being fetched.
func fetch[T any](ctx context.Context, c *Client, entity string, q types.CargoQuery) ([]T, error) {
	rows, err := c.gateway.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", entity, err)
	}
	return mapRows[T](rows)
}

// firstOrNil returns a pointer to the first record, or nil for an empty
// result. Absent records are not errors.
func firstOrNil[T any](recs []T) *T {
	if len(recs) == 0 {
		return nil
	}
	return &recs[0]
}

// qualifyColumns prefixes bare column names with the table name.
// Columns that already carry a table or alias prefix pass through.
func qualifyColumns(table string, cols []string) []string {
	out := make([]string, len(cols))
	for i, col := range cols {
		if strings.Contains(col, ".") {
			out[i] = col
		} else {
			out[i] = table + "." + col
		}
	}
	return out
}

// recordFields returns the qualified query field list for a record type.
func recordFields(table string, rec any) []string {
	return qualifyColumns(table, schema.MustColumns(rec))
}

// requireName rejects blank identifier inputs before any gateway call.
func requireName(what, v string) error {
	if strings.TrimSpace(v) == "" {
		return fmt.Errorf("%s: %w", what, types.ErrEmptyName)
	}
	return nil
}
