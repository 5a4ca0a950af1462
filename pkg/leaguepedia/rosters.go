package leaguepedia

import (
	"context"
	"fmt"
	"sort"

	"github.com/mesh-intelligence/rift/internal/cargo"
	"github.com/mesh-intelligence/rift/internal/schema"
	"github.com/mesh-intelligence/rift/pkg/types"
)

// TournamentRosters returns the tournament roster entries for a team.
// f.Team is required. Extra filter columns are checked against the
// table schema and rejected with types.ErrUnknownColumn before any
// query runs; every value is escaped on the way in.
func (c *Client) TournamentRosters(ctx context.Context, f types.TournamentRosterFilter) ([]types.TournamentRoster, error) {
	if err := requireName("team name", f.Team); err != nil {
		return nil, err
	}

	w := cargo.NewWhere().
		Equals("TournamentRosters.Team", f.Team).
		Equals("TournamentRosters.Tournament", f.Tournament)

	if len(f.Extra) > 0 {
		known := make(map[string]bool)
		for _, col := range schema.MustColumns(types.TournamentRoster{}) {
			known[col] = true
		}

		cols := make([]string, 0, len(f.Extra))
		for col := range f.Extra {
			if !known[col] {
				return nil, fmt.Errorf("column %q: %w", col, types.ErrUnknownColumn)
			}
			cols = append(cols, col)
		}
		sort.Strings(cols)
		for _, col := range cols {
			w.Equals("TournamentRosters."+col, f.Extra[col])
		}
	}

	q := types.CargoQuery{
		Tables: []string{types.TableTournamentRosters},
		Fields: recordFields(types.TableTournamentRosters, types.TournamentRoster{}),
		Where:  w.String(),
	}
	return fetch[types.TournamentRoster](ctx, c, "tournament rosters", q)
}
