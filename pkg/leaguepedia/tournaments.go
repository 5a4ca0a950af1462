package leaguepedia

import (
	"context"
	"fmt"

	"github.com/mesh-intelligence/rift/internal/cargo"
	"github.com/mesh-intelligence/rift/internal/schema"
	"github.com/mesh-intelligence/rift/pkg/types"
)

// Regions returns every region appearing in the Tournaments table.
func (c *Client) Regions(ctx context.Context) ([]string, error) {
	q := types.CargoQuery{
		Tables:  []string{types.TableTournaments},
		Fields:  []string{"Region"},
		GroupBy: "Region",
	}
	rows, err := c.gateway.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("fetching regions: %w", err)
	}

	regions := make([]string, 0, len(rows))
	for _, row := range rows {
		if r := row.Get("Region"); r != "" {
			regions = append(regions, r)
		}
	}
	return regions, nil
}

func tournamentWhere(f types.TournamentFilter) string {
	w := cargo.NewWhere().
		Equals("Tournaments.Region", f.Region).
		Equals("Tournaments.Year", f.Year).
		Equals("Tournaments.TournamentLevel", f.Level)
	if f.IsPlayoffs != nil {
		v := "0"
		if *f.IsPlayoffs {
			v = "1"
		}
		w.Equals("Tournaments.IsPlayoffs", v)
	}
	return w.String()
}

// Tournaments returns the tournaments matching f, joined with their
// league for the short league name. The filter does not default the
// tournament level; pass "Primary" to keep only main-stage events.
func (c *Client) Tournaments(ctx context.Context, f types.TournamentFilter) ([]types.Tournament, error) {
	q := types.CargoQuery{
		Tables: []string{types.TableTournaments, types.TableLeagues},
		Fields: schema.MustColumns(types.Tournament{}),
		Where:  tournamentWhere(f),
		JoinOn: "Tournaments.League = Leagues.League",
	}
	return fetch[types.Tournament](ctx, c, "tournaments", q)
}

// Games returns the games of a tournament in play order. overviewPage
// is the tournament's overview page as returned by Tournaments.
func (c *Client) Games(ctx context.Context, overviewPage string) ([]types.Game, error) {
	if err := requireName("tournament", overviewPage); err != nil {
		return nil, err
	}
	q := types.CargoQuery{
		Tables: []string{types.TableScoreboardGames},
		Fields: recordFields(types.TableScoreboardGames, types.Game{}),
		Where: cargo.NewWhere().
			Equals("ScoreboardGames.OverviewPage", overviewPage).
			String(),
		OrderBy: "ScoreboardGames.DateTime_UTC",
	}
	return fetch[types.Game](ctx, c, "games", q)
}
