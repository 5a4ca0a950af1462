package leaguepedia

import (
	"context"

	"github.com/mesh-intelligence/rift/internal/cargo"
	"github.com/mesh-intelligence/rift/pkg/types"
)

func standingWhere(f types.StandingFilter) string {
	return cargo.NewWhere().
		Equals("Standings.OverviewPage", f.OverviewPage).
		Equals("Standings.Team", f.Team).
		String()
}

// Standings returns the standings rows matching f, first place first.
func (c *Client) Standings(ctx context.Context, f types.StandingFilter) ([]types.Standing, error) {
	q := types.CargoQuery{
		Tables:  []string{types.TableStandings},
		Fields:  recordFields(types.TableStandings, types.Standing{}),
		Where:   standingWhere(f),
		OrderBy: "Standings.Place",
	}
	return fetch[types.Standing](ctx, c, "standings", q)
}

// TournamentStandings returns the table for one tournament overview
// page, for example "LCK/2024 Season/Summer Season".
func (c *Client) TournamentStandings(ctx context.Context, overviewPage string) ([]types.Standing, error) {
	if err := requireName("tournament", overviewPage); err != nil {
		return nil, err
	}
	return c.Standings(ctx, types.StandingFilter{OverviewPage: overviewPage})
}

// TeamStandings returns a team's standings rows across tournaments.
func (c *Client) TeamStandings(ctx context.Context, team string) ([]types.Standing, error) {
	if err := requireName("team name", team); err != nil {
		return nil, err
	}
	return c.Standings(ctx, types.StandingFilter{Team: team})
}
