package leaguepedia

import (
	"context"

	"github.com/mesh-intelligence/rift/internal/cargo"
	"github.com/mesh-intelligence/rift/pkg/types"
)

func playerWhere(f types.PlayerFilter) string {
	return cargo.NewWhere().
		Equals("Players.Player", f.Name).
		Equals("Players.Team", f.Team).
		Equals("Players.Country", f.Country).
		Equals("Players.Residency", f.Residency).
		Equals("Players.Role", f.Role).
		String()
}

// Players returns the players matching f, ordered by ID. An empty
// filter walks the whole table; prefer at least one condition.
func (c *Client) Players(ctx context.Context, f types.PlayerFilter) ([]types.Player, error) {
	q := types.CargoQuery{
		Tables:  []string{types.TablePlayers},
		Fields:  recordFields(types.TablePlayers, types.Player{}),
		Where:   playerWhere(f),
		OrderBy: "Players.ID",
	}
	return fetch[types.Player](ctx, c, "players", q)
}

// PlayerByName returns the player page matching the exact in-game name,
// or nil when no player matches.
func (c *Client) PlayerByName(ctx context.Context, name string) (*types.Player, error) {
	if err := requireName("player name", name); err != nil {
		return nil, err
	}
	players, err := c.Players(ctx, types.PlayerFilter{Name: name})
	if err != nil {
		return nil, err
	}
	return firstOrNil(players), nil
}

// PlayersByTeam returns the players currently listed under a team.
func (c *Client) PlayersByTeam(ctx context.Context, team string) ([]types.Player, error) {
	if err := requireName("team name", team); err != nil {
		return nil, err
	}
	return c.Players(ctx, types.PlayerFilter{Team: team})
}
