package leaguepedia

import (
	"context"

	"github.com/mesh-intelligence/rift/internal/cargo"
	"github.com/mesh-intelligence/rift/pkg/types"
)

func rosterChangeWhere(f types.RosterChangeFilter) string {
	return cargo.NewWhere().
		Equals("RosterChanges.Team", f.Team).
		Equals("RosterChanges.Player", f.Player).
		Like("RosterChanges.Tournaments", f.Tournament).
		Equals("RosterChanges.Direction", f.Direction).
		AtLeast("RosterChanges.Date_Sort", f.Since).
		AtMost("RosterChanges.Date_Sort", f.Until).
		String()
}

// RosterChanges returns the roster moves matching f, newest first.
func (c *Client) RosterChanges(ctx context.Context, f types.RosterChangeFilter) ([]types.RosterChange, error) {
	return c.queryRosterChanges(ctx, rosterChangeWhere(f))
}

// TeamRosterChanges returns a team's roster moves, newest first.
func (c *Client) TeamRosterChanges(ctx context.Context, team string) ([]types.RosterChange, error) {
	if err := requireName("team name", team); err != nil {
		return nil, err
	}
	return c.RosterChanges(ctx, types.RosterChangeFilter{Team: team})
}

// PlayerRosterChanges returns a player's roster moves, newest first.
func (c *Client) PlayerRosterChanges(ctx context.Context, player string) ([]types.RosterChange, error) {
	if err := requireName("player name", player); err != nil {
		return nil, err
	}
	return c.RosterChanges(ctx, types.RosterChangeFilter{Player: player})
}

// RecentRosterChanges returns the roster moves of the past days, newest
// first. An empty team spans all teams.
func (c *Client) RecentRosterChanges(ctx context.Context, days int, team string) ([]types.RosterChange, error) {
	today := c.now().UTC()
	since := today.AddDate(0, 0, -days)

	return c.RosterChanges(ctx, types.RosterChangeFilter{
		Team:  team,
		Since: since.Format(dateLayout),
		Until: today.Format(dateLayout),
	})
}

// RosterJoins returns a team's incoming moves, newest first.
func (c *Client) RosterJoins(ctx context.Context, team string) ([]types.RosterChange, error) {
	if err := requireName("team name", team); err != nil {
		return nil, err
	}
	return c.RosterChanges(ctx, types.RosterChangeFilter{
		Team:      team,
		Direction: string(types.DirectionJoin),
	})
}

// RosterLeaves returns a team's outgoing moves, newest first.
func (c *Client) RosterLeaves(ctx context.Context, team string) ([]types.RosterChange, error) {
	if err := requireName("team name", team); err != nil {
		return nil, err
	}
	return c.RosterChanges(ctx, types.RosterChangeFilter{
		Team:      team,
		Direction: string(types.DirectionLeave),
	})
}

// Retirements returns the roster moves announcing a retirement, newest
// first.
func (c *Client) Retirements(ctx context.Context) ([]types.RosterChange, error) {
	where := cargo.NewWhere().
		Equals("RosterChanges.Status", "Retired").
		String()
	return c.queryRosterChanges(ctx, where)
}

func (c *Client) queryRosterChanges(ctx context.Context, where string) ([]types.RosterChange, error) {
	q := types.CargoQuery{
		Tables:  []string{types.TableRosterChanges},
		Fields:  recordFields(types.TableRosterChanges, types.RosterChange{}),
		Where:   where,
		OrderBy: "RosterChanges.Date_Sort DESC",
	}
	return fetch[types.RosterChange](ctx, c, "roster changes", q)
}
