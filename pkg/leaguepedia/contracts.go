package leaguepedia

import (
	"context"

	"github.com/mesh-intelligence/rift/internal/cargo"
	"github.com/mesh-intelligence/rift/pkg/types"
)

// removalExclusion keeps removal markers out of contract listings. The
// OR must stay parenthesized or it swallows the surrounding AND chain.
const removalExclusion = "Contracts.IsRemoval IS NULL OR Contracts.IsRemoval='0'"

func (c *Client) contractWhere(f types.ContractFilter) string {
	w := cargo.NewWhere().
		Equals("Contracts.Player", f.Player).
		Equals("Contracts.Team", f.Team)
	if f.ActiveOnly {
		w.AtLeast("Contracts.ContractEnd", c.today())
	}
	if !f.IncludeRemovals {
		w.Group(removalExclusion)
	}
	return w.String()
}

// Contracts returns the contract entries matching f, newest expiry
// first. Removal markers are excluded unless f.IncludeRemovals is set.
func (c *Client) Contracts(ctx context.Context, f types.ContractFilter) ([]types.Contract, error) {
	return c.queryContracts(ctx, c.contractWhere(f), "Contracts.ContractEnd DESC")
}

// PlayerContracts returns a player's contract entries, newest first.
func (c *Client) PlayerContracts(ctx context.Context, player string) ([]types.Contract, error) {
	if err := requireName("player name", player); err != nil {
		return nil, err
	}
	return c.Contracts(ctx, types.ContractFilter{Player: player})
}

// TeamContracts returns a team's contract entries, newest first.
func (c *Client) TeamContracts(ctx context.Context, team string) ([]types.Contract, error) {
	if err := requireName("team name", team); err != nil {
		return nil, err
	}
	return c.Contracts(ctx, types.ContractFilter{Team: team})
}

// ActiveContracts returns the contracts ending today or later. An empty
// team returns active contracts across all teams.
func (c *Client) ActiveContracts(ctx context.Context, team string) ([]types.Contract, error) {
	return c.Contracts(ctx, types.ContractFilter{Team: team, ActiveOnly: true})
}

// ExpiringContracts returns the contracts ending within days from
// today, soonest first. An empty team spans all teams.
func (c *Client) ExpiringContracts(ctx context.Context, days int, team string) ([]types.Contract, error) {
	today := c.now().UTC()
	until := today.AddDate(0, 0, days)

	where := cargo.NewWhere().
		Equals("Contracts.Team", team).
		AtLeast("Contracts.ContractEnd", today.Format(dateLayout)).
		AtMost("Contracts.ContractEnd", until.Format(dateLayout)).
		Group(removalExclusion).
		String()
	return c.queryContracts(ctx, where, "Contracts.ContractEnd")
}

// ContractRemovals returns the removal markers, the entries that void
// earlier contract lines. An empty team spans all teams.
func (c *Client) ContractRemovals(ctx context.Context, team string) ([]types.Contract, error) {
	where := cargo.NewWhere().
		Equals("Contracts.Team", team).
		Equals("Contracts.IsRemoval", "1").
		String()
	return c.queryContracts(ctx, where, "Contracts.ContractEnd DESC")
}

func (c *Client) queryContracts(ctx context.Context, where, orderBy string) ([]types.Contract, error) {
	q := types.CargoQuery{
		Tables:  []string{types.TableContracts},
		Fields:  recordFields(types.TableContracts, types.Contract{}),
		Where:   where,
		OrderBy: orderBy,
	}
	return fetch[types.Contract](ctx, c, "contracts", q)
}
