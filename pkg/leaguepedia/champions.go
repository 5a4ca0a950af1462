package leaguepedia

import (
	"context"

	"github.com/mesh-intelligence/rift/internal/cargo"
	"github.com/mesh-intelligence/rift/pkg/types"
)

func championWhere(f types.ChampionFilter) string {
	return cargo.NewWhere().
		Equals("Champions.Name", f.Name).
		Equals("Champions.Resource", f.Resource).
		Like("Champions.Attributes", f.Attribute).
		String()
}

// Champions returns the champions matching f, ordered by name. An empty
// filter returns every champion.
func (c *Client) Champions(ctx context.Context, f types.ChampionFilter) ([]types.Champion, error) {
	q := types.CargoQuery{
		Tables:  []string{types.TableChampions},
		Fields:  recordFields(types.TableChampions, types.Champion{}),
		Where:   championWhere(f),
		OrderBy: "Champions.Name",
	}
	return fetch[types.Champion](ctx, c, "champions", q)
}

// ChampionByName returns the champion with the exact name, or nil when
// no champion matches.
func (c *Client) ChampionByName(ctx context.Context, name string) (*types.Champion, error) {
	if err := requireName("champion name", name); err != nil {
		return nil, err
	}
	champs, err := c.Champions(ctx, types.ChampionFilter{Name: name})
	if err != nil {
		return nil, err
	}
	return firstOrNil(champs), nil
}

// ChampionsByAttribute returns champions whose class list contains
// attribute, for example "Assassin" or "Marksman".
func (c *Client) ChampionsByAttribute(ctx context.Context, attribute string) ([]types.Champion, error) {
	if err := requireName("attribute", attribute); err != nil {
		return nil, err
	}
	return c.Champions(ctx, types.ChampionFilter{Attribute: attribute})
}

// ChampionsByResource returns champions using the given resource, for
// example "Mana" or "Energy".
func (c *Client) ChampionsByResource(ctx context.Context, resource string) ([]types.Champion, error) {
	if err := requireName("resource", resource); err != nil {
		return nil, err
	}
	return c.Champions(ctx, types.ChampionFilter{Resource: resource})
}

// MeleeChampions returns every champion classified as melee. Champions
// without a known attack range are excluded.
func (c *Client) MeleeChampions(ctx context.Context) ([]types.Champion, error) {
	return c.championsByReach(ctx, types.Champion.IsMelee)
}

// RangedChampions returns every champion classified as ranged.
func (c *Client) RangedChampions(ctx context.Context) ([]types.Champion, error) {
	return c.championsByReach(ctx, types.Champion.IsRanged)
}

func (c *Client) championsByReach(ctx context.Context, classify func(types.Champion) *bool) ([]types.Champion, error) {
	champs, err := c.Champions(ctx, types.ChampionFilter{})
	if err != nil {
		return nil, err
	}
	out := make([]types.Champion, 0, len(champs))
	for _, ch := range champs {
		if v := classify(ch); v != nil && *v {
			out = append(out, ch)
		}
	}
	return out, nil
}
