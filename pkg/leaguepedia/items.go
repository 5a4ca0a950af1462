package leaguepedia

import (
	"context"

	"github.com/mesh-intelligence/rift/internal/cargo"
	"github.com/mesh-intelligence/rift/pkg/types"
)

func itemWhere(f types.ItemFilter) string {
	return cargo.NewWhere().
		Equals("Items.Name", f.Name).
		Equals("Items.Tier", f.Tier).
		String()
}

// Items returns the items matching f, ordered by name. An empty filter
// returns every item.
func (c *Client) Items(ctx context.Context, f types.ItemFilter) ([]types.Item, error) {
	q := types.CargoQuery{
		Tables:  []string{types.TableItems},
		Fields:  recordFields(types.TableItems, types.Item{}),
		Where:   itemWhere(f),
		OrderBy: "Items.Name",
	}
	return fetch[types.Item](ctx, c, "items", q)
}

// ItemByName returns the item with the exact name, or nil when no item
// matches.
func (c *Client) ItemByName(ctx context.Context, name string) (*types.Item, error) {
	if err := requireName("item name", name); err != nil {
		return nil, err
	}
	items, err := c.Items(ctx, types.ItemFilter{Name: name})
	if err != nil {
		return nil, err
	}
	return firstOrNil(items), nil
}

// ItemsByTier returns the items of one shop tier, for example
// "Legendary" or "Mythic".
func (c *Client) ItemsByTier(ctx context.Context, tier string) ([]types.Item, error) {
	if err := requireName("tier", tier); err != nil {
		return nil, err
	}
	return c.Items(ctx, types.ItemFilter{Tier: tier})
}

// ADItems returns every item granting attack damage.
func (c *Client) ADItems(ctx context.Context) ([]types.Item, error) {
	return c.itemsProviding(ctx, types.Item.ProvidesAD)
}

// APItems returns every item granting ability power.
func (c *Client) APItems(ctx context.Context) ([]types.Item, error) {
	return c.itemsProviding(ctx, types.Item.ProvidesAP)
}

// TankItems returns every item granting armor or magic resistance.
func (c *Client) TankItems(ctx context.Context) ([]types.Item, error) {
	return c.itemsProviding(ctx, func(it types.Item) bool {
		return it.ProvidesArmor() || it.ProvidesMR()
	})
}

// HealthItems returns every item granting health.
func (c *Client) HealthItems(ctx context.Context) ([]types.Item, error) {
	return c.itemsProviding(ctx, types.Item.ProvidesHealth)
}

// ManaItems returns every item granting mana.
func (c *Client) ManaItems(ctx context.Context) ([]types.Item, error) {
	return c.itemsProviding(ctx, types.Item.ProvidesMana)
}

// SearchItemsByStat returns the items whose stat profile matches q.
// Matching happens client-side over the full item list; see
// types.StatQuery for the tri-state semantics.
func (c *Client) SearchItemsByStat(ctx context.Context, q types.StatQuery) ([]types.Item, error) {
	return c.itemsProviding(ctx, func(it types.Item) bool {
		return it.MatchesStats(q)
	})
}

func (c *Client) itemsProviding(ctx context.Context, keep func(types.Item) bool) ([]types.Item, error) {
	items, err := c.Items(ctx, types.ItemFilter{})
	if err != nil {
		return nil, err
	}
	out := make([]types.Item, 0, len(items))
	for _, it := range items {
		if keep(it) {
			out = append(out, it)
		}
	}
	return out, nil
}
