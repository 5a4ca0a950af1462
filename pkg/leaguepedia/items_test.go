package leaguepedia

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/rift/pkg/types"
)

func TestItems(t *testing.T) {
	g := &fakeGateway{rows: []types.Row{
		{"Name": "Infinity Edge", "Tier": "Legendary", "AD": "70", "Crit": "20"},
	}}
	c := newTestClient(g)

	items, err := c.Items(context.Background(), types.ItemFilter{Tier: "Legendary"})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Infinity Edge", items[0].Name)
	assert.Equal(t, intp(70), items[0].AD)

	q := g.lastQuery(t)
	assert.Equal(t, []string{"Items"}, q.Tables)
	assert.Equal(t, "Items.Tier='Legendary'", q.Where)
	assert.Equal(t, "Items.Name", q.OrderBy)
}

func TestItemByName(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		g := &fakeGateway{rows: []types.Row{{"Name": "Rabadon's Deathcap", "AP": "130"}}}
		c := newTestClient(g)

		it, err := c.ItemByName(context.Background(), "Rabadon's Deathcap")
		require.NoError(t, err)
		require.NotNil(t, it)
		assert.Equal(t, intp(130), it.AP)
		assert.Equal(t, "Items.Name='Rabadon''s Deathcap'", g.lastQuery(t).Where)
	})

	t.Run("not found returns nil record and nil error", func(t *testing.T) {
		c := newTestClient(&fakeGateway{})

		it, err := c.ItemByName(context.Background(), "Atma's Impaler")
		require.NoError(t, err)
		assert.Nil(t, it)
	})

	t.Run("blank name rejected", func(t *testing.T) {
		g := &fakeGateway{}
		c := newTestClient(g)

		_, err := c.ItemByName(context.Background(), "")
		assert.ErrorIs(t, err, types.ErrEmptyName)
		assert.Empty(t, g.queries)
	})
}

func TestStatSubsets(t *testing.T) {
	g := &fakeGateway{rows: []types.Row{
		{"Name": "Bloodthirster", "AD": "80"},
		{"Name": "Thornmail", "Armor": "70"},
		{"Name": "Spirit Visage", "MR": "50", "Health": "450"},
		{"Name": "Boots", "MovespeedFlat": "25"},
	}}
	c := newTestClient(g)

	ad, err := c.ADItems(context.Background())
	require.NoError(t, err)
	require.Len(t, ad, 1)
	assert.Equal(t, "Bloodthirster", ad[0].Name)

	tanks, err := c.TankItems(context.Background())
	require.NoError(t, err)
	require.Len(t, tanks, 2)
	assert.Equal(t, "Thornmail", tanks[0].Name)
	assert.Equal(t, "Spirit Visage", tanks[1].Name)

	health, err := c.HealthItems(context.Background())
	require.NoError(t, err)
	require.Len(t, health, 1)
	assert.Equal(t, "Spirit Visage", health[0].Name)
}

func TestSearchItemsByStat(t *testing.T) {
	g := &fakeGateway{rows: []types.Row{
		{"Name": "Frozen Heart", "Armor": "80", "Mana": "400"},
		{"Name": "Thornmail", "Armor": "70"},
		{"Name": "Seraph's Embrace", "AP": "80", "Mana": "860"},
	}}
	c := newTestClient(g)

	got, err := c.SearchItemsByStat(context.Background(), types.StatQuery{
		Armor: boolp(true),
		Mana:  boolp(true),
	})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Frozen Heart", got[0].Name)

	got, err = c.SearchItemsByStat(context.Background(), types.StatQuery{
		Armor: boolp(true),
		Mana:  boolp(false),
	})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Thornmail", got[0].Name)
}
