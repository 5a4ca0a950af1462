package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestItemProvides(t *testing.T) {
	tests := []struct {
		name       string
		item       Item
		wantAD     bool
		wantAP     bool
		wantArmor  bool
		wantMR     bool
		wantHealth bool
		wantMana   bool
	}{
		{
			name:   "ad through primary column",
			item:   Item{AD: intPtr(40)},
			wantAD: true,
		},
		{
			name:   "ad through duplicate column",
			item:   Item{AttackDamage: intPtr(55)},
			wantAD: true,
		},
		{
			name: "zero stats provide nothing",
			item: Item{AD: intPtr(0), AP: intPtr(0), Armor: intPtr(0)},
		},
		{
			name: "nil stats provide nothing",
			item: Item{Name: "Boots"},
		},
		{
			name:       "health through either column",
			item:       Item{BonusHP: intPtr(350)},
			wantHealth: true,
		},
		{
			name:       "tank item",
			item:       Item{Armor: intPtr(60), MR: intPtr(40), Health: intPtr(400)},
			wantArmor:  true,
			wantMR:     true,
			wantHealth: true,
		},
		{
			name:     "caster item",
			item:     Item{AP: intPtr(90), Mana: intPtr(600)},
			wantAP:   true,
			wantMana: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantAD, tt.item.ProvidesAD())
			assert.Equal(t, tt.wantAP, tt.item.ProvidesAP())
			assert.Equal(t, tt.wantArmor, tt.item.ProvidesArmor())
			assert.Equal(t, tt.wantMR, tt.item.ProvidesMR())
			assert.Equal(t, tt.wantHealth, tt.item.ProvidesHealth())
			assert.Equal(t, tt.wantMana, tt.item.ProvidesMana())
		})
	}
}

func TestItemMatchesStats(t *testing.T) {
	sword := Item{Name: "Long Sword", AD: intPtr(10)}
	tome := Item{Name: "Amplifying Tome", AP: intPtr(20)}
	plate := Item{Name: "Chain Vest", Armor: intPtr(40)}

	tests := []struct {
		name  string
		item  Item
		query StatQuery
		want  bool
	}{
		{
			name:  "unconstrained query matches everything",
			item:  sword,
			query: StatQuery{},
			want:  true,
		},
		{
			name:  "required stat present",
			item:  sword,
			query: StatQuery{AD: boolPtr(true)},
			want:  true,
		},
		{
			name:  "required stat absent",
			item:  tome,
			query: StatQuery{AD: boolPtr(true)},
			want:  false,
		},
		{
			name:  "excluded stat present",
			item:  plate,
			query: StatQuery{Armor: boolPtr(false)},
			want:  false,
		},
		{
			name:  "combined constraints",
			item:  plate,
			query: StatQuery{Armor: boolPtr(true), AD: boolPtr(false)},
			want:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.item.MatchesStats(tt.query))
		})
	}
}
