package types

// Item is one row of the Items table: a purchasable item and the stats
// it grants. Stat columns the item does not carry come back nil.
type Item struct {
	Name             string `cargo:"Name"`
	Tier             string `cargo:"Tier"`
	RiotID           *int   `cargo:"RiotId"`
	Recipe           string `cargo:"Recipe"` // Component names, kept raw.
	Cost             *int   `cargo:"Cost"`
	TotalCost        *int   `cargo:"TotalCost"`
	AD               *int   `cargo:"AD"`
	LifeSteal        *int   `cargo:"LifeSteal"`
	Health           *int   `cargo:"Health"`
	HPRegen          *int   `cargo:"HPRegen"`
	Armor            *int   `cargo:"Armor"`
	MR               *int   `cargo:"MR"`
	AttackDamage     *int   `cargo:"AttackDamage"`
	Crit             *int   `cargo:"Crit"`
	AttackSpeed      *int   `cargo:"AttackSpeed"`
	ArmorPen         *int   `cargo:"ArmorPen"`
	Lethality        *int   `cargo:"Lethality"`
	AttackRange      *int   `cargo:"AttackRange"`
	Mana             *int   `cargo:"Mana"`
	ManaRegen        *int   `cargo:"ManaRegen"`
	Energy           *int   `cargo:"Energy"`
	EnergyRegen      *int   `cargo:"EnergyRegen"`
	AP               *int   `cargo:"AP"`
	CDR              *int   `cargo:"CDR"`
	AbilityHaste     *int   `cargo:"AbilityHaste"`
	Omnivamp         *int   `cargo:"Omnivamp"`
	PhysVamp         *int   `cargo:"PhysVamp"`
	SpellVamp        *int   `cargo:"SpellVamp"`
	MPen             *int   `cargo:"MPen"`
	MovespeedFlat    *int   `cargo:"MovespeedFlat"`
	MovespeedPercent *int   `cargo:"MovespeedPercent"`
	Tenacity         *int   `cargo:"Tenacity"`
	GoldGen          *int   `cargo:"GoldGen"`
	OnHit            *int   `cargo:"OnHit"`
	BonusHP          *int   `cargo:"BonusHP"`
	Healing          *int   `cargo:"Healing"`
	HSPower          *int   `cargo:"HSPower"`
	SlowResist       *int   `cargo:"SlowResist"`
}

// ItemFilter narrows an item query. Empty fields are ignored.
type ItemFilter struct {
	Name string // Exact match on Name.
	Tier string // Exact match on Tier.
}

// StatQuery selects items by the stat classes they provide. Nil fields
// do not constrain; true requires the stat, false requires its absence.
type StatQuery struct {
	AD     *bool
	AP     *bool
	Armor  *bool
	MR     *bool
	Health *bool
	Mana   *bool
}

func positive(v *int) bool { return v != nil && *v > 0 }

// ProvidesAD reports whether the item grants attack damage through
// either AD column.
func (i Item) ProvidesAD() bool {
	return positive(i.AD) || positive(i.AttackDamage)
}

// ProvidesAP reports whether the item grants ability power.
func (i Item) ProvidesAP() bool { return positive(i.AP) }

// ProvidesArmor reports whether the item grants armor.
func (i Item) ProvidesArmor() bool { return positive(i.Armor) }

// ProvidesMR reports whether the item grants magic resistance.
func (i Item) ProvidesMR() bool { return positive(i.MR) }

// ProvidesHealth reports whether the item grants health through either
// health column.
func (i Item) ProvidesHealth() bool {
	return positive(i.Health) || positive(i.BonusHP)
}

// ProvidesMana reports whether the item grants mana.
func (i Item) ProvidesMana() bool { return positive(i.Mana) }

// MatchesStats reports whether the item satisfies every constrained
// classifier in q.
func (i Item) MatchesStats(q StatQuery) bool {
	checks := []struct {
		want *bool
		have bool
	}{
		{q.AD, i.ProvidesAD()},
		{q.AP, i.ProvidesAP()},
		{q.Armor, i.ProvidesArmor()},
		{q.MR, i.ProvidesMR()},
		{q.Health, i.ProvidesHealth()},
		{q.Mana, i.ProvidesMana()},
	}
	for _, c := range checks {
		if c.want != nil && c.have != *c.want {
			return false
		}
	}
	return true
}
