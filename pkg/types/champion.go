package types

import "time"

// meleeAttackRange is the inclusive attack-range cutoff below which a
// champion counts as melee.
const meleeAttackRange = 200

// Champion is one row of the Champions table: a playable champion's
// identity, store costs and base statistics.
type Champion struct {
	Name             string     `cargo:"Name"`
	Title            string     `cargo:"Title"`
	ReleaseDate      *time.Time `cargo:"ReleaseDate,datetime"`
	BE               *int       `cargo:"BE"`
	RP               *int       `cargo:"RP"`
	Attributes       string     `cargo:"Attributes"` // Comma-delimited class names, kept raw.
	Resource         string     `cargo:"Resource"`
	RealName         string     `cargo:"RealName"`
	Health           *float64   `cargo:"Health"`
	HPLevel          *float64   `cargo:"HPLevel"`
	HPRegen          *float64   `cargo:"HPRegen"`
	HPRegenLevel     *float64   `cargo:"HPRegenLevel"`
	Mana             *float64   `cargo:"Mana"`
	ManaLevel        *float64   `cargo:"ManaLevel"`
	ManaRegen        *float64   `cargo:"ManaRegen"`
	ManaRegenLevel   *float64   `cargo:"ManaRegenLevel"`
	Energy           *float64   `cargo:"Energy"`
	EnergyRegen      *float64   `cargo:"EnergyRegen"`
	Movespeed        *float64   `cargo:"Movespeed"`
	AttackDamage     *float64   `cargo:"AttackDamage"`
	ADLevel          *float64   `cargo:"ADLevel"`
	AttackSpeed      *float64   `cargo:"AttackSpeed"`
	ASLevel          *float64   `cargo:"ASLevel"`
	AttackRange      *float64   `cargo:"AttackRange"`
	Armor            *float64   `cargo:"Armor"`
	ArmorLevel       *float64   `cargo:"ArmorLevel"`
	MagicResist      *float64   `cargo:"MagicResist"`
	MagicResistLevel *float64   `cargo:"MagicResistLevel"`
	KeyInteger       *int       `cargo:"KeyInteger"`
}

// ChampionFilter narrows a champion query. Empty fields are ignored.
type ChampionFilter struct {
	Name      string // Exact match on Name.
	Resource  string // Exact match on Resource.
	Attribute string // Substring match on Attributes.
}

// IsMelee reports whether the champion attacks at or below the melee
// cutoff. Returns nil when AttackRange is unknown.
func (c Champion) IsMelee() *bool {
	if c.AttackRange == nil {
		return nil
	}
	return boolPtr(*c.AttackRange <= meleeAttackRange)
}

// IsRanged reports whether the champion attacks beyond the melee cutoff.
// Returns nil when AttackRange is unknown.
func (c Champion) IsRanged() *bool {
	if c.AttackRange == nil {
		return nil
	}
	return boolPtr(*c.AttackRange > meleeAttackRange)
}

// AttributeList splits the raw Attributes field into individual class
// names. Returns an empty slice when Attributes is empty.
func (c Champion) AttributeList() []string {
	return splitList(c.Attributes, ",")
}
