package types

import "time"

// hoursPerDay converts expiry spans to whole days.
const hoursPerDay = 24

// Contract is one row of the Contracts table: a player's contract end
// date with a team as announced by the global contract database. Rows
// with IsRemoval set record the removal of an earlier entry rather than
// a live contract.
type Contract struct {
	Player          string     `cargo:"Player"`
	Team            string     `cargo:"Team"`
	ContractEnd     *time.Time `cargo:"ContractEnd,datetime"`
	ContractEndText string     `cargo:"ContractEndText"`
	IsRemoval       *bool      `cargo:"IsRemoval,true=1"`
	NewsID          string     `cargo:"NewsId"`
}

// ContractFilter narrows a contract query. Empty fields are ignored.
type ContractFilter struct {
	Player          string // Exact match on Player.
	Team            string // Exact match on Team.
	ActiveOnly      bool   // Keep contracts ending today or later.
	IncludeRemovals bool   // Keep removal markers; excluded by default.
}

// ActiveAt reports whether the contract is in force at the given
// instant. Removal markers are never active. Returns nil when
// ContractEnd is unknown.
func (c Contract) ActiveAt(now time.Time) *bool {
	if isSet(c.IsRemoval) {
		return boolPtr(false)
	}
	if c.ContractEnd == nil {
		return nil
	}
	return boolPtr(c.ContractEnd.After(now))
}

// ExpiredAt reports whether the contract end has passed at the given
// instant. Returns nil when ContractEnd is unknown.
func (c Contract) ExpiredAt(now time.Time) *bool {
	if c.ContractEnd == nil {
		return nil
	}
	return boolPtr(!c.ContractEnd.After(now))
}

// DaysUntilExpiry returns the number of whole days from now until the
// contract end, negative once expired. Returns nil when ContractEnd is
// unknown.
func (c Contract) DaysUntilExpiry(now time.Time) *int {
	if c.ContractEnd == nil {
		return nil
	}
	days := int(c.ContractEnd.Sub(now).Hours() / hoursPerDay)
	return intPtr(days)
}
