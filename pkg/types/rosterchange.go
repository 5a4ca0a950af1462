package types

import "time"

// RosterChange is one row of the RosterChanges table: one player joining
// or leaving one team on one date, as reported by a news line.
type RosterChange struct {
	DateSort            *time.Time `cargo:"Date_Sort,datetime"`
	Player              string     `cargo:"Player"`
	Direction           string     `cargo:"Direction"` // Raw wire value; see DirectionCode.
	Team                string     `cargo:"Team"`
	Role                string     `cargo:"Role"`
	Roles               string     `cargo:"Roles"` // Semicolon-delimited, kept raw.
	RolesIngame         string     `cargo:"RolesIngame"`
	RolesStaff          string     `cargo:"RolesStaff"`
	RoleDisplay         string     `cargo:"RoleDisplay"`
	RoleModifier        string     `cargo:"RoleModifier"`
	Status              string     `cargo:"Status"`
	CurrentTeamPriority *int       `cargo:"CurrentTeamPriority"`
	PlayerUnlinked      *bool      `cargo:"PlayerUnlinked,true=1"`
	AlreadyJoined       string     `cargo:"AlreadyJoined"`
	Tournaments         string     `cargo:"Tournaments"`
	Source              string     `cargo:"Source"`
	IsGCD               *bool      `cargo:"IsGCD,true=1"`
	Preload             string     `cargo:"Preload"`
	PreloadSortNumber   *int       `cargo:"PreloadSortNumber"`
	Tags                string     `cargo:"Tags"`
	NewsID              string     `cargo:"NewsId"`
	RosterChangeID      string     `cargo:"RosterChangeId"`
	NLineInNews         *int       `cargo:"N_LineInNews"`
}

// RosterChangeFilter narrows a roster-change query. Empty fields are
// ignored. Since and Until are YYYY-MM-DD date literals compared
// against Date_Sort.
type RosterChangeFilter struct {
	Team       string // Exact match on Team.
	Player     string // Exact match on Player.
	Tournament string // Substring match on Tournaments.
	Direction  string // Exact match on Direction.
	Since      string // Date_Sort lower bound, inclusive.
	Until      string // Date_Sort upper bound, inclusive.
}

// DirectionCode maps the raw Direction value onto the closed Direction
// set.
func (r RosterChange) DirectionCode() Direction {
	return ParseDirection(r.Direction)
}

// IsJoin reports whether the change moves the player onto the team.
func (r RosterChange) IsJoin() bool {
	return r.DirectionCode() == DirectionJoin
}

// IsLeave reports whether the change moves the player off the team.
func (r RosterChange) IsLeave() bool {
	return r.DirectionCode() == DirectionLeave
}

// PrimaryRole returns the first recognized in-game role from the
// semicolon-delimited Roles field, skipping staff titles such as
// "Part-Owner". Returns RoleUnknown when no entry matches.
func (r RosterChange) PrimaryRole() Role {
	return PrimaryRole(r.Roles)
}
