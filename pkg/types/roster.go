package types

// TournamentRoster is one row of the TournamentRosters table: the
// lineup a team registered for one tournament.
type TournamentRoster struct {
	Team         string   `cargo:"Team"`
	Tournament   string   `cargo:"Tournament"`
	OverviewPage string   `cargo:"OverviewPage"`
	Region       string   `cargo:"Region"`
	RosterLinks  []string `cargo:"RosterLinks,delim=;"`
	Roles        []string `cargo:"Roles,delim=;"`
	Flags        []string `cargo:"Flags,delim=;"`
	Footnotes    []string `cargo:"Footnotes,delim=;"`
	IsUsed       *bool    `cargo:"IsUsed,true=1"`
}

// TournamentRosterFilter narrows a tournament-roster query. Team is
// required. Extra adds equality conditions on further schema columns;
// keys must name a TournamentRoster column and values are escaped like
// every other literal.
type TournamentRosterFilter struct {
	Team       string            // Exact match on Team. Required.
	Tournament string            // Exact match on Tournament.
	Extra      map[string]string // Additional column=value conditions.
}
