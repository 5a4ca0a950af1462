package types

import "time"

// Tournament is one row of the Tournaments table joined against Leagues
// for the league short name. Column tags carry their table prefix
// because Region and IsOfficial exist in both joined tables.
type Tournament struct {
	Name            string     `cargo:"Tournaments.Name"`
	OverviewPage    string     `cargo:"Tournaments.OverviewPage"`
	DateStart       *time.Time `cargo:"Tournaments.DateStart,date"`
	Date            *time.Time `cargo:"Tournaments.Date,date"`
	Region          string     `cargo:"Tournaments.Region"`
	League          string     `cargo:"Tournaments.League"`
	LeagueShort     string     `cargo:"Leagues.League_Short"`
	Rulebook        string     `cargo:"Tournaments.Rulebook"`
	TournamentLevel string     `cargo:"Tournaments.TournamentLevel"`
	IsQualifier     *bool      `cargo:"Tournaments.IsQualifier,true=1"`
	IsPlayoffs      *bool      `cargo:"Tournaments.IsPlayoffs,true=1"`
	IsOfficial      *bool      `cargo:"Tournaments.IsOfficial,true=1"`
	Year            *int       `cargo:"Tournaments.Year"`
}

// TournamentFilter narrows a tournament query. Empty fields are
// ignored; IsPlayoffs is tri-state and rendered as the stored '1'/'0'.
type TournamentFilter struct {
	Region     string // Exact match on Region.
	Year       string // Exact match on Year, e.g. "2024".
	Level      string // Exact match on TournamentLevel, e.g. "Primary".
	IsPlayoffs *bool  // Nil leaves playoffs and regular season mixed.
}
