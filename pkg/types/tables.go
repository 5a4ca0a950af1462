package types

// Cargo table names on Leaguepedia.
const (
	TableChampions         = "Champions"
	TableItems             = "Items"
	TablePlayers           = "Players"
	TableContracts         = "Contracts"
	TableRosterChanges     = "RosterChanges"
	TableStandings         = "Standings"
	TableScoreboardPlayers = "ScoreboardPlayers"
	TableScoreboardGames   = "ScoreboardGames"
	TableTournaments       = "Tournaments"
	TableTournamentRosters = "TournamentRosters"
	TableTeams             = "Teams"
	TableTenures           = "Tenures"
	TableLeagues           = "Leagues"
)
