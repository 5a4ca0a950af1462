package types

// Standing is one row of the Standings table: one team's placement and
// win/loss record within one tournament.
type Standing struct {
	OverviewPage     string   `cargo:"OverviewPage"`
	Team             string   `cargo:"Team"`
	PageAndTeam      string   `cargo:"PageAndTeam"`
	N                *int     `cargo:"N"`
	Place            *int     `cargo:"Place"`
	WinSeries        *int     `cargo:"WinSeries"`
	LossSeries       *int     `cargo:"LossSeries"`
	TieSeries        *int     `cargo:"TieSeries"`
	WinGames         *int     `cargo:"WinGames"`
	LossGames        *int     `cargo:"LossGames"`
	Points           *int     `cargo:"Points"`
	PointsTiebreaker *float64 `cargo:"PointsTiebreaker"`
	Streak           *int     `cargo:"Streak"`
	StreakDirection  string   `cargo:"StreakDirection"`
}

// StandingFilter narrows a standings query. Empty fields are ignored.
type StandingFilter struct {
	OverviewPage string // Exact match on OverviewPage.
	Team         string // Exact match on Team.
}

// winRate computes wins/(wins+losses) as a percentage. Returns nil when
// either count is unknown or no matches were played.
func winRate(wins, losses *int) *float64 {
	if wins == nil || losses == nil {
		return nil
	}
	total := *wins + *losses
	if total == 0 {
		return nil
	}
	return floatPtr(float64(*wins) / float64(total) * 100)
}

// SeriesWinRate returns the series win rate as a percentage. Returns
// nil when the series record is incomplete or empty.
func (s Standing) SeriesWinRate() *float64 {
	return winRate(s.WinSeries, s.LossSeries)
}

// GameWinRate returns the game win rate as a percentage. Returns nil
// when the game record is incomplete or empty.
func (s Standing) GameWinRate() *float64 {
	return winRate(s.WinGames, s.LossGames)
}

// TotalSeriesPlayed returns wins plus losses plus ties, counting an
// unknown tie count as zero. Returns nil when wins or losses are
// unknown.
func (s Standing) TotalSeriesPlayed() *int {
	if s.WinSeries == nil || s.LossSeries == nil {
		return nil
	}
	total := *s.WinSeries + *s.LossSeries
	if s.TieSeries != nil {
		total += *s.TieSeries
	}
	return intPtr(total)
}

// TotalGamesPlayed returns game wins plus losses. Returns nil when
// either count is unknown.
func (s Standing) TotalGamesPlayed() *int {
	if s.WinGames == nil || s.LossGames == nil {
		return nil
	}
	return intPtr(*s.WinGames + *s.LossGames)
}
