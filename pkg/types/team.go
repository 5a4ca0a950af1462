package types

// Team is one row of the Teams table, projected down to the columns the
// client needs for name resolution and team summaries.
type Team struct {
	Name         string `cargo:"Name"`
	OverviewPage string `cargo:"OverviewPage"`
	Short        string `cargo:"Short"`
	Location     string `cargo:"Location"`
	Region       string `cargo:"Region"`
	Image        string `cargo:"Image"`
	IsDisbanded  *bool  `cargo:"IsDisbanded"`
	RenamedTo    string `cargo:"RenamedTo"`
}

// TeamPlayer is one member of an active roster: the cleaned player name
// and the primary in-game role held on the team.
type TeamPlayer struct {
	Name string
	Role Role
}

// TeamAssets bundles the image URLs and display name resolved for one
// team.
type TeamAssets struct {
	LogoURL      string
	ThumbnailURL string
	LongName     string
}
