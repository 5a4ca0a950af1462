package types

import "time"

// Player is one row of the Players table: identity, location, team and
// role assignments, social links, and status flags for one player page.
type Player struct {
	ID           string `cargo:"ID"`
	OverviewPage string `cargo:"OverviewPage"`
	Player       string `cargo:"Player"`
	Image        string `cargo:"Image"`

	Name         string `cargo:"Name"`
	NativeName   string `cargo:"NativeName"`
	NameAlphabet string `cargo:"NameAlphabet"`
	NameFull     string `cargo:"NameFull"`

	Country            string   `cargo:"Country"`
	Nationality        []string `cargo:"Nationality"`
	NationalityPrimary string   `cargo:"NationalityPrimary"`
	Residency          string   `cargo:"Residency"`
	ResidencyFormer    string   `cargo:"ResidencyFormer"`

	Age       *int       `cargo:"Age"`
	Birthdate *time.Time `cargo:"Birthdate,date"`
	Deathdate *time.Time `cargo:"Deathdate,date"`

	Team         string   `cargo:"Team"`
	Team2        string   `cargo:"Team2"`
	CurrentTeams []string `cargo:"CurrentTeams"`
	TeamSystem   string   `cargo:"TeamSystem"`
	Team2System  string   `cargo:"Team2System"`
	TeamLast     string   `cargo:"TeamLast"`

	Role     string   `cargo:"Role"`
	RoleLast []string `cargo:"RoleLast,delim=;"`

	Contract *time.Time `cargo:"Contract,date"`

	FavChamps    []string `cargo:"FavChamps"`
	SoloqueueIDs string   `cargo:"SoloqueueIds"`

	Askfm     string `cargo:"Askfm"`
	Bluesky   string `cargo:"Bluesky"`
	Discord   string `cargo:"Discord"`
	Facebook  string `cargo:"Facebook"`
	Instagram string `cargo:"Instagram"`
	Lolpros   string `cargo:"Lolpros"`
	Reddit    string `cargo:"Reddit"`
	Snapchat  string `cargo:"Snapchat"`
	Stream    string `cargo:"Stream"`
	Twitter   string `cargo:"Twitter"`
	Threads   string `cargo:"Threads"`
	LinkedIn  string `cargo:"LinkedIn"`
	Vk        string `cargo:"Vk"`
	Website   string `cargo:"Website"`
	Weibo     string `cargo:"Weibo"`
	Youtube   string `cargo:"Youtube"`

	IsRetired     *bool `cargo:"IsRetired"`
	ToWildrift    *bool `cargo:"ToWildrift"`
	ToValorant    *bool `cargo:"ToValorant"`
	IsPersonality *bool `cargo:"IsPersonality"`
	IsSubstitute  *bool `cargo:"IsSubstitute"`
	IsTrainee     *bool `cargo:"IsTrainee"`
	IsLowercase   *bool `cargo:"IsLowercase"`
	IsAutoTeam    *bool `cargo:"IsAutoTeam"`
	IsLowContent  *bool `cargo:"IsLowContent"`
}

// PlayerFilter narrows a player query. Empty fields are ignored.
type PlayerFilter struct {
	Name      string // Exact match on Player.
	Team      string // Exact match on Team.
	Country   string // Exact match on Country.
	Residency string // Exact match on Residency.
	Role      string // Exact match on Role.
}

// Status classifies the player. A move to another game takes precedence
// over plain retirement when both flags are set.
func (p Player) Status() PlayerStatus {
	switch {
	case isSet(p.ToWildrift):
		return PlayerStatusWildRift
	case isSet(p.ToValorant):
		return PlayerStatusValorant
	case isSet(p.IsRetired):
		return PlayerStatusRetired
	default:
		return PlayerStatusActive
	}
}

// IsActive reports whether the player carries no retirement or
// game-move flag.
func (p Player) IsActive() bool {
	return !isSet(p.IsRetired) && !isSet(p.ToWildrift) && !isSet(p.ToValorant)
}
