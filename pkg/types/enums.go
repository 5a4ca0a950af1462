package types

// Direction is the normalized movement of a roster change. The wire
// carries free text; anything outside the closed set maps to
// DirectionUnknown rather than failing.
type Direction string

const (
	DirectionJoin    Direction = "Join"
	DirectionLeave   Direction = "Leave"
	DirectionUnknown Direction = "Unknown"
)

// knownDirections maps recognized wire values to their Direction.
var knownDirections = map[string]Direction{
	"Join":  DirectionJoin,
	"Leave": DirectionLeave,
}

// ParseDirection maps a raw wire value onto the closed Direction set.
func ParseDirection(v string) Direction {
	if d, ok := knownDirections[v]; ok {
		return d
	}
	return DirectionUnknown
}

// Role is a competitive position on a five-player roster.
type Role string

const (
	RoleTop     Role = "Top"
	RoleJungle  Role = "Jungle"
	RoleMid     Role = "Mid"
	RoleBot     Role = "Bot"
	RoleSupport Role = "Support"
	RoleUnknown Role = "Unknown"
)

// knownRoles maps recognized wire values to their Role.
var knownRoles = map[string]Role{
	"Top":     RoleTop,
	"Jungle":  RoleJungle,
	"Mid":     RoleMid,
	"Bot":     RoleBot,
	"Support": RoleSupport,
}

// ParseRole maps a raw wire value onto the closed Role set.
func ParseRole(v string) Role {
	if r, ok := knownRoles[v]; ok {
		return r
	}
	return RoleUnknown
}

// PrimaryRole scans a semicolon-delimited roles string and returns the
// first entry that is a recognized in-game role, skipping staff titles
// such as "Part-Owner". Returns RoleUnknown when no entry matches.
func PrimaryRole(roles string) Role {
	for _, entry := range splitList(roles, ";") {
		if r, ok := knownRoles[entry]; ok {
			return r
		}
	}
	return RoleUnknown
}

// PlayerStatus classifies a player's current competitive standing.
type PlayerStatus string

const (
	PlayerStatusActive   PlayerStatus = "Active"
	PlayerStatusRetired  PlayerStatus = "Retired"
	PlayerStatusWildRift PlayerStatus = "Moved to Wild Rift"
	PlayerStatusValorant PlayerStatus = "Moved to Valorant"
)

// Multikill is the largest kill streak bracket a scoreboard line reaches.
type Multikill string

const (
	MultikillPenta    Multikill = "Penta"
	MultikillQuadra   Multikill = "Quadra"
	MultikillTriple   Multikill = "Triple"
	MultikillDouble   Multikill = "Double"
	MultikillStandard Multikill = "Standard"
	MultikillUnknown  Multikill = "Unknown"
)

// Grade is a coarse performance rating derived from KDA and kill
// participation.
type Grade string

const (
	GradeS       Grade = "S"
	GradeA       Grade = "A"
	GradeB       Grade = "B"
	GradeC       Grade = "C"
	GradeD       Grade = "D"
	GradeUnknown Grade = "Unknown"
)
