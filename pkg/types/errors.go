package types

import "errors"

// Caller input errors. Returned synchronously, before any gateway call.
var (
	ErrEmptyName     = errors.New("name must not be empty")
	ErrUnknownColumn = errors.New("unknown column")
)

// ErrTeamNotFound is returned when a team name cannot be resolved to a
// wiki entry, even after trigram-to-long-name resolution.
var ErrTeamNotFound = errors.New("team not found")
