package player

import "errors"

// ErrPlayerNotFound is returned when no player matches the requested id.
var ErrPlayerNotFound = errors.New("player not found")
