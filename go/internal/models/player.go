package models

import "time"

// Position is the closed set of roster positions a player can hold.
type Position string

const (
	PositionQB  Position = "QB"
	PositionRB  Position = "RB"
	PositionWR  Position = "WR"
	PositionTE  Position = "TE"
	PositionK   Position = "K"
	PositionDST Position = "DST"
)

// ValidPosition reports whether s is a recognized position code.
func ValidPosition(s string) bool {
	switch Position(s) {
	case PositionQB, PositionRB, PositionWR, PositionTE, PositionK, PositionDST:
		return true
	}
	return false
}

// TargetStatus marks how the user rates a player on the draft board.
type TargetStatus string

const (
	TargetStatusDefault TargetStatus = "default"
	TargetStatusTarget  TargetStatus = "target"
	TargetStatusAvoid   TargetStatus = "avoid"
)

// ValidTargetStatus reports whether s is a recognized target status.
func ValidTargetStatus(s string) bool {
	switch TargetStatus(s) {
	case TargetStatusDefault, TargetStatusTarget, TargetStatusAvoid:
		return true
	}
	return false
}

// Player represents a candidate player in the draft pool.
type Player struct {
	ID              int64        `json:"id"`
	Name            string       `json:"name"`
	Position        Position     `json:"position"`
	Team            string       `json:"team"`
	ProjectedPoints float64      `json:"projected_points"`
	ByeWeek         int          `json:"bye_week"`
	DraftedStatus   bool         `json:"drafted_status"`
	TargetStatus    TargetStatus `json:"target_status"`
	CreatedAt       time.Time    `json:"created_at"`
}
