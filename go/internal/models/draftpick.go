package models

import "time"

// DraftPick records which player was taken at which overall pick number.
// Pick numbers are unique and, absent undo, gapless from 1.
type DraftPick struct {
	ID          int64     `json:"id"`
	PlayerID    int64     `json:"player_id"`
	PickNumber  int       `json:"pick_number"`
	RoundNumber int       `json:"round_number"` // ceil(pick_number / total_teams)
	DraftedAt   time.Time `json:"drafted_at"`
}
