package models

// Bounds for the mutable DraftSettings fields.
const (
	MinTotalTeams = 1
	MaxTotalTeams = 24
	MinRounds     = 1
	MaxRounds     = 40
	MaxQBSlots    = 3
	MaxRBSlots    = 6
	MaxWRSlots    = 6
	MaxFlexSlots  = 3
)

// DraftSettings is the singleton league configuration and pick pointer.
// CurrentPick is never below the number of ledger entries plus one; undoing
// a non-recent pick can leave it above that floor.
type DraftSettings struct {
	TotalTeams  int  `json:"total_teams"`
	Rounds      int  `json:"rounds"`
	CurrentPick int  `json:"current_pick"`
	IsActive    bool `json:"is_active"`
	QBSlots     int  `json:"qb_slots"`
	RBSlots     int  `json:"rb_slots"`
	WRSlots     int  `json:"wr_slots"`
	FlexSlots   int  `json:"flex_slots"`
}
