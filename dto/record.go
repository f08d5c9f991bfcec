package dto

// SaveDayRequest carries the full completion set for one date; saving
// replaces whatever was stored for that day.
type SaveDayRequest struct {
	Habits map[string]bool `json:"habits" binding:"required"`
}
