package models

import "time"

// Milestone is a dated item on the wedding timeline.
type Milestone struct {
	ID       string    `json:"id"`
	CoupleID string    `json:"couple_id"`
	Title    string    `json:"title"`
	Date     time.Time `json:"date"`
	Done     bool      `json:"done"`
	Notes    string    `json:"notes,omitempty"`
	Timestamps
}

func (m Milestone) EntityID() string { return m.ID }
