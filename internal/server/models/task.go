package models

import "time"

// Task is one checklist item.
type Task struct {
	ID        string     `json:"id"`
	CoupleID  string     `json:"couple_id"`
	Title     string     `json:"title" validate:"required"`
	Notes     string     `json:"notes,omitempty"`
	Priority  string     `json:"priority,omitempty" validate:"omitempty,oneof=low medium high"`
	DueDate   *time.Time `json:"due_date,omitempty"`
	Completed bool       `json:"completed"`
	Timestamps
}

func (t Task) EntityID() string { return t.ID }
