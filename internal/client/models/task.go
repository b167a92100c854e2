package models

import "time"

type TaskPriority string

const (
	PriorityLow    TaskPriority = "low"
	PriorityMedium TaskPriority = "medium"
	PriorityHigh   TaskPriority = "high"
)

type Task struct {
	ID        string       `json:"id"`
	CoupleID  string       `json:"couple_id"`
	Title     string       `json:"title"`
	Notes     string       `json:"notes,omitempty"`
	Priority  TaskPriority `json:"priority,omitempty"`
	DueDate   *time.Time   `json:"due_date,omitempty"`
	Completed bool         `json:"completed"`
	Timestamps
}

func (t Task) EntityID() string { return t.ID }

// Overdue reports whether the task is past due and still open.
func (t Task) Overdue(now time.Time) bool {
	return !t.Completed && t.DueDate != nil && t.DueDate.Before(now)
}
