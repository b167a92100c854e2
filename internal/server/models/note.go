package models

// Note is a free-form planning note.
type Note struct {
	ID       string `json:"id"`
	CoupleID string `json:"couple_id"`
	Title    string `json:"title" validate:"required"`
	Body     string `json:"body,omitempty"`
	Pinned   bool   `json:"pinned"`
	Timestamps
}

func (n Note) EntityID() string { return n.ID }
