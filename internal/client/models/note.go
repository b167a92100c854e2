package models

type Note struct {
	ID       string `json:"id"`
	CoupleID string `json:"couple_id"`
	Title    string `json:"title"`
	Body     string `json:"body,omitempty"`
	Pinned   bool   `json:"pinned"`
	Timestamps
}

func (n Note) EntityID() string { return n.ID }
