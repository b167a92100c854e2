package models

// Guest is one invitee on the couple's guest list.
type Guest struct {
	ID       string `json:"id"`
	CoupleID string `json:"couple_id"`
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email,omitempty" validate:"omitempty,email"`
	Phone    string `json:"phone,omitempty"`
	Side     string `json:"side,omitempty" validate:"omitempty,oneof=partner1 partner2 both"`
	RSVP     string `json:"rsvp_status" validate:"required,oneof=pending confirmed declined"`
	PlusOnes int    `json:"plus_ones" validate:"gte=0"`
	Dietary  string `json:"dietary_notes,omitempty"`
	Table    int    `json:"table_number,omitempty" validate:"gte=0"`
	Timestamps
}

func (g Guest) EntityID() string { return g.ID }
