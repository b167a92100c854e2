package models

// RSVPStatus is the attendance confirmation state of a guest.
type RSVPStatus string

const (
	RSVPPending   RSVPStatus = "pending"
	RSVPConfirmed RSVPStatus = "confirmed"
	RSVPDeclined  RSVPStatus = "declined"
)

// GuestSide records which side of the wedding party invited the guest.
type GuestSide string

const (
	SidePartner1 GuestSide = "partner1"
	SidePartner2 GuestSide = "partner2"
	SideBoth     GuestSide = "both"
)

type Guest struct {
	ID       string     `json:"id"`
	CoupleID string     `json:"couple_id"`
	Name     string     `json:"name"`
	Email    string     `json:"email,omitempty"`
	Phone    string     `json:"phone,omitempty"`
	Side     GuestSide  `json:"side,omitempty"`
	RSVP     RSVPStatus `json:"rsvp_status"`
	PlusOnes int        `json:"plus_ones"`
	Dietary  string     `json:"dietary_notes,omitempty"`
	Table    int        `json:"table_number,omitempty"`
	Timestamps
}

func (g Guest) EntityID() string { return g.ID }

// Headcount is the seats this guest occupies, including plus-ones.
func (g Guest) Headcount() int { return 1 + g.PlusOnes }
