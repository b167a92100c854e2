package models

import "time"

// User is an account holder. Two accounts may share one couple workspace.
type User struct {
	ID           string
	Email        string
	PasswordHash []byte
	CoupleID     string
	CreatedAt    time.Time
}

// Couple is the tenant every planning row belongs to.
type Couple struct {
	ID           string     `json:"id"`
	Partner1Name string     `json:"partner1_name"`
	Partner2Name string     `json:"partner2_name"`
	WeddingDate  *time.Time `json:"wedding_date,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}
