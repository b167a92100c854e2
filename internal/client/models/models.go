// Package models defines the client-side entity families of the planner.
// Every entity is owned by a couple (the tenant scoping all reads and
// mutations) and carries server-assigned timestamps.
package models

import "time"

// TenantID identifies the couple whose data a call operates on. It is always
// passed explicitly; an empty TenantID fails closed as unauthorized.
type TenantID string

func (t TenantID) IsZero() bool { return t == "" }

// Entity is implemented by every record with a stable identifier.
type Entity interface {
	EntityID() string
}

// Timestamps are set by the server; clients treat them as read-only.
type Timestamps struct {
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
