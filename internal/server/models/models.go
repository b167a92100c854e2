// Package models defines the rows the server persists and serves. The JSON
// shapes here are the wire contract the client mirrors; validate tags are
// enforced on create and update before any row touches the database.
package models

import "time"

// Timestamps are assigned by the database on insert and bumped on update.
type Timestamps struct {
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
