package models

import "time"

// RefreshToken is a server-stored opaque token. Tokens are rotated on every
// refresh: the presented token is deleted and a new one issued in the same
// transaction.
type RefreshToken struct {
	Token   string
	UserID  string
	Expires time.Time
}
