package models

import "time"

// User is a registered account. PasswordHash holds a bcrypt hash, never the
// plaintext password.
type User struct {
	Username     string
	Email        string
	ContactNo    string
	PasswordHash string
	CreatedAt    time.Time
}
