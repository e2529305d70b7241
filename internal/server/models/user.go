package models

import "time"

// User is an account record. Salt and EncryptedPassword form its
// credential; the plaintext password is never a field here.
type User struct {
	ID                string
	Name              string
	Email             string
	EncryptedPassword string
	Salt              string
	Admin             bool
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
