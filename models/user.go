package models

import "time"

// User represents a linked mailbox account. It carries the identity of the
// account plus the OAuth credential material stored encrypted at rest.
// Token fields hold ciphertext only; decryption happens just before a sync
// run and the plaintext never leaves the run that needed it.
type User struct {
	// UserID is the internal unique identifier of the account (a UUID).
	UserID string `json:"userId"`

	// Email is the mailbox address the account was created with.
	Email string `json:"email"`

	// AccessToken is the encrypted OAuth access token, or empty when the
	// account has not completed the OAuth flow yet.
	AccessToken string `json:"-"`

	// RefreshToken is the encrypted OAuth refresh token.
	RefreshToken string `json:"-"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
