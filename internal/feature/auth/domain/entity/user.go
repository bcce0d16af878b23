// Package entity defines the domain entities for the auth feature.
package entity

import "time"

// Roles a user account can hold. RoleAdmin unlocks the admin-only
// user listing; every account registers as RoleUser.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User represents a registered account.
// It contains authentication credentials and metadata for user management.
type User struct {
	// ID is the unique identifier for the user.
	ID uint `gorm:"primaryKey" json:"-"`

	// Name is the display name supplied at registration.
	Name string `gorm:"size:255;not null" json:"name"`

	// Email is the user's email address used for authentication.
	// It must be unique across all users. Stored as given (case-sensitive).
	Email string `gorm:"uniqueIndex;size:255;not null" json:"email"`

	// Password is the bcrypt hash of the user's password.
	// Plaintext is never persisted and the field is never serialized.
	Password string `gorm:"size:255;not null" json:"-"`

	// Role controls access to admin-only endpoints. Defaults to RoleUser.
	Role string `gorm:"size:32;not null;default:user" json:"-"`

	// RegisteredAt is the timestamp when the account was created.
	RegisteredAt time.Time `json:"registeredAt"`

	// LastLogin is the timestamp of the most recent successful login.
	// It stays nil until the user logs in for the first time.
	LastLogin *time.Time `json:"lastLogin"`
}
