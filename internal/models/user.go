package models

import "time"

// Role is the access level of a user account.
type Role string

// Supported roles
const (
	RoleNormal Role = "normal"
	RoleAdmin  Role = "admin"
)

// UserDB represents a user record in the database
type UserDB struct {
	Login        string    `json:"login" db:"login"`           // Unique login
	PasswordHash string    `json:"-" db:"password_hash"`       // Bcrypt hash
	Role         Role      `json:"role" db:"role"`             // normal or admin
	CreatedAt    time.Time `json:"created_at" db:"created_at"` // Creation timestamp
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"` // Last password change
}
