package models

import (
	"time"
)

// User represents an authenticated rider. A user is created on first
// successful login through either provider and never deleted.
type User struct {
	BaseModel
	Name     string `json:"name"`
	Email    string `gorm:"index" json:"email"`
	Phone    string `gorm:"index" json:"phone"`
	GoogleID string `gorm:"index" json:"-"`
	Avatar   string `json:"avatar"`
	Role     string `gorm:"default:user" json:"role"`
	Trips    int    `gorm:"default:0" json:"trips"`
}

// OneTimeCode keeps the outstanding WhatsApp verification code for a phone
// number. At most one row exists per phone; sending a new code replaces it.
// Codes are stored as bcrypt hashes.
type OneTimeCode struct {
	BaseModel
	Phone     string    `gorm:"uniqueIndex" json:"phone"`
	CodeHash  string    `json:"-"`
	ExpiresAt time.Time `json:"expires_at"`
}
