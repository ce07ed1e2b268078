package model

import "time"

// DefaultAvatar is the placeholder avatar assigned at registration.
const DefaultAvatar = "default_avatar.png"

// User represents a registered account.
type User struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Username     string    `json:"username" gorm:"uniqueIndex;size:80;not null"`
	PasswordHash string    `json:"-" gorm:"size:255;not null"` // Never expose in JSON
	IsAdmin      bool      `json:"is_admin" gorm:"default:false"`
	Avatar       string    `json:"avatar" gorm:"size:200;default:'default_avatar.png'"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
