package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	ID          uint   `json:"id" gorm:"primaryKey"`
	Email       string `json:"email" gorm:"unique;not null"`
	FullName    string `json:"full_name"`
	Password    string `json:"-"`
	IsActive    bool   `json:"is_active" gorm:"default:true"`
	IsSuperuser bool   `json:"is_superuser" gorm:"default:false"`
}

// UserSession tracks issued tokens so logout can revoke them.
type UserSession struct {
	gorm.Model
	UserID         uint      `json:"user_id"`
	SessionID      string    `json:"session_id" gorm:"uniqueIndex;size:64"`
	IPAddress      string    `json:"ip_address"`
	UserAgent      string    `json:"user_agent"`
	IsActive       bool      `json:"is_active" gorm:"default:true"`
	LastActivityAt time.Time `json:"last_activity_at"`
	ExpiresAt      time.Time `json:"expires_at"`
}

// PasswordReset is a one-shot recovery token sent by email.
type PasswordReset struct {
	gorm.Model
	Email     string     `json:"email" gorm:"index"`
	Token     string     `json:"-" gorm:"uniqueIndex;size:64"`
	ExpiresAt time.Time  `json:"expires_at"`
	UsedAt    *time.Time `json:"used_at"`
}
