// user.go - Defines the User and AccessToken models for the database

package models

import "time"

type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	Email     string    `gorm:"unique;not null" json:"email"` // Must be unique across users
	Password  string    `gorm:"not null" json:"-"`            // Bcrypt hash, never serialized
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// AccessToken is one issued bearer credential. A user may hold several at once
// (one per session); deleting a row revokes exactly that session.
type AccessToken struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"index;not null" json:"user_id"`
	User      User      `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	Name      string    `gorm:"not null;default:'auth-token'" json:"name"`
	CreatedAt time.Time `json:"created_at"`
}
