package model

import "time"

// User is the account row. Name is unique and alphanumeric; Email is stored
// lowercase so the unique index doubles as the case-insensitive check.
// PasswordHash is never serialized to clients.
type User struct {
	ID           uint64    `gorm:"primaryKey"`
	Name         string    `gorm:"uniqueIndex;size:45;not null"`
	Email        string    `gorm:"uniqueIndex;size:254;not null"`
	PasswordHash string    `gorm:"size:255;not null"`
	MemberSince  time.Time `gorm:"autoCreateTime"`
	IsModerator  bool      `gorm:"not null;default:false"`
}
