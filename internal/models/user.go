package models

import "gorm.io/gorm"

// User represents a registered account. Emails are stored lowercased and
// passwords only ever as a bcrypt hash.
type User struct {
	gorm.Model
	Username     string `gorm:"size:20;unique;not null"`
	Email        string `gorm:"size:255;unique;not null"`
	PasswordHash string `gorm:"size:255;not null"`
}
