package models

import "time"

type User struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	Firstname      string    `gorm:"not null" json:"firstname"`
	Lastname       string    `gorm:"not null" json:"lastname"`
	Email          string    `gorm:"uniqueIndex;not null" json:"email"`
	PasswordDigest string    `gorm:"not null" json:"-"`
	Orders         []Order   `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	CreatedAt      time.Time `json:"created_at"`
}
