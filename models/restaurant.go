package models

import "time"

type Restaurant struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Name         string    `gorm:"type:varchar(255);not null" json:"name"`
	OpeningTime  string    `gorm:"type:varchar(5);not null;default:'10:00'" json:"opening_time"`
	ClosingTime  string    `gorm:"type:varchar(5);not null;default:'22:00'" json:"closing_time"`
	MaxPartySize int       `gorm:"not null;default:20" json:"max_party_size"`
	CreatedAt    time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt    time.Time `gorm:"not null" json:"updated_at"`
}
