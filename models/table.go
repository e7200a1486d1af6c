package models

import "time"

// Table statuses. Status is a cached hint for the floor plan; conflict
// detection always scans bookings, never this field.
const (
	TableAvailable = "available"
	TableOccupied  = "occupied"
	TableReserved  = "reserved"
	TableCleaning  = "cleaning"
)

type Table struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	RestaurantID uint      `gorm:"not null;index" json:"restaurant_id"`
	TableNumber  string    `gorm:"type:varchar(50);not null" json:"table_number"`
	Capacity     int       `gorm:"not null" json:"capacity"`
	Location     string    `gorm:"type:varchar(100)" json:"location"`
	IsActive     bool      `gorm:"not null;default:true" json:"is_active"`
	Status       string    `gorm:"type:varchar(50);not null;default:'available'" json:"status"`
	CreatedAt    time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt    time.Time `gorm:"not null" json:"updated_at"`
}
