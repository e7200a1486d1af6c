package models

import "time"

// Booking statuses. Completed, cancelled and no-show are terminal.
const (
	BookingPending   = "pending"
	BookingConfirmed = "confirmed"
	BookingSeated    = "seated"
	BookingCompleted = "completed"
	BookingCancelled = "cancelled"
	BookingNoShow    = "no_show"
)

// Booking sources.
const (
	SourceOnline = "online"
	SourceStaff  = "staff"
	SourceWalkIn = "walk_in"
)

type Booking struct {
	ID            uint           `gorm:"primaryKey" json:"id"`
	Reference     string         `gorm:"type:varchar(20);uniqueIndex;not null" json:"reference"`
	RestaurantID  uint           `gorm:"not null;index" json:"restaurant_id"`
	Date          string         `gorm:"type:varchar(10);not null;index" json:"date"`
	StartTime     string         `gorm:"type:varchar(5);not null" json:"start_time"`
	EndTime       string         `gorm:"type:varchar(5);not null" json:"end_time"`
	PartySize     int            `gorm:"not null" json:"party_size"`
	CustomerName  string         `gorm:"type:varchar(255);not null" json:"customer_name"`
	CustomerEmail string         `gorm:"type:varchar(255);not null" json:"customer_email"`
	CustomerPhone string         `gorm:"type:varchar(50)" json:"customer_phone"`
	Source        string         `gorm:"type:varchar(20);not null;default:'online'" json:"source"`
	Notes         string         `gorm:"type:text" json:"notes"`
	Status        string         `gorm:"type:varchar(20);not null;default:'pending';index" json:"status"`
	Tables        []BookingTable `gorm:"foreignKey:BookingID" json:"tables"`
	CreatedAt     time.Time      `gorm:"not null" json:"created_at"`
	UpdatedAt     time.Time      `gorm:"not null" json:"updated_at"`
}

// BookingTable is one row of a booking's ordered table assignment. Position 0
// is the primary table. Multi-table parties keep every table here so status
// cascades and conflict checks cover the whole set.
type BookingTable struct {
	ID        uint  `gorm:"primaryKey" json:"id"`
	BookingID uint  `gorm:"not null;index" json:"booking_id"`
	TableID   uint  `gorm:"not null;index" json:"table_id"`
	Position  int   `gorm:"not null;default:0" json:"position"`
	Table     Table `gorm:"foreignKey:TableID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"table"`
}

// PrimaryTable returns the first assigned table, or nil while pending.
func (b *Booking) PrimaryTable() *Table {
	if len(b.Tables) == 0 {
		return nil
	}
	return &b.Tables[0].Table
}

// TableIDs lists the assigned table ids in assignment order.
func (b *Booking) TableIDs() []uint {
	ids := make([]uint, 0, len(b.Tables))
	for _, bt := range b.Tables {
		ids = append(ids, bt.TableID)
	}
	return ids
}

// IsTerminal reports whether no further transition may leave this status.
func (b *Booking) IsTerminal() bool {
	switch b.Status {
	case BookingCompleted, BookingCancelled, BookingNoShow:
		return true
	}
	return false
}
