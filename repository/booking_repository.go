package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/neggmmm/brandbite-sub000/models"
)

type BookingRepository struct {
	DB *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{DB: db}
}

type BookingFilter struct {
	RestaurantID uint
	Date         string
	Statuses     []string
	TableID      uint
}

func (r *BookingRepository) Create(tx *gorm.DB, b *models.Booking) error {
	if tx == nil {
		tx = r.DB
	}
	return tx.Create(b).Error
}

// Find lists bookings matching the filter, assignments preloaded.
// RestaurantID is mandatory; cross-restaurant queries are never served.
func (r *BookingRepository) Find(f BookingFilter) ([]models.Booking, error) {
	if f.RestaurantID == 0 {
		return nil, errors.New("booking filter requires a restaurant id")
	}
	q := r.DB.Where("restaurant_id = ?", f.RestaurantID)
	if f.Date != "" {
		q = q.Where("date = ?", f.Date)
	}
	if len(f.Statuses) > 0 {
		q = q.Where("status IN ?", f.Statuses)
	}
	if f.TableID != 0 {
		q = q.Joins("JOIN booking_tables ON booking_tables.booking_id = bookings.id").
			Where("booking_tables.table_id = ?", f.TableID)
	}

	var bookings []models.Booking
	err := q.Preload("Tables", func(db *gorm.DB) *gorm.DB {
		return db.Order("booking_tables.position ASC")
	}).Preload("Tables.Table").
		Order("date ASC, start_time ASC").
		Find(&bookings).Error
	return bookings, err
}

func (r *BookingRepository) FindByID(id uint) (*models.Booking, error) {
	var b models.Booking
	err := r.DB.Preload("Tables", func(db *gorm.DB) *gorm.DB {
		return db.Order("booking_tables.position ASC")
	}).Preload("Tables.Table").
		First(&b, id).Error
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// Update applies the given fields as one UPDATE statement.
func (r *BookingRepository) Update(tx *gorm.DB, id uint, fields map[string]interface{}) (*models.Booking, error) {
	if tx == nil {
		tx = r.DB
	}
	res := tx.Model(&models.Booking{}).Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	var b models.Booking
	if err := tx.Preload("Tables").Preload("Tables.Table").First(&b, id).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

// UpdateStatusGuard transitions id from one status to another in a single
// guarded UPDATE. Returns the number of rows affected; 0 means the booking
// was not in the expected status (stale read or concurrent transition).
func (r *BookingRepository) UpdateStatusGuard(tx *gorm.DB, id uint, from, to string, extra map[string]interface{}) (int64, error) {
	if tx == nil {
		tx = r.DB
	}
	fields := map[string]interface{}{"status": to}
	for k, v := range extra {
		fields[k] = v
	}
	res := tx.Model(&models.Booking{}).
		Where("id = ? AND status = ?", id, from).
		Updates(fields)
	return res.RowsAffected, res.Error
}

// ReplaceAssignments rewrites the ordered table assignment of a booking.
func (r *BookingRepository) ReplaceAssignments(tx *gorm.DB, bookingID uint, tableIDs []uint) error {
	if tx == nil {
		tx = r.DB
	}
	if err := tx.Where("booking_id = ?", bookingID).Delete(&models.BookingTable{}).Error; err != nil {
		return err
	}
	for i, tableID := range tableIDs {
		bt := models.BookingTable{BookingID: bookingID, TableID: tableID, Position: i}
		if err := tx.Create(&bt).Error; err != nil {
			return err
		}
	}
	return nil
}

func (r *BookingRepository) Delete(id uint) (*models.Booking, error) {
	b, err := r.FindByID(id)
	if err != nil {
		return nil, err
	}
	err = r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("booking_id = ?", id).Delete(&models.BookingTable{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Booking{}, id).Error
	})
	if err != nil {
		return nil, err
	}
	return b, nil
}

// HasActiveBookingForTable reports whether a confirmed or seated booking
// still references the table. Used to refuse table deletion.
func (r *BookingRepository) HasActiveBookingForTable(tableID uint) (bool, error) {
	var count int64
	err := r.DB.Model(&models.Booking{}).
		Joins("JOIN booking_tables ON booking_tables.booking_id = bookings.id").
		Where("booking_tables.table_id = ?", tableID).
		Where("bookings.status IN ?", []string{models.BookingConfirmed, models.BookingSeated}).
		Count(&count).Error
	return count > 0, err
}
