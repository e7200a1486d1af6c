package services

import (
	"gorm.io/gorm"

	"github.com/neggmmm/brandbite-sub000/events"
	"github.com/neggmmm/brandbite-sub000/models"
	"github.com/neggmmm/brandbite-sub000/utils"
)

// Confirm assigns tables to a pending booking and moves it to confirmed.
// The availability check staff ran while picking tables may be stale by the
// time they confirm, so the conflict check is re-run here while holding the
// per-table locks, and the booking update plus every table status write
// commit in one transaction. On any failure nothing is mutated.
func (s *BookingService) Confirm(bookingID uint, tableIDs []uint) (*models.Booking, error) {
	if len(tableIDs) == 0 {
		return nil, ErrNoTablesGiven
	}

	release := s.locks.Acquire(tableIDs)
	defer release()

	booking, err := s.getBooking(bookingID)
	if err != nil {
		return nil, err
	}
	if booking.Status != models.BookingPending {
		return nil, ErrNotPending
	}

	totalCapacity := 0
	tables := make([]models.Table, 0, len(tableIDs))
	for _, id := range tableIDs {
		table, err := s.Tables.FindByID(id)
		if err != nil {
			return nil, ErrTableNotFound
		}
		if table.RestaurantID != booking.RestaurantID {
			return nil, ErrTableNotInRestaurant
		}
		if !table.IsActive {
			return nil, ErrTableInactive
		}
		totalCapacity += table.Capacity
		tables = append(tables, *table)
	}
	if totalCapacity < booking.PartySize {
		return nil, ErrInsufficientCapacity
	}

	// Conflict re-check for the booking's exact window, ignoring the booking
	// itself in case of a retried confirm.
	requestStart := utils.ToMinutes(booking.StartTime)
	requestEnd := utils.ToMinutes(booking.EndTime)
	conflicts, err := s.Availability.ConflictingTables(
		booking.RestaurantID, booking.Date, requestStart, requestEnd,
		DefaultBufferMinutes, tableIDs, booking.ID)
	if err != nil {
		return nil, err
	}
	if len(conflicts) > 0 {
		return nil, ErrTableConflict
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		affected, err := s.Bookings.UpdateStatusGuard(tx, booking.ID, models.BookingPending, models.BookingConfirmed, nil)
		if err != nil {
			return err
		}
		if affected == 0 {
			return ErrStaleBooking
		}
		if err := s.Bookings.ReplaceAssignments(tx, booking.ID, tableIDs); err != nil {
			return err
		}
		for _, t := range tables {
			if _, err := s.Tables.UpdateStatus(tx, t.ID, models.TableReserved); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	updated, err := s.Bookings.FindByID(booking.ID)
	if err != nil {
		return nil, err
	}
	utils.InfoLogger.Printf("Booking %s confirmed on %d table(s)", updated.Reference, len(tableIDs))
	s.Hub.Publish(events.EventBookingConfirmed, updated.RestaurantID, *updated)
	return updated, nil
}

// MarkSeated records the party's arrival: confirmed -> seated, every
// assigned table goes occupied.
func (s *BookingService) MarkSeated(bookingID uint) (*models.Booking, error) {
	return s.cascade(bookingID, tableCascade{
		from:        []string{models.BookingConfirmed},
		to:          models.BookingSeated,
		tableStatus: models.TableOccupied,
		wrongState:  ErrNotConfirmed,
		event:       events.EventBookingSeated,
	})
}

// Complete closes out a seated (or confirmed, for parties that left without
// being marked seated) booking and frees the tables.
func (s *BookingService) Complete(bookingID uint) (*models.Booking, error) {
	return s.cascade(bookingID, tableCascade{
		from:        []string{models.BookingSeated, models.BookingConfirmed},
		to:          models.BookingCompleted,
		tableStatus: models.TableAvailable,
		wrongState:  ErrNotSeatable,
		event:       events.EventBookingCompleted,
	})
}

// MarkNoShow releases the tables of a confirmed booking whose party never
// arrived.
func (s *BookingService) MarkNoShow(bookingID uint) (*models.Booking, error) {
	return s.cascade(bookingID, tableCascade{
		from:        []string{models.BookingConfirmed},
		to:          models.BookingNoShow,
		tableStatus: models.TableAvailable,
		wrongState:  ErrNotConfirmed,
		event:       events.EventBookingNoShow,
	})
}

type tableCascade struct {
	from        []string
	to          string
	tableStatus string
	wrongState  error
	event       string
}

// cascade performs a guarded status transition and applies the table status
// to every assigned table, all in one transaction.
func (s *BookingService) cascade(bookingID uint, cascade tableCascade) (*models.Booking, error) {
	booking, err := s.getBooking(bookingID)
	if err != nil {
		return nil, err
	}

	from := ""
	for _, st := range cascade.from {
		if booking.Status == st {
			from = st
			break
		}
	}
	if from == "" {
		return nil, cascade.wrongState
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		affected, err := s.Bookings.UpdateStatusGuard(tx, booking.ID, from, cascade.to, nil)
		if err != nil {
			return err
		}
		if affected == 0 {
			return ErrStaleBooking
		}
		for _, bt := range booking.Tables {
			if _, err := s.Tables.UpdateStatus(tx, bt.TableID, cascade.tableStatus); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	updated, err := s.Bookings.FindByID(booking.ID)
	if err != nil {
		return nil, err
	}
	utils.InfoLogger.Printf("Booking %s -> %s", updated.Reference, cascade.to)
	s.Hub.Publish(cascade.event, updated.RestaurantID, *updated)
	return updated, nil
}
