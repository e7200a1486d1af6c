package services

import (
	"gorm.io/gorm"

	"github.com/neggmmm/brandbite-sub000/models"
	"github.com/neggmmm/brandbite-sub000/repository"
	"github.com/neggmmm/brandbite-sub000/utils"
)

const (
	DefaultDurationMinutes = 120
	DefaultBufferMinutes   = 15
)

// blockingStatuses are the booking statuses that occupy a table for conflict
// detection. Pending bookings hold nothing; terminal bookings never block.
var blockingStatuses = []string{models.BookingConfirmed, models.BookingSeated}

type AvailabilityService struct {
	Tables   *repository.TableRepository
	Bookings *repository.BookingRepository
}

func NewAvailabilityService(db *gorm.DB) *AvailabilityService {
	return &AvailabilityService{
		Tables:   repository.NewTableRepository(db),
		Bookings: repository.NewBookingRepository(db),
	}
}

// CheckAvailability returns the active tables of the restaurant that can seat
// partySize and have no conflicting booking in the requested window. The
// buffer widens each existing booking's window on both sides for turnover;
// the incoming request itself is not widened. Table.Status is deliberately
// ignored here: bookings are the source of truth, the status field is a
// cached hint that can lag multi-step workflows.
func (s *AvailabilityService) CheckAvailability(restaurantID uint, date, startTime string, partySize, durationMinutes, bufferMinutes int) ([]models.Table, error) {
	if durationMinutes <= 0 {
		durationMinutes = DefaultDurationMinutes
	}
	if bufferMinutes < 0 {
		bufferMinutes = DefaultBufferMinutes
	}

	candidates, err := s.Tables.Find(repository.TableFilter{
		RestaurantID: restaurantID,
		ActiveOnly:   true,
		MinCapacity:  partySize,
	})
	if err != nil {
		return nil, err
	}
	if len(candidates) == 0 {
		return []models.Table{}, nil
	}

	requestStart := utils.ToMinutes(startTime)
	requestEnd := requestStart + durationMinutes

	blocked, err := s.blockedTables(restaurantID, date, requestStart, requestEnd, bufferMinutes, 0)
	if err != nil {
		return nil, err
	}

	available := make([]models.Table, 0, len(candidates))
	for _, t := range candidates {
		if !blocked[t.ID] {
			available = append(available, t)
		}
	}
	return available, nil
}

// ConflictingTables reports which of the given tables have a booking
// overlapping [start, start+duration) on date, with buffer applied to the
// existing bookings. excludeBookingID lets a confirm re-check ignore the
// booking being confirmed.
func (s *AvailabilityService) ConflictingTables(restaurantID uint, date string, requestStart, requestEnd, bufferMinutes int, tableIDs []uint, excludeBookingID uint) ([]uint, error) {
	blocked, err := s.blockedTables(restaurantID, date, requestStart, requestEnd, bufferMinutes, excludeBookingID)
	if err != nil {
		return nil, err
	}
	var conflicts []uint
	for _, id := range tableIDs {
		if blocked[id] {
			conflicts = append(conflicts, id)
		}
	}
	return conflicts, nil
}

func (s *AvailabilityService) blockedTables(restaurantID uint, date string, requestStart, requestEnd, bufferMinutes int, excludeBookingID uint) (map[uint]bool, error) {
	bookings, err := s.Bookings.Find(repository.BookingFilter{
		RestaurantID: restaurantID,
		Date:         date,
		Statuses:     blockingStatuses,
	})
	if err != nil {
		return nil, err
	}

	blocked := make(map[uint]bool)
	for _, b := range bookings {
		if b.ID == excludeBookingID {
			continue
		}
		bookingStart := utils.ToMinutes(b.StartTime) - bufferMinutes
		bookingEnd := utils.ToMinutes(b.EndTime) + bufferMinutes
		if !utils.IntervalsOverlap(requestStart, requestEnd, bookingStart, bookingEnd) {
			continue
		}
		for _, bt := range b.Tables {
			blocked[bt.TableID] = true
		}
	}
	return blocked, nil
}
