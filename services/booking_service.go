package services

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/neggmmm/brandbite-sub000/events"
	"github.com/neggmmm/brandbite-sub000/models"
	"github.com/neggmmm/brandbite-sub000/repository"
	"github.com/neggmmm/brandbite-sub000/utils"
)

// BookingService owns the booking state machine. It is the only writer of
// Booking.Status, and the only component allowed to cascade table status as
// a side effect of a booking transition.
type BookingService struct {
	DB           *gorm.DB
	Bookings     *repository.BookingRepository
	Tables       *repository.TableRepository
	Availability *AvailabilityService
	Hub          *events.Hub

	locks *tableLocks
}

func NewBookingService(db *gorm.DB, hub *events.Hub) *BookingService {
	return &BookingService{
		DB:           db,
		Bookings:     repository.NewBookingRepository(db),
		Tables:       repository.NewTableRepository(db),
		Availability: NewAvailabilityService(db),
		Hub:          hub,
		locks:        newTableLocks(),
	}
}

type CreateBookingInput struct {
	RestaurantID    uint
	Date            string
	StartTime       string
	EndTime         string // optional, derived from duration when empty
	DurationMinutes int
	PartySize       int
	CustomerName    string
	CustomerEmail   string
	CustomerPhone   string
	Source          string
	Notes           string
}

// Create validates the request and stores a pending booking. No table is
// assigned at this point; staff pick tables at confirmation.
func (s *BookingService) Create(in CreateBookingInput) (*models.Booking, error) {
	if strings.TrimSpace(in.CustomerName) == "" || strings.TrimSpace(in.CustomerEmail) == "" {
		return nil, ErrMissingContact
	}
	if in.PartySize < 1 {
		return nil, ErrInvalidPartySize
	}
	if _, err := utils.ParseDate(in.Date); err != nil {
		return nil, err
	}
	// ISO dates compare correctly as strings.
	if in.Date < time.Now().Format("2006-01-02") {
		return nil, ErrDateInPast
	}
	start, err := utils.ParseClock(in.StartTime)
	if err != nil {
		return nil, err
	}

	var restaurant models.Restaurant
	if err := s.DB.First(&restaurant, in.RestaurantID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRestaurantNotFound
		}
		return nil, err
	}
	if in.PartySize > restaurant.MaxPartySize {
		return nil, ErrPartyTooLarge
	}

	duration := in.DurationMinutes
	if duration <= 0 {
		duration = DefaultDurationMinutes
	}
	endTime := in.EndTime
	if endTime == "" {
		endTime = utils.AddMinutes(in.StartTime, duration)
	}
	end, err := utils.ParseClock(endTime)
	if err != nil {
		return nil, err
	}
	// AddMinutes wraps at midnight; a derived or explicit end at or before
	// the start means the window crossed into the next day.
	if end <= start {
		return nil, ErrCrossMidnight
	}
	if start < utils.ToMinutes(restaurant.OpeningTime) || end > utils.ToMinutes(restaurant.ClosingTime) {
		return nil, ErrOutsideHours
	}

	source := in.Source
	if source == "" {
		source = models.SourceOnline
	}

	booking := models.Booking{
		Reference:     newReference(),
		RestaurantID:  in.RestaurantID,
		Date:          in.Date,
		StartTime:     in.StartTime,
		EndTime:       endTime,
		PartySize:     in.PartySize,
		CustomerName:  strings.TrimSpace(in.CustomerName),
		CustomerEmail: strings.TrimSpace(in.CustomerEmail),
		CustomerPhone: strings.TrimSpace(in.CustomerPhone),
		Source:        source,
		Notes:         in.Notes,
		Status:        models.BookingPending,
	}
	if err := s.Bookings.Create(nil, &booking); err != nil {
		return nil, err
	}

	utils.InfoLogger.Printf("Booking %s created: %s %s-%s party=%d", booking.Reference, booking.Date, booking.StartTime, booking.EndTime, booking.PartySize)
	s.Hub.Publish(events.EventBookingNew, booking.RestaurantID, booking)
	return &booking, nil
}

// Reject cancels a pending booking on behalf of staff, appending the reason
// to the notes. No table was ever assigned, so there is no table side effect.
func (s *BookingService) Reject(bookingID uint, reason string) (*models.Booking, error) {
	booking, err := s.getBooking(bookingID)
	if err != nil {
		return nil, err
	}
	if booking.Status != models.BookingPending {
		return nil, ErrNotPending
	}

	notes := booking.Notes
	if reason != "" {
		if notes != "" {
			notes += "\n"
		}
		notes += "Rejected: " + reason
	}
	affected, err := s.Bookings.UpdateStatusGuard(nil, booking.ID, models.BookingPending, models.BookingCancelled,
		map[string]interface{}{"notes": notes})
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, ErrStaleBooking
	}

	updated, err := s.Bookings.FindByID(booking.ID)
	if err != nil {
		return nil, err
	}
	utils.InfoLogger.Printf("Booking %s rejected: %s", updated.Reference, reason)
	s.Hub.Publish(events.EventBookingRejected, updated.RestaurantID, *updated)
	return updated, nil
}

// Cancel lets the customer withdraw their own pending booking. The requester
// email must match the booking; comparison is case-insensitive.
func (s *BookingService) Cancel(bookingID uint, requesterEmail string) (*models.Booking, error) {
	booking, err := s.getBooking(bookingID)
	if err != nil {
		return nil, err
	}
	if booking.Status != models.BookingPending {
		return nil, ErrNotPending
	}
	if !strings.EqualFold(strings.TrimSpace(requesterEmail), booking.CustomerEmail) {
		return nil, ErrNotBookingOwner
	}

	affected, err := s.Bookings.UpdateStatusGuard(nil, booking.ID, models.BookingPending, models.BookingCancelled, nil)
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, ErrStaleBooking
	}

	updated, err := s.Bookings.FindByID(booking.ID)
	if err != nil {
		return nil, err
	}
	utils.InfoLogger.Printf("Booking %s cancelled by customer", updated.Reference)
	s.Hub.Publish(events.EventBookingCancelled, updated.RestaurantID, *updated)
	return updated, nil
}

func (s *BookingService) Get(bookingID uint) (*models.Booking, error) {
	return s.getBooking(bookingID)
}

func (s *BookingService) List(f repository.BookingFilter) ([]models.Booking, error) {
	return s.Bookings.Find(f)
}

func (s *BookingService) getBooking(id uint) (*models.Booking, error) {
	booking, err := s.Bookings.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	return booking, nil
}

func newReference() string {
	id := uuid.New().String()
	return "BK-" + strings.ToUpper(id[:8])
}
