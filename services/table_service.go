package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/neggmmm/brandbite-sub000/events"
	"github.com/neggmmm/brandbite-sub000/models"
	"github.com/neggmmm/brandbite-sub000/repository"
	"github.com/neggmmm/brandbite-sub000/utils"
)

type TableService struct {
	DB       *gorm.DB
	Tables   *repository.TableRepository
	Bookings *repository.BookingRepository
	Hub      *events.Hub
}

func NewTableService(db *gorm.DB, hub *events.Hub) *TableService {
	return &TableService{
		DB:       db,
		Tables:   repository.NewTableRepository(db),
		Bookings: repository.NewBookingRepository(db),
		Hub:      hub,
	}
}

type CreateTableInput struct {
	RestaurantID uint
	TableNumber  string
	Capacity     int
	Location     string
}

func (s *TableService) Create(in CreateTableInput) (*models.Table, error) {
	if in.Capacity < 1 {
		return nil, ErrInvalidCapacity
	}
	table := models.Table{
		RestaurantID: in.RestaurantID,
		TableNumber:  in.TableNumber,
		Capacity:     in.Capacity,
		Location:     in.Location,
		IsActive:     true,
		Status:       models.TableAvailable,
	}
	if err := s.Tables.Create(&table); err != nil {
		return nil, err
	}
	utils.InfoLogger.Printf("Table %s created (capacity=%d)", table.TableNumber, table.Capacity)
	s.Hub.Publish(events.EventTableUpdated, table.RestaurantID, table)
	return &table, nil
}

func (s *TableService) List(f repository.TableFilter) ([]models.Table, error) {
	return s.Tables.Find(f)
}

func (s *TableService) Get(id uint) (*models.Table, error) {
	table, err := s.Tables.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTableNotFound
		}
		return nil, err
	}
	return table, nil
}

type UpdateTableInput struct {
	TableNumber *string
	Capacity    *int
	Location    *string
	IsActive    *bool
}

func (s *TableService) Update(id uint, in UpdateTableInput) (*models.Table, error) {
	if _, err := s.Get(id); err != nil {
		return nil, err
	}
	fields := map[string]interface{}{}
	if in.TableNumber != nil {
		fields["table_number"] = *in.TableNumber
	}
	if in.Capacity != nil {
		if *in.Capacity < 1 {
			return nil, ErrInvalidCapacity
		}
		fields["capacity"] = *in.Capacity
	}
	if in.Location != nil {
		fields["location"] = *in.Location
	}
	if in.IsActive != nil {
		fields["is_active"] = *in.IsActive
	}
	table, err := s.Tables.Update(nil, id, fields)
	if err != nil {
		return nil, err
	}
	s.Hub.Publish(events.EventTableUpdated, table.RestaurantID, *table)
	return table, nil
}

// SetStatus is the direct staff toggle. Staff only flip tables between
// cleaning and available; reserved/occupied are owned by the booking
// lifecycle.
func (s *TableService) SetStatus(id uint, status string) (*models.Table, error) {
	if status != models.TableAvailable && status != models.TableCleaning {
		return nil, ErrStatusNotStaffSet
	}
	if _, err := s.Get(id); err != nil {
		return nil, err
	}
	table, err := s.Tables.UpdateStatus(nil, id, status)
	if err != nil {
		return nil, err
	}
	utils.InfoLogger.Printf("Table %s status changed to %s", table.TableNumber, table.Status)
	s.Hub.Publish(events.EventTableUpdated, table.RestaurantID, *table)
	return table, nil
}

// Delete removes a table unless a confirmed or seated booking still
// references it.
func (s *TableService) Delete(id uint) (*models.Table, error) {
	if _, err := s.Get(id); err != nil {
		return nil, err
	}
	active, err := s.Bookings.HasActiveBookingForTable(id)
	if err != nil {
		return nil, err
	}
	if active {
		return nil, ErrTableHasActiveBooking
	}
	table, err := s.Tables.Delete(id)
	if err != nil {
		return nil, err
	}
	utils.InfoLogger.Printf("Table %s deleted", table.TableNumber)
	s.Hub.Publish(events.EventTableUpdated, table.RestaurantID, *table)
	return table, nil
}

// FloorPlanEntry pairs a table with its bookings still in play today.
type FloorPlanEntry struct {
	Table    models.Table     `json:"table"`
	Bookings []models.Booking `json:"bookings"`
}

// FloorPlan returns every table of the restaurant with the date's active
// bookings attached, for the staff floor view.
func (s *TableService) FloorPlan(restaurantID uint, date string) ([]FloorPlanEntry, error) {
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}
	tables, err := s.Tables.Find(repository.TableFilter{RestaurantID: restaurantID})
	if err != nil {
		return nil, err
	}
	bookings, err := s.Bookings.Find(repository.BookingFilter{
		RestaurantID: restaurantID,
		Date:         date,
		Statuses:     []string{models.BookingConfirmed, models.BookingSeated},
	})
	if err != nil {
		return nil, err
	}

	byTable := make(map[uint][]models.Booking)
	for _, b := range bookings {
		for _, bt := range b.Tables {
			byTable[bt.TableID] = append(byTable[bt.TableID], b)
		}
	}

	plan := make([]FloorPlanEntry, 0, len(tables))
	for _, t := range tables {
		entries := byTable[t.ID]
		if entries == nil {
			entries = []models.Booking{}
		}
		plan = append(plan, FloorPlanEntry{Table: t, Bookings: entries})
	}
	return plan, nil
}

// TableStats returns per-status table counts plus totals.
func (s *TableService) TableStats(restaurantID uint) (map[string]int64, error) {
	counts, err := s.Tables.CountByStatus(restaurantID)
	if err != nil {
		return nil, err
	}
	stats := map[string]int64{
		models.TableAvailable: 0,
		models.TableOccupied:  0,
		models.TableReserved:  0,
		models.TableCleaning:  0,
	}
	var total int64
	for status, n := range counts {
		stats[status] = n
		total += n
	}
	stats["total"] = total
	return stats, nil
}
