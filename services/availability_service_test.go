package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/neggmmm/brandbite-sub000/models"
	"github.com/neggmmm/brandbite-sub000/services"
)

func TestCheckAvailabilityNoBookings(t *testing.T) {
	db := setupTestDB(t)
	r := seedRestaurant(t, db)
	tableA := seedTable(t, db, r.ID, "A1", 4)

	svc := services.NewAvailabilityService(db)
	tables, err := svc.CheckAvailability(r.ID, "2024-06-01", "18:00", 4, 120, 15)
	assert.NoError(t, err)
	if assert.Len(t, tables, 1) {
		assert.Equal(t, tableA.ID, tables[0].ID)
	}
}

func TestCheckAvailabilityOverlapExcluded(t *testing.T) {
	db := setupTestDB(t)
	r := seedRestaurant(t, db)
	tableA := seedTable(t, db, r.ID, "A1", 4)
	seedBooking(t, db, r.ID, "2024-06-01", "18:00", "20:00", models.BookingConfirmed, tableA.ID)

	svc := services.NewAvailabilityService(db)

	// 19:30-20:30 vs buffered 17:45-20:15 -> conflict.
	tables, err := svc.CheckAvailability(r.ID, "2024-06-01", "19:30", 2, 60, 15)
	assert.NoError(t, err)
	assert.Empty(t, tables)

	// 20:15 starts exactly at the buffered end; half-open, no overlap.
	tables, err = svc.CheckAvailability(r.ID, "2024-06-01", "20:15", 2, 60, 15)
	assert.NoError(t, err)
	assert.Len(t, tables, 1)
}

func TestCheckAvailabilityBufferBoundary(t *testing.T) {
	db := setupTestDB(t)
	r := seedRestaurant(t, db)
	seedTable(t, db, r.ID, "A1", 4)
	seedBooking(t, db, r.ID, "2024-06-01", "18:00", "20:00", models.BookingConfirmed, 1)

	svc := services.NewAvailabilityService(db)

	// Request ends exactly when the booking starts: free at buffer=0 ...
	tables, err := svc.CheckAvailability(r.ID, "2024-06-01", "17:00", 2, 60, 0)
	assert.NoError(t, err)
	assert.Len(t, tables, 1)

	// ... but any buffer pulls the booking start earlier than the request end.
	tables, err = svc.CheckAvailability(r.ID, "2024-06-01", "17:00", 2, 60, 15)
	assert.NoError(t, err)
	assert.Empty(t, tables)
}

func TestCheckAvailabilityStatusFilters(t *testing.T) {
	db := setupTestDB(t)
	r := seedRestaurant(t, db)
	tableA := seedTable(t, db, r.ID, "A1", 4)

	for _, status := range []string{
		models.BookingPending,
		models.BookingCancelled,
		models.BookingCompleted,
		models.BookingNoShow,
	} {
		seedBooking(t, db, r.ID, "2024-06-01", "18:00", "20:00", status, tableA.ID)
	}

	// Table.Status lies about the world on purpose; availability must not care.
	_, err := services.NewAvailabilityService(db).Tables.UpdateStatus(nil, tableA.ID, models.TableOccupied)
	assert.NoError(t, err)

	svc := services.NewAvailabilityService(db)
	tables, err := svc.CheckAvailability(r.ID, "2024-06-01", "18:30", 2, 60, 15)
	assert.NoError(t, err)
	assert.Len(t, tables, 1, "non-blocking statuses and stale table status must not exclude the table")
}

func TestCheckAvailabilityCandidateFilters(t *testing.T) {
	db := setupTestDB(t)
	r := seedRestaurant(t, db)
	seedTable(t, db, r.ID, "SMALL", 2)
	big := seedTable(t, db, r.ID, "BIG", 6)
	inactive := seedTable(t, db, r.ID, "CLOSED", 8)
	db.Model(&models.Table{}).Where("id = ?", inactive.ID).Update("is_active", false)

	other := seedRestaurant(t, db)
	seedTable(t, db, other.ID, "ELSEWHERE", 10)

	svc := services.NewAvailabilityService(db)
	tables, err := svc.CheckAvailability(r.ID, "2024-06-01", "18:00", 4, 120, 15)
	assert.NoError(t, err)
	if assert.Len(t, tables, 1) {
		assert.Equal(t, big.ID, tables[0].ID)
	}
}

func TestCheckAvailabilityMultiTableBookingBlocksAll(t *testing.T) {
	db := setupTestDB(t)
	r := seedRestaurant(t, db)
	tableA := seedTable(t, db, r.ID, "A1", 2)
	tableB := seedTable(t, db, r.ID, "B1", 2)
	seedBooking(t, db, r.ID, "2024-06-01", "18:00", "20:00", models.BookingConfirmed, tableA.ID, tableB.ID)

	svc := services.NewAvailabilityService(db)
	tables, err := svc.CheckAvailability(r.ID, "2024-06-01", "19:00", 2, 60, 15)
	assert.NoError(t, err)
	assert.Empty(t, tables, "every table of a multi-table booking must block")
}

func TestCheckAvailabilityIdempotentRead(t *testing.T) {
	db := setupTestDB(t)
	r := seedRestaurant(t, db)
	seedTable(t, db, r.ID, "A1", 4)
	seedTable(t, db, r.ID, "B1", 6)
	seedBooking(t, db, r.ID, "2024-06-01", "18:00", "20:00", models.BookingConfirmed, 1)

	svc := services.NewAvailabilityService(db)
	first, err := svc.CheckAvailability(r.ID, "2024-06-01", "18:30", 2, 90, 15)
	assert.NoError(t, err)
	second, err := svc.CheckAvailability(r.ID, "2024-06-01", "18:30", 2, 90, 15)
	assert.NoError(t, err)
	assert.Equal(t, first, second)
}
