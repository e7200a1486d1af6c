package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/neggmmm/brandbite-sub000/models"
	"github.com/neggmmm/brandbite-sub000/services"
)

func TestSuggestTablesCombinesSmallestFirst(t *testing.T) {
	db := setupTestDB(t)
	r := seedRestaurant(t, db)
	seedTable(t, db, r.ID, "A1", 4)
	seedTable(t, db, r.ID, "B1", 2)

	planner := services.NewTablePlanner(services.NewAvailabilityService(db))
	res, err := planner.SuggestTables(r.ID, "2024-06-01", "18:00", 6, 120)
	assert.NoError(t, err)
	assert.Len(t, res.Tables, 2)
	assert.Equal(t, 6, res.TotalCapacity)
	assert.Empty(t, res.Message)
	// Smallest-first packing.
	assert.Equal(t, 2, res.Tables[0].Capacity)
	assert.Equal(t, 4, res.Tables[1].Capacity)
}

func TestSuggestTablesStopsWhenCovered(t *testing.T) {
	db := setupTestDB(t)
	r := seedRestaurant(t, db)
	seedTable(t, db, r.ID, "A1", 2)
	seedTable(t, db, r.ID, "B1", 4)
	seedTable(t, db, r.ID, "C1", 8)

	planner := services.NewTablePlanner(services.NewAvailabilityService(db))
	res, err := planner.SuggestTables(r.ID, "2024-06-01", "18:00", 5, 120)
	assert.NoError(t, err)
	assert.Len(t, res.Tables, 2)
	assert.Equal(t, 6, res.TotalCapacity)
}

func TestSuggestTablesNoneAvailable(t *testing.T) {
	db := setupTestDB(t)
	r := seedRestaurant(t, db)
	tableA := seedTable(t, db, r.ID, "A1", 4)
	seedBooking(t, db, r.ID, "2024-06-01", "18:00", "20:00", models.BookingConfirmed, tableA.ID)

	planner := services.NewTablePlanner(services.NewAvailabilityService(db))
	res, err := planner.SuggestTables(r.ID, "2024-06-01", "18:30", 2, 120)
	assert.NoError(t, err)
	assert.Empty(t, res.Tables)
	assert.Zero(t, res.TotalCapacity)
	assert.NotEmpty(t, res.Message)
}

func TestSuggestTablesBestPartialSet(t *testing.T) {
	db := setupTestDB(t)
	r := seedRestaurant(t, db)
	seedTable(t, db, r.ID, "A1", 2)
	seedTable(t, db, r.ID, "B1", 2)

	planner := services.NewTablePlanner(services.NewAvailabilityService(db))
	res, err := planner.SuggestTables(r.ID, "2024-06-01", "18:00", 10, 120)
	assert.NoError(t, err)
	assert.Len(t, res.Tables, 2)
	assert.Equal(t, 4, res.TotalCapacity)
	assert.NotEmpty(t, res.Message, "insufficient capacity must be flagged, callers reject before confirm")
}
