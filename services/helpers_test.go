package services_test

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/neggmmm/brandbite-sub000/events"
	"github.com/neggmmm/brandbite-sub000/models"
	"github.com/neggmmm/brandbite-sub000/services"
	"github.com/neggmmm/brandbite-sub000/utils"
)

var seedCounter atomic.Int64

// futureDate gives the create path a date that passes the past-date check.
func futureDate() string {
	return time.Now().AddDate(0, 0, 7).Format("2006-01-02")
}

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	utils.InitLogger()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}
	err = db.AutoMigrate(
		&models.Restaurant{},
		&models.Table{},
		&models.Booking{},
		&models.BookingTable{},
		&models.Notification{},
	)
	if err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return db
}

func seedRestaurant(t *testing.T, db *gorm.DB) models.Restaurant {
	t.Helper()
	r := models.Restaurant{
		Name:         "Brandbite",
		OpeningTime:  "10:00",
		ClosingTime:  "23:00",
		MaxPartySize: 20,
	}
	if err := db.Create(&r).Error; err != nil {
		t.Fatalf("seed restaurant: %v", err)
	}
	return r
}

func seedTable(t *testing.T, db *gorm.DB, restaurantID uint, number string, capacity int) models.Table {
	t.Helper()
	table := models.Table{
		RestaurantID: restaurantID,
		TableNumber:  number,
		Capacity:     capacity,
		IsActive:     true,
		Status:       models.TableAvailable,
	}
	if err := db.Create(&table).Error; err != nil {
		t.Fatalf("seed table: %v", err)
	}
	return table
}

// seedBooking inserts a booking directly, bypassing the lifecycle, for
// availability fixtures.
func seedBooking(t *testing.T, db *gorm.DB, restaurantID uint, date, start, end, status string, tableIDs ...uint) models.Booking {
	t.Helper()
	b := models.Booking{
		Reference:     fmt.Sprintf("BK-SEED-%d", seedCounter.Add(1)),
		RestaurantID:  restaurantID,
		Date:          date,
		StartTime:     start,
		EndTime:       end,
		PartySize:     2,
		CustomerName:  "Dana Diner",
		CustomerEmail: "dana@example.com",
		Status:        status,
	}
	if err := db.Create(&b).Error; err != nil {
		t.Fatalf("seed booking: %v", err)
	}
	for i, id := range tableIDs {
		bt := models.BookingTable{BookingID: b.ID, TableID: id, Position: i}
		if err := db.Create(&bt).Error; err != nil {
			t.Fatalf("seed booking table: %v", err)
		}
	}
	return b
}

func newBookingService(db *gorm.DB) *services.BookingService {
	return services.NewBookingService(db, events.NewHub())
}
