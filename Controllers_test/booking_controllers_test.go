package Controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/neggmmm/brandbite-sub000/controllers"
	"github.com/neggmmm/brandbite-sub000/events"
	"github.com/neggmmm/brandbite-sub000/models"
	"github.com/neggmmm/brandbite-sub000/services"
	"github.com/neggmmm/brandbite-sub000/utils"
)

// futureDate keeps request fixtures ahead of the server date.
func futureDate() string {
	return time.Now().AddDate(0, 0, 7).Format("2006-01-02")
}

func setupTestDBForBookings(t *testing.T) *gorm.DB {
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
	db.Create(&models.Restaurant{Name: "Brandbite", OpeningTime: "10:00", ClosingTime: "23:00", MaxPartySize: 20})
	return db
}

func setupBookingRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.Default()

	bookingService := services.NewBookingService(db, events.NewHub())
	planner := services.NewTablePlanner(bookingService.Availability)
	bookingCtrl := controllers.NewBookingController(bookingService, bookingService.Availability, planner)

	router.POST("/restaurants/:restaurant_id/bookings", bookingCtrl.CreateBooking)
	router.GET("/restaurants/:restaurant_id/availability", bookingCtrl.CheckAvailability)
	router.GET("/restaurants/:restaurant_id/suggest-tables", bookingCtrl.SuggestTables)
	router.POST("/bookings/:booking_id/confirm", bookingCtrl.ConfirmBooking)
	router.POST("/bookings/:booking_id/cancel", bookingCtrl.CancelBooking)
	router.GET("/bookings/:booking_id", bookingCtrl.GetBooking)
	return router
}

func postJSON(t *testing.T, router *gin.Engine, url string, payload interface{}) *httptest.ResponseRecorder {
	body, err := json.Marshal(payload)
	assert.NoError(t, err)
	req, err := http.NewRequest("POST", url, bytes.NewBuffer(body))
	assert.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestCreateBookingEndpoint(t *testing.T) {
	db := setupTestDBForBookings(t)
	router := setupBookingRouter(db)

	w := postJSON(t, router, "/restaurants/1/bookings", map[string]interface{}{
		"date":           futureDate(),
		"start_time":     "18:00",
		"party_size":     4,
		"customer_name":  "Dana Diner",
		"customer_email": "dana@example.com",
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "Booking created", response["message"])
	data := response["data"].(map[string]interface{})
	assert.Equal(t, "pending", data["status"])
	assert.Equal(t, "20:00", data["end_time"])
}

func TestCreateBookingEndpointRejectsBadTime(t *testing.T) {
	db := setupTestDBForBookings(t)
	router := setupBookingRouter(db)

	w := postJSON(t, router, "/restaurants/1/bookings", map[string]interface{}{
		"date":           futureDate(),
		"start_time":     "6pm",
		"party_size":     4,
		"customer_name":  "Dana Diner",
		"customer_email": "dana@example.com",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateBookingEndpointRejectsPastDate(t *testing.T) {
	db := setupTestDBForBookings(t)
	router := setupBookingRouter(db)

	w := postJSON(t, router, "/restaurants/1/bookings", map[string]interface{}{
		"date":           "2020-01-01",
		"start_time":     "18:00",
		"party_size":     4,
		"customer_name":  "Dana Diner",
		"customer_email": "dana@example.com",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var count int64
	db.Model(&models.Booking{}).Count(&count)
	assert.Zero(t, count)
}

func TestAvailabilityEndpoint(t *testing.T) {
	db := setupTestDBForBookings(t)
	db.Create(&models.Table{RestaurantID: 1, TableNumber: "A1", Capacity: 4, IsActive: true, Status: models.TableAvailable})
	router := setupBookingRouter(db)

	req, _ := http.NewRequest("GET", "/restaurants/1/availability?date=2024-06-01&time=18:00&party_size=4", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	data := response["data"].([]interface{})
	assert.Len(t, data, 1)

	// Malformed time fails fast at the boundary.
	req, _ = http.NewRequest("GET", "/restaurants/1/availability?date=2024-06-01&time=garbage&party_size=4", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestConfirmEndpointConflict(t *testing.T) {
	db := setupTestDBForBookings(t)
	table := models.Table{RestaurantID: 1, TableNumber: "A1", Capacity: 4, IsActive: true, Status: models.TableAvailable}
	db.Create(&table)
	router := setupBookingRouter(db)

	mkBooking := func(email string) uint {
		w := postJSON(t, router, "/restaurants/1/bookings", map[string]interface{}{
			"date":           futureDate(),
			"start_time":     "18:00",
			"party_size":     2,
			"customer_name":  "Racer",
			"customer_email": email,
		})
		assert.Equal(t, http.StatusCreated, w.Code)
		var response map[string]interface{}
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		return uint(response["data"].(map[string]interface{})["id"].(float64))
	}

	first := mkBooking("one@example.com")
	second := mkBooking("two@example.com")

	w := postJSON(t, router, fmt.Sprintf("/bookings/%d/confirm", first), map[string]interface{}{
		"table_ids": []uint{table.ID},
	})
	assert.Equal(t, http.StatusOK, w.Code)

	w = postJSON(t, router, fmt.Sprintf("/bookings/%d/confirm", second), map[string]interface{}{
		"table_ids": []uint{table.ID},
	})
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestCancelEndpointOwnership(t *testing.T) {
	db := setupTestDBForBookings(t)
	router := setupBookingRouter(db)

	w := postJSON(t, router, "/restaurants/1/bookings", map[string]interface{}{
		"date":           futureDate(),
		"start_time":     "18:00",
		"party_size":     2,
		"customer_name":  "Right Person",
		"customer_email": "right@email.com",
	})
	assert.Equal(t, http.StatusCreated, w.Code)
	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	id := uint(response["data"].(map[string]interface{})["id"].(float64))

	w = postJSON(t, router, fmt.Sprintf("/bookings/%d/cancel", id), map[string]string{"email": "wrong@email.com"})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	w = postJSON(t, router, fmt.Sprintf("/bookings/%d/cancel", id), map[string]string{"email": "right@email.com"})
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestSuggestTablesEndpoint(t *testing.T) {
	db := setupTestDBForBookings(t)
	db.Create(&models.Table{RestaurantID: 1, TableNumber: "A1", Capacity: 4, IsActive: true, Status: models.TableAvailable})
	db.Create(&models.Table{RestaurantID: 1, TableNumber: "B1", Capacity: 2, IsActive: true, Status: models.TableAvailable})
	router := setupBookingRouter(db)

	req, _ := http.NewRequest("GET", "/restaurants/1/suggest-tables?date=2024-06-01&time=18:00&party_size=6", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	data := response["data"].(map[string]interface{})
	assert.Equal(t, float64(6), data["total_capacity"])
	assert.Len(t, data["tables"].([]interface{}), 2)
}
