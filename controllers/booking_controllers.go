package controllers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/neggmmm/brandbite-sub000/repository"
	"github.com/neggmmm/brandbite-sub000/services"
	"github.com/neggmmm/brandbite-sub000/utils"
)

type BookingController struct {
	Bookings     *services.BookingService
	Availability *services.AvailabilityService
	Planner      *services.TablePlanner
}

func NewBookingController(bookings *services.BookingService, availability *services.AvailabilityService, planner *services.TablePlanner) *BookingController {
	return &BookingController{
		Bookings:     bookings,
		Availability: availability,
		Planner:      planner,
	}
}

// CreateBooking -> new pending booking (customer or staff entry)
func (bc *BookingController) CreateBooking(c *gin.Context) {
	restaurantID, ok := paramUint(c, "restaurant_id")
	if !ok {
		return
	}

	var req struct {
		Date            string `json:"date" binding:"required"`
		StartTime       string `json:"start_time" binding:"required"`
		EndTime         string `json:"end_time"`
		DurationMinutes int    `json:"duration_minutes"`
		PartySize       int    `json:"party_size" binding:"required"`
		CustomerName    string `json:"customer_name" binding:"required"`
		CustomerEmail   string `json:"customer_email" binding:"required,email"`
		CustomerPhone   string `json:"customer_phone"`
		Source          string `json:"source"`
		Notes           string `json:"notes"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	booking, err := bc.Bookings.Create(services.CreateBookingInput{
		RestaurantID:    restaurantID,
		Date:            req.Date,
		StartTime:       req.StartTime,
		EndTime:         req.EndTime,
		DurationMinutes: req.DurationMinutes,
		PartySize:       req.PartySize,
		CustomerName:    req.CustomerName,
		CustomerEmail:   req.CustomerEmail,
		CustomerPhone:   req.CustomerPhone,
		Source:          req.Source,
		Notes:           req.Notes,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusCreated, "Booking created", booking)
}

// GetBooking -> one booking with its table assignments
func (bc *BookingController) GetBooking(c *gin.Context) {
	id, ok := paramUint(c, "booking_id")
	if !ok {
		return
	}
	booking, err := bc.Bookings.Get(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Booking detail", booking)
}

// ListBookings -> restaurant bookings, optionally by date/status
func (bc *BookingController) ListBookings(c *gin.Context) {
	restaurantID, ok := paramUint(c, "restaurant_id")
	if !ok {
		return
	}
	filter := repository.BookingFilter{
		RestaurantID: restaurantID,
		Date:         c.Query("date"),
	}
	if status := c.Query("status"); status != "" {
		filter.Statuses = []string{status}
	}
	bookings, err := bc.Bookings.List(filter)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of bookings", bookings)
}

// CheckAvailability -> tables free for date/time/party size
func (bc *BookingController) CheckAvailability(c *gin.Context) {
	restaurantID, ok := paramUint(c, "restaurant_id")
	if !ok {
		return
	}
	date := c.Query("date")
	startTime := c.Query("time")
	if _, err := utils.ParseDate(date); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if _, err := utils.ParseClock(startTime); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	partySize, err := strconv.Atoi(c.DefaultQuery("party_size", "1"))
	if err != nil || partySize < 1 {
		respondServiceError(c, services.ErrInvalidPartySize)
		return
	}
	duration, _ := strconv.Atoi(c.DefaultQuery("duration_minutes", "0"))
	buffer, err := strconv.Atoi(c.DefaultQuery("buffer_minutes", "-1"))
	if err != nil {
		buffer = -1
	}

	tables, err := bc.Availability.CheckAvailability(restaurantID, date, startTime, partySize, duration, buffer)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Available tables", tables)
}

// SuggestTables -> greedy table set covering the party size
func (bc *BookingController) SuggestTables(c *gin.Context) {
	restaurantID, ok := paramUint(c, "restaurant_id")
	if !ok {
		return
	}
	date := c.Query("date")
	startTime := c.Query("time")
	if _, err := utils.ParseDate(date); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if _, err := utils.ParseClock(startTime); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	partySize, err := strconv.Atoi(c.Query("party_size"))
	if err != nil || partySize < 1 {
		respondServiceError(c, services.ErrInvalidPartySize)
		return
	}
	duration, _ := strconv.Atoi(c.DefaultQuery("duration_minutes", "0"))

	result, err := bc.Planner.SuggestTables(restaurantID, date, startTime, partySize, duration)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Table suggestion", result)
}

// ConfirmBooking -> staff assigns tables and confirms
func (bc *BookingController) ConfirmBooking(c *gin.Context) {
	id, ok := paramUint(c, "booking_id")
	if !ok {
		return
	}
	var req struct {
		TableIDs []uint `json:"table_ids" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	booking, err := bc.Bookings.Confirm(id, req.TableIDs)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Booking confirmed", booking)
}

// RejectBooking -> staff declines a pending booking
func (bc *BookingController) RejectBooking(c *gin.Context) {
	id, ok := paramUint(c, "booking_id")
	if !ok {
		return
	}
	var req struct {
		Reason string `json:"reason"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	booking, err := bc.Bookings.Reject(id, req.Reason)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Booking rejected", booking)
}

// MarkSeated -> party arrived
func (bc *BookingController) MarkSeated(c *gin.Context) {
	id, ok := paramUint(c, "booking_id")
	if !ok {
		return
	}
	booking, err := bc.Bookings.MarkSeated(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Booking seated", booking)
}

// CompleteBooking -> party left, tables freed
func (bc *BookingController) CompleteBooking(c *gin.Context) {
	id, ok := paramUint(c, "booking_id")
	if !ok {
		return
	}
	booking, err := bc.Bookings.Complete(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Booking completed", booking)
}

// MarkNoShow -> party never arrived
func (bc *BookingController) MarkNoShow(c *gin.Context) {
	id, ok := paramUint(c, "booking_id")
	if !ok {
		return
	}
	booking, err := bc.Bookings.MarkNoShow(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Booking marked no-show", booking)
}

// CancelBooking -> customer withdraws their own pending booking
func (bc *BookingController) CancelBooking(c *gin.Context) {
	id, ok := paramUint(c, "booking_id")
	if !ok {
		return
	}
	var req struct {
		Email string `json:"email" binding:"required,email"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	booking, err := bc.Bookings.Cancel(id, req.Email)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Booking cancelled", booking)
}

func paramUint(c *gin.Context, name string) (uint, bool) {
	v, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, fmt.Errorf("invalid %s", name))
		return 0, false
	}
	return uint(v), true
}
