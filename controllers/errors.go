package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/neggmmm/brandbite-sub000/services"
	"github.com/neggmmm/brandbite-sub000/utils"
)

var ErrNoPermission = errors.New("you do not have permission for this action")

// respondServiceError maps the service error taxonomy onto HTTP statuses:
// not-found 404, conflicts 409, state preconditions 422, validation 400,
// anything unrecognized 500.
func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrBookingNotFound),
		errors.Is(err, services.ErrTableNotFound),
		errors.Is(err, services.ErrRestaurantNotFound):
		utils.RespondError(c, http.StatusNotFound, err)
	case errors.Is(err, services.ErrTableConflict),
		errors.Is(err, services.ErrStaleBooking),
		errors.Is(err, services.ErrTableHasActiveBooking):
		utils.RespondError(c, http.StatusConflict, err)
	case errors.Is(err, services.ErrNotPending),
		errors.Is(err, services.ErrNotConfirmed),
		errors.Is(err, services.ErrNotSeatable),
		errors.Is(err, services.ErrTableNotInRestaurant),
		errors.Is(err, services.ErrTableInactive),
		errors.Is(err, services.ErrInsufficientCapacity),
		errors.Is(err, services.ErrNotBookingOwner),
		errors.Is(err, services.ErrStatusNotStaffSet):
		utils.RespondError(c, http.StatusUnprocessableEntity, err)
	case errors.Is(err, services.ErrMissingContact),
		errors.Is(err, services.ErrInvalidPartySize),
		errors.Is(err, services.ErrInvalidCapacity),
		errors.Is(err, services.ErrDateInPast),
		errors.Is(err, services.ErrPartyTooLarge),
		errors.Is(err, services.ErrCrossMidnight),
		errors.Is(err, services.ErrOutsideHours),
		errors.Is(err, services.ErrNoTablesGiven):
		utils.RespondError(c, http.StatusBadRequest, err)
	default:
		utils.ErrorLogger.Printf("unexpected error: %v", err)
		utils.RespondError(c, http.StatusInternalServerError, err)
	}
}
