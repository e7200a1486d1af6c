package services

import "errors"

// Validation errors: rejected before any store access.
var (
	ErrMissingContact   = errors.New("customer name and email are required")
	ErrInvalidPartySize = errors.New("party size must be at least 1")
	ErrInvalidCapacity  = errors.New("table capacity must be at least 1")
	ErrDateInPast       = errors.New("booking date is in the past")
	ErrPartyTooLarge    = errors.New("party size exceeds the restaurant maximum")
	ErrCrossMidnight    = errors.New("booking may not span midnight")
	ErrOutsideHours     = errors.New("requested time is outside opening hours")
)

// Not-found errors: unknown ids, distinct from state errors.
var (
	ErrBookingNotFound    = errors.New("booking not found")
	ErrTableNotFound      = errors.New("table not found")
	ErrRestaurantNotFound = errors.New("restaurant not found")
)

// Precondition/state errors: the entity exists but is in the wrong state for
// the requested transition.
var (
	ErrNotPending            = errors.New("only pending bookings can be confirmed or rejected")
	ErrNotConfirmed          = errors.New("only confirmed bookings can be seated or marked no-show")
	ErrNotSeatable           = errors.New("only seated or confirmed bookings can be completed")
	ErrNoTablesGiven         = errors.New("at least one table must be assigned")
	ErrTableNotInRestaurant  = errors.New("table does not belong to this restaurant")
	ErrTableInactive         = errors.New("table is not active")
	ErrInsufficientCapacity  = errors.New("assigned tables cannot seat the party")
	ErrNotBookingOwner       = errors.New("email does not match the booking owner")
	ErrTableHasActiveBooking = errors.New("table is referenced by an active booking")
	ErrStatusNotStaffSet     = errors.New("staff may only set a table to available or cleaning")
)

// Conflict errors: reported distinctly so the UI can prompt re-selection.
var (
	ErrTableConflict = errors.New("table has an overlapping booking in the requested window")
	ErrStaleBooking  = errors.New("booking was modified concurrently, reload and retry")
)
