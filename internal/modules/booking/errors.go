package booking

import "errors"

var (
	ErrServiceNotFound  = errors.New("service not found")
	ErrBusinessNotFound = errors.New("business not found")
	ErrBookingNotFound  = errors.New("booking not found")
	ErrInvalidSchedule  = errors.New("booking must be scheduled in the future")
)
