package dashboard

import "errors"

// Dashboard domain errors
var (
	ErrInvalidCalendarMonth = errors.New("calendar month must be between 0 and 11")
	ErrInvalidCalendarYear  = errors.New("calendar year is not a valid number")
)
