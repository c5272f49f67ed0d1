package booking

import "time"

type CreateBookingRequest struct {
	CheckInDate  time.Time `json:"check_in_date" binding:"required"`
	CheckOutDate time.Time `json:"check_out_date" binding:"required"`
	Method       string    `json:"method"`
}

// UpdateBookingRequest carries either a target status or a date change,
// never both.
type UpdateBookingRequest struct {
	Status       *string    `json:"status"`
	CheckInDate  *time.Time `json:"check_in_date"`
	CheckOutDate *time.Time `json:"check_out_date"`
}

func (r UpdateBookingRequest) hasStatus() bool { return r.Status != nil }

func (r UpdateBookingRequest) hasDates() bool {
	return r.CheckInDate != nil || r.CheckOutDate != nil
}
