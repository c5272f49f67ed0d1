package review

import "errors"

var (
	ErrReviewNotFound  = errors.New("review not found")
	ErrHotelNotFound   = errors.New("hotel not found")
	ErrInvalidRating   = errors.New("rating must be between 1 and 5")
	ErrUnauthorized    = errors.New("not allowed to remove this review")
	ErrStayRequired    = errors.New("only guests who booked this hotel can review")
	ErrReviewTooEarly  = errors.New("reviews open after check-out")
	ErrAlreadyReviewed = errors.New("hotel already reviewed by this user")
)
