package booking

import "errors"

var (
	ErrInvalidDateRange     = errors.New("check-out date must be after check-in date")
	ErrStayTooLong          = errors.New("stay exceeds the nightly cap")
	ErrRoomNotFound         = errors.New("room not found")
	ErrRoomUnavailable      = errors.New("room is not available for the selected dates")
	ErrInvalidPaymentMethod = errors.New("invalid payment method")
	ErrBookingNotFound      = errors.New("booking not found")
	ErrUnauthorized         = errors.New("not authorized for this booking operation")
	ErrInvalidRequest       = errors.New("request must carry a status or a date change, not both")
	ErrInvalidStatus        = errors.New("invalid booking status")
	ErrInvalidTransition    = errors.New("status transition not permitted")
	ErrBookingNotCancelable = errors.New("booking cannot be canceled in its current status")
	ErrNoRefundablePayment  = errors.New("no completed payment to refund")
	ErrRefundDenied         = errors.New("refund policy yields nothing to refund")
	ErrRoomMissing          = errors.New("room referenced by booking no longer exists")
	ErrDeleteWindowClosed   = errors.New("bookings can be deleted at least 7 days before check-in only")
)
