package payment

import "errors"

var (
	ErrPaymentNotFound        = errors.New("payment not found")
	ErrUnauthorized           = errors.New("not allowed to access this payment")
	ErrInvalidStatus          = errors.New("invalid payment status")
	ErrInvalidMethod          = errors.New("invalid payment method")
	ErrInvalidRequest         = errors.New("nothing to update")
	ErrCompletedPaymentExists = errors.New("booking already has a completed payment")
	ErrPaymentNotCancelable   = errors.New("only a pending payment can be canceled")
	ErrStatusChangeNotAllowed = errors.New("only staff can set this payment status")
)
