package auth

import "errors"

var (
	ErrEmailTaken         = errors.New("email is already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidRole        = errors.New("role must be user or hotelManager")
	ErrHotelRequired      = errors.New("hotel managers must name their hotel")
	ErrUserNotFound       = errors.New("user not found")
)
