package catalog

import "errors"

var (
	ErrHotelNotFound  = errors.New("hotel not found")
	ErrRoomNotFound   = errors.New("room not found")
	ErrUnauthorized   = errors.New("not allowed to manage this hotel")
	ErrDuplicateHotel = errors.New("hotel name is already taken")
	ErrLastRoom       = errors.New("a hotel must keep at least one room")
	ErrInvalidRoom    = errors.New("invalid room attributes")
)
