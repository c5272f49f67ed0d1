package domain

import "time"

type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCanceled  BookingStatus = "canceled"
	BookingCheckedIn BookingStatus = "checkedIn"
	BookingCompleted BookingStatus = "completed"
)

func (s BookingStatus) Valid() bool {
	switch s {
	case BookingPending, BookingConfirmed, BookingCanceled, BookingCheckedIn, BookingCompleted:
		return true
	}
	return false
}

// Terminal statuses are never left once reached.
func (s BookingStatus) Terminal() bool {
	return s == BookingCompleted || s == BookingCanceled
}

// CanTransition reports whether the status adjacency permits moving from
// one status to another. Cancellation and the admin-only reset to pending
// carry extra preconditions enforced by the booking service.
func CanTransition(from, to BookingStatus) bool {
	if from.Terminal() {
		return false
	}
	switch from {
	case BookingPending:
		return to == BookingConfirmed || to == BookingCanceled
	case BookingConfirmed:
		return to == BookingCanceled || to == BookingCheckedIn
	case BookingCheckedIn:
		return to == BookingCompleted || to == BookingCanceled
	}
	return false
}

type Booking struct {
	ID            int64         `json:"id" gorm:"primaryKey"`
	UserID        int64         `json:"user_id" gorm:"not null;index"`
	RoomID        int64         `json:"room_id" gorm:"not null;index"`
	HotelID       int64         `json:"hotel_id" gorm:"not null;index"`
	CheckInDate   time.Time     `json:"check_in_date" gorm:"not null"`
	CheckOutDate  time.Time     `json:"check_out_date" gorm:"not null"`
	Status        BookingStatus `json:"status" gorm:"type:varchar(16);default:'pending'"`
	TierAtBooking Tier          `json:"tier_at_booking" gorm:"type:varchar(16);default:'none'"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`

	User *User `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Room *Room `json:"room,omitempty" gorm:"foreignKey:RoomID"`
}

func (Booking) TableName() string { return "bookings" }

// Nights is the stay length in whole 24h days.
func (b *Booking) Nights() int {
	return int(b.CheckOutDate.Sub(b.CheckInDate) / (24 * time.Hour))
}
