package domain

import "time"

type RoomType string

const (
	RoomStandard RoomType = "standard"
	RoomSuperior RoomType = "superior"
	RoomDeluxe   RoomType = "deluxe"
	RoomSuite    RoomType = "suite"
)

func (t RoomType) Valid() bool {
	switch t {
	case RoomStandard, RoomSuperior, RoomDeluxe, RoomSuite:
		return true
	}
	return false
}

type Room struct {
	ID        int64     `json:"id" gorm:"primaryKey"`
	HotelID   int64     `json:"hotel_id" gorm:"not null;index"`
	Type      RoomType  `json:"type" gorm:"type:varchar(16);default:'standard'"`
	Number    int       `json:"number" gorm:"not null"`
	Price     float64   `json:"price" gorm:"not null"` // per night
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Hotel *Hotel `json:"hotel,omitempty" gorm:"foreignKey:HotelID"`
}

func (Room) TableName() string { return "rooms" }

// UnavailablePeriod is a persisted room interval. Rows are keyed by the
// owning booking so cancellation removes exactly the interval that booking
// reserved, not whichever row happens to compare equal.
type UnavailablePeriod struct {
	ID        int64     `json:"id" gorm:"primaryKey"`
	RoomID    int64     `json:"room_id" gorm:"not null;index"`
	BookingID int64     `json:"booking_id" gorm:"not null;uniqueIndex"`
	StartDate time.Time `json:"start_date" gorm:"not null"`
	EndDate   time.Time `json:"end_date" gorm:"not null"`
}

func (UnavailablePeriod) TableName() string { return "room_unavailable_periods" }

func (p UnavailablePeriod) Interval() Interval {
	return Interval{StartDate: p.StartDate, EndDate: p.EndDate}
}
