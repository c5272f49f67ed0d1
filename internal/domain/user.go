package domain

import "time"

type Role string

const (
	RoleUser         Role = "user"
	RoleHotelManager Role = "hotelManager"
	RoleAdmin        Role = "admin"
)

func (r Role) Valid() bool {
	switch r {
	case RoleUser, RoleHotelManager, RoleAdmin:
		return true
	}
	return false
}

type User struct {
	ID               int64     `json:"id" gorm:"primaryKey"`
	Name             string    `json:"name" validate:"required"`
	Tel              string    `json:"tel,omitempty"`
	Email            string    `json:"email" validate:"required,email" gorm:"uniqueIndex"`
	PasswordHash     string    `json:"-" gorm:"column:password_hash"`
	Role             Role      `json:"role" gorm:"type:varchar(16);default:'user'"`
	Credit           float64   `json:"credit" gorm:"not null;default:0"`
	MembershipTier   Tier      `json:"membership_tier" gorm:"type:varchar(16);default:'none'"`
	MembershipPoints int       `json:"membership_points" gorm:"not null;default:0"`
	ResponsibleHotel *int64    `json:"responsible_hotel,omitempty" gorm:"column:responsible_hotel_id"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

func (User) TableName() string { return "users" }

// Actor is the authenticated caller as seen by the services. The identity
// layer is trusted; services only consult ID, Role and ResponsibleHotel.
type Actor struct {
	ID               int64
	Role             Role
	ResponsibleHotel *int64
}

// ManagesHotel reports whether the actor is the hotel manager responsible
// for the given hotel.
func (a Actor) ManagesHotel(hotelID int64) bool {
	return a.Role == RoleHotelManager && a.ResponsibleHotel != nil && *a.ResponsibleHotel == hotelID
}
