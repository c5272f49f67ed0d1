package booking

import (
	"context"
	"time"

	"hotelbooking/internal/domain"
)

// BookingRepository defines the persistence operations of the booking
// lifecycle. The multi-entity methods are transactional units: each applies
// all of its writes or none, re-verifying preconditions under row locks.
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	ListByUser(ctx context.Context, userID int64) ([]domain.Booking, error)
	ListByHotel(ctx context.Context, hotelID int64) ([]domain.Booking, error)
	ListAll(ctx context.Context) ([]domain.Booking, error)
	CreateWithPayment(ctx context.Context, b *domain.Booking, p *domain.Payment) error
	CancelWithRefund(ctx context.Context, bookingID, paymentID, userID int64, refund float64, now time.Time) error
	Complete(ctx context.Context, bookingID int64, earnedPoints int) (domain.Tier, bool, error)
	UpdateDates(ctx context.Context, bookingID int64, checkIn, checkOut time.Time) error
	UpdateStatus(ctx context.Context, bookingID int64, from, to domain.BookingStatus) error
	DeleteCascade(ctx context.Context, bookingID int64) error
}

type RoomRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Room, error)
	GetIntervals(ctx context.Context, roomID int64) ([]domain.Interval, error)
}

type UserRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}

type PaymentRepository interface {
	FindCompletedByBooking(ctx context.Context, bookingID int64) (*domain.Payment, error)
}

// PaymentScheduler arms the payment-timeout watchdog for a new payment.
type PaymentScheduler interface {
	Schedule(paymentID int64)
}

type AuditRecorder interface {
	Record(ctx context.Context, userID int64, category, message string)
}

// EventPublisher pushes booking lifecycle events to subscribed hotel
// dashboards. Optional; a nil publisher disables the feed.
type EventPublisher interface {
	PublishBookingEvent(hotelID int64, event any)
}
