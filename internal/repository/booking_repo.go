package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"hotelbooking/internal/domain"
	"hotelbooking/internal/modules/credit"
)

// Returned when a transactional unit re-checks its precondition under lock
// and finds another request got there first.
var (
	ErrStaleBookingStatus = errors.New("booking status changed concurrently")
	ErrStalePaymentStatus = errors.New("payment status changed concurrently")
	ErrIntervalOverlap    = errors.New("room interval reserved concurrently")
)

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

func (r *BookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	var b domain.Booking
	if err := r.db.WithContext(ctx).First(&b, id).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *BookingRepository) ListByUser(ctx context.Context, userID int64) ([]domain.Booking, error) {
	var bookings []domain.Booking
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&bookings).Error
	return bookings, err
}

func (r *BookingRepository) ListByHotel(ctx context.Context, hotelID int64) ([]domain.Booking, error) {
	var bookings []domain.Booking
	err := r.db.WithContext(ctx).
		Where("hotel_id = ?", hotelID).
		Order("created_at desc").
		Find(&bookings).Error
	return bookings, err
}

// LatestByUserAndHotel returns the user's most recent booking at the hotel
// by check-out date, or (nil, nil) when they never booked it.
func (r *BookingRepository) LatestByUserAndHotel(ctx context.Context, userID, hotelID int64) (*domain.Booking, error) {
	var b domain.Booking
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND hotel_id = ?", userID, hotelID).
		Order("check_out_date desc").
		First(&b).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *BookingRepository) ListAll(ctx context.Context) ([]domain.Booking, error) {
	var bookings []domain.Booking
	err := r.db.WithContext(ctx).Order("created_at desc").Find(&bookings).Error
	return bookings, err
}

// CreateWithPayment creates the booking, its room interval and its payment
// as one unit. The room row is locked and availability re-verified inside
// the transaction, so two concurrent creates for the same dates cannot both
// commit. A failure leaves no booking and no payment behind.
func (r *BookingRepository) CreateWithPayment(ctx context.Context, b *domain.Booking, p *domain.Payment) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var room domain.Room
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&room, b.RoomID).Error; err != nil {
			return err
		}

		var periods []domain.UnavailablePeriod
		if err := tx.Where("room_id = ?", b.RoomID).Find(&periods).Error; err != nil {
			return err
		}
		intervals := make([]domain.Interval, 0, len(periods))
		for _, per := range periods {
			intervals = append(intervals, per.Interval())
		}
		if !domain.IsAvailable(intervals, b.CheckInDate, b.CheckOutDate) {
			return ErrIntervalOverlap
		}

		if err := tx.Create(b).Error; err != nil {
			return err
		}

		period := domain.UnavailablePeriod{
			RoomID:    b.RoomID,
			BookingID: b.ID,
			StartDate: b.CheckInDate,
			EndDate:   b.CheckOutDate,
		}
		if err := tx.Create(&period).Error; err != nil {
			return err
		}

		p.BookingID = b.ID
		return tx.Create(p).Error
	})
}

// CancelWithRefund applies the whole cancellation unit: booking canceled,
// payment canceled, user credited, interval released, ledger row written.
// Booking, payment and user rows are locked for the duration; preconditions
// are re-verified under the lock so concurrent cancellations cannot both
// refund.
func (r *BookingRepository) CancelWithRefund(ctx context.Context, bookingID, paymentID, userID int64, refund float64, now time.Time) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var b domain.Booking
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&b, bookingID).Error; err != nil {
			return err
		}
		if b.Status != domain.BookingConfirmed && b.Status != domain.BookingCheckedIn {
			return ErrStaleBookingStatus
		}

		var p domain.Payment
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&p, paymentID).Error; err != nil {
			return err
		}
		if p.Status != domain.PaymentCompleted {
			return ErrStalePaymentStatus
		}

		if err := tx.Model(&b).Update("status", domain.BookingCanceled).Error; err != nil {
			return err
		}
		if err := tx.Model(&p).Updates(map[string]any{
			"status":      domain.PaymentCanceled,
			"canceled_at": now,
		}).Error; err != nil {
			return err
		}

		var u domain.User
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&u, userID).Error; err != nil {
			return err
		}
		if err := tx.Model(&u).Update("credit", u.Credit+refund).Error; err != nil {
			return err
		}

		ledger := credit.Transaction{
			UserID:    userID,
			BookingID: &bookingID,
			Amount:    refund,
			Type:      credit.TransactionTypeRefund,
		}
		if err := tx.Create(&ledger).Error; err != nil {
			return err
		}

		return tx.Where("booking_id = ?", bookingID).Delete(&domain.UnavailablePeriod{}).Error
	})
}

// Complete marks the booking completed and credits the stay's loyalty
// points, recomputing the member tier under the same lock. Reports the new
// tier and whether it changed.
func (r *BookingRepository) Complete(ctx context.Context, bookingID int64, earnedPoints int) (domain.Tier, bool, error) {
	var newTier domain.Tier
	var changed bool

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var b domain.Booking
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&b, bookingID).Error; err != nil {
			return err
		}
		if b.Status != domain.BookingCheckedIn {
			return ErrStaleBookingStatus
		}
		if err := tx.Model(&b).Update("status", domain.BookingCompleted).Error; err != nil {
			return err
		}

		var u domain.User
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&u, b.UserID).Error; err != nil {
			return err
		}

		points := u.MembershipPoints + earnedPoints
		tier, err := domain.TierForPoints(points)
		if err != nil {
			return err
		}

		newTier = tier
		changed = tier != u.MembershipTier

		updates := map[string]any{"membership_points": points}
		if changed {
			updates["membership_tier"] = tier
		}
		return tx.Model(&u).Updates(updates).Error
	})

	return newTier, changed, err
}

// UpdateDates moves the booking to a new date range and re-points its room
// interval, as one unit. The interval row is keyed by booking id, so the
// swap cannot miss its target.
func (r *BookingRepository) UpdateDates(ctx context.Context, bookingID int64, checkIn, checkOut time.Time) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var b domain.Booking
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&b, bookingID).Error; err != nil {
			return err
		}
		if b.Status.Terminal() {
			return ErrStaleBookingStatus
		}

		if err := tx.Model(&b).Updates(map[string]any{
			"check_in_date":  checkIn,
			"check_out_date": checkOut,
		}).Error; err != nil {
			return err
		}

		return tx.Model(&domain.UnavailablePeriod{}).
			Where("booking_id = ?", bookingID).
			Updates(map[string]any{
				"start_date": checkIn,
				"end_date":   checkOut,
			}).Error
	})
}

// UpdateStatus performs a plain status write for transitions with no
// side effects (confirm, check-in, admin reset to pending).
func (r *BookingRepository) UpdateStatus(ctx context.Context, bookingID int64, from, to domain.BookingStatus) error {
	res := r.db.WithContext(ctx).
		Model(&domain.Booking{}).
		Where("id = ? AND status = ?", bookingID, from).
		Update("status", to)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrStaleBookingStatus
	}
	return nil
}

// DeleteCascade removes a booking with its payments and its room interval.
func (r *BookingRepository) DeleteCascade(ctx context.Context, bookingID int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("booking_id = ?", bookingID).Delete(&domain.Payment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("booking_id = ?", bookingID).Delete(&domain.UnavailablePeriod{}).Error; err != nil {
			return err
		}
		return tx.Delete(&domain.Booking{}, bookingID).Error
	})
}
