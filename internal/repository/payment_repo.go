package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"hotelbooking/internal/domain"
)

type PaymentRepository struct {
	db *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) *PaymentRepository {
	return &PaymentRepository{db: db}
}

func (r *PaymentRepository) GetByID(ctx context.Context, id int64) (*domain.Payment, error) {
	var p domain.Payment
	if err := r.db.WithContext(ctx).First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PaymentRepository) ListByUser(ctx context.Context, userID int64) ([]domain.Payment, error) {
	var payments []domain.Payment
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&payments).Error
	return payments, err
}

func (r *PaymentRepository) ListAll(ctx context.Context) ([]domain.Payment, error) {
	var payments []domain.Payment
	err := r.db.WithContext(ctx).Order("created_at desc").Find(&payments).Error
	return payments, err
}

// FindCompletedByBooking returns the booking's completed payment, or
// (nil, nil) when there is none. The single-completed-payment invariant is
// enforced on write, so first match is the only match.
func (r *PaymentRepository) FindCompletedByBooking(ctx context.Context, bookingID int64) (*domain.Payment, error) {
	var p domain.Payment
	err := r.db.WithContext(ctx).
		Where("booking_id = ? AND status = ?", bookingID, domain.PaymentCompleted).
		First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// SettleCompleted marks the payment completed and stamps its payment date.
// The booking's payment rows are locked and re-checked inside the
// transaction, so at most one payment per booking can ever settle. Returns
// false when another payment of the booking is already completed.
func (r *PaymentRepository) SettleCompleted(ctx context.Context, p *domain.Payment, now time.Time) (bool, error) {
	settled := false
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var siblings []domain.Payment
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("booking_id = ?", p.BookingID).
			Find(&siblings).Error; err != nil {
			return err
		}
		for _, sib := range siblings {
			if sib.ID != p.ID && sib.Status == domain.PaymentCompleted {
				return nil
			}
		}
		p.Status = domain.PaymentCompleted
		p.PaymentDate = &now
		if err := tx.Save(p).Error; err != nil {
			return err
		}
		settled = true
		return nil
	})
	return settled, err
}

func (r *PaymentRepository) Update(ctx context.Context, p *domain.Payment) error {
	return r.db.WithContext(ctx).Save(p).Error
}

// MarkFailedIfUnpaid is the payment-timeout watchdog write. The status
// guard in the WHERE clause makes the watchdog a no-op once the payment
// has moved on.
func (r *PaymentRepository) MarkFailedIfUnpaid(ctx context.Context, id int64) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&domain.Payment{}).
		Where("id = ? AND status = ?", id, domain.PaymentUnpaid).
		Update("status", domain.PaymentFailed)
	return res.RowsAffected > 0, res.Error
}
