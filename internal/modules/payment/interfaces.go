package payment

import (
	"context"
	"time"

	"hotelbooking/internal/domain"
)

type PaymentRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Payment, error)
	ListByUser(ctx context.Context, userID int64) ([]domain.Payment, error)
	ListAll(ctx context.Context) ([]domain.Payment, error)
	SettleCompleted(ctx context.Context, p *domain.Payment, now time.Time) (bool, error)
	Update(ctx context.Context, p *domain.Payment) error
	MarkFailedIfUnpaid(ctx context.Context, id int64) (bool, error)
}

type UserRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}

type AuditRecorder interface {
	Record(ctx context.Context, userID int64, category, message string)
}
