package payment

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"gorm.io/gorm"

	"hotelbooking/internal/domain"
	"hotelbooking/internal/pkg/notify"
)

type Service struct {
	payments PaymentRepository
	users    UserRepository
	notifier notify.Notifier
	audit    AuditRecorder

	now func() time.Time
}

func NewService(payments PaymentRepository, users UserRepository, notifier notify.Notifier, audit AuditRecorder) *Service {
	return &Service{
		payments: payments,
		users:    users,
		notifier: notifier,
		audit:    audit,
		now:      time.Now,
	}
}

func (s *Service) GetPayment(ctx context.Context, actor domain.Actor, paymentID int64) (*domain.Payment, error) {
	p, err := s.payments.GetByID(ctx, paymentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPaymentNotFound
		}
		return nil, err
	}
	if !s.canAccess(actor, p) {
		return nil, ErrUnauthorized
	}
	return p, nil
}

// ListPayments returns all payments for admins and the caller's own
// payments for everyone else.
func (s *Service) ListPayments(ctx context.Context, actor domain.Actor) ([]domain.Payment, error) {
	if actor.Role == domain.RoleAdmin {
		return s.payments.ListAll(ctx)
	}
	return s.payments.ListByUser(ctx, actor.ID)
}

// UpdatePayment applies a status or method change. Guests may only move
// their own payment to pending (submitting it); the settlement statuses
// are staff-side.
func (s *Service) UpdatePayment(ctx context.Context, actor domain.Actor, paymentID int64, req UpdatePaymentRequest) (*domain.Payment, error) {
	if req.empty() {
		return nil, ErrInvalidRequest
	}

	p, err := s.payments.GetByID(ctx, paymentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPaymentNotFound
		}
		return nil, err
	}
	if !s.canAccess(actor, p) {
		return nil, ErrUnauthorized
	}

	if req.Method != nil {
		method := domain.PaymentMethod(*req.Method)
		if !method.Valid() {
			return nil, ErrInvalidMethod
		}
		p.Method = method
	}

	if req.Status != nil {
		status := domain.PaymentStatus(*req.Status)
		if !status.Valid() {
			return nil, ErrInvalidStatus
		}
		if actor.Role == domain.RoleUser && status != domain.PaymentPending {
			return nil, ErrStatusChangeNotAllowed
		}
		if status == domain.PaymentCompleted {
			// settlement re-checks the booking's other payments under lock
			settled, err := s.payments.SettleCompleted(ctx, p, s.now())
			if err != nil {
				return nil, err
			}
			if !settled {
				return nil, ErrCompletedPaymentExists
			}
			s.notifyStatus(ctx, p)
			s.audit.Record(ctx, actor.ID, "payment",
				fmt.Sprintf("payment %d moved to %s", p.ID, p.Status))
			return p, nil
		}
		p.Status = status
	}

	if err := s.payments.Update(ctx, p); err != nil {
		return nil, err
	}

	if req.Status != nil {
		s.notifyStatus(ctx, p)
		s.audit.Record(ctx, actor.ID, "payment",
			fmt.Sprintf("payment %d moved to %s", p.ID, p.Status))
	}
	return p, nil
}

// CancelPayment voids a pending payment. Admins may void any
// non-completed one.
func (s *Service) CancelPayment(ctx context.Context, actor domain.Actor, paymentID int64) (*domain.Payment, error) {
	p, err := s.payments.GetByID(ctx, paymentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPaymentNotFound
		}
		return nil, err
	}
	if !s.canAccess(actor, p) {
		return nil, ErrUnauthorized
	}

	cancelable := p.Status == domain.PaymentPending ||
		(actor.Role == domain.RoleAdmin && p.Status != domain.PaymentCompleted)
	if !cancelable {
		return nil, ErrPaymentNotCancelable
	}

	now := s.now()
	p.Status = domain.PaymentCanceled
	p.CanceledAt = &now
	if err := s.payments.Update(ctx, p); err != nil {
		return nil, err
	}

	s.notifyStatus(ctx, p)
	s.audit.Record(ctx, actor.ID, "payment", fmt.Sprintf("payment %d canceled", p.ID))
	return p, nil
}

func (s *Service) canAccess(actor domain.Actor, p *domain.Payment) bool {
	return actor.Role == domain.RoleAdmin || actor.ID == p.UserID
}

func (s *Service) notifyStatus(ctx context.Context, p *domain.Payment) {
	user, err := s.users.GetByID(ctx, p.UserID)
	if err != nil {
		return
	}
	if err := s.notifier.SendPaymentStatusNotice(user.Email, user.Name, p.ID, string(p.Status)); err != nil {
		log.Printf("payment_notice_failed payment_id=%d err=%v", p.ID, err)
	}
}
