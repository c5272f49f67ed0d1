package credit

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"hotelbooking/internal/domain"
)

var (
	ErrInvalidAmount     = errors.New("amount must be non-zero")
	ErrInsufficientFunds = errors.New("credit balance cannot go negative")
	ErrUserNotFound      = errors.New("user not found")
)

// Service manages the credit balance on the user row and its ledger.
// Refund credits are written by the booking cancellation; this service
// covers reads and manual admin adjustments.
type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

func (s *Service) BalanceOf(ctx context.Context, userID int64) (float64, error) {
	var user domain.User
	if err := s.db.WithContext(ctx).First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, ErrUserNotFound
		}
		return 0, err
	}
	return user.Credit, nil
}

func (s *Service) ListTransactions(ctx context.Context, userID int64) ([]Transaction, error) {
	var txns []Transaction
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&txns).Error
	return txns, err
}

// Adjust moves a user's balance by a signed amount and records the ledger
// row, both under a row lock so concurrent adjustments serialize.
func (s *Service) Adjust(ctx context.Context, userID int64, amount float64) (*Transaction, error) {
	if amount == 0 {
		return nil, ErrInvalidAmount
	}

	var txn Transaction
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var user domain.User
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&user, userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrUserNotFound
			}
			return err
		}

		if user.Credit+amount < 0 {
			return ErrInsufficientFunds
		}

		if err := tx.Model(&domain.User{}).Where("id = ?", userID).
			Update("credit", user.Credit+amount).Error; err != nil {
			return err
		}

		txn = Transaction{UserID: userID, Amount: amount, Type: TransactionTypeAdjust}
		return tx.Create(&txn).Error
	})
	if err != nil {
		return nil, err
	}
	return &txn, nil
}
