package credit

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	TransactionTypeRefund = "REFUND"
	TransactionTypeAdjust = "ADJUST"
)

// Transaction records every change to a user's credit balance. The balance
// itself lives on the user row; the ledger exists for reconciliation.
type Transaction struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	UserID    int64     `json:"user_id" gorm:"not null;index"`
	BookingID *int64    `json:"booking_id,omitempty" gorm:"index"`
	Amount    float64   `json:"amount" gorm:"not null"`
	Type      string    `json:"type" gorm:"type:varchar(16);not null;check:type IN ('REFUND','ADJUST')"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
}

func (Transaction) TableName() string { return "credit_transactions" }

func (t *Transaction) BeforeCreate(_ *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}
