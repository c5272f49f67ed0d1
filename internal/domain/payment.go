package domain

import "time"

type PaymentStatus string

const (
	PaymentUnpaid    PaymentStatus = "unpaid"
	PaymentPending   PaymentStatus = "pending"
	PaymentCompleted PaymentStatus = "completed"
	PaymentFailed    PaymentStatus = "failed"
	PaymentCanceled  PaymentStatus = "canceled"
)

func (s PaymentStatus) Valid() bool {
	switch s {
	case PaymentUnpaid, PaymentPending, PaymentCompleted, PaymentFailed, PaymentCanceled:
		return true
	}
	return false
}

type PaymentMethod string

const (
	MethodCard   PaymentMethod = "Card"
	MethodBank   PaymentMethod = "Bank"
	MethodThaiQR PaymentMethod = "ThaiQR"
)

func (m PaymentMethod) Valid() bool {
	switch m {
	case MethodCard, MethodBank, MethodThaiQR:
		return true
	}
	return false
}

type Payment struct {
	ID          int64         `json:"id" gorm:"primaryKey"`
	BookingID   int64         `json:"booking_id" gorm:"not null;index"`
	UserID      int64         `json:"user_id" gorm:"not null;index"`
	Amount      float64       `json:"amount" gorm:"not null"`
	Status      PaymentStatus `json:"status" gorm:"type:varchar(16);default:'unpaid'"`
	Method      PaymentMethod `json:"method" gorm:"type:varchar(16)"`
	PaymentDate *time.Time    `json:"payment_date,omitempty"`
	CanceledAt  *time.Time    `json:"canceled_at,omitempty"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}

func (Payment) TableName() string { return "payments" }
