package domain

import "time"

// AuditLog rows record who did what. Writes are fire-and-forget; a failed
// write is logged and never fails the operation being audited.
type AuditLog struct {
	ID        int64     `json:"id" gorm:"primaryKey"`
	UserID    int64     `json:"user_id" gorm:"index"`
	Category  string    `json:"category" gorm:"type:varchar(32)"`
	Message   string    `json:"message" gorm:"type:text"`
	CreatedAt time.Time `json:"created_at"`
}

func (AuditLog) TableName() string { return "audit_logs" }
