package repository

import (
	"context"
	"log"

	"gorm.io/gorm"

	"hotelbooking/internal/domain"
)

type AuditLogRepository struct {
	db *gorm.DB
}

func NewAuditLogRepository(db *gorm.DB) *AuditLogRepository {
	return &AuditLogRepository{db: db}
}

// Record is fire-and-forget: a failed write is logged for manual
// reconciliation, never surfaced to the caller.
func (r *AuditLogRepository) Record(ctx context.Context, userID int64, category, message string) {
	entry := domain.AuditLog{
		UserID:   userID,
		Category: category,
		Message:  message,
	}
	if err := r.db.WithContext(ctx).Create(&entry).Error; err != nil {
		log.Printf("audit_write_failed user_id=%d category=%s err=%v", userID, category, err)
	}
}
