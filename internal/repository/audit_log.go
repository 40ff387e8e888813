// internal/repository/audit_log.go
package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/openfab/printhub/internal/model"
	"gorm.io/gorm"
)

type AuditLogRepositoryIface interface {
	Create(ctx context.Context, log *model.AuditLog) error
	FindByShop(ctx context.Context, shopID uuid.UUID, offset, limit int) ([]*model.AuditLog, int64, error)
	LastOfTypeForUser(ctx context.Context, userID uuid.UUID, logType model.LogType) (*time.Time, error)
}

type AuditLogRepository struct {
	db *gorm.DB
}

func NewAuditLogRepository(db *gorm.DB) *AuditLogRepository {
	return &AuditLogRepository{db: db}
}

// Create appends an audit record. Audit rows are never updated or deleted.
func (r *AuditLogRepository) Create(ctx context.Context, log *model.AuditLog) error {
	result := r.db.WithContext(ctx).Create(log)
	if result.Error != nil {
		return fmt.Errorf("failed to create audit log: %w", result.Error)
	}
	return nil
}

func (r *AuditLogRepository) FindByShop(ctx context.Context, shopID uuid.UUID, offset, limit int) ([]*model.AuditLog, int64, error) {
	var logs []*model.AuditLog
	var count int64

	if err := r.db.WithContext(ctx).
		Model(&model.AuditLog{}).
		Where("shop_id = ?", shopID).
		Count(&count).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count audit logs: %w", err)
	}

	result := r.db.WithContext(ctx).
		Where("shop_id = ?", shopID).
		Order("created_at desc").
		Offset(offset).
		Limit(limit).
		Find(&logs)
	if result.Error != nil {
		return nil, 0, fmt.Errorf("failed to find audit logs: %w", result.Error)
	}

	return logs, count, nil
}

// LastOfTypeForUser returns the timestamp of the user's most recent log of
// the given type, or nil when none exists. Used for "last login" reporting.
func (r *AuditLogRepository) LastOfTypeForUser(ctx context.Context, userID uuid.UUID, logType model.LogType) (*time.Time, error) {
	var log model.AuditLog
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND type = ?", userID, logType).
		Order("created_at desc").
		First(&log)
	if result.Error != nil {
		if result.Error == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find audit log: %w", result.Error)
	}
	return &log.CreatedAt, nil
}
