// internal/repository/ledger.go
package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/openfab/printhub/internal/model"
	"gorm.io/gorm"
)

type LedgerRepositoryIface interface {
	Create(ctx context.Context, item *model.LedgerItem) error
	FindByJob(ctx context.Context, jobID uuid.UUID) ([]*model.LedgerItem, error)
	FindByShop(ctx context.Context, shopID uuid.UUID) ([]*model.LedgerItem, error)
	SumByShop(ctx context.Context, shopID uuid.UUID) (int64, error)
}

type LedgerRepository struct {
	db *gorm.DB
}

func NewLedgerRepository(db *gorm.DB) *LedgerRepository {
	return &LedgerRepository{db: db}
}

func (r *LedgerRepository) Create(ctx context.Context, item *model.LedgerItem) error {
	result := r.db.WithContext(ctx).Create(item)
	if result.Error != nil {
		return fmt.Errorf("failed to create ledger item: %w", result.Error)
	}
	return nil
}

func (r *LedgerRepository) FindByJob(ctx context.Context, jobID uuid.UUID) ([]*model.LedgerItem, error) {
	var items []*model.LedgerItem
	result := r.db.WithContext(ctx).
		Where("job_id = ?", jobID).
		Order("created_at desc").
		Find(&items)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to find ledger items: %w", result.Error)
	}
	return items, nil
}

func (r *LedgerRepository) FindByShop(ctx context.Context, shopID uuid.UUID) ([]*model.LedgerItem, error) {
	var items []*model.LedgerItem
	result := r.db.WithContext(ctx).
		Where("shop_id = ?", shopID).
		Order("created_at desc").
		Find(&items)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to find ledger items: %w", result.Error)
	}
	return items, nil
}

// SumByShop totals all ledger movements for a shop. The result is the
// balance the shop should hold; reconciliation compares it to the stored
// balance.
func (r *LedgerRepository) SumByShop(ctx context.Context, shopID uuid.UUID) (int64, error) {
	var sum *int64
	result := r.db.WithContext(ctx).
		Model(&model.LedgerItem{}).
		Select("SUM(amount)").
		Where("shop_id = ?", shopID).
		Scan(&sum)
	if result.Error != nil {
		return 0, fmt.Errorf("failed to sum ledger items: %w", result.Error)
	}
	if sum == nil {
		return 0, nil
	}
	return *sum, nil
}
