// internal/repository/shop.go
package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/openfab/printhub/internal/domain"
	"github.com/openfab/printhub/internal/model"
	"gorm.io/gorm"
)

type ShopRepositoryIface interface {
	Begin(ctx context.Context) (Transaction, error)

	Create(ctx context.Context, shop *model.Shop) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Shop, error)
	Update(ctx context.Context, shop *model.Shop) error
	FindAllActive(ctx context.Context) ([]*model.Shop, error)
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*model.Shop, error)
	AdjustBalance(ctx context.Context, shopID uuid.UUID, delta int64) error

	FindMembership(ctx context.Context, userID, shopID uuid.UUID) (*model.UserShop, error)
	AddMember(ctx context.Context, membership *model.UserShop) error
	UpdateMembership(ctx context.Context, membership *model.UserShop) error
	FindMembers(ctx context.Context, shopID uuid.UUID) ([]*model.UserShop, error)
}

type ShopRepository struct {
	db *gorm.DB
}

func NewShopRepository(db *gorm.DB) *ShopRepository {
	return &ShopRepository{db: db}
}

// Begin starts a new database transaction and returns a Transaction instance.
func (r *ShopRepository) Begin(ctx context.Context) (Transaction, error) {
	tx := r.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &gormTransaction{tx: tx}, nil
}

func (r *ShopRepository) Create(ctx context.Context, shop *model.Shop) error {
	result := r.db.WithContext(ctx).Create(shop)
	if result.Error != nil {
		return fmt.Errorf("failed to create shop: %w", result.Error)
	}
	return nil
}

func (r *ShopRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Shop, error) {
	var shop model.Shop
	result := r.db.WithContext(ctx).First(&shop, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domain.ErrShopNotFound
		}
		return nil, fmt.Errorf("failed to find shop: %w", result.Error)
	}
	return &shop, nil
}

func (r *ShopRepository) Update(ctx context.Context, shop *model.Shop) error {
	result := r.db.WithContext(ctx).Save(shop)
	if result.Error != nil {
		return fmt.Errorf("failed to update shop: %w", result.Error)
	}
	return nil
}

func (r *ShopRepository) FindAllActive(ctx context.Context) ([]*model.Shop, error) {
	var shops []*model.Shop
	result := r.db.WithContext(ctx).Where("active = true").Order("name").Find(&shops)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to find shops: %w", result.Error)
	}
	return shops, nil
}

// FindByUser returns the active shops the user has an active membership in.
func (r *ShopRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*model.Shop, error) {
	var shops []*model.Shop
	result := r.db.WithContext(ctx).
		Joins("JOIN user_shops ON user_shops.shop_id = shops.id").
		Where("user_shops.user_id = ? AND user_shops.active = true AND shops.active = true", userID).
		Find(&shops)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to find shops for user: %w", result.Error)
	}
	return shops, nil
}

// AdjustBalance applies a signed delta to the shop balance atomically.
func (r *ShopRepository) AdjustBalance(ctx context.Context, shopID uuid.UUID, delta int64) error {
	result := r.db.WithContext(ctx).
		Model(&model.Shop{}).
		Where("id = ?", shopID).
		Update("balance", gorm.Expr("balance + ?", delta))
	if result.Error != nil {
		return fmt.Errorf("failed to adjust shop balance: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrShopNotFound
	}
	return nil
}

func (r *ShopRepository) FindMembership(ctx context.Context, userID, shopID uuid.UUID) (*model.UserShop, error) {
	var membership model.UserShop
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND shop_id = ?", userID, shopID).
		First(&membership)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find shop membership: %w", result.Error)
	}
	return &membership, nil
}

func (r *ShopRepository) AddMember(ctx context.Context, membership *model.UserShop) error {
	result := r.db.WithContext(ctx).Create(membership)
	if result.Error != nil {
		if isUniqueViolation(result.Error) {
			return domain.ErrDuplicateMembership
		}
		return fmt.Errorf("failed to add shop member: %w", result.Error)
	}
	return nil
}

func (r *ShopRepository) UpdateMembership(ctx context.Context, membership *model.UserShop) error {
	result := r.db.WithContext(ctx).Save(membership)
	if result.Error != nil {
		return fmt.Errorf("failed to update shop membership: %w", result.Error)
	}
	return nil
}

func (r *ShopRepository) FindMembers(ctx context.Context, shopID uuid.UUID) ([]*model.UserShop, error) {
	var members []*model.UserShop
	result := r.db.WithContext(ctx).
		Preload("User").
		Where("shop_id = ? AND active = true", shopID).
		Order("created_at asc").
		Find(&members)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to find shop members: %w", result.Error)
	}
	return members, nil
}
