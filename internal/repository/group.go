// internal/repository/group.go
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

type GroupRepositoryIface interface {
	Create(ctx context.Context, group *model.BillingGroup) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.BillingGroup, error)
	FindByShop(ctx context.Context, shopID uuid.UUID) ([]*model.BillingGroup, error)
	Update(ctx context.Context, group *model.BillingGroup) error

	FindMembership(ctx context.Context, userID, groupID uuid.UUID) (*model.UserBillingGroup, error)
	FindMembers(ctx context.Context, groupID uuid.UUID) ([]*model.UserBillingGroup, error)
	AddMember(ctx context.Context, membership *model.UserBillingGroup) error
	UpdateMembership(ctx context.Context, membership *model.UserBillingGroup) error
}

type GroupRepository struct {
	db *gorm.DB
}

func NewGroupRepository(db *gorm.DB) *GroupRepository {
	return &GroupRepository{db: db}
}

func (r *GroupRepository) Create(ctx context.Context, group *model.BillingGroup) error {
	result := r.db.WithContext(ctx).Create(group)
	if result.Error != nil {
		return fmt.Errorf("failed to create billing group: %w", result.Error)
	}
	return nil
}

func (r *GroupRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.BillingGroup, error) {
	var group model.BillingGroup
	result := r.db.WithContext(ctx).First(&group, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domain.ErrGroupNotFound
		}
		return nil, fmt.Errorf("failed to find billing group: %w", result.Error)
	}
	return &group, nil
}

func (r *GroupRepository) FindByShop(ctx context.Context, shopID uuid.UUID) ([]*model.BillingGroup, error) {
	var groups []*model.BillingGroup
	result := r.db.WithContext(ctx).
		Where("shop_id = ? AND active = true", shopID).
		Order("title").
		Find(&groups)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to find billing groups: %w", result.Error)
	}
	return groups, nil
}

func (r *GroupRepository) Update(ctx context.Context, group *model.BillingGroup) error {
	result := r.db.WithContext(ctx).Save(group)
	if result.Error != nil {
		return fmt.Errorf("failed to update billing group: %w", result.Error)
	}
	return nil
}

func (r *GroupRepository) FindMembership(ctx context.Context, userID, groupID uuid.UUID) (*model.UserBillingGroup, error) {
	var membership model.UserBillingGroup
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND billing_group_id = ?", userID, groupID).
		First(&membership)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find group membership: %w", result.Error)
	}
	return &membership, nil
}

func (r *GroupRepository) FindMembers(ctx context.Context, groupID uuid.UUID) ([]*model.UserBillingGroup, error) {
	var members []*model.UserBillingGroup
	result := r.db.WithContext(ctx).
		Preload("User").
		Where("billing_group_id = ? AND active = true", groupID).
		Order("created_at asc").
		Find(&members)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to find group members: %w", result.Error)
	}
	return members, nil
}

func (r *GroupRepository) AddMember(ctx context.Context, membership *model.UserBillingGroup) error {
	result := r.db.WithContext(ctx).Create(membership)
	if result.Error != nil {
		if isUniqueViolation(result.Error) {
			return domain.ErrDuplicateMembership
		}
		return fmt.Errorf("failed to add group member: %w", result.Error)
	}
	return nil
}

func (r *GroupRepository) UpdateMembership(ctx context.Context, membership *model.UserBillingGroup) error {
	result := r.db.WithContext(ctx).Save(membership)
	if result.Error != nil {
		return fmt.Errorf("failed to update group membership: %w", result.Error)
	}
	return nil
}
