// internal/repository/resource.go
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

type ResourceRepositoryIface interface {
	CreateType(ctx context.Context, rt *model.ResourceType) error
	FindTypeByID(ctx context.Context, id uuid.UUID) (*model.ResourceType, error)
	FindTypesByShop(ctx context.Context, shopID uuid.UUID) ([]*model.ResourceType, error)
	UpdateType(ctx context.Context, rt *model.ResourceType) error

	Create(ctx context.Context, resource *model.Resource) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Resource, error)
	Update(ctx context.Context, resource *model.Resource) error
	AddImage(ctx context.Context, image *model.ResourceImage) error

	CreateMaterial(ctx context.Context, material *model.Material) error
	FindMaterialByID(ctx context.Context, id uuid.UUID) (*model.Material, error)
	FindMaterialsByType(ctx context.Context, resourceTypeID uuid.UUID) ([]*model.Material, error)
	UpdateMaterial(ctx context.Context, material *model.Material) error
}

type ResourceRepository struct {
	db *gorm.DB
}

func NewResourceRepository(db *gorm.DB) *ResourceRepository {
	return &ResourceRepository{db: db}
}

func (r *ResourceRepository) CreateType(ctx context.Context, rt *model.ResourceType) error {
	result := r.db.WithContext(ctx).Create(rt)
	if result.Error != nil {
		return fmt.Errorf("failed to create resource type: %w", result.Error)
	}
	return nil
}

func (r *ResourceRepository) FindTypeByID(ctx context.Context, id uuid.UUID) (*model.ResourceType, error) {
	var rt model.ResourceType
	result := r.db.WithContext(ctx).First(&rt, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domain.ErrResourceTypeNotFound
		}
		return nil, fmt.Errorf("failed to find resource type: %w", result.Error)
	}
	return &rt, nil
}

// FindTypesByShop loads a shop's active resource types with their active
// resources and images, mirroring the resource listing endpoint.
func (r *ResourceRepository) FindTypesByShop(ctx context.Context, shopID uuid.UUID) ([]*model.ResourceType, error) {
	var types []*model.ResourceType
	result := r.db.WithContext(ctx).
		Preload("Resources", "active = true").
		Preload("Resources.Images", "active = true").
		Where("shop_id = ? AND active = true", shopID).
		Order("title").
		Find(&types)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to find resource types: %w", result.Error)
	}
	return types, nil
}

func (r *ResourceRepository) UpdateType(ctx context.Context, rt *model.ResourceType) error {
	result := r.db.WithContext(ctx).Save(rt)
	if result.Error != nil {
		return fmt.Errorf("failed to update resource type: %w", result.Error)
	}
	return nil
}

func (r *ResourceRepository) Create(ctx context.Context, resource *model.Resource) error {
	result := r.db.WithContext(ctx).Create(resource)
	if result.Error != nil {
		return fmt.Errorf("failed to create resource: %w", result.Error)
	}
	return nil
}

func (r *ResourceRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Resource, error) {
	var resource model.Resource
	result := r.db.WithContext(ctx).
		Preload("ResourceType").
		First(&resource, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domain.ErrResourceNotFound
		}
		return nil, fmt.Errorf("failed to find resource: %w", result.Error)
	}
	return &resource, nil
}

func (r *ResourceRepository) Update(ctx context.Context, resource *model.Resource) error {
	result := r.db.WithContext(ctx).Save(resource)
	if result.Error != nil {
		return fmt.Errorf("failed to update resource: %w", result.Error)
	}
	return nil
}

func (r *ResourceRepository) AddImage(ctx context.Context, image *model.ResourceImage) error {
	result := r.db.WithContext(ctx).Create(image)
	if result.Error != nil {
		return fmt.Errorf("failed to add resource image: %w", result.Error)
	}
	return nil
}

func (r *ResourceRepository) CreateMaterial(ctx context.Context, material *model.Material) error {
	result := r.db.WithContext(ctx).Create(material)
	if result.Error != nil {
		return fmt.Errorf("failed to create material: %w", result.Error)
	}
	return nil
}

func (r *ResourceRepository) FindMaterialByID(ctx context.Context, id uuid.UUID) (*model.Material, error) {
	var material model.Material
	result := r.db.WithContext(ctx).First(&material, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domain.ErrMaterialNotFound
		}
		return nil, fmt.Errorf("failed to find material: %w", result.Error)
	}
	return &material, nil
}

func (r *ResourceRepository) FindMaterialsByType(ctx context.Context, resourceTypeID uuid.UUID) ([]*model.Material, error) {
	var materials []*model.Material
	result := r.db.WithContext(ctx).
		Where("resource_type_id = ? AND active = true", resourceTypeID).
		Order("title").
		Find(&materials)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to find materials: %w", result.Error)
	}
	return materials, nil
}

func (r *ResourceRepository) UpdateMaterial(ctx context.Context, material *model.Material) error {
	result := r.db.WithContext(ctx).Save(material)
	if result.Error != nil {
		return fmt.Errorf("failed to update material: %w", result.Error)
	}
	return nil
}
