// internal/service/resource.go
package service

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/openfab/printhub/internal/access"
	"github.com/openfab/printhub/internal/audit"
	"github.com/openfab/printhub/internal/domain"
	"github.com/openfab/printhub/internal/model"
	"github.com/openfab/printhub/internal/repository"
)

type ResourceService struct {
	repo        repository.ResourceRepositoryIface
	access      *AccessService
	auditLogger audit.Logger
	validate    *validator.Validate
}

func NewResourceService(
	repo repository.ResourceRepositoryIface,
	access *AccessService,
	auditLogger audit.Logger,
) *ResourceService {
	return &ResourceService{
		repo:        repo,
		access:      access,
		auditLogger: auditLogger,
		validate:    validator.New(),
	}
}

type CreateResourceTypeInput struct {
	Title    string                 `json:"title" validate:"required"`
	Category model.ResourceCategory `json:"category" validate:"required"`
}

// CreateType creates a resource type in a shop. Privileged members only.
func (s *ResourceService) CreateType(ctx context.Context, p access.Principal, shopID uuid.UUID, input CreateResourceTypeInput, req *http.Request) (*model.ResourceType, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	if !validCategory(input.Category) {
		return nil, fmt.Errorf("%w: unknown category %q", domain.ErrInvalidInput, input.Category)
	}
	if _, err := s.access.RequirePrivileged(ctx, p, shopID); err != nil {
		return nil, err
	}

	rt := &model.ResourceType{
		ShopID:   shopID,
		Title:    input.Title,
		Category: input.Category,
		Active:   true,
	}
	if err := s.repo.CreateType(ctx, rt); err != nil {
		return nil, err
	}

	if err := s.auditLogger.LogEvent(ctx, model.LogResourceTypeCreated, p.UserID, audit.Refs{ShopID: &shopID, ResourceTypeID: &rt.ID}, nil, rt, req); err != nil {
		return nil, fmt.Errorf("logging resource type creation: %w", err)
	}

	return rt, nil
}

type UpdateResourceTypeInput struct {
	Title    *string                 `json:"title"`
	Category *model.ResourceCategory `json:"category"`
	Active   *bool                   `json:"active"`
}

// UpdateType modifies a resource type. Privileged members only. Changing
// the category changes which rates and usage the costing policy requires of
// every item configured with this type.
func (s *ResourceService) UpdateType(ctx context.Context, p access.Principal, typeID uuid.UUID, input UpdateResourceTypeInput, req *http.Request) (*model.ResourceType, error) {
	rt, err := s.repo.FindTypeByID(ctx, typeID)
	if err != nil {
		return nil, err
	}
	if _, err := s.access.RequirePrivileged(ctx, p, rt.ShopID); err != nil {
		return nil, err
	}

	before := *rt
	if input.Title != nil {
		if *input.Title == "" {
			return nil, fmt.Errorf("%w: title cannot be empty", domain.ErrInvalidInput)
		}
		rt.Title = *input.Title
	}
	if input.Category != nil {
		if !validCategory(*input.Category) {
			return nil, fmt.Errorf("%w: unknown category %q", domain.ErrInvalidInput, *input.Category)
		}
		rt.Category = *input.Category
	}
	if input.Active != nil {
		rt.Active = *input.Active
	}

	if err := s.repo.UpdateType(ctx, rt); err != nil {
		return nil, err
	}

	if err := s.auditLogger.LogEvent(ctx, model.LogResourceTypeModified, p.UserID, audit.Refs{ShopID: &rt.ShopID, ResourceTypeID: &rt.ID}, &before, rt, req); err != nil {
		return nil, fmt.Errorf("logging resource type update: %w", err)
	}

	return rt, nil
}

// ListTypes lists a shop's resource types with their resources. Any shop
// member may read the catalog.
func (s *ResourceService) ListTypes(ctx context.Context, p access.Principal, shopID uuid.UUID) ([]*model.ResourceType, error) {
	if _, err := s.access.Require(ctx, p, access.Scope{ShopID: shopID}); err != nil {
		return nil, err
	}
	return s.repo.FindTypesByShop(ctx, shopID)
}

type CreateResourceInput struct {
	ResourceTypeID       uuid.UUID `json:"resource_type_id" validate:"required"`
	Title                string    `json:"title" validate:"required"`
	Description          string    `json:"description"`
	MachineCostPerMinute int64     `json:"machine_cost_per_minute" validate:"gte=0"`
	LaborCostPerMinute   int64     `json:"labor_cost_per_minute" validate:"gte=0"`
}

// CreateResource adds a resource under a type. Privileged members only.
func (s *ResourceService) CreateResource(ctx context.Context, p access.Principal, shopID uuid.UUID, input CreateResourceInput, req *http.Request) (*model.Resource, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	if _, err := s.access.RequirePrivileged(ctx, p, shopID); err != nil {
		return nil, err
	}

	rt, err := s.repo.FindTypeByID(ctx, input.ResourceTypeID)
	if err != nil {
		return nil, err
	}
	if rt.ShopID != shopID {
		return nil, fmt.Errorf("%w: resource type belongs to a different shop", domain.ErrInvalidInput)
	}

	resource := &model.Resource{
		ShopID:               shopID,
		ResourceTypeID:       rt.ID,
		Title:                input.Title,
		Description:          input.Description,
		MachineCostPerMinute: input.MachineCostPerMinute,
		LaborCostPerMinute:   input.LaborCostPerMinute,
		Active:               true,
	}
	if err := s.repo.Create(ctx, resource); err != nil {
		return nil, err
	}

	if err := s.auditLogger.LogEvent(ctx, model.LogResourceCreated, p.UserID, audit.Refs{ShopID: &shopID, ResourceID: &resource.ID, ResourceTypeID: &rt.ID}, nil, resource, req); err != nil {
		return nil, fmt.Errorf("logging resource creation: %w", err)
	}

	return resource, nil
}

type UpdateResourceInput struct {
	Title                *string `json:"title"`
	Description          *string `json:"description"`
	MachineCostPerMinute *int64  `json:"machine_cost_per_minute"`
	LaborCostPerMinute   *int64  `json:"labor_cost_per_minute"`
	Active               *bool   `json:"active"`
}

// UpdateResource modifies a resource. Privileged members only. Rate changes
// affect future aggregations immediately; finalized jobs keep the ledger
// amounts they were charged.
func (s *ResourceService) UpdateResource(ctx context.Context, p access.Principal, resourceID uuid.UUID, input UpdateResourceInput, req *http.Request) (*model.Resource, error) {
	resource, err := s.repo.FindByID(ctx, resourceID)
	if err != nil {
		return nil, err
	}
	if _, err := s.access.RequirePrivileged(ctx, p, resource.ShopID); err != nil {
		return nil, err
	}

	before := *resource
	if input.Title != nil {
		if *input.Title == "" {
			return nil, fmt.Errorf("%w: title cannot be empty", domain.ErrInvalidInput)
		}
		resource.Title = *input.Title
	}
	if input.Description != nil {
		resource.Description = *input.Description
	}
	if input.MachineCostPerMinute != nil {
		if *input.MachineCostPerMinute < 0 {
			return nil, fmt.Errorf("%w: rate cannot be negative", domain.ErrInvalidInput)
		}
		resource.MachineCostPerMinute = *input.MachineCostPerMinute
	}
	if input.LaborCostPerMinute != nil {
		if *input.LaborCostPerMinute < 0 {
			return nil, fmt.Errorf("%w: rate cannot be negative", domain.ErrInvalidInput)
		}
		resource.LaborCostPerMinute = *input.LaborCostPerMinute
	}
	if input.Active != nil {
		resource.Active = *input.Active
	}

	if err := s.repo.Update(ctx, resource); err != nil {
		return nil, err
	}

	if err := s.auditLogger.LogEvent(ctx, model.LogResourceModified, p.UserID, audit.Refs{ShopID: &resource.ShopID, ResourceID: &resource.ID}, &before, resource, req); err != nil {
		return nil, fmt.Errorf("logging resource update: %w", err)
	}

	return resource, nil
}

// GetResource loads a single resource. Any shop member may read it.
func (s *ResourceService) GetResource(ctx context.Context, p access.Principal, resourceID uuid.UUID) (*model.Resource, error) {
	resource, err := s.repo.FindByID(ctx, resourceID)
	if err != nil {
		return nil, err
	}
	if _, err := s.access.Require(ctx, p, access.Scope{ShopID: resource.ShopID}); err != nil {
		return nil, err
	}
	return resource, nil
}

func validCategory(c model.ResourceCategory) bool {
	switch c {
	case model.CategoryAdditive, model.CategorySubtractive, model.CategoryFinishing:
		return true
	}
	return false
}
