// internal/service/material.go
package service

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/openfab/printhub/internal/access"
	"github.com/openfab/printhub/internal/audit"
	"github.com/openfab/printhub/internal/domain"
	"github.com/openfab/printhub/internal/model"
	"github.com/openfab/printhub/internal/repository"
)

type MaterialService struct {
	repo        repository.ResourceRepositoryIface
	access      *AccessService
	auditLogger audit.Logger
	validate    *validator.Validate
}

func NewMaterialService(
	repo repository.ResourceRepositoryIface,
	access *AccessService,
	auditLogger audit.Logger,
) *MaterialService {
	return &MaterialService{
		repo:        repo,
		access:      access,
		auditLogger: auditLogger,
		validate:    validator.New(),
	}
}

type CreateMaterialInput struct {
	ResourceTypeID uuid.UUID `json:"resource_type_id" validate:"required"`
	Title          string    `json:"title" validate:"required"`
	Manufacturer   string    `json:"manufacturer"`
	CostPerGram    int64     `json:"cost_per_gram" validate:"gte=0"`
	Certifications []string  `json:"certifications"`
}

// CreateMaterial adds a material under a resource type. Privileged members
// only.
func (s *MaterialService) CreateMaterial(ctx context.Context, p access.Principal, shopID uuid.UUID, input CreateMaterialInput, req *http.Request) (*model.Material, error) {
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

	material := &model.Material{
		ShopID:         shopID,
		ResourceTypeID: rt.ID,
		Title:          input.Title,
		Manufacturer:   input.Manufacturer,
		CostPerGram:    input.CostPerGram,
		Certifications: pq.StringArray(input.Certifications),
		Active:         true,
	}
	if err := s.repo.CreateMaterial(ctx, material); err != nil {
		return nil, err
	}

	if err := s.auditLogger.LogEvent(ctx, model.LogMaterialCreated, p.UserID, audit.Refs{ShopID: &shopID, MaterialID: &material.ID, ResourceTypeID: &rt.ID}, nil, material, req); err != nil {
		return nil, fmt.Errorf("logging material creation: %w", err)
	}

	return material, nil
}

type UpdateMaterialInput struct {
	Title          *string   `json:"title"`
	Manufacturer   *string   `json:"manufacturer"`
	CostPerGram    *int64    `json:"cost_per_gram"`
	Certifications *[]string `json:"certifications"`
	Active         *bool     `json:"active"`
}

// UpdateMaterial modifies a material. Privileged members only.
func (s *MaterialService) UpdateMaterial(ctx context.Context, p access.Principal, materialID uuid.UUID, input UpdateMaterialInput, req *http.Request) (*model.Material, error) {
	material, err := s.repo.FindMaterialByID(ctx, materialID)
	if err != nil {
		return nil, err
	}
	if _, err := s.access.RequirePrivileged(ctx, p, material.ShopID); err != nil {
		return nil, err
	}

	before := *material
	if input.Title != nil {
		if *input.Title == "" {
			return nil, fmt.Errorf("%w: title cannot be empty", domain.ErrInvalidInput)
		}
		material.Title = *input.Title
	}
	if input.Manufacturer != nil {
		material.Manufacturer = *input.Manufacturer
	}
	if input.CostPerGram != nil {
		if *input.CostPerGram < 0 {
			return nil, fmt.Errorf("%w: rate cannot be negative", domain.ErrInvalidInput)
		}
		material.CostPerGram = *input.CostPerGram
	}
	if input.Certifications != nil {
		material.Certifications = pq.StringArray(*input.Certifications)
	}
	if input.Active != nil {
		material.Active = *input.Active
	}

	if err := s.repo.UpdateMaterial(ctx, material); err != nil {
		return nil, err
	}

	if err := s.auditLogger.LogEvent(ctx, model.LogMaterialModified, p.UserID, audit.Refs{ShopID: &material.ShopID, MaterialID: &material.ID}, &before, material, req); err != nil {
		return nil, fmt.Errorf("logging material update: %w", err)
	}

	return material, nil
}

// ListMaterials lists the active materials under a resource type. Any shop
// member may read the catalog.
func (s *MaterialService) ListMaterials(ctx context.Context, p access.Principal, typeID uuid.UUID) ([]*model.Material, error) {
	rt, err := s.repo.FindTypeByID(ctx, typeID)
	if err != nil {
		return nil, err
	}
	if _, err := s.access.Require(ctx, p, access.Scope{ShopID: rt.ShopID}); err != nil {
		return nil, err
	}
	return s.repo.FindMaterialsByType(ctx, typeID)
}
