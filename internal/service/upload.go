// internal/service/upload.go
package service

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/openfab/printhub/internal/access"
	"github.com/openfab/printhub/internal/audit"
	"github.com/openfab/printhub/internal/config"
	"github.com/openfab/printhub/internal/domain"
	"github.com/openfab/printhub/internal/model"
	"github.com/openfab/printhub/internal/repository"
	"github.com/openfab/printhub/internal/upload"
)

type UploadService struct {
	jobRepo      repository.JobRepositoryIface
	shopRepo     repository.ShopRepositoryIface
	groupRepo    repository.GroupRepositoryIface
	resourceRepo repository.ResourceRepositoryIface
	access       *AccessService
	auditLogger  audit.Logger
	config       *config.Config
	validate     *validator.Validate
}

func NewUploadService(
	jobRepo repository.JobRepositoryIface,
	shopRepo repository.ShopRepositoryIface,
	groupRepo repository.GroupRepositoryIface,
	resourceRepo repository.ResourceRepositoryIface,
	access *AccessService,
	auditLogger audit.Logger,
	config *config.Config,
) *UploadService {
	return &UploadService{
		jobRepo:      jobRepo,
		shopRepo:     shopRepo,
		groupRepo:    groupRepo,
		resourceRepo: resourceRepo,
		access:       access,
		auditLogger:  auditLogger,
		config:       config,
		validate:     validator.New(),
	}
}

// Authorize parses an upload request's scope and checks that the principal
// may upload into it. Each scope variant pins the target entities to the
// shop the access evaluation ran against, so metadata cannot smuggle a
// reference into another tenant.
func (s *UploadService) Authorize(ctx context.Context, p access.Principal, scopeName string, metadata []byte) (upload.Scope, error) {
	scope, err := upload.ParseScope(scopeName, metadata)
	if err != nil {
		return nil, err
	}

	switch sc := scope.(type) {
	case upload.JobFileUpload:
		job, err := s.jobRepo.FindByID(ctx, sc.JobID)
		if err != nil {
			return nil, err
		}
		if job.ShopID != sc.ShopID {
			return nil, fmt.Errorf("%w: job belongs to a different shop", domain.ErrInvalidInput)
		}
		if job.Finalized {
			return nil, fmt.Errorf("%w: job is finalized", domain.ErrInvalidInput)
		}
		if _, err := s.access.Require(ctx, p, access.Scope{ShopID: job.ShopID, GroupID: job.GroupID, JobOwnerID: &job.UserID}); err != nil {
			return nil, err
		}

	case upload.GroupFileUpload:
		group, err := s.groupRepo.FindByID(ctx, sc.GroupID)
		if err != nil {
			return nil, err
		}
		job, err := s.jobRepo.FindByID(ctx, sc.JobID)
		if err != nil {
			return nil, err
		}
		if job.GroupID == nil || *job.GroupID != group.ID {
			return nil, fmt.Errorf("%w: job is not billed to this group", domain.ErrInvalidInput)
		}
		if job.Finalized {
			return nil, fmt.Errorf("%w: job is finalized", domain.ErrInvalidInput)
		}
		if _, err := s.access.Require(ctx, p, access.Scope{ShopID: group.ShopID, GroupID: &group.ID}); err != nil {
			return nil, err
		}

	case upload.ResourceImage:
		resource, err := s.resourceRepo.FindByID(ctx, sc.ResourceID)
		if err != nil {
			return nil, err
		}
		if resource.ShopID != sc.ShopID {
			return nil, fmt.Errorf("%w: resource belongs to a different shop", domain.ErrInvalidInput)
		}
		if _, err := s.access.RequirePrivileged(ctx, p, resource.ShopID); err != nil {
			return nil, err
		}

	case upload.MaterialAsset:
		material, err := s.resourceRepo.FindMaterialByID(ctx, sc.MaterialID)
		if err != nil {
			return nil, err
		}
		if _, err := s.access.RequirePrivileged(ctx, p, material.ShopID); err != nil {
			return nil, err
		}

	case upload.ShopLogo:
		if _, err := s.access.RequireShopAdmin(ctx, p, sc.ShopID); err != nil {
			return nil, err
		}

	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownUploadScope, scopeName)
	}

	return scope, nil
}

// UploadedFile describes a completed upload reported by the file store.
type UploadedFile struct {
	URL       string `json:"url" validate:"required,url"`
	Name      string `json:"name" validate:"required"`
	Type      string `json:"type"`
	SizeBytes int64  `json:"size_bytes"`
}

// Complete registers a finished upload under its authorized scope: job
// files become job items, resource images and material assets attach to
// their entities, shop logos replace the current one. The caller must have
// run Authorize for the same scope within the same request.
func (s *UploadService) Complete(ctx context.Context, p access.Principal, scope upload.Scope, file UploadedFile, req *http.Request) error {
	if err := s.validate.Struct(file); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	if max := int64(s.config.Uploads.MaxFileSizeMB) << 20; file.SizeBytes > max {
		return fmt.Errorf("%w: file exceeds %dMB", domain.ErrInvalidInput, s.config.Uploads.MaxFileSizeMB)
	}

	switch sc := scope.(type) {
	case upload.JobFileUpload:
		return s.registerJobFile(ctx, p, sc.JobID, file, req)

	case upload.GroupFileUpload:
		return s.registerJobFile(ctx, p, sc.JobID, file, req)

	case upload.ResourceImage:
		image := &model.ResourceImage{
			ResourceID: sc.ResourceID,
			FileURL:    file.URL,
			FileName:   file.Name,
			Active:     true,
		}
		if err := s.resourceRepo.AddImage(ctx, image); err != nil {
			return err
		}
		return s.auditLogger.LogEvent(ctx, model.LogFileUploaded, p.UserID, audit.Refs{ResourceID: &sc.ResourceID}, nil, image, req)

	case upload.MaterialAsset:
		material, err := s.resourceRepo.FindMaterialByID(ctx, sc.MaterialID)
		if err != nil {
			return err
		}
		before := *material
		switch sc.Asset {
		case upload.AssetTDS:
			material.TDSFileURL = file.URL
		case upload.AssetImage:
			material.ImageURL = file.URL
		default:
			material.MSDSFileURL = file.URL
		}
		if err := s.resourceRepo.UpdateMaterial(ctx, material); err != nil {
			return err
		}
		return s.auditLogger.LogEvent(ctx, model.LogFileUploaded, p.UserID, audit.Refs{ShopID: &material.ShopID, MaterialID: &material.ID}, &before, material, req)

	case upload.ShopLogo:
		shop, err := s.shopRepo.FindByID(ctx, sc.ShopID)
		if err != nil {
			return err
		}
		before := *shop
		shop.LogoURL = file.URL
		if err := s.shopRepo.Update(ctx, shop); err != nil {
			return err
		}
		return s.auditLogger.LogEvent(ctx, model.LogFileUploaded, p.UserID, audit.Refs{ShopID: &shop.ID}, &before, shop, req)

	default:
		return fmt.Errorf("%w: %q", domain.ErrUnknownUploadScope, scope.Kind())
	}
}

// registerJobFile attaches an uploaded model file to a job as a new item.
func (s *UploadService) registerJobFile(ctx context.Context, p access.Principal, jobID uuid.UUID, file UploadedFile, req *http.Request) error {
	job, err := s.jobRepo.FindByID(ctx, jobID)
	if err != nil {
		return err
	}

	items, err := s.jobRepo.FindActiveItems(ctx, jobID)
	if err != nil {
		return err
	}
	if len(items) >= s.config.Uploads.MaxFileCount {
		return fmt.Errorf("%w: job has reached the limit of %d files", domain.ErrInvalidInput, s.config.Uploads.MaxFileCount)
	}

	item := &model.JobItem{
		JobID:    job.ID,
		Title:    file.Name,
		Quantity: 1,
		Status:   model.StatusNotStarted,
		Active:   true,
		FileURL:  file.URL,
		FileName: file.Name,
		FileType: file.Type,
	}
	if err := s.jobRepo.CreateItem(ctx, item); err != nil {
		return err
	}

	return s.auditLogger.LogEvent(ctx, model.LogFileUploaded, p.UserID, audit.Refs{ShopID: &job.ShopID, JobID: &job.ID, JobItemID: &item.ID}, nil, item, req)
}
