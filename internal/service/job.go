// internal/service/job.go
package service

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/openfab/printhub/internal/access"
	"github.com/openfab/printhub/internal/audit"
	"github.com/openfab/printhub/internal/costing"
	"github.com/openfab/printhub/internal/domain"
	"github.com/openfab/printhub/internal/email"
	"github.com/openfab/printhub/internal/email/mailer"
	"github.com/openfab/printhub/internal/model"
	"github.com/openfab/printhub/internal/repository"
)

// itemConfig builds the costing configuration from an item's preloaded
// relations. Items must come from a query that preloads Resource,
// Resource.ResourceType, Material and SecondaryMaterial.
func itemConfig(item *model.JobItem) costing.Config {
	cfg := costing.Config{
		Resource:  item.Resource,
		Primary:   item.Material,
		Secondary: item.SecondaryMaterial,
	}
	if item.Resource != nil {
		cfg.Category = item.Resource.ResourceType.Category
	}
	return cfg
}

type JobService struct {
	repo        repository.JobRepositoryIface
	shopRepo    repository.ShopRepositoryIface
	groupRepo   repository.GroupRepositoryIface
	userRepo    repository.UserRepositoryIface
	ledgerRepo  repository.LedgerRepositoryIface
	access      *AccessService
	auditLogger audit.Logger
	emailer     *email.Service
	baseURL     string
	validate    *validator.Validate
}

func NewJobService(
	repo repository.JobRepositoryIface,
	shopRepo repository.ShopRepositoryIface,
	groupRepo repository.GroupRepositoryIface,
	userRepo repository.UserRepositoryIface,
	ledgerRepo repository.LedgerRepositoryIface,
	access *AccessService,
	auditLogger audit.Logger,
	emailer *email.Service,
	baseURL string,
) *JobService {
	return &JobService{
		repo:        repo,
		shopRepo:    shopRepo,
		groupRepo:   groupRepo,
		userRepo:    userRepo,
		ledgerRepo:  ledgerRepo,
		access:      access,
		auditLogger: auditLogger,
		emailer:     emailer,
		baseURL:     baseURL,
		validate:    validator.New(),
	}
}

type CreateJobInput struct {
	Title       string     `json:"title" validate:"required"`
	Description string     `json:"description"`
	DueDate     *time.Time `json:"due_date"`
	GroupID     *uuid.UUID `json:"group_id"`
}

// CreateJob creates a job in a shop, optionally billed to a group. Group
// jobs require create permission on the group.
func (s *JobService) CreateJob(ctx context.Context, p access.Principal, shopID uuid.UUID, input CreateJobInput, req *http.Request) (*model.Job, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	m, err := s.access.Require(ctx, p, access.Scope{ShopID: shopID, GroupID: input.GroupID})
	if err != nil {
		return nil, err
	}

	if input.GroupID != nil {
		group, err := s.groupRepo.FindByID(ctx, *input.GroupID)
		if err != nil {
			return nil, err
		}
		if group.ShopID != shopID {
			return nil, fmt.Errorf("%w: group belongs to a different shop", domain.ErrInvalidInput)
		}
		if !access.CanCreateGroupJobs(p, group, m) {
			return nil, domain.AccessDenied(access.ReasonNoGroupAccess)
		}
	}

	job := &model.Job{
		Title:       input.Title,
		Description: input.Description,
		Status:      model.StatusNotStarted,
		DueDate:     input.DueDate,
		UserID:      p.UserID,
		ShopID:      shopID,
		GroupID:     input.GroupID,
	}
	if err := s.repo.Create(ctx, job); err != nil {
		return nil, err
	}

	if err := s.auditLogger.LogEvent(ctx, model.LogJobCreated, p.UserID, audit.Refs{ShopID: &shopID, JobID: &job.ID, BillingGroupID: input.GroupID}, nil, job, req); err != nil {
		return nil, fmt.Errorf("logging job creation: %w", err)
	}

	return job, nil
}

// GetJob loads a job with its active items. Customer-level accounts may
// only read their own jobs.
func (s *JobService) GetJob(ctx context.Context, p access.Principal, jobID uuid.UUID) (*model.Job, error) {
	job, err := s.repo.FindByIDWithItems(ctx, jobID)
	if err != nil {
		return nil, err
	}

	if _, err := s.access.Require(ctx, p, access.Scope{ShopID: job.ShopID, GroupID: job.GroupID, JobOwnerID: &job.UserID}); err != nil {
		return nil, err
	}

	return job, nil
}

// ListJobs lists a shop's jobs visible to the principal. Customer-level
// accounts see only their own.
func (s *JobService) ListJobs(ctx context.Context, p access.Principal, shopID uuid.UUID) ([]*model.Job, error) {
	m, err := s.access.Require(ctx, p, access.Scope{ShopID: shopID})
	if err != nil {
		return nil, err
	}

	jobs, err := s.repo.FindByShop(ctx, shopID)
	if err != nil {
		return nil, err
	}

	if p.Admin || (m.Shop != nil && m.Shop.AccountType.Privileged()) {
		return jobs, nil
	}

	own := make([]*model.Job, 0, len(jobs))
	for _, j := range jobs {
		if j.UserID == p.UserID {
			own = append(own, j)
		}
	}
	return own, nil
}

type UpdateJobInput struct {
	Title       *string       `json:"title"`
	Description *string       `json:"description"`
	DueDate     *time.Time    `json:"due_date"`
	Status      *model.Status `json:"status"`
}

// UpdateJob modifies job attributes. Finalized jobs are immutable. Status
// changes are restricted to privileged members; transitions themselves are
// unconstrained.
func (s *JobService) UpdateJob(ctx context.Context, p access.Principal, jobID uuid.UUID, input UpdateJobInput, req *http.Request) (*model.Job, error) {
	job, err := s.repo.FindByID(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if job.Finalized {
		return nil, fmt.Errorf("%w: job is finalized", domain.ErrInvalidInput)
	}

	m, err := s.access.Require(ctx, p, access.Scope{ShopID: job.ShopID, GroupID: job.GroupID, JobOwnerID: &job.UserID})
	if err != nil {
		return nil, err
	}

	before := *job
	if input.Title != nil {
		if *input.Title == "" {
			return nil, fmt.Errorf("%w: title cannot be empty", domain.ErrInvalidInput)
		}
		job.Title = *input.Title
	}
	if input.Description != nil {
		job.Description = *input.Description
	}
	if input.DueDate != nil {
		job.DueDate = input.DueDate
	}
	if input.Status != nil {
		if !model.ValidStatus(*input.Status) {
			return nil, fmt.Errorf("%w: unknown status %q", domain.ErrInvalidInput, *input.Status)
		}
		if !s.privileged(p, m) {
			return nil, domain.AccessDenied(access.ReasonNoShopAccess)
		}
		job.Status = *input.Status
	}

	if err := s.repo.Update(ctx, job); err != nil {
		return nil, err
	}

	if err := s.auditLogger.LogEvent(ctx, model.LogJobModified, p.UserID, audit.Refs{ShopID: &job.ShopID, JobID: &job.ID}, &before, job, req); err != nil {
		return nil, fmt.Errorf("logging job update: %w", err)
	}

	return job, nil
}

type CreateJobItemInput struct {
	Title               string     `json:"title" validate:"required"`
	Quantity            int        `json:"quantity" validate:"gte=1"`
	FileURL             string     `json:"file_url"`
	FileName            string     `json:"file_name"`
	FileType            string     `json:"file_type"`
	ResourceTypeID      *uuid.UUID `json:"resource_type_id"`
	ResourceID          *uuid.UUID `json:"resource_id"`
	MaterialID          *uuid.UUID `json:"material_id"`
	SecondaryMaterialID *uuid.UUID `json:"secondary_material_id"`
}

// CreateItem adds an item to a job. The job must not be finalized.
func (s *JobService) CreateItem(ctx context.Context, p access.Principal, jobID uuid.UUID, input CreateJobItemInput, req *http.Request) (*model.JobItem, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	job, err := s.repo.FindByID(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if job.Finalized {
		return nil, fmt.Errorf("%w: job is finalized", domain.ErrInvalidInput)
	}

	if _, err := s.access.Require(ctx, p, access.Scope{ShopID: job.ShopID, GroupID: job.GroupID, JobOwnerID: &job.UserID}); err != nil {
		return nil, err
	}

	item := &model.JobItem{
		JobID:               job.ID,
		Title:               input.Title,
		Quantity:            input.Quantity,
		Status:              model.StatusNotStarted,
		Active:              true,
		FileURL:             input.FileURL,
		FileName:            input.FileName,
		FileType:            input.FileType,
		ResourceTypeID:      input.ResourceTypeID,
		ResourceID:          input.ResourceID,
		MaterialID:          input.MaterialID,
		SecondaryMaterialID: input.SecondaryMaterialID,
	}
	if err := s.repo.CreateItem(ctx, item); err != nil {
		return nil, err
	}

	if err := s.auditLogger.LogEvent(ctx, model.LogJobItemCreated, p.UserID, audit.Refs{ShopID: &job.ShopID, JobID: &job.ID, JobItemID: &item.ID}, nil, item, req); err != nil {
		return nil, fmt.Errorf("logging item creation: %w", err)
	}

	return item, nil
}

type UpdateJobItemInput struct {
	Title               *string       `json:"title"`
	Quantity            *int          `json:"quantity"`
	Status              *model.Status `json:"status"`
	Approved            *bool         `json:"approved"`
	ClearApproval       bool          `json:"clear_approval"`
	Active              *bool         `json:"active"`
	ResourceID          *uuid.UUID    `json:"resource_id"`
	MaterialID          *uuid.UUID    `json:"material_id"`
	SecondaryMaterialID *uuid.UUID    `json:"secondary_material_id"`

	MachineMinutes         *float64 `json:"machine_minutes"`
	MaterialGrams          *float64 `json:"material_grams"`
	SecondaryMaterialGrams *float64 `json:"secondary_material_grams"`
	LaborMinutes           *float64 `json:"labor_minutes"`
}

// UpdateItem modifies a job item. Status, approval, usage metrics and
// configuration references are privileged-only; owners may edit title and
// quantity while the job is open.
func (s *JobService) UpdateItem(ctx context.Context, p access.Principal, itemID uuid.UUID, input UpdateJobItemInput, req *http.Request) (*model.JobItem, error) {
	item, err := s.repo.FindItemByID(ctx, itemID)
	if err != nil {
		return nil, err
	}

	job, err := s.repo.FindByID(ctx, item.JobID)
	if err != nil {
		return nil, err
	}
	if job.Finalized {
		return nil, fmt.Errorf("%w: job is finalized", domain.ErrInvalidInput)
	}

	m, err := s.access.Require(ctx, p, access.Scope{ShopID: job.ShopID, GroupID: job.GroupID, JobOwnerID: &job.UserID})
	if err != nil {
		return nil, err
	}

	privileged := s.privileged(p, m)
	privilegedOnly := input.Status != nil || input.Approved != nil || input.ClearApproval ||
		input.ResourceID != nil || input.MaterialID != nil || input.SecondaryMaterialID != nil ||
		input.MachineMinutes != nil || input.MaterialGrams != nil ||
		input.SecondaryMaterialGrams != nil || input.LaborMinutes != nil
	if privilegedOnly && !privileged {
		return nil, domain.AccessDenied(access.ReasonNoShopAccess)
	}

	before := *item
	if input.Title != nil {
		item.Title = *input.Title
	}
	if input.Quantity != nil {
		if *input.Quantity < 1 {
			return nil, fmt.Errorf("%w: quantity must be at least 1", domain.ErrInvalidInput)
		}
		item.Quantity = *input.Quantity
	}
	if input.Status != nil {
		if !model.ValidStatus(*input.Status) {
			return nil, fmt.Errorf("%w: unknown status %q", domain.ErrInvalidInput, *input.Status)
		}
		item.Status = *input.Status
	}
	if input.ClearApproval {
		item.Approved = nil
	} else if input.Approved != nil {
		item.Approved = input.Approved
	}
	if input.Active != nil {
		item.Active = *input.Active
	}
	if input.ResourceID != nil {
		item.ResourceID = input.ResourceID
	}
	if input.MaterialID != nil {
		item.MaterialID = input.MaterialID
	}
	if input.SecondaryMaterialID != nil {
		item.SecondaryMaterialID = input.SecondaryMaterialID
	}
	if input.MachineMinutes != nil {
		item.MachineMinutes = input.MachineMinutes
	}
	if input.MaterialGrams != nil {
		item.MaterialGrams = input.MaterialGrams
	}
	if input.SecondaryMaterialGrams != nil {
		item.SecondaryMaterialGrams = input.SecondaryMaterialGrams
	}
	if input.LaborMinutes != nil {
		item.LaborMinutes = input.LaborMinutes
	}

	if err := s.repo.UpdateItem(ctx, item); err != nil {
		return nil, err
	}

	if err := s.auditLogger.LogEvent(ctx, model.LogJobItemModified, p.UserID, audit.Refs{ShopID: &job.ShopID, JobID: &job.ID, JobItemID: &item.ID}, &before, item, req); err != nil {
		return nil, fmt.Errorf("logging item update: %w", err)
	}

	return item, nil
}

// Aggregate computes the cost/status/approval rollup for a job without
// changing anything. Item-level costing errors are reported by item ID.
func (s *JobService) Aggregate(ctx context.Context, p access.Principal, jobID uuid.UUID) (*model.Job, costing.JobAggregate, error) {
	job, err := s.repo.FindByID(ctx, jobID)
	if err != nil {
		return nil, costing.JobAggregate{}, err
	}

	if _, err := s.access.Require(ctx, p, access.Scope{ShopID: job.ShopID, GroupID: job.GroupID, JobOwnerID: &job.UserID}); err != nil {
		return nil, costing.JobAggregate{}, err
	}

	items, err := s.repo.FindActiveItems(ctx, jobID)
	if err != nil {
		return nil, costing.JobAggregate{}, err
	}

	return job, costing.AggregateJob(items, itemConfig, costing.DefaultPolicy), nil
}

// FinalizeOutput reports the outcome of a finalization. InsufficientBalance
// is set when the charge drove the shop balance negative; finalization
// still succeeds in that case.
type FinalizeOutput struct {
	Job                 *model.Job           `json:"job"`
	Aggregate           costing.JobAggregate `json:"aggregate"`
	LedgerItem          *model.LedgerItem    `json:"ledger_item"`
	InsufficientBalance bool                 `json:"insufficient_balance"`
}

// Finalize closes a job and charges its total cost against the shop
// balance. Privileged members only. Every active item must be costable;
// the finalized flag is flipped with a compare-and-set so two concurrent
// finalizations cannot both charge.
func (s *JobService) Finalize(ctx context.Context, p access.Principal, jobID uuid.UUID, req *http.Request) (*FinalizeOutput, error) {
	job, err := s.repo.FindByID(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if job.Finalized {
		return nil, domain.ErrConcurrentFinalization
	}

	m, err := s.access.Require(ctx, p, access.Scope{ShopID: job.ShopID, GroupID: job.GroupID})
	if err != nil {
		return nil, err
	}
	if !s.privileged(p, m) {
		return nil, domain.AccessDenied(access.ReasonNoShopAccess)
	}

	items, err := s.repo.FindActiveItems(ctx, jobID)
	if err != nil {
		return nil, err
	}

	agg := costing.AggregateJob(items, itemConfig, costing.DefaultPolicy)
	if len(agg.ItemErrors) > 0 {
		for itemID, ierr := range agg.ItemErrors {
			return nil, fmt.Errorf("item %s is not costable: %w", itemID, ierr)
		}
	}

	shop, err := s.shopRepo.FindByID(ctx, job.ShopID)
	if err != nil {
		return nil, err
	}

	tx, err := s.repo.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("starting finalize transaction: %w", err)
	}
	defer tx.Rollback()

	now := time.Now().UTC()
	if err := s.repo.Finalize(ctx, jobID, now); err != nil {
		return nil, err
	}

	ledgerItem := &model.LedgerItem{
		ShopID: job.ShopID,
		UserID: p.UserID,
		JobID:  &job.ID,
		Type:   model.LedgerJobCharge,
		Amount: -agg.TotalCost,
	}
	if err := s.ledgerRepo.Create(ctx, ledgerItem); err != nil {
		return nil, err
	}
	if err := s.shopRepo.AdjustBalance(ctx, job.ShopID, -agg.TotalCost); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing finalize: %w", err)
	}

	job.Finalized = true
	job.FinalizedAt = &now

	out := &FinalizeOutput{
		Job:                 job,
		Aggregate:           agg,
		LedgerItem:          ledgerItem,
		InsufficientBalance: shop.Balance < agg.TotalCost,
	}

	if err := s.auditLogger.LogEvent(ctx, model.LogJobFinalized, p.UserID, audit.Refs{ShopID: &job.ShopID, JobID: &job.ID}, nil, out.Aggregate, req); err != nil {
		return nil, fmt.Errorf("logging finalization: %w", err)
	}

	s.sendInvoiceEmail(ctx, job, shop, agg)

	return out, nil
}

// sendInvoiceEmail notifies the job owner. Mail failures never fail the
// finalization; the charge has already been committed.
func (s *JobService) sendInvoiceEmail(ctx context.Context, job *model.Job, shop *model.Shop, agg costing.JobAggregate) {
	if s.emailer == nil {
		return
	}

	owner, err := s.userRepo.FindByID(ctx, job.UserID)
	if err != nil {
		slog.Error("loading job owner for invoice email", "job_id", job.ID, "error", err)
		return
	}

	data := mailer.JobFinalizedTemplateData{
		FirstName: owner.FirstName,
		JobTitle:  job.Title,
		ShopName:  shop.Name,
		Total:     mailer.FormatAmount(agg.TotalCost),
		ItemCount: agg.ItemsCount,
		JobLink:   fmt.Sprintf("%s/shops/%s/jobs/%s", s.baseURL, job.ShopID, job.ID),
	}
	if err := mailer.SendJobFinalizedEmail(s.emailer, owner.Email, data); err != nil {
		slog.Error("sending invoice email", "job_id", job.ID, "error", err)
	}
}

func (s *JobService) privileged(p access.Principal, m access.Memberships) bool {
	if p.Admin {
		return true
	}
	if m.Shop != nil && m.Shop.Active && m.Shop.AccountType.Privileged() {
		return true
	}
	return m.Group != nil && m.Group.Active && m.Group.Role == model.GroupRoleAdmin
}
