// internal/repository/job.go
package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/openfab/printhub/internal/domain"
	"github.com/openfab/printhub/internal/model"
	"gorm.io/gorm"
)

type JobRepositoryIface interface {
	Begin(ctx context.Context) (Transaction, error)

	Create(ctx context.Context, job *model.Job) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Job, error)
	FindByIDWithItems(ctx context.Context, id uuid.UUID) (*model.Job, error)
	FindByShop(ctx context.Context, shopID uuid.UUID) ([]*model.Job, error)
	FindByGroup(ctx context.Context, groupID uuid.UUID) ([]*model.Job, error)
	Update(ctx context.Context, job *model.Job) error
	Finalize(ctx context.Context, jobID uuid.UUID, at time.Time) error

	CreateItem(ctx context.Context, item *model.JobItem) error
	FindItemByID(ctx context.Context, id uuid.UUID) (*model.JobItem, error)
	FindActiveItems(ctx context.Context, jobID uuid.UUID) ([]model.JobItem, error)
	UpdateItem(ctx context.Context, item *model.JobItem) error
}

type JobRepository struct {
	db *gorm.DB
}

func NewJobRepository(db *gorm.DB) *JobRepository {
	return &JobRepository{db: db}
}

// Begin starts a new database transaction and returns a Transaction instance.
func (r *JobRepository) Begin(ctx context.Context) (Transaction, error) {
	tx := r.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &gormTransaction{tx: tx}, nil
}

func (r *JobRepository) Create(ctx context.Context, job *model.Job) error {
	result := r.db.WithContext(ctx).Create(job)
	if result.Error != nil {
		return fmt.Errorf("failed to create job: %w", result.Error)
	}
	return nil
}

func (r *JobRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Job, error) {
	var job model.Job
	result := r.db.WithContext(ctx).First(&job, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domain.ErrJobNotFound
		}
		return nil, fmt.Errorf("failed to find job: %w", result.Error)
	}
	return &job, nil
}

// FindByIDWithItems loads a job with its active items and their resolved
// resource and material rows, ready for aggregation.
func (r *JobRepository) FindByIDWithItems(ctx context.Context, id uuid.UUID) (*model.Job, error) {
	var job model.Job
	result := r.db.WithContext(ctx).
		Preload("Items", "active = true").
		Preload("Items.Resource").
		Preload("Items.Resource.ResourceType").
		Preload("Items.Material").
		Preload("Items.SecondaryMaterial").
		First(&job, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domain.ErrJobNotFound
		}
		return nil, fmt.Errorf("failed to find job with items: %w", result.Error)
	}
	return &job, nil
}

func (r *JobRepository) FindByShop(ctx context.Context, shopID uuid.UUID) ([]*model.Job, error) {
	var jobs []*model.Job
	result := r.db.WithContext(ctx).
		Where("shop_id = ?", shopID).
		Order("created_at desc").
		Find(&jobs)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to find jobs: %w", result.Error)
	}
	return jobs, nil
}

func (r *JobRepository) FindByGroup(ctx context.Context, groupID uuid.UUID) ([]*model.Job, error) {
	var jobs []*model.Job
	result := r.db.WithContext(ctx).
		Preload("Items", "active = true").
		Where("group_id = ?", groupID).
		Order("created_at desc").
		Find(&jobs)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to find group jobs: %w", result.Error)
	}
	return jobs, nil
}

func (r *JobRepository) Update(ctx context.Context, job *model.Job) error {
	result := r.db.WithContext(ctx).Save(job)
	if result.Error != nil {
		return fmt.Errorf("failed to update job: %w", result.Error)
	}
	return nil
}

// Finalize flips the finalized flag with a compare-and-set on its previous
// value. Zero affected rows means another request finalized the job first,
// reported as domain.ErrConcurrentFinalization.
func (r *JobRepository) Finalize(ctx context.Context, jobID uuid.UUID, at time.Time) error {
	result := r.db.WithContext(ctx).
		Model(&model.Job{}).
		Where("id = ? AND finalized = false", jobID).
		Updates(map[string]interface{}{
			"finalized":    true,
			"finalized_at": at,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to finalize job: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrConcurrentFinalization
	}
	return nil
}

func (r *JobRepository) CreateItem(ctx context.Context, item *model.JobItem) error {
	result := r.db.WithContext(ctx).Create(item)
	if result.Error != nil {
		return fmt.Errorf("failed to create job item: %w", result.Error)
	}
	return nil
}

func (r *JobRepository) FindItemByID(ctx context.Context, id uuid.UUID) (*model.JobItem, error) {
	var item model.JobItem
	result := r.db.WithContext(ctx).First(&item, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domain.ErrJobItemNotFound
		}
		return nil, fmt.Errorf("failed to find job item: %w", result.Error)
	}
	return &item, nil
}

func (r *JobRepository) FindActiveItems(ctx context.Context, jobID uuid.UUID) ([]model.JobItem, error) {
	var items []model.JobItem
	result := r.db.WithContext(ctx).
		Preload("Resource").
		Preload("Resource.ResourceType").
		Preload("Material").
		Preload("SecondaryMaterial").
		Where("job_id = ? AND active = true", jobID).
		Order("created_at asc").
		Find(&items)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to find job items: %w", result.Error)
	}
	return items, nil
}

func (r *JobRepository) UpdateItem(ctx context.Context, item *model.JobItem) error {
	result := r.db.WithContext(ctx).Save(item)
	if result.Error != nil {
		return fmt.Errorf("failed to update job item: %w", result.Error)
	}
	return nil
}
