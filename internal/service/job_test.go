package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/openfab/printhub/internal/access"
	"github.com/openfab/printhub/internal/audit"
	"github.com/openfab/printhub/internal/domain"
	"github.com/openfab/printhub/internal/mocks"
	"github.com/openfab/printhub/internal/model"
	"github.com/openfab/printhub/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func f64(v float64) *float64 { return &v }

type jobServiceMocks struct {
	jobRepo    *mocks.MockJobRepositoryIface
	shopRepo   *mocks.MockShopRepositoryIface
	groupRepo  *mocks.MockGroupRepositoryIface
	userRepo   *mocks.MockUserRepositoryIface
	ledgerRepo *mocks.MockLedgerRepositoryIface
}

func newJobService(ctrl *gomock.Controller) (*service.JobService, jobServiceMocks) {
	m := jobServiceMocks{
		jobRepo:    mocks.NewMockJobRepositoryIface(ctrl),
		shopRepo:   mocks.NewMockShopRepositoryIface(ctrl),
		groupRepo:  mocks.NewMockGroupRepositoryIface(ctrl),
		userRepo:   mocks.NewMockUserRepositoryIface(ctrl),
		ledgerRepo: mocks.NewMockLedgerRepositoryIface(ctrl),
	}

	svc := service.NewJobService(
		m.jobRepo,
		m.shopRepo,
		m.groupRepo,
		m.userRepo,
		m.ledgerRepo,
		service.NewAccessService(m.shopRepo, m.groupRepo),
		&audit.NoOpLogger{},
		nil,
		"http://localhost:8080",
	)
	return svc, m
}

// costableItem carries preloaded relations so aggregation can resolve rates
// without further lookups.
func costableItem(jobID uuid.UUID) model.JobItem {
	typeID := uuid.New()
	return model.JobItem{
		ID:       uuid.New(),
		JobID:    jobID,
		Quantity: 1,
		Status:   model.StatusCompleted,
		Active:   true,
		Resource: &model.Resource{
			ID:                   uuid.New(),
			ResourceTypeID:       typeID,
			MachineCostPerMinute: 5,
			ResourceType:         model.ResourceType{ID: typeID, Category: model.CategorySubtractive},
		},
		Material:       &model.Material{ID: uuid.New(), CostPerGram: 2},
		MachineMinutes: f64(10),
		MaterialGrams:  f64(5),
	}
}

func TestJobFinalize(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	operatorID := uuid.New()
	shopID := uuid.New()
	operator := access.Principal{UserID: operatorID}

	operatorMembership := &model.UserShop{
		UserID:      operatorID,
		ShopID:      shopID,
		AccountType: model.AccountOperator,
		Active:      true,
	}

	openJob := func() *model.Job {
		return &model.Job{
			ID:     uuid.New(),
			Title:  "Bracket run",
			Status: model.StatusCompleted,
			UserID: uuid.New(),
			ShopID: shopID,
		}
	}

	t.Run("charges the ledger and flips the flag", func(t *testing.T) {
		job := openJob()
		item := costableItem(job.ID)
		tx := mocks.NewMockTransaction(ctrl)

		m := setupFinalize(t, ctrl, job, operator, operatorMembership)
		m.jobRepo.EXPECT().FindActiveItems(gomock.Any(), job.ID).Return([]model.JobItem{item}, nil)
		m.shopRepo.EXPECT().FindByID(gomock.Any(), shopID).Return(&model.Shop{ID: shopID, Balance: 1000}, nil)

		m.jobRepo.EXPECT().Begin(gomock.Any()).Return(tx, nil)
		m.jobRepo.EXPECT().Finalize(gomock.Any(), job.ID, gomock.Any()).Return(nil)

		// 5*10 machine + 2*5 material
		m.ledgerRepo.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, entry *model.LedgerItem) error {
				assert.Equal(t, shopID, entry.ShopID)
				assert.Equal(t, operatorID, entry.UserID)
				require.NotNil(t, entry.JobID)
				assert.Equal(t, job.ID, *entry.JobID)
				assert.Equal(t, model.LedgerJobCharge, entry.Type)
				assert.Equal(t, int64(-60), entry.Amount)
				return nil
			})
		m.shopRepo.EXPECT().AdjustBalance(gomock.Any(), shopID, int64(-60)).Return(nil)
		tx.EXPECT().Commit().Return(nil)
		tx.EXPECT().Rollback().Return(nil).AnyTimes()

		svc := m.svc
		out, err := svc.Finalize(ctx, operator, job.ID, nil)

		require.NoError(t, err)
		assert.True(t, out.Job.Finalized)
		assert.NotNil(t, out.Job.FinalizedAt)
		assert.Equal(t, int64(60), out.Aggregate.TotalCost)
		assert.False(t, out.InsufficientBalance)
	})

	t.Run("flags insufficient balance but still finalizes", func(t *testing.T) {
		job := openJob()
		item := costableItem(job.ID)
		tx := mocks.NewMockTransaction(ctrl)

		m := setupFinalize(t, ctrl, job, operator, operatorMembership)
		m.jobRepo.EXPECT().FindActiveItems(gomock.Any(), job.ID).Return([]model.JobItem{item}, nil)
		m.shopRepo.EXPECT().FindByID(gomock.Any(), shopID).Return(&model.Shop{ID: shopID, Balance: 10}, nil)
		m.jobRepo.EXPECT().Begin(gomock.Any()).Return(tx, nil)
		m.jobRepo.EXPECT().Finalize(gomock.Any(), job.ID, gomock.Any()).Return(nil)
		m.ledgerRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
		m.shopRepo.EXPECT().AdjustBalance(gomock.Any(), shopID, int64(-60)).Return(nil)
		tx.EXPECT().Commit().Return(nil)
		tx.EXPECT().Rollback().Return(nil).AnyTimes()

		out, err := m.svc.Finalize(ctx, operator, job.ID, nil)

		require.NoError(t, err)
		assert.True(t, out.InsufficientBalance)
	})

	t.Run("rejects an already finalized job", func(t *testing.T) {
		job := openJob()
		job.Finalized = true

		svc, m := newJobService(ctrl)
		m.jobRepo.EXPECT().FindByID(gomock.Any(), job.ID).Return(job, nil)

		_, err := svc.Finalize(ctx, operator, job.ID, nil)
		assert.ErrorIs(t, err, domain.ErrConcurrentFinalization)
	})

	t.Run("rolls back on a compare-and-set conflict", func(t *testing.T) {
		job := openJob()
		item := costableItem(job.ID)
		tx := mocks.NewMockTransaction(ctrl)

		m := setupFinalize(t, ctrl, job, operator, operatorMembership)
		m.jobRepo.EXPECT().FindActiveItems(gomock.Any(), job.ID).Return([]model.JobItem{item}, nil)
		m.shopRepo.EXPECT().FindByID(gomock.Any(), shopID).Return(&model.Shop{ID: shopID, Balance: 1000}, nil)
		m.jobRepo.EXPECT().Begin(gomock.Any()).Return(tx, nil)
		m.jobRepo.EXPECT().Finalize(gomock.Any(), job.ID, gomock.Any()).Return(domain.ErrConcurrentFinalization)
		tx.EXPECT().Rollback().Return(nil)

		_, err := m.svc.Finalize(ctx, operator, job.ID, nil)
		assert.ErrorIs(t, err, domain.ErrConcurrentFinalization)
	})

	t.Run("refuses while an item is uncostable", func(t *testing.T) {
		job := openJob()
		item := costableItem(job.ID)
		item.MachineMinutes = nil

		m := setupFinalize(t, ctrl, job, operator, operatorMembership)
		m.jobRepo.EXPECT().FindActiveItems(gomock.Any(), job.ID).Return([]model.JobItem{item}, nil)

		_, err := m.svc.Finalize(ctx, operator, job.ID, nil)
		assert.ErrorIs(t, err, domain.ErrMissingUsageData)
	})

	t.Run("denies customer accounts", func(t *testing.T) {
		job := openJob()
		customer := access.Principal{UserID: job.UserID}

		svc, m := newJobService(ctrl)
		m.jobRepo.EXPECT().FindByID(gomock.Any(), job.ID).Return(job, nil)
		m.shopRepo.EXPECT().
			FindMembership(gomock.Any(), customer.UserID, shopID).
			Return(&model.UserShop{UserID: customer.UserID, ShopID: shopID, AccountType: model.AccountCustomer, Active: true}, nil)

		_, err := svc.Finalize(ctx, customer, job.ID, nil)
		assert.ErrorIs(t, err, domain.ErrUnauthorized)
	})
}

type finalizeMocks struct {
	jobServiceMocks
	svc *service.JobService
}

// setupFinalize wires the load and access expectations every finalize path
// starts with.
func setupFinalize(t *testing.T, ctrl *gomock.Controller, job *model.Job, p access.Principal, membership *model.UserShop) finalizeMocks {
	t.Helper()

	svc, m := newJobService(ctrl)
	m.jobRepo.EXPECT().FindByID(gomock.Any(), job.ID).Return(job, nil)
	m.shopRepo.EXPECT().FindMembership(gomock.Any(), p.UserID, job.ShopID).Return(membership, nil)

	return finalizeMocks{jobServiceMocks: m, svc: svc}
}

func TestJobUpdateGuards(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	shopID := uuid.New()
	ownerID := uuid.New()

	t.Run("finalized jobs are immutable", func(t *testing.T) {
		job := &model.Job{ID: uuid.New(), ShopID: shopID, UserID: ownerID, Finalized: true}

		svc, m := newJobService(ctrl)
		m.jobRepo.EXPECT().FindByID(gomock.Any(), job.ID).Return(job, nil)

		title := "renamed"
		_, err := svc.UpdateJob(ctx, access.Principal{UserID: ownerID}, job.ID, service.UpdateJobInput{Title: &title}, nil)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("status changes require a privileged role", func(t *testing.T) {
		job := &model.Job{ID: uuid.New(), ShopID: shopID, UserID: ownerID}

		svc, m := newJobService(ctrl)
		m.jobRepo.EXPECT().FindByID(gomock.Any(), job.ID).Return(job, nil)
		m.shopRepo.EXPECT().
			FindMembership(gomock.Any(), ownerID, shopID).
			Return(&model.UserShop{UserID: ownerID, ShopID: shopID, AccountType: model.AccountCustomer, Active: true}, nil)

		status := model.StatusCompleted
		_, err := svc.UpdateJob(ctx, access.Principal{UserID: ownerID}, job.ID, service.UpdateJobInput{Status: &status}, nil)
		assert.ErrorIs(t, err, domain.ErrUnauthorized)
	})

	t.Run("usage metrics are privileged-only on items", func(t *testing.T) {
		job := &model.Job{ID: uuid.New(), ShopID: shopID, UserID: ownerID}
		item := &model.JobItem{ID: uuid.New(), JobID: job.ID, Quantity: 1, Active: true}

		svc, m := newJobService(ctrl)
		m.jobRepo.EXPECT().FindItemByID(gomock.Any(), item.ID).Return(item, nil)
		m.jobRepo.EXPECT().FindByID(gomock.Any(), job.ID).Return(job, nil)
		m.shopRepo.EXPECT().
			FindMembership(gomock.Any(), ownerID, shopID).
			Return(&model.UserShop{UserID: ownerID, ShopID: shopID, AccountType: model.AccountCustomer, Active: true}, nil)

		_, err := svc.UpdateItem(ctx, access.Principal{UserID: ownerID}, item.ID, service.UpdateJobItemInput{MachineMinutes: f64(12)}, nil)
		assert.ErrorIs(t, err, domain.ErrUnauthorized)
	})

	t.Run("unknown status is rejected", func(t *testing.T) {
		job := &model.Job{ID: uuid.New(), ShopID: shopID, UserID: ownerID}

		svc, m := newJobService(ctrl)
		m.jobRepo.EXPECT().FindByID(gomock.Any(), job.ID).Return(job, nil)
		m.shopRepo.EXPECT().
			FindMembership(gomock.Any(), ownerID, shopID).
			Return(&model.UserShop{UserID: ownerID, ShopID: shopID, AccountType: model.AccountAdmin, Active: true}, nil)

		status := model.Status("SHIPPED")
		_, err := svc.UpdateJob(ctx, access.Principal{UserID: ownerID}, job.ID, service.UpdateJobInput{Status: &status}, nil)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}
