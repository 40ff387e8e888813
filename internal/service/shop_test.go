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

type shopServiceMocks struct {
	shopRepo   *mocks.MockShopRepositoryIface
	groupRepo  *mocks.MockGroupRepositoryIface
	ledgerRepo *mocks.MockLedgerRepositoryIface
}

func newShopService(ctrl *gomock.Controller) (*service.ShopService, shopServiceMocks) {
	m := shopServiceMocks{
		shopRepo:   mocks.NewMockShopRepositoryIface(ctrl),
		groupRepo:  mocks.NewMockGroupRepositoryIface(ctrl),
		ledgerRepo: mocks.NewMockLedgerRepositoryIface(ctrl),
	}

	svc := service.NewShopService(
		m.shopRepo,
		m.ledgerRepo,
		service.NewAccessService(m.shopRepo, m.groupRepo),
		&audit.NoOpLogger{},
	)
	return svc, m
}

func adminMembership(userID, shopID uuid.UUID) *model.UserShop {
	return &model.UserShop{UserID: userID, ShopID: shopID, AccountType: model.AccountAdmin, Active: true}
}

func TestShopCreate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	adminID := uuid.New()

	t.Run("creator receives an admin membership", func(t *testing.T) {
		svc, m := newShopService(ctrl)

		m.shopRepo.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, shop *model.Shop) error {
				shop.ID = uuid.New()
				return nil
			})
		m.shopRepo.EXPECT().
			AddMember(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, membership *model.UserShop) error {
				assert.Equal(t, adminID, membership.UserID)
				assert.Equal(t, model.AccountAdmin, membership.AccountType)
				assert.True(t, membership.Active)
				return nil
			})

		shop, err := svc.CreateShop(ctx, access.Principal{UserID: adminID, Admin: true}, service.CreateShopInput{Name: "North Shop"}, nil)

		require.NoError(t, err)
		assert.Equal(t, "North Shop", shop.Name)
		assert.True(t, shop.Active)
	})

	t.Run("non-admins may not create shops", func(t *testing.T) {
		svc, _ := newShopService(ctrl)

		_, err := svc.CreateShop(ctx, access.Principal{UserID: adminID}, service.CreateShopInput{Name: "North Shop"}, nil)
		assert.ErrorIs(t, err, domain.ErrUnauthorized)
	})

	t.Run("name is required", func(t *testing.T) {
		svc, _ := newShopService(ctrl)

		_, err := svc.CreateShop(ctx, access.Principal{UserID: adminID, Admin: true}, service.CreateShopInput{}, nil)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}

func TestShopAddMember(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	adminID := uuid.New()
	shopID := uuid.New()
	targetID := uuid.New()
	admin := access.Principal{UserID: adminID}

	t.Run("reactivates a removed membership with the new role", func(t *testing.T) {
		svc, m := newShopService(ctrl)

		m.shopRepo.EXPECT().FindMembership(gomock.Any(), adminID, shopID).Return(adminMembership(adminID, shopID), nil)
		m.shopRepo.EXPECT().AddMember(gomock.Any(), gomock.Any()).Return(domain.ErrDuplicateMembership)
		m.shopRepo.EXPECT().
			FindMembership(gomock.Any(), targetID, shopID).
			Return(&model.UserShop{UserID: targetID, ShopID: shopID, AccountType: model.AccountCustomer, Active: false}, nil)
		m.shopRepo.EXPECT().
			UpdateMembership(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, membership *model.UserShop) error {
				assert.True(t, membership.Active)
				assert.Equal(t, model.AccountOperator, membership.AccountType)
				return nil
			})

		membership, err := svc.AddMember(ctx, admin, shopID, service.AddMemberInput{UserID: targetID, AccountType: model.AccountOperator}, nil)

		require.NoError(t, err)
		assert.True(t, membership.Active)
	})

	t.Run("rejects a duplicate active membership", func(t *testing.T) {
		svc, m := newShopService(ctrl)

		m.shopRepo.EXPECT().FindMembership(gomock.Any(), adminID, shopID).Return(adminMembership(adminID, shopID), nil)
		m.shopRepo.EXPECT().AddMember(gomock.Any(), gomock.Any()).Return(domain.ErrDuplicateMembership)
		m.shopRepo.EXPECT().
			FindMembership(gomock.Any(), targetID, shopID).
			Return(&model.UserShop{UserID: targetID, ShopID: shopID, Active: true}, nil)

		_, err := svc.AddMember(ctx, admin, shopID, service.AddMemberInput{UserID: targetID}, nil)
		assert.ErrorIs(t, err, domain.ErrDuplicateMembership)
	})

	t.Run("operators may not manage members", func(t *testing.T) {
		svc, m := newShopService(ctrl)

		m.shopRepo.EXPECT().
			FindMembership(gomock.Any(), adminID, shopID).
			Return(&model.UserShop{UserID: adminID, ShopID: shopID, AccountType: model.AccountOperator, Active: true}, nil)

		_, err := svc.AddMember(ctx, admin, shopID, service.AddMemberInput{UserID: targetID}, nil)
		assert.ErrorIs(t, err, domain.ErrUnauthorized)
	})

	t.Run("unknown account type", func(t *testing.T) {
		svc, m := newShopService(ctrl)

		m.shopRepo.EXPECT().FindMembership(gomock.Any(), adminID, shopID).Return(adminMembership(adminID, shopID), nil)

		_, err := svc.AddMember(ctx, admin, shopID, service.AddMemberInput{UserID: targetID, AccountType: "SUPERVISOR"}, nil)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}

func TestShopUpdateMember(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	adminID := uuid.New()
	shopID := uuid.New()
	admin := access.Principal{UserID: adminID}

	t.Run("admins cannot deactivate themselves", func(t *testing.T) {
		svc, m := newShopService(ctrl)

		m.shopRepo.EXPECT().FindMembership(gomock.Any(), adminID, shopID).Return(adminMembership(adminID, shopID), nil)

		inactive := false
		_, err := svc.UpdateMember(ctx, admin, shopID, adminID, service.UpdateMemberInput{Active: &inactive}, nil)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("deactivates another member", func(t *testing.T) {
		svc, m := newShopService(ctrl)
		targetID := uuid.New()

		m.shopRepo.EXPECT().FindMembership(gomock.Any(), adminID, shopID).Return(adminMembership(adminID, shopID), nil)
		m.shopRepo.EXPECT().
			FindMembership(gomock.Any(), targetID, shopID).
			Return(&model.UserShop{UserID: targetID, ShopID: shopID, AccountType: model.AccountCustomer, Active: true}, nil)
		m.shopRepo.EXPECT().
			UpdateMembership(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, membership *model.UserShop) error {
				assert.False(t, membership.Active)
				return nil
			})

		inactive := false
		membership, err := svc.UpdateMember(ctx, admin, shopID, targetID, service.UpdateMemberInput{Active: &inactive}, nil)

		require.NoError(t, err)
		assert.False(t, membership.Active)
	})
}

func TestShopTopUp(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	adminID := uuid.New()
	shopID := uuid.New()
	admin := access.Principal{UserID: adminID}

	t.Run("credits the balance and the ledger together", func(t *testing.T) {
		svc, m := newShopService(ctrl)
		tx := mocks.NewMockTransaction(ctrl)

		m.shopRepo.EXPECT().FindMembership(gomock.Any(), adminID, shopID).Return(adminMembership(adminID, shopID), nil)
		m.shopRepo.EXPECT().Begin(gomock.Any()).Return(tx, nil)
		m.ledgerRepo.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, entry *model.LedgerItem) error {
				assert.Equal(t, model.LedgerTopUp, entry.Type)
				assert.Equal(t, int64(5000), entry.Amount)
				return nil
			})
		m.shopRepo.EXPECT().AdjustBalance(gomock.Any(), shopID, int64(5000)).Return(nil)
		tx.EXPECT().Commit().Return(nil)
		tx.EXPECT().Rollback().Return(nil).AnyTimes()

		item, err := svc.TopUp(ctx, admin, shopID, service.TopUpInput{Amount: 5000}, nil)

		require.NoError(t, err)
		assert.Equal(t, int64(5000), item.Amount)
	})

	t.Run("rejects non-positive amounts", func(t *testing.T) {
		svc, _ := newShopService(ctrl)

		_, err := svc.TopUp(ctx, admin, shopID, service.TopUpInput{Amount: -100}, nil)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}
