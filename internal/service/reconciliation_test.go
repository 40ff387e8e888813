package service_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/openfab/printhub/internal/mocks"
	"github.com/openfab/printhub/internal/model"
	"github.com/openfab/printhub/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestBalanceReconciliation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	balanced := &model.Shop{ID: uuid.New(), Name: "Balanced", Balance: 500, Active: true}
	drifted := &model.Shop{ID: uuid.New(), Name: "Drifted", Balance: 900, Active: true}

	t.Run("corrects drifted balances to the ledger sum", func(t *testing.T) {
		shopRepo := mocks.NewMockShopRepositoryIface(ctrl)
		ledgerRepo := mocks.NewMockLedgerRepositoryIface(ctrl)

		shopRepo.EXPECT().FindAllActive(gomock.Any()).Return([]*model.Shop{balanced, drifted}, nil)
		ledgerRepo.EXPECT().SumByShop(gomock.Any(), balanced.ID).Return(int64(500), nil)
		ledgerRepo.EXPECT().SumByShop(gomock.Any(), drifted.ID).Return(int64(750), nil)
		shopRepo.EXPECT().AdjustBalance(gomock.Any(), drifted.ID, int64(-150)).Return(nil)

		svc := service.NewBalanceReconciliationService(shopRepo, ledgerRepo, 0, logger)
		drifts, err := svc.ReconcileAll(ctx)

		require.NoError(t, err)
		require.Len(t, drifts, 1)
		assert.Equal(t, drifted.ID, drifts[0].ShopID)
		assert.Equal(t, int64(900), drifts[0].Stored)
		assert.Equal(t, int64(750), drifts[0].LedgerSum)
		assert.Equal(t, int64(-150), drifts[0].Delta)
	})

	t.Run("dry run reports without correcting", func(t *testing.T) {
		shopRepo := mocks.NewMockShopRepositoryIface(ctrl)
		ledgerRepo := mocks.NewMockLedgerRepositoryIface(ctrl)

		shopRepo.EXPECT().FindAllActive(gomock.Any()).Return([]*model.Shop{drifted}, nil)
		ledgerRepo.EXPECT().SumByShop(gomock.Any(), drifted.ID).Return(int64(750), nil)

		svc := service.NewBalanceReconciliationService(shopRepo, ledgerRepo, 0, logger)
		svc.SetDryRun(true)

		drifts, err := svc.ReconcileAll(ctx)

		require.NoError(t, err)
		assert.Len(t, drifts, 1)
	})

	t.Run("nothing to do when ledgers agree", func(t *testing.T) {
		shopRepo := mocks.NewMockShopRepositoryIface(ctrl)
		ledgerRepo := mocks.NewMockLedgerRepositoryIface(ctrl)

		shopRepo.EXPECT().FindAllActive(gomock.Any()).Return([]*model.Shop{balanced}, nil)
		ledgerRepo.EXPECT().SumByShop(gomock.Any(), balanced.ID).Return(int64(500), nil)

		svc := service.NewBalanceReconciliationService(shopRepo, ledgerRepo, 0, logger)
		drifts, err := svc.ReconcileAll(ctx)

		require.NoError(t, err)
		assert.Empty(t, drifts)
	})
}
