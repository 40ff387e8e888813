// internal/service/reconciliation.go
package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/openfab/printhub/internal/repository"
)

// BalanceReconciliationService periodically recomputes shop balances from
// the ledger and reports drift. The ledger is the source of truth; the
// balance column is a running total that can only drift through operator
// intervention or bugs, and drift is worth paging on.
type BalanceReconciliationService struct {
	shopRepo     repository.ShopRepositoryIface
	ledgerRepo   repository.LedgerRepositoryIface
	syncInterval time.Duration
	dryRun       bool // If true, don't make changes, just log
	logger       *slog.Logger
	stopChan     chan struct{}
	stoppedChan  chan struct{}
}

// BalanceDrift reports one shop whose stored balance disagrees with the
// ledger sum.
type BalanceDrift struct {
	ShopID    uuid.UUID `json:"shop_id"`
	ShopName  string    `json:"shop_name"`
	Stored    int64     `json:"stored"`
	LedgerSum int64     `json:"ledger_sum"`
	Delta     int64     `json:"delta"`
}

// NewBalanceReconciliationService creates a new reconciliation service
func NewBalanceReconciliationService(
	shopRepo repository.ShopRepositoryIface,
	ledgerRepo repository.LedgerRepositoryIface,
	syncInterval time.Duration,
	logger *slog.Logger,
) *BalanceReconciliationService {
	if syncInterval == 0 {
		syncInterval = 30 * time.Minute
	}

	return &BalanceReconciliationService{
		shopRepo:     shopRepo,
		ledgerRepo:   ledgerRepo,
		syncInterval: syncInterval,
		dryRun:       false,
		logger:       logger,
		stopChan:     make(chan struct{}),
		stoppedChan:  make(chan struct{}),
	}
}

// Start begins the periodic reconciliation process
func (s *BalanceReconciliationService) Start() {
	go func() {
		ticker := time.NewTicker(s.syncInterval)
		defer ticker.Stop()
		defer close(s.stoppedChan)

		for {
			select {
			case <-ticker.C:
				ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
				if _, err := s.ReconcileAll(ctx); err != nil {
					s.logger.Error("balance reconciliation failed", "error", err)
				}
				cancel()
			case <-s.stopChan:
				return
			}
		}
	}()
}

// Stop halts the reconciliation process
func (s *BalanceReconciliationService) Stop() {
	close(s.stopChan)
	<-s.stoppedChan
}

// SetDryRun sets whether to correct drifted balances or just report them
func (s *BalanceReconciliationService) SetDryRun(dryRun bool) {
	s.dryRun = dryRun
}

// ReconcileAll checks every active shop's balance against its ledger sum
// and returns the drifted shops. Unless running dry, drifted balances are
// corrected to the ledger sum.
func (s *BalanceReconciliationService) ReconcileAll(ctx context.Context) ([]BalanceDrift, error) {
	s.logger.Info("starting shop balance reconciliation")

	shops, err := s.shopRepo.FindAllActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading shops: %w", err)
	}

	var drifts []BalanceDrift
	for _, shop := range shops {
		sum, err := s.ledgerRepo.SumByShop(ctx, shop.ID)
		if err != nil {
			return drifts, fmt.Errorf("summing ledger for shop %s: %w", shop.ID, err)
		}

		if sum == shop.Balance {
			continue
		}

		drift := BalanceDrift{
			ShopID:    shop.ID,
			ShopName:  shop.Name,
			Stored:    shop.Balance,
			LedgerSum: sum,
			Delta:     sum - shop.Balance,
		}
		drifts = append(drifts, drift)

		s.logger.Warn("shop balance drift detected",
			"shop_id", shop.ID,
			"shop_name", shop.Name,
			"stored", shop.Balance,
			"ledger_sum", sum,
			"delta", drift.Delta,
			"dry_run", s.dryRun)

		if s.dryRun {
			continue
		}

		if err := s.shopRepo.AdjustBalance(ctx, shop.ID, drift.Delta); err != nil {
			return drifts, fmt.Errorf("correcting balance for shop %s: %w", shop.ID, err)
		}
	}

	s.logger.Info("completed shop balance reconciliation",
		"shops", len(shops),
		"drifted", len(drifts))

	return drifts, nil
}
