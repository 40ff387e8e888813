package costing_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/openfab/printhub/internal/costing"
	"github.com/openfab/printhub/internal/domain"
	"github.com/openfab/printhub/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func f64(v float64) *float64 { return &v }
func boolPtr(v bool) *bool   { return &v }

func additiveConfig() costing.Config {
	return costing.Config{
		Category: model.CategoryAdditive,
		Resource: &model.Resource{
			ID:                   uuid.New(),
			MachineCostPerMinute: 5,
		},
		Primary:   &model.Material{ID: uuid.New(), CostPerGram: 2},
		Secondary: &model.Material{ID: uuid.New(), CostPerGram: 1},
	}
}

func TestResolveRates(t *testing.T) {
	t.Run("complete additive configuration", func(t *testing.T) {
		rates, err := costing.ResolveRates(additiveConfig(), costing.DefaultPolicy)

		require.NoError(t, err)
		assert.Equal(t, int64(5), rates.MachinePerMinute)
		assert.Equal(t, int64(2), rates.PrimaryPerGram)
		assert.Equal(t, int64(1), rates.SecondaryPerGram)
	})

	t.Run("missing resource", func(t *testing.T) {
		cfg := additiveConfig()
		cfg.Resource = nil

		_, err := costing.ResolveRates(cfg, costing.DefaultPolicy)
		assert.ErrorIs(t, err, domain.ErrIncompleteConfiguration)
	})

	t.Run("additive requires a secondary material", func(t *testing.T) {
		cfg := additiveConfig()
		cfg.Secondary = nil

		_, err := costing.ResolveRates(cfg, costing.DefaultPolicy)
		assert.ErrorIs(t, err, domain.ErrIncompleteConfiguration)
	})

	t.Run("subtractive does not require a secondary material", func(t *testing.T) {
		cfg := additiveConfig()
		cfg.Category = model.CategorySubtractive
		cfg.Secondary = nil

		_, err := costing.ResolveRates(cfg, costing.DefaultPolicy)
		assert.NoError(t, err)
	})

	t.Run("finishing requires no materials at all", func(t *testing.T) {
		cfg := costing.Config{
			Category: model.CategoryFinishing,
			Resource: &model.Resource{ID: uuid.New(), LaborCostPerMinute: 30},
		}

		rates, err := costing.ResolveRates(cfg, costing.DefaultPolicy)
		require.NoError(t, err)
		assert.Equal(t, int64(30), rates.LaborPerMinute)
	})
}

func TestComputeItemCost(t *testing.T) {
	subtractiveReqs := costing.DefaultPolicy.Requirements(model.CategorySubtractive)

	t.Run("sums rate terms and multiplies by quantity", func(t *testing.T) {
		rates := costing.RateSet{MachinePerMinute: 5, PrimaryPerGram: 2}
		usage := costing.Usage{MachineMinutes: f64(30), PrimaryGrams: f64(10)}

		// (5*30 + 2*10) * 2
		cost, err := costing.ComputeItemCost(rates, subtractiveReqs, 2, usage)
		require.NoError(t, err)
		assert.Equal(t, int64(340), cost)
	})

	t.Run("missing mandated usage", func(t *testing.T) {
		rates := costing.RateSet{MachinePerMinute: 5, PrimaryPerGram: 2}
		usage := costing.Usage{MachineMinutes: f64(30)}

		_, err := costing.ComputeItemCost(rates, subtractiveReqs, 1, usage)
		assert.ErrorIs(t, err, domain.ErrMissingUsageData)
	})

	t.Run("rounds half-up once on the item total", func(t *testing.T) {
		rates := costing.RateSet{MachinePerMinute: 1, PrimaryPerGram: 1}
		// 0.3 + 0.3 = 0.6; rounding per term would give 0
		usage := costing.Usage{MachineMinutes: f64(0.3), PrimaryGrams: f64(0.3)}

		cost, err := costing.ComputeItemCost(rates, subtractiveReqs, 1, usage)
		require.NoError(t, err)
		assert.Equal(t, int64(1), cost)

		// 10.25 * 2 = 20.5 rounds up
		usage = costing.Usage{MachineMinutes: f64(10.25), PrimaryGrams: f64(0)}
		cost, err = costing.ComputeItemCost(rates, subtractiveReqs, 2, usage)
		require.NoError(t, err)
		assert.Equal(t, int64(21), cost)
	})

	t.Run("zero quantity behaves as one", func(t *testing.T) {
		rates := costing.RateSet{MachinePerMinute: 5, PrimaryPerGram: 0}
		usage := costing.Usage{MachineMinutes: f64(10), PrimaryGrams: f64(0)}

		cost, err := costing.ComputeItemCost(rates, subtractiveReqs, 0, usage)
		require.NoError(t, err)
		assert.Equal(t, int64(50), cost)
	})

	t.Run("never returns a negative cost", func(t *testing.T) {
		rates := costing.RateSet{MachinePerMinute: -5, PrimaryPerGram: 0}
		usage := costing.Usage{MachineMinutes: f64(10), PrimaryGrams: f64(0)}

		cost, err := costing.ComputeItemCost(rates, subtractiveReqs, 1, usage)
		require.NoError(t, err)
		assert.Equal(t, int64(0), cost)
	})
}

func TestAggregateJob(t *testing.T) {
	cfg := additiveConfig()
	source := func(item *model.JobItem) costing.Config { return cfg }

	costedItem := func(status model.Status) model.JobItem {
		return model.JobItem{
			ID:                     uuid.New(),
			Quantity:               1,
			Status:                 status,
			Active:                 true,
			MachineMinutes:         f64(10),
			MaterialGrams:          f64(5),
			SecondaryMaterialGrams: f64(2),
		}
	}

	t.Run("status counts partition the active item set", func(t *testing.T) {
		items := []model.JobItem{
			costedItem(model.StatusCompleted),
			costedItem(model.StatusCompleted),
			costedItem(model.StatusInProgress),
			costedItem(model.StatusCancelled),
		}

		agg := costing.AggregateJob(items, source, costing.DefaultPolicy)

		assert.Equal(t, 4, agg.ItemsCount)
		assert.Equal(t, 2, agg.CompletedCount)
		assert.Equal(t, 1, agg.InProgressCount)
		assert.Equal(t, 0, agg.NotStartedCount)
		assert.Equal(t, 1, agg.ExcludedCount)
		assert.Equal(t, agg.ItemsCount,
			agg.CompletedCount+agg.InProgressCount+agg.NotStartedCount+agg.ExcludedCount)

		// 5*10 + 2*5 + 1*2 = 62 per item
		assert.Equal(t, int64(248), agg.TotalCost)
		assert.Empty(t, agg.ItemErrors)
	})

	t.Run("approval counts are tri-state", func(t *testing.T) {
		approved := costedItem(model.StatusCompleted)
		approved.Approved = boolPtr(true)
		rejected := costedItem(model.StatusCompleted)
		rejected.Approved = boolPtr(false)
		pending := costedItem(model.StatusNotStarted)

		agg := costing.AggregateJob([]model.JobItem{approved, rejected, pending}, source, costing.DefaultPolicy)

		assert.Equal(t, 1, agg.ApprovedCount)
		assert.Equal(t, 1, agg.RejectedCount)
		assert.Equal(t, 1, agg.PendingApprovalCount)
	})

	t.Run("inactive items are skipped entirely", func(t *testing.T) {
		removed := costedItem(model.StatusCompleted)
		removed.Active = false

		agg := costing.AggregateJob([]model.JobItem{removed, costedItem(model.StatusCompleted)}, source, costing.DefaultPolicy)

		assert.Equal(t, 1, agg.ItemsCount)
		assert.Equal(t, int64(62), agg.TotalCost)
	})

	t.Run("uncostable items stay in every count but not the total", func(t *testing.T) {
		unconfigured := costedItem(model.StatusInProgress)
		noUsage := costedItem(model.StatusCompleted)
		noUsage.MachineMinutes = nil

		nilSource := func(item *model.JobItem) costing.Config {
			if item.ID == unconfigured.ID {
				return costing.Config{Category: model.CategoryAdditive}
			}
			return cfg
		}

		agg := costing.AggregateJob([]model.JobItem{unconfigured, noUsage}, nilSource, costing.DefaultPolicy)

		assert.Equal(t, 2, agg.ItemsCount)
		assert.Equal(t, 1, agg.InProgressCount)
		assert.Equal(t, 1, agg.CompletedCount)
		assert.Equal(t, int64(0), agg.TotalCost)

		require.Len(t, agg.ItemErrors, 2)
		assert.ErrorIs(t, agg.ItemErrors[unconfigured.ID], domain.ErrIncompleteConfiguration)
		assert.ErrorIs(t, agg.ItemErrors[noUsage.ID], domain.ErrMissingUsageData)
	})

	t.Run("total is stable under item reordering", func(t *testing.T) {
		a := costedItem(model.StatusCompleted)
		a.MachineMinutes = f64(0.1)
		b := costedItem(model.StatusCompleted)
		b.MachineMinutes = f64(0.7)

		forward := costing.AggregateJob([]model.JobItem{a, b}, source, costing.DefaultPolicy)
		backward := costing.AggregateJob([]model.JobItem{b, a}, source, costing.DefaultPolicy)

		assert.Equal(t, forward.TotalCost, backward.TotalCost)
	})

	t.Run("empty job", func(t *testing.T) {
		agg := costing.AggregateJob(nil, source, costing.DefaultPolicy)

		assert.Zero(t, agg.ItemsCount)
		assert.Zero(t, agg.TotalCost)
		assert.Empty(t, agg.ItemErrors)
	})
}
