// internal/costing/cost.go
package costing

import (
	"math"

	"github.com/openfab/printhub/internal/domain"
	"github.com/openfab/printhub/internal/model"
)

// Usage carries the recorded usage metrics for one item. Nil means the
// metric has not been recorded.
type Usage struct {
	MachineMinutes *float64
	PrimaryGrams   *float64
	SecondaryGrams *float64
	LaborMinutes   *float64
}

// UsageFromItem extracts the recorded usage metrics from a job item.
func UsageFromItem(item *model.JobItem) Usage {
	return Usage{
		MachineMinutes: item.MachineMinutes,
		PrimaryGrams:   item.MaterialGrams,
		SecondaryGrams: item.SecondaryMaterialGrams,
		LaborMinutes:   item.LaborMinutes,
	}
}

// ComputeItemCost combines resolved rates with quantity and recorded usage
// into a single non-negative amount in minor currency units. It fails with
// domain.ErrMissingUsageData when a metric the category mandates is absent;
// the caller must treat that item as "costing unavailable", never zero.
//
// Rounding is half-up, applied once to the item total, never per term. Job
// totals are sums of already-rounded item costs, so they are stable under
// item reordering.
func ComputeItemCost(rates RateSet, reqs Requirements, quantity int, usage Usage) (int64, error) {
	if quantity < 1 {
		quantity = 1
	}

	if reqs.MachineTime && usage.MachineMinutes == nil {
		return 0, domain.ErrMissingUsageData
	}
	if reqs.MaterialMass && usage.PrimaryGrams == nil {
		return 0, domain.ErrMissingUsageData
	}
	if reqs.SecondaryMaterial && usage.SecondaryGrams == nil {
		return 0, domain.ErrMissingUsageData
	}
	if reqs.Labor && usage.LaborMinutes == nil {
		return 0, domain.ErrMissingUsageData
	}

	var unit float64
	if usage.MachineMinutes != nil {
		unit += float64(rates.MachinePerMinute) * *usage.MachineMinutes
	}
	if usage.PrimaryGrams != nil {
		unit += float64(rates.PrimaryPerGram) * *usage.PrimaryGrams
	}
	if usage.SecondaryGrams != nil {
		unit += float64(rates.SecondaryPerGram) * *usage.SecondaryGrams
	}
	if usage.LaborMinutes != nil {
		unit += float64(rates.LaborPerMinute) * *usage.LaborMinutes
	}

	total := unit * float64(quantity)
	if total < 0 {
		total = 0
	}

	return roundHalfUp(total), nil
}

// roundHalfUp rounds to the nearest integer, halves away from zero.
func roundHalfUp(v float64) int64 {
	return int64(math.Floor(v + 0.5))
}
