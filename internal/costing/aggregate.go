// internal/costing/aggregate.go
package costing

import (
	"github.com/google/uuid"
	"github.com/openfab/printhub/internal/model"
)

// JobAggregate is the job-level rollup of item costs, statuses and
// approvals. The status counts always partition the active item set:
// ItemsCount == Completed + InProgress + NotStarted + Excluded.
type JobAggregate struct {
	TotalCost int64 `json:"total_cost"`

	ItemsCount      int `json:"items_count"`
	CompletedCount  int `json:"completed_count"`
	InProgressCount int `json:"in_progress_count"`
	NotStartedCount int `json:"not_started_count"`
	ExcludedCount   int `json:"excluded_count"`

	ApprovedCount        int `json:"approved_count"`
	RejectedCount        int `json:"rejected_count"`
	PendingApprovalCount int `json:"pending_approval_count"`

	// ItemErrors maps item IDs to the costing error that kept them out of
	// TotalCost. Such items still appear in every count.
	ItemErrors map[uuid.UUID]error `json:"-"`
}

// ConfigSource yields the resolved resource/material configuration for an
// item. Implementations must not perform I/O during aggregation; load
// everything up front.
type ConfigSource func(item *model.JobItem) Config

// AggregateJob folds the active items of a job into a JobAggregate. Items
// whose configuration is incomplete or whose usage is unrecorded contribute
// zero to TotalCost but are still counted; their errors are collected in
// ItemErrors. Inactive items are skipped entirely.
func AggregateJob(items []model.JobItem, configs ConfigSource, policy Policy) JobAggregate {
	agg := JobAggregate{ItemErrors: make(map[uuid.UUID]error)}

	for i := range items {
		item := &items[i]
		if !item.Active {
			continue
		}

		agg.ItemsCount++

		switch item.Status {
		case model.StatusCompleted:
			agg.CompletedCount++
		case model.StatusInProgress:
			agg.InProgressCount++
		case model.StatusNotStarted:
			agg.NotStartedCount++
		default:
			agg.ExcludedCount++
		}

		switch {
		case item.Approved == nil:
			agg.PendingApprovalCount++
		case *item.Approved:
			agg.ApprovedCount++
		default:
			agg.RejectedCount++
		}

		cost, err := itemCost(item, configs, policy)
		if err != nil {
			agg.ItemErrors[item.ID] = err
			continue
		}
		agg.TotalCost += cost
	}

	return agg
}

func itemCost(item *model.JobItem, configs ConfigSource, policy Policy) (int64, error) {
	cfg := configs(item)

	rates, err := ResolveRates(cfg, policy)
	if err != nil {
		return 0, err
	}

	reqs := policy.Requirements(cfg.Category)
	return ComputeItemCost(rates, reqs, item.Quantity, UsageFromItem(item))
}
