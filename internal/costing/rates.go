// internal/costing/rates.go

// Package costing derives item costs and job-level aggregates from rates,
// quantities and recorded usage. Everything here is a pure function over
// data the caller has already loaded; the package performs no I/O.
package costing

import (
	"github.com/openfab/printhub/internal/domain"
	"github.com/openfab/printhub/internal/model"
)

// RateSet holds the resolved unit rates for one job item, in minor currency
// units per unit of usage.
type RateSet struct {
	MachinePerMinute int64 `json:"machine_per_minute"`
	PrimaryPerGram   int64 `json:"primary_per_gram"`
	SecondaryPerGram int64 `json:"secondary_per_gram"`
	LaborPerMinute   int64 `json:"labor_per_minute"`
}

// Requirements describes which references and usage metrics a resource
// category mandates before an item is costable.
type Requirements struct {
	SecondaryMaterial bool
	MachineTime       bool
	MaterialMass      bool
	Labor             bool
}

// Policy maps a resource category to its costing requirements. Unknown
// categories fall back to DefaultRequirements.
type Policy map[model.ResourceCategory]Requirements

// DefaultRequirements applies when a category has no entry in the policy.
var DefaultRequirements = Requirements{
	SecondaryMaterial: false,
	MachineTime:       true,
	MaterialMass:      true,
	Labor:             false,
}

// DefaultPolicy mirrors the production rate table: additive processes
// consume a primary and a support (secondary) material, subtractive
// processes a single stock material, finishing is labor-only.
var DefaultPolicy = Policy{
	model.CategoryAdditive: {
		SecondaryMaterial: true,
		MachineTime:       true,
		MaterialMass:      true,
	},
	model.CategorySubtractive: {
		MachineTime:  true,
		MaterialMass: true,
	},
	model.CategoryFinishing: {
		Labor: true,
	},
}

// Requirements returns the requirements for a category.
func (p Policy) Requirements(c model.ResourceCategory) Requirements {
	if r, ok := p[c]; ok {
		return r
	}
	return DefaultRequirements
}

// Config is the resolved resource/material configuration of one job item.
// Nil fields mean the reference is not set on the item or could not be
// loaded.
type Config struct {
	Category  model.ResourceCategory
	Resource  *model.Resource
	Primary   *model.Material
	Secondary *model.Material
}

// ResolveRates resolves the applicable unit rates for an item configuration.
// It fails with domain.ErrIncompleteConfiguration when the resource or a
// required material reference is absent. Which references are required comes
// from the policy entry for the item's resource category.
func ResolveRates(cfg Config, policy Policy) (RateSet, error) {
	if cfg.Resource == nil {
		return RateSet{}, domain.ErrIncompleteConfiguration
	}

	reqs := policy.Requirements(cfg.Category)

	rates := RateSet{
		MachinePerMinute: cfg.Resource.MachineCostPerMinute,
		LaborPerMinute:   cfg.Resource.LaborCostPerMinute,
	}

	if reqs.MaterialMass {
		if cfg.Primary == nil {
			return RateSet{}, domain.ErrIncompleteConfiguration
		}
		rates.PrimaryPerGram = cfg.Primary.CostPerGram
	}

	if reqs.SecondaryMaterial {
		if cfg.Secondary == nil {
			return RateSet{}, domain.ErrIncompleteConfiguration
		}
		rates.SecondaryPerGram = cfg.Secondary.CostPerGram
	}

	return rates, nil
}
