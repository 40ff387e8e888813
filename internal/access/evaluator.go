// internal/access/evaluator.go

// Package access centralizes the role and membership checks that gate every
// shop-, group- and job-scoped operation. The evaluator is a pure rule
// table over already-fetched membership rows; callers load the rows and
// must short-circuit on a denial.
package access

import (
	"github.com/google/uuid"
	"github.com/openfab/printhub/internal/model"
)

// Principal identifies the requesting user.
type Principal struct {
	UserID    uuid.UUID
	Admin     bool
	Suspended bool
}

// PrincipalFromUser builds a Principal from a loaded user row.
func PrincipalFromUser(u *model.User) Principal {
	return Principal{UserID: u.ID, Admin: u.Admin, Suspended: u.Suspended}
}

// Scope describes the target of an operation. ShopID is always set.
// GroupID is set for group-scoped targets. JobOwnerID is set when the
// target is a specific job, so customer-level accounts can be held to
// ownership.
type Scope struct {
	ShopID     uuid.UUID
	GroupID    *uuid.UUID
	JobOwnerID *uuid.UUID
}

// Memberships carries the principal's membership rows at the target scope,
// fetched by the caller. Nil means no row exists.
type Memberships struct {
	Shop  *model.UserShop
	Group *model.UserBillingGroup
}

// Decision is the outcome of an evaluation. Reason is set on denials.
type Decision struct {
	Allowed bool
	Reason  string
}

func allowed() Decision {
	return Decision{Allowed: true}
}

func denied(reason string) Decision {
	return Decision{Reason: reason}
}

// Denial reasons, surfaced verbatim to callers.
const (
	ReasonSuspended     = "account suspended"
	ReasonNoShopAccess  = "no shop access"
	ReasonNoGroupAccess = "no group access"
	ReasonNotJobOwner   = "not the job owner"
)

// Evaluate applies the access rules in order; the first match wins.
//
//  1. Suspended principal is denied everything.
//  2. Global admin is allowed everything.
//  3. No active membership at the target shop denies.
//  4. Group-scoped targets require active group membership, unless the
//     group role is ADMIN or the shop role is privileged.
//  5. Customer-level accounts acting on a job must own it.
//  6. Otherwise allowed.
func Evaluate(p Principal, scope Scope, m Memberships) Decision {
	if p.Suspended {
		return denied(ReasonSuspended)
	}

	if p.Admin {
		return allowed()
	}

	if m.Shop == nil || !m.Shop.Active {
		return denied(ReasonNoShopAccess)
	}

	if scope.GroupID != nil && !m.Shop.AccountType.Privileged() {
		if m.Group == nil {
			return denied(ReasonNoGroupAccess)
		}
		if !m.Group.Active && m.Group.Role != model.GroupRoleAdmin {
			return denied(ReasonNoGroupAccess)
		}
	}

	if scope.JobOwnerID != nil && m.Shop.AccountType == model.AccountCustomer {
		if *scope.JobOwnerID != p.UserID {
			return denied(ReasonNotJobOwner)
		}
	}

	return allowed()
}

// CanCreateGroupJobs reports whether the principal may create jobs on a
// billing group: open groups admit any active shop member, group row or
// not; otherwise global admins, shop admins and group admins qualify.
func CanCreateGroupJobs(p Principal, group *model.BillingGroup, m Memberships) bool {
	if p.Suspended {
		return false
	}
	if group.MembersCanCreateJobs && m.Shop != nil && m.Shop.Active {
		return true
	}
	if p.Admin {
		return true
	}
	if m.Shop != nil && m.Shop.Active && m.Shop.AccountType == model.AccountAdmin {
		return true
	}
	return m.Group != nil && m.Group.Active && m.Group.Role == model.GroupRoleAdmin
}
