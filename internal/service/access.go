// internal/service/access.go
package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/openfab/printhub/internal/access"
	"github.com/openfab/printhub/internal/domain"
	"github.com/openfab/printhub/internal/model"
	"github.com/openfab/printhub/internal/repository"
)

// AccessService loads the membership rows an access evaluation needs and
// runs the central rule table. Every service gates its operations through
// Require and returns immediately on a denial.
type AccessService struct {
	shopRepo  repository.ShopRepositoryIface
	groupRepo repository.GroupRepositoryIface
}

func NewAccessService(shopRepo repository.ShopRepositoryIface, groupRepo repository.GroupRepositoryIface) *AccessService {
	return &AccessService{
		shopRepo:  shopRepo,
		groupRepo: groupRepo,
	}
}

// Memberships fetches the principal's shop and group membership rows for
// the given scope. A missing row is returned as nil, not an error.
func (s *AccessService) Memberships(ctx context.Context, p access.Principal, scope access.Scope) (access.Memberships, error) {
	var m access.Memberships

	shopMembership, err := s.shopRepo.FindMembership(ctx, p.UserID, scope.ShopID)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return m, fmt.Errorf("loading shop membership: %w", err)
	}
	m.Shop = shopMembership

	if scope.GroupID != nil {
		groupMembership, err := s.groupRepo.FindMembership(ctx, p.UserID, *scope.GroupID)
		if err != nil && !errors.Is(err, domain.ErrNotFound) {
			return m, fmt.Errorf("loading group membership: %w", err)
		}
		m.Group = groupMembership
	}

	return m, nil
}

// Require evaluates access for the principal at the scope and converts a
// denial into a domain.AccessDeniedError.
func (s *AccessService) Require(ctx context.Context, p access.Principal, scope access.Scope) (access.Memberships, error) {
	m, err := s.Memberships(ctx, p, scope)
	if err != nil {
		return m, err
	}

	decision := access.Evaluate(p, scope, m)
	if !decision.Allowed {
		return m, domain.AccessDenied(decision.Reason)
	}

	return m, nil
}

// RequirePrivileged passes only principals with a privileged shop role or
// global admin. Used for mutations customers may never perform.
func (s *AccessService) RequirePrivileged(ctx context.Context, p access.Principal, shopID uuid.UUID) (access.Memberships, error) {
	m, err := s.Require(ctx, p, access.Scope{ShopID: shopID})
	if err != nil {
		return m, err
	}
	if p.Admin {
		return m, nil
	}
	if m.Shop == nil || !m.Shop.AccountType.Privileged() {
		return m, domain.AccessDenied(access.ReasonNoShopAccess)
	}
	return m, nil
}

// RequireShopAdmin passes only global admins and shop ADMIN accounts.
func (s *AccessService) RequireShopAdmin(ctx context.Context, p access.Principal, shopID uuid.UUID) (access.Memberships, error) {
	m, err := s.Require(ctx, p, access.Scope{ShopID: shopID})
	if err != nil {
		return m, err
	}
	if p.Admin {
		return m, nil
	}
	if m.Shop == nil || m.Shop.AccountType != model.AccountAdmin {
		return m, domain.AccessDenied(access.ReasonNoShopAccess)
	}
	return m, nil
}
