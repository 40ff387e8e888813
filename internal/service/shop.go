// internal/service/shop.go
package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/openfab/printhub/internal/access"
	"github.com/openfab/printhub/internal/audit"
	"github.com/openfab/printhub/internal/domain"
	"github.com/openfab/printhub/internal/model"
	"github.com/openfab/printhub/internal/repository"
)

type ShopService struct {
	repo        repository.ShopRepositoryIface
	ledgerRepo  repository.LedgerRepositoryIface
	access      *AccessService
	auditLogger audit.Logger
	validate    *validator.Validate
}

func NewShopService(
	repo repository.ShopRepositoryIface,
	ledgerRepo repository.LedgerRepositoryIface,
	access *AccessService,
	auditLogger audit.Logger,
) *ShopService {
	return &ShopService{
		repo:        repo,
		ledgerRepo:  ledgerRepo,
		access:      access,
		auditLogger: auditLogger,
		validate:    validator.New(),
	}
}

type CreateShopInput struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
}

// CreateShop creates a new shop. Only global admins may create shops; the
// creator receives an ADMIN membership so the shop is never orphaned.
func (s *ShopService) CreateShop(ctx context.Context, p access.Principal, input CreateShopInput, req *http.Request) (*model.Shop, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	if p.Suspended {
		return nil, domain.AccessDenied(access.ReasonSuspended)
	}
	if !p.Admin {
		return nil, domain.AccessDenied(access.ReasonNoShopAccess)
	}

	shop := &model.Shop{
		Name:        input.Name,
		Description: input.Description,
		Active:      true,
	}
	if err := s.repo.Create(ctx, shop); err != nil {
		return nil, err
	}

	membership := &model.UserShop{
		UserID:      p.UserID,
		ShopID:      shop.ID,
		AccountType: model.AccountAdmin,
		Active:      true,
	}
	if err := s.repo.AddMember(ctx, membership); err != nil {
		return nil, err
	}

	if err := s.auditLogger.LogEvent(ctx, model.LogShopCreated, p.UserID, audit.Refs{ShopID: &shop.ID}, nil, shop, req); err != nil {
		return nil, fmt.Errorf("logging shop creation: %w", err)
	}

	return shop, nil
}

// GetShop returns a shop visible to the principal. The caller's membership
// is returned alongside so handlers can serialize with the right scopes.
func (s *ShopService) GetShop(ctx context.Context, p access.Principal, shopID uuid.UUID) (*model.Shop, access.Memberships, error) {
	m, err := s.access.Require(ctx, p, access.Scope{ShopID: shopID})
	if err != nil {
		return nil, m, err
	}

	shop, err := s.repo.FindByID(ctx, shopID)
	if err != nil {
		return nil, m, err
	}
	return shop, m, nil
}

type UpdateShopInput struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Active      *bool   `json:"active"`
}

// UpdateShop modifies shop attributes. Shop ADMIN or global admin only.
func (s *ShopService) UpdateShop(ctx context.Context, p access.Principal, shopID uuid.UUID, input UpdateShopInput, req *http.Request) (*model.Shop, error) {
	if _, err := s.access.RequireShopAdmin(ctx, p, shopID); err != nil {
		return nil, err
	}

	shop, err := s.repo.FindByID(ctx, shopID)
	if err != nil {
		return nil, err
	}

	before := *shop
	if input.Name != nil {
		if *input.Name == "" {
			return nil, fmt.Errorf("%w: name cannot be empty", domain.ErrInvalidInput)
		}
		shop.Name = *input.Name
	}
	if input.Description != nil {
		shop.Description = *input.Description
	}
	if input.Active != nil {
		shop.Active = *input.Active
	}

	if err := s.repo.Update(ctx, shop); err != nil {
		return nil, err
	}

	if err := s.auditLogger.LogEvent(ctx, model.LogShopModified, p.UserID, audit.Refs{ShopID: &shop.ID}, &before, shop, req); err != nil {
		return nil, fmt.Errorf("logging shop update: %w", err)
	}

	return shop, nil
}

// ListShops returns the shops visible to the principal: all active shops
// for global admins, otherwise the shops the user is an active member of.
func (s *ShopService) ListShops(ctx context.Context, p access.Principal) ([]*model.Shop, error) {
	if p.Suspended {
		return nil, domain.AccessDenied(access.ReasonSuspended)
	}
	if p.Admin {
		return s.repo.FindAllActive(ctx)
	}
	return s.repo.FindByUser(ctx, p.UserID)
}

// Members lists the active memberships of a shop. Any member may see the
// roster; the serializer hides contact details from non-privileged readers.
func (s *ShopService) Members(ctx context.Context, p access.Principal, shopID uuid.UUID) ([]*model.UserShop, access.Memberships, error) {
	m, err := s.access.Require(ctx, p, access.Scope{ShopID: shopID})
	if err != nil {
		return nil, m, err
	}

	members, err := s.repo.FindMembers(ctx, shopID)
	if err != nil {
		return nil, m, err
	}
	return members, m, nil
}

type AddMemberInput struct {
	UserID      uuid.UUID         `json:"user_id" validate:"required"`
	AccountType model.AccountType `json:"account_type"`
}

// AddMember adds a user to a shop, or reactivates a previously removed
// membership. Shop ADMIN or global admin only. A duplicate active
// membership is rejected.
func (s *ShopService) AddMember(ctx context.Context, p access.Principal, shopID uuid.UUID, input AddMemberInput, req *http.Request) (*model.UserShop, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	if _, err := s.access.RequireShopAdmin(ctx, p, shopID); err != nil {
		return nil, err
	}

	accountType := input.AccountType
	if accountType == "" {
		accountType = model.AccountCustomer
	}
	switch accountType {
	case model.AccountCustomer, model.AccountAdmin, model.AccountOperator, model.AccountGroupAdmin:
	default:
		return nil, fmt.Errorf("%w: unknown account type %q", domain.ErrInvalidInput, accountType)
	}

	membership := &model.UserShop{
		UserID:      input.UserID,
		ShopID:      shopID,
		AccountType: accountType,
		Active:      true,
	}

	err := s.repo.AddMember(ctx, membership)
	if errors.Is(err, domain.ErrDuplicateMembership) {
		// A single row exists per (user, shop). Reactivate it instead of
		// inserting a second one.
		existing, ferr := s.repo.FindMembership(ctx, input.UserID, shopID)
		if ferr != nil {
			return nil, ferr
		}
		if existing.Active {
			return nil, domain.ErrDuplicateMembership
		}
		existing.Active = true
		existing.AccountType = accountType
		if uerr := s.repo.UpdateMembership(ctx, existing); uerr != nil {
			return nil, uerr
		}
		membership = existing
	} else if err != nil {
		return nil, err
	}

	if err := s.auditLogger.LogEvent(ctx, model.LogShopModified, p.UserID, audit.Refs{ShopID: &shopID}, nil, membership, req); err != nil {
		return nil, fmt.Errorf("logging member addition: %w", err)
	}

	return membership, nil
}

type UpdateMemberInput struct {
	AccountType *model.AccountType `json:"account_type"`
	Active      *bool              `json:"active"`
}

// UpdateMember changes a member's role or deactivates the membership. Shop
// ADMIN or global admin only. Admins cannot deactivate themselves.
func (s *ShopService) UpdateMember(ctx context.Context, p access.Principal, shopID, userID uuid.UUID, input UpdateMemberInput, req *http.Request) (*model.UserShop, error) {
	if _, err := s.access.RequireShopAdmin(ctx, p, shopID); err != nil {
		return nil, err
	}

	if userID == p.UserID && input.Active != nil && !*input.Active {
		return nil, fmt.Errorf("%w: cannot remove your own membership", domain.ErrInvalidInput)
	}

	membership, err := s.repo.FindMembership(ctx, userID, shopID)
	if err != nil {
		return nil, err
	}

	before := *membership
	if input.AccountType != nil {
		switch *input.AccountType {
		case model.AccountCustomer, model.AccountAdmin, model.AccountOperator, model.AccountGroupAdmin:
		default:
			return nil, fmt.Errorf("%w: unknown account type %q", domain.ErrInvalidInput, *input.AccountType)
		}
		membership.AccountType = *input.AccountType
	}
	if input.Active != nil {
		membership.Active = *input.Active
	}

	if err := s.repo.UpdateMembership(ctx, membership); err != nil {
		return nil, err
	}

	if err := s.auditLogger.LogEvent(ctx, model.LogShopModified, p.UserID, audit.Refs{ShopID: &shopID}, &before, membership, req); err != nil {
		return nil, fmt.Errorf("logging member update: %w", err)
	}

	return membership, nil
}

type TopUpInput struct {
	Amount     int64  `json:"amount" validate:"required,gt=0"`
	InvoiceURL string `json:"invoice_url"`
}

// TopUp credits the shop balance and records the movement in the ledger.
// Shop ADMIN or global admin only. Runs inside a transaction so the ledger
// row and the balance never diverge.
func (s *ShopService) TopUp(ctx context.Context, p access.Principal, shopID uuid.UUID, input TopUpInput, req *http.Request) (*model.LedgerItem, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	if _, err := s.access.RequireShopAdmin(ctx, p, shopID); err != nil {
		return nil, err
	}

	tx, err := s.repo.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("starting top-up transaction: %w", err)
	}
	defer tx.Rollback()

	item := &model.LedgerItem{
		ShopID:     shopID,
		UserID:     p.UserID,
		Type:       model.LedgerTopUp,
		Amount:     input.Amount,
		InvoiceURL: input.InvoiceURL,
	}
	if err := s.ledgerRepo.Create(ctx, item); err != nil {
		return nil, err
	}
	if err := s.repo.AdjustBalance(ctx, shopID, input.Amount); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing top-up: %w", err)
	}

	if err := s.auditLogger.LogEvent(ctx, model.LogShopModified, p.UserID, audit.Refs{ShopID: &shopID}, nil, item, req); err != nil {
		return nil, fmt.Errorf("logging top-up: %w", err)
	}

	return item, nil
}

// Ledger lists a shop's ledger items, newest first. Privileged members only;
// balances and movements are hidden from customer-level accounts.
func (s *ShopService) Ledger(ctx context.Context, p access.Principal, shopID uuid.UUID) ([]*model.LedgerItem, error) {
	if _, err := s.access.RequirePrivileged(ctx, p, shopID); err != nil {
		return nil, err
	}
	return s.ledgerRepo.FindByShop(ctx, shopID)
}
