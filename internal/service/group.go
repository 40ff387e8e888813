// internal/service/group.go
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
	"github.com/openfab/printhub/internal/costing"
	"github.com/openfab/printhub/internal/domain"
	"github.com/openfab/printhub/internal/model"
	"github.com/openfab/printhub/internal/repository"
)

type GroupService struct {
	repo        repository.GroupRepositoryIface
	jobRepo     repository.JobRepositoryIface
	access      *AccessService
	auditLogger audit.Logger
	validate    *validator.Validate
}

func NewGroupService(
	repo repository.GroupRepositoryIface,
	jobRepo repository.JobRepositoryIface,
	access *AccessService,
	auditLogger audit.Logger,
) *GroupService {
	return &GroupService{
		repo:        repo,
		jobRepo:     jobRepo,
		access:      access,
		auditLogger: auditLogger,
		validate:    validator.New(),
	}
}

type CreateGroupInput struct {
	Title                string `json:"title" validate:"required"`
	Description          string `json:"description"`
	MembersCanCreateJobs bool   `json:"members_can_create_jobs"`
}

// CreateGroup creates a billing group in a shop. Privileged members only.
func (s *GroupService) CreateGroup(ctx context.Context, p access.Principal, shopID uuid.UUID, input CreateGroupInput, req *http.Request) (*model.BillingGroup, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	if _, err := s.access.RequirePrivileged(ctx, p, shopID); err != nil {
		return nil, err
	}

	group := &model.BillingGroup{
		ShopID:               shopID,
		Title:                input.Title,
		Description:          input.Description,
		MembersCanCreateJobs: input.MembersCanCreateJobs,
		Active:               true,
	}
	if err := s.repo.Create(ctx, group); err != nil {
		return nil, err
	}

	if err := s.auditLogger.LogEvent(ctx, model.LogBillingGroupCreated, p.UserID, audit.Refs{ShopID: &shopID, BillingGroupID: &group.ID}, nil, group, req); err != nil {
		return nil, fmt.Errorf("logging group creation: %w", err)
	}

	return group, nil
}

type UpdateGroupInput struct {
	Title                *string `json:"title"`
	Description          *string `json:"description"`
	MembersCanCreateJobs *bool   `json:"members_can_create_jobs"`
	Active               *bool   `json:"active"`
}

// UpdateGroup modifies group attributes. Privileged members or group admins.
func (s *GroupService) UpdateGroup(ctx context.Context, p access.Principal, groupID uuid.UUID, input UpdateGroupInput, req *http.Request) (*model.BillingGroup, error) {
	group, err := s.repo.FindByID(ctx, groupID)
	if err != nil {
		return nil, err
	}

	if err := s.requireGroupAdmin(ctx, p, group); err != nil {
		return nil, err
	}

	before := *group
	if input.Title != nil {
		if *input.Title == "" {
			return nil, fmt.Errorf("%w: title cannot be empty", domain.ErrInvalidInput)
		}
		group.Title = *input.Title
	}
	if input.Description != nil {
		group.Description = *input.Description
	}
	if input.MembersCanCreateJobs != nil {
		group.MembersCanCreateJobs = *input.MembersCanCreateJobs
	}
	if input.Active != nil {
		group.Active = *input.Active
	}

	if err := s.repo.Update(ctx, group); err != nil {
		return nil, err
	}

	if err := s.auditLogger.LogEvent(ctx, model.LogBillingGroupModified, p.UserID, audit.Refs{ShopID: &group.ShopID, BillingGroupID: &group.ID}, &before, group, req); err != nil {
		return nil, fmt.Errorf("logging group update: %w", err)
	}

	return group, nil
}

// ListGroups returns the billing groups of a shop visible to the principal.
// Privileged members see every group; others only the groups they belong to.
func (s *GroupService) ListGroups(ctx context.Context, p access.Principal, shopID uuid.UUID) ([]*model.BillingGroup, error) {
	m, err := s.access.Require(ctx, p, access.Scope{ShopID: shopID})
	if err != nil {
		return nil, err
	}

	groups, err := s.repo.FindByShop(ctx, shopID)
	if err != nil {
		return nil, err
	}

	if p.Admin || (m.Shop != nil && m.Shop.AccountType.Privileged()) {
		return groups, nil
	}

	visible := make([]*model.BillingGroup, 0, len(groups))
	for _, g := range groups {
		membership, err := s.repo.FindMembership(ctx, p.UserID, g.ID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				continue
			}
			return nil, err
		}
		if membership.Active {
			visible = append(visible, g)
		}
	}
	return visible, nil
}

// JobRollup pairs a group job with its aggregate, for the group detail view.
type JobRollup struct {
	Job       *model.Job           `json:"job"`
	Aggregate costing.JobAggregate `json:"aggregate"`
}

// GroupDetail is the billing-group detail view: the group, its members, and
// a per-job cost/status/approval rollup.
type GroupDetail struct {
	Group   *model.BillingGroup       `json:"group"`
	Members []*model.UserBillingGroup `json:"members"`
	Jobs    []JobRollup               `json:"jobs"`
}

// GetGroupDetail loads a group with its members and per-job rollups. Requires
// group-scoped access.
func (s *GroupService) GetGroupDetail(ctx context.Context, p access.Principal, groupID uuid.UUID) (*GroupDetail, error) {
	group, err := s.repo.FindByID(ctx, groupID)
	if err != nil {
		return nil, err
	}

	if _, err := s.access.Require(ctx, p, access.Scope{ShopID: group.ShopID, GroupID: &group.ID}); err != nil {
		return nil, err
	}

	members, err := s.repo.FindMembers(ctx, groupID)
	if err != nil {
		return nil, err
	}

	jobs, err := s.jobRepo.FindByGroup(ctx, groupID)
	if err != nil {
		return nil, err
	}

	detail := &GroupDetail{Group: group, Members: members}
	for _, job := range jobs {
		items, err := s.jobRepo.FindActiveItems(ctx, job.ID)
		if err != nil {
			return nil, err
		}
		detail.Jobs = append(detail.Jobs, JobRollup{
			Job:       job,
			Aggregate: costing.AggregateJob(items, itemConfig, costing.DefaultPolicy),
		})
	}

	return detail, nil
}

type AddGroupMemberInput struct {
	UserID uuid.UUID       `json:"user_id" validate:"required"`
	Role   model.GroupRole `json:"role"`
}

// AddMember adds a shop member to a billing group, reactivating a removed
// membership row when one exists. Privileged members or group admins only.
// The target user must hold an active membership in the group's shop.
func (s *GroupService) AddMember(ctx context.Context, p access.Principal, groupID uuid.UUID, input AddGroupMemberInput, req *http.Request) (*model.UserBillingGroup, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	group, err := s.repo.FindByID(ctx, groupID)
	if err != nil {
		return nil, err
	}
	if err := s.requireGroupAdmin(ctx, p, group); err != nil {
		return nil, err
	}

	targetShop, err := s.access.Memberships(ctx, access.Principal{UserID: input.UserID}, access.Scope{ShopID: group.ShopID})
	if err != nil {
		return nil, err
	}
	if targetShop.Shop == nil || !targetShop.Shop.Active {
		return nil, fmt.Errorf("%w: user is not a member of this shop", domain.ErrInvalidInput)
	}

	role := input.Role
	if role == "" {
		role = model.GroupRoleMember
	}
	switch role {
	case model.GroupRoleMember, model.GroupRoleAdmin:
	default:
		return nil, fmt.Errorf("%w: unknown group role %q", domain.ErrInvalidInput, role)
	}

	membership := &model.UserBillingGroup{
		UserID:         input.UserID,
		BillingGroupID: groupID,
		Role:           role,
		Active:         true,
	}

	err = s.repo.AddMember(ctx, membership)
	if errors.Is(err, domain.ErrDuplicateMembership) {
		existing, ferr := s.repo.FindMembership(ctx, input.UserID, groupID)
		if ferr != nil {
			return nil, ferr
		}
		if existing.Active {
			return nil, domain.ErrDuplicateMembership
		}
		existing.Active = true
		existing.Role = role
		if uerr := s.repo.UpdateMembership(ctx, existing); uerr != nil {
			return nil, uerr
		}
		membership = existing
	} else if err != nil {
		return nil, err
	}

	if err := s.auditLogger.LogEvent(ctx, model.LogUserAddedToGroup, p.UserID, audit.Refs{ShopID: &group.ShopID, BillingGroupID: &groupID}, nil, membership, req); err != nil {
		return nil, fmt.Errorf("logging group member addition: %w", err)
	}

	return membership, nil
}

// RemoveMember deactivates a group membership, preserving the row for
// history. Privileged members or group admins only.
func (s *GroupService) RemoveMember(ctx context.Context, p access.Principal, groupID, userID uuid.UUID, req *http.Request) error {
	group, err := s.repo.FindByID(ctx, groupID)
	if err != nil {
		return err
	}
	if err := s.requireGroupAdmin(ctx, p, group); err != nil {
		return err
	}

	membership, err := s.repo.FindMembership(ctx, userID, groupID)
	if err != nil {
		return err
	}
	if !membership.Active {
		return domain.ErrNotFound
	}

	before := *membership
	membership.Active = false
	if err := s.repo.UpdateMembership(ctx, membership); err != nil {
		return err
	}

	if err := s.auditLogger.LogEvent(ctx, model.LogUserRemovedFromGroup, p.UserID, audit.Refs{ShopID: &group.ShopID, BillingGroupID: &groupID}, &before, membership, req); err != nil {
		return fmt.Errorf("logging group member removal: %w", err)
	}

	return nil
}

// CanCreateJobs reports whether the principal may create jobs billed to the
// group: open groups admit any active member, otherwise global admins, shop
// admins and group admins.
func (s *GroupService) CanCreateJobs(ctx context.Context, p access.Principal, groupID uuid.UUID) (bool, error) {
	group, err := s.repo.FindByID(ctx, groupID)
	if err != nil {
		return false, err
	}

	m, err := s.access.Memberships(ctx, p, access.Scope{ShopID: group.ShopID, GroupID: &group.ID})
	if err != nil {
		return false, err
	}

	return access.CanCreateGroupJobs(p, group, m), nil
}

// requireGroupAdmin passes global admins, privileged shop members, and
// group-admin members.
func (s *GroupService) requireGroupAdmin(ctx context.Context, p access.Principal, group *model.BillingGroup) error {
	m, err := s.access.Require(ctx, p, access.Scope{ShopID: group.ShopID, GroupID: &group.ID})
	if err != nil {
		return err
	}
	if p.Admin {
		return nil
	}
	if m.Shop != nil && m.Shop.AccountType.Privileged() {
		return nil
	}
	if m.Group != nil && m.Group.Role == model.GroupRoleAdmin {
		return nil
	}
	return domain.AccessDenied(access.ReasonNoGroupAccess)
}
