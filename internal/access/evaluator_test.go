package access_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/openfab/printhub/internal/access"
	"github.com/openfab/printhub/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestEvaluate(t *testing.T) {
	userID := uuid.New()
	otherID := uuid.New()
	shopID := uuid.New()
	groupID := uuid.New()

	membership := func(accountType model.AccountType, active bool) *model.UserShop {
		return &model.UserShop{UserID: userID, ShopID: shopID, AccountType: accountType, Active: active}
	}
	groupMembership := func(role model.GroupRole, active bool) *model.UserBillingGroup {
		return &model.UserBillingGroup{UserID: userID, BillingGroupID: groupID, Role: role, Active: active}
	}

	tests := []struct {
		name        string
		principal   access.Principal
		scope       access.Scope
		memberships access.Memberships
		allowed     bool
		reason      string
	}{
		{
			name:      "suspended principal is denied everything",
			principal: access.Principal{UserID: userID, Admin: true, Suspended: true},
			scope:     access.Scope{ShopID: shopID},
			allowed:   false,
			reason:    access.ReasonSuspended,
		},
		{
			name:      "global admin needs no membership",
			principal: access.Principal{UserID: userID, Admin: true},
			scope:     access.Scope{ShopID: shopID, GroupID: &groupID},
			allowed:   true,
		},
		{
			name:      "no membership row denies",
			principal: access.Principal{UserID: userID},
			scope:     access.Scope{ShopID: shopID},
			allowed:   false,
			reason:    access.ReasonNoShopAccess,
		},
		{
			name:        "deactivated shop membership denies",
			principal:   access.Principal{UserID: userID},
			scope:       access.Scope{ShopID: shopID},
			memberships: access.Memberships{Shop: membership(model.AccountOperator, false)},
			allowed:     false,
			reason:      access.ReasonNoShopAccess,
		},
		{
			name:        "active customer membership allows shop scope",
			principal:   access.Principal{UserID: userID},
			scope:       access.Scope{ShopID: shopID},
			memberships: access.Memberships{Shop: membership(model.AccountCustomer, true)},
			allowed:     true,
		},
		{
			name:        "group scope denies customers without group membership",
			principal:   access.Principal{UserID: userID},
			scope:       access.Scope{ShopID: shopID, GroupID: &groupID},
			memberships: access.Memberships{Shop: membership(model.AccountCustomer, true)},
			allowed:     false,
			reason:      access.ReasonNoGroupAccess,
		},
		{
			name:      "group scope admits active group members",
			principal: access.Principal{UserID: userID},
			scope:     access.Scope{ShopID: shopID, GroupID: &groupID},
			memberships: access.Memberships{
				Shop:  membership(model.AccountCustomer, true),
				Group: groupMembership(model.GroupRoleMember, true),
			},
			allowed: true,
		},
		{
			name:      "deactivated group member is denied",
			principal: access.Principal{UserID: userID},
			scope:     access.Scope{ShopID: shopID, GroupID: &groupID},
			memberships: access.Memberships{
				Shop:  membership(model.AccountCustomer, true),
				Group: groupMembership(model.GroupRoleMember, false),
			},
			allowed: false,
			reason:  access.ReasonNoGroupAccess,
		},
		{
			name:      "group admin role survives deactivation",
			principal: access.Principal{UserID: userID},
			scope:     access.Scope{ShopID: shopID, GroupID: &groupID},
			memberships: access.Memberships{
				Shop:  membership(model.AccountCustomer, true),
				Group: groupMembership(model.GroupRoleAdmin, false),
			},
			allowed: true,
		},
		{
			name:        "privileged shop roles bypass group membership",
			principal:   access.Principal{UserID: userID},
			scope:       access.Scope{ShopID: shopID, GroupID: &groupID},
			memberships: access.Memberships{Shop: membership(model.AccountOperator, true)},
			allowed:     true,
		},
		{
			name:        "customer may act on their own job",
			principal:   access.Principal{UserID: userID},
			scope:       access.Scope{ShopID: shopID, JobOwnerID: &userID},
			memberships: access.Memberships{Shop: membership(model.AccountCustomer, true)},
			allowed:     true,
		},
		{
			name:        "customer may not act on another user's job",
			principal:   access.Principal{UserID: userID},
			scope:       access.Scope{ShopID: shopID, JobOwnerID: &otherID},
			memberships: access.Memberships{Shop: membership(model.AccountCustomer, true)},
			allowed:     false,
			reason:      access.ReasonNotJobOwner,
		},
		{
			name:        "operator may act on another user's job",
			principal:   access.Principal{UserID: userID},
			scope:       access.Scope{ShopID: shopID, JobOwnerID: &otherID},
			memberships: access.Memberships{Shop: membership(model.AccountOperator, true)},
			allowed:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			decision := access.Evaluate(tt.principal, tt.scope, tt.memberships)

			assert.Equal(t, tt.allowed, decision.Allowed)
			assert.Equal(t, tt.reason, decision.Reason)
		})
	}
}

func TestCanCreateGroupJobs(t *testing.T) {
	userID := uuid.New()
	shopID := uuid.New()
	groupID := uuid.New()

	openGroup := &model.BillingGroup{ID: groupID, ShopID: shopID, MembersCanCreateJobs: true}
	closedGroup := &model.BillingGroup{ID: groupID, ShopID: shopID}

	activeMember := &model.UserBillingGroup{UserID: userID, BillingGroupID: groupID, Role: model.GroupRoleMember, Active: true}
	groupAdmin := &model.UserBillingGroup{UserID: userID, BillingGroupID: groupID, Role: model.GroupRoleAdmin, Active: true}
	customer := &model.UserShop{UserID: userID, ShopID: shopID, AccountType: model.AccountCustomer, Active: true}
	shopAdmin := &model.UserShop{UserID: userID, ShopID: shopID, AccountType: model.AccountAdmin, Active: true}
	operator := &model.UserShop{UserID: userID, ShopID: shopID, AccountType: model.AccountOperator, Active: true}

	p := access.Principal{UserID: userID}

	assert.True(t, access.CanCreateGroupJobs(p, openGroup, access.Memberships{Shop: customer, Group: activeMember}))
	// Open groups admit every active shop member, with or without a group row.
	assert.True(t, access.CanCreateGroupJobs(p, openGroup, access.Memberships{Shop: customer}))
	assert.False(t, access.CanCreateGroupJobs(p, openGroup, access.Memberships{}))
	assert.False(t, access.CanCreateGroupJobs(p, closedGroup, access.Memberships{Shop: customer, Group: activeMember}))
	assert.True(t, access.CanCreateGroupJobs(p, closedGroup, access.Memberships{Shop: customer, Group: groupAdmin}))
	assert.True(t, access.CanCreateGroupJobs(p, closedGroup, access.Memberships{Shop: shopAdmin}))
	assert.False(t, access.CanCreateGroupJobs(p, closedGroup, access.Memberships{Shop: operator}))
	assert.True(t, access.CanCreateGroupJobs(access.Principal{UserID: userID, Admin: true}, closedGroup, access.Memberships{}))
	assert.False(t, access.CanCreateGroupJobs(access.Principal{UserID: userID, Suspended: true}, openGroup, access.Memberships{Shop: customer, Group: activeMember}))
}
