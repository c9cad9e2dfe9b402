// Package authz contains the authorization guard: a single priority-ordered
// policy table evaluated once per action, replacing per-endpoint role checks.
package authz

import (
	"github.com/google/uuid"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
)

// Action names something a principal wants to do to a resource.
type Action string

const (
	// Admin-scoped actions.
	ActionViewAllOrders Action = "orders.view_all"
	ActionManageCatalog Action = "catalog.manage"
	ActionViewDashboard Action = "dashboard.view"

	// Company-scoped actions.
	ActionViewCompany       Action = "company.view"
	ActionViewCompanyOrders Action = "company.orders.view"
	ActionCompanyCheckout   Action = "company.checkout"
	ActionInviteMember      Action = "company.members.invite"
	ActionChangeMemberRole  Action = "company.members.change_role"
	ActionRemoveMember      Action = "company.members.remove"
	ActionDeleteCompany     Action = "company.delete"

	// Self-service actions.
	ActionLeaveCompany  Action = "company.leave"
	ActionViewOwnOrders Action = "orders.view_own"
	ActionViewProfile   Action = "profile.view"
)

// companyScoped reports whether the action targets a company resource.
func (a Action) companyScoped() bool {
	switch a {
	case ActionViewCompany, ActionViewCompanyOrders, ActionCompanyCheckout,
		ActionInviteMember, ActionChangeMemberRole, ActionRemoveMember, ActionDeleteCompany:
		return true
	default:
		return false
	}
}

// mutating reports whether a company-scoped action changes membership or the
// company itself, and therefore needs an admin membership when the caller is
// not the owner.
func (a Action) mutating() bool {
	switch a {
	case ActionInviteMember, ActionChangeMemberRole, ActionRemoveMember, ActionDeleteCompany:
		return true
	default:
		return false
	}
}

// memberMutation reports whether the action modifies a specific member row.
// These are the actions the owner-protection rule applies to.
func (a Action) memberMutation() bool {
	return a == ActionChangeMemberRole || a == ActionRemoveMember
}

// selfScoped reports whether the action only requires acting on oneself.
func (a Action) selfScoped() bool {
	switch a {
	case ActionLeaveCompany, ActionViewOwnOrders, ActionViewProfile:
		return true
	default:
		return false
	}
}

// Resource is the target of an authorization check. Rows are loaded by the
// caller; the guard itself never touches storage.
type Resource struct {
	Company      *entity.Company
	Membership   *entity.CompanyMembership // The caller's own membership row, nil when absent.
	TargetUserID uuid.UUID                 // The user a self or member action is aimed at.
}

// Reason explains a guard decision.
type Reason string

const (
	ReasonNotAuthorized    Reason = "NOT_AUTHORIZED"
	ReasonCannotModifyOwner Reason = "CANNOT_MODIFY_OWNER"
	ReasonPlatformAdmin    Reason = "PLATFORM_ADMIN"
	ReasonCompanyOwner     Reason = "COMPANY_OWNER"
	ReasonCompanyAdmin     Reason = "COMPANY_ADMIN"
	ReasonCompanyMember    Reason = "COMPANY_MEMBER"
	ReasonSelf             Reason = "SELF"
)

// Decision is the outcome of evaluating the policy table.
type Decision struct {
	Allowed bool
	Reason  Reason
}

// Err maps a denial onto the domain error the delivery layer returns.
// Calling Err on an allow decision returns nil.
func (d Decision) Err() error {
	if d.Allowed {
		return nil
	}
	if d.Reason == ReasonCannotModifyOwner {
		return domainerrors.ErrCannotModifyOwner
	}

	return domainerrors.ErrNotAuthorized
}

func allow(reason Reason) Decision {
	return Decision{Allowed: true, Reason: reason}
}

func deny(reason Reason) Decision {
	return Decision{Allowed: false, Reason: reason}
}

// rule is one row of the policy table. match returns the decision and true
// when the rule applies; evaluation stops at the first applicable rule.
type rule struct {
	name  string
	match func(p *entity.Principal, action Action, res Resource) (Decision, bool)
}

// Guard evaluates the ordered policy table. It is stateless and safe for
// concurrent use.
type Guard struct {
	policy []rule
}

// NewGuard builds the guard with the fixed rule order:
// owner protection, platform admin, company owner, membership, self, deny.
func NewGuard() *Guard {
	return &Guard{policy: []rule{
		{name: "owner-protection", match: matchOwnerProtection},
		{name: "platform-admin", match: matchPlatformAdmin},
		{name: "company-owner", match: matchCompanyOwner},
		{name: "company-membership", match: matchCompanyMembership},
		{name: "self-service", match: matchSelfService},
	}}
}

// Authorize decides whether the principal may perform the action on the
// resource. A nil principal is always denied.
func (g *Guard) Authorize(principal *entity.Principal, action Action, res Resource) Decision {
	if principal == nil {
		return deny(ReasonNotAuthorized)
	}

	for _, r := range g.policy {
		if decision, ok := r.match(principal, action, res); ok {
			return decision
		}
	}

	return deny(ReasonNotAuthorized)
}

// matchOwnerProtection denies member mutations aimed at the company owner.
// It precedes every allow rule: not even a platform admin may change or
// remove the owner through membership management.
func matchOwnerProtection(_ *entity.Principal, action Action, res Resource) (Decision, bool) {
	if !action.memberMutation() || res.Company == nil {
		return Decision{}, false
	}
	if res.TargetUserID == res.Company.OwnerID {
		return deny(ReasonCannotModifyOwner), true
	}

	return Decision{}, false
}

func matchPlatformAdmin(p *entity.Principal, _ Action, _ Resource) (Decision, bool) {
	if p.Role == entity.RoleAdmin {
		return allow(ReasonPlatformAdmin), true
	}

	return Decision{}, false
}

// matchCompanyOwner allows any company-scoped action for the owner; ownership
// supersedes whatever membership role the caller might otherwise have.
func matchCompanyOwner(p *entity.Principal, action Action, res Resource) (Decision, bool) {
	if !action.companyScoped() || res.Company == nil {
		return Decision{}, false
	}
	if res.Company.OwnerID == p.ID {
		return allow(ReasonCompanyOwner), true
	}

	return Decision{}, false
}

// matchCompanyMembership requires a membership row for company-scoped
// actions; mutating actions further require the admin membership role.
func matchCompanyMembership(p *entity.Principal, action Action, res Resource) (Decision, bool) {
	if !action.companyScoped() {
		return Decision{}, false
	}
	membership := res.Membership
	if membership == nil || membership.UserID != p.ID {
		return deny(ReasonNotAuthorized), true
	}
	if action.mutating() {
		if membership.Role == entity.CompanyRoleAdmin {
			return allow(ReasonCompanyAdmin), true
		}

		return deny(ReasonNotAuthorized), true
	}

	return allow(ReasonCompanyMember), true
}

func matchSelfService(p *entity.Principal, action Action, res Resource) (Decision, bool) {
	if !action.selfScoped() {
		return Decision{}, false
	}
	if res.TargetUserID == p.ID {
		return allow(ReasonSelf), true
	}

	return deny(ReasonNotAuthorized), true
}
