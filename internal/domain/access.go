package domain

import (
	"context"
	"fmt"
	"slices"

	"github.com/google/uuid"

	"github.com/heartmarshall/floodinsure-backend/pkg/ctxutil"
)

// Action names a permission-checked operation.
type Action string

const (
	ActionPolicyCreate Action = "policy:create"
	ActionPolicyUpdate Action = "policy:update"
	ActionPolicyRead   Action = "policy:read"
	ActionPolicyList   Action = "policy:list"
	ActionPolicyDelete Action = "policy:delete"

	ActionClaimCreate       Action = "claim:create"
	ActionClaimRead         Action = "claim:read"
	ActionClaimList         Action = "claim:list"
	ActionClaimUpdateStatus Action = "claim:update_status"

	ActionRiskRead      Action = "risk:read"
	ActionRiskWrite     Action = "risk:write"
	ActionRiskAnalytics Action = "risk:analytics"

	ActionUserList       Action = "user:list"
	ActionUserDeactivate Action = "user:deactivate"
	ActionUserSetRole    Action = "user:set_role"
	ActionUserBulkStatus Action = "user:bulk_status"

	// Checked with AuthorizeSelfOrAdmin, not the role table.
	ActionUserRead   Action = "user:read"
	ActionUserUpdate Action = "user:update"
)

func (a Action) String() string { return string(a) }

var (
	staffRoles = []UserRole{UserRoleAdmin, UserRoleAgent}
	allRoles   = []UserRole{UserRoleAdmin, UserRoleAgent, UserRolePolicyholder}
	adminOnly  = []UserRole{UserRoleAdmin}
)

// permissions is the role allow-list for every action.
var permissions = map[Action][]UserRole{
	ActionPolicyCreate: staffRoles,
	ActionPolicyUpdate: staffRoles,
	ActionPolicyRead:   allRoles,
	ActionPolicyList:   staffRoles,
	ActionPolicyDelete: adminOnly,

	ActionClaimCreate:       allRoles,
	ActionClaimRead:         allRoles,
	ActionClaimList:         staffRoles,
	ActionClaimUpdateStatus: staffRoles,

	ActionRiskRead:      staffRoles,
	ActionRiskWrite:     adminOnly,
	ActionRiskAnalytics: adminOnly,

	ActionUserList:       adminOnly,
	ActionUserDeactivate: adminOnly,
	ActionUserSetRole:    adminOnly,
	ActionUserBulkStatus: adminOnly,
}

// AllowedRoles returns the roles permitted to perform a.
func AllowedRoles(a Action) []UserRole {
	return slices.Clone(permissions[a])
}

// Principal is the authenticated caller of an operation.
type Principal struct {
	UserID uuid.UUID
	Role   UserRole
}

// PrincipalFromCtx returns the caller stored by the auth middleware, or
// ErrUnauthorized when the request is anonymous.
func PrincipalFromCtx(ctx context.Context) (Principal, error) {
	id, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return Principal{}, ErrUnauthorized
	}
	return Principal{UserID: id, Role: UserRole(ctxutil.UserRoleFromCtx(ctx))}, nil
}

// Decision is the outcome of a permission check.
type Decision struct {
	Allowed bool
	Action  Action
	Role    UserRole
	Reason  string
}

// Err returns nil for an allowed decision and an error wrapping
// ErrForbidden otherwise.
func (d Decision) Err() error {
	if d.Allowed {
		return nil
	}
	return fmt.Errorf("%s: %s: %w", d.Action, d.Reason, ErrForbidden)
}

// AuthorizeRoles checks role against an explicit allow-list.
func AuthorizeRoles(role UserRole, allowed ...UserRole) Decision {
	d := Decision{Role: role}
	switch {
	case !role.IsValid():
		d.Reason = fmt.Sprintf("unknown role %q", role)
	case slices.Contains(allowed, role):
		d.Allowed = true
		d.Reason = "role allowed"
	default:
		d.Reason = fmt.Sprintf("role %q not permitted", role)
	}
	return d
}

// Authorize checks the principal's role against the allow-list of action a.
func Authorize(p Principal, a Action) Decision {
	allowed, ok := permissions[a]
	if !ok {
		return Decision{Action: a, Role: p.Role, Reason: "unknown action"}
	}
	d := AuthorizeRoles(p.Role, allowed...)
	d.Action = a
	return d
}

// AuthorizeSelfOrAdmin allows admins, and any user acting on their own
// record.
func AuthorizeSelfOrAdmin(p Principal, target uuid.UUID, a Action) Decision {
	d := Decision{Action: a, Role: p.Role}
	switch {
	case p.Role.IsAdmin():
		d.Allowed = true
		d.Reason = "admin"
	case p.UserID == target && p.Role.IsValid():
		d.Allowed = true
		d.Reason = "self"
	default:
		d.Reason = "only admins may access other users"
	}
	return d
}
