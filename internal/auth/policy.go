package auth

import (
	"errors"

	"changaya_backend/internal/models"
)

// Action enumerates the protected operations subject to the authorization
// policy.
type Action string

const (
	ActionListUsers  Action = "users:list"
	ActionReadUser   Action = "users:read"
	ActionUpdateUser Action = "users:update"
	ActionDeleteUser Action = "users:delete"

	ActionCreateChanga        Action = "changas:create"
	ActionListWorkerChangas   Action = "changas:list:worker"
	ActionListEmployerChangas Action = "changas:list:employer"
	ActionUpdateChanga        Action = "changas:update"
	ActionDeleteChanga        Action = "changas:delete"
)

// IsAdmin reports whether the caller holds the admin role.
func IsAdmin(id *Identity) bool {
	return id != nil && id.Role == models.UserRoleAdmin
}

// Authorize applies the role/ownership rules for one action. The resource
// argument depends on the action: the target user ID (string) for account
// actions, the *models.Changa for changa mutations, nil for the rest.
//
// Keeping every rule in one switch makes the policy testable in isolation
// instead of scattered across handlers.
func Authorize(id *Identity, action Action, resource interface{}) bool {
	if id == nil {
		return false
	}

	switch action {
	case ActionListUsers:
		return IsAdmin(id)

	case ActionReadUser, ActionUpdateUser, ActionDeleteUser:
		targetID, _ := resource.(string)
		return IsAdmin(id) || (targetID != "" && targetID == id.UserID)

	case ActionCreateChanga:
		// Any authenticated role may post; the ownership column is derived
		// from the caller's role at creation time.
		return true

	case ActionListWorkerChangas:
		return id.Role == models.UserRoleWorker

	case ActionListEmployerChangas:
		return id.Role == models.UserRoleEmployer

	case ActionUpdateChanga, ActionDeleteChanga:
		changa, ok := resource.(*models.Changa)
		if !ok || changa == nil {
			return false
		}
		return IsAdmin(id) || changa.OwnedBy(id.UserID)
	}

	return false
}

// ValidateRegistrationRole rejects roles that cannot self-register. Admin
// accounts are only seeded from configuration.
func ValidateRegistrationRole(role models.UserRole) error {
	switch role {
	case models.UserRoleWorker, models.UserRoleEmployer:
		return nil
	default:
		return errors.New("invalid role")
	}
}
