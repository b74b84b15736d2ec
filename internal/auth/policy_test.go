package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"changaya_backend/internal/models"
)

func workerIdentity(id string) *Identity {
	return &Identity{UserID: id, Email: id + "@example.com", Role: models.UserRoleWorker}
}

func employerIdentity(id string) *Identity {
	return &Identity{UserID: id, Email: id + "@example.com", Role: models.UserRoleEmployer}
}

func adminIdentity() *Identity {
	return &Identity{UserID: "admin-1", Email: "admin@example.com", Role: models.UserRoleAdmin}
}

func ownedChanga(ownerID string, byWorker bool) *models.Changa {
	c := &models.Changa{Title: "paint a fence"}
	if byWorker {
		c.WorkerID = &ownerID
	} else {
		c.EmployerID = &ownerID
	}
	return c
}

func TestAuthorize_NilIdentity(t *testing.T) {
	assert.False(t, Authorize(nil, ActionListUsers, nil))
	assert.False(t, Authorize(nil, ActionCreateChanga, nil))
	assert.False(t, Authorize(nil, ActionUpdateChanga, ownedChanga("w1", true)))
}

func TestAuthorize_ListUsers(t *testing.T) {
	assert.True(t, Authorize(adminIdentity(), ActionListUsers, nil))
	assert.False(t, Authorize(workerIdentity("w1"), ActionListUsers, nil))
	assert.False(t, Authorize(employerIdentity("e1"), ActionListUsers, nil))
}

func TestAuthorize_UserSelfOrAdmin(t *testing.T) {
	worker := workerIdentity("w1")

	for _, action := range []Action{ActionReadUser, ActionUpdateUser, ActionDeleteUser} {
		assert.True(t, Authorize(worker, action, "w1"), "self access for %s", action)
		assert.False(t, Authorize(worker, action, "w2"), "other account for %s", action)
		assert.False(t, Authorize(worker, action, ""), "empty target for %s", action)
		assert.True(t, Authorize(adminIdentity(), action, "w1"), "admin override for %s", action)
	}
}

func TestAuthorize_CreateChanga_AnyRole(t *testing.T) {
	assert.True(t, Authorize(workerIdentity("w1"), ActionCreateChanga, nil))
	assert.True(t, Authorize(employerIdentity("e1"), ActionCreateChanga, nil))
	assert.True(t, Authorize(adminIdentity(), ActionCreateChanga, nil))
}

func TestAuthorize_RoleScopedListings(t *testing.T) {
	assert.True(t, Authorize(workerIdentity("w1"), ActionListWorkerChangas, nil))
	assert.False(t, Authorize(employerIdentity("e1"), ActionListWorkerChangas, nil))
	assert.False(t, Authorize(adminIdentity(), ActionListWorkerChangas, nil))

	assert.True(t, Authorize(employerIdentity("e1"), ActionListEmployerChangas, nil))
	assert.False(t, Authorize(workerIdentity("w1"), ActionListEmployerChangas, nil))
}

func TestAuthorize_ChangaMutation_Ownership(t *testing.T) {
	for _, action := range []Action{ActionUpdateChanga, ActionDeleteChanga} {
		// Owner through the worker column.
		assert.True(t, Authorize(workerIdentity("w1"), action, ownedChanga("w1", true)))
		assert.False(t, Authorize(workerIdentity("w2"), action, ownedChanga("w1", true)))

		// Owner through the employer column.
		assert.True(t, Authorize(employerIdentity("e1"), action, ownedChanga("e1", false)))
		assert.False(t, Authorize(employerIdentity("e2"), action, ownedChanga("e1", false)))

		// A worker does not own an employer-posted changa and vice versa.
		assert.False(t, Authorize(workerIdentity("w1"), action, ownedChanga("e1", false)))
		assert.False(t, Authorize(employerIdentity("e1"), action, ownedChanga("w1", true)))

		// Admin bypasses ownership.
		assert.True(t, Authorize(adminIdentity(), action, ownedChanga("w1", true)))

		// Missing resource denies.
		assert.False(t, Authorize(adminIdentity(), action, nil))
		assert.False(t, Authorize(workerIdentity("w1"), action, "not a changa"))
	}
}

func TestAuthorize_UnknownAction(t *testing.T) {
	assert.False(t, Authorize(adminIdentity(), Action("changas:frobnicate"), nil))
}

func TestValidateRegistrationRole(t *testing.T) {
	assert.NoError(t, ValidateRegistrationRole(models.UserRoleWorker))
	assert.NoError(t, ValidateRegistrationRole(models.UserRoleEmployer))
	assert.Error(t, ValidateRegistrationRole(models.UserRoleAdmin))
	assert.Error(t, ValidateRegistrationRole(models.UserRole("superuser")))
	assert.Error(t, ValidateRegistrationRole(models.UserRole("")))
}
