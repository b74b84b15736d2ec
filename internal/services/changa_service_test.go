package services

import (
	"context"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"changaya_backend/internal/auth"
	"changaya_backend/internal/models"
	"changaya_backend/internal/repositories"
	"changaya_backend/internal/services/dto"
	"changaya_backend/internal/validator"
	"changaya_backend/pkg/apperrors"
)

// fakeChangaRepo is an in-memory ChangaRepository.
type fakeChangaRepo struct {
	changas map[string]*models.Changa
	nextID  int
}

func newFakeChangaRepo() *fakeChangaRepo {
	return &fakeChangaRepo{changas: make(map[string]*models.Changa)}
}

func (r *fakeChangaRepo) Create(changa *models.Changa) error {
	if changa.ID == "" {
		r.nextID++
		changa.ID = "changa-" + strconv.Itoa(r.nextID)
	}
	cp := *changa
	r.changas[changa.ID] = &cp
	return nil
}

func (r *fakeChangaRepo) FindByID(id string) (*models.Changa, error) {
	if c, ok := r.changas[id]; ok {
		cp := *c
		return &cp, nil
	}
	return nil, repositories.ErrChangaNotFound
}

func (r *fakeChangaRepo) FindByStatus(status models.ChangaStatus) ([]models.Changa, error) {
	var out []models.Changa
	for _, c := range r.changas {
		if c.Status == status {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (r *fakeChangaRepo) FindByWorker(workerID string) ([]models.Changa, error) {
	var out []models.Changa
	for _, c := range r.changas {
		if c.WorkerID != nil && *c.WorkerID == workerID {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (r *fakeChangaRepo) FindByEmployer(employerID string) ([]models.Changa, error) {
	var out []models.Changa
	for _, c := range r.changas {
		if c.EmployerID != nil && *c.EmployerID == employerID {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (r *fakeChangaRepo) Update(changa *models.Changa) error {
	if _, ok := r.changas[changa.ID]; !ok {
		return repositories.ErrChangaNotFound
	}
	cp := *changa
	r.changas[changa.ID] = &cp
	return nil
}

func (r *fakeChangaRepo) Delete(id string) error {
	if _, ok := r.changas[id]; !ok {
		return repositories.ErrChangaNotFound
	}
	delete(r.changas, id)
	return nil
}

func newTestChangaService(repo repositories.ChangaRepository) *ChangaService {
	return NewChangaService(repo, validator.New())
}

func workerCaller(id string) *auth.Identity {
	return &auth.Identity{UserID: id, Email: id + "@example.com", Role: models.UserRoleWorker}
}

func employerCaller(id string) *auth.Identity {
	return &auth.Identity{UserID: id, Email: id + "@example.com", Role: models.UserRoleEmployer}
}

func adminCaller() *auth.Identity {
	return &auth.Identity{UserID: "admin-1", Email: "admin@example.com", Role: models.UserRoleAdmin}
}

func createReq() *dto.CreateChangaRequest {
	return &dto.CreateChangaRequest{
		Title:        "Pintar un cerco",
		Description:  "Cerco de madera, 20 metros",
		Compensation: 15000,
	}
}

func TestChangaService_Create_WorkerOwnsThroughWorkerColumn(t *testing.T) {
	svc := newTestChangaService(newFakeChangaRepo())

	changa, err := svc.Create(context.Background(), workerCaller("w1"), createReq())
	require.NoError(t, err)

	require.NotNil(t, changa.WorkerID)
	assert.Equal(t, "w1", *changa.WorkerID)
	assert.Nil(t, changa.EmployerID)
	assert.Equal(t, models.ChangaStatusOpen, changa.Status)
}

func TestChangaService_Create_EmployerOwnsThroughEmployerColumn(t *testing.T) {
	svc := newTestChangaService(newFakeChangaRepo())

	changa, err := svc.Create(context.Background(), employerCaller("e1"), createReq())
	require.NoError(t, err)

	require.NotNil(t, changa.EmployerID)
	assert.Equal(t, "e1", *changa.EmployerID)
	assert.Nil(t, changa.WorkerID)
}

func TestChangaService_Create_RejectsInvalidPayload(t *testing.T) {
	svc := newTestChangaService(newFakeChangaRepo())

	req := createReq()
	req.Compensation = -5

	_, err := svc.Create(context.Background(), workerCaller("w1"), req)
	require.Error(t, err)

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, 400, appErr.HTTPCode)
}

func TestChangaService_ListOpen_IsPublicAndFiltered(t *testing.T) {
	repo := newFakeChangaRepo()
	svc := newTestChangaService(repo)

	open, err := svc.Create(context.Background(), workerCaller("w1"), createReq())
	require.NoError(t, err)

	done, err := svc.Create(context.Background(), employerCaller("e1"), createReq())
	require.NoError(t, err)

	stored, err := repo.FindByID(done.ID)
	require.NoError(t, err)
	stored.Status = models.ChangaStatusDone
	require.NoError(t, repo.Update(stored))

	changas, err := svc.ListOpen(context.Background())
	require.NoError(t, err)
	require.Len(t, changas, 1)
	assert.Equal(t, open.ID, changas[0].ID)
}

func TestChangaService_RoleScopedListings(t *testing.T) {
	repo := newFakeChangaRepo()
	svc := newTestChangaService(repo)

	_, err := svc.Create(context.Background(), workerCaller("w1"), createReq())
	require.NoError(t, err)
	_, err = svc.Create(context.Background(), employerCaller("e1"), createReq())
	require.NoError(t, err)

	mine, err := svc.ListForWorker(context.Background(), workerCaller("w1"))
	require.NoError(t, err)
	assert.Len(t, mine, 1)

	_, err = svc.ListForWorker(context.Background(), employerCaller("e1"))
	assert.ErrorIs(t, err, apperrors.ErrInsufficientPermissions)

	posted, err := svc.ListForEmployer(context.Background(), employerCaller("e1"))
	require.NoError(t, err)
	assert.Len(t, posted, 1)

	_, err = svc.ListForEmployer(context.Background(), workerCaller("w1"))
	assert.ErrorIs(t, err, apperrors.ErrInsufficientPermissions)
}

func TestChangaService_Update_OwnerOnly(t *testing.T) {
	repo := newFakeChangaRepo()
	svc := newTestChangaService(repo)

	changa, err := svc.Create(context.Background(), workerCaller("w1"), createReq())
	require.NoError(t, err)

	update := &dto.UpdateChangaRequest{Title: "Pintar dos cercos"}

	// Non-owner gets forbidden.
	_, err = svc.Update(context.Background(), workerCaller("w2"), changa.ID, update)
	assert.ErrorIs(t, err, apperrors.ErrNotChangaOwner)

	// Owner succeeds.
	updated, err := svc.Update(context.Background(), workerCaller("w1"), changa.ID, update)
	require.NoError(t, err)
	assert.Equal(t, "Pintar dos cercos", updated.Title)

	// Admin overrides ownership.
	_, err = svc.Update(context.Background(), adminCaller(), changa.ID, &dto.UpdateChangaRequest{
		Status: models.ChangaStatusCancelled,
	})
	require.NoError(t, err)
}

// An unknown id reports not-found even to a caller who would not own it,
// so ids cannot be probed for existence.
func TestChangaService_Update_MissingBeforeForbidden(t *testing.T) {
	svc := newTestChangaService(newFakeChangaRepo())

	_, err := svc.Update(context.Background(), workerCaller("w1"), "no-such-id", &dto.UpdateChangaRequest{
		Title: "anything",
	})
	assert.ErrorIs(t, err, apperrors.ErrChangaNotFound)
}

func TestChangaService_Delete(t *testing.T) {
	repo := newFakeChangaRepo()
	svc := newTestChangaService(repo)

	changa, err := svc.Create(context.Background(), employerCaller("e1"), createReq())
	require.NoError(t, err)

	err = svc.Delete(context.Background(), employerCaller("e2"), changa.ID)
	assert.ErrorIs(t, err, apperrors.ErrNotChangaOwner)

	err = svc.Delete(context.Background(), employerCaller("e1"), changa.ID)
	require.NoError(t, err)

	err = svc.Delete(context.Background(), employerCaller("e1"), changa.ID)
	assert.ErrorIs(t, err, apperrors.ErrChangaNotFound)
}
