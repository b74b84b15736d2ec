package services

import (
	"context"
	"errors"

	"changaya_backend/internal/auth"
	"changaya_backend/internal/logger"
	"changaya_backend/internal/models"
	"changaya_backend/internal/repositories"
	"changaya_backend/internal/services/dto"
	"changaya_backend/internal/validator"
	"changaya_backend/pkg/apperrors"
)

// ChangaService manages gig postings. Ownership is fixed at creation from
// the creator's role and checked on every mutation.
type ChangaService struct {
	changaRepo repositories.ChangaRepository
	validator  *validator.Validator
}

func NewChangaService(changaRepo repositories.ChangaRepository, v *validator.Validator) *ChangaService {
	return &ChangaService{
		changaRepo: changaRepo,
		validator:  v,
	}
}

// Create posts a new changa. The caller's role decides which ownership
// column is filled: workers offer their labour, employers offer a job.
func (s *ChangaService) Create(ctx context.Context, caller *auth.Identity, req *dto.CreateChangaRequest) (*dto.ChangaResponse, error) {
	if !auth.Authorize(caller, auth.ActionCreateChanga, nil) {
		return nil, apperrors.ErrInsufficientPermissions
	}

	if err := s.validator.Validate(req); err != nil {
		var vErr *validator.ValidationError
		if errors.As(err, &vErr) {
			return nil, apperrors.ValidationError(vErr.Errors)
		}
		return nil, apperrors.InternalError(err)
	}

	changa := &models.Changa{
		Title:        req.Title,
		Description:  req.Description,
		Compensation: req.Compensation,
		StartTime:    req.StartTime,
		EndTime:      req.EndTime,
		Status:       models.ChangaStatusOpen,
	}

	ownerID := caller.UserID
	if caller.Role == models.UserRoleWorker {
		changa.WorkerID = &ownerID
	} else {
		changa.EmployerID = &ownerID
	}

	if err := s.changaRepo.Create(changa); err != nil {
		return nil, apperrors.PersistenceError(err)
	}

	logger.CtxInfo(ctx, "changa created", "changa_id", changa.ID, "owner_id", ownerID, "role", caller.Role)
	resp := dto.ToChangaResponse(changa)
	return &resp, nil
}

// ListOpen returns every open changa. This listing is public.
func (s *ChangaService) ListOpen(ctx context.Context) ([]dto.ChangaResponse, error) {
	changas, err := s.changaRepo.FindByStatus(models.ChangaStatusOpen)
	if err != nil {
		return nil, apperrors.PersistenceError(err)
	}
	return dto.ToChangaResponses(changas), nil
}

// ListForWorker returns the caller's changas. Worker role only.
func (s *ChangaService) ListForWorker(ctx context.Context, caller *auth.Identity) ([]dto.ChangaResponse, error) {
	if !auth.Authorize(caller, auth.ActionListWorkerChangas, nil) {
		return nil, apperrors.ErrInsufficientPermissions
	}

	changas, err := s.changaRepo.FindByWorker(caller.UserID)
	if err != nil {
		return nil, apperrors.PersistenceError(err)
	}
	return dto.ToChangaResponses(changas), nil
}

// ListForEmployer returns the caller's changas. Employer role only.
func (s *ChangaService) ListForEmployer(ctx context.Context, caller *auth.Identity) ([]dto.ChangaResponse, error) {
	if !auth.Authorize(caller, auth.ActionListEmployerChangas, nil) {
		return nil, apperrors.ErrInsufficientPermissions
	}

	changas, err := s.changaRepo.FindByEmployer(caller.UserID)
	if err != nil {
		return nil, apperrors.PersistenceError(err)
	}
	return dto.ToChangaResponses(changas), nil
}

func (s *ChangaService) Get(ctx context.Context, changaID string) (*dto.ChangaResponse, error) {
	changa, err := s.changaRepo.FindByID(changaID)
	if err != nil {
		if errors.Is(err, repositories.ErrChangaNotFound) {
			return nil, apperrors.ErrChangaNotFound
		}
		return nil, apperrors.PersistenceError(err)
	}

	resp := dto.ToChangaResponse(changa)
	return &resp, nil
}

// Update mutates a changa. Missing resolves before forbidden: a caller who
// does not own an id cannot probe whether it exists.
func (s *ChangaService) Update(ctx context.Context, caller *auth.Identity, changaID string, req *dto.UpdateChangaRequest) (*dto.ChangaResponse, error) {
	changa, err := s.changaRepo.FindByID(changaID)
	if err != nil {
		if errors.Is(err, repositories.ErrChangaNotFound) {
			return nil, apperrors.ErrChangaNotFound
		}
		return nil, apperrors.PersistenceError(err)
	}

	if !auth.Authorize(caller, auth.ActionUpdateChanga, changa) {
		return nil, apperrors.ErrNotChangaOwner
	}

	if err := s.validator.Validate(req); err != nil {
		var vErr *validator.ValidationError
		if errors.As(err, &vErr) {
			return nil, apperrors.ValidationError(vErr.Errors)
		}
		return nil, apperrors.InternalError(err)
	}

	if req.Title != "" {
		changa.Title = req.Title
	}
	if req.Description != "" {
		changa.Description = req.Description
	}
	if req.Compensation > 0 {
		changa.Compensation = req.Compensation
	}
	if req.StartTime != nil {
		changa.StartTime = req.StartTime
	}
	if req.EndTime != nil {
		changa.EndTime = req.EndTime
	}
	if req.Status != "" {
		changa.Status = req.Status
	}

	if err := s.changaRepo.Update(changa); err != nil {
		if errors.Is(err, repositories.ErrChangaNotFound) {
			return nil, apperrors.ErrChangaNotFound
		}
		return nil, apperrors.PersistenceError(err)
	}

	logger.CtxInfo(ctx, "changa updated", "changa_id", changaID, "by", caller.UserID)
	resp := dto.ToChangaResponse(changa)
	return &resp, nil
}

func (s *ChangaService) Delete(ctx context.Context, caller *auth.Identity, changaID string) error {
	changa, err := s.changaRepo.FindByID(changaID)
	if err != nil {
		if errors.Is(err, repositories.ErrChangaNotFound) {
			return apperrors.ErrChangaNotFound
		}
		return apperrors.PersistenceError(err)
	}

	if !auth.Authorize(caller, auth.ActionDeleteChanga, changa) {
		return apperrors.ErrNotChangaOwner
	}

	if err := s.changaRepo.Delete(changaID); err != nil {
		if errors.Is(err, repositories.ErrChangaNotFound) {
			return apperrors.ErrChangaNotFound
		}
		return apperrors.PersistenceError(err)
	}

	logger.CtxInfo(ctx, "changa deleted", "changa_id", changaID, "by", caller.UserID)
	return nil
}
