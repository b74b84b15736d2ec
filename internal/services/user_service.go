package services

import (
	"context"
	"errors"

	"changaya_backend/internal/auth"
	"changaya_backend/internal/logger"
	"changaya_backend/internal/repositories"
	"changaya_backend/internal/services/dto"
	"changaya_backend/internal/validator"
	"changaya_backend/pkg/apperrors"
)

// UserService exposes account reads and mutations behind the authorization
// policy. Every method takes the caller's identity; handlers never apply
// policy themselves.
type UserService struct {
	userRepo  repositories.UserRepository
	validator *validator.Validator
}

func NewUserService(userRepo repositories.UserRepository, v *validator.Validator) *UserService {
	return &UserService{
		userRepo:  userRepo,
		validator: v,
	}
}

func (s *UserService) List(ctx context.Context, caller *auth.Identity, limit, offset int) (*dto.UserListResponse, error) {
	if !auth.Authorize(caller, auth.ActionListUsers, nil) {
		return nil, apperrors.ErrInsufficientPermissions
	}

	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	users, err := s.userRepo.FindAll(limit, offset)
	if err != nil {
		return nil, apperrors.PersistenceError(err)
	}

	total, err := s.userRepo.CountAll()
	if err != nil {
		return nil, apperrors.PersistenceError(err)
	}

	resp := &dto.UserListResponse{
		Users: make([]dto.UserResponse, 0, len(users)),
		Total: total,
	}
	for i := range users {
		resp.Users = append(resp.Users, dto.ToUserResponse(&users[i]))
	}
	return resp, nil
}

func (s *UserService) Get(ctx context.Context, caller *auth.Identity, userID string) (*dto.UserResponse, error) {
	if !auth.Authorize(caller, auth.ActionReadUser, userID) {
		return nil, apperrors.ErrInsufficientPermissions
	}

	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.PersistenceError(err)
	}

	resp := dto.ToUserResponse(user)
	return &resp, nil
}

func (s *UserService) Update(ctx context.Context, caller *auth.Identity, userID string, req *dto.UpdateUserRequest) (*dto.UserResponse, error) {
	if !auth.Authorize(caller, auth.ActionUpdateUser, userID) {
		return nil, apperrors.ErrInsufficientPermissions
	}

	if err := s.validator.Validate(req); err != nil {
		var vErr *validator.ValidationError
		if errors.As(err, &vErr) {
			return nil, apperrors.ValidationError(vErr.Errors)
		}
		return nil, apperrors.InternalError(err)
	}

	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.PersistenceError(err)
	}

	if req.Username != "" {
		user.Username = req.Username
	}
	if req.FirstName != "" {
		user.FirstName = req.FirstName
	}
	if req.LastName != "" {
		user.LastName = req.LastName
	}
	if req.NationalID != "" {
		user.NationalID = req.NationalID
	}
	if req.Email != "" {
		user.Email = req.Email
	}
	if req.Phone != "" {
		user.Phone = req.Phone
	}

	if err := s.userRepo.Update(user); err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.PersistenceError(err)
	}

	logger.CtxInfo(ctx, "account updated", "user_id", userID)
	resp := dto.ToUserResponse(user)
	return &resp, nil
}

func (s *UserService) Delete(ctx context.Context, caller *auth.Identity, userID string) error {
	if !auth.Authorize(caller, auth.ActionDeleteUser, userID) {
		return apperrors.ErrInsufficientPermissions
	}

	if err := s.userRepo.Delete(userID); err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.PersistenceError(err)
	}

	logger.CtxInfo(ctx, "account deleted", "user_id", userID, "deleted_by", caller.UserID)
	return nil
}
