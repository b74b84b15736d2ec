package services

import (
	"context"
	"errors"
	"fmt"

	"changaya_backend/internal/auth"
	"changaya_backend/internal/logger"
	"changaya_backend/internal/models"
	"changaya_backend/internal/pkg/email"
	"changaya_backend/internal/repositories"
	"changaya_backend/internal/services/dto"
	"changaya_backend/internal/validator"
	"changaya_backend/pkg/apperrors"
)

// AuthService drives the register -> verify -> login flow.
type AuthService struct {
	userRepo     repositories.UserRepository
	sessions     *auth.SessionCodec
	verification *auth.VerificationCodec
	sender       email.Sender
	baseURL      string
	validator    *validator.Validator
}

func NewAuthService(
	userRepo repositories.UserRepository,
	sessions *auth.SessionCodec,
	verification *auth.VerificationCodec,
	sender email.Sender,
	baseURL string,
	v *validator.Validator,
) *AuthService {
	return &AuthService{
		userRepo:     userRepo,
		sessions:     sessions,
		verification: verification,
		sender:       sender,
		baseURL:      baseURL,
		validator:    v,
	}
}

// Register validates the payload, hashes the password and emails a signed
// verification link. No database row is written here; the whole pending
// registration travels inside the token.
func (s *AuthService) Register(ctx context.Context, req *dto.RegisterRequest) error {
	if err := s.validator.Validate(req); err != nil {
		var vErr *validator.ValidationError
		if errors.As(err, &vErr) {
			return apperrors.ValidationError(vErr.Errors)
		}
		return apperrors.InternalError(err)
	}

	if err := auth.ValidatePassword(req.Password); err != nil {
		return apperrors.ErrWeakPassword
	}

	role := models.UserRole(req.Role)
	if err := auth.ValidateRegistrationRole(role); err != nil {
		return apperrors.ErrInvalidUserRole
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return apperrors.InternalError(err)
	}

	pending := &auth.PendingRegistration{
		Username:     req.Username,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		NationalID:   req.NationalID,
		Email:        req.Email,
		Phone:        req.Phone,
		Role:         role,
		PasswordHash: hash,
	}

	token, err := s.verification.Encode(pending)
	if err != nil {
		return apperrors.InternalError(err)
	}

	verifyURL := fmt.Sprintf("%s/api/v1/accounts/verify?token=%s", s.baseURL, token)
	if err := s.sender.SendVerification(req.Email, verifyURL); err != nil {
		// The emailed link is the only path to an account, so a delivery
		// failure fails the whole registration.
		logger.CtxError(ctx, "failed to send verification email", "email", req.Email, "error", err)
		return apperrors.Wrap(err, apperrors.CodeExternalServiceError, "email",
			"Could not send verification email", 502)
	}

	logger.CtxInfo(ctx, "verification email sent", "email", req.Email, "role", req.Role)
	return nil
}

// Verify redeems a verification token and creates the account. This is the
// only code path that inserts into the users table besides admin seeding.
func (s *AuthService) Verify(ctx context.Context, token string) (*dto.UserResponse, error) {
	pending, err := s.verification.Decode(token)
	if err != nil {
		if errors.Is(err, auth.ErrTokenExpired) {
			return nil, apperrors.ErrVerificationExpired
		}
		return nil, apperrors.ErrVerificationInvalid
	}

	user := &models.User{
		Username:     pending.Username,
		FirstName:    pending.FirstName,
		LastName:     pending.LastName,
		NationalID:   pending.NationalID,
		Email:        pending.Email,
		Phone:        pending.Phone,
		Role:         pending.Role,
		PasswordHash: pending.PasswordHash,
	}

	if err := s.userRepo.Create(user); err != nil {
		if errors.Is(err, repositories.ErrUserAlreadyExists) {
			// Second click on the same link, or a competing registration
			// finished first.
			return nil, apperrors.ErrEmailAlreadyExists
		}
		return nil, apperrors.PersistenceError(err)
	}

	logger.CtxInfo(ctx, "account verified", "user_id", user.ID, "email", user.Email)
	resp := dto.ToUserResponse(user)
	return &resp, nil
}

// Login checks credentials and issues a session token. Unknown email and
// wrong password return the identical error.
func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	if err := s.validator.Validate(req); err != nil {
		var vErr *validator.ValidationError
		if errors.As(err, &vErr) {
			return nil, apperrors.ValidationError(vErr.Errors)
		}
		return nil, apperrors.InternalError(err)
	}

	user, err := s.userRepo.FindByEmail(req.Email)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.PersistenceError(err)
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}

	token, err := s.sessions.Encode(user.ID, user.Email, user.Role)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "login succeeded", "user_id", user.ID)
	return &dto.LoginResponse{
		Token: token,
		User:  dto.ToUserResponse(user),
	}, nil
}
