package apperrors

import (
	"net/http"
)

// Predeclared errors for the account and changa domains, plus factories for
// wrapping repository failures.

// ErrNotFound converts a repository "no rows" error into a 404.
func ErrNotFound(err error) *AppError {
	return Wrap(err, CodeNotFound, "resource", "Resource not found", http.StatusNotFound)
}

// ErrAlreadyExists converts a repository duplicate error into a 409.
func ErrAlreadyExists(err error) *AppError {
	return Wrap(err, CodeAlreadyExists, "resource", "Resource already exists", http.StatusConflict)
}

// PersistenceError wraps a store rejection that is not a duplicate or a
// missing row.
func PersistenceError(err error) *AppError {
	return Wrap(err, CodeDatabaseError, "storage", "Storage operation failed", http.StatusInternalServerError)
}

// --- Auth ---

// ErrInvalidCredentials is returned for both "no such account" and "wrong
// password"; the two cases must be indistinguishable to the caller.
var ErrInvalidCredentials = New(
	CodeInvalidCredentials,
	"auth",
	"Invalid email or password",
	http.StatusUnauthorized,
)

// ErrMissingCredentials - no usable Authorization header on a protected route.
var ErrMissingCredentials = New(
	CodeUnauthorized,
	"auth",
	"Authorization header missing or invalid",
	http.StatusUnauthorized,
)

// ErrSessionInvalid - the bearer token failed signature or shape checks.
var ErrSessionInvalid = New(
	CodeInvalidToken,
	"auth",
	"Invalid token",
	http.StatusUnauthorized,
)

// ErrSessionExpired - the bearer token is past its expiry.
var ErrSessionExpired = New(
	CodeTokenExpired,
	"auth",
	"Token has expired",
	http.StatusUnauthorized,
)

// ErrInsufficientPermissions - authenticated but not allowed.
var ErrInsufficientPermissions = New(
	CodeForbidden,
	"auth",
	"Insufficient permissions",
	http.StatusForbidden,
)

// --- Registration ---

// ErrWeakPassword - password below the minimum length.
var ErrWeakPassword = New(
	CodeValidationFailed,
	"validation",
	"Password is too weak. Minimum 8 characters required.",
	http.StatusBadRequest,
)

// ErrInvalidUserRole - registration with a role outside worker/employer.
var ErrInvalidUserRole = New(
	CodeInvalidOperation,
	"registration",
	"Invalid user role for registration",
	http.StatusBadRequest,
)

// ErrVerificationInvalid - the emailed verification link carries a token
// that fails signature or shape checks. Surfaced as 400: the caller is a
// link click, not an API client presenting credentials.
var ErrVerificationInvalid = New(
	CodeInvalidToken,
	"registration",
	"Verification link is invalid",
	http.StatusBadRequest,
)

// ErrVerificationExpired - the verification link outlived its 30 minutes.
var ErrVerificationExpired = New(
	CodeTokenExpired,
	"registration",
	"Verification link has expired. Please register again.",
	http.StatusBadRequest,
)

// ErrEmailAlreadyExists - an account with this email already exists.
var ErrEmailAlreadyExists = New(
	CodeAlreadyExists,
	"registration",
	"Email already in use",
	http.StatusConflict,
)

// --- Changas ---

// ErrChangaNotFound - the changa id does not resolve.
var ErrChangaNotFound = New(
	CodeNotFound,
	"changa",
	"Changa not found",
	http.StatusNotFound,
)

// ErrNotChangaOwner - the caller matches neither ownership column and is
// not an admin.
var ErrNotChangaOwner = New(
	CodeForbidden,
	"changa",
	"Not authorized to modify this changa",
	http.StatusForbidden,
)
