package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"changaya_backend/internal/models"
)

var (
	// ErrTokenExpired - the token was well-formed and correctly signed but
	// is past its expiry.
	ErrTokenExpired = errors.New("token expired")
	// ErrTokenInvalid - signature, audience, algorithm or payload shape
	// checks failed.
	ErrTokenInvalid = errors.New("token invalid")
)

const (
	// The two token domains carry distinct audiences on top of distinct
	// secrets, so a verification token is rejected as a session token even
	// if the secrets are ever misconfigured to the same value.
	sessionAudience = "changaya/session"
	verifyAudience  = "changaya/verify"

	// SessionTTL - lifetime of a login session. No refresh mechanism
	// exists; clients re-login after expiry.
	SessionTTL = 30 * 24 * time.Hour
	// VerificationTTL - how long a registration email link stays valid.
	VerificationTTL = 30 * time.Minute
)

// Identity is the authenticated caller as decoded from a session token.
type Identity struct {
	UserID string          `json:"user_id"`
	Email  string          `json:"email"`
	Role   models.UserRole `json:"role"`
}

// PendingRegistration is a complete registration, password hash included,
// carried inside the signed verification token. Nothing is persisted until
// the token is redeemed, which keeps the users table free of
// half-registered rows.
type PendingRegistration struct {
	Username     string          `json:"username"`
	FirstName    string          `json:"first_name"`
	LastName     string          `json:"last_name"`
	NationalID   string          `json:"national_id"`
	Email        string          `json:"email"`
	Phone        string          `json:"phone"`
	Role         models.UserRole `json:"role"`
	PasswordHash string          `json:"password_hash"`
}

type sessionClaims struct {
	UserID string          `json:"uid"`
	Email  string          `json:"email"`
	Role   models.UserRole `json:"role"`
	jwt.RegisteredClaims
}

type verificationClaims struct {
	PendingRegistration
	jwt.RegisteredClaims
}

// codec is the shared signed-expiring-payload mechanism beneath both token
// domains: HS256 with a per-domain secret, audience and TTL.
type codec struct {
	secret   []byte
	audience string
	ttl      time.Duration
}

func (c *codec) registered(now time.Time) jwt.RegisteredClaims {
	return jwt.RegisteredClaims{
		Audience:  jwt.ClaimStrings{c.audience},
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl)),
	}
}

func (c *codec) sign(claims jwt.Claims) (string, error) {
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.secret)
}

func (c *codec) parse(tokenStr string, claims jwt.Claims) error {
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return c.secret, nil
	}, jwt.WithAudience(c.audience))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return ErrTokenExpired
		}
		return ErrTokenInvalid
	}
	if !token.Valid {
		return ErrTokenInvalid
	}
	return nil
}

// SessionCodec issues and validates session tokens.
type SessionCodec struct {
	codec
}

func NewSessionCodec(secret string) *SessionCodec {
	return &SessionCodec{codec{
		secret:   []byte(secret),
		audience: sessionAudience,
		ttl:      SessionTTL,
	}}
}

func (c *SessionCodec) Encode(userID, email string, role models.UserRole) (string, error) {
	claims := &sessionClaims{
		UserID:           userID,
		Email:            email,
		Role:             role,
		RegisteredClaims: c.registered(time.Now()),
	}
	return c.sign(claims)
}

func (c *SessionCodec) Decode(tokenStr string) (*Identity, error) {
	claims := &sessionClaims{}
	if err := c.parse(tokenStr, claims); err != nil {
		return nil, err
	}
	if claims.UserID == "" {
		return nil, ErrTokenInvalid
	}
	return &Identity{
		UserID: claims.UserID,
		Email:  claims.Email,
		Role:   claims.Role,
	}, nil
}

// VerificationCodec issues and validates the registration email tokens.
type VerificationCodec struct {
	codec
}

func NewVerificationCodec(secret string) *VerificationCodec {
	return &VerificationCodec{codec{
		secret:   []byte(secret),
		audience: verifyAudience,
		ttl:      VerificationTTL,
	}}
}

func (c *VerificationCodec) Encode(reg *PendingRegistration) (string, error) {
	claims := &verificationClaims{
		PendingRegistration: *reg,
		RegisteredClaims:    c.registered(time.Now()),
	}
	return c.sign(claims)
}

func (c *VerificationCodec) Decode(tokenStr string) (*PendingRegistration, error) {
	claims := &verificationClaims{}
	if err := c.parse(tokenStr, claims); err != nil {
		return nil, err
	}
	if claims.Email == "" {
		return nil, ErrTokenInvalid
	}
	reg := claims.PendingRegistration
	return &reg, nil
}
