package v1

import (
	"context"
	"errors"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/edziennik/school-backend/internal/core/domain"
	"github.com/edziennik/school-backend/internal/security"
	"github.com/edziennik/school-backend/internal/token"
	"github.com/edziennik/school-backend/middleware"
)

// AuthService implements login, logout and registration. It depends on the
// user repository interface and MUST NOT access the database or SQL
// directly.
type AuthService struct {
	users  domain.UserRepository
	hasher *security.PasswordHasher
	codec  *token.Codec

	// dummyHash is verified against when the email is unknown, so a miss
	// costs the same as a wrong password.
	dummyHash []byte
}

// fallbackDummyHash is a well-formed bcrypt hash used when the hasher cannot
// produce one at construction time, so the unknown-email branch always burns
// a full bcrypt comparison.
var fallbackDummyHash = []byte("$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy")

// NewAuthService creates a new AuthService with the given dependencies.
func NewAuthService(users domain.UserRepository, hasher *security.PasswordHasher, codec *token.Codec) *AuthService {
	dummy, err := hasher.Hash("edziennik-dummy-credential")
	if err != nil {
		dummy = fallbackDummyHash
	}
	return &AuthService{
		users:     users,
		hasher:    hasher,
		codec:     codec,
		dummyHash: dummy,
	}
}

func summarize(row *domain.UserRow) domain.UserSummary {
	roles := row.Roles
	if roles == nil {
		roles = []string{}
	}
	return domain.UserSummary{
		ID:        row.ID,
		Email:     row.Email,
		FirstName: row.FirstName,
		LastName:  row.LastName,
		Roles:     roles,
	}
}

// Login verifies the credentials and issues a session token. An unknown
// email and a wrong password fail identically with ErrInvalidCredentials;
// storage failures surface as ErrInternal with no detail attached.
func (s *AuthService) Login(ctx context.Context, req domain.LoginRequest, rememberMe bool) (*domain.AuthResponse, error) {
	ctx, span := middleware.StartSpan(ctx, "auth.login", trace.WithAttributes(
		attribute.String("layer", "logic"),
	))
	defer span.End()

	row, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("lookup user: %v: %w", err, ErrInternal)
	}

	if row == nil {
		s.hasher.Verify(req.Password, s.dummyHash)
		span.SetAttributes(attribute.Bool("auth.success", false))
		span.AddEvent("authentication.failed")
		return nil, fmt.Errorf("authenticate user: %w", ErrInvalidCredentials)
	}
	if !s.hasher.Verify(req.Password, row.PasswordHash) {
		span.SetAttributes(attribute.Bool("auth.success", false))
		span.AddEvent("authentication.failed")
		return nil, fmt.Errorf("authenticate user: %w", ErrInvalidCredentials)
	}

	accessToken, err := s.codec.Issue(row.Email, row.ID, rememberMe)
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("issue token: %v: %w", err, ErrInternal)
	}

	user := summarize(row)
	span.SetAttributes(
		attribute.Int("user.id", user.ID),
		attribute.Bool("auth.success", true),
	)
	span.AddEvent("user.authenticated")

	return &domain.AuthResponse{
		AccessToken:  accessToken,
		TokenType:    "bearer",
		Roles:        user.Roles,
		User:         user,
		CookieMaxAge: int(s.codec.TTL(rememberMe).Seconds()),
	}, nil
}

// Logout acknowledges the logout. Tokens are self-contained, so nothing is
// invalidated here; the handler clears the session cookie and the token
// stays valid until its natural expiry.
func (s *AuthService) Logout() *domain.LogoutResponse {
	return &domain.LogoutResponse{Message: "Logged out"}
}

// Register creates an account and immediately logs it in, returning a fully
// authenticated session. The email pre-check is a fast path; the unique
// constraint on users.email is the authoritative guard, and a constraint
// violation from a concurrent duplicate maps to the same ErrUserExists.
func (s *AuthService) Register(ctx context.Context, req domain.RegisterRequest) (*domain.AuthResponse, error) {
	ctx, span := middleware.StartSpan(ctx, "auth.register", trace.WithAttributes(
		attribute.String("layer", "logic"),
		attribute.String("user.role", req.Role),
	))
	defer span.End()

	existing, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("check existing user: %v: %w", err, ErrInternal)
	}
	if existing != nil {
		span.SetAttributes(attribute.Bool("registration.success", false))
		return nil, fmt.Errorf("register user: %w", ErrUserExists)
	}

	passwordHash, err := s.hasher.Hash(req.Password)
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("hash password: %v: %w", err, ErrInternal)
	}

	if _, err := s.users.Create(ctx, req.Email, req.FirstName, req.LastName, passwordHash, req.Role); err != nil {
		if errors.Is(err, domain.ErrDuplicateEmail) {
			span.SetAttributes(attribute.Bool("registration.success", false))
			return nil, fmt.Errorf("register user: %w", ErrUserExists)
		}
		span.RecordError(err)
		return nil, fmt.Errorf("insert user: %v: %w", err, ErrInternal)
	}

	span.SetAttributes(attribute.Bool("registration.success", true))
	span.AddEvent("user.registered")

	return s.Login(ctx, domain.LoginRequest{Email: req.Email, Password: req.Password}, false)
}
