package v1

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/edziennik/school-backend/internal/core/domain"
	"github.com/edziennik/school-backend/internal/token"
	"github.com/edziennik/school-backend/middleware"
)

// SessionIdentity is the validated identity behind a bearer token. Name and
// two-factor fields come from the live account record, not from the claims:
// the token is treated as a capability reference, so profile changes
// propagate without reissuing tokens.
type SessionIdentity struct {
	UserID       int
	Email        string
	FirstName    string
	LastName     string
	TwoFAEnabled bool
	IssuedAt     time.Time
	ExpiresAt    time.Time
	RememberMe   bool
}

// SessionResolver turns an Authorization header into an authenticated user.
// Every protected route goes through it. It holds no mutable state.
type SessionResolver struct {
	codec *token.Codec
	users domain.UserRepository
}

// NewSessionResolver creates a new SessionResolver.
func NewSessionResolver(codec *token.Codec, users domain.UserRepository) *SessionResolver {
	return &SessionResolver{codec: codec, users: users}
}

// Decode validates the raw token and re-fetches the account it references.
// Failures come back as wrapped token errors or ErrUnauthorized; expected
// failure modes never panic or escape as anything else.
func (r *SessionResolver) Decode(ctx context.Context, rawToken string) (*SessionIdentity, error) {
	claims, err := r.codec.Decode(rawToken)
	if err != nil {
		return nil, fmt.Errorf("decode session token: %w", err)
	}

	if claims.UserID == 0 || claims.Subject == "" {
		return nil, fmt.Errorf("token missing identity claims: %w", ErrUnauthorized)
	}

	row, err := r.users.GetByID(ctx, claims.UserID)
	if err != nil {
		return nil, fmt.Errorf("fetch user %d: %v: %w", claims.UserID, err, ErrInternal)
	}
	if row == nil {
		return nil, fmt.Errorf("user %d no longer exists: %w", claims.UserID, ErrUnauthorized)
	}

	identity := &SessionIdentity{
		UserID:       row.ID,
		Email:        claims.Subject,
		FirstName:    row.FirstName,
		LastName:     row.LastName,
		TwoFAEnabled: row.TwoFAEnabled,
		RememberMe:   claims.RememberMe,
	}
	if claims.IssuedAt != nil {
		identity.IssuedAt = claims.IssuedAt.Time
	}
	if claims.ExpiresAt != nil {
		identity.ExpiresAt = claims.ExpiresAt.Time
	}
	return identity, nil
}

// Resolve authenticates an Authorization header value and returns the user
// id. Any failure (absent header, expired or malformed token, vanished
// account) collapses to ErrUnauthorized; no detail beyond that reaches the
// caller.
func (r *SessionResolver) Resolve(ctx context.Context, authorization string) (int, error) {
	ctx, span := middleware.StartSpan(ctx, "auth.resolve_session", trace.WithAttributes(
		attribute.String("layer", "logic"),
	))
	defer span.End()

	if authorization == "" {
		span.SetAttributes(attribute.Bool("session.valid", false))
		return 0, fmt.Errorf("missing authorization header: %w", ErrUnauthorized)
	}

	identity, err := r.Decode(ctx, authorization)
	if err != nil {
		span.SetAttributes(attribute.Bool("session.valid", false))
		return 0, fmt.Errorf("resolve session: %v: %w", err, ErrUnauthorized)
	}

	span.SetAttributes(
		attribute.Bool("session.valid", true),
		attribute.Int("user.id", identity.UserID),
	)
	return identity.UserID, nil
}
