package v1

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edziennik/school-backend/internal/core/domain"
	"github.com/edziennik/school-backend/internal/token"
)

func testResolver(repo *fakeUserRepo) (*SessionResolver, *token.Codec) {
	codec := token.NewCodec([]byte("test-secret"), 72*time.Hour, 720*time.Hour)
	return NewSessionResolver(codec, repo), codec
}

func TestResolveValidToken(t *testing.T) {
	repo := newFakeUserRepo()
	row := seedUser(t, repo, "anna@example.com", "s3cret", "student")
	resolver, codec := testResolver(repo)

	signed, err := codec.Issue(row.Email, row.ID, false)
	require.NoError(t, err)

	userID, err := resolver.Resolve(context.Background(), "Bearer "+signed)
	require.NoError(t, err)
	assert.Equal(t, row.ID, userID)
}

func TestResolveMissingHeader(t *testing.T) {
	resolver, _ := testResolver(newFakeUserRepo())

	_, err := resolver.Resolve(context.Background(), "")
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestResolveMalformedToken(t *testing.T) {
	resolver, _ := testResolver(newFakeUserRepo())

	_, err := resolver.Resolve(context.Background(), "Bearer not-a-token")
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestResolveExpiredToken(t *testing.T) {
	repo := newFakeUserRepo()
	row := seedUser(t, repo, "anna@example.com", "s3cret", "student")
	resolver, _ := testResolver(repo)

	expired := token.NewCodec([]byte("test-secret"), -time.Hour, -time.Hour)
	signed, err := expired.Issue(row.Email, row.ID, false)
	require.NoError(t, err)

	_, err = resolver.Resolve(context.Background(), "Bearer "+signed)
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestResolveVanishedUser(t *testing.T) {
	repo := newFakeUserRepo()
	resolver, codec := testResolver(repo)

	// Token references an account that no longer exists.
	signed, err := codec.Issue("ghost@example.com", 42, false)
	require.NoError(t, err)

	_, err = resolver.Resolve(context.Background(), "Bearer "+signed)
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestDecodeFillsIdentityFromAccount(t *testing.T) {
	repo := newFakeUserRepo()
	row := seedUser(t, repo, "anna@example.com", "s3cret", "student")
	row.TwoFAEnabled = true
	resolver, codec := testResolver(repo)

	signed, err := codec.Issue(row.Email, row.ID, true)
	require.NoError(t, err)

	identity, err := resolver.Decode(context.Background(), signed)
	require.NoError(t, err)
	assert.Equal(t, row.ID, identity.UserID)
	assert.Equal(t, "anna@example.com", identity.Email)
	assert.Equal(t, "Anna", identity.FirstName)
	assert.Equal(t, "Nowak", identity.LastName)
	assert.True(t, identity.TwoFAEnabled)
	assert.True(t, identity.RememberMe)
	assert.True(t, identity.ExpiresAt.After(identity.IssuedAt))
}

func TestDecodeTokenWithoutIdentityClaims(t *testing.T) {
	repo := newFakeUserRepo()
	resolver, codec := testResolver(repo)

	// user_id zero means the token carries no usable identity.
	signed, err := codec.Issue("anna@example.com", 0, false)
	require.NoError(t, err)

	_, err = resolver.Decode(context.Background(), signed)
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestDecodeStorageError(t *testing.T) {
	repo := newFakeUserRepo()
	resolver, codec := testResolver(repo)

	signed, err := codec.Issue("anna@example.com", 7, false)
	require.NoError(t, err)

	repo.err = errors.New("connection refused")
	_, err = resolver.Decode(context.Background(), signed)
	assert.ErrorIs(t, err, ErrInternal)
}

var _ domain.UserRepository = (*fakeUserRepo)(nil)
