package token

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCodec(now time.Time) *Codec {
	c := NewCodec([]byte("test-secret"), 72*time.Hour, 720*time.Hour)
	c.now = func() time.Time { return now }
	return c
}

func TestIssueAndDecode(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	c := testCodec(now)

	signed, err := c.Issue("anna@example.com", 7, false)
	require.NoError(t, err)

	claims, err := c.Decode(signed)
	require.NoError(t, err)
	assert.Equal(t, "anna@example.com", claims.Subject)
	assert.Equal(t, 7, claims.UserID)
	assert.False(t, claims.RememberMe)
	assert.Equal(t, now.Unix(), claims.IssuedAt.Unix())
	assert.Equal(t, now.Add(72*time.Hour).Unix(), claims.ExpiresAt.Unix())
}

func TestRememberMeExtendsExpiry(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	c := testCodec(now)

	signed, err := c.Issue("anna@example.com", 7, true)
	require.NoError(t, err)

	claims, err := c.Decode(signed)
	require.NoError(t, err)
	assert.True(t, claims.RememberMe)
	assert.Equal(t, now.Add(720*time.Hour).Unix(), claims.ExpiresAt.Unix())
}

func TestDecodeStripsBearerPrefix(t *testing.T) {
	c := testCodec(time.Now())

	signed, err := c.Issue("anna@example.com", 7, false)
	require.NoError(t, err)

	claims, err := c.Decode("Bearer " + signed)
	require.NoError(t, err)
	assert.Equal(t, 7, claims.UserID)

	claims, err = c.Decode("  Bearer  " + signed + " ")
	require.NoError(t, err)
	assert.Equal(t, 7, claims.UserID)
}

func TestDecodeRejectsTamperedToken(t *testing.T) {
	c := testCodec(time.Now())

	signed, err := c.Issue("anna@example.com", 7, false)
	require.NoError(t, err)

	other := NewCodec([]byte("another-secret"), 72*time.Hour, 720*time.Hour)
	_, err = other.Decode(signed)
	assert.ErrorIs(t, err, ErrTokenInvalid)

	_, err = c.Decode(signed + "x")
	assert.ErrorIs(t, err, ErrTokenInvalid)

	_, err = c.Decode("not-a-token")
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestDecodeExpiredToken(t *testing.T) {
	issuedAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	c := testCodec(issuedAt)

	signed, err := c.Issue("anna@example.com", 7, false)
	require.NoError(t, err)

	c.now = func() time.Time { return issuedAt.Add(73 * time.Hour) }
	_, err = c.Decode(signed)
	assert.ErrorIs(t, err, ErrTokenExpired)
	assert.NotErrorIs(t, err, ErrTokenInvalid)
}

func TestAlive(t *testing.T) {
	issuedAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	c := testCodec(issuedAt)

	signed, err := c.Issue("anna@example.com", 7, false)
	require.NoError(t, err)

	assert.NoError(t, c.Alive(signed))

	c.now = func() time.Time { return issuedAt.Add(80 * time.Hour) }
	assert.ErrorIs(t, c.Alive(signed), ErrTokenExpired)

	assert.ErrorIs(t, c.Alive("garbage"), ErrTokenInvalid)
}
