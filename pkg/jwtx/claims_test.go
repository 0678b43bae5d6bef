package jwtx_test

import (
	"testing"
	"time"

	"github.com/aussiebroadwan/circle/pkg/jwtx"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

func TestValidateIssuer(t *testing.T) {
	c := &jwtx.Claims{RegisteredClaims: jwt.RegisteredClaims{Issuer: "circle"}}

	require.NoError(t, c.ValidateIssuer("circle"))
	require.NoError(t, c.ValidateIssuer(""))
	require.ErrorIs(t, c.ValidateIssuer("other"), jwtx.ErrIssuer)
}

func TestValidateAudience(t *testing.T) {
	c := &jwtx.Claims{RegisteredClaims: jwt.RegisteredClaims{Audience: []string{"members", "web"}}}

	require.NoError(t, c.ValidateAudience([]string{"members"}))
	require.NoError(t, c.ValidateAudience([]string{"foo", "web"}))
	require.NoError(t, c.ValidateAudience(nil))
	require.ErrorIs(t, c.ValidateAudience([]string{"admin"}), jwtx.ErrAudience)
}

func TestValidateExpiry(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("valid window", func(t *testing.T) {
		c := jwtx.NewMemberClaims("u1", "Ana", "ana@example.com", "circle", nil, time.Hour, now)
		require.NoError(t, c.ValidateExpiry(now.Add(30*time.Minute), 0))
	})

	t.Run("expired", func(t *testing.T) {
		c := jwtx.NewMemberClaims("u1", "", "", "", nil, time.Hour, now)
		require.ErrorIs(t, c.ValidateExpiry(now.Add(2*time.Hour), 0), jwtx.ErrExpired)
	})

	t.Run("leeway covers small skew", func(t *testing.T) {
		c := jwtx.NewMemberClaims("u1", "", "", "", nil, time.Hour, now)
		require.NoError(t, c.ValidateExpiry(now.Add(time.Hour+10*time.Second), 30*time.Second))
		require.ErrorIs(t, c.ValidateExpiry(now.Add(-time.Minute), 0), jwtx.ErrNotYetValid)
	})

	t.Run("zero ttl falls back to default", func(t *testing.T) {
		c := jwtx.NewMemberClaims("u1", "", "", "", nil, 0, now)
		require.Equal(t, now.Add(jwtx.DefaultMemberTokenTTL), c.ExpiresAt.Time)
	})
}
