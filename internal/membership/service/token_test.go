package service

import (
	"strings"
	"testing"
	"time"

	"github.com/aussiebroadwan/circle/internal/membership/domain"
	"github.com/aussiebroadwan/circle/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

func TestIssueMemberToken(t *testing.T) {
	hs, err := jwtx.NewHS256([]byte(strings.Repeat("k", jwtx.MinSecretLength)), jwtx.VerifyOptions{
		Issuer:   "circle",
		Audience: []string{MemberAudience},
	})
	require.NoError(t, err)

	ts := &TokenService{Signer: hs, Issuer: "circle", TTL: time.Hour}
	tok, exp, err := ts.IssueMemberToken(domain.User{ID: "01J0USER", Name: "Ada", Email: "ada@example.com"})
	require.NoError(t, err)
	require.WithinDuration(t, time.Now().Add(time.Hour), exp, 5*time.Second)

	claims, err := hs.Verify(tok)
	require.NoError(t, err)
	require.Equal(t, "01J0USER", claims.Subject)
	require.Equal(t, "Ada", claims.Name)
}
