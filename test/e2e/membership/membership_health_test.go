//go:build e2e

package membership_test

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestProbes verifies liveness and readiness on a fresh container.
func TestProbes(t *testing.T) {
	svc := setupMembershipContainer(t)

	live, err := svc.client.GetLiveness(t.Context())
	require.NoError(t, err)
	require.Equal(t, "ok", live.Status)
	require.NotEmpty(t, live.Version)

	ready, err := svc.client.GetReadiness(t.Context())
	require.NoError(t, err)
	require.Equal(t, "ok", ready.Status)
	require.NotNil(t, ready.Checks)
	require.Equal(t, "ok", ready.Checks.Database)
}
