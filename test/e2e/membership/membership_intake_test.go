//go:build e2e

package membership_test

import (
	"net/http"
	"testing"

	"github.com/aussiebroadwan/circle/pkg/membersdk"
	"github.com/stretchr/testify/require"
)

// TestIntakeFlow walks one applicant through approval and registration and
// checks the invite cannot be reused.
func TestIntakeFlow(t *testing.T) {
	svc := setupMembershipContainer(t)
	ctx := t.Context()

	app, err := svc.client.SubmitApplication(ctx, membersdk.SubmitApplicationRequest{
		Name:    "Ada Lovelace",
		Email:   "ada@example.com",
		Company: "Analytical Engines",
		Reason:  "Referrals for engine work",
	})
	require.NoError(t, err)

	admin := svc.client.Admin(adminSecret)
	apps, err := admin.ListApplications(ctx)
	require.NoError(t, err)
	require.Len(t, apps, 1)
	require.Equal(t, app.ID, apps[0].ID)

	_, err = admin.Approve(ctx, app.ID)
	require.NoError(t, err)

	_, err = admin.Reject(ctx, app.ID)
	requireStatus(t, err, http.StatusConflict)

	token := svc.inviteToken(t, app.ID)

	preview, err := svc.client.PreviewInvite(ctx, token)
	require.NoError(t, err)
	require.Equal(t, app.ID, preview.ApplicationID)
	require.Equal(t, "ada@example.com", preview.Email)

	reg, err := svc.client.Register(ctx, membersdk.RegisterRequest{Token: token, Password: memberPass})
	require.NoError(t, err)
	require.Equal(t, "Ada Lovelace", reg.Name)
	require.Equal(t, app.ID, reg.ApplicationID)
	require.True(t, reg.IsActive)

	_, err = svc.client.Register(ctx, membersdk.RegisterRequest{Token: token, Password: memberPass})
	requireStatus(t, err, http.StatusBadRequest)

	_, err = svc.client.PreviewInvite(ctx, token)
	requireStatus(t, err, http.StatusConflict)
}

// TestRejectedApplicationGetsNoInvite verifies rejection is final.
func TestRejectedApplicationGetsNoInvite(t *testing.T) {
	svc := setupMembershipContainer(t)
	ctx := t.Context()

	app, err := svc.client.SubmitApplication(ctx, membersdk.SubmitApplicationRequest{
		Name: "Bob", Email: "bob@example.com", Company: "Bob Co", Reason: "Curious",
	})
	require.NoError(t, err)

	rejected, err := svc.client.Admin(adminSecret).Reject(ctx, app.ID)
	require.NoError(t, err)
	require.Equal(t, "REJECTED", rejected.Status)

	_, err = svc.client.Admin(adminSecret).Approve(ctx, app.ID)
	requireStatus(t, err, http.StatusConflict)
}

// TestAdminSecretRequired verifies the admin API refuses a wrong secret.
func TestAdminSecretRequired(t *testing.T) {
	svc := setupMembershipContainer(t)

	_, err := svc.client.Admin("wrong").ListApplications(t.Context())
	requireStatus(t, err, http.StatusUnauthorized)
}

// TestUnknownInvite verifies an unknown token is not found.
func TestUnknownInvite(t *testing.T) {
	svc := setupMembershipContainer(t)

	_, err := svc.client.PreviewInvite(t.Context(), "deadbeef")
	requireStatus(t, err, http.StatusNotFound)

	_, err = svc.client.Register(t.Context(), membersdk.RegisterRequest{Token: "deadbeef", Password: memberPass})
	requireStatus(t, err, http.StatusNotFound)
}
