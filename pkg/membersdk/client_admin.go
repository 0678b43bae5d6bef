package membersdk

import (
	"context"
	"net/http"
	"net/url"
)

const adminSecretHeader = "X-Admin-Secret"

// ListApplications returns every application, newest first.
func (a *Admin) ListApplications(ctx context.Context) ([]Application, error) {
	resp, err := a.client.doJSON(ctx, http.MethodGet, "/api/admin/applications", nil,
		map[string]string{adminSecretHeader: a.secret})
	if err != nil {
		return nil, err
	}

	var apps []Application
	if err := decodeJSON(resp, &apps, http.StatusOK); err != nil {
		return nil, err
	}
	return apps, nil
}

// Approve approves a pending application, which issues its invite.
func (a *Admin) Approve(ctx context.Context, id string) (*Application, error) {
	return a.decide(ctx, id, "APPROVE")
}

// Reject rejects a pending application.
func (a *Admin) Reject(ctx context.Context, id string) (*Application, error) {
	return a.decide(ctx, id, "REJECT")
}

func (a *Admin) decide(ctx context.Context, id, action string) (*Application, error) {
	resp, err := a.client.doJSON(ctx, http.MethodPatch, "/api/admin/applications/"+url.PathEscape(id),
		DecideApplicationRequest{Action: action},
		map[string]string{adminSecretHeader: a.secret})
	if err != nil {
		return nil, err
	}

	var app Application
	if err := decodeJSON(resp, &app, http.StatusOK); err != nil {
		return nil, err
	}
	return &app, nil
}
