package membersdk

import (
	"context"
	"net/http"
	"net/url"
)

// GetLiveness checks if the service is alive.
func (c *Client) GetLiveness(ctx context.Context) (*HealthResponse, error) {
	resp, err := c.doJSON(ctx, http.MethodGet, "/livez", nil, nil)
	if err != nil {
		return nil, err
	}

	var health HealthResponse
	if err := decodeJSON(resp, &health, http.StatusOK); err != nil {
		return nil, err
	}
	return &health, nil
}

// GetReadiness checks if the service can reach its database.
func (c *Client) GetReadiness(ctx context.Context) (*HealthResponse, error) {
	resp, err := c.doJSON(ctx, http.MethodGet, "/readyz", nil, nil)
	if err != nil {
		return nil, err
	}

	var health HealthResponse
	if err := decodeJSON(resp, &health, http.StatusOK); err != nil {
		return nil, err
	}
	return &health, nil
}

// SubmitApplication files a new membership application.
func (c *Client) SubmitApplication(ctx context.Context, req SubmitApplicationRequest) (*Application, error) {
	resp, err := c.doJSON(ctx, http.MethodPost, "/api/applications", req, nil)
	if err != nil {
		return nil, err
	}

	var app Application
	if err := decodeJSON(resp, &app, http.StatusCreated); err != nil {
		return nil, err
	}
	return &app, nil
}

// PreviewInvite looks up an invite without consuming it.
func (c *Client) PreviewInvite(ctx context.Context, token string) (*InvitePreview, error) {
	resp, err := c.doJSON(ctx, http.MethodGet, "/api/invites/"+url.PathEscape(token), nil, nil)
	if err != nil {
		return nil, err
	}

	var preview InvitePreview
	if err := decodeJSON(resp, &preview, http.StatusOK); err != nil {
		return nil, err
	}
	return &preview, nil
}

// Register redeems an invite token and returns the new member with a
// bearer token for Member.
func (c *Client) Register(ctx context.Context, req RegisterRequest) (*RegisterResponse, error) {
	resp, err := c.doJSON(ctx, http.MethodPost, "/api/register", req, nil)
	if err != nil {
		return nil, err
	}

	var reg RegisterResponse
	if err := decodeJSON(resp, &reg, http.StatusCreated); err != nil {
		return nil, err
	}
	return &reg, nil
}
