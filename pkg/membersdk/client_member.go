package membersdk

import (
	"context"
	"net/http"
)

func (m *Member) headers() map[string]string {
	return map[string]string{"Authorization": "Bearer " + m.token}
}

// ListMembers returns the member directory ordered by name.
func (m *Member) ListMembers(ctx context.Context) ([]User, error) {
	resp, err := m.client.doJSON(ctx, http.MethodGet, "/api/members", nil, m.headers())
	if err != nil {
		return nil, err
	}

	var users []User
	if err := decodeJSON(resp, &users, http.StatusOK); err != nil {
		return nil, err
	}
	return users, nil
}

// CreateReferral sends a referral to another member.
func (m *Member) CreateReferral(ctx context.Context, req CreateReferralRequest) (*Referral, error) {
	resp, err := m.client.doJSON(ctx, http.MethodPost, "/api/referrals", req, m.headers())
	if err != nil {
		return nil, err
	}

	var ref Referral
	if err := decodeJSON(resp, &ref, http.StatusCreated); err != nil {
		return nil, err
	}
	return &ref, nil
}

// ListReferrals returns the referrals this member has sent and received.
func (m *Member) ListReferrals(ctx context.Context) (*ReferralLists, error) {
	resp, err := m.client.doJSON(ctx, http.MethodGet, "/api/referrals", nil, m.headers())
	if err != nil {
		return nil, err
	}

	var lists ReferralLists
	if err := decodeJSON(resp, &lists, http.StatusOK); err != nil {
		return nil, err
	}
	return &lists, nil
}

// UpdateReferralStatus moves a referral to status.
func (m *Member) UpdateReferralStatus(ctx context.Context, id, status string) (*Referral, error) {
	resp, err := m.client.doJSON(ctx, http.MethodPatch, "/api/referrals",
		UpdateReferralRequest{ID: id, Status: status}, m.headers())
	if err != nil {
		return nil, err
	}

	var ref Referral
	if err := decodeJSON(resp, &ref, http.StatusOK); err != nil {
		return nil, err
	}
	return &ref, nil
}
