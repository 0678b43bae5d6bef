package membersdk

import "time"

// ============================================================================
// Common
// ============================================================================

// ErrorResponse is the body of every non-2xx API response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// HealthResponse is returned by /livez and /readyz.
type HealthResponse struct {
	Status  string        `json:"status"`
	Uptime  string        `json:"uptime"`
	Version string        `json:"version"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}

// HealthChecks reports the dependencies /readyz probes.
type HealthChecks struct {
	Database string `json:"database"`
}

// ============================================================================
// Applications
// ============================================================================

// SubmitApplicationRequest is the body of POST /api/applications.
type SubmitApplicationRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Company string `json:"company"`
	Reason  string `json:"reason"`
}

// Application is a membership application.
type Application struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Company   string    `json:"company"`
	Reason    string    `json:"reason"`
	Status    string    `json:"status"` // PENDING, APPROVED or REJECTED
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// DecideApplicationRequest is the body of PATCH /api/admin/applications/{id}.
type DecideApplicationRequest struct {
	Action string `json:"action"` // APPROVE or REJECT
}

// ============================================================================
// Invites and registration
// ============================================================================

// InvitePreview describes a usable invite without consuming it.
type InvitePreview struct {
	ApplicationID string    `json:"applicationId"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	Company       string    `json:"company"`
	ExpiresAt     time.Time `json:"expiresAt"`
}

// RegisterRequest is the body of POST /api/register.
type RegisterRequest struct {
	Token    string `json:"token"`
	Password string `json:"password"`
}

// RegisterResponse is the created member plus a bearer token for the API.
type RegisterResponse struct {
	User

	AccessToken string    `json:"accessToken"`
	TokenType   string    `json:"tokenType"`
	ExpiresAt   time.Time `json:"expiresAt"`
}

// ============================================================================
// Members
// ============================================================================

// User is the public view of a member; the password hash never leaves the
// server.
type User struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	Company       string    `json:"company"`
	IsActive      bool      `json:"isActive"`
	ApplicationID string    `json:"applicationId"`
	CreatedAt     time.Time `json:"createdAt"`
}

// ============================================================================
// Referrals
// ============================================================================

// CreateReferralRequest is the body of POST /api/referrals.
type CreateReferralRequest struct {
	ReceivedByID string `json:"receivedById"`
	Description  string `json:"description"`
	ContactInfo  string `json:"contactInfo"`
}

// UpdateReferralRequest is the body of PATCH /api/referrals.
type UpdateReferralRequest struct {
	ID     string `json:"id"`
	Status string `json:"status"` // SENT, NEGOTIATING, CLOSED or REJECTED
}

// Referral is a lead passed from one member to another. The counterparty
// name fields are filled from the members table.
type Referral struct {
	ID             string    `json:"id"`
	Description    string    `json:"description"`
	ContactInfo    string    `json:"contactInfo"`
	Status         string    `json:"status"`
	SentByID       string    `json:"sentById"`
	SentByName     string    `json:"sentByName,omitempty"`
	ReceivedByID   string    `json:"receivedById"`
	ReceivedByName string    `json:"receivedByName,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// ReferralLists is the body of GET /api/referrals.
type ReferralLists struct {
	Sent     []Referral `json:"sent"`
	Received []Referral `json:"received"`
}
