package domain

import "time"

// InviteValidityDays is the calendar-day window an invite stays redeemable.
const InviteValidityDays = 7

type Invite struct {
	ID            string
	TokenHash     string // SHA-256 fingerprint of the opaque token
	ApplicationID string
	ExpiresAt     time.Time
	Used          bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// IsExpired reports whether the invite window closed before now.
func (i Invite) IsExpired(now time.Time) bool {
	return i.ExpiresAt.Before(now)
}

// InviteExpiry computes the expiry for an invite issued at t using
// calendar-day arithmetic.
func InviteExpiry(t time.Time, days int) time.Time {
	if days <= 0 {
		days = InviteValidityDays
	}
	return t.AddDate(0, 0, days)
}
