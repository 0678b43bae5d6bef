package domain

import (
	"errors"
	"strings"
	"time"
)

type ReferralStatus string

const (
	ReferralSent        ReferralStatus = "SENT"
	ReferralNegotiating ReferralStatus = "NEGOTIATING"
	ReferralClosed      ReferralStatus = "CLOSED"
	ReferralRejected    ReferralStatus = "REJECTED"
)

// ReferralStatuses lists every accepted status in lifecycle order.
var ReferralStatuses = []ReferralStatus{
	ReferralSent,
	ReferralNegotiating,
	ReferralClosed,
	ReferralRejected,
}

var ErrUnknownReferralStatus = errors.New("domain: unknown referral status")

// ParseReferralStatus validates s against the referral status enumeration.
// Matching is exact: the wire format uses upper-case values only.
func ParseReferralStatus(s string) (ReferralStatus, error) {
	s = strings.TrimSpace(s)
	for _, status := range ReferralStatuses {
		if string(status) == s {
			return status, nil
		}
	}
	return "", ErrUnknownReferralStatus
}

type Referral struct {
	ID           string
	Description  string
	ContactInfo  string
	Status       ReferralStatus
	SentByID     string
	ReceivedByID string
	CreatedAt    time.Time
	UpdatedAt    time.Time

	// Display names joined from users on read.
	SentByName     string
	ReceivedByName string
}
