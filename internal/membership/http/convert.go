package http

import (
	"github.com/aussiebroadwan/circle/internal/membership/domain"
	"github.com/aussiebroadwan/circle/internal/membership/service"
	"github.com/aussiebroadwan/circle/pkg/membersdk"
)

func toApplication(a domain.Application) membersdk.Application {
	return membersdk.Application{
		ID:        a.ID,
		Name:      a.Name,
		Email:     a.Email,
		Company:   a.Company,
		Reason:    a.Reason,
		Status:    string(a.Status),
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}

func toApplications(as []domain.Application) []membersdk.Application {
	out := make([]membersdk.Application, 0, len(as))
	for _, a := range as {
		out = append(out, toApplication(a))
	}
	return out
}

func toUser(u domain.User) membersdk.User {
	return membersdk.User{
		ID:            u.ID,
		Name:          u.Name,
		Email:         u.Email,
		Company:       u.Company,
		IsActive:      u.IsActive,
		ApplicationID: u.ApplicationID,
		CreatedAt:     u.CreatedAt,
	}
}

func toUsers(us []domain.User) []membersdk.User {
	out := make([]membersdk.User, 0, len(us))
	for _, u := range us {
		out = append(out, toUser(u))
	}
	return out
}

func toReferral(r domain.Referral) membersdk.Referral {
	return membersdk.Referral{
		ID:             r.ID,
		Description:    r.Description,
		ContactInfo:    r.ContactInfo,
		Status:         string(r.Status),
		SentByID:       r.SentByID,
		SentByName:     r.SentByName,
		ReceivedByID:   r.ReceivedByID,
		ReceivedByName: r.ReceivedByName,
		CreatedAt:      r.CreatedAt,
		UpdatedAt:      r.UpdatedAt,
	}
}

func toReferrals(rs []domain.Referral) []membersdk.Referral {
	out := make([]membersdk.Referral, 0, len(rs))
	for _, r := range rs {
		out = append(out, toReferral(r))
	}
	return out
}

func toInvitePreview(p service.InvitePreview) membersdk.InvitePreview {
	return membersdk.InvitePreview{
		ApplicationID: p.Application.ID,
		Name:          p.Application.Name,
		Email:         p.Application.Email,
		Company:       p.Application.Company,
		ExpiresAt:     p.Invite.ExpiresAt,
	}
}
