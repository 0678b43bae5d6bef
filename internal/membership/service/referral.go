package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/aussiebroadwan/circle/internal/membership/domain"
	"github.com/aussiebroadwan/circle/internal/membership/store"
	"github.com/aussiebroadwan/circle/pkg/idx"
	"github.com/aussiebroadwan/circle/pkg/metricsx"
	"github.com/aussiebroadwan/circle/pkg/slogx"
)

var (
	ErrInvalidReferral       = errors.New("receivedById, description and contactInfo are required")
	ErrActorRequired         = errors.New("caller identity is required")
	ErrReceiverNotFound      = errors.New("receiver not found")
	ErrSelfReferral          = errors.New("cannot refer yourself")
	ErrInvalidReferralStatus = errors.New("status must be one of SENT, NEGOTIATING, CLOSED, REJECTED")
	ErrMissingReferralID     = errors.New("id and status are required")
	ErrReferralNotFound      = errors.New("referral not found")
)

type NewReferral struct {
	ReceivedByID string
	Description  string
	ContactInfo  string
}

// ReferralLists splits an actor's referrals by direction, each newest first.
type ReferralLists struct {
	Sent     []domain.Referral
	Received []domain.Referral
}

type ReferralService struct {
	Store   store.Store
	Metrics *metricsx.Metrics
	Now     func() time.Time
}

// CreateReferral records a referral from actorID to another member.
func (s *ReferralService) CreateReferral(ctx context.Context, actorID string, in NewReferral) (domain.Referral, error) {
	log := slogx.FromContext(ctx)

	// 1. Validate input
	if actorID == "" {
		return domain.Referral{}, ErrActorRequired
	}
	in.ReceivedByID = strings.TrimSpace(in.ReceivedByID)
	in.Description = strings.TrimSpace(in.Description)
	in.ContactInfo = strings.TrimSpace(in.ContactInfo)
	if in.ReceivedByID == "" || in.Description == "" || in.ContactInfo == "" {
		return domain.Referral{}, ErrInvalidReferral
	}
	if in.ReceivedByID == actorID {
		return domain.Referral{}, ErrSelfReferral
	}

	// 2. Both parties must be members
	if _, err := s.Store.Users().GetUserByID(ctx, actorID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			log.Warn("referral from unknown member", slog.String("actor_id", actorID))
			return domain.Referral{}, ErrActorRequired
		}
		return domain.Referral{}, err
	}
	if _, err := s.Store.Users().GetUserByID(ctx, in.ReceivedByID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Referral{}, ErrReceiverNotFound
		}
		return domain.Referral{}, err
	}

	// 3. Persist as sent
	now := nowFrom(s.Now)
	ref := domain.Referral{
		ID:           idx.NewAt(now).String(),
		Description:  in.Description,
		ContactInfo:  in.ContactInfo,
		Status:       domain.ReferralSent,
		SentByID:     actorID,
		ReceivedByID: in.ReceivedByID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.Store.Referrals().CreateReferral(ctx, ref); err != nil {
		log.Error("failed to create referral", slog.Any("error", err))
		return domain.Referral{}, err
	}

	s.Metrics.ReferralCreated()
	log.Info("referral created",
		slog.String("referral_id", ref.ID),
		slog.String("sent_by", actorID),
		slog.String("received_by", in.ReceivedByID),
	)

	// Re-read to pick up both display names.
	return s.Store.Referrals().GetReferralByID(ctx, ref.ID)
}

// ListReferrals returns what actorID has sent and received.
func (s *ReferralService) ListReferrals(ctx context.Context, actorID string) (ReferralLists, error) {
	if actorID == "" {
		return ReferralLists{}, ErrActorRequired
	}

	sent, err := s.Store.Referrals().ListSentReferrals(ctx, actorID)
	if err != nil {
		return ReferralLists{}, err
	}
	received, err := s.Store.Referrals().ListReceivedReferrals(ctx, actorID)
	if err != nil {
		return ReferralLists{}, err
	}
	return ReferralLists{Sent: sent, Received: received}, nil
}

// UpdateReferralStatus sets a referral's status. Any status may follow any
// other, and the actor need not be a participant; the actor is logged.
func (s *ReferralService) UpdateReferralStatus(ctx context.Context, actorID, id, status string) (domain.Referral, error) {
	log := slogx.FromContext(ctx)

	// 1. Validate input
	id = strings.TrimSpace(id)
	status = strings.TrimSpace(status)
	if id == "" || status == "" {
		return domain.Referral{}, ErrMissingReferralID
	}
	next, err := domain.ParseReferralStatus(status)
	if err != nil {
		return domain.Referral{}, ErrInvalidReferralStatus
	}

	// 2. Unconditional write
	if err := s.Store.Referrals().UpdateReferralStatus(ctx, id, next, nowFrom(s.Now)); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Referral{}, ErrReferralNotFound
		}
		log.Error("failed to update referral", slog.Any("error", err))
		return domain.Referral{}, err
	}

	ref, err := s.Store.Referrals().GetReferralByID(ctx, id)
	if err != nil {
		return domain.Referral{}, err
	}

	s.Metrics.ReferralStatusChanged(string(next))
	log.Info("referral status updated",
		slog.String("referral_id", id),
		slog.String("status", string(next)),
		slog.String("actor_id", actorID),
		slog.Bool("actor_is_participant", actorID == ref.SentByID || actorID == ref.ReceivedByID),
	)
	return ref, nil
}
