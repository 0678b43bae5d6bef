package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/aussiebroadwan/circle/internal/membership/domain"
	"github.com/aussiebroadwan/circle/internal/membership/store"
	"github.com/aussiebroadwan/circle/pkg/cryptox"
	"github.com/aussiebroadwan/circle/pkg/idx"
	"github.com/aussiebroadwan/circle/pkg/metricsx"
	"github.com/aussiebroadwan/circle/pkg/slogx"
)

var (
	ErrInvalidRegistration = errors.New("token and password are required")
	ErrInviteNotFound      = errors.New("invite not found")
	ErrInviteAlreadyUsed   = errors.New("invite already used")
	ErrInviteExpired       = errors.New("invite expired")
)

// InvitePreview is what the register page shows before the invitee commits.
type InvitePreview struct {
	Invite      domain.Invite
	Application domain.Application
}

type InviteService struct {
	Store   store.Store
	Metrics *metricsx.Metrics
	Now     func() time.Time
}

// PreviewInvite validates token exactly as RedeemInvite would, without
// writing anything.
func (s *InviteService) PreviewInvite(ctx context.Context, token string) (InvitePreview, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return InvitePreview{}, ErrInviteNotFound
	}

	inv, err := s.usableInvite(ctx, token, nowFrom(s.Now))
	if err != nil {
		return InvitePreview{}, err
	}

	app, err := s.Store.Applications().GetApplicationByID(ctx, inv.ApplicationID)
	if err != nil {
		return InvitePreview{}, err
	}
	return InvitePreview{Invite: inv, Application: app}, nil
}

// RedeemInvite turns a valid invite into a member. The user insert and the
// invite flip commit together; a concurrent redemption of the same token
// loses with ErrInviteAlreadyUsed.
func (s *InviteService) RedeemInvite(ctx context.Context, token, password string) (domain.User, error) {
	log := slogx.FromContext(ctx)

	// 1. Validate input
	token = strings.TrimSpace(token)
	if token == "" || password == "" {
		return domain.User{}, ErrInvalidRegistration
	}

	// 2. Not found, then used, then expired
	now := nowFrom(s.Now)
	inv, err := s.usableInvite(ctx, token, now)
	if err != nil {
		s.Metrics.InviteRedeemed(redeemResult(err))
		return domain.User{}, err
	}

	// 3. Copy identity from the application
	app, err := s.Store.Applications().GetApplicationByID(ctx, inv.ApplicationID)
	if err != nil {
		log.Error("invite references missing application",
			slog.String("invite_id", inv.ID),
			slog.Any("error", err),
		)
		return domain.User{}, err
	}

	hash, err := cryptox.HashPassword(password)
	if err != nil {
		log.Error("failed to hash password", slog.Any("error", err))
		return domain.User{}, err
	}

	user := domain.User{
		ID:            idx.NewAt(now).String(),
		Name:          app.Name,
		Email:         app.Email,
		Company:       app.Company,
		IsActive:      true,
		ApplicationID: app.ID,
		PasswordHash:  hash,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	// 4. Create the user and consume the invite atomically
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Users().CreateUser(ctx, user); err != nil {
			return err
		}
		return tx.Invites().MarkInviteUsed(ctx, inv.ID, now)
	})
	switch {
	case err == nil:
	case errors.Is(err, store.ErrConflict), errors.Is(err, store.ErrAlreadyExists):
		s.Metrics.InviteRedeemed(redeemResult(ErrInviteAlreadyUsed))
		log.Warn("invite redeemed concurrently", slog.String("invite_id", inv.ID))
		return domain.User{}, ErrInviteAlreadyUsed
	default:
		log.Error("failed to redeem invite",
			slog.String("invite_id", inv.ID),
			slog.Any("error", err),
		)
		return domain.User{}, err
	}

	s.Metrics.InviteRedeemed(redeemResult(nil))
	log.Info("invite redeemed",
		slog.String("invite_id", inv.ID),
		slog.String("user_id", user.ID),
	)
	return user, nil
}

func (s *InviteService) usableInvite(ctx context.Context, token string, now time.Time) (domain.Invite, error) {
	inv, err := s.Store.Invites().GetInviteByTokenHash(ctx, cryptox.FingerprintToken(token))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Invite{}, ErrInviteNotFound
		}
		slogx.FromContext(ctx).Error("failed to load invite", slog.Any("error", err))
		return domain.Invite{}, err
	}
	if inv.Used {
		return domain.Invite{}, ErrInviteAlreadyUsed
	}
	if inv.IsExpired(now) {
		return domain.Invite{}, ErrInviteExpired
	}
	return inv, nil
}

func redeemResult(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, ErrInviteNotFound):
		return "not_found"
	case errors.Is(err, ErrInviteAlreadyUsed):
		return "used"
	case errors.Is(err, ErrInviteExpired):
		return "expired"
	default:
		return "error"
	}
}
