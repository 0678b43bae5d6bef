package service

import (
	"context"
	"errors"
	"log/slog"
	"net/url"
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
	ErrInvalidApplication        = errors.New("name, email, company and reason are required")
	ErrInvalidAction             = errors.New("action must be APPROVE or REJECT")
	ErrApplicationNotFound       = errors.New("application not found")
	ErrApplicationAlreadyDecided = errors.New("application has already been decided")
)

type NewApplication struct {
	Name    string
	Email   string
	Company string
	Reason  string
}

// Decision is the outcome of an administrator decision. Invite and Token
// are only set on approval; Token is the raw invite token, which is never
// stored.
type Decision struct {
	Application domain.Application
	Invite      *domain.Invite
	Token       string
}

type ApplicationService struct {
	Store    store.Store
	Notifier Notifier
	Metrics  *metricsx.Metrics

	// PublicBaseURL prefixes registration links, e.g. "http://localhost:8080".
	PublicBaseURL string

	// InviteTTLDays is the invite validity in calendar days.
	InviteTTLDays int

	Now func() time.Time
}

// SubmitApplication records a new pending application.
func (s *ApplicationService) SubmitApplication(ctx context.Context, in NewApplication) (domain.Application, error) {
	log := slogx.FromContext(ctx)

	// 1. Validate input
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(in.Email)
	in.Company = strings.TrimSpace(in.Company)
	in.Reason = strings.TrimSpace(in.Reason)
	if in.Name == "" || in.Email == "" || in.Company == "" || in.Reason == "" {
		return domain.Application{}, ErrInvalidApplication
	}

	// 2. Persist as pending
	now := nowFrom(s.Now)
	app := domain.Application{
		ID:        idx.NewAt(now).String(),
		Name:      in.Name,
		Email:     in.Email,
		Company:   in.Company,
		Reason:    in.Reason,
		Status:    domain.ApplicationPending,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.Store.Applications().CreateApplication(ctx, app); err != nil {
		log.Error("failed to create application", slog.Any("error", err))
		return domain.Application{}, err
	}

	s.Metrics.ApplicationSubmitted()
	log.Info("application submitted", slog.String("application_id", app.ID))
	return app, nil
}

// ListApplications returns all applications, newest first.
func (s *ApplicationService) ListApplications(ctx context.Context) ([]domain.Application, error) {
	return s.Store.Applications().ListApplications(ctx)
}

// DecideApplication approves or rejects a pending application. Approval
// issues the invite in the same transaction as the status change, then
// notifies the applicant.
func (s *ApplicationService) DecideApplication(ctx context.Context, id, action string) (Decision, error) {
	log := slogx.FromContext(ctx).With(slog.String("application_id", id))

	// 1. Validate input
	act, err := domain.ParseApplicationAction(action)
	if err != nil {
		return Decision{}, ErrInvalidAction
	}

	// 2. Load the application
	app, err := s.Store.Applications().GetApplicationByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return Decision{}, ErrApplicationNotFound
		}
		log.Error("failed to load application", slog.Any("error", err))
		return Decision{}, err
	}
	if app.Status.IsFinal() {
		log.Warn("application already decided", slog.String("status", string(app.Status)))
		return Decision{}, ErrApplicationAlreadyDecided
	}

	now := nowFrom(s.Now)
	target := act.Target()

	// 3. Rejection is a single conditional write
	if act == domain.ActionReject {
		err := s.Store.Applications().UpdateApplicationStatus(ctx, app.ID, domain.ApplicationPending, target, now)
		if err != nil {
			return Decision{}, s.mapDecisionErr(ctx, err)
		}
		app.Status, app.UpdatedAt = target, now

		s.Metrics.ApplicationDecided(string(target))
		log.Info("application rejected")
		return Decision{Application: app}, nil
	}

	// 4. Approval: mint the token outside the transaction
	token, err := cryptox.GenerateHexToken(cryptox.InviteTokenBytes)
	if err != nil {
		log.Error("failed to generate invite token", slog.Any("error", err))
		return Decision{}, err
	}
	invite := domain.Invite{
		ID:            idx.NewAt(now).String(),
		TokenHash:     cryptox.FingerprintToken(token),
		ApplicationID: app.ID,
		ExpiresAt:     domain.InviteExpiry(now, s.InviteTTLDays),
		Used:          false,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	// 5. Status change and invite creation commit together
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Applications().UpdateApplicationStatus(ctx, app.ID, domain.ApplicationPending, target, now); err != nil {
			return err
		}
		return tx.Invites().CreateInvite(ctx, invite)
	})
	if err != nil {
		return Decision{}, s.mapDecisionErr(ctx, err)
	}
	app.Status, app.UpdatedAt = target, now
	s.Metrics.ApplicationDecided(string(target))

	// 6. Notify; delivery failure does not undo the approval
	if s.Notifier != nil {
		if err := s.Notifier.InviteIssued(ctx, app, s.RegistrationLink(token), invite.ExpiresAt); err != nil {
			log.Error("failed to notify applicant", slog.Any("error", err))
		}
	}

	log.Info("application approved",
		slog.String("invite_id", invite.ID),
		slog.Time("expires_at", invite.ExpiresAt),
	)
	return Decision{Application: app, Invite: &invite, Token: token}, nil
}

// RegistrationLink builds the page URL an invitee follows to register.
func (s *ApplicationService) RegistrationLink(token string) string {
	base := strings.TrimRight(s.PublicBaseURL, "/")
	return base + "/register?token=" + url.QueryEscape(token)
}

func (s *ApplicationService) mapDecisionErr(ctx context.Context, err error) error {
	switch {
	case errors.Is(err, store.ErrConflict), errors.Is(err, store.ErrAlreadyExists):
		return ErrApplicationAlreadyDecided
	case errors.Is(err, store.ErrNotFound):
		return ErrApplicationNotFound
	default:
		slogx.FromContext(ctx).Error("failed to decide application", slog.Any("error", err))
		return err
	}
}
