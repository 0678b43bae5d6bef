package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/aussiebroadwan/circle/internal/membership/domain"
	"github.com/aussiebroadwan/circle/pkg/slogx"
)

// Notifier tells an approved applicant where to register.
type Notifier interface {
	InviteIssued(ctx context.Context, app domain.Application, link string, expiresAt time.Time) error
}

// LogNotifier stands in for email delivery by logging the registration link.
type LogNotifier struct{}

func (LogNotifier) InviteIssued(ctx context.Context, app domain.Application, link string, expiresAt time.Time) error {
	slogx.FromContext(ctx).Info("invite issued",
		slog.String("application_id", app.ID),
		slog.String("to", app.Email),
		slog.String("link", link),
		slog.Time("expires_at", expiresAt),
	)
	return nil
}
