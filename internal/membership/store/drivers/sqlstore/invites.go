package sqlstore

import (
	"context"
	"errors"
	"time"

	"github.com/aussiebroadwan/circle/internal/membership/domain"
	"github.com/aussiebroadwan/circle/internal/membership/store"
)

type inviteRow struct {
	ID            string    `db:"id"`
	TokenHash     string    `db:"token_hash"`
	ApplicationID string    `db:"application_id"`
	ExpiresAt     time.Time `db:"expires_at"`
	IsUsed        bool      `db:"is_used"`
	CreatedAt     time.Time `db:"created_at"`
	UpdatedAt     time.Time `db:"updated_at"`
}

func (row inviteRow) domain() domain.Invite {
	return domain.Invite{
		ID:            row.ID,
		TokenHash:     row.TokenHash,
		ApplicationID: row.ApplicationID,
		ExpiresAt:     row.ExpiresAt,
		Used:          row.IsUsed,
		CreatedAt:     row.CreatedAt,
		UpdatedAt:     row.UpdatedAt,
	}
}

const inviteColumns = `id, token_hash, application_id, expires_at, is_used, created_at, updated_at`

type invitesRepo struct{ repo }

func (r *invitesRepo) CreateInvite(ctx context.Context, inv domain.Invite) error {
	_, err := r.exec(ctx,
		`INSERT INTO invites (`+inviteColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		inv.ID, inv.TokenHash, inv.ApplicationID, inv.ExpiresAt, inv.Used, inv.CreatedAt, inv.UpdatedAt,
	)
	return err
}

func (r *invitesRepo) GetInviteByTokenHash(ctx context.Context, hash string) (domain.Invite, error) {
	var row inviteRow
	if err := r.get(ctx, &row, `SELECT `+inviteColumns+` FROM invites WHERE token_hash = ?`, hash); err != nil {
		return domain.Invite{}, mapNotFound(err)
	}
	return row.domain(), nil
}

func (r *invitesRepo) MarkInviteUsed(ctx context.Context, id string, at time.Time) error {
	n, err := r.exec(ctx,
		`UPDATE invites SET is_used = ?, updated_at = ? WHERE id = ? AND is_used = ?`,
		true, at, id, false,
	)
	if err != nil {
		return err
	}
	if n == 1 {
		return nil
	}

	var used bool
	err = r.get(ctx, &used, `SELECT is_used FROM invites WHERE id = ?`, id)
	switch {
	case errors.Is(mapNotFound(err), store.ErrNotFound):
		return store.ErrNotFound
	case err != nil:
		return err
	default:
		return store.ErrConflict
	}
}
