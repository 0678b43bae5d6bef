package sqlstore

import (
	"context"
	"time"

	"github.com/aussiebroadwan/circle/internal/membership/domain"
	"github.com/aussiebroadwan/circle/internal/membership/store"
)

type referralRow struct {
	ID             string    `db:"id"`
	Description    string    `db:"description"`
	ContactInfo    string    `db:"contact_info"`
	Status         string    `db:"status"`
	SentByID       string    `db:"sent_by_id"`
	ReceivedByID   string    `db:"received_by_id"`
	CreatedAt      time.Time `db:"created_at"`
	UpdatedAt      time.Time `db:"updated_at"`
	SentByName     string    `db:"sent_by_name"`
	ReceivedByName string    `db:"received_by_name"`
}

func (row referralRow) domain() domain.Referral {
	return domain.Referral{
		ID:             row.ID,
		Description:    row.Description,
		ContactInfo:    row.ContactInfo,
		Status:         domain.ReferralStatus(row.Status),
		SentByID:       row.SentByID,
		ReceivedByID:   row.ReceivedByID,
		CreatedAt:      row.CreatedAt,
		UpdatedAt:      row.UpdatedAt,
		SentByName:     row.SentByName,
		ReceivedByName: row.ReceivedByName,
	}
}

// Both counterparty names are joined on every read so a single row type
// serves lookups and both listings.
const referralSelect = `
SELECT r.id, r.description, r.contact_info, r.status, r.sent_by_id, r.received_by_id,
       r.created_at, r.updated_at,
       s.name AS sent_by_name, v.name AS received_by_name
FROM referrals r
JOIN users s ON s.id = r.sent_by_id
JOIN users v ON v.id = r.received_by_id`

type referralsRepo struct{ repo }

func (r *referralsRepo) CreateReferral(ctx context.Context, ref domain.Referral) error {
	_, err := r.exec(ctx,
		`INSERT INTO referrals (id, description, contact_info, status, sent_by_id, received_by_id, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		ref.ID, ref.Description, ref.ContactInfo, string(ref.Status), ref.SentByID, ref.ReceivedByID, ref.CreatedAt, ref.UpdatedAt,
	)
	return err
}

func (r *referralsRepo) GetReferralByID(ctx context.Context, id string) (domain.Referral, error) {
	var row referralRow
	if err := r.get(ctx, &row, referralSelect+` WHERE r.id = ?`, id); err != nil {
		return domain.Referral{}, mapNotFound(err)
	}
	return row.domain(), nil
}

func (r *referralsRepo) ListSentReferrals(ctx context.Context, userID string) ([]domain.Referral, error) {
	return r.list(ctx, referralSelect+` WHERE r.sent_by_id = ? ORDER BY r.created_at DESC, r.id DESC`, userID)
}

func (r *referralsRepo) ListReceivedReferrals(ctx context.Context, userID string) ([]domain.Referral, error) {
	return r.list(ctx, referralSelect+` WHERE r.received_by_id = ? ORDER BY r.created_at DESC, r.id DESC`, userID)
}

func (r *referralsRepo) list(ctx context.Context, query string, args ...any) ([]domain.Referral, error) {
	var rows []referralRow
	if err := r.selectAll(ctx, &rows, query, args...); err != nil {
		return nil, err
	}

	out := make([]domain.Referral, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.domain())
	}
	return out, nil
}

func (r *referralsRepo) UpdateReferralStatus(
	ctx context.Context,
	id string,
	status domain.ReferralStatus,
	at time.Time,
) error {
	n, err := r.exec(ctx, `UPDATE referrals SET status = ?, updated_at = ? WHERE id = ?`, string(status), at, id)
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}
