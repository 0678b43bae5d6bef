package sqlstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aussiebroadwan/circle/internal/membership/domain"
	"github.com/aussiebroadwan/circle/internal/membership/store"
)

type applicationRow struct {
	ID        string    `db:"id"`
	Name      string    `db:"name"`
	Email     string    `db:"email"`
	Company   string    `db:"company"`
	Reason    string    `db:"reason"`
	Status    string    `db:"status"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

func (row applicationRow) domain() domain.Application {
	return domain.Application{
		ID:        row.ID,
		Name:      row.Name,
		Email:     row.Email,
		Company:   row.Company,
		Reason:    row.Reason,
		Status:    domain.ApplicationStatus(row.Status),
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
}

const applicationColumns = `id, name, email, company, reason, status, created_at, updated_at`

type applicationsRepo struct{ repo }

func (r *applicationsRepo) CreateApplication(ctx context.Context, a domain.Application) error {
	_, err := r.exec(ctx,
		`INSERT INTO applications (`+applicationColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		a.ID, a.Name, a.Email, a.Company, a.Reason, string(a.Status), a.CreatedAt, a.UpdatedAt,
	)
	return err
}

func (r *applicationsRepo) GetApplicationByID(ctx context.Context, id string) (domain.Application, error) {
	var row applicationRow
	if err := r.get(ctx, &row, `SELECT `+applicationColumns+` FROM applications WHERE id = ?`, id); err != nil {
		return domain.Application{}, mapNotFound(err)
	}
	return row.domain(), nil
}

func (r *applicationsRepo) ListApplications(ctx context.Context) ([]domain.Application, error) {
	var rows []applicationRow
	if err := r.selectAll(ctx, &rows,
		`SELECT `+applicationColumns+` FROM applications ORDER BY created_at DESC, id DESC`,
	); err != nil {
		return nil, err
	}

	out := make([]domain.Application, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.domain())
	}
	return out, nil
}

func (r *applicationsRepo) UpdateApplicationStatus(
	ctx context.Context,
	id string,
	from, to domain.ApplicationStatus,
	at time.Time,
) error {
	n, err := r.exec(ctx,
		`UPDATE applications SET status = ?, updated_at = ? WHERE id = ? AND status = ?`,
		string(to), at, id, string(from),
	)
	if err != nil {
		return err
	}
	if n == 1 {
		return nil
	}

	// Nothing changed: either the row is missing or it moved on already.
	var status string
	err = r.get(ctx, &status, `SELECT status FROM applications WHERE id = ?`, id)
	switch {
	case errors.Is(mapNotFound(err), store.ErrNotFound):
		return store.ErrNotFound
	case err != nil:
		return err
	default:
		return fmt.Errorf("%w: application %s is %s", store.ErrConflict, id, status)
	}
}
