package sqlstore

import (
	"context"
	"time"

	"github.com/aussiebroadwan/circle/internal/membership/domain"
)

type userRow struct {
	ID            string    `db:"id"`
	Name          string    `db:"name"`
	Email         string    `db:"email"`
	Company       string    `db:"company"`
	IsActive      bool      `db:"is_active"`
	ApplicationID string    `db:"application_id"`
	PasswordHash  string    `db:"password_hash"`
	CreatedAt     time.Time `db:"created_at"`
	UpdatedAt     time.Time `db:"updated_at"`
}

func (row userRow) domain() domain.User {
	return domain.User{
		ID:            row.ID,
		Name:          row.Name,
		Email:         row.Email,
		Company:       row.Company,
		IsActive:      row.IsActive,
		ApplicationID: row.ApplicationID,
		PasswordHash:  row.PasswordHash,
		CreatedAt:     row.CreatedAt,
		UpdatedAt:     row.UpdatedAt,
	}
}

const userColumns = `id, name, email, company, is_active, application_id, password_hash, created_at, updated_at`

type usersRepo struct{ repo }

func (r *usersRepo) CreateUser(ctx context.Context, u domain.User) error {
	_, err := r.exec(ctx,
		`INSERT INTO users (`+userColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		u.ID, u.Name, u.Email, u.Company, u.IsActive, u.ApplicationID, u.PasswordHash, u.CreatedAt, u.UpdatedAt,
	)
	return err
}

func (r *usersRepo) GetUserByID(ctx context.Context, id string) (domain.User, error) {
	var row userRow
	if err := r.get(ctx, &row, `SELECT `+userColumns+` FROM users WHERE id = ?`, id); err != nil {
		return domain.User{}, mapNotFound(err)
	}
	return row.domain(), nil
}

func (r *usersRepo) ListUsers(ctx context.Context) ([]domain.User, error) {
	var rows []userRow
	if err := r.selectAll(ctx, &rows, `SELECT `+userColumns+` FROM users ORDER BY name ASC, id ASC`); err != nil {
		return nil, err
	}

	out := make([]domain.User, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.domain())
	}
	return out, nil
}
