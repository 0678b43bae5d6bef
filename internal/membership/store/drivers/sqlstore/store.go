// Package sqlstore implements every store repository on top of sqlx. The
// sqlite and postgres drivers differ only in how they open the database,
// apply migrations and recognise constraint errors.
package sqlstore

import (
	"context"
	"database/sql"
	"errors"

	"github.com/aussiebroadwan/circle/internal/membership/store"
	"github.com/jmoiron/sqlx"
)

// Dialect captures what differs between database engines.
type Dialect struct {
	// Name is the database/sql driver name, used by sqlx to pick a bind style.
	Name string

	// IsUniqueViolation reports whether err is a unique constraint failure.
	IsUniqueViolation func(error) bool

	// Migrate applies the embedded schema to db.
	Migrate func(db *sql.DB) error
}

type Store struct {
	db      *sqlx.DB
	dialect Dialect
}

// New wraps an open database handle.
func New(db *sql.DB, d Dialect) *Store {
	return &Store{db: sqlx.NewDb(db, d.Name), dialect: d}
}

// DB exposes the underlying handle for drivers and tests.
func (s *Store) DB() *sqlx.DB { return s.db }

func (s *Store) Close() error { return s.db.Close() }

func (s *Store) Ping(ctx context.Context) error { return s.db.PingContext(ctx) }

func (s *Store) ApplyMigrations() error {
	if s.dialect.Migrate == nil {
		return errors.New("sqlstore: dialect has no migrations")
	}
	return s.dialect.Migrate(s.db.DB)
}

func (s *Store) Tx(ctx context.Context) (store.Tx, error) {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, err
	}
	return &txStore{tx: tx, dialect: s.dialect}, nil
}

func (s *Store) WithTx(ctx context.Context, fn func(tx store.Tx) error) error {
	tx, err := s.Tx(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback() // no-op after commit
	}()

	if err := fn(tx); err != nil {
		return err
	}
	return tx.Commit()
}

func (s *Store) Applications() store.Applications { return &applicationsRepo{repo{s.db, s.dialect}} }
func (s *Store) Invites() store.Invites           { return &invitesRepo{repo{s.db, s.dialect}} }
func (s *Store) Users() store.Users               { return &usersRepo{repo{s.db, s.dialect}} }
func (s *Store) Referrals() store.Referrals       { return &referralsRepo{repo{s.db, s.dialect}} }

// repo is the shared state of every repository: a query target that is
// either the pool or a transaction.
type repo struct {
	ext     sqlx.ExtContext
	dialect Dialect
}

func (r repo) get(ctx context.Context, dest any, query string, args ...any) error {
	return sqlx.GetContext(ctx, r.ext, dest, r.ext.Rebind(query), args...)
}

func (r repo) selectAll(ctx context.Context, dest any, query string, args ...any) error {
	return sqlx.SelectContext(ctx, r.ext, dest, r.ext.Rebind(query), args...)
}

// exec runs a write and returns the number of affected rows.
func (r repo) exec(ctx context.Context, query string, args ...any) (int64, error) {
	res, err := r.ext.ExecContext(ctx, r.ext.Rebind(query), args...)
	if err != nil {
		return 0, r.mapWriteErr(err)
	}
	return res.RowsAffected()
}

func (r repo) mapWriteErr(err error) error {
	if r.dialect.IsUniqueViolation != nil && r.dialect.IsUniqueViolation(err) {
		return store.ErrAlreadyExists
	}
	return err
}

func mapNotFound(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return store.ErrNotFound
	}
	return err
}
