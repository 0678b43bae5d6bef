package sqlstore

import (
	"context"
	"database/sql"

	"github.com/aussiebroadwan/circle/internal/membership/store"
	"github.com/jmoiron/sqlx"
)

type txStore struct {
	tx      *sqlx.Tx
	dialect Dialect
}

func (t *txStore) Commit() error   { return t.tx.Commit() }
func (t *txStore) Rollback() error { return t.tx.Rollback() }

// Close is a no-op: the owning Store keeps the pool open.
func (t *txStore) Close() error { return nil }

func (t *txStore) Ping(context.Context) error { return nil }

// ApplyMigrations is a no-op; migrations run before any transaction.
func (t *txStore) ApplyMigrations() error { return nil }

func (t *txStore) Tx(context.Context) (store.Tx, error) { return nil, sql.ErrTxDone }

func (t *txStore) WithTx(context.Context, func(store.Tx) error) error { return sql.ErrTxDone }

func (t *txStore) Applications() store.Applications { return &applicationsRepo{repo{t.tx, t.dialect}} }
func (t *txStore) Invites() store.Invites           { return &invitesRepo{repo{t.tx, t.dialect}} }
func (t *txStore) Users() store.Users               { return &usersRepo{repo{t.tx, t.dialect}} }
func (t *txStore) Referrals() store.Referrals       { return &referralsRepo{repo{t.tx, t.dialect}} }
