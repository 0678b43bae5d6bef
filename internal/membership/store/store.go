package store

import (
	"context"
	"errors"
	"time"

	"github.com/aussiebroadwan/circle/internal/membership/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")

	// ErrConflict reports a conditional write whose precondition no longer
	// holds, e.g. deciding an application that is not pending any more.
	ErrConflict = errors.New("store: conflicting state")
)

// Store is the root data access interface implemented by the drivers. Repos
// are reached through methods so that a Tx exposes the same surface bound
// to the transaction.
type Store interface {
	Applications() Applications
	Invites() Invites
	Users() Users
	Referrals() Referrals

	ApplyMigrations() error

	// Tx starts a read/write transaction. The caller MUST Commit or Rollback.
	Tx(ctx context.Context) (Tx, error)

	// WithTx runs fn in a transaction, committing if fn returns nil and
	// rolling back otherwise.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	Close() error
	Ping(ctx context.Context) error
}

// Tx is a transactional Store. Nested transactions are not supported.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Applications interface {
	CreateApplication(ctx context.Context, a domain.Application) error

	GetApplicationByID(ctx context.Context, id string) (domain.Application, error)

	// ListApplications returns every application, newest first.
	ListApplications(ctx context.Context) ([]domain.Application, error)

	// UpdateApplicationStatus moves an application from one status to another.
	// Returns ErrNotFound for an unknown id and ErrConflict when the current
	// status is not from.
	UpdateApplicationStatus(ctx context.Context, id string, from, to domain.ApplicationStatus, at time.Time) error
}

type Invites interface {
	// CreateInvite returns ErrAlreadyExists if the token or application
	// already has an invite.
	CreateInvite(ctx context.Context, inv domain.Invite) error

	GetInviteByTokenHash(ctx context.Context, hash string) (domain.Invite, error)

	// MarkInviteUsed flips an unused invite to used. Returns ErrConflict if
	// the invite was already used.
	MarkInviteUsed(ctx context.Context, id string, at time.Time) error
}

type Users interface {
	// CreateUser returns ErrAlreadyExists if the application already produced
	// a user.
	CreateUser(ctx context.Context, u domain.User) error

	GetUserByID(ctx context.Context, id string) (domain.User, error)

	// ListUsers returns every member ordered by name.
	ListUsers(ctx context.Context) ([]domain.User, error)
}

type Referrals interface {
	CreateReferral(ctx context.Context, r domain.Referral) error

	GetReferralByID(ctx context.Context, id string) (domain.Referral, error)

	// ListSentReferrals returns referrals sent by userID, newest first, with
	// ReceivedByName populated.
	ListSentReferrals(ctx context.Context, userID string) ([]domain.Referral, error)

	// ListReceivedReferrals returns referrals received by userID, newest
	// first, with SentByName populated.
	ListReceivedReferrals(ctx context.Context, userID string) ([]domain.Referral, error)

	UpdateReferralStatus(ctx context.Context, id string, status domain.ReferralStatus, at time.Time) error
}
