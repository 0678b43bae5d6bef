//go:build e2e

package postgres_test

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/aussiebroadwan/circle/internal/membership/domain"
	"github.com/aussiebroadwan/circle/internal/membership/store"
	"github.com/aussiebroadwan/circle/internal/membership/store/drivers/postgres"
	"github.com/aussiebroadwan/circle/pkg/idx"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// dsn points at the postgres container shared by every test in the package.
var dsn string

func TestMain(m *testing.M) {
	ctx := context.Background()

	fmt.Fprintf(os.Stdout, "Starting postgres container...")
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "postgres:16-alpine",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     "circle",
				"POSTGRES_PASSWORD": "circle",
				"POSTGRES_DB":       "circle",
			},
			// The entrypoint restarts the server once after init.
			WaitingFor: wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60 * time.Second),
		},
		Started: true,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "\nFailed to start postgres: %v\n", err)
		os.Exit(1)
	}

	fail := func(err error) {
		fmt.Fprintf(os.Stderr, "\nFailed to resolve postgres address: %v\n", err)
		_ = container.Terminate(ctx)
		os.Exit(1)
	}
	host, err := container.Host(ctx)
	if err != nil {
		fail(err)
	}
	port, err := container.MappedPort(ctx, "5432")
	if err != nil {
		fail(err)
	}
	dsn = fmt.Sprintf("postgres://circle:circle@%s:%s/circle?sslmode=disable", host, port.Port())
	fmt.Fprintf(os.Stdout, " done\n")

	exitCode := m.Run()

	if err := container.Terminate(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "failed to terminate postgres: %v\n", err)
	}
	os.Exit(exitCode)
}

// newStore migrates the shared database and empties every table.
func newStore(t *testing.T) store.Store {
	t.Helper()
	ctx := context.Background()

	st, err := postgres.NewStore(ctx, dsn)
	require.NoError(t, err)
	require.NoError(t, st.ApplyMigrations())
	require.NoError(t, st.ApplyMigrations(), "re-applying is a no-op")
	t.Cleanup(func() { _ = st.Close() })

	db, err := sql.Open("postgres", dsn)
	require.NoError(t, err)
	defer db.Close()
	_, err = db.ExecContext(ctx, `TRUNCATE referrals, users, invites, applications`)
	require.NoError(t, err)

	return st
}

// at returns a fixed instant at the microsecond precision TIMESTAMPTZ keeps.
func at(offset time.Duration) time.Time {
	return time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC).Add(offset)
}

func seedApplication(t *testing.T, st store.Store, name string, created time.Time) domain.Application {
	t.Helper()
	a := domain.Application{
		ID:        idx.NewAt(created).String(),
		Name:      name,
		Email:     name + "@example.com",
		Company:   "Acme",
		Reason:    "networking",
		Status:    domain.ApplicationPending,
		CreatedAt: created,
		UpdatedAt: created,
	}
	require.NoError(t, st.Applications().CreateApplication(context.Background(), a))
	return a
}

func seedUser(t *testing.T, st store.Store, a domain.Application) domain.User {
	t.Helper()
	u := domain.User{
		ID:            idx.New().String(),
		Name:          a.Name,
		Email:         a.Email,
		Company:       a.Company,
		IsActive:      true,
		ApplicationID: a.ID,
		PasswordHash:  "hash",
		CreatedAt:     a.CreatedAt,
		UpdatedAt:     a.CreatedAt,
	}
	require.NoError(t, st.Users().CreateUser(context.Background(), u))
	return u
}

func TestPing(t *testing.T) {
	st := newStore(t)
	require.NoError(t, st.Ping(context.Background()))
}

func TestApplicationsTimestampsAndOrder(t *testing.T) {
	ctx := context.Background()
	st := newStore(t)

	older := seedApplication(t, st, "ana", at(123*time.Microsecond))
	newer := seedApplication(t, st, "bia", at(time.Hour))

	got, err := st.Applications().GetApplicationByID(ctx, older.ID)
	require.NoError(t, err)
	require.True(t, older.CreatedAt.Equal(got.CreatedAt), "got %s", got.CreatedAt)
	require.Equal(t, domain.ApplicationPending, got.Status)

	list, err := st.Applications().ListApplications(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	require.Equal(t, newer.ID, list[0].ID, "newest first")

	require.NoError(t, st.Applications().UpdateApplicationStatus(ctx, older.ID, domain.ApplicationPending, domain.ApplicationApproved, at(2*time.Hour)))
	err = st.Applications().UpdateApplicationStatus(ctx, older.ID, domain.ApplicationPending, domain.ApplicationRejected, at(2*time.Hour))
	require.ErrorIs(t, err, store.ErrConflict)

	_, err = st.Applications().GetApplicationByID(ctx, "nope")
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestUniqueViolationsMapToAlreadyExists(t *testing.T) {
	ctx := context.Background()
	st := newStore(t)
	a := seedApplication(t, st, "ana", at(0))
	b := seedApplication(t, st, "bia", at(0))

	inv := domain.Invite{
		ID:            idx.New().String(),
		TokenHash:     "hash-1",
		ApplicationID: a.ID,
		ExpiresAt:     at(7 * 24 * time.Hour),
		CreatedAt:     at(0),
		UpdatedAt:     at(0),
	}
	require.NoError(t, st.Invites().CreateInvite(ctx, inv))

	dup := inv
	dup.ID = idx.New().String()
	dup.ApplicationID = b.ID
	require.ErrorIs(t, st.Invites().CreateInvite(ctx, dup), store.ErrAlreadyExists, "token hash")

	dup.TokenHash = "hash-2"
	dup.ApplicationID = a.ID
	require.ErrorIs(t, st.Invites().CreateInvite(ctx, dup), store.ErrAlreadyExists, "application")

	u := seedUser(t, st, a)
	again := u
	again.ID = idx.New().String()
	require.ErrorIs(t, st.Users().CreateUser(ctx, again), store.ErrAlreadyExists)

	got, err := st.Invites().GetInviteByTokenHash(ctx, "hash-1")
	require.NoError(t, err)
	require.True(t, inv.ExpiresAt.Equal(got.ExpiresAt))

	require.NoError(t, st.Invites().MarkInviteUsed(ctx, inv.ID, at(time.Hour)))
	require.ErrorIs(t, st.Invites().MarkInviteUsed(ctx, inv.ID, at(time.Hour)), store.ErrConflict)
}

func TestReferralsWithNames(t *testing.T) {
	ctx := context.Background()
	st := newStore(t)

	ana := seedUser(t, st, seedApplication(t, st, "ana", at(0)))
	bia := seedUser(t, st, seedApplication(t, st, "bia", at(0)))

	r := domain.Referral{
		ID:           idx.NewAt(at(time.Minute)).String(),
		Description:  "fit-out",
		ContactInfo:  "carol@example.com",
		Status:       domain.ReferralSent,
		SentByID:     ana.ID,
		ReceivedByID: bia.ID,
		CreatedAt:    at(time.Minute),
		UpdatedAt:    at(time.Minute),
	}
	require.NoError(t, st.Referrals().CreateReferral(ctx, r))

	sent, err := st.Referrals().ListSentReferrals(ctx, ana.ID)
	require.NoError(t, err)
	require.Len(t, sent, 1)
	require.Equal(t, "bia", sent[0].ReceivedByName)

	received, err := st.Referrals().ListReceivedReferrals(ctx, bia.ID)
	require.NoError(t, err)
	require.Len(t, received, 1)
	require.Equal(t, "ana", received[0].SentByName)

	require.NoError(t, st.Referrals().UpdateReferralStatus(ctx, r.ID, domain.ReferralClosed, at(time.Hour)))
	got, err := st.Referrals().GetReferralByID(ctx, r.ID)
	require.NoError(t, err)
	require.Equal(t, domain.ReferralClosed, got.Status)
}

func TestWithTxRollsBack(t *testing.T) {
	ctx := context.Background()
	st := newStore(t)
	a := seedApplication(t, st, "ana", at(0))

	err := st.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Applications().UpdateApplicationStatus(ctx, a.ID, domain.ApplicationPending, domain.ApplicationApproved, at(time.Hour)); err != nil {
			return err
		}
		return tx.Invites().CreateInvite(ctx, domain.Invite{
			ID: idx.New().String(), TokenHash: "h", ApplicationID: "missing",
			ExpiresAt: at(0), CreatedAt: at(0), UpdatedAt: at(0),
		})
	})
	require.Error(t, err)

	got, err := st.Applications().GetApplicationByID(ctx, a.ID)
	require.NoError(t, err)
	require.Equal(t, domain.ApplicationPending, got.Status)
}
