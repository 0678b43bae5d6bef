package service

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/aussiebroadwan/circle/internal/membership/domain"
	"github.com/aussiebroadwan/circle/internal/membership/store"
	"github.com/aussiebroadwan/circle/internal/membership/store/drivers/sqlite"
	"github.com/aussiebroadwan/circle/pkg/cryptox"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	dir, err := os.MkdirTemp("", "service-*")
	if err != nil {
		panic(err)
	}
	cryptox.SetPepperPath(filepath.Join(dir, "pepper"))

	code := m.Run()
	_ = os.RemoveAll(dir)
	os.Exit(code)
}

func newTestStore(t *testing.T) store.Store {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	require.NoError(t, st.ApplyMigrations())
	t.Cleanup(func() { _ = st.Close() })
	return st
}

// clock is a settable time source.
type clock struct{ t time.Time }

func newClock() *clock { return &clock{t: time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)} }

func (c *clock) Now() time.Time { return c.t }

func (c *clock) Advance(d time.Duration) { c.t = c.t.Add(d) }

// recordingNotifier captures invite notifications.
type recordingNotifier struct {
	links []string
}

func (n *recordingNotifier) InviteIssued(_ context.Context, _ domain.Application, link string, _ time.Time) error {
	n.links = append(n.links, link)
	return nil
}

type fixture struct {
	store     store.Store
	clock     *clock
	notifier  *recordingNotifier
	apps      *ApplicationService
	invites   *InviteService
	referrals *ReferralService
	users     *UserService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	st := newTestStore(t)
	c := newClock()
	n := &recordingNotifier{}
	return &fixture{
		store:    st,
		clock:    c,
		notifier: n,
		apps: &ApplicationService{
			Store:         st,
			Notifier:      n,
			PublicBaseURL: "http://circle.test/",
			InviteTTLDays: domain.InviteValidityDays,
			Now:           c.Now,
		},
		invites:   &InviteService{Store: st, Now: c.Now},
		referrals: &ReferralService{Store: st, Now: c.Now},
		users:     &UserService{Store: st},
	}
}

// member walks an applicant through approval and registration.
func (f *fixture) member(t *testing.T, name string) domain.User {
	t.Helper()
	ctx := context.Background()

	app, err := f.apps.SubmitApplication(ctx, NewApplication{
		Name: name, Email: name + "@example.com", Company: "Acme", Reason: "networking",
	})
	require.NoError(t, err)

	dec, err := f.apps.DecideApplication(ctx, app.ID, "APPROVE")
	require.NoError(t, err)

	u, err := f.invites.RedeemInvite(ctx, dec.Token, "correct horse")
	require.NoError(t, err)
	f.clock.Advance(time.Second)
	return u
}
