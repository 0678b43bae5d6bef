package web_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/aussiebroadwan/circle/internal/membership/service"
	"github.com/aussiebroadwan/circle/internal/membership/store/drivers/sqlite"
	"github.com/aussiebroadwan/circle/internal/membership/web"
	"github.com/aussiebroadwan/circle/pkg/cryptox"
	"github.com/stretchr/testify/require"
)

const adminSecret = "page-secret"

func TestMain(m *testing.M) {
	dir, err := os.MkdirTemp("", "web-*")
	if err != nil {
		panic(err)
	}
	cryptox.SetPepperPath(filepath.Join(dir, "pepper"))

	code := m.Run()
	_ = os.RemoveAll(dir)
	os.Exit(code)
}

func newPages(t *testing.T) (*web.Pages, *service.ApplicationService, *service.InviteService) {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	require.NoError(t, st.ApplyMigrations())
	t.Cleanup(func() { _ = st.Close() })

	apps := &service.ApplicationService{Store: st}
	invites := &service.InviteService{Store: st}
	p, err := web.New(apps, invites, adminSecret)
	require.NoError(t, err)
	return p, apps, invites
}

func get(h http.HandlerFunc, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestStaticPages(t *testing.T) {
	p, _, _ := newPages(t)

	for _, h := range []http.HandlerFunc{p.Home, p.Apply, p.Referrals} {
		rec := get(h, "/")
		require.Equal(t, http.StatusOK, rec.Code)
		require.Contains(t, rec.Header().Get("Content-Type"), "text/html")
		require.Contains(t, rec.Body.String(), web.MemberTokenKey)
	}

	rec := httptest.NewRecorder()
	p.Static().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/static/app.js", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "/api/register")
	require.Contains(t, rec.Body.String(), "m.id === self", "the caller is left out of the receiver list")
}

func TestAdminApplicationsPage(t *testing.T) {
	p, apps, _ := newPages(t)

	_, err := apps.SubmitApplication(context.Background(), service.NewApplication{
		Name: "Ada <script>", Email: "ada@example.com", Company: "Engines", Reason: "networking",
	})
	require.NoError(t, err)

	t.Run("wrong secret redirects home", func(t *testing.T) {
		for _, target := range []string{"/admin/applications", "/admin/applications?secret=nope"} {
			rec := get(p.AdminApplications, target)
			require.Equal(t, http.StatusFound, rec.Code)
			require.Equal(t, "/", rec.Header().Get("Location"))
		}
	})

	t.Run("lists applications escaped", func(t *testing.T) {
		rec := get(p.AdminApplications, "/admin/applications?secret="+adminSecret)
		require.Equal(t, http.StatusOK, rec.Code)
		body := rec.Body.String()
		require.Contains(t, body, "Ada &lt;script&gt;")
		require.Contains(t, body, `data-action="APPROVE"`)
	})

	t.Run("unset secret always redirects", func(t *testing.T) {
		p.AdminSecret = ""
		rec := get(p.AdminApplications, "/admin/applications?secret=")
		require.Equal(t, http.StatusFound, rec.Code)
	})
}

func TestRegisterPage(t *testing.T) {
	ctx := context.Background()
	p, apps, invites := newPages(t)

	app, err := apps.SubmitApplication(ctx, service.NewApplication{
		Name: "Ana", Email: "ana@x.com", Company: "Acme", Reason: "test",
	})
	require.NoError(t, err)
	dec, err := apps.DecideApplication(ctx, app.ID, "APPROVE")
	require.NoError(t, err)

	rec := get(p.Register, "/register?token="+dec.Token)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "Registering as <strong>Ana</strong>")
	require.Contains(t, rec.Body.String(), `id="register-form"`)

	rec = get(p.Register, "/register?token=bogus")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "not valid")

	_, err = invites.RedeemInvite(ctx, dec.Token, "pw")
	require.NoError(t, err)

	rec = get(p.Register, "/register?token="+dec.Token)
	require.Contains(t, rec.Body.String(), "already been used")
	require.NotContains(t, rec.Body.String(), `id="register-form"`)
}
