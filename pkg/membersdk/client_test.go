package membersdk_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aussiebroadwan/circle/pkg/membersdk"
	"github.com/stretchr/testify/require"
)

func TestClientSendsCredentials(t *testing.T) {
	var gotSecret, gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/admin/applications":
			gotSecret = r.Header.Get("X-Admin-Secret")
			_ = json.NewEncoder(w).Encode([]membersdk.Application{{ID: "a1", Status: "PENDING"}})
		case "/api/referrals":
			gotAuth = r.Header.Get("Authorization")
			_ = json.NewEncoder(w).Encode(membersdk.ReferralLists{})
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	client := membersdk.NewClient(srv.URL + "/")
	ctx := context.Background()

	apps, err := client.Admin("s3cret").ListApplications(ctx)
	require.NoError(t, err)
	require.Len(t, apps, 1)
	require.Equal(t, "s3cret", gotSecret)

	_, err = client.Member("tok").ListReferrals(ctx)
	require.NoError(t, err)
	require.Equal(t, "Bearer tok", gotAuth)
}

func TestClientErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/register" {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"error":"invite already used"}`))
			return
		}
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("upstream down"))
	}))
	defer srv.Close()

	client := membersdk.NewClient(srv.URL)

	_, err := client.Register(context.Background(), membersdk.RegisterRequest{Token: "t", Password: "p"})
	require.Error(t, err)
	require.True(t, membersdk.IsStatus(err, http.StatusBadRequest))
	require.Contains(t, err.Error(), "invite already used")

	_, err = client.GetLiveness(context.Background())
	require.True(t, membersdk.IsStatus(err, http.StatusBadGateway))
	require.Contains(t, err.Error(), "Bad Gateway")
}
