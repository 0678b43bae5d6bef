package httpx

import (
	"crypto/subtle"
	"net/http"

	"github.com/aussiebroadwan/circle/pkg/slogx"
)

// AdminSecretHeader carries the shared administrator secret.
const AdminSecretHeader = "X-Admin-Secret"

// AdminSecret extracts the presented admin secret from the header, falling
// back to the "secret" query parameter used by the admin page.
func AdminSecret(r *http.Request) string {
	if s := r.Header.Get(AdminSecretHeader); s != "" {
		return s
	}
	return r.URL.Query().Get("secret")
}

// ValidAdminSecret compares presented with expected in constant time. An
// empty expected secret never matches.
func ValidAdminSecret(expected, presented string) bool {
	if expected == "" || presented == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(expected), []byte(presented)) == 1
}

// RequireAdminSecret rejects requests that do not present the configured
// administrator secret.
func RequireAdminSecret(expected string) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !ValidAdminSecret(expected, AdminSecret(r)) {
				slogx.FromContext(r.Context()).Warn("admin secret rejected")
				WriteError(w, http.StatusUnauthorized, "Unauthorized")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
