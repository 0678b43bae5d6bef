package http

import (
	"errors"
	"net/http"

	"github.com/aussiebroadwan/circle/internal/membership/service"
	"github.com/aussiebroadwan/circle/pkg/httpx"
	"github.com/aussiebroadwan/circle/pkg/slogx"
)

// serviceErrors maps service sentinels to their response status. The
// sentinel's message is the response body.
var serviceErrors = []struct {
	err    error
	status int
}{
	{service.ErrInvalidApplication, http.StatusBadRequest},
	{service.ErrInvalidAction, http.StatusBadRequest},
	{service.ErrApplicationNotFound, http.StatusNotFound},
	{service.ErrApplicationAlreadyDecided, http.StatusConflict},

	{service.ErrInvalidRegistration, http.StatusBadRequest},
	{service.ErrInviteNotFound, http.StatusNotFound},
	{service.ErrInviteAlreadyUsed, http.StatusBadRequest},
	{service.ErrInviteExpired, http.StatusBadRequest},

	{service.ErrActorRequired, http.StatusUnauthorized},
	{service.ErrInvalidReferral, http.StatusBadRequest},
	{service.ErrReceiverNotFound, http.StatusBadRequest},
	{service.ErrSelfReferral, http.StatusBadRequest},
	{service.ErrInvalidReferralStatus, http.StatusBadRequest},
	{service.ErrMissingReferralID, http.StatusBadRequest},
	{service.ErrReferralNotFound, http.StatusNotFound},
}

// writeServiceError answers with the mapped status for known errors and a
// logged, generic 500 otherwise.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	for _, m := range serviceErrors {
		if errors.Is(err, m.err) {
			httpx.WriteError(w, m.status, m.err.Error())
			return
		}
	}

	slogx.FromContext(r.Context()).Error("request failed", "err", err)
	httpx.WriteError(w, http.StatusInternalServerError, "internal server error")
}

// decodeBody decodes a JSON body, answering 400 itself on failure.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := httpx.DecodeJSON(r, dst); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid JSON body")
		return false
	}
	return true
}
