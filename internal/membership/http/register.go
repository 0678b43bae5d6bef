package http

import (
	"errors"
	"net/http"

	"github.com/aussiebroadwan/circle/internal/membership/service"
	"github.com/aussiebroadwan/circle/pkg/httpx"
	"github.com/aussiebroadwan/circle/pkg/membersdk"
	"github.com/aussiebroadwan/circle/pkg/slogx"
)

type RegisterHandler struct {
	InviteService *service.InviteService
	TokenService  *service.TokenService
}

// HandlePreview godoc
//
//	@Summary		Preview Invite
//	@Description	Look up an invite without consuming it.
//	@Tags			Registration
//	@Produce		json
//	@Param			token	path		string	true	"Invite token"
//	@Success		200		{object}	membersdk.InvitePreview
//	@Failure		404		{object}	membersdk.ErrorResponse	"unknown token"
//	@Failure		409		{object}	membersdk.ErrorResponse	"used or expired"
//	@Router			/api/invites/{token} [get]
func (h *RegisterHandler) HandlePreview(w http.ResponseWriter, r *http.Request) {
	p, err := h.InviteService.PreviewInvite(r.Context(), r.PathValue("token"))
	switch {
	case err == nil:
		httpx.WriteJSON(w, http.StatusOK, toInvitePreview(p))
	case errors.Is(err, service.ErrInviteAlreadyUsed), errors.Is(err, service.ErrInviteExpired):
		httpx.WriteError(w, http.StatusConflict, err.Error())
	default:
		writeServiceError(w, r, err)
	}
}

// HandleRegister godoc
//
//	@Summary		Register
//	@Description	Redeem an invite token to become a member. Returns the member and a bearer token for the member endpoints.
//	@Tags			Registration
//	@Accept			json
//	@Produce		json
//	@Param			request	body		membersdk.RegisterRequest	true	"token, password"
//	@Success		201		{object}	membersdk.RegisterResponse
//	@Failure		400		{object}	membersdk.ErrorResponse	"missing field, invite already used or invite expired"
//	@Failure		404		{object}	membersdk.ErrorResponse	"unknown token"
//	@Failure		405		{object}	membersdk.ErrorResponse
//	@Router			/api/register [post]
func (h *RegisterHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req membersdk.RegisterRequest
	if !decodeBody(w, r, &req) {
		return
	}

	user, err := h.InviteService.RedeemInvite(ctx, req.Token, req.Password)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	// The member exists at this point; a signing failure only costs the
	// convenience token.
	resp := membersdk.RegisterResponse{User: toUser(user)}
	if h.TokenService != nil {
		tok, exp, err := h.TokenService.IssueMemberToken(user)
		if err != nil {
			slogx.FromContext(ctx).Error("failed to issue member token", "err", err, "user_id", user.ID)
		} else {
			resp.AccessToken, resp.TokenType, resp.ExpiresAt = tok, "Bearer", exp
		}
	}

	httpx.WriteJSON(w, http.StatusCreated, resp)
}
