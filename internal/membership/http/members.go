package http

import (
	"net/http"

	"github.com/aussiebroadwan/circle/internal/membership/service"
	"github.com/aussiebroadwan/circle/pkg/httpx"
)

type MembersHandler struct {
	UserService *service.UserService
}

// HandleList godoc
//
//	@Summary		List Members
//	@Description	The member directory ordered by name, used to pick a referral receiver.
//	@Tags			Members
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{array}		membersdk.User
//	@Failure		401	{object}	membersdk.ErrorResponse
//	@Router			/api/members [get]
func (h *MembersHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	users, err := h.UserService.ListMembers(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toUsers(users))
}
