package http

import (
	"net/http"

	"github.com/aussiebroadwan/circle/internal/membership/service"
	"github.com/aussiebroadwan/circle/pkg/httpx"
	"github.com/aussiebroadwan/circle/pkg/membersdk"
)

type ReferralsHandler struct {
	ReferralService *service.ReferralService
}

// actor is the member id AuthnMiddleware stored for this request.
func actor(r *http.Request) string {
	id, _ := httpx.UserIDFromContext(r.Context())
	return id
}

// HandleCreate godoc
//
//	@Summary		Create Referral
//	@Description	Send a referral to another member. It starts SENT.
//	@Tags			Referrals
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		membersdk.CreateReferralRequest	true	"receivedById, description, contactInfo"
//	@Success		201		{object}	membersdk.Referral
//	@Failure		400		{object}	membersdk.ErrorResponse	"missing field or unknown receiver"
//	@Failure		401		{object}	membersdk.ErrorResponse
//	@Router			/api/referrals [post]
func (h *ReferralsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req membersdk.CreateReferralRequest
	if !decodeBody(w, r, &req) {
		return
	}

	ref, err := h.ReferralService.CreateReferral(r.Context(), actor(r), service.NewReferral{
		ReceivedByID: req.ReceivedByID,
		Description:  req.Description,
		ContactInfo:  req.ContactInfo,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, toReferral(ref))
}

// HandleList godoc
//
//	@Summary		List Referrals
//	@Description	Referrals the caller has sent and received, each newest first.
//	@Tags			Referrals
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	membersdk.ReferralLists
//	@Failure		401	{object}	membersdk.ErrorResponse
//	@Router			/api/referrals [get]
func (h *ReferralsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	lists, err := h.ReferralService.ListReferrals(r.Context(), actor(r))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, membersdk.ReferralLists{
		Sent:     toReferrals(lists.Sent),
		Received: toReferrals(lists.Received),
	})
}

// HandleUpdate godoc
//
//	@Summary		Update Referral Status
//	@Description	Move a referral to SENT, NEGOTIATING, CLOSED or REJECTED. Any status may follow any other.
//	@Tags			Referrals
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		membersdk.UpdateReferralRequest	true	"id, status"
//	@Success		200		{object}	membersdk.Referral
//	@Failure		400		{object}	membersdk.ErrorResponse	"missing id or status, or unknown status"
//	@Failure		401		{object}	membersdk.ErrorResponse
//	@Failure		404		{object}	membersdk.ErrorResponse
//	@Router			/api/referrals [patch]
func (h *ReferralsHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var req membersdk.UpdateReferralRequest
	if !decodeBody(w, r, &req) {
		return
	}

	ref, err := h.ReferralService.UpdateReferralStatus(r.Context(), actor(r), req.ID, req.Status)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toReferral(ref))
}
