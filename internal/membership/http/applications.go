package http

import (
	"net/http"
	"strings"

	"github.com/aussiebroadwan/circle/internal/membership/service"
	"github.com/aussiebroadwan/circle/pkg/httpx"
	"github.com/aussiebroadwan/circle/pkg/idx"
	"github.com/aussiebroadwan/circle/pkg/membersdk"
)

type ApplicationsHandler struct {
	ApplicationService *service.ApplicationService
}

// HandleSubmit godoc
//
//	@Summary		Submit Application
//	@Description	File a membership application. It starts PENDING until an administrator decides it.
//	@Tags			Applications
//	@Accept			json
//	@Produce		json
//	@Param			request	body		membersdk.SubmitApplicationRequest	true	"name, email, company, reason"
//	@Success		201		{object}	membersdk.Application
//	@Failure		400		{object}	membersdk.ErrorResponse	"missing field"
//	@Failure		405		{object}	membersdk.ErrorResponse
//	@Router			/api/applications [post]
func (h *ApplicationsHandler) HandleSubmit(w http.ResponseWriter, r *http.Request) {
	var req membersdk.SubmitApplicationRequest
	if !decodeBody(w, r, &req) {
		return
	}

	app, err := h.ApplicationService.SubmitApplication(r.Context(), service.NewApplication{
		Name:    req.Name,
		Email:   req.Email,
		Company: req.Company,
		Reason:  req.Reason,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, toApplication(app))
}

// HandleList godoc
//
//	@Summary		List Applications
//	@Description	Every application, newest first.
//	@Tags			Admin
//	@Produce		json
//	@Security		AdminSecret
//	@Success		200	{array}		membersdk.Application
//	@Failure		401	{object}	membersdk.ErrorResponse
//	@Failure		405	{object}	membersdk.ErrorResponse
//	@Router			/api/admin/applications [get]
func (h *ApplicationsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	apps, err := h.ApplicationService.ListApplications(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toApplications(apps))
}

// HandleDecide godoc
//
//	@Summary		Decide Application
//	@Description	Approve or reject a pending application. Approval issues a seven day invite and logs the registration link.
//	@Tags			Admin
//	@Accept			json
//	@Produce		json
//	@Security		AdminSecret
//	@Param			id		path		string								true	"Application ID"
//	@Param			request	body		membersdk.DecideApplicationRequest	true	"APPROVE or REJECT"
//	@Success		200		{object}	membersdk.Application
//	@Failure		400		{object}	membersdk.ErrorResponse	"missing or invalid id or action"
//	@Failure		401		{object}	membersdk.ErrorResponse
//	@Failure		404		{object}	membersdk.ErrorResponse
//	@Failure		409		{object}	membersdk.ErrorResponse	"already decided"
//	@Router			/api/admin/applications/{id} [patch]
func (h *ApplicationsHandler) HandleDecide(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimSpace(r.PathValue("id"))
	if id == "" {
		httpx.WriteError(w, http.StatusBadRequest, "application id is required")
		return
	}
	if !idx.Valid(id) {
		httpx.WriteError(w, http.StatusBadRequest, "invalid application id")
		return
	}

	var req membersdk.DecideApplicationRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if strings.TrimSpace(req.Action) == "" {
		httpx.WriteError(w, http.StatusBadRequest, "action is required")
		return
	}

	dec, err := h.ApplicationService.DecideApplication(r.Context(), id, req.Action)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toApplication(dec.Application))
}
