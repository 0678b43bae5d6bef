// Package web renders the server-side pages. Each page is a thin shell whose
// script talks to the JSON API under /api.
package web

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"time"

	"github.com/aussiebroadwan/circle/internal/membership/domain"
	"github.com/aussiebroadwan/circle/internal/membership/service"
	"github.com/aussiebroadwan/circle/pkg/httpx"
	"github.com/aussiebroadwan/circle/pkg/slogx"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// MemberTokenKey is the localStorage key the register page stores the
// member token under and the referrals page reads it from.
const MemberTokenKey = "circle.memberToken"

var pageNames = []string{"home", "apply", "admin_applications", "register", "referrals"}

type Pages struct {
	Applications *service.ApplicationService
	Invites      *service.InviteService
	AdminSecret  string

	templates map[string]*template.Template
}

func New(apps *service.ApplicationService, invites *service.InviteService, adminSecret string) (*Pages, error) {
	funcs := template.FuncMap{
		"date": func(t time.Time) string { return t.Format("2006-01-02 15:04") },
		"statusClass": func(s domain.ApplicationStatus) string {
			switch s {
			case domain.ApplicationApproved:
				return "approved"
			case domain.ApplicationRejected:
				return "rejected"
			default:
				return "pending"
			}
		},
	}

	p := &Pages{
		Applications: apps,
		Invites:      invites,
		AdminSecret:  adminSecret,
		templates:    make(map[string]*template.Template, len(pageNames)),
	}
	for _, name := range pageNames {
		t, err := template.New("layout.html").Funcs(funcs).ParseFS(templateFS,
			"templates/layout.html", "templates/"+name+".html")
		if err != nil {
			return nil, fmt.Errorf("parse %s template: %w", name, err)
		}
		p.templates[name] = t
	}
	return p, nil
}

type pageData struct {
	Title    string
	TokenKey string
	Data     any
}

func (p *Pages) render(w http.ResponseWriter, r *http.Request, name, title string, data any) {
	var buf bytes.Buffer
	err := p.templates[name].ExecuteTemplate(&buf, "layout.html", pageData{
		Title:    title,
		TokenKey: MemberTokenKey,
		Data:     data,
	})
	if err != nil {
		slogx.FromContext(r.Context()).Error("failed to render page", "page", name, "err", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	httpx.NoCache(w)
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = buf.WriteTo(w)
}

func (p *Pages) Home(w http.ResponseWriter, r *http.Request) {
	p.render(w, r, "home", "Circle", nil)
}

func (p *Pages) Apply(w http.ResponseWriter, r *http.Request) {
	p.render(w, r, "apply", "Apply for membership", nil)
}

// AdminApplications lists applications for an administrator. A missing or
// wrong ?secret= sends the visitor home instead of failing.
func (p *Pages) AdminApplications(w http.ResponseWriter, r *http.Request) {
	secret := r.URL.Query().Get("secret")
	if !httpx.ValidAdminSecret(p.AdminSecret, secret) {
		slogx.FromContext(r.Context()).Warn("admin page secret rejected")
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}

	apps, err := p.Applications.ListApplications(r.Context())
	if err != nil {
		slogx.FromContext(r.Context()).Error("failed to list applications", "err", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	p.render(w, r, "admin_applications", "Applications", struct {
		Secret       string
		Applications []domain.Application
	}{secret, apps})
}

type registerData struct {
	Token   string
	Preview *service.InvitePreview
	Error   string
}

// Register shows the invitee who they are registering as, or why the link
// no longer works.
func (p *Pages) Register(w http.ResponseWriter, r *http.Request) {
	token := r.URL.Query().Get("token")
	data := registerData{Token: token}

	preview, err := p.Invites.PreviewInvite(r.Context(), token)
	switch {
	case err == nil:
		data.Preview = &preview
	case errors.Is(err, service.ErrInviteNotFound):
		data.Error = "This invite link is not valid."
	case errors.Is(err, service.ErrInviteAlreadyUsed):
		data.Error = "This invite has already been used."
	case errors.Is(err, service.ErrInviteExpired):
		data.Error = "This invite has expired. Ask an administrator for a new one."
	default:
		slogx.FromContext(r.Context()).Error("failed to preview invite", "err", err)
		data.Error = "Something went wrong. Please try again later."
	}

	p.render(w, r, "register", "Complete registration", data)
}

func (p *Pages) Referrals(w http.ResponseWriter, r *http.Request) {
	p.render(w, r, "referrals", "Referrals", domain.ReferralStatuses)
}

// Static serves the embedded scripts and stylesheet under /static/.
func (p *Pages) Static() http.Handler {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err) // embedded path is fixed at compile time
	}
	return http.StripPrefix("/static/", http.FileServer(http.FS(sub)))
}
