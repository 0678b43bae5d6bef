package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/aussiebroadwan/circle/internal/membership/service"
	"github.com/aussiebroadwan/circle/internal/membership/store"
	"github.com/aussiebroadwan/circle/internal/membership/web"
	"github.com/aussiebroadwan/circle/pkg/httpx"
	"github.com/aussiebroadwan/circle/pkg/jwtx"
	"github.com/aussiebroadwan/circle/pkg/metricsx"
	"github.com/aussiebroadwan/circle/pkg/slogx"
	"github.com/rs/cors"

	_ "github.com/aussiebroadwan/circle/api/membership" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware
	handler     http.Handler

	verifier     jwtx.Verifier
	adminSecret  string
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger
	metrics      *metricsx.Metrics

	store              store.Store
	ApplicationService *service.ApplicationService
	InviteService      *service.InviteService
	ReferralService    *service.ReferralService
	UserService        *service.UserService
	TokenService       *service.TokenService
	Pages              *web.Pages // Optional: JSON API only when nil
}

func NewRouter(
	verifier jwtx.Verifier,
	adminSecret, buildVersion string,
	st store.Store,
	logger *slog.Logger,
	metrics *metricsx.Metrics,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		verifier:     verifier,
		adminSecret:  adminSecret,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
		metrics:      metrics,
	}

	// Set default middleware chain
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

// UseCORS allows browser calls from the given origins. With no origins the
// API stays same-origin only.
func (r *Router) UseCORS(allowedOrigins []string) {
	if len(allowedOrigins) == 0 {
		return
	}
	c := cors.New(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodPatch,
		},
		AllowedHeaders: []string{"Authorization", "Content-Type", httpx.AdminSecretHeader, slogx.RequestIDHeader},
		ExposedHeaders: []string{slogx.RequestIDHeader},
		MaxAge:         300,
	})
	r.middlewares = append(r.middlewares, c.Handler)
}

func (r *Router) ApplyRoutes() {
	r.registerApplications()
	r.registerAdmin()
	r.registerRegistration()
	r.registerMembers()
	r.registerReferrals()
	r.registerSystem()
	r.registerPages()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())

	// Metrics wraps the mux directly so the matched pattern is visible.
	r.handler = httpx.Chain(r.metrics.InstrumentHandler(r.Mux), r.middlewares...)
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Circle Membership Service API
//	@version		0.1.0
//	@description	Membership intake: applications, administrator decisions, invite-based registration and member referrals.
//
//	@contact.name	AussieBroadWAN Team
//	@contact.url	https://github.com/aussiebroadwan/circle
//
//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT
//
//	@host			localhost:8080
//	@BasePath		/
//
//	@schemes		http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Member token returned by /api/register. Format: "Bearer {token}".
//
//	@securityDefinitions.apikey	AdminSecret
//	@in							header
//	@name						X-Admin-Secret
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.handler.ServeHTTP(w, req)
}

func (r *Router) registerApplications() {
	h := &ApplicationsHandler{ApplicationService: r.ApplicationService}

	// POST /api/applications - strict rate limit by IP (public form)
	r.Mux.Handle("POST /api/applications",
		httpx.Chain(http.HandlerFunc(h.HandleSubmit),
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
	r.Mux.Handle("/api/applications", httpx.MethodNotAllowed(http.MethodPost))
}

func (r *Router) registerAdmin() {
	h := &ApplicationsHandler{ApplicationService: r.ApplicationService}

	securedList := httpx.Chain(http.HandlerFunc(h.HandleList),
		httpx.RequireAdminSecret(r.adminSecret),
		httpx.RateLimitByIP(httpx.ModerateLimit),
	)
	securedDecide := httpx.Chain(http.HandlerFunc(h.HandleDecide),
		httpx.RequireAdminSecret(r.adminSecret),
		httpx.RateLimitByIP(httpx.ModerateLimit),
	)

	r.Mux.Handle("GET /api/admin/applications", securedList)
	r.Mux.Handle("/api/admin/applications", httpx.MethodNotAllowed(http.MethodGet))

	r.Mux.Handle("PATCH /api/admin/applications/{id}", securedDecide)
	r.Mux.Handle("PATCH /api/admin/applications/{$}", securedDecide)
	r.Mux.Handle("/api/admin/applications/{id}", httpx.MethodNotAllowed(http.MethodPatch))
}

func (r *Router) registerRegistration() {
	h := &RegisterHandler{
		InviteService: r.InviteService,
		TokenService:  r.TokenService,
	}

	// GET /api/invites/{token} - strict rate limit by IP (token probing)
	r.Mux.Handle("GET /api/invites/{token}",
		httpx.Chain(http.HandlerFunc(h.HandlePreview),
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
	r.Mux.Handle("/api/invites/{token}", httpx.MethodNotAllowed(http.MethodGet))

	// POST /api/register - strict rate limit by IP (public signup endpoint)
	r.Mux.Handle("POST /api/register",
		httpx.Chain(http.HandlerFunc(h.HandleRegister),
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
	r.Mux.Handle("/api/register", httpx.MethodNotAllowed(http.MethodPost))
}

func (r *Router) registerMembers() {
	h := &MembersHandler{UserService: r.UserService}

	r.Mux.Handle("GET /api/members",
		httpx.Chain(http.HandlerFunc(h.HandleList),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)
	r.Mux.Handle("/api/members", httpx.MethodNotAllowed(http.MethodGet))
}

func (r *Router) registerReferrals() {
	h := &ReferralsHandler{ReferralService: r.ReferralService}

	secured := func(fn http.HandlerFunc) http.Handler {
		return httpx.Chain(fn,
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		)
	}

	r.Mux.Handle("POST /api/referrals", secured(h.HandleCreate))
	r.Mux.Handle("GET /api/referrals", secured(h.HandleList))
	r.Mux.Handle("PATCH /api/referrals", secured(h.HandleUpdate))
	r.Mux.Handle("/api/referrals", httpx.MethodNotAllowed(http.MethodGet, http.MethodPost, http.MethodPatch))
}

func (r *Router) registerSystem() {
	// Health check endpoints - lenient rate limits (monitoring systems may poll frequently)
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.store),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
	if r.metrics != nil {
		r.Mux.Handle("GET /metrics", r.metrics.Handler())
	}
}

func (r *Router) registerPages() {
	if r.Pages == nil {
		return
	}

	pages := func(fn http.HandlerFunc) http.Handler {
		return httpx.Chain(fn, httpx.RateLimitByIP(httpx.LenientLimit))
	}

	r.Mux.Handle("GET /{$}", pages(r.Pages.Home))
	r.Mux.Handle("GET /apply", pages(r.Pages.Apply))
	r.Mux.Handle("GET /admin/applications", pages(r.Pages.AdminApplications))
	r.Mux.Handle("GET /register", pages(r.Pages.Register))
	r.Mux.Handle("GET /referrals", pages(r.Pages.Referrals))
	r.Mux.Handle("GET /static/", r.Pages.Static())
}
