package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/agencyhq/portal/internal/portal/domain"
	"github.com/agencyhq/portal/internal/portal/service"
	"github.com/agencyhq/portal/internal/portal/store"
	"github.com/agencyhq/portal/pkg/httpx"
	"github.com/agencyhq/portal/pkg/jwtx"
	"github.com/agencyhq/portal/pkg/slogx"

	_ "github.com/agencyhq/portal/api/portal" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	signer       *jwtx.Signer
	verifier     *jwtx.Verifier
	origin       string
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store            store.Store
	InviteService    *service.InviteService
	AccountService   *service.AccountService
	SessionService   *service.SessionService
	NotifyService    *service.NotifyService
	ProfileService   *service.ProfileService
	BootstrapService *service.BootstrapService
}

func NewRouter(
	signer *jwtx.Signer,
	verifier *jwtx.Verifier,
	origin, buildVersion string,
	st store.Store,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		signer:       signer,
		verifier:     verifier,
		origin:       origin,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
	}

	// Set default middleware chain
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerInvites()
	r.registerAccounts()
	r.registerSessions()
	r.registerProfiles()
	r.registerBootstrap()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Portal Service API
//	@version		0.1.0
//	@description	Invitation-based account service for the client portal. Access is invite
//	@description	only: a super admin mints a single-use invite token, the invitee redeems it
//	@description	within seven days, and the account comes up with the role the invite named.
//	@description
//	@description	Session tokens are EdDSA-signed JWTs passed as Bearer tokens.
//
//	@contact.name				AgencyHQ Engineering
//	@contact.url				https://github.com/agencyhq/portal
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				JWT session token. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerInvites() {
	createHandler := &InviteCreateHandler{
		InviteService: r.InviteService,
		NotifyService: r.NotifyService,
		Origin:        r.origin,
	}
	validateHandler := &InviteValidateHandler{InviteService: r.InviteService}
	emailHandler := &InviteEmailHandler{
		NotifyService: r.NotifyService,
		Verifier:      r.verifier,
	}

	// POST /v1/invites - super admin mints invites, moderate limit by user.
	// The role gate here is a cheap pre-check on the token's role claim; the
	// services re-resolve the profile where it matters.
	r.Mux.Handle("POST /v1/invites",
		httpx.Chain(createHandler,
			httpx.AuthnMiddleware(r.verifier),
			httpx.RequireRole(domain.RoleSuperAdmin.String()),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)

	// GET /v1/invites/validate - public, backs the account creation page.
	// Strict limit by IP since tokens are guessable in principle.
	r.Mux.Handle("GET /v1/invites/validate",
		httpx.Chain(validateHandler,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)

	// POST /v1/invites/email - no authn middleware here: the handler checks
	// the bearer itself so bearer failures share the endpoint's 200/400
	// body contract instead of the middleware's RFC 6750 401.
	r.Mux.Handle("POST /v1/invites/email",
		httpx.Chain(emailHandler,
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)
}

func (r *Router) registerAccounts() {
	h := &AccountCreateHandler{AccountService: r.AccountService}

	// POST /v1/accounts - public signup endpoint, strict limit by IP.
	r.Mux.Handle("POST /v1/accounts",
		httpx.Chain(h,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
}

func (r *Router) registerSessions() {
	loginHandler := &LoginHandler{SessionService: r.SessionService}
	userinfoHandler := &UserinfoHandler{SessionService: r.SessionService}

	// POST /v1/login - strict limit by IP against credential stuffing.
	r.Mux.Handle("POST /v1/login",
		httpx.Chain(loginHandler,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)

	r.Mux.Handle("GET /v1/userinfo",
		httpx.Chain(userinfoHandler,
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByUser(httpx.LenientLimit),
		),
	)
}

func (r *Router) registerProfiles() {
	h := &ProfilesHandler{ProfileService: r.ProfileService}

	// GET /v1/profiles - admins can read the listing.
	r.Mux.Handle("GET /v1/profiles",
		httpx.Chain(http.HandlerFunc(h.HandleList),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RequireRole(domain.RoleSuperAdmin.String(), domain.RoleAdmin.String()),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)

	// PUT /v1/profiles/{id}/active - super admin only.
	r.Mux.Handle("PUT /v1/profiles/{id}/active",
		httpx.Chain(http.HandlerFunc(h.HandleSetActive),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RequireRole(domain.RoleSuperAdmin.String()),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)
}

func (r *Router) registerBootstrap() {
	h := &BootstrapHandler{BootstrapService: r.BootstrapService}

	// POST /v1/bootstrap - public but gated by the bootstrap secret.
	r.Mux.Handle("POST /v1/bootstrap",
		httpx.Chain(h,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
}

func (r *Router) registerSystem() {
	r.Mux.Handle("GET /livez", LivezHandler(r.startTime, r.buildVersion))
	r.Mux.Handle("GET /readyz", ReadyzHandler(r.startTime, r.buildVersion, r.store, r.signer))
}
