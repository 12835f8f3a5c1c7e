package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/wramaba/felipe/internal/felipe/cache"
	"github.com/wramaba/felipe/internal/felipe/service"
	"github.com/wramaba/felipe/internal/felipe/store"
	"github.com/wramaba/felipe/pkg/httpx"
	"github.com/wramaba/felipe/pkg/jwtx"
	"github.com/wramaba/felipe/pkg/slogx"

	_ "github.com/wramaba/felipe/api/felipe" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	verifier     jwtx.Verifier
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store store.Store
	cache *cache.Cache // Optional: nil when no cache is configured

	AuthService      *service.AuthService
	CaseService      *service.CaseService
	DashboardService *service.DashboardService
	AIService        *service.AIService
}

func NewRouter(
	verifier jwtx.Verifier,
	buildVersion string,
	st store.Store,
	c *cache.Cache,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		verifier:     verifier,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		cache:        c,
		logger:       logger,
	}

	// Set default middleware chain
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
		httpx.CORS(),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerAuth()
	r.registerCases()
	r.registerStats()
	r.registerAI()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			FELIPE Case Tracking API
//	@version		0.1.0
//	@description	Backend for the FELIPE legal case tracking platform: prosecutor accounts,
//	@description	owner-scoped case records, dashboard aggregates and an AI assistant proxy.
//	@description
//	@description				Access tokens are HS256-signed JWTs carried as "Bearer {token}".
//
//	@contact.name				FELIPE Team
//	@contact.url				https://github.com/wramaba/felipe
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8000
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				JWT access token. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerAuth() {
	h := &AuthHandler{AuthService: r.AuthService}

	// POST /auth/register - strict rate limit by IP (public signup endpoint)
	r.Mux.Handle("POST /auth/register",
		httpx.Chain(http.HandlerFunc(h.HandleRegister),
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)

	// POST /auth/login - strict rate limit by IP (authentication attempts)
	r.Mux.Handle("POST /auth/login",
		httpx.Chain(http.HandlerFunc(h.HandleLogin),
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
}

func (r *Router) registerCases() {
	h := &CasesHandler{CaseService: r.CaseService}

	// Read endpoints - lenient rate limit by user
	securedList := httpx.Chain(http.HandlerFunc(h.HandleList),
		httpx.AuthnMiddleware(r.verifier),
		httpx.RateLimitByUser(httpx.LenientLimit),
	)

	// Write endpoints - moderate rate limit by user
	securedCreate := httpx.Chain(http.HandlerFunc(h.HandleCreate),
		httpx.AuthnMiddleware(r.verifier),
		httpx.RateLimitByUser(httpx.ModerateLimit),
	)
	securedUpdate := httpx.Chain(http.HandlerFunc(h.HandleUpdate),
		httpx.AuthnMiddleware(r.verifier),
		httpx.RateLimitByUser(httpx.ModerateLimit),
	)
	securedDelete := httpx.Chain(http.HandlerFunc(h.HandleDelete),
		httpx.AuthnMiddleware(r.verifier),
		httpx.RateLimitByUser(httpx.ModerateLimit),
	)

	r.Mux.Handle("GET /cases", securedList)
	r.Mux.Handle("POST /cases", securedCreate)
	r.Mux.Handle("PUT /cases/{id}", securedUpdate)
	r.Mux.Handle("DELETE /cases/{id}", securedDelete)
}

func (r *Router) registerStats() {
	h := &StatsHandler{DashboardService: r.DashboardService}

	// GET /stats/dashboard - lenient rate limit by user (dashboard polls)
	secured := httpx.Chain(http.HandlerFunc(h.HandleDashboard),
		httpx.AuthnMiddleware(r.verifier),
		httpx.RateLimitByUser(httpx.LenientLimit),
	)

	r.Mux.Handle("GET /stats/dashboard", secured)
}

func (r *Router) registerAI() {
	h := &AIHandler{AIService: r.AIService}

	// AI endpoints hit an expensive downstream model, so both are strict.
	securedChat := httpx.Chain(http.HandlerFunc(h.HandleChat),
		httpx.AuthnMiddleware(r.verifier),
		httpx.RateLimitByUser(httpx.StrictLimit),
	)
	securedAnalyze := httpx.Chain(http.HandlerFunc(h.HandleAnalyzeDocument),
		httpx.AuthnMiddleware(r.verifier),
		httpx.RateLimitByUser(httpx.StrictLimit),
	)

	r.Mux.Handle("POST /ai/chat", securedChat)
	r.Mux.Handle("POST /ai/analyze-document", securedAnalyze)
}

func (r *Router) registerSystem() {
	// Health check endpoints - lenient rate limits (monitoring systems may poll frequently)
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.store, r.cache),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
}
