package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/davidalonso/gamevault-backend/api/controllers"
	"github.com/davidalonso/gamevault-backend/api/middleware"
	"github.com/davidalonso/gamevault-backend/internal/auth"
	"github.com/davidalonso/gamevault-backend/internal/games"
	"github.com/davidalonso/gamevault-backend/internal/search"
	"github.com/davidalonso/gamevault-backend/internal/stats"
	"github.com/davidalonso/gamevault-backend/pkg/auth/session"
	"github.com/davidalonso/gamevault-backend/pkg/config"
	"github.com/davidalonso/gamevault-backend/pkg/db"
	"github.com/davidalonso/gamevault-backend/pkg/logger"
	"github.com/davidalonso/gamevault-backend/pkg/metrics"
	"github.com/davidalonso/gamevault-backend/pkg/redis"
)

// RouterParams carries everything the HTTP surface depends on.
type RouterParams struct {
	Config         *config.Config
	Logger         *logger.Logger
	DB             db.Pinger
	Redis          *redis.Client
	SessionChecker session.AccessSessionChecker
	HTTPMetrics    *metrics.HTTPMetrics

	AuthService   auth.Service
	GamesService  games.Service
	SearchService search.Service
	StatsService  stats.Service
}

func NewRouter(p RouterParams) http.Handler {
	cfg := p.Config
	logg := p.Logger

	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(),
	)
	if p.HTTPMetrics != nil {
		r.Use(p.HTTPMetrics.Middleware)
	}

	loginPolicy := middleware.NewAuthRateLimitPolicy(
		"login",
		cfg.AuthRateLimit.LoginWindow,
		cfg.AuthRateLimit.LoginIPLimit,
		cfg.AuthRateLimit.LoginEmailLimit,
	)
	signupPolicy := middleware.NewAuthRateLimitPolicy(
		"signup",
		cfg.AuthRateLimit.SignupWindow,
		cfg.AuthRateLimit.SignupIPLimit,
		cfg.AuthRateLimit.SignupEmailLimit,
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, p.DB, p.Redis, logg))
	})

	if p.HTTPMetrics != nil {
		r.Method(http.MethodGet, "/metrics", p.HTTPMetrics.Handler())
	}

	r.Route("/api/v1/auth", func(r chi.Router) {
		r.With(middleware.AuthRateLimit(signupPolicy, p.Redis, logg)).Post("/signup", controllers.AuthSignup(p.AuthService, logg))
		r.With(middleware.AuthRateLimit(loginPolicy, p.Redis, logg)).Post("/login", controllers.AuthLogin(p.AuthService, logg))
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.Auth(cfg.JWT, p.SessionChecker, logg))

		r.Post("/auth/logout", controllers.AuthLogout(p.AuthService, logg))

		r.Route("/games", func(r chi.Router) {
			r.Get("/", controllers.GamesList(p.GamesService, logg))
			r.Post("/", controllers.GamesCreate(p.GamesService, logg))
			r.Get("/search", controllers.GamesSearch(p.SearchService, logg))
			r.Get("/stats", controllers.GamesStats(p.StatsService, logg))
			r.Get("/{gameId}", controllers.GamesGet(p.GamesService, logg))
			r.Put("/{gameId}", controllers.GamesUpdate(p.GamesService, logg))
			r.Delete("/{gameId}", controllers.GamesDelete(p.GamesService, logg))
		})
	})

	return r
}
