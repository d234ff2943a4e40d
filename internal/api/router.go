package api

import (
	"net/http"

	"github.com/Rrens/space-reservation/internal/api/handler"
	customMiddleware "github.com/Rrens/space-reservation/internal/api/middleware"
	"github.com/Rrens/space-reservation/internal/config"
	"github.com/Rrens/space-reservation/internal/domain"
	"github.com/Rrens/space-reservation/internal/repository/postgres"
	"github.com/Rrens/space-reservation/internal/repository/redis"
	"github.com/Rrens/space-reservation/internal/security"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// Repositories bundles the storage the handlers are built on
type Repositories struct {
	Spaces       domain.SpaceRepository
	Rooms        domain.RoomRepository
	Reservations domain.ReservationRepository
	Users        domain.UserRepository
	Supplies     domain.SupplyRepository
}

// NewRepositories wires the postgres repositories behind the redis space cache
func NewRepositories(db *postgres.DB, spaceCache *redis.SpaceCache) Repositories {
	return Repositories{
		Spaces:       redis.NewCachedSpaceRepository(postgres.NewSpaceRepository(db), spaceCache),
		Rooms:        redis.NewCachedRoomRepository(postgres.NewRoomRepository(db), spaceCache),
		Reservations: postgres.NewReservationRepository(db),
		Users:        postgres.NewUserRepository(db),
		Supplies:     postgres.NewSupplyRepository(db),
	}
}

// NewRouter creates and configures the HTTP router
func NewRouter(cfg *config.Config, db *postgres.DB, redisClient *redis.Client) http.Handler {
	spaceCache := redis.NewSpaceCache(redisClient, cfg.Cache.SpaceTTL)
	rateLimiter := redis.NewRateLimiter(
		redisClient,
		cfg.RateLimit.RequestsPerMinute,
		cfg.RateLimit.Burst,
	)

	deps := Dependencies{
		Repositories: NewRepositories(db, spaceCache),
		JWTManager: security.NewJWTManager(
			cfg.Auth.JWTSecret,
			cfg.Auth.AccessTokenTTL,
			cfg.Auth.RefreshTokenTTL,
		),
		Hasher:      security.NewPasswordHasher(cfg.Auth.BcryptCost),
		RateLimiter: rateLimiter,
		DB:          db,
		Cache:       redisClient,
		SpaceCache:  spaceCache,
	}

	return NewHandler(cfg, deps)
}

// Dependencies is everything NewHandler needs besides configuration
type Dependencies struct {
	Repositories
	JWTManager  *security.JWTManager
	Hasher      *security.PasswordHasher
	RateLimiter customMiddleware.Limiter
	DB          handler.Pinger
	Cache       handler.Pinger
	SpaceCache  *redis.SpaceCache
}

// NewHandler builds the route tree. Handlers and their usecases are
// constructed once here and shared by every request.
func NewHandler(cfg *config.Config, deps Dependencies) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(customMiddleware.Logger)
	r.Use(middleware.Recoverer)
	if cfg.Server.MiddlewareTimeout > 0 {
		r.Use(middleware.Timeout(cfg.Server.MiddlewareTimeout))
	}

	// CORS
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.Server.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"X-Request-ID", "X-RateLimit-Remaining", "X-RateLimit-Reset"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Initialize handlers
	authHandler := handler.NewAuthHandler(deps.Users, deps.Hasher, deps.JWTManager, deps.RateLimiter, cfg.Auth.SecureCookies)
	spaceHandler := handler.NewSpaceHandler(deps.Spaces)
	roomHandler := handler.NewRoomHandler(deps.Rooms)
	reservationHandler := handler.NewReservationHandler(deps.Reservations)
	userHandler := handler.NewUserHandler(deps.Users)
	supplyHandler := handler.NewSupplyHandler(deps.Supplies)

	authMiddleware := customMiddleware.NewAuthMiddleware(deps.JWTManager)

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", handler.HealthCheck)
		if deps.DB != nil && deps.Cache != nil {
			r.Get("/ready", handler.ReadyCheck(deps.DB, deps.Cache))
		}

		// Auth routes (public, rate limited per client IP)
		r.Group(func(r chi.Router) {
			if deps.RateLimiter != nil {
				r.Use(customMiddleware.NewRateLimitMiddleware(deps.RateLimiter).Limit)
			}
			r.Post("/login", authHandler.Login)
			r.Post("/signup", authHandler.Signup)
		})
		r.Get("/check-email", authHandler.CheckEmail)
		r.Post("/refresh", authHandler.Refresh)
		r.Post("/logout", authHandler.Logout)

		// Public catalogue
		r.Get("/spaces", spaceHandler.Get)
		r.Get("/rooms", roomHandler.Get)
		r.Get("/rooms/reservations", reservationHandler.ListByRoom)
		r.Get("/supplies", supplyHandler.List)

		// Any signed-in account
		r.Route("/user", func(r chi.Router) {
			r.Use(authMiddleware.Authenticate)
			r.Use(customMiddleware.RequireTypes(domain.UserTypeAdmin, domain.UserTypeUser))

			r.Route("/reservations", func(r chi.Router) {
				r.Get("/", reservationHandler.ListMine)
				r.Post("/", reservationHandler.Create)
				r.Put("/{id}", reservationHandler.Update)
				r.Delete("/{id}", reservationHandler.Delete)
			})
		})

		// Admin only
		r.Route("/admin", func(r chi.Router) {
			r.Use(authMiddleware.Authenticate)
			r.Use(customMiddleware.RequireTypes(domain.UserTypeAdmin))

			r.Get("/reservations", reservationHandler.ListAll)

			r.Route("/spaces", func(r chi.Router) {
				r.Post("/", spaceHandler.Create)
				r.Put("/{id}", spaceHandler.Update)
				r.Delete("/{id}", spaceHandler.Delete)
			})

			r.Route("/rooms", func(r chi.Router) {
				r.Post("/", roomHandler.Create)
				r.Put("/{id}", roomHandler.Update)
				r.Delete("/", roomHandler.Delete)
			})

			r.Route("/users", func(r chi.Router) {
				r.Get("/", userHandler.List)
				r.Delete("/{id}", userHandler.Delete)
			})

			if deps.SpaceCache != nil {
				r.Post("/cache/flush", handler.FlushCache(deps.SpaceCache))
			}
		})
	})

	return r
}
