package api

import (
	"github.com/jmoiron/sqlx"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/airlinehq/airline-api/internal/api/handler"
	"github.com/airlinehq/airline-api/internal/api/middleware"
	"github.com/airlinehq/airline-api/internal/core/domain"
	"github.com/airlinehq/airline-api/internal/core/ports"
	"github.com/airlinehq/airline-api/internal/token"
)

// Services bundles the application services the router exposes.
type Services struct {
	Auth   ports.AuthService
	Users  ports.UserService
	Routes ports.RouteService
}

// NewRouter builds and returns the Echo instance with all routes registered.
// rdb may be nil when caching is disabled; the readiness probe then skips it.
func NewRouter(svcs Services, codec *token.Codec, db *sqlx.DB, rdb *redis.Client, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("airline"))

	authHandler := handler.NewAuthHandler(svcs.Auth)
	userHandler := handler.NewUserHandler(svcs.Users)
	routeHandler := handler.NewRouteHandler(svcs.Routes)
	authenticated := middleware.Auth(codec)

	// --- Public surface ---
	e.GET("/", handler.Root)
	e.GET("/metrics", echoprometheus.NewHandler())

	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)
	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	// --- Auth routes ---
	auth := e.Group("/api/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)
	auth.POST("/login-phone", authHandler.LoginPhone)
	auth.GET("/me", authHandler.Me, authenticated)
	auth.GET("/logout", authHandler.Logout, authenticated)

	// --- User management (admin only) ---
	users := e.Group("/api/users", authenticated, middleware.RequireRoles(domain.RoleAdmin))
	users.GET("", userHandler.List)
	users.GET("/:id", userHandler.Get)
	users.POST("", userHandler.Create)
	users.PUT("/:id", userHandler.Update)
	users.DELETE("/:id", userHandler.Delete)

	// --- Routes: reads for any authenticated caller, writes for staff ---
	routes := e.Group("/api/routes", authenticated)
	staff := middleware.RequireRoles(domain.RoleAdmin, domain.RoleWorker)
	routes.GET("", routeHandler.List)
	routes.GET("/:id", routeHandler.Get)
	routes.POST("", routeHandler.Create, staff)
	routes.PUT("/:id", routeHandler.Update, staff)
	routes.DELETE("/:id", routeHandler.Delete, staff)

	return e
}
