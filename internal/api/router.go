package api

import (
	"net/http"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/quickaccess/linkdir/internal/api/handler"
	"github.com/quickaccess/linkdir/internal/api/middleware"
	"github.com/quickaccess/linkdir/internal/core/domain"
	"github.com/quickaccess/linkdir/internal/core/ports"
	"github.com/quickaccess/linkdir/internal/core/service"
	mongodb "github.com/quickaccess/linkdir/internal/infrastructure/db/mongo"
	redisdb "github.com/quickaccess/linkdir/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// The audit recorder is injected so its lifecycle (draining on shutdown)
// stays with the caller.
func NewRouter(db *mongo.Database, rdb *redis.Client, audit ports.AuditRecorder, jwtSecret string, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("linkdir"))

	// --- Dependencies ---
	policy := domain.NewPolicy()
	issuer := service.NewJWTIssuer(jwtSecret, service.DefaultTokenTTL)

	userRepo := mongodb.NewUserRepository(db)
	roleRepo := mongodb.NewRoleRepository(db)
	linkRepo := mongodb.NewLinkRepository(db)
	logRepo := mongodb.NewLogRepository(db)

	authService := service.NewAuthService(userRepo, roleRepo, policy, issuer, audit, log)
	linkService := service.NewLinkService(linkRepo, roleRepo, policy, audit, log)
	roleService := service.NewRoleService(roleRepo, log)
	logService := service.NewLogService(logRepo, userRepo, log)
	logoService := service.NewLogoService(&http.Client{}, redisdb.NewLogoCache(rdb), log)

	authHandler := handler.NewAuthHandler(authService)
	linkHandler := handler.NewLinkHandler(linkService)
	roleHandler := handler.NewRoleHandler(roleService)
	logHandler := handler.NewLogHandler(logService)
	logoHandler := handler.NewLogoHandler(logoService)

	authed := middleware.Auth(issuer)
	adminOnly := middleware.RequireRole(domain.RoleAdmin)

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)
	e.POST("/auth/logout", authHandler.Logout, authed)
	e.GET("/auth/verify", authHandler.Verify, authed)
	e.POST("/auth/register-user", authHandler.RegisterUser, authed, adminOnly)
	e.GET("/auth/users", authHandler.ListUsers, authed, adminOnly)

	// --- Link routes ---
	e.GET("/links", linkHandler.List, authed)
	e.POST("/links", linkHandler.Create, authed)
	e.PUT("/links/:id", linkHandler.Update, authed)
	e.DELETE("/links/:id", linkHandler.Delete, authed)
	e.POST("/links/:id/click", linkHandler.Click, authed)

	// --- Role routes (listing is public: the registration page needs it) ---
	e.GET("/roles", roleHandler.List)
	e.POST("/roles", roleHandler.Create, authed, adminOnly)

	// --- Audit log routes ---
	e.GET("/logs/users", logHandler.Users, authed, adminOnly)
	e.GET("/logs/recent", logHandler.Recent, authed, adminOnly)
	e.GET("/logs/user/:userId", logHandler.ByUser, authed, adminOnly)

	// --- Logo fetch ---
	e.POST("/logo/fetch", logoHandler.Fetch)

	// --- Operational endpoints ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
