package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/slstl/membership-system/docs"
	"github.com/slstl/membership-system/internal/api/handler"
	"github.com/slstl/membership-system/internal/api/middleware"
	"github.com/slstl/membership-system/internal/core/domain"
	"github.com/slstl/membership-system/internal/core/ports"
	"github.com/slstl/membership-system/internal/core/service"
	mongodb "github.com/slstl/membership-system/internal/infrastructure/db/mongo"
	redisdb "github.com/slstl/membership-system/internal/infrastructure/db/redis"
	"github.com/slstl/membership-system/internal/pkg/config"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// audit is the sink member writes report to; it is started by the caller.
func NewRouter(db *mongo.Database, rdb *redis.Client, audit ports.AuditSink, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)
	e.Validator = handler.NewValidator()

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("membership"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	memberRepo := mongodb.NewMemberRepository(db)
	auditRepo := mongodb.NewAuditRepository(db)
	denylist := redisdb.NewTokenDenylist(rdb)

	hasher := service.NewBcryptHasher(cfg.BcryptCost)
	tokens := service.NewTokenService(cfg.JWTSecret, cfg.TokenTTL, denylist)
	authService := service.NewAuthService(userRepo, hasher, tokens, denylist, log)
	memberService := service.NewMemberService(memberRepo, audit, auditRepo, log)

	authHandler := handler.NewAuthHandler(authService)
	memberHandler := handler.NewMemberHandler(memberService)
	authenticated := middleware.Auth(tokens)

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)
	e.GET("/auth/profile", authHandler.Profile, authenticated)
	e.POST("/auth/logout", authHandler.Logout, authenticated)

	// --- Member routes (reads: any authenticated role; writes: role-gated) ---
	members := e.Group("/members", authenticated)
	members.GET("", memberHandler.List)
	members.GET("/:id", memberHandler.Get)
	members.GET("/:id/audit", memberHandler.Audit, middleware.RBAC(domain.RoleAdmin, domain.RoleManager))
	members.POST("", memberHandler.Create, middleware.RBAC(domain.RoleAdmin, domain.RoleManager))
	members.PUT("/:id", memberHandler.Update, middleware.RBAC(domain.RoleAdmin, domain.RoleManager))
	members.DELETE("/:id", memberHandler.Delete, middleware.RBAC(domain.RoleAdmin))

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)

	// --- Operational endpoints ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
