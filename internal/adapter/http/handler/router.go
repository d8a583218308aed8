package handler

import (
	"confidential-ledger/internal/adapter/http/middleware"
	redisStore "confidential-ledger/internal/adapter/storage/redis"
	"confidential-ledger/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	AuthSvc        ports.AuthService
	LedgerSvc      ports.LedgerService
	TokenSvc       ports.TokenService
	RateLimitStore *redisStore.RateLimitStore // nil = rate limiting disabled
	HealthCheckers []ports.HealthChecker
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(1 << 20)) // 1 MB request body limit

	// Health check (deep — verifies PostgreSQL + Redis)
	r.GET("/health", HealthCheck(deps.HealthCheckers...))

	// Rate limit rules
	rules := middleware.DefaultRateLimitRules()

	// Helper: return rate limiter middleware if store is available, else noop.
	rl := func(group string) gin.HandlerFunc {
		if deps.RateLimitStore == nil {
			return func(c *gin.Context) { c.Next() }
		}
		rule, ok := rules[group]
		if !ok {
			return func(c *gin.Context) { c.Next() }
		}
		return middleware.RateLimiter(deps.RateLimitStore, group, rule, deps.Logger)
	}

	// API v1 routes
	v1 := r.Group("/api/v1")

	// --- Public routes (no auth) ---
	authHandler := NewAuthHandler(deps.AuthSvc)
	auth := v1.Group("/auth")
	{
		auth.POST("/register", rl("auth_register"), authHandler.Register)
		auth.POST("/login", rl("auth_login"), authHandler.Login)
	}

	// --- JWT-authenticated routes (every ledger operation) ---
	jwtAuth := middleware.JWTAuth(deps.TokenSvc, deps.Logger)
	accountHandler := NewAccountHandler(deps.LedgerSvc)
	auditHandler := NewAuditHandler(deps.LedgerSvc)

	accounts := v1.Group("/accounts", jwtAuth)
	{
		accounts.POST("", rl("accounts_write"), accountHandler.Create)
		accounts.GET("", rl("queries"), accountHandler.ListMine)
		accounts.GET("/:id", rl("queries"), accountHandler.GetInfo)
		accounts.PUT("/:id/balance", rl("accounts_write"), accountHandler.UpdateBalance)
		accounts.POST("/:id/deactivate", rl("accounts_write"), accountHandler.Deactivate)
		accounts.POST("/:id/reactivate", rl("accounts_write"), accountHandler.Reactivate)
		accounts.GET("/:id/balance", rl("queries"), accountHandler.GetBalanceCommitment)
		accounts.GET("/:id/transactions", rl("queries"), accountHandler.GetTransactionCommitment)
		accounts.GET("/:id/audits", rl("queries"), auditHandler.ListForAccount)
	}

	audits := v1.Group("/audits", jwtAuth)
	{
		audits.POST("", rl("audits"), auditHandler.Initiate)
		audits.POST("/:id/complete", rl("audits"), auditHandler.Complete)
		audits.GET("/:id", rl("queries"), auditHandler.GetRecord)
		audits.GET("/:id/flag", rl("queries"), auditHandler.GetFlag)
	}

	auditor := v1.Group("/auditor", jwtAuth)
	{
		auditor.POST("/transfer", rl("audits"), auditHandler.TransferAuditor)
	}

	ledger := v1.Group("/ledger", jwtAuth)
	{
		ledger.GET("", rl("queries"), accountHandler.GetLedgerInfo)
	}

	return r
}
