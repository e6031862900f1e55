package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"cardrequest-backend/internal/documents"
	"cardrequest-backend/internal/services/health"
	"cardrequest-backend/internal/shared/config"
	"cardrequest-backend/internal/shared/metrics"
	"cardrequest-backend/internal/shared/server/middleware"
	"cardrequest-backend/internal/shared/server/respond"
	"cardrequest-backend/internal/submissions"
)

// RouterDeps carries the handlers the router mounts.
type RouterDeps struct {
	Config            config.Config
	Health            *health.Service
	SubmissionHandler *submissions.Handler
	DocumentHandler   *documents.Handler
	RateLimiter       *middleware.RateLimiter
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	if deps.Config.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(deps.Config.CORSAllowOrigin),
	)

	r.GET("/metrics", metrics.Handler())

	api := r.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		if deps.Health == nil {
			respond.JSON(c, http.StatusOK, gin.H{"ok": true})
			return
		}
		st := deps.Health.Status(c.Request.Context())
		status := http.StatusOK
		if !st.OK {
			status = http.StatusServiceUnavailable
		}
		respond.JSON(c, status, st)
	})

	submitLimit := middleware.RateLimit(middleware.RateLimitConfig{
		DefaultGroup: "SUBMIT",
		Limiter:      deps.RateLimiter,
		Rules: map[string]middleware.RateLimitRule{
			"SUBMIT": {Rate: deps.Config.RateLimitRPS, Burst: deps.Config.RateLimitBurst},
		},
	})

	admin := api.Group("/admin", middleware.AdminView(deps.Config.AdminView))
	if deps.SubmissionHandler != nil {
		deps.SubmissionHandler.RegisterRoutes(api, submitLimit)
		deps.SubmissionHandler.RegisterAdminRoutes(admin)
	}
	if deps.DocumentHandler != nil {
		deps.DocumentHandler.RegisterRoutes(api)
		deps.DocumentHandler.RegisterAdminRoutes(admin)
	}

	return r
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
