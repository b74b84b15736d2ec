package routes

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"changaya_backend/internal/auth"
	"changaya_backend/internal/handlers"
	"changaya_backend/internal/middleware"
	"changaya_backend/internal/pkg/cache"
)

// Credential endpoints get a tight per-IP budget; everything else is
// unthrottled.
const (
	credentialRateLimit  = 10
	credentialRateWindow = time.Minute
)

// SetupRouter builds the gin engine with all middleware and routes.
// cacheClient may be nil; rate limiting is then skipped.
func SetupRouter(h *handlers.AppHandlers, sessions *auth.SessionCodec, cacheClient cache.Client) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	throttled := func() gin.HandlerFunc {
		if cacheClient == nil {
			return func(c *gin.Context) { c.Next() }
		}
		return middleware.RateLimitMiddleware(cacheClient, credentialRateLimit, credentialRateWindow)
	}()

	api := router.Group("/api/v1")
	{
		accounts := api.Group("/accounts")
		{
			accounts.POST("", throttled, h.Auth.Register)
			accounts.GET("/verify", h.Auth.Verify)
			accounts.POST("/login", throttled, h.Auth.Login)
		}

		authRequired := middleware.AuthMiddleware(sessions)

		users := api.Group("/users", authRequired)
		{
			users.GET("", h.Users.List)
			users.GET("/me", h.Users.Me)
			users.GET("/:id", h.Users.Get)
			users.PUT("/:id", h.Users.Update)
			users.DELETE("/:id", h.Users.Delete)
		}

		changas := api.Group("/changas")
		{
			changas.GET("/open", h.Changas.ListOpen)

			changas.POST("", authRequired, h.Changas.Create)
			changas.GET("/worker", authRequired, h.Changas.ListForWorker)
			changas.GET("/employer", authRequired, h.Changas.ListForEmployer)
			changas.GET("/:id", authRequired, h.Changas.Get)
			changas.PUT("/:id", authRequired, h.Changas.Update)
			changas.DELETE("/:id", authRequired, h.Changas.Delete)
		}
	}

	return router
}
