package main

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"portfolio-backend/internal/domains/contact/handler"
	"portfolio-backend/internal/shared/middleware"
	"portfolio-backend/internal/shared/response"
	"portfolio-backend/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	// Global middlewares
	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.Metrics(),
		middleware.CORS(c.Config.CORS.AllowedOrigin),
	)

	// Prometheus scrape endpoint
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := router.Group("/api/v1")
	{
		// Health check
		v1.GET("/health", healthCheckHandler(c))

		setupContactRoutes(v1, c)
		setupBlogRoutes(v1, c)
		setupProjectRoutes(v1, c)
	}

	return router
}

// ========================================
// CONTACT ROUTES
// ========================================
func setupContactRoutes(v1 *gin.RouterGroup, c *container.Container) {
	v1.POST("/contact", c.ContactHandler.Submit)

	// The relay mock backs the CONTACT_TEST_MODE flow and the frontend's
	// error/loading-state checks. Never registered in production.
	if c.Config.App.Environment != "production" {
		v1.POST("/test/relay-mock", handler.RelayMock())
	}
}

// ========================================
// BLOG ROUTES
// ========================================
func setupBlogRoutes(v1 *gin.RouterGroup, c *container.Container) {
	posts := v1.Group("/posts")
	{
		posts.GET("", c.BlogHandler.ListPosts)
		posts.GET("/slugs", c.BlogHandler.ListSlugs)
		posts.GET("/:slug", c.BlogHandler.GetPost)
	}
}

// ========================================
// PROJECT ROUTES
// ========================================
func setupProjectRoutes(v1 *gin.RouterGroup, c *container.Container) {
	projects := v1.Group("/projects")
	{
		projects.GET("", c.ProjectHandler.ListProjects)
		projects.GET("/:slug", c.ProjectHandler.GetProject)
	}
}

// ========================================
// HEALTH CHECK HANDLER
// ========================================
func healthCheckHandler(appCtx *container.Container) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		degraded := false

		// Check content directories
		postsStatus := "ok"
		if err := appCtx.BlogRepo.Probe(); err != nil {
			postsStatus = "error: " + err.Error()
			degraded = true
		}

		projectsStatus := "ok"
		if err := appCtx.ProjectRepo.Probe(); err != nil {
			projectsStatus = "error: " + err.Error()
			degraded = true
		}

		services := gin.H{
			"posts":    postsStatus,
			"projects": projectsStatus,
			"relay":    appCtx.Relay.Endpoint(),
		}

		if degraded {
			response.ServiceUnavailable(ctx, "Service degraded", services)
			return
		}

		response.Success(ctx, http.StatusOK, gin.H{
			"status":    "ok",
			"timestamp": time.Now().Format(time.RFC3339),
			"version":   appCtx.Config.App.Version,
			"services":  services,
		})
	}
}
