package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"journal-backend/internal/shared/middleware"
	"journal-backend/internal/shared/response"
	"journal-backend/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	// Global middlewares
	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(),
	)

	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", healthCheckHandler(c))

		setupAuthRoutes(v1, c)
		setupArticleRoutes(v1, c)
		setupJournalRoutes(v1, c)
		setupReviewerRoutes(v1, c)
		setupNotificationRoutes(v1, c)
		setupArchiveRoutes(v1, c)
	}

	return router
}

// ========================================
// AUTH ROUTES
// ========================================
func setupAuthRoutes(v1 *gin.RouterGroup, c *container.Container) {
	auth := v1.Group("/auth")
	{
		auth.POST("/login", c.AuthHandler.Login)
		auth.GET("/me", middleware.AuthMiddleware(c.JWTManager), c.AuthHandler.Me)
	}
}

// ========================================
// ARTICLE ROUTES
// ========================================
func setupArticleRoutes(v1 *gin.RouterGroup, c *container.Container) {
	articles := v1.Group("/articles")
	articles.Use(middleware.AuthMiddleware(c.JWTManager))
	{
		articles.POST("", c.ArticleHandler.Submit)
		articles.GET("", c.ArticleHandler.ListForUser)
		articles.GET("/assigned", c.ArticleHandler.ListForReviewer)
		articles.GET("/journal/:journalId", c.ArticleHandler.ListByJournal)
		articles.PUT("/:id", c.ArticleHandler.Update)
		articles.PUT("/:id/review", c.ArticleHandler.UpdateReview)
		articles.POST("/:id/reviewers", c.ArticleHandler.AssignReviewers)
	}
}

// ========================================
// JOURNAL ROUTES
// ========================================
func setupJournalRoutes(v1 *gin.RouterGroup, c *container.Container) {
	journals := v1.Group("/journals")
	{
		journals.GET("", c.JournalHandler.List)

		protected := journals.Group("")
		protected.Use(middleware.AuthMiddleware(c.JWTManager))
		{
			protected.POST("", c.JournalHandler.Create)
			protected.DELETE("/:id", c.JournalHandler.Delete)
			protected.POST("/:id/editor", c.JournalHandler.AssignEditor)
			protected.DELETE("/:id/editor", c.JournalHandler.RemoveEditor)
		}
	}
}

// ========================================
// REVIEWER ROUTES
// ========================================
func setupReviewerRoutes(v1 *gin.RouterGroup, c *container.Container) {
	reviewers := v1.Group("/reviewers")
	reviewers.Use(middleware.AuthMiddleware(c.JWTManager))
	{
		reviewers.POST("", c.ReviewerHandler.Register)
		reviewers.POST("/bulk", c.ReviewerHandler.RegisterBulk)
		reviewers.GET("", c.ReviewerHandler.List)
		reviewers.DELETE("/:id", c.ReviewerHandler.Remove)
	}
}

// ========================================
// NOTIFICATION ROUTES
// ========================================
func setupNotificationRoutes(v1 *gin.RouterGroup, c *container.Container) {
	notifications := v1.Group("/notifications")
	notifications.Use(middleware.AuthMiddleware(c.JWTManager))
	{
		notifications.POST("/mail", c.NotificationHandler.SendMail)
	}
}

// ========================================
// ARCHIVE ROUTES
// ========================================
func setupArchiveRoutes(v1 *gin.RouterGroup, c *container.Container) {
	archives := v1.Group("/archives")
	archives.Use(middleware.AuthMiddleware(c.JWTManager))
	{
		archives.POST("", c.ArchiveHandler.Build)
		archives.GET("/:fileName", c.ArchiveHandler.Download)
	}
}

// ========================================
// HEALTH CHECK
// ========================================
func healthCheckHandler(c *container.Container) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		checks := gin.H{
			"database": "ok",
			"cache":    "ok",
		}
		healthy := true

		if err := c.DB.HealthCheck(ctx.Request.Context()); err != nil {
			checks["database"] = err.Error()
			healthy = false
		}
		if err := c.Cache.Ping(ctx.Request.Context()); err != nil {
			// Degraded, not down: reads fall through to mongo.
			checks["cache"] = err.Error()
		}

		if !healthy {
			response.Error(ctx, http.StatusServiceUnavailable, "Service unhealthy", checks)
			return
		}
		response.Success(ctx, http.StatusOK, "Service healthy", checks)
	}
}
