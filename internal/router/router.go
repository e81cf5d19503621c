package router

import (
	"github.com/gin-gonic/gin"

	"kinshare/internal/config"
	"kinshare/internal/handler"
	"kinshare/internal/middleware"
)

// Setup configures the Gin engine with all routes and middleware.
func Setup(
	cfg *config.Config,
	collectionH *handler.CollectionHandler,
	imageH *handler.ImageHandler,
	healthH *handler.HealthHandler,
) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.CORS(cfg.CORS.AllowedOrigins))

	// Health checks
	r.GET("/healthz", healthH.Liveness)
	r.GET("/readyz", healthH.Readiness)

	v1 := r.Group("/api/v1")
	v1.Use(middleware.Auth(cfg.JWT.Secret, cfg.JWT.Issuer))

	collections := v1.Group("/collections")
	collections.POST("", collectionH.Create)
	collections.GET("/:id", collectionH.GetByID)
	collections.PATCH("/:id", collectionH.Update)
	collections.DELETE("/:id", collectionH.Delete)
	collections.GET("/:id/members", collectionH.ListMembers)
	collections.POST("/:id/members", collectionH.AddMember)
	collections.DELETE("/:id/members/:userId", collectionH.RemoveMember)
	collections.GET("/:id/related", collectionH.ListRelated)
	collections.POST("/:id/related", collectionH.AddRelation)
	collections.DELETE("/:id/related/:relatedId", collectionH.RemoveRelation)

	images := v1.Group("/images")
	images.GET("/:id/url", imageH.GetDownloadURL)
	images.GET("/:id/thumbnail-url", imageH.GetThumbnailURL)

	return r
}
