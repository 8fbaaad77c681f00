package handlers

import (
	"net/http"

	"writings-api/helper"
	"writings-api/middleware"

	"github.com/gin-gonic/gin"
)

type RouterConfig struct {
	AuthToken      string
	Helper         *helper.HTTPHelper
	WritingHandler *WritingHandler
	HealthHandler  *HealthHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(
		middleware.RequestID(),
		middleware.Logger(),
		middleware.Recovery(),
		middleware.CORS(),
	)

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not Found"})
	})

	if cfg.HealthHandler != nil {
		router.GET("/health", cfg.HealthHandler.Health)
	}

	writings := router.Group("/writings")
	{
		writings.GET("", cfg.WritingHandler.GetWritings)
		writings.GET("/:slug", cfg.WritingHandler.GetWritingBySlug)

		protected := writings.Group("")
		protected.Use(middleware.BearerTokenAuth(cfg.AuthToken, cfg.Helper))
		{
			protected.POST("", cfg.WritingHandler.CreateWriting)
			protected.PUT("/:id", cfg.WritingHandler.UpdateWriting)
			protected.DELETE("/:id", cfg.WritingHandler.DeleteWriting)
		}
	}

	return router
}
