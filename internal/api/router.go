// Package api assembles the gin router.
package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sdvn-lab/traffic-backend-go/internal/config"
	"github.com/sdvn-lab/traffic-backend-go/internal/dataset"
	"github.com/sdvn-lab/traffic-backend-go/internal/handler"
	"github.com/sdvn-lab/traffic-backend-go/internal/middleware"
)

// Deps carries everything the router needs.
type Deps struct {
	Config        *config.Config
	Store         *dataset.Store
	Chat          *handler.ChatHandler
	Segments      *handler.SegmentHandler
	Stats         *handler.StatsHandler
	Admin         *handler.AdminHandler
	APIConfigured bool // whether the generative fallback has a credential
}

// SetupRouter wires middleware and routes.
func SetupRouter(d Deps) *gin.Engine {
	if !d.Config.Logging.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.Logger())
	r.Use(corsMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":         "healthy",
			"total_segments": d.Store.Table().Len(),
			"api_configured": d.APIConfigured,
		})
	})

	v1 := r.Group("/api/v1")
	v1.Use(middleware.RateLimit(d.Config.Server.RateLimit, d.Config.Server.RateWindow))
	{
		chat := v1.Group("/chat")
		{
			chat.POST("", d.Chat.Chat)
			chat.GET("", d.Chat.ChatGet)
			chat.GET("/history", d.Chat.History)
			chat.DELETE("/history", d.Chat.ClearHistory)
		}

		segments := v1.Group("/segments")
		{
			segments.GET("", d.Segments.GetSegments)
			segments.GET("/:id", d.Segments.GetSegment)
		}

		stats := v1.Group("/stats")
		{
			stats.GET("/overview", d.Stats.GetOverview)
			stats.GET("/clusters", d.Stats.GetClusters)
			stats.GET("/categories", d.Stats.GetCategories)
			stats.GET("/compare", d.Stats.GetCompare)
		}

		admin := v1.Group("/admin")
		admin.Use(middleware.AdminAuth(d.Config.Auth.JWTSecret))
		{
			admin.POST("/dataset/reload", d.Admin.ReloadDataset)
		}
	}

	return r
}

// corsMiddleware allows the dashboard frontend to call the API from another
// origin.
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}
