// README: HTTP router registration.
package http

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"wanderwise/internal/http/handlers"
	"wanderwise/internal/http/middleware"
	"wanderwise/internal/modules/planner"
	"wanderwise/internal/modules/traffic"
)

type RouterDeps struct {
	Planner *planner.Service
	// Traffic may be nil when no maps API key is configured; the estimate
	// route is simply not registered.
	Traffic   *traffic.Service
	ImagesDir string
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()
	r.Use(middleware.Logging())
	r.Use(middleware.Recovery())
	r.Use(cors.Default())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy", "service": "travel-planner"})
	})

	tripHandler := handlers.NewTripHandler(deps.Planner)
	r.POST("/api/trips/plan", tripHandler.PlanTrip)
	r.POST("/api/trips/customize", tripHandler.CustomizeTrip)

	if deps.Traffic != nil {
		trafficHandler := handlers.NewTrafficHandler(deps.Traffic)
		r.POST("/api/traffic/estimate", trafficHandler.Estimate)
	}

	imageHandler := handlers.NewImageHandler(deps.ImagesDir)
	r.GET("/trip-images/:filename", imageHandler.Get)

	return r
}
