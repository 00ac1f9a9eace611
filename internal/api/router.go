package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/rgayashan/FindAMechanic/internal/mw"
)

// RouterConfig tunes the facade router.
type RouterConfig struct {
	RateLimitPerSec float64
	RateLimitBurst  int
	DefaultPageSize int
}

// NewRouter creates and configures a new Gin router.
func NewRouter(directory directoryService, submitter inquirySubmitter, cfg RouterConfig) *gin.Engine {
	r := gin.Default()

	handler := NewHandler(directory, submitter, cfg.DefaultPageSize)
	rateLimiter := mw.RateLimiter(rate.Limit(cfg.RateLimitPerSec), cfg.RateLimitBurst)

	r.GET("/api/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	api.Use(rateLimiter)
	{
		// GET /api/mechanics?page=&pageSize=&search=
		api.GET("/mechanics", handler.GetMechanics)

		// GET /api/mechanics/{id}
		api.GET("/mechanics/:id", handler.GetMechanicDetails)

		// POST /api/mechanics/{id}/inquiries
		api.POST("/mechanics/:id/inquiries", handler.PostInquiry)
	}

	return r
}
