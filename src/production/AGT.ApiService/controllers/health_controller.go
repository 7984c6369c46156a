package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	interfaces "gitlab.com/unnchai/agro.backend/src/production/AGT.Repository/Interfaces"
)

// HealthController handles health requests
type HealthController struct {
	db interfaces.Pinger
}

// NewHealthController creates a new health controller
func NewHealthController(db interfaces.Pinger) *HealthController {
	return &HealthController{db: db}
}

// RegisterRoutes registers the health routes with Gin
func (c *HealthController) RegisterRoutes(router *gin.Engine) {
	router.GET("/", c.Root)
	router.GET("/health", c.Health)
	router.GET("/health/ready", c.HealthReady)
}

func (c *HealthController) Root(ctx *gin.Context) {
	ctx.String(http.StatusOK, "Agro-tech Backend is running!")
}

func (c *HealthController) Health(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"message": "API is running",
	})
}

func (c *HealthController) HealthReady(ctx *gin.Context) {
	pingCtx, cancel := context.WithTimeout(ctx.Request.Context(), 5*time.Second)
	defer cancel()

	if err := c.db.Ping(pingCtx); err != nil {
		ctx.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "unavailable",
			"db":     false,
		})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"status": "ready",
		"db":     true,
	})
}
