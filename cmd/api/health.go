package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HealthResponse represents the response for the root health endpoint
type HealthResponse struct {
	Status  string `json:"status" example:"ok"`
	Message string `json:"message" example:"air quality prediction API is running"`
}

// PingResponse represents the response for the ping endpoint
type PingResponse struct {
	Message string `json:"message" example:"pong"` // Response message
}

// handleHealth godoc
// @Summary Health check
// @Description Check if the API is running. A reachable process always has a loaded model: startup aborts before the listener opens when the artifact fails to load.
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Router / [get]
func (app *App) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status:  "ok",
		Message: "air quality prediction API is running",
	})
}

// handlePing godoc
// @Summary Ping health check
// @Description Check if the API is running
// @Tags health
// @Produce json
// @Success 200 {object} PingResponse
// @Router /ping [get]
func (app *App) handlePing(c *gin.Context) {
	c.JSON(http.StatusOK, PingResponse{
		Message: "pong",
	})
}
