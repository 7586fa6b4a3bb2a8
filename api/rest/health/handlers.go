package health

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// StatusHandler godoc
// @Summary Service status
// @Description Reports that the service is up
// @Tags health
// @Produce json
// @Success 200 {object} StatusResponse
// @Router / [get]
func StatusHandler(c *gin.Context) {
	c.JSON(http.StatusOK, StatusResponse{
		Status:  StatusOK,
		Message: RunningMessage,
	})
}

// Handler godoc
// @Summary Health check
// @Description Static liveness probe, checks no dependencies
// @Tags health
// @Produce json
// @Success 200 {object} Response
// @Router /health [get]
func Handler(c *gin.Context) {
	c.JSON(http.StatusOK, Response{
		Status: StatusHealthy,
	})
}
