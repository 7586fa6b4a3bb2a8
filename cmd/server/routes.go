package main

import (
	"codeberg.org/devops-project/server/api/rest/docs"
	"codeberg.org/devops-project/server/api/rest/health"
	"github.com/gin-gonic/gin"
)

// sets up all API routes
func RegisterRoutes(router *gin.Engine, server *Server) {
	health.RegisterRoutes(router)

	if server.config.DocsEnabled {
		docs.RegisterRoutes(router)
	}
}
