package main

import (
	"codeberg.org/devops-project/server/internal/config"
	"github.com/gin-gonic/gin"
)

// holds all dependencies and state for the API server
type Server struct {
	config *config.Config
	router *gin.Engine
}
