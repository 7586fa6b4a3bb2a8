package health

import "github.com/gin-gonic/gin"

func RegisterRoutes(router gin.IRoutes) {
	router.GET("/", StatusHandler)
	router.GET("/health", Handler)
}
