package docs

import (
	"net/http"

	_ "codeberg.org/devops-project/server/docs" // registers the swagger instance
	"codeberg.org/devops-project/server/internal/errors"
	"github.com/gin-gonic/gin"
	"github.com/swaggo/swag"
)

// serves the generated OpenAPI document
func Handler(c *gin.Context) {
	doc, err := swag.ReadDoc()
	if err != nil {
		errors.InternalError(c, "failed to read API docs", err)
		return
	}

	c.Data(http.StatusOK, "application/json; charset=utf-8", []byte(doc))
}

func RegisterRoutes(router gin.IRoutes) {
	router.GET("/swagger/doc.json", Handler)
}
