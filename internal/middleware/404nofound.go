package middleware

import (
	"github.com/securenotes/secure-notes-service/pkg/app"
	"github.com/securenotes/secure-notes-service/pkg/code"

	"github.com/gin-gonic/gin"
)

// NoFound 404 handler
// NoFound 404 处理
func NoFound() gin.HandlerFunc {
	return func(c *gin.Context) {
		app.NewResponse(c).ToError(code.ErrorNotFoundAPI)
		c.Abort()
	}
}
