package middleware

import (
	"crypto/subtle"

	"github.com/securenotes/secure-notes-service/pkg/app"
	"github.com/securenotes/secure-notes-service/pkg/code"

	"github.com/gin-gonic/gin"
)

// APIKeyHeader API 口令请求头名称
const APIKeyHeader = "access_token"

// APIAuthTokenWithConfig API 口令认证中间件（使用注入的口令）
// 缺失、为空或不匹配统一按无效处理，响应体不区分三种情况
func APIAuthTokenWithConfig(accessToken string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetHeader(APIKeyHeader)

		if subtle.ConstantTimeCompare([]byte(token), []byte(accessToken)) != 1 {
			app.NewResponse(c).ToError(code.ErrorInvalidApiKey)
			c.Abort()
			return
		}

		c.Next()
	}
}
