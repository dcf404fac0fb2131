package middleware

import (
	"context"

	"github.com/securenotes/secure-notes-service/pkg/app"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CorrelationIDHeader 关联 ID 请求头名称
const CorrelationIDHeader = "X-Correlation-ID"

type correlationCtxKey struct{}

// Correlation 请求关联中间件
// 功能：
// 1. 从请求头获取或生成唯一的关联 ID
// 2. 将关联 ID 注入到 gin.Context 和 request.Context
// 3. 在响应头中原样返回关联 ID
func Correlation() gin.HandlerFunc {
	return func(c *gin.Context) {
		correlationID := c.GetHeader(CorrelationIDHeader)
		if correlationID == "" {
			correlationID = uuid.NewString()
		}

		c.Set(app.CorrelationIDKey, correlationID)

		ctx := context.WithValue(c.Request.Context(), correlationCtxKey{}, correlationID)
		c.Request = c.Request.WithContext(ctx)

		// 响应头必须在任何 handler 写出之前设置
		c.Header(CorrelationIDHeader, correlationID)

		c.Next()
	}
}

// GetCorrelationID 从 context.Context 获取关联 ID
func GetCorrelationID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if id, ok := ctx.Value(correlationCtxKey{}).(string); ok {
		return id
	}
	return ""
}
