package middleware

import (
	"fmt"
	"runtime/debug"

	"github.com/securenotes/secure-notes-service/pkg/app"
	"github.com/securenotes/secure-notes-service/pkg/code"
	"github.com/securenotes/secure-notes-service/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RecoveryWithLogger 创建带日志器的 Recovery 中间件（支持依赖注入）
func RecoveryWithLogger(lg *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		query := c.Request.URL.RawQuery
		defer func() {
			if err := recover(); err != nil {
				switch e := err.(type) {
				case error:
					lg.Error("Recovered from panic",
						zap.Int(logger.FieldStatus, c.Writer.Status()),
						zap.String("router", path),
						zap.String(logger.FieldMethod, c.Request.Method),
						zap.String("query", query),
						zap.String(logger.FieldClientIP, c.ClientIP()),
						zap.String(logger.FieldCorrelationID, c.GetString(app.CorrelationIDKey)),
						zap.String("user-agent", c.Request.UserAgent()),
						zap.Error(e),
						zap.String("stack", string(debug.Stack())),
					)
				default:
					// 非 error 类型的 panic
					lg.Error("Recovered from unknown panic",
						zap.Int(logger.FieldStatus, c.Writer.Status()),
						zap.String("router", path),
						zap.String(logger.FieldMethod, c.Request.Method),
						zap.String("query", query),
						zap.String(logger.FieldClientIP, c.ClientIP()),
						zap.String(logger.FieldCorrelationID, c.GetString(app.CorrelationIDKey)),
						zap.String("user-agent", c.Request.UserAgent()),
						zap.String("panic_value", fmt.Sprintf("%v", err)),
						zap.String("stack", string(debug.Stack())),
					)
				}

				// 统一错误响应，不向客户端泄露内部细节
				app.NewResponse(c).ToError(code.ErrorServerInternal)
				c.Abort()
			}
		}()

		c.Next()
	}
}
