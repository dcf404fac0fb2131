package middleware

import (
	"time"

	"github.com/securenotes/secure-notes-service/pkg/app"
	"github.com/securenotes/secure-notes-service/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AccessLogWithLogger 访问日志中间件（使用注入的日志器）
// 每个请求完成后输出一条结构化记录
func AccessLogWithLogger(lg *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {

		path := c.Request.URL.Path

		startTime := time.Now()
		c.Next()

		// 优先使用耗时中间件盖章的时刻，取不到则自己测量
		timeCost := time.Since(startTime)
		if v, ok := c.Get(LatencyKey); ok {
			if d, ok := v.(time.Duration); ok {
				timeCost = d
			}
		}

		lg.Info("request completed",
			zap.String(logger.FieldMethod, c.Request.Method),
			zap.String(logger.FieldPath, path),
			zap.Int(logger.FieldStatus, c.Writer.Status()),
			zap.Float64(logger.FieldLatencyMs, float64(timeCost.Nanoseconds())/1e6),
			zap.String(logger.FieldClientIP, c.ClientIP()),
			zap.String(logger.FieldCorrelationID, c.GetString(app.CorrelationIDKey)),
			zap.String("user-agent", c.Request.UserAgent()),
			zap.String("errors", c.Errors.ByType(gin.ErrorTypePrivate).String()),
		)
	}
}
