package middleware

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
)

// ProcessTimeHeader 处理耗时响应头名称
const ProcessTimeHeader = "X-Process-Time"

// LatencyKey gin.Context 中存储请求处理耗时的键
const LatencyKey = "latency"

// timedWriter 在首次写出响应前盖上耗时头
type timedWriter struct {
	gin.ResponseWriter
	c       *gin.Context
	start   time.Time
	stamped bool
}

func (w *timedWriter) stamp() {
	if w.stamped {
		return
	}
	w.stamped = true
	cost := time.Since(w.start)
	w.Header().Set(ProcessTimeHeader, fmt.Sprintf("%.4fs", cost.Seconds()))
	w.c.Set(LatencyKey, cost)
}

func (w *timedWriter) WriteHeader(statusCode int) {
	w.stamp()
	w.ResponseWriter.WriteHeader(statusCode)
}

func (w *timedWriter) Write(b []byte) (int, error) {
	w.stamp()
	return w.ResponseWriter.Write(b)
}

func (w *timedWriter) WriteString(s string) (int, error) {
	w.stamp()
	return w.ResponseWriter.WriteString(s)
}

// Latency 请求耗时中间件
// 每个响应都带 X-Process-Time 头，值为秒并保留四位小数，如 "0.0042s"。
// 耗时同时写入 gin.Context 供访问日志使用。
func Latency() gin.HandlerFunc {
	return func(c *gin.Context) {
		tw := &timedWriter{
			ResponseWriter: c.Writer,
			c:              c,
			start:          time.Now(),
		}
		c.Writer = tw

		c.Next()

		// 空响应体的请求也要有耗时记录
		tw.stamp()
	}
}
