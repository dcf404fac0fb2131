package api_router

import (
	"expvar"
	"fmt"
	"net/http"

	"github.com/securenotes/secure-notes-service/pkg/util"

	"github.com/gin-gonic/gin"
)

// Expvar 导出系统运行时指标
// 将 expvar 导出的 JSON 数据写入响应
func Expvar(c *gin.Context) {
	c.Writer.Header().Set("Content-Type", "application/json; charset=utf-8")
	first := true
	report := func(key string, value interface{}) {
		if !first {
			fmt.Fprintf(c.Writer, ",\n")
		}
		first = false
		if str, ok := value.(string); ok {
			fmt.Fprintf(c.Writer, "%q: %q", key, str)
		} else {
			fmt.Fprintf(c.Writer, "%q: %v", key, value)
		}
	}

	fmt.Fprintf(c.Writer, "{\n")
	expvar.Do(func(kv expvar.KeyValue) {
		report(kv.Key, kv.Value)
	})
	fmt.Fprintf(c.Writer, "\n}\n")
}

// Status 导出宿主机运行状态（CPU、内存、系统信息）
func Status(c *gin.Context) {
	c.JSON(http.StatusOK, util.GetSysInfo())
}
