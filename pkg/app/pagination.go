package app

import (
	"github.com/securenotes/secure-notes-service/pkg/convert"

	"github.com/gin-gonic/gin"
)

// PaginationConfig 分页配置
type PaginationConfig struct {
	DefaultLimit int
	MaxLimit     int
}

// DefaultPaginationConfig 默认分页配置
var DefaultPaginationConfig = PaginationConfig{
	DefaultLimit: 10,
	MaxLimit:     100,
}

// GetSkip 获取列表偏移量，负值归零
func GetSkip(c *gin.Context) int {
	var skip int

	if s, exist := c.GetQuery("skip"); exist {
		skip = convert.StrTo(s).MustInt()
	}

	if skip < 0 {
		return 0
	}
	return skip
}

// GetLimitWithConfig gets the page size (using injected configuration)
// GetLimitWithConfig 获取分页大小（使用注入的配置）
func GetLimitWithConfig(c *gin.Context, cfg PaginationConfig) int {
	var limit int

	if s, exist := c.GetQuery("limit"); exist {
		limit = convert.StrTo(s).MustInt()
	}

	if limit <= 0 {
		return cfg.DefaultLimit
	}
	if limit > cfg.MaxLimit {
		return cfg.MaxLimit
	}
	return limit
}

// GetLimit 获取分页大小（使用默认配置）
func GetLimit(c *gin.Context) int {
	return GetLimitWithConfig(c, DefaultPaginationConfig)
}
