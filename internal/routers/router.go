// Package routers 组装 HTTP 路由与中间件
package routers

import (
	"time"

	"github.com/securenotes/secure-notes-service/internal/app"
	"github.com/securenotes/secure-notes-service/internal/middleware"
	"github.com/securenotes/secure-notes-service/internal/routers/api_router"
	"github.com/securenotes/secure-notes-service/pkg/limiter"

	"github.com/gin-gonic/gin"
	ut "github.com/go-playground/universal-translator"
)

var methodLimiters = limiter.NewMethodLimiter().AddBuckets(
	limiter.BucketRule{
		Key:          "/api/v1/notes",
		FillInterval: time.Second,
		Capacity:     100,
		Quantum:      100,
	},
)

// NewRouter 创建公开路由
// 中间件顺序：关联 ID 最先进入，认证只挂在 /api/v1/notes 组上，
// /health 不设认证
func NewRouter(appContainer *app.App, uni *ut.UniversalTranslator) *gin.Engine {

	cfg := appContainer.Config()

	r := gin.New()

	r.Use(middleware.Correlation())
	r.Use(middleware.AccessLogWithLogger(appContainer.Logger()))
	r.Use(middleware.Latency())
	r.Use(middleware.Metrics())
	r.Use(middleware.RecoveryWithLogger(appContainer.Logger()))

	healthHandler := api_router.NewHealthHandler(appContainer)
	r.GET("/health", healthHandler.Check)

	noteHandler := api_router.NewNoteHandler(appContainer)

	api := r.Group("/api/v1/notes")
	{
		api.Use(middleware.RateLimiter(methodLimiters))
		api.Use(middleware.ContextTimeout(cfg.GetContextTimeout()))
		api.Use(middleware.LangWithTranslator(uni))
		api.Use(middleware.APIAuthTokenWithConfig(cfg.Security.ApiAccessToken))

		api.GET("", noteHandler.List)
		api.POST("", noteHandler.Create)
		api.GET("/:id", noteHandler.Get)
		api.PUT("/:id", noteHandler.Update)
		api.DELETE("/:id", noteHandler.Delete)
		api.DELETE("/purge/:id", noteHandler.Purge)
	}

	r.NoRoute(middleware.NoFound())

	return r
}
