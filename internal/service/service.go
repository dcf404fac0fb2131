// Package service 实现业务逻辑层
package service

// ServiceConfig Service 层配置
type ServiceConfig struct {
	App AppServiceConfig
}

// AppServiceConfig 应用相关配置
type AppServiceConfig struct {
	// SoftDeleteRetentionTime 软删除笔记保留时间，到期由定时任务清除
	SoftDeleteRetentionTime string
}
