package code

import "net/http"

// 成功码
var (
	Success = NewSuss(0, http.StatusOK, lang{en: "Success", zh_cn: "成功"})
)

// 客户端错误码
// 对应关系：403 认证失败 / 404 未找到 / 400 生命周期冲突 / 422 参数校验失败
var (
	// ErrorInvalidApiKey 固定文案，不回显期望密钥
	ErrorInvalidApiKey = NewError(40301, http.StatusForbidden,
		lang{en: "Unauthorized: Invalid API Key", zh_cn: "未授权：API 密钥无效"})

	ErrorNoteNotFound = NewError(40401, http.StatusNotFound,
		lang{en: "Note not found", zh_cn: "笔记不存在"})

	ErrorNotFoundAPI = NewError(40402, http.StatusNotFound,
		lang{en: "Route not found", zh_cn: "接口不存在"})

	// ErrorPurgeConflict 清除操作要求笔记已处于软删除状态
	ErrorPurgeConflict = NewError(40001, http.StatusBadRequest,
		lang{en: "Note must be soft deleted before purge", zh_cn: "清除前必须先软删除该笔记"})

	ErrorInvalidParams = NewError(42201, http.StatusUnprocessableEntity,
		lang{en: "Invalid request parameters", zh_cn: "请求参数错误"})

	ErrorTooManyRequests = NewError(42901, http.StatusTooManyRequests,
		lang{en: "Too many requests", zh_cn: "请求过多"})
)

// 服务端错误码
var (
	ErrorServerInternal = NewError(50000, http.StatusInternalServerError,
		lang{en: "Internal server error", zh_cn: "服务内部错误"})

	ErrorDatabase = NewError(50001, http.StatusInternalServerError,
		lang{en: "Database error", zh_cn: "数据库错误"})
)
