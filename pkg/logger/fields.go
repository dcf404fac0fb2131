package logger

// 统一的日志字段命名常量
// 用于确保整个项目中日志字段命名的一致性，便于日志查询和分析
const (
	// FieldCorrelationID 关联 ID 字段
	FieldCorrelationID = "correlationId"

	// FieldMethod HTTP 方法字段
	FieldMethod = "method"

	// FieldPath 请求路径字段
	FieldPath = "path"

	// FieldStatus HTTP 状态码字段
	FieldStatus = "status"

	// FieldLatencyMs 耗时字段（毫秒）
	FieldLatencyMs = "latencyMs"

	// FieldClientIP 客户端地址字段
	FieldClientIP = "clientIp"

	// FieldNoteID 笔记 ID 字段
	FieldNoteID = "noteId"

	// FieldError 错误信息字段
	FieldError = "error"
)
