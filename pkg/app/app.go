package app

import (
	"github.com/securenotes/secure-notes-service/pkg/code"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Ctx *gin.Context
}

// ErrRes is the unified error body: code/message plus optional details,
// carrying the request correlation ID so clients can report it.
// ErrRes 是统一的错误响应结构：code/message 加可选 details，
// 携带请求关联 ID 便于客户端上报。
type ErrRes struct {
	Code          int      `json:"code"`
	Message       string   `json:"message"`
	Details       []string `json:"details,omitempty"`
	CorrelationID string   `json:"correlationId,omitempty"`
}

// MessageRes 操作结果消息响应
type MessageRes struct {
	Message string `json:"message"`
}

func NewResponse(ctx *gin.Context) *Response {
	return &Response{
		Ctx: ctx,
	}
}

// GetRequestIP 获取请求 IP
func GetRequestIP(c *gin.Context) string {
	reqIP := c.ClientIP()
	if reqIP == "::1" {
		reqIP = "127.0.0.1"
	}
	return reqIP
}

// ToData outputs a success payload as the bare response body.
// Success bodies are the resource itself, not an envelope.
// ToData 直接以资源本身作为成功响应体，不做信封包装。
func (r *Response) ToData(data interface{}) {
	r.Ctx.JSON(code.Success.StatusCode(), data)
}

// ToMessage 输出 {"message": ...} 形式的成功响应
func (r *Response) ToMessage(message string) {
	r.Ctx.JSON(code.Success.StatusCode(), MessageRes{Message: message})
}

// ToError outputs an error response with the real HTTP status bound to the code.
// ToError 按业务码绑定的真实 HTTP 状态码输出错误响应。
func (r *Response) ToError(codeObj *code.Code) {
	r.Ctx.Set("status_code", codeObj.StatusCode())

	content := ErrRes{
		Code:          codeObj.Code(),
		Message:       codeObj.Msg(),
		CorrelationID: r.Ctx.GetString(CorrelationIDKey),
	}
	if codeObj.HaveDetails() {
		content.Details = codeObj.Details()
	}

	r.Ctx.JSON(codeObj.StatusCode(), content)
}

// CorrelationIDKey gin.Context 中存储关联 ID 的键，由关联中间件写入
const CorrelationIDKey = "correlation_id"
