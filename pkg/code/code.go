package code

import (
	"fmt"
)

// Code 统一的业务状态码
// 每个 Code 绑定一个 HTTP 状态码，错误响应直接使用该状态码返回
type Code struct {
	// 业务码
	code int
	// HTTP 状态码
	statusCode int
	// 状态
	status bool
	// 消息文本
	Lang lang
	// 数据
	data     interface{}
	haveData bool
	// 错误详细信息
	details     []string
	haveDetails bool
}

var codes = map[int]string{}

// NewError 注册一个错误码，业务码重复时 panic
func NewError(code int, statusCode int, l lang) *Code {
	if _, ok := codes[code]; ok {
		panic(fmt.Sprintf("错误码 %d 已经存在，请更换一个", code))
	}
	codes[code] = l.GetMessage()
	return &Code{code: code, statusCode: statusCode, status: false, Lang: l}
}

// NewSuss 注册一个成功码
func NewSuss(code int, statusCode int, l lang) *Code {
	if _, ok := codes[code]; ok {
		panic(fmt.Sprintf("成功码 %d 已经存在，请更换一个", code))
	}
	codes[code] = l.GetMessage()
	return &Code{code: code, statusCode: statusCode, status: true, Lang: l}
}

// Clone 创建一个新的 Code 副本
// 注册的 Code 是进程级共享的，携带 Data/Details 前必须 Clone
func (e *Code) Clone() *Code {
	return &Code{
		code:       e.code,
		statusCode: e.statusCode,
		status:     e.status,
		Lang:       e.Lang,
	}
}

// Error 实现 error 接口
func (e *Code) Error() string {
	return e.Msg()
}

func (e *Code) Code() int {
	return e.code
}

func (e *Code) StatusCode() int {
	return e.statusCode
}

func (e *Code) Status() bool {
	return e.status
}

func (e *Code) Msg() string {
	return e.Lang.GetMessage()
}

func (e *Code) Data() interface{} {
	return e.data
}

func (e *Code) Details() []string {
	return e.details
}

func (e *Code) HaveData() bool {
	return e.haveData
}

func (e *Code) HaveDetails() bool {
	return e.haveDetails
}

func (e *Code) WithData(data interface{}) *Code {
	c := e.Clone()
	c.haveData = true
	c.data = data
	return c
}

func (e *Code) WithDetails(details ...string) *Code {
	c := e.Clone()
	c.haveDetails = true
	c.details = append([]string{}, details...)
	return c
}

// Is 判断 err 是否为同一业务码
func (e *Code) Is(err error) bool {
	other, ok := err.(*Code)
	return ok && other.code == e.code
}
