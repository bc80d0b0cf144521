package app

import (
	"net/http"

	"github.com/noteful-labs/noteful-service/pkg/code"

	"github.com/gin-gonic/gin"
)

// VersionInfo version information // 版本信息
type VersionInfo struct {
	Version   string `json:"version"`
	GitTag    string `json:"gitTag"`
	BuildTime string `json:"buildTime"`
}

type Response struct {
	Ctx *gin.Context
}

// ErrRes is the error response body: message plus optional field location
// ErrRes 错误响应体：message 加可选的字段位置 location
type ErrRes struct {
	Message  string `json:"message"`
	Location string `json:"location,omitempty"`
}

func NewResponse(ctx *gin.Context) *Response {
	return &Response{
		Ctx: ctx,
	}
}

// GetRequestIP gets the request IP
// GetRequestIP 获取ip
func GetRequestIP(c *gin.Context) string {
	reqIP := c.ClientIP()
	if reqIP == "::1" {
		reqIP = "127.0.0.1"
	}
	return reqIP
}

// ToResponse outputs the payload as-is with 200
// ToResponse 以 200 原样输出数据
func (r *Response) ToResponse(data interface{}) {
	r.send(http.StatusOK, data)
}

// ToCreatedResponse outputs 201 with a Location header pointing at the new resource
// ToCreatedResponse 输出 201，并通过 Location 头指向新资源
func (r *Response) ToCreatedResponse(location string, data interface{}) {
	r.Ctx.Header("Location", location)
	r.send(http.StatusCreated, data)
}

// ToNoContent outputs 204 with an empty body
// ToNoContent 输出 204 空响应体
func (r *Response) ToNoContent() {
	r.Ctx.Status(http.StatusNoContent)
}

// ToErrorResponse outputs the error with its HTTP status and {message, location} body
// ToErrorResponse 按错误码的 HTTP 状态输出 {message, location} 响应体
func (r *Response) ToErrorResponse(codeObj *code.Code) {
	r.Ctx.Set("status_code", codeObj.StatusCode())

	r.send(codeObj.StatusCode(), ErrRes{
		Message:  codeObj.Msg(),
		Location: codeObj.Location(),
	})
}

func (r *Response) send(statusCode int, content interface{}) {
	r.Ctx.JSON(statusCode, content)
}
