package common

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// 对外REST响应的统一出口
// 成功响应直接输出实体, 失败响应固定为 {"error": "..."}

type ErrorBody struct {
	Error string `json:"error"`
}

func Ok(ctx *gin.Context, data interface{}) {
	ctx.JSON(http.StatusOK, data)
}

func Created(ctx *gin.Context, data interface{}) {
	ctx.JSON(http.StatusCreated, data)
}

func NoContent(ctx *gin.Context) {
	ctx.Status(http.StatusNoContent)
}

func FailBadRequest(ctx *gin.Context, message string) {
	ctx.JSON(http.StatusBadRequest, ErrorBody{Error: message})
}

func FailNotFound(ctx *gin.Context, message string) {
	ctx.JSON(http.StatusNotFound, ErrorBody{Error: message})
}

// 存储层意外错误, 只回generic消息, 细节进日志
func FailServer(ctx *gin.Context, message string) {
	ctx.JSON(http.StatusInternalServerError, ErrorBody{Error: message})
}

// 405时必须带Allow头, 列出该路由支持的动词
func FailMethodNotAllowed(ctx *gin.Context, allow string) {
	ctx.Header("Allow", allow)
	ctx.JSON(http.StatusMethodNotAllowed, ErrorBody{Error: "Method Not Allowed"})
}
