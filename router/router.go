package router

import (
	"strings"

	"gitee.com/taoJie_1/chatboss/controller"
	"gitee.com/taoJie_1/chatboss/middleware"
	"gitee.com/taoJie_1/chatboss/model/common"
	"github.com/gin-gonic/gin"
)

func Start(ginServer *gin.Engine) {
	ginServer.Use(middleware.CorsHandle(), middleware.OptionsMethod) //全局中间件

	// 不支持的动词返回405并带Allow头
	ginServer.HandleMethodNotAllowed = true
	ginServer.NoMethod(methodNotAllowed)

	ginServer.NoRoute(func(ctx *gin.Context) {
		common.FailNotFound(ctx, "Not Found")
	})

	api := controller.Api.UserApiGroup

	// 配置API; 无鉴权, 任何调用方可按id操作任意记录
	ginServer.GET("/chatbots", api.ChatbotApi.List)
	ginServer.POST("/chatbots", api.ChatbotApi.Create)
	ginServer.GET("/chatbots/:id", api.ChatbotApi.Get)
	ginServer.PUT("/chatbots/:id", api.ChatbotApi.Update)
	ginServer.DELETE("/chatbots/:id", api.ChatbotApi.Delete)
	ginServer.POST("/chatbots/:id/chat", api.ChatApi.Preview)

	// 第三方站点加载的挂件脚本
	ginServer.GET("/embed/:id", api.EmbedApi.Script)
}

// methodNotAllowed 按路径推导支持的动词列表
func methodNotAllowed(ctx *gin.Context) {
	path := ctx.Request.URL.Path
	switch {
	case path == "/chatbots" || path == "/chatbots/":
		common.FailMethodNotAllowed(ctx, "GET,POST")
	case strings.HasPrefix(path, "/chatbots/") && strings.HasSuffix(path, "/chat"):
		common.FailMethodNotAllowed(ctx, "POST")
	case strings.HasPrefix(path, "/chatbots/"):
		common.FailMethodNotAllowed(ctx, "GET,PUT,DELETE")
	case strings.HasPrefix(path, "/embed/"):
		common.FailMethodNotAllowed(ctx, "GET")
	default:
		common.FailMethodNotAllowed(ctx, "GET")
	}
}
