package middleware

import (
	"net/http"
	"time"

	"gitee.com/taoJie_1/chatboss/global"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// CorsHandle 跨域中间件, 允许的来源由配置决定
// 嵌入脚本会被任意第三方站点加载, 默认放开全部来源
func CorsHandle() gin.HandlerFunc {
	conf := cors.Config{
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders: []string{"Origin", "Content-Type", "Accept", "Authorization"},
		MaxAge:       12 * time.Hour,
	}

	if len(global.Config.Cors) == 1 && global.Config.Cors[0] == "*" {
		conf.AllowAllOrigins = true
	} else {
		conf.AllowOrigins = global.Config.Cors
	}

	return cors.New(conf)
}

// OptionsMethod 预检请求直接返回, 不进入业务路由
func OptionsMethod(ctx *gin.Context) {
	if ctx.Request.Method == http.MethodOptions {
		ctx.AbortWithStatus(http.StatusNoContent)
	}
}
