package user

import (
	"errors"
	"net/http"

	"gitee.com/taoJie_1/chatboss/dao"
	"gitee.com/taoJie_1/chatboss/global"
	"gitee.com/taoJie_1/chatboss/internal/widget"
	"gitee.com/taoJie_1/chatboss/service"
	"github.com/gin-gonic/gin"
)

type EmbedApi struct{}

// Script 输出自执行挂件脚本
// 所有分支(含404/400/500)都返回合法的脚本体, 嵌入方的script标签永不抛错
func (a *EmbedApi) Script(ctx *gin.Context) {
	id := ctx.Param("id")

	if err := service.Service.UserServiceGroup.Validator.ValidateId(id); err != nil {
		ctx.Data(http.StatusBadRequest, widget.ContentType, []byte(widget.InvalidIdBody))
		return
	}

	script, err := service.Service.UserServiceGroup.EmbedService.Script(ctx.Request.Context(), id)
	if err != nil {
		if errors.Is(err, dao.ErrNotFound) {
			ctx.Data(http.StatusNotFound, widget.ContentType, []byte(widget.NotFoundBody))
			return
		}
		global.Log.Errorf("生成嵌入脚本失败[s6vb3]: %v", err)
		ctx.Data(http.StatusInternalServerError, widget.ContentType, []byte("// Internal error\n"))
		return
	}

	ctx.Header("Cache-Control", widget.CacheControl)
	ctx.Data(http.StatusOK, widget.ContentType, []byte(script))
}
