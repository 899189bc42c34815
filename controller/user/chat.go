package user

import (
	"gitee.com/taoJie_1/chatboss/model/common"
	"gitee.com/taoJie_1/chatboss/service"
	"github.com/gin-gonic/gin"
)

type ChatApi struct{}

// Preview 仪表盘预览对话: 服务端执行与挂件脚本相同的匹配算法
// 挂件本体在浏览器内离线应答, 此接口不参与线上访客流量
func (a *ChatApi) Preview(ctx *gin.Context) {
	var req common.PreviewChatRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		common.FailBadRequest(ctx, "Invalid chat payload")
		return
	}

	bot, err := service.Service.UserServiceGroup.ChatbotService.Get(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		replyChatbotError(ctx, err, "Failed to load chatbot")
		return
	}

	reply, source := service.Service.UserServiceGroup.MatchService.FindAnswer(ctx.Request.Context(), bot, req.SessionID, req.Message)
	common.Ok(ctx, common.PreviewChatResponse{Reply: reply, Source: string(source)})
}
