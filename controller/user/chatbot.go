package user

import (
	"errors"

	"gitee.com/taoJie_1/chatboss/dao"
	"gitee.com/taoJie_1/chatboss/global"
	"gitee.com/taoJie_1/chatboss/model/common"
	"gitee.com/taoJie_1/chatboss/model/dto"
	"gitee.com/taoJie_1/chatboss/service"
	"gitee.com/taoJie_1/chatboss/service/user"
	"github.com/gin-gonic/gin"
)

type ChatbotApi struct{}

// replyChatbotError 把服务层错误映射到REST状态码
// 校验失败400(不区分到字段), 未知id为404, 其余按存储错误记日志回500
func replyChatbotError(ctx *gin.Context, err error, serverMsg string) {
	switch {
	case errors.Is(err, user.ErrMalformedId):
		common.FailBadRequest(ctx, "Invalid chatbot id")
	case errors.Is(err, user.ErrValidation):
		common.FailBadRequest(ctx, "Missing required fields")
	case errors.Is(err, user.ErrPayload):
		common.FailBadRequest(ctx, "Invalid chatbot payload")
	case errors.Is(err, dao.ErrNotFound):
		common.FailNotFound(ctx, "Chatbot not found")
	default:
		global.Log.Errorf("%s: %v", serverMsg, err)
		common.FailServer(ctx, serverMsg)
	}
}

func (a *ChatbotApi) List(ctx *gin.Context) {
	list, err := service.Service.UserServiceGroup.ChatbotService.List(ctx.Request.Context())
	if err != nil {
		replyChatbotError(ctx, err, "Failed to list chatbots")
		return
	}
	common.Ok(ctx, dto.ChatbotListEnvelope{Chatbots: list})
}

func (a *ChatbotApi) Get(ctx *gin.Context) {
	bot, err := service.Service.UserServiceGroup.ChatbotService.Get(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		replyChatbotError(ctx, err, "Failed to get chatbot")
		return
	}
	common.Ok(ctx, dto.ChatbotEnvelope{Chatbot: bot})
}

func (a *ChatbotApi) Create(ctx *gin.Context) {
	raw, err := ctx.GetRawData()
	if err != nil {
		common.FailBadRequest(ctx, "Invalid chatbot payload")
		return
	}

	bot, err := service.Service.UserServiceGroup.ChatbotService.Create(ctx.Request.Context(), raw)
	if err != nil {
		replyChatbotError(ctx, err, "Failed to create chatbot")
		return
	}
	common.Created(ctx, dto.ChatbotEnvelope{Chatbot: bot})
}

func (a *ChatbotApi) Update(ctx *gin.Context) {
	raw, err := ctx.GetRawData()
	if err != nil {
		common.FailBadRequest(ctx, "Invalid chatbot payload")
		return
	}

	bot, err := service.Service.UserServiceGroup.ChatbotService.Update(ctx.Request.Context(), ctx.Param("id"), raw)
	if err != nil {
		replyChatbotError(ctx, err, "Failed to update chatbot")
		return
	}
	common.Ok(ctx, dto.ChatbotEnvelope{Chatbot: bot})
}

func (a *ChatbotApi) Delete(ctx *gin.Context) {
	if err := service.Service.UserServiceGroup.ChatbotService.Delete(ctx.Request.Context(), ctx.Param("id")); err != nil {
		replyChatbotError(ctx, err, "Failed to delete chatbot")
		return
	}
	common.NoContent(ctx)
}
