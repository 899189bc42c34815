package dto

import (
	"gitee.com/taoJie_1/chatboss/model/db"
	"gitee.com/taoJie_1/chatboss/model/enum"
)

// ChatbotInput 创建挂件的请求体
// 七个标量字段必填, 集合字段缺省为空序列
type ChatbotInput struct {
	Name             string            `json:"name"`
	Industry         string            `json:"industry"`
	Tone             enum.Tone         `json:"tone"`
	PrimaryColor     string            `json:"primaryColor"`
	SecondaryColor   string            `json:"secondaryColor"`
	Greeting         string            `json:"greeting"`
	FallbackResponse string            `json:"fallbackResponse"`
	Faqs             db.FAQList        `json:"faqs"`
	QuickReplies     db.QuickReplyList `json:"quickReplies"`
	Steps            db.StepList       `json:"steps"`
	Variants         db.VariantList    `json:"variants"`
}

// ChatbotPatch 部分更新的请求体, nil代表字段未出现
type ChatbotPatch struct {
	Name             *string            `json:"name"`
	Industry         *string            `json:"industry"`
	Tone             *enum.Tone         `json:"tone"`
	PrimaryColor     *string            `json:"primaryColor"`
	SecondaryColor   *string            `json:"secondaryColor"`
	Greeting         *string            `json:"greeting"`
	FallbackResponse *string            `json:"fallbackResponse"`
	Faqs             *db.FAQList        `json:"faqs"`
	QuickReplies     *db.QuickReplyList `json:"quickReplies"`
	Steps            *db.StepList       `json:"steps"`
	Variants         *db.VariantList    `json:"variants"`
}

// ChatbotEnvelope 单个记录的响应包装
type ChatbotEnvelope struct {
	Chatbot *db.Chatbot `json:"chatbot"`
}

// ChatbotListEnvelope 列表响应包装
type ChatbotListEnvelope struct {
	Chatbots []db.Chatbot `json:"chatbots"`
}
