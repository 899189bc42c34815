package db

import (
	"database/sql/driver"

	"gitee.com/taoJie_1/chatboss/model/enum"
)

// FAQItem 知识库的一条问答
type FAQItem struct {
	Id       string `json:"id"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// QuickReply 快捷回复按钮, 点击后以预设内容代替访客输入
type QuickReply struct {
	Id      string `json:"id"`
	Label   string `json:"label"`
	Message string `json:"message"`
}

// ChatStep 引导步骤, 未命中FAQ时按队列轮转回复
type ChatStep struct {
	Id      string `json:"id"`
	Label   string `json:"label"`
	Message string `json:"message"`
}

// Variant 方案变体; 仅随配置存取, 匹配引擎不消费
type Variant struct {
	Id          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Prompt      string `json:"prompt"`
}

type FAQList []FAQItem

func (l FAQList) Value() (driver.Value, error) { return jsonValue(l) }
func (l *FAQList) Scan(src interface{}) error  { return jsonScan(src, l) }

type QuickReplyList []QuickReply

func (l QuickReplyList) Value() (driver.Value, error) { return jsonValue(l) }
func (l *QuickReplyList) Scan(src interface{}) error  { return jsonScan(src, l) }

type StepList []ChatStep

func (l StepList) Value() (driver.Value, error) { return jsonValue(l) }
func (l *StepList) Scan(src interface{}) error  { return jsonScan(src, l) }

type VariantList []Variant

func (l VariantList) Value() (driver.Value, error) { return jsonValue(l) }
func (l *VariantList) Scan(src interface{}) error  { return jsonScan(src, l) }

// Chatbot 一条挂件配置记录, 记录为唯一的所有权单位
type Chatbot struct {
	Id               string         `db:"id" json:"id"`
	Name             string         `db:"name" json:"name"`
	Industry         string         `db:"industry" json:"industry"`
	Tone             enum.Tone      `db:"tone" json:"tone"`
	PrimaryColor     string         `db:"primary_color" json:"primaryColor"`
	SecondaryColor   string         `db:"secondary_color" json:"secondaryColor"`
	Greeting         string         `db:"greeting" json:"greeting"`
	FallbackResponse string         `db:"fallback_response" json:"fallbackResponse"`
	Faqs             FAQList        `db:"faqs" json:"faqs"`
	QuickReplies     QuickReplyList `db:"quick_replies" json:"quickReplies"`
	Steps            StepList       `db:"steps" json:"steps"`
	Variants         VariantList    `db:"variants" json:"variants"`
	CreatedAt        int64          `db:"created_at" json:"createdAt"`
	UpdatedAt        int64          `db:"updated_at" json:"updatedAt"`
}

func (Chatbot) TableName() string {
	return `chatbots`
}
