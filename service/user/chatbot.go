package user

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"gitee.com/taoJie_1/chatboss/dao"
	"gitee.com/taoJie_1/chatboss/model/db"
	"gitee.com/taoJie_1/chatboss/model/dto"
	"github.com/google/uuid"
)

// IChatbotService 挂件配置的增删改查
// 存储一致性完全交给记录存储, 不做事务与乐观并发, 后写覆盖先写
type IChatbotService interface {
	List(ctx context.Context) ([]db.Chatbot, error)
	Get(ctx context.Context, id string) (*db.Chatbot, error)
	Create(ctx context.Context, raw []byte) (*db.Chatbot, error)
	Update(ctx context.Context, id string, raw []byte) (*db.Chatbot, error)
	Delete(ctx context.Context, id string) error
}

type ChatbotService struct {
	validator IValidator
	embed     IEmbedService
}

func NewChatbotService(validator IValidator, embed IEmbedService) IChatbotService {
	return &ChatbotService{validator: validator, embed: embed}
}

func (s *ChatbotService) List(ctx context.Context) ([]db.Chatbot, error) {
	list := make([]db.Chatbot, 0)
	if err := dao.Chatbots.GetAllList(&list); err != nil {
		return nil, fmt.Errorf("查询挂件列表失败[a5fp1]: %w", err)
	}
	return list, nil
}

func (s *ChatbotService) Get(ctx context.Context, id string) (*db.Chatbot, error) {
	if err := s.validator.ValidateId(id); err != nil {
		return nil, err
	}
	return dao.Chatbots.GetById(id)
}

func (s *ChatbotService) Create(ctx context.Context, raw []byte) (*db.Chatbot, error) {
	if err := s.validator.ValidateCreatePayload(raw); err != nil {
		return nil, err
	}

	var input dto.ChatbotInput
	if err := json.Unmarshal(raw, &input); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPayload, err)
	}
	if err := s.validator.ValidatorChatbotInput(&input); err != nil {
		return nil, err
	}

	now := time.Now().Unix()
	bot := &db.Chatbot{
		Id:               uuid.NewString(),
		Name:             input.Name,
		Industry:         input.Industry,
		Tone:             input.Tone,
		PrimaryColor:     input.PrimaryColor,
		SecondaryColor:   input.SecondaryColor,
		Greeting:         input.Greeting,
		FallbackResponse: input.FallbackResponse,
		Faqs:             input.Faqs,
		QuickReplies:     input.QuickReplies,
		Steps:            input.Steps,
		Variants:         input.Variants,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	// 集合字段缺省为空序列而非null
	if bot.Faqs == nil {
		bot.Faqs = db.FAQList{}
	}
	if bot.QuickReplies == nil {
		bot.QuickReplies = db.QuickReplyList{}
	}
	if bot.Steps == nil {
		bot.Steps = db.StepList{}
	}
	if bot.Variants == nil {
		bot.Variants = db.VariantList{}
	}

	if err := dao.Chatbots.Insert(bot); err != nil {
		return nil, err
	}
	return bot, nil
}

func (s *ChatbotService) Update(ctx context.Context, id string, raw []byte) (*db.Chatbot, error) {
	if err := s.validator.ValidateId(id); err != nil {
		return nil, err
	}
	if err := s.validator.ValidatePatchPayload(raw); err != nil {
		return nil, err
	}

	var patch dto.ChatbotPatch
	if err := json.Unmarshal(raw, &patch); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPayload, err)
	}

	data := map[string]interface{}{
		"updated_at": time.Now().Unix(),
	}
	if patch.Name != nil {
		data["name"] = *patch.Name
	}
	if patch.Industry != nil {
		data["industry"] = *patch.Industry
	}
	if patch.Tone != nil {
		data["tone"] = string(*patch.Tone)
	}
	if patch.PrimaryColor != nil {
		data["primary_color"] = *patch.PrimaryColor
	}
	if patch.SecondaryColor != nil {
		data["secondary_color"] = *patch.SecondaryColor
	}
	if patch.Greeting != nil {
		data["greeting"] = *patch.Greeting
	}
	if patch.FallbackResponse != nil {
		data["fallback_response"] = *patch.FallbackResponse
	}
	if patch.Faqs != nil {
		data["faqs"] = *patch.Faqs
	}
	if patch.QuickReplies != nil {
		data["quick_replies"] = *patch.QuickReplies
	}
	if patch.Steps != nil {
		data["steps"] = *patch.Steps
	}
	if patch.Variants != nil {
		data["variants"] = *patch.Variants
	}

	if err := dao.Chatbots.Update(id, data); err != nil {
		return nil, err
	}

	bot, err := dao.Chatbots.GetById(id)
	if err != nil {
		return nil, err
	}

	// 配置已变, 短缓存立刻作废
	s.embed.InvalidateCache(ctx, id)
	return bot, nil
}

func (s *ChatbotService) Delete(ctx context.Context, id string) error {
	if err := s.validator.ValidateId(id); err != nil {
		return err
	}
	if err := dao.Chatbots.Delete(id); err != nil {
		return err
	}
	s.embed.InvalidateCache(ctx, id)
	return nil
}
