package user

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	"gitee.com/taoJie_1/chatboss/model/dto"
	"gitee.com/taoJie_1/chatboss/model/enum"
	"github.com/google/jsonschema-go/jsonschema"
)

var (
	// ErrValidation 必填标量字段缺失/为空或取值非法, 映射400
	ErrValidation = errors.New("缺少必填字段")
	// ErrPayload 请求体不是合法JSON或不符合schema, 映射400
	ErrPayload = errors.New("请求体不符合schema")
	// ErrMalformedId id参数非法, 映射400
	ErrMalformedId = errors.New("id参数非法")
)

type IValidator interface {
	// ValidateCreatePayload 按schema校验创建请求体
	ValidateCreatePayload(raw []byte) error
	// ValidatePatchPayload 按schema校验部分更新请求体(无必填项)
	ValidatePatchPayload(raw []byte) error
	// ValidatorChatbotInput 校验必填标量字段与语气枚举
	ValidatorChatbotInput(data *dto.ChatbotInput) error
	// ValidateId 校验路径中的id参数
	ValidateId(id string) error
}

type Validator struct{}

var (
	schemaOnce     sync.Once
	createResolved *jsonschema.Resolved
	patchResolved  *jsonschema.Resolved
	schemaErr      error
)

// 集合字段不可再被当作松散JSON直接入库, 统一由显式schema把关
func buildSchemas() {
	str := func() *jsonschema.Schema { return &jsonschema.Schema{Type: "string"} }

	toneEnum := make([]interface{}, 0, len(enum.Tones))
	for _, t := range enum.Tones {
		toneEnum = append(toneEnum, string(t))
	}

	faq := &jsonschema.Schema{
		Type:     "object",
		Required: []string{"question", "answer"},
		Properties: map[string]*jsonschema.Schema{
			"id":       str(),
			"question": str(),
			"answer":   str(),
		},
	}
	reply := &jsonschema.Schema{
		Type:     "object",
		Required: []string{"label", "message"},
		Properties: map[string]*jsonschema.Schema{
			"id":      str(),
			"label":   str(),
			"message": str(),
		},
	}
	step := &jsonschema.Schema{
		Type:     "object",
		Required: []string{"label", "message"},
		Properties: map[string]*jsonschema.Schema{
			"id":      str(),
			"label":   str(),
			"message": str(),
		},
	}
	variant := &jsonschema.Schema{
		Type: "object",
		Properties: map[string]*jsonschema.Schema{
			"id":          str(),
			"title":       str(),
			"description": str(),
			"prompt":      str(),
		},
	}

	properties := func() map[string]*jsonschema.Schema {
		return map[string]*jsonschema.Schema{
			"name":             str(),
			"industry":         str(),
			"tone":             {Type: "string", Enum: toneEnum},
			"primaryColor":     str(),
			"secondaryColor":   str(),
			"greeting":         str(),
			"fallbackResponse": str(),
			"faqs":             {Type: "array", Items: faq},
			"quickReplies":     {Type: "array", Items: reply},
			"steps":            {Type: "array", Items: step},
			"variants":         {Type: "array", Items: variant},
		}
	}

	createSchema := &jsonschema.Schema{
		Type:       "object",
		Required:   []string{"name", "industry", "primaryColor", "secondaryColor", "tone", "greeting", "fallbackResponse"},
		Properties: properties(),
	}
	patchSchema := &jsonschema.Schema{
		Type:       "object",
		Properties: properties(),
	}

	if createResolved, schemaErr = createSchema.Resolve(nil); schemaErr != nil {
		schemaErr = fmt.Errorf("解析创建schema失败[w3hq8]: %w", schemaErr)
		return
	}
	if patchResolved, schemaErr = patchSchema.Resolve(nil); schemaErr != nil {
		schemaErr = fmt.Errorf("解析更新schema失败[r7jm2]: %w", schemaErr)
	}
}

func validatePayload(resolved *jsonschema.Resolved, raw []byte) error {
	var instance interface{}
	if err := json.Unmarshal(raw, &instance); err != nil {
		return fmt.Errorf("%w: %v", ErrPayload, err)
	}
	obj, ok := instance.(map[string]interface{})
	if !ok {
		return fmt.Errorf("%w: 请求体必须是JSON对象", ErrPayload)
	}
	if err := resolved.Validate(obj); err != nil {
		return fmt.Errorf("%w: %v", ErrPayload, err)
	}
	return nil
}

func (v *Validator) ValidateCreatePayload(raw []byte) error {
	schemaOnce.Do(buildSchemas)
	if schemaErr != nil {
		return schemaErr
	}
	return validatePayload(createResolved, raw)
}

func (v *Validator) ValidatePatchPayload(raw []byte) error {
	schemaOnce.Do(buildSchemas)
	if schemaErr != nil {
		return schemaErr
	}
	return validatePayload(patchResolved, raw)
}

func (v *Validator) ValidatorChatbotInput(data *dto.ChatbotInput) error {
	if strings.TrimSpace(data.Name) == "" ||
		strings.TrimSpace(data.Industry) == "" ||
		strings.TrimSpace(data.PrimaryColor) == "" ||
		strings.TrimSpace(data.SecondaryColor) == "" ||
		strings.TrimSpace(string(data.Tone)) == "" ||
		strings.TrimSpace(data.Greeting) == "" ||
		strings.TrimSpace(data.FallbackResponse) == "" {
		return fmt.Errorf("%w[gftsd]", ErrValidation)
	}
	if !data.Tone.Valid() {
		return fmt.Errorf("%w: 非法的tone取值", ErrValidation)
	}
	return nil
}

// id只接受简单字符串(字母数字、横线、下划线), 其余一律视为畸形请求
func (v *Validator) ValidateId(id string) error {
	if id == "" || len(id) > 64 {
		return ErrMalformedId
	}
	for _, r := range id {
		switch {
		case r >= 'a' && r <= 'z':
		case r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
		case r == '-' || r == '_':
		default:
			return ErrMalformedId
		}
	}
	return nil
}
