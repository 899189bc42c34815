package user

import (
	"errors"
	"strings"
	"testing"

	"gitee.com/taoJie_1/chatboss/model/dto"
	"gitee.com/taoJie_1/chatboss/model/enum"
)

const validCreateBody = `{
	"name": "Acme Bot",
	"industry": "电商",
	"tone": "friendly",
	"primaryColor": "#4f46e5",
	"secondaryColor": "#eef2ff",
	"greeting": "你好!",
	"fallbackResponse": "我不太确定, 请联系人工客服。",
	"faqs": [{"question": "How do I reset my password", "answer": "Use the reset link."}],
	"quickReplies": [{"label": "价格", "message": "价格是多少"}],
	"steps": [{"label": "a", "message": "A"}]
}`

func TestValidateCreatePayload(t *testing.T) {
	v := &Validator{}

	if err := v.ValidateCreatePayload([]byte(validCreateBody)); err != nil {
		t.Fatalf("合法请求体不应报错: %v", err)
	}

	tests := []struct {
		name string
		body string
	}{
		{"非JSON", `{not json`},
		{"非对象", `[1,2,3]`},
		{"缺少name", `{"industry":"x","tone":"friendly","primaryColor":"#000","secondaryColor":"#fff","greeting":"hi","fallbackResponse":"f"}`},
		{"非法tone", strings.Replace(validCreateBody, `"friendly"`, `"sarcastic"`, 1)},
		{"faqs类型错误", strings.Replace(validCreateBody, `[{"question": "How do I reset my password", "answer": "Use the reset link."}]`, `"not-an-array"`, 1)},
		{"faq缺少answer", strings.Replace(validCreateBody, `, "answer": "Use the reset link."`, ``, 1)},
		{"name类型错误", strings.Replace(validCreateBody, `"Acme Bot"`, `123`, 1)},
	}

	for _, tt := range tests {
		err := v.ValidateCreatePayload([]byte(tt.body))
		if err == nil {
			t.Errorf("%s: 期望校验失败", tt.name)
			continue
		}
		if !errors.Is(err, ErrPayload) {
			t.Errorf("%s: 错误应归入ErrPayload, got %v", tt.name, err)
		}
	}
}

func TestValidatePatchPayload(t *testing.T) {
	v := &Validator{}

	// 部分更新无必填项, 空对象与单字段都合法
	for _, body := range []string{`{}`, `{"name":"新名字"}`, `{"steps":[]}`} {
		if err := v.ValidatePatchPayload([]byte(body)); err != nil {
			t.Errorf("合法patch %q 不应报错: %v", body, err)
		}
	}

	// 字段类型仍受schema约束
	if err := v.ValidatePatchPayload([]byte(`{"faqs": {"question":"q"}}`)); !errors.Is(err, ErrPayload) {
		t.Errorf("类型错误的patch应归入ErrPayload, got %v", err)
	}
	if err := v.ValidatePatchPayload([]byte(`{"tone":"angry"}`)); !errors.Is(err, ErrPayload) {
		t.Errorf("非法tone的patch应归入ErrPayload, got %v", err)
	}
}

func TestValidatorChatbotInput(t *testing.T) {
	v := &Validator{}

	valid := &dto.ChatbotInput{
		Name:             "Acme Bot",
		Industry:         "电商",
		Tone:             enum.ToneFriendly,
		PrimaryColor:     "#4f46e5",
		SecondaryColor:   "#eef2ff",
		Greeting:         "你好",
		FallbackResponse: "兜底",
	}
	if err := v.ValidatorChatbotInput(valid); err != nil {
		t.Fatalf("合法输入不应报错: %v", err)
	}

	blank := *valid
	blank.Greeting = "   "
	if err := v.ValidatorChatbotInput(&blank); !errors.Is(err, ErrValidation) {
		t.Errorf("纯空白字段应归入ErrValidation, got %v", err)
	}

	badTone := *valid
	badTone.Tone = enum.Tone("sarcastic")
	if err := v.ValidatorChatbotInput(&badTone); !errors.Is(err, ErrValidation) {
		t.Errorf("非法tone应归入ErrValidation, got %v", err)
	}
}

func TestValidateId(t *testing.T) {
	v := &Validator{}

	for _, id := range []string{"abc", "A-1_b", "550e8400-e29b-41d4-a716-446655440000"} {
		if err := v.ValidateId(id); err != nil {
			t.Errorf("合法id %q 不应报错: %v", id, err)
		}
	}

	bad := []string{"", "a b", "a/b", "中文id", "a;drop table", strings.Repeat("x", 65)}
	for _, id := range bad {
		if err := v.ValidateId(id); !errors.Is(err, ErrMalformedId) {
			t.Errorf("非法id %q 应归入ErrMalformedId, got %v", id, err)
		}
	}
}
