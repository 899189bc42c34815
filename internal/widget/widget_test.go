package widget

import (
	"encoding/json"
	"strings"
	"testing"

	"gitee.com/taoJie_1/chatboss/model/db"
	"gitee.com/taoJie_1/chatboss/model/enum"
)

func testBot() *db.Chatbot {
	return &db.Chatbot{
		Id:               "bot-1",
		Name:             "Acme Bot",
		Industry:         "电商",
		Tone:             enum.ToneFriendly,
		PrimaryColor:     "#4f46e5",
		SecondaryColor:   "#eef2ff",
		Greeting:         "你好!",
		FallbackResponse: "请联系人工客服。",
		Faqs:             db.FAQList{{Question: "How do I reset my password", Answer: "Use the reset link."}},
	}
}

func TestBuildScript(t *testing.T) {
	script, err := BuildScript(testBot())
	if err != nil {
		t.Fatal(err)
	}

	// 占位符必须被替换干净
	if strings.Contains(script, configMarker) || strings.Contains(script, stylesMarker) {
		t.Error("脚本中残留未替换的占位符")
	}

	// 配置以JSON字符串字面量注入, 由JSON.parse解析
	if !strings.Contains(script, "JSON.parse(") {
		t.Error("配置应通过JSON.parse注入")
	}
	if !strings.Contains(script, StyleElementId) {
		t.Error("脚本应包含样式防重id")
	}
	if !strings.Contains(script, "Acme Bot") {
		t.Error("脚本应包含挂件名称")
	}
}

func TestBuildScriptEscapesHostileContent(t *testing.T) {
	bot := testBot()
	bot.Faqs = db.FAQList{{
		Question: "evil</script><script>alert(1)</script>",
		Answer:   "</script>  ",
	}}
	bot.Greeting = "\"; document.cookie; var x = \"\u2028\u2029"

	script, err := BuildScript(bot)
	if err != nil {
		t.Fatal(err)
	}

	// encoding/json转义< > &后, 用户内容不可能出现裸的script闭合标签
	if strings.Contains(script, "</script") {
		t.Error("用户内容可提前闭合外层script标签")
	}
	if strings.ContainsRune(script, '\u2028') || strings.ContainsRune(script, '\u2029') {
		t.Error("行分隔符未转义, 会破坏JS字符串字面量")
	}
}

func TestBuildScriptConfigRoundTrip(t *testing.T) {
	bot := testBot()
	script, err := BuildScript(bot)
	if err != nil {
		t.Fatal(err)
	}

	// 从脚本中截取配置字面量, 验证双重编码可还原
	start := strings.Index(script, "JSON.parse(")
	if start < 0 {
		t.Fatal("未找到配置注入点")
	}
	rest := script[start+len("JSON.parse("):]
	end := strings.Index(rest, ");")
	if end < 0 {
		t.Fatal("配置字面量未闭合")
	}

	var inner string
	if err := json.Unmarshal([]byte(rest[:end]), &inner); err != nil {
		t.Fatalf("配置字面量不是合法的JSON字符串: %v", err)
	}
	var got db.Chatbot
	if err := json.Unmarshal([]byte(inner), &got); err != nil {
		t.Fatalf("还原配置失败: %v", err)
	}
	if got.Name != bot.Name || got.PrimaryColor != bot.PrimaryColor || len(got.Faqs) != 1 {
		t.Errorf("还原后的配置不一致: %+v", got)
	}
}

func TestCacheKey(t *testing.T) {
	if got := CacheKey("chatboss:", "bot-1"); got != "chatboss:embed:bot-1" {
		t.Errorf("CacheKey = %q", got)
	}
}
