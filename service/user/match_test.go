package user

import (
	"context"
	"testing"

	"gitee.com/taoJie_1/chatboss/global"
	internalredis "gitee.com/taoJie_1/chatboss/internal/redis"
	"gitee.com/taoJie_1/chatboss/model/db"
	"gitee.com/taoJie_1/chatboss/model/enum"
	"github.com/alicebob/miniredis/v2"
	"github.com/sirupsen/logrus"
)

func init() {
	global.Log = logrus.New()
	global.Config.Redis.KeyPrefix = "chatboss:"
	global.Config.Widget.SessionTTL = 1800
}

func TestTokenize(t *testing.T) {
	tests := []struct {
		question string
		want     []string
	}{
		{"How do I reset my password?", []string{"how", "do", "i", "reset", "my", "password"}},
		{"  Multiple   spaces\tand-punct!!", []string{"multiple", "spaces", "and", "punct"}},
		{"价格是多少", nil},
		{"", nil},
		{"A1b2C3", []string{"a1b2c3"}},
	}

	for _, tt := range tests {
		got := Tokenize(tt.question)
		if len(got) != len(tt.want) {
			t.Errorf("Tokenize(%q) = %v, 期望 %v", tt.question, got, tt.want)
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("Tokenize(%q)[%d] = %q, 期望 %q", tt.question, i, got[i], tt.want[i])
			}
		}
	}
}

func TestMatchThreshold(t *testing.T) {
	if got := matchThreshold("How do I reset my password"); got != 2 {
		t.Errorf("短问题阈值 = %d, 期望 2", got)
	}
	long := "What is your refund policy for annual enterprise subscriptions"
	if got := matchThreshold(long); got != 3 {
		t.Errorf("长问题阈值 = %d, 期望 3", got)
	}
}

func TestMatchFaqs(t *testing.T) {
	faqs := db.FAQList{
		{Question: "How do I reset my password", Answer: "Use the reset link."},
		{Question: "How do I reset my account password today", Answer: "second"},
	}

	// 问题26字符, 阈值2; 消息含"reset"和"password"两个词
	answer, ok := MatchFaqs(faqs, "I forgot my password, how do I reset it")
	if !ok || answer != "Use the reset link." {
		t.Fatalf("MatchFaqs = (%q, %v), 期望命中第一条", answer, ok)
	}

	// 仅命中一个词, 不达阈值
	if _, ok := MatchFaqs(faqs, "password"); ok {
		t.Error("单词命中不应达到阈值")
	}

	// 子串包含计分: "do"作为"down"的子串也计分
	sub := db.FAQList{{Question: "do it now", Answer: "yes"}}
	if answer, ok := MatchFaqs(sub, "download nowhere"); !ok || answer != "yes" {
		t.Errorf("子串计分失败: (%q, %v)", answer, ok)
	}

	if _, ok := MatchFaqs(nil, "anything"); ok {
		t.Error("空FAQ列表不应命中")
	}
}

func TestMatchFaqsFirstWins(t *testing.T) {
	faqs := db.FAQList{
		{Question: "reset my password", Answer: "first"},
		{Question: "reset my password", Answer: "second"},
	}
	answer, ok := MatchFaqs(faqs, "please reset my password")
	if !ok || answer != "first" {
		t.Errorf("按存储顺序应返回第一条, got (%q, %v)", answer, ok)
	}
}

func newTestBot() *db.Chatbot {
	return &db.Chatbot{
		Id:               "bot-1",
		FallbackResponse: "I'm not sure, please contact support.",
		Faqs: db.FAQList{
			{Question: "How do I reset my password", Answer: "Use the reset link."},
		},
		Steps: db.StepList{
			{Label: "a", Message: "A"},
			{Label: "b", Message: "B"},
			{Label: "c", Message: "C"},
		},
	}
}

func TestFindAnswerFaqHit(t *testing.T) {
	global.Redis = nil
	s := NewMatchService()

	answer, source := s.FindAnswer(context.Background(), newTestBot(), "s1", "how to reset password")
	if source != enum.SourceFaq || answer != "Use the reset link." {
		t.Errorf("FindAnswer = (%q, %s), 期望FAQ命中", answer, source)
	}
}

func TestFindAnswerStepRotation(t *testing.T) {
	global.Redis = nil
	s := NewMatchService()
	bot := newTestBot()

	want := []string{"A", "B", "C", "A"}
	for i, w := range want {
		answer, source := s.FindAnswer(context.Background(), bot, "s1", "随便说点什么")
		if source != enum.SourceStep || answer != w {
			t.Fatalf("第%d次轮转 = (%q, %s), 期望 %q", i+1, answer, source, w)
		}
	}

	// 不同会话独立轮转
	if answer, _ := s.FindAnswer(context.Background(), bot, "s2", "随便"); answer != "A" {
		t.Errorf("新会话应从头轮转, got %q", answer)
	}
}

func TestFindAnswerFallback(t *testing.T) {
	global.Redis = nil
	s := NewMatchService()
	bot := newTestBot()
	bot.Steps = nil

	answer, source := s.FindAnswer(context.Background(), bot, "", "未命中的消息")
	if source != enum.SourceFallback || answer != bot.FallbackResponse {
		t.Errorf("FindAnswer = (%q, %s), 期望原样返回兜底回复", answer, source)
	}
}

func TestFindAnswerStepRotationRedis(t *testing.T) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatal(err)
	}
	defer mr.Close()

	client, err := internalredis.NewClient(mr.Addr(), "", 0)
	if err != nil {
		t.Fatal(err)
	}
	global.Redis = client
	defer func() {
		global.Redis = nil
		client.Close()
	}()

	s := NewMatchService()
	bot := newTestBot()

	want := []string{"A", "B", "C", "A"}
	for i, w := range want {
		answer, _ := s.FindAnswer(context.Background(), bot, "s1", "无匹配")
		if answer != w {
			t.Fatalf("Redis轮转第%d次 = %q, 期望 %q", i+1, answer, w)
		}
	}

	// 计数器应带TTL
	key := global.Config.Redis.KeyPrefix + "preview:bot-1:s1"
	if mr.TTL(key) <= 0 {
		t.Error("轮转计数器未设置过期时间")
	}
}
