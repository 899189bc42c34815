package user

import (
	"context"
	"strings"
	"sync"
	"time"

	"gitee.com/taoJie_1/chatboss/global"
	"gitee.com/taoJie_1/chatboss/model/db"
	"gitee.com/taoJie_1/chatboss/model/enum"
)

// IMatchService 服务端匹配引擎, 与嵌入脚本内的findAnswer保持同一算法
// 供仪表盘预览对话使用; 挂件侧在浏览器内独立执行同样的逻辑
type IMatchService interface {
	FindAnswer(ctx context.Context, bot *db.Chatbot, sessionId, message string) (string, enum.AnswerSource)
}

type MatchService struct {
	mu sync.Mutex
	// Redis不可用时的进程内轮转计数, 键与Redis侧一致
	counters map[string]int64
}

func NewMatchService() IMatchService {
	return &MatchService{counters: make(map[string]int64)}
}

// Tokenize 把FAQ问题切成小写字母数字段, 其余字符一律视为分隔符
func Tokenize(question string) []string {
	return strings.FieldsFunc(strings.ToLower(question), func(r rune) bool {
		return !((r >= 'a' && r <= 'z') || (r >= '0' && r <= '9'))
	})
}

// 阈值只与问题长度有关: 40字符以下命中2个词即算匹配, 否则需要3个
func matchThreshold(question string) int {
	if len(question) < 40 {
		return 2
	}
	return 3
}

// MatchFaqs 按存储顺序扫描, 返回第一条达到阈值的FAQ答案
// 词条按子串包含计分(非词边界), 与挂件脚本行为一致
func MatchFaqs(faqs db.FAQList, message string) (string, bool) {
	lower := strings.ToLower(message)
	for _, faq := range faqs {
		score := 0
		for _, token := range Tokenize(faq.Question) {
			if strings.Contains(lower, token) {
				score++
			}
		}
		if score >= matchThreshold(faq.Question) {
			return faq.Answer, true
		}
	}
	return "", false
}

// FindAnswer 一定产出回答: FAQ命中 > 步骤轮转 > 兜底回复, 无错误态
func (s *MatchService) FindAnswer(ctx context.Context, bot *db.Chatbot, sessionId, message string) (string, enum.AnswerSource) {
	if answer, ok := MatchFaqs(bot.Faqs, message); ok {
		return answer, enum.SourceFaq
	}

	if total := len(bot.Steps); total > 0 {
		idx := s.nextStepIndex(ctx, bot.Id, sessionId, total)
		return bot.Steps[idx].Message, enum.SourceStep
	}

	return bot.FallbackResponse, enum.SourceFallback
}

// nextStepIndex 每个(挂件,会话)独立轮转
// 优先用Redis计数器, 保证多实例部署下预览轮转一致; 失败降级进程内
func (s *MatchService) nextStepIndex(ctx context.Context, botId, sessionId string, total int) int {
	if sessionId == "" {
		sessionId = "anon"
	}
	key := global.Config.Redis.KeyPrefix + "preview:" + botId + ":" + sessionId

	if global.Redis != nil {
		n, err := global.Redis.Incr(ctx, key).Result()
		if err == nil {
			if n == 1 && global.Config.Widget.SessionTTL > 0 {
				global.Redis.Expire(ctx, key, time.Duration(global.Config.Widget.SessionTTL)*time.Second)
			}
			return int((n - 1) % int64(total))
		}
		global.Log.Warnf("预览会话计数器读写失败, 降级为进程内计数[u8rc5]: %v", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	n := s.counters[key]
	s.counters[key] = n + 1
	return int(n % int64(total))
}
