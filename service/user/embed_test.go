package user

import (
	"context"
	"errors"
	"strings"
	"testing"

	"gitee.com/taoJie_1/chatboss/dao"
	"gitee.com/taoJie_1/chatboss/global"
	internalredis "gitee.com/taoJie_1/chatboss/internal/redis"
	"gitee.com/taoJie_1/chatboss/model/db"
	"gitee.com/taoJie_1/chatboss/model/enum"
	"github.com/alicebob/miniredis/v2"
	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
)

func setupEmbedTest(t *testing.T) {
	t.Helper()

	global.Config.Database.Type = string(enum.SQLITE)
	global.Config.Widget.EmbedCacheTTL = 60

	conn, err := sqlx.Connect("sqlite3", ":memory:")
	if err != nil {
		t.Fatal(err)
	}
	conn.SetMaxOpenConns(1)
	t.Cleanup(func() { conn.Close() })
	dao.DB = conn
	if err := dao.Chatbots.CreateTable(); err != nil {
		t.Fatal(err)
	}

	mr, err := miniredis.Run()
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(mr.Close)

	client, err := internalredis.NewClient(mr.Addr(), "", 0)
	if err != nil {
		t.Fatal(err)
	}
	global.Redis = client
	t.Cleanup(func() {
		global.Redis = nil
		client.Close()
	})
}

func insertEmbedBot(t *testing.T, id string) {
	t.Helper()
	bot := newTestBot()
	bot.Id = id
	bot.Name = "Acme Bot"
	bot.Tone = enum.ToneFriendly
	bot.QuickReplies = db.QuickReplyList{}
	bot.Variants = db.VariantList{}
	if err := dao.Chatbots.Insert(bot); err != nil {
		t.Fatal(err)
	}
}

func TestEmbedScriptCaching(t *testing.T) {
	setupEmbedTest(t)
	insertEmbedBot(t, "bot-1")

	s := NewEmbedService()
	ctx := context.Background()

	script, err := s.Script(ctx, "bot-1")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(script, "Acme Bot") {
		t.Error("脚本应包含挂件配置")
	}

	// 删除底层记录后缓存仍可命中
	if err := dao.Chatbots.Delete("bot-1"); err != nil {
		t.Fatal(err)
	}
	cached, err := s.Script(ctx, "bot-1")
	if err != nil || cached != script {
		t.Errorf("第二次请求应命中缓存: %v", err)
	}

	// 作废缓存后回源, 记录已删则404
	s.InvalidateCache(ctx, "bot-1")
	if _, err := s.Script(ctx, "bot-1"); !errors.Is(err, dao.ErrNotFound) {
		t.Errorf("缓存作废后应返回ErrNotFound, got %v", err)
	}
}

func TestEmbedScriptWithoutRedis(t *testing.T) {
	setupEmbedTest(t)
	global.Redis = nil
	insertEmbedBot(t, "bot-2")

	s := NewEmbedService()

	// 无Redis时每次都直接生成
	script, err := s.Script(context.Background(), "bot-2")
	if err != nil || script == "" {
		t.Fatalf("降级路径生成脚本失败: %v", err)
	}
	s.InvalidateCache(context.Background(), "bot-2") // 应为无害no-op
}
