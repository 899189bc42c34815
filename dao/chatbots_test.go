package dao

import (
	"errors"
	"testing"

	"gitee.com/taoJie_1/chatboss/global"
	"gitee.com/taoJie_1/chatboss/model/db"
	"gitee.com/taoJie_1/chatboss/model/enum"
	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
	"github.com/sirupsen/logrus"
)

func setupTestDb(t *testing.T) {
	t.Helper()

	global.Log = logrus.New()
	global.Config.Database.Type = string(enum.SQLITE)

	conn, err := sqlx.Connect("sqlite3", ":memory:")
	if err != nil {
		t.Fatal(err)
	}
	// 内存库随连接销毁, 锁定单连接
	conn.SetMaxOpenConns(1)
	t.Cleanup(func() { conn.Close() })

	DB = conn
	if err := Chatbots.CreateTable(); err != nil {
		t.Fatal(err)
	}
}

func sampleBot(id string) *db.Chatbot {
	return &db.Chatbot{
		Id:               id,
		Name:             "Acme Bot",
		Industry:         "电商",
		Tone:             enum.ToneFriendly,
		PrimaryColor:     "#4f46e5",
		SecondaryColor:   "#eef2ff",
		Greeting:         "你好!",
		FallbackResponse: "请联系人工客服。",
		Faqs:             db.FAQList{{Id: "f1", Question: "How do I reset my password", Answer: "Use the reset link."}},
		QuickReplies:     db.QuickReplyList{},
		Steps:            db.StepList{{Id: "s1", Label: "a", Message: "A"}},
		Variants:         db.VariantList{},
		CreatedAt:        1700000000,
		UpdatedAt:        1700000000,
	}
}

func TestInsertAndGetById(t *testing.T) {
	setupTestDb(t)

	if err := Chatbots.Insert(sampleBot("bot-1")); err != nil {
		t.Fatal(err)
	}

	got, err := Chatbots.GetById("bot-1")
	if err != nil {
		t.Fatal(err)
	}
	if got.Name != "Acme Bot" || got.Tone != enum.ToneFriendly {
		t.Errorf("读回的标量字段不一致: %+v", got)
	}
	if len(got.Faqs) != 1 || got.Faqs[0].Question != "How do I reset my password" {
		t.Errorf("读回的faqs不一致: %+v", got.Faqs)
	}
	if got.QuickReplies == nil || len(got.QuickReplies) != 0 {
		t.Errorf("空集合应读回空序列, got %#v", got.QuickReplies)
	}
}

func TestGetByIdNotFound(t *testing.T) {
	setupTestDb(t)

	if _, err := Chatbots.GetById("missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("期望ErrNotFound, got %v", err)
	}
}

func TestGetAllListOrder(t *testing.T) {
	setupTestDb(t)

	older := sampleBot("bot-old")
	older.CreatedAt = 1700000000
	newer := sampleBot("bot-new")
	newer.CreatedAt = 1700009999

	if err := Chatbots.Insert(older); err != nil {
		t.Fatal(err)
	}
	if err := Chatbots.Insert(newer); err != nil {
		t.Fatal(err)
	}

	var list []db.Chatbot
	if err := Chatbots.GetAllList(&list); err != nil {
		t.Fatal(err)
	}
	if len(list) != 2 || list[0].Id != "bot-new" || list[1].Id != "bot-old" {
		t.Errorf("列表应按创建时间倒序: %+v", list)
	}
}

func TestUpdateMerge(t *testing.T) {
	setupTestDb(t)

	if err := Chatbots.Insert(sampleBot("bot-1")); err != nil {
		t.Fatal(err)
	}

	err := Chatbots.Update("bot-1", map[string]interface{}{
		"name":       "新名字",
		"steps":      db.StepList{{Label: "x", Message: "X"}, {Label: "y", Message: "Y"}},
		"updated_at": int64(1700001234),
	})
	if err != nil {
		t.Fatal(err)
	}

	got, err := Chatbots.GetById("bot-1")
	if err != nil {
		t.Fatal(err)
	}
	if got.Name != "新名字" {
		t.Errorf("name未更新: %q", got.Name)
	}
	if len(got.Steps) != 2 {
		t.Errorf("steps未整体替换: %+v", got.Steps)
	}
	if got.UpdatedAt != 1700001234 {
		t.Errorf("updated_at未推进: %d", got.UpdatedAt)
	}
	// 未出现的字段保持原值
	if got.Industry != "电商" || got.Greeting != "你好!" || len(got.Faqs) != 1 {
		t.Errorf("未更新字段被改动: %+v", got)
	}
	if got.CreatedAt != 1700000000 {
		t.Errorf("created_at不应变化: %d", got.CreatedAt)
	}
}

func TestUpdateNotFound(t *testing.T) {
	setupTestDb(t)

	err := Chatbots.Update("missing", map[string]interface{}{"name": "x"})
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("期望ErrNotFound, got %v", err)
	}
}

func TestDelete(t *testing.T) {
	setupTestDb(t)

	if err := Chatbots.Insert(sampleBot("bot-1")); err != nil {
		t.Fatal(err)
	}
	if err := Chatbots.Delete("bot-1"); err != nil {
		t.Fatal(err)
	}
	if _, err := Chatbots.GetById("bot-1"); !errors.Is(err, ErrNotFound) {
		t.Errorf("删除后应查不到: %v", err)
	}
	// 重复删除
	if err := Chatbots.Delete("bot-1"); !errors.Is(err, ErrNotFound) {
		t.Errorf("重复删除应返回ErrNotFound, got %v", err)
	}
}
