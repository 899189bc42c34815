package dao

import (
	"database/sql"
	"errors"
	"fmt"

	"gitee.com/taoJie_1/chatboss/global"
	"gitee.com/taoJie_1/chatboss/model/db"
	"gitee.com/taoJie_1/chatboss/model/enum"
)

type ChatbotsDb struct{}

// CreateTable 启动时建表, 已存在则跳过
func (d *ChatbotsDb) CreateTable() error {
	var ddl string

	switch global.Config.Database.Type {
	case string(enum.MYSQL):
		ddl = fmt.Sprintf("CREATE TABLE IF NOT EXISTS `%s` ("+
			"`id` VARCHAR(64) NOT NULL PRIMARY KEY,"+
			"`name` VARCHAR(255) NOT NULL,"+
			"`industry` VARCHAR(255) NOT NULL,"+
			"`tone` VARCHAR(32) NOT NULL,"+
			"`primary_color` VARCHAR(64) NOT NULL,"+
			"`secondary_color` VARCHAR(64) NOT NULL,"+
			"`greeting` TEXT NOT NULL,"+
			"`fallback_response` TEXT NOT NULL,"+
			"`faqs` TEXT NOT NULL,"+
			"`quick_replies` TEXT NOT NULL,"+
			"`steps` TEXT NOT NULL,"+
			"`variants` TEXT NOT NULL,"+
			"`created_at` BIGINT NOT NULL,"+
			"`updated_at` BIGINT NOT NULL"+
			") ENGINE=InnoDB DEFAULT CHARSET=utf8mb4;", db.Chatbot{}.TableName())
	case string(enum.SQLITE):
		fallthrough
	default:
		ddl = fmt.Sprintf("CREATE TABLE IF NOT EXISTS `%s` ("+
			"`id` TEXT NOT NULL PRIMARY KEY,"+
			"`name` TEXT NOT NULL,"+
			"`industry` TEXT NOT NULL,"+
			"`tone` TEXT NOT NULL,"+
			"`primary_color` TEXT NOT NULL,"+
			"`secondary_color` TEXT NOT NULL,"+
			"`greeting` TEXT NOT NULL,"+
			"`fallback_response` TEXT NOT NULL,"+
			"`faqs` TEXT NOT NULL,"+
			"`quick_replies` TEXT NOT NULL,"+
			"`steps` TEXT NOT NULL,"+
			"`variants` TEXT NOT NULL,"+
			"`created_at` INTEGER NOT NULL,"+
			"`updated_at` INTEGER NOT NULL"+
			");", db.Chatbot{}.TableName())
	}

	if _, err := DB.Exec(ddl); err != nil {
		return fmt.Errorf("初始化chatbots表失败[q2vr8]: %w", err)
	}
	return nil
}

// GetAllList 获取所有记录, 新建的在前
func (d *ChatbotsDb) GetAllList(list *[]db.Chatbot) error {
	sql := fmt.Sprintf("SELECT * FROM `%s` ORDER BY `created_at` DESC, `id` DESC;", db.Chatbot{}.TableName())
	return DB.Select(list, sql)
}

// GetById 按id获取一条记录, 不存在返回ErrNotFound
func (d *ChatbotsDb) GetById(id string) (*db.Chatbot, error) {
	var bot db.Chatbot
	query := fmt.Sprintf("SELECT * FROM `%s` WHERE `id` = ? LIMIT 1;", db.Chatbot{}.TableName())

	if err := DB.Get(&bot, DB.Rebind(query), id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("查询chatbot失败[h7c31]: %w", err)
	}
	return &bot, nil
}

// Insert 持久化一条新记录, 时间戳由调用方填充
func (d *ChatbotsDb) Insert(bot *db.Chatbot) error {
	data := map[string]interface{}{
		"id":                bot.Id,
		"name":              bot.Name,
		"industry":          bot.Industry,
		"tone":              string(bot.Tone),
		"primary_color":     bot.PrimaryColor,
		"secondary_color":   bot.SecondaryColor,
		"greeting":          bot.Greeting,
		"fallback_response": bot.FallbackResponse,
		"faqs":              bot.Faqs,
		"quick_replies":     bot.QuickReplies,
		"steps":             bot.Steps,
		"variants":          bot.Variants,
		"created_at":        bot.CreatedAt,
		"updated_at":        bot.UpdatedAt,
	}

	query, args := utils.getInsertSql(db.Chatbot{}, data)
	if _, err := DB.Exec(DB.Rebind(query), args...); err != nil {
		return fmt.Errorf("插入chatbot失败[t5na9]: %w", err)
	}
	return nil
}

// Update 按id合并更新字段; 先确认记录存在, 避免mysql值未变时影响行数为0的歧义
func (d *ChatbotsDb) Update(id string, data map[string]interface{}) error {
	if len(data) == 0 {
		return nil
	}

	if _, err := d.GetById(id); err != nil {
		return err
	}

	query, args := utils.getUpdateSql(db.Chatbot{}, id, data)
	if _, err := DB.Exec(DB.Rebind(query), args...); err != nil {
		return fmt.Errorf("更新chatbot失败[y4km6]: %w", err)
	}
	return nil
}

// Delete 按id删除, 不存在返回ErrNotFound
func (d *ChatbotsDb) Delete(id string) error {
	query := fmt.Sprintf("DELETE FROM `%s` WHERE `id` = ?;", db.Chatbot{}.TableName())

	result, err := DB.Exec(DB.Rebind(query), id)
	if err != nil {
		return fmt.Errorf("删除chatbot失败[e8sd2]: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("删除chatbot失败[zq1x4]: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
