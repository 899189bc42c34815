package user

import (
	"context"
	"time"

	"gitee.com/taoJie_1/chatboss/dao"
	"gitee.com/taoJie_1/chatboss/global"
	"gitee.com/taoJie_1/chatboss/internal/widget"
)

// IEmbedService 嵌入脚本的生成与短缓存
type IEmbedService interface {
	// Script 返回指定挂件的完整嵌入脚本, 未知id返回dao.ErrNotFound
	Script(ctx context.Context, id string) (string, error)
	// InvalidateCache 配置变更/删除后作废缓存
	InvalidateCache(ctx context.Context, id string)
}

type EmbedService struct{}

func NewEmbedService() IEmbedService {
	return &EmbedService{}
}

func (s *EmbedService) Script(ctx context.Context, id string) (string, error) {
	key := widget.CacheKey(global.Config.Redis.KeyPrefix, id)

	if global.Redis != nil {
		if cached, err := global.Redis.Get(ctx, key).Result(); err == nil && cached != "" {
			return cached, nil
		}
	}

	bot, err := dao.Chatbots.GetById(id)
	if err != nil {
		return "", err
	}

	script, err := widget.BuildScript(bot)
	if err != nil {
		return "", err
	}

	if global.Redis != nil {
		ttl := global.Config.Widget.EmbedCacheTTL
		if ttl <= 0 {
			ttl = 60
		}
		if err := global.Redis.Set(ctx, key, script, time.Duration(ttl)*time.Second).Err(); err != nil {
			global.Log.Warnf("写入嵌入脚本缓存失败[x2ne7]: %v", err)
		}
	}
	return script, nil
}

func (s *EmbedService) InvalidateCache(ctx context.Context, id string) {
	if global.Redis == nil {
		return
	}
	if err := global.Redis.Del(ctx, widget.CacheKey(global.Config.Redis.KeyPrefix, id)).Err(); err != nil {
		global.Log.Warnf("删除嵌入脚本缓存失败[b6yt3]: %v", err)
	}
}
