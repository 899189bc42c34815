package task

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"gitee.com/taoJie_1/chatboss/dao"
	"gitee.com/taoJie_1/chatboss/global"
	"gitee.com/taoJie_1/chatboss/internal/widget"
	"gitee.com/taoJie_1/chatboss/model/db"
	"golang.org/x/sync/errgroup"
)

// WarmEmbedCache 为全部挂件预生成嵌入脚本并写入Redis
// 让CDN缓存过期后的第一批访客也能命中服务端缓存
func (m *Manager) WarmEmbedCache() error {
	if global.Redis == nil {
		global.Log.Info("未配置Redis, 跳过嵌入脚本缓存预热")
		return nil
	}

	global.Log.Info("开始预热嵌入脚本缓存...")
	ctx := context.Background()

	var list []db.Chatbot
	if err := dao.Chatbots.GetAllList(&list); err != nil {
		return fmt.Errorf("读取挂件列表失败[vv2m8]: %w", err)
	}

	ttl := global.Config.Widget.EmbedCacheTTL
	if ttl <= 0 {
		ttl = 60
	}

	var (
		eg     errgroup.Group
		warmed atomic.Int64
	)
	eg.SetLimit(5)

	for i := range list {
		bot := &list[i]
		eg.Go(func() error {
			script, err := widget.BuildScript(bot)
			if err != nil {
				// 单条失败不中断整个预热任务
				global.Log.Warnf("生成挂件 %s 的嵌入脚本失败: %v", bot.Id, err)
				return nil
			}

			key := widget.CacheKey(global.Config.Redis.KeyPrefix, bot.Id)
			if err := global.Redis.Set(ctx, key, script, time.Duration(ttl)*time.Second).Err(); err != nil {
				global.Log.Warnf("写入挂件 %s 的脚本缓存失败: %v", bot.Id, err)
				return nil
			}

			warmed.Add(1)
			return nil
		})
	}
	_ = eg.Wait()

	global.Log.Infof("嵌入脚本缓存预热完成, 共 %d/%d 条", warmed.Load(), len(list))
	return nil
}
