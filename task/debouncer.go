package task

import (
	"sync"
	"time"

	"gitee.com/taoJie_1/chatboss/global"
)

var (
	embedWarmTimer *time.Timer
	embedWarmMutex sync.Mutex
)

// DebounceEmbedWarm 为 WarmEmbedCache 提供防抖调用功能。
// 配置热重载可能在短时间内连续触发, 每次调用都会重置定时器。
func (m *Manager) DebounceEmbedWarm(delay time.Duration) {
	embedWarmMutex.Lock()
	defer embedWarmMutex.Unlock()

	if embedWarmTimer != nil {
		embedWarmTimer.Stop()
	}

	embedWarmTimer = time.AfterFunc(delay, func() {
		global.Log.Info("触发经防抖处理的缓存预热任务...")
		if err := m.WarmEmbedCache(); err != nil {
			global.Log.Errorf("执行经防抖处理的缓存预热任务失败: %v", err)
		}
	})
	global.Log.Infof("缓存预热任务已调度在 %v 后执行", delay)
}
