package initialize

import (
	"gitee.com/taoJie_1/chatboss/global"
	"gitee.com/taoJie_1/chatboss/internal/redis"
)

// initRedis 初始化Redis客户端
// 未配置地址时不视为错误: 嵌入脚本缓存与预览轮转降级到进程内
func (i *Initializer) initRedis() {
	if global.Config.Redis.Addr == "" {
		global.Log.Warnln("未配置Redis, 缓存与会话轮转将降级为进程内实现")
		global.Redis = nil
		return
	}

	client, err := redis.NewClient(global.Config.Redis.Addr, global.Config.Redis.Password, global.Config.Redis.DB)
	if err != nil {
		global.Log.Errorf("初始化Redis失败, 相关功能降级[k3wp6]: %v", err)
		global.Redis = nil
		return
	}
	global.Redis = client
	global.Log.Infof("Redis连接成功: %s", global.Config.Redis.Addr)
}

func (i *Initializer) redisClose() error {
	if global.Redis != nil {
		return global.Redis.Close()
	}
	return nil
}
