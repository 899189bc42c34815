package global

import (
	"time"

	"gitee.com/taoJie_1/chatboss/internal/redis"
	"gitee.com/taoJie_1/chatboss/model/config"
	"github.com/sirupsen/logrus"
)

// 全局变量
// 业务逻辑禁止修改
var (
	Config *config.Config = new(config.Config) //指针类型, 给与其内存空间
	Log    *logrus.Logger
	Tz     *time.Location
	Redis  redis.Service //未配置Redis时为nil, 嵌入脚本缓存与会话轮转自动降级
)
