package initialize

import (
	"gitee.com/taoJie_1/chatboss/global"
	"gitee.com/taoJie_1/chatboss/task"
)

// loadData 加载业务所需数据
func (i *Initializer) loadData(taskManager *task.Manager) {
	if err := taskManager.WarmEmbedCache(); err != nil {
		global.Log.Errorln("启动时预热嵌入脚本缓存失败, 首批请求将直接回源数据库:", err)
	}
}
