package main

import (
	"time"

	"gitee.com/taoJie_1/chatboss/global"
	"gitee.com/taoJie_1/chatboss/initialize"
	"gitee.com/taoJie_1/chatboss/task"
)

func main() {
	startTime := time.Now()

	initializer := initialize.New()

	if err := initializer.InitTz(); err != nil {
		panic(err)
	}
	if err := initializer.InitLog(); err != nil {
		panic(err)
	}

	defer func() {
		if err := recover(); err != nil {
			global.Log.Errorln("服务异常退出[dauy2]: ", err)
		}
	}()

	if err := initializer.Run(); err != nil {
		global.Log.Fatalln("初始化失败[mvbw0]: ", err)
	}
	defer initializer.Close()

	initializer.InitLogger()

	taskManager := task.NewManager()

	// 命令行任务直接执行后退出, 不启动HTTP服务
	if dispatchAction(taskManager) {
		return
	}

	initialize.Start(initializer, taskManager, startTime)
}

// dispatchAction 根据-a参数执行一次性任务, 返回true表示无需启动服务
func dispatchAction(taskManager *task.Manager) bool {
	switch initialize.Act {
	case "":
		return false
	case "warm":
		if err := taskManager.WarmEmbedCache(); err != nil {
			global.Log.Errorln("预热嵌入脚本缓存失败: ", err)
		}
	case "clean":
		if err := taskManager.CleanUpLogs(); err != nil {
			global.Log.Errorln("清理日志失败: ", err)
		}
	default:
		global.Log.Errorf("未知的行为参数: %s", initialize.Act)
	}
	return true
}
