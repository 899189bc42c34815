// Package widget 负责生成第三方站点加载的自执行挂件脚本
//
// 脚本是一个封闭的自执行单元: 固定的挂件程序 + 内联样式表 + 单个JSON配置串,
// 加载后不再与服务端发生任何往返。配置串经encoding/json转义(含 < > &
// 与U+2028/U+2029), 用户配置中的任何文本都无法提前终止外层脚本。
package widget

import (
	"encoding/json"
	"fmt"
	"strings"

	"gitee.com/taoJie_1/chatboss/model/db"
)

// 未命中时的占位脚本体; 必须是合法的no-op脚本, 保证嵌入方的script标签不抛错
const (
	NotFoundBody  = "// Chatbot not found\n"
	InvalidIdBody = "// Invalid chatbot id\n"
)

// ContentType 嵌入脚本的MIME类型
const ContentType = "application/javascript; charset=utf-8"

// CacheControl 允许短时共享缓存并在过期后先用旧值
const CacheControl = "public, s-maxage=60, stale-while-revalidate"

// BuildScript 由一条挂件配置生成完整的嵌入脚本
func BuildScript(bot *db.Chatbot) (string, error) {
	payload, err := json.Marshal(bot)
	if err != nil {
		return "", fmt.Errorf("序列化挂件配置失败[cf41s]: %w", err)
	}

	// 二次编码: 把JSON文档变成JS字符串字面量, 供JSON.parse消费
	configLiteral, err := json.Marshal(string(payload))
	if err != nil {
		return "", fmt.Errorf("编码配置字面量失败[n9g5k]: %w", err)
	}

	stylesLiteral, err := json.Marshal(baseStyles)
	if err != nil {
		return "", fmt.Errorf("编码样式字面量失败[p2wd7]: %w", err)
	}

	r := strings.NewReplacer(
		configMarker, string(configLiteral),
		stylesMarker, string(stylesLiteral),
	)
	return r.Replace(widgetProgram), nil
}

// CacheKey 嵌入脚本在Redis中的缓存键
func CacheKey(prefix, id string) string {
	return prefix + "embed:" + id
}
