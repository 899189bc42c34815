package config

type Database struct {
	Type          string `json:"type" mapstructure:"type" yaml:"type"`
	SqlitePath    string `json:"sqlite_path" mapstructure:"sqlite_path" yaml:"sqlite_path"`
	MysqlHost     string `json:"mysql_host" mapstructure:"mysql_host" yaml:"mysql_host"`
	MysqlPort     string `json:"mysql_port" mapstructure:"mysql_port" yaml:"mysql_port"`
	MysqlDbname   string `json:"mysql_dbname" mapstructure:"mysql_dbname" yaml:"mysql_dbname"`
	MysqlUsername string `json:"mysql_username" mapstructure:"mysql_username" yaml:"mysql_username"`
	MysqlPassword string `json:"mysql_password" mapstructure:"mysql_password" yaml:"mysql_password"`
}

type Redis struct {
	Addr      string `json:"addr" mapstructure:"addr" yaml:"addr"`
	Password  string `json:"password" mapstructure:"password" yaml:"password"`
	DB        int    `json:"db" mapstructure:"db" yaml:"db"`
	KeyPrefix string `json:"key_prefix" mapstructure:"key_prefix" yaml:"key_prefix"`
}

type Widget struct {
	// 嵌入脚本在Redis中的缓存秒数, 与CDN的s-maxage保持一致
	EmbedCacheTTL int64 `json:"embed_cache_ttl" mapstructure:"embed_cache_ttl" yaml:"embed_cache_ttl"`
	// 预览会话步骤轮转计数器的存活秒数
	SessionTTL int64 `json:"session_ttl" mapstructure:"session_ttl" yaml:"session_ttl"`
	// 嵌入脚本缓存预热的cron表达式
	WarmCron string `json:"warm_cron" mapstructure:"warm_cron" yaml:"warm_cron"`
}
