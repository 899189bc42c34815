package db

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
)

// 所有数据库结构体 都需实现的接口
type Dbfunc interface {
	TableName() string
}

// jsonValue 序列化集合列, nil写入空数组而非null
func jsonValue(v interface{}) (driver.Value, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("序列化JSON列失败[kd8e2]: %w", err)
	}
	if string(data) == "null" {
		return "[]", nil
	}
	return string(data), nil
}

// jsonScan 反序列化集合列, 兼容TEXT与BLOB
func jsonScan(src, dest interface{}) error {
	if src == nil {
		return nil
	}

	var data []byte
	switch s := src.(type) {
	case []byte:
		data = s
	case string:
		data = []byte(s)
	default:
		return errors.New("JSON列类型错误[m3p7a]")
	}
	if len(data) == 0 {
		return nil
	}
	return json.Unmarshal(data, dest)
}
