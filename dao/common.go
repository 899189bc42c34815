package dao

import (
	"sort"
	"strings"

	"gitee.com/taoJie_1/chatboss/model/db"
)

type dbUtils struct{}

// getInsertSql 根据字段map构建单行INSERT语句
// 字段顺序排序后固定, 保证语句可复用
func (u *dbUtils) getInsertSql(d db.Dbfunc, data map[string]interface{}) (string, []interface{}) {
	if len(data) == 0 {
		return ``, nil
	}

	keys := make([]string, 0, len(data))
	for k := range data {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var (
		fields strings.Builder
		sql    strings.Builder
		args   = make([]interface{}, 0, len(keys))
	)

	fields.WriteByte('(')
	for i, k := range keys {
		if i > 0 {
			fields.WriteString(", ")
		}
		fields.WriteByte('`')
		fields.WriteString(k)
		fields.WriteByte('`')
		args = append(args, data[k])
	}
	fields.WriteByte(')')

	sql.WriteString("INSERT INTO `")
	sql.WriteString(d.TableName())
	sql.WriteString("` ")
	sql.WriteString(fields.String())
	sql.WriteString(" VALUES (?")
	sql.WriteString(strings.Repeat(", ?", len(keys)-1))
	sql.WriteByte(')')

	return sql.String(), args
}

// getUpdateSql 根据字段map构建按id更新的语句
func (u *dbUtils) getUpdateSql(d db.Dbfunc, id string, data map[string]interface{}) (string, []interface{}) {
	if len(data) < 1 {
		return ``, []interface{}{}
	}

	keys := make([]string, 0, len(data))
	for k := range data {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var (
		fields strings.Builder
		sql    strings.Builder
		args   = make([]interface{}, 0, len(keys)+1)
	)

	for _, k := range keys {
		fields.WriteString(" `")
		fields.WriteString(k)
		fields.WriteString("` = ?,")
		args = append(args, data[k])
	}

	sql.WriteString("UPDATE `")
	sql.WriteString(d.TableName())
	sql.WriteString("` SET")
	sql.WriteString(strings.TrimRight(fields.String(), ","))
	sql.WriteString(" WHERE `id` = ?")
	args = append(args, id)

	return sql.String(), args
}
