package dao

import (
	"errors"

	"github.com/jmoiron/sqlx"
)

var (
	DB      *sqlx.DB
	CanLock bool //mysql支持行锁, sqlite不支持

	utils dbUtils

	Chatbots = new(ChatbotsDb)
)

// ErrNotFound 记录不存在; 控制器层据此映射404
var ErrNotFound = errors.New("记录不存在")
