package service

import (
	"gitee.com/taoJie_1/chatboss/service/user"
)

type ServiceGroup struct {
	UserServiceGroup user.ServiceGroup
}

var Service = new(ServiceGroup)
