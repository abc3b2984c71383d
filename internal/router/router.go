package router

import (
	"github.com/cloudwego/hertz/pkg/app/server"

	"addressbook/config"
	"addressbook/internal/handler"
	"addressbook/internal/middleware"
)

func Register(h *server.Hertz, persons *handler.PersonHandler) {
	h.Use(middleware.RecoverMiddleware())
	h.Use(middleware.RequestIDMiddleware())
	h.Use(middleware.CORSMiddleware())
	h.Use(middleware.OpenTelemetryMiddleware())

	v1 := h.Group("/v1")

	// 联系人路由
	group := v1.Group("/persons")
	{
		group.GET("", persons.ListPersons)
		group.POST("", persons.AddPerson)

		if config.Cfg.RateLimitEnabled {
			group.POST("/:index/privacy", middleware.PrivacyRateLimitMiddleware(), persons.TogglePrivacy) // 隐私修改限流
		} else {
			group.POST("/:index/privacy", persons.TogglePrivacy)
		}
	}
}
