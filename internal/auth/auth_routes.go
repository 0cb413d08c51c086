package auth

import (
	"hr-records/internal/middleware"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

type RouteConfig struct {
	LoginRateLimit rate.Limit
	LoginBurst     int
}

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, service Service, cfg RouteConfig) {
	r.GET("/login", handler.LoginForm)
	r.POST("/login", middleware.RateLimitByIP(cfg.LoginRateLimit, cfg.LoginBurst), handler.Login)

	session := middleware.SessionAuth(service)
	r.GET("/logout", session, handler.Logout)
	r.POST("/logout", session, handler.Logout)
}
