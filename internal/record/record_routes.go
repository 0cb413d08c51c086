package record

import (
	"hr-records/internal/middleware"
	"hr-records/internal/rbac"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes expects r to already sit behind the session middleware.
func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rbacService middleware.RBACService) {
	read := middleware.RBACAuthorize(rbacService, rbac.ResourceRecord, rbac.ActionRead)
	write := middleware.RBACAuthorize(rbacService, rbac.ResourceRecord, rbac.ActionWrite)

	for _, kind := range Kinds() {
		records := r.Group(kind.Info().ListPath)
		records.GET("", read, handler.List(kind))
		records.GET("/new", write, handler.NewForm(kind))
		records.POST("/new", write, handler.Create(kind))
	}
}
