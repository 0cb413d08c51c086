package employee

import (
	"hr-records/internal/middleware"
	"hr-records/internal/rbac"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes expects r to already sit behind the session middleware.
func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rbacService middleware.RBACService) {
	read := middleware.RBACAuthorize(rbacService, rbac.ResourceEmployee, rbac.ActionRead)
	write := middleware.RBACAuthorize(rbacService, rbac.ResourceEmployee, rbac.ActionWrite)

	employees := r.Group("/employees")
	{
		employees.GET("", read, handler.List)
		employees.GET("/new", write, handler.NewForm)
		employees.POST("/new", write, handler.Create)
		employees.GET("/:employee_id/edit", write, handler.EditForm)
		employees.POST("/:employee_id/edit", write, handler.Update)
	}
}
