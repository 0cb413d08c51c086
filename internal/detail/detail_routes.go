package detail

import (
	"hr-records/internal/middleware"
	"hr-records/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rbacService middleware.RBACService) {
	read := middleware.RBACAuthorize(rbacService, rbac.ResourceEmployee, rbac.ActionRead)
	r.GET("/employees/:employee_id", read, handler.Get)
}
