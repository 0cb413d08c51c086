package export

import (
	"hr-records/internal/middleware"
	"hr-records/internal/rbac"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// RouteConfig limits how often one user may request exports.
type RouteConfig struct {
	RateLimit rate.Limit
	Burst     int
}

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rbacService middleware.RBACService, cfg RouteConfig) {
	read := middleware.RBACAuthorize(rbacService, rbac.ResourceExport, rbac.ActionRead)
	limit := middleware.RateLimitByUser(cfg.RateLimit, cfg.Burst)

	r.GET("/export-json", limit, read, handler.ExportJSON)
	r.GET("/employees/:employee_id/export-pdf", limit, read, handler.ExportPDF)
}
