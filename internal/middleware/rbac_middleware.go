package middleware

import (
	"hr-records/internal/rbac"
	"hr-records/internal/shared/apperror"
	"hr-records/internal/shared/contextutil"
	"hr-records/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RBACService is satisfied by rbac.Service.
type RBACService interface {
	Enforce(req rbac.EnforceRequest) (bool, error)
}

// RBACAuthorize must run after SessionAuth, which puts the role in the context.
func RBACAuthorize(service RBACService, resource, action string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString("role")

		allowed, err := service.Enforce(rbac.EnforceRequest{
			Role:     role,
			Resource: resource,
			Action:   action,
		})
		if err != nil {
			contextutil.GetLogger(c.Request.Context(), nil).Error("rbac enforce failed", zap.Error(err))
			internal := apperror.ErrInternal
			response.Error(c, internal.HTTPStatus, internal.Code, internal.Message, nil)
			c.Abort()
			return
		}

		if !allowed {
			forbidden := apperror.ErrForbidden
			response.Error(c, forbidden.HTTPStatus, forbidden.Code, forbidden.Message, gin.H{
				"required": resource + ":" + action,
			})
			c.Abort()
			return
		}

		c.Next()
	}
}
