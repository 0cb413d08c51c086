package detail

import (
	"net/http"

	"hr-records/internal/shared/apperror"
	"hr-records/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("detail.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("detail.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) Get(c *gin.Context) {
	employeeID := c.Param("employee_id")
	resp, err := h.service.GetDetail(c.Request.Context(), employeeID, PagesFromQuery(c.Query))
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		h.logger.Warn("employee detail request failed",
			zap.String("employee_id", employeeID),
			zap.Int("status", httpErr.Status),
			zap.Error(err),
		)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}
