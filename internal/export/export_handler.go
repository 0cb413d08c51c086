package export

import (
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
	l := zap.L().Named("export.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("export.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("export request failed",
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.Error(err),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) ExportJSON(c *gin.Context) {
	file, err := h.service.ExportJSON(c.Request.Context(), c.Query("employee_id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Attachment(c, file.ContentType, file.Filename, file.Body)
}

func (h *Handler) ExportPDF(c *gin.Context) {
	file, err := h.service.ExportPDF(c.Request.Context(), c.Param("employee_id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Attachment(c, file.ContentType, file.Filename, file.Body)
}
