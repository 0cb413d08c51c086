package record

import (
	"net/http"

	recorderrors "hr-records/internal/record/errors"
	"hr-records/internal/shared/apperror"
	"hr-records/internal/shared/listing"
	"hr-records/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("record.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("record.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("record request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.String("message", httpErr.Message),
		zap.Error(err),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

// employeeID reads the owning employee from the query string, falling back
// to a posted form field.
func employeeID(c *gin.Context) string {
	if id := c.Query("employee_id"); id != "" {
		return id
	}
	return c.PostForm("employee_id")
}

func (h *Handler) List(kind Kind) gin.HandlerFunc {
	return func(c *gin.Context) {
		var params listing.Params
		_ = c.ShouldBindQuery(&params)

		resp, err := h.service.List(c.Request.Context(), kind, params)
		if err != nil {
			h.writeServiceError(c, err)
			return
		}

		meta := response.NewPaginationMeta(resp.Page.Count, resp.Page.Number, resp.Page.PageSize)
		response.Success(c, http.StatusOK, resp, &meta)
	}
}

func (h *Handler) NewForm(kind Kind) gin.HandlerFunc {
	return func(c *gin.Context) {
		resp, err := h.service.GetForm(c.Request.Context(), kind, c.Query("employee_id"))
		if err != nil {
			h.writeServiceError(c, err)
			return
		}
		response.Success(c, http.StatusOK, resp, nil)
	}
}

func (h *Handler) Create(kind Kind) gin.HandlerFunc {
	return func(c *gin.Context) {
		form := NewForm(kind)
		if form == nil {
			h.writeServiceError(c, recorderrors.ErrUnknownKind)
			return
		}
		if err := c.ShouldBind(form); err != nil {
			h.logger.Debug("http create record validation failed",
				zap.String("kind", string(kind)),
				zap.Error(err),
			)
			h.writeServiceError(c, apperror.MapValidationError(err))
			return
		}

		if _, err := h.service.Create(c.Request.Context(), kind, employeeID(c), form); err != nil {
			h.writeServiceError(c, err)
			return
		}

		c.Redirect(http.StatusSeeOther, "/employees")
	}
}
