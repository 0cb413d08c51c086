package employee

import (
	"net/http"
	"net/url"

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
	l := zap.L().Named("employee.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("employee request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.String("message", httpErr.Message),
		zap.Error(err),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func DetailPath(employeeID string) string {
	return "/employees/" + url.PathEscape(employeeID)
}

func (h *Handler) List(c *gin.Context) {
	var params listing.Params
	_ = c.ShouldBindQuery(&params)

	resp, err := h.service.List(c.Request.Context(), params)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	meta := response.NewPaginationMeta(resp.Page.Count, resp.Page.Number, resp.Page.PageSize)
	response.Success(c, http.StatusOK, resp, &meta)
}

func (h *Handler) NewForm(c *gin.Context) {
	response.Success(c, http.StatusOK, FormResponse{}, nil)
}

func (h *Handler) Create(c *gin.Context) {
	var form EmployeeForm
	if err := c.ShouldBind(&form); err != nil {
		h.logger.Debug("http create employee validation failed", zap.Error(err))
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	if _, err := h.service.Create(c.Request.Context(), form); err != nil {
		h.writeServiceError(c, err)
		return
	}

	c.Redirect(http.StatusSeeOther, "/employees")
}

func (h *Handler) EditForm(c *gin.Context) {
	resp, err := h.service.GetEditForm(c.Request.Context(), c.Param("employee_id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Update(c *gin.Context) {
	id := c.Param("employee_id")

	var form EmployeeForm
	if err := c.ShouldBind(&form); err != nil {
		h.logger.Debug("http update employee validation failed", zap.Error(err))
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.Update(c.Request.Context(), id, form)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	c.Redirect(http.StatusSeeOther, DetailPath(resp.EmployeeID))
}
