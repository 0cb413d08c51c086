package auth

import (
	"net/http"
	"time"

	autherrors "hr-records/internal/auth/errors"
	"hr-records/internal/middleware"
	"hr-records/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const afterLoginPath = "/employees"

type Handler struct {
	service      Service
	secureCookie bool
	logger       *zap.Logger
}

func NewHandler(s Service, secureCookie bool, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("auth.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("auth.handler")
	}
	return &Handler{service: s, secureCookie: secureCookie, logger: l}
}

func (h *Handler) LoginForm(c *gin.Context) {
	response.Success(c, http.StatusOK, gin.H{
		"form": LoginForm{},
		"next": middleware.SafeNext(c.Query("next"), ""),
	}, nil)
}

func (h *Handler) Login(c *gin.Context) {
	var form LoginForm
	if err := c.ShouldBind(&form); err != nil {
		h.rejectLogin(c, form)
		return
	}

	result, err := h.service.Login(c.Request.Context(), form.Username, form.Password)
	if err != nil {
		h.logger.Warn("login rejected", zap.String("client_ip", c.ClientIP()))
		h.rejectLogin(c, form)
		return
	}

	http.SetCookie(c.Writer, &http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    result.Token,
		Path:     "/",
		Expires:  result.ExpiresAt,
		MaxAge:   int(time.Until(result.ExpiresAt).Seconds()),
		HttpOnly: true,
		Secure:   h.secureCookie,
		SameSite: http.SameSiteLaxMode,
	})

	next := c.PostForm("next")
	if next == "" {
		next = c.Query("next")
	}
	c.Redirect(http.StatusSeeOther, middleware.SafeNext(next, afterLoginPath))
}

func (h *Handler) Logout(c *gin.Context) {
	if token, err := c.Cookie(middleware.SessionCookie); err == nil && token != "" {
		if err := h.service.Logout(c.Request.Context(), token); err != nil {
			h.logger.Error("logout revoke failed", zap.Error(err))
		}
	}

	http.SetCookie(c.Writer, &http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.secureCookie,
		SameSite: http.SameSiteLaxMode,
	})

	c.Redirect(http.StatusSeeOther, middleware.LoginPath)
}

// rejectLogin never says which credential was wrong and never sets a cookie.
func (h *Handler) rejectLogin(c *gin.Context, form LoginForm) {
	form.Password = ""
	err := autherrors.ErrInvalidCredentials
	response.Error(c, err.HTTPStatus, err.Code, err.Message, gin.H{"form": form})
}
