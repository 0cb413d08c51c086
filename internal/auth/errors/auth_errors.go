package autherrors

import (
	"net/http"

	"hr-records/internal/shared/apperror"
)

var (
	ErrInvalidCredentials = apperror.New(
		apperror.CodeUnauthorized,
		"Доступ запрещен. Проверьте учетные данные.",
		http.StatusUnauthorized,
	)
	ErrInvalidSession = apperror.New(
		apperror.CodeUnauthorized,
		"Сессия недействительна, войдите снова",
		http.StatusUnauthorized,
	)
	ErrSessionRevoked = apperror.New(
		apperror.CodeUnauthorized,
		"Сессия завершена, войдите снова",
		http.StatusUnauthorized,
	)
	ErrTokenGenerationFailed = apperror.New(
		apperror.CodeInternalError,
		"Не удалось создать сессию",
		http.StatusInternalServerError,
	)
	ErrUsernameTaken = apperror.New(
		apperror.CodeConflict,
		"Пользователь с таким именем уже существует",
		http.StatusConflict,
	)
	ErrInvalidRole = apperror.InvalidField("role")
)
