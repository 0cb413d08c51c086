package apperror

import "net/http"

var (
	ErrForbidden = New(
		CodeForbidden,
		"Недостаточно прав для выполнения операции",
		http.StatusForbidden,
	)

	ErrInternal = New(
		CodeInternalError,
		"Внутренняя ошибка сервера",
		http.StatusInternalServerError,
	)

	ErrInvalidInput = New(
		CodeInvalidInput,
		"Некорректные данные",
		http.StatusBadRequest,
	)

	ErrTooManyRequests = New(
		CodeTooManyRequests,
		"Слишком много запросов, попробуйте позже",
		http.StatusTooManyRequests,
	)
)

// RequiredField reports a missing form field.
func RequiredField(field string) *AppError {
	return fieldError(field, msgRequired)
}

// InvalidField reports a form field that failed validation.
func InvalidField(field string) *AppError {
	return fieldError(field, msgInvalid)
}
