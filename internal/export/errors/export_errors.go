package exporterrors

import (
	"net/http"

	"hr-records/internal/shared/apperror"
)

var (
	ErrMissingEmployeeID = apperror.RequiredField("employee_id")
	ErrRenderFailed      = apperror.New(
		apperror.CodeInternalError,
		"Не удалось сформировать документ",
		http.StatusInternalServerError,
	)
)
