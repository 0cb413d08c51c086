package recorderrors

import (
	"net/http"

	"hr-records/internal/shared/apperror"
)

var (
	ErrInvalidDateRange = apperror.New(
		apperror.CodeValidationError,
		"Дата окончания раньше даты начала",
		http.StatusBadRequest,
	).WithDetails(map[string]string{"end_date": "Дата окончания не может быть раньше даты начала"})
	ErrUnknownKind = apperror.New(
		apperror.CodeNotFound,
		"Неизвестный тип записи",
		http.StatusNotFound,
	)
	ErrMissingEmployeeID = apperror.RequiredField("employee_id")
	ErrInvalidStartDate  = apperror.InvalidField("start_date")
	ErrInvalidEndDate    = apperror.InvalidField("end_date")
)
