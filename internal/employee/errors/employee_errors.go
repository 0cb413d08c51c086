package employeeerrors

import (
	"net/http"

	"hr-records/internal/shared/apperror"
)

var (
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Сотрудник не найден",
		http.StatusNotFound,
	)
	ErrEmployeeAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"Сотрудник с таким табельным номером уже существует",
		http.StatusConflict,
	).WithDetails(map[string]string{"employee_id": "Табельный номер уже занят"})
	ErrEmailAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"Сотрудник с таким email уже существует",
		http.StatusConflict,
	).WithDetails(map[string]string{"email": "Email уже используется"})
	ErrEmployeeIDMismatch = apperror.New(
		apperror.CodeValidationError,
		"Табельный номер нельзя изменить",
		http.StatusBadRequest,
	).WithDetails(map[string]string{"employee_id": "Табельный номер нельзя изменить"})
	ErrInvalidHireDate = apperror.InvalidField("hire_date")
)
