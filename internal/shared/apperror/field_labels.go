package apperror

import (
	"net/http"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	msgRequired = "Обязательное поле"
	msgInvalid  = "Некорректное значение"
)

var fieldLabels = map[string]string{
	"employee_id":   "Табельный номер",
	"last_name":     "Фамилия",
	"first_name":    "Имя",
	"middle_name":   "Отчество",
	"position":      "Должность",
	"hire_date":     "Дата приема",
	"email":         "Email",
	"phone_number":  "Телефон",
	"type_vacation": "Тип отпуска",
	"destination":   "Место назначения",
	"reason":        "Причина",
	"start_date":    "Дата начала",
	"end_date":      "Дата окончания",
	"username":      "Логин",
	"password":      "Пароль",
}

// FieldLabel returns the form label shown to users for a form field name.
func FieldLabel(field string) string {
	if label, ok := fieldLabels[field]; ok {
		return label
	}
	return cases.Title(language.Russian).String(strings.ReplaceAll(field, "_", " "))
}

func fieldError(field, message string) *AppError {
	return New(CodeValidationError, FieldLabel(field)+": "+strings.ToLower(message), http.StatusBadRequest).
		WithDetails(map[string]string{field: message})
}
