package apperror

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
)

func fieldMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return msgRequired
	case "email":
		return "Введите корректный адрес электронной почты"
	case "max":
		return "Не более " + e.Param() + " символов"
	case "datetime":
		return "Ожидается дата в формате ГГГГ-ММ-ДД"
	default:
		return msgInvalid
	}
}

// MapValidationError turns binding errors into a VALIDATION_ERROR carrying
// one message per offending form field.
func MapValidationError(err error) error {
	var errs validator.ValidationErrors
	if errors.As(err, &errs) && len(errs) > 0 {
		details := make(map[string]string, len(errs))
		for _, e := range errs {
			if _, seen := details[e.Field()]; !seen {
				details[e.Field()] = fieldMessage(e)
			}
		}

		first := errs[0]
		message := FieldLabel(first.Field()) + ": " + strings.ToLower(details[first.Field()])
		return New(CodeValidationError, message, http.StatusBadRequest).WithDetails(details)
	}

	return ErrInvalidInput
}
