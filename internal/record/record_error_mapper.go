package record

import (
	"errors"

	employeeerrors "hr-records/internal/employee/errors"

	"gorm.io/gorm"
)

// Records are only ever looked up through their employee, so a missing row
// means a missing employee.
func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return employeeerrors.ErrEmployeeNotFound
	}
	return err
}
