package employee

import (
	"errors"
	"strings"

	employeeerrors "hr-records/internal/employee/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return employeeerrors.ErrEmployeeNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == "23505" {
			switch pgErr.ConstraintName {
			case "employees_pkey":
				return employeeerrors.ErrEmployeeAlreadyExists
			case "uq_employee_email":
				return employeeerrors.ErrEmailAlreadyExists
			}
		}
	}

	// sqlite reports unique violations only through the message text
	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "unique constraint failed") {
		switch {
		case strings.Contains(errMsg, "employees.employee_id"):
			return employeeerrors.ErrEmployeeAlreadyExists
		case strings.Contains(errMsg, "employees.email"):
			return employeeerrors.ErrEmailAlreadyExists
		}
	}

	return err
}
