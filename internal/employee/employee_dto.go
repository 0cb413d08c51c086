package employee

import "hr-records/internal/shared/listing"

const DateLayout = "2006-01-02"

// EmployeeForm is bound from an HTML form post or a JSON body.
// A blank EmployeeID on create gets the next generated personnel number.
type EmployeeForm struct {
	EmployeeID  string `form:"employee_id" json:"employee_id" binding:"omitempty,max=20"`
	LastName    string `form:"last_name" json:"last_name" binding:"required,max=100"`
	FirstName   string `form:"first_name" json:"first_name" binding:"required,max=100"`
	MiddleName  string `form:"middle_name" json:"middle_name" binding:"omitempty,max=100"`
	Position    string `form:"position" json:"position" binding:"required,max=100"`
	HireDate    string `form:"hire_date" json:"hire_date" binding:"required,datetime=2006-01-02"`
	Email       string `form:"email" json:"email" binding:"required,email,max=254"`
	PhoneNumber string `form:"phone_number" json:"phone_number" binding:"required,max=20"`
}

type EmployeeResponse struct {
	EmployeeID  string `json:"employee_id"`
	LastName    string `json:"last_name"`
	FirstName   string `json:"first_name"`
	MiddleName  string `json:"middle_name"`
	Position    string `json:"position"`
	HireDate    string `json:"hire_date"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phone_number"`
}

type ListResponse struct {
	Page        listing.Page[EmployeeResponse] `json:"page"`
	SearchQuery string                         `json:"search_query"`
}

// FormResponse is the view model of the create and edit pages.
type FormResponse struct {
	Form     EmployeeForm      `json:"form"`
	Employee *EmployeeResponse `json:"employee,omitempty"`
}

func MapToResponse(e Employee) EmployeeResponse {
	return EmployeeResponse{
		EmployeeID:  e.EmployeeID,
		LastName:    e.LastName,
		FirstName:   e.FirstName,
		MiddleName:  e.MiddleName,
		Position:    e.Position,
		HireDate:    e.HireDate.Format(DateLayout),
		Email:       e.Email,
		PhoneNumber: e.PhoneNumber,
	}
}

func formFromEmployee(e Employee) EmployeeForm {
	return EmployeeForm{
		EmployeeID:  e.EmployeeID,
		LastName:    e.LastName,
		FirstName:   e.FirstName,
		MiddleName:  e.MiddleName,
		Position:    e.Position,
		HireDate:    e.HireDate.Format(DateLayout),
		Email:       e.Email,
		PhoneNumber: e.PhoneNumber,
	}
}
