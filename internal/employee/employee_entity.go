package employee

import "time"

type Employee struct {
	EmployeeID  string    `gorm:"primaryKey;size:20"`
	LastName    string    `gorm:"size:100;not null;index"`
	FirstName   string    `gorm:"size:100;not null"`
	MiddleName  string    `gorm:"size:100"`
	Position    string    `gorm:"size:100;not null"`
	HireDate    time.Time `gorm:"type:date;not null"`
	Email       string    `gorm:"size:254;not null;uniqueIndex:uq_employee_email"`
	PhoneNumber string    `gorm:"size:20;not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (Employee) TableName() string { return "employees" }
