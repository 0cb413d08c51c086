package export

import (
	"time"

	"hr-records/internal/employee"
	"hr-records/internal/record"
)

// DisplayDateLayout is how dates appear in exported documents.
const DisplayDateLayout = "02/01/2006"

const (
	ContentTypeJSON = "application/json; charset=utf-8"
	ContentTypePDF  = "application/pdf"
)

// File is a rendered export ready to be sent as an attachment.
type File struct {
	Filename    string
	ContentType string
	Body        []byte
}

// Document is the JSON export of one employee. Field order is the key order
// of the encoded output.
type Document struct {
	EmployeeID    string             `json:"employee_id"`
	LastName      string             `json:"last_name"`
	FirstName     string             `json:"first_name"`
	MiddleName    string             `json:"middle_name"`
	Position      string             `json:"position"`
	HireDate      string             `json:"hire_date"`
	Email         string             `json:"email"`
	PhoneNumber   string             `json:"phone_number"`
	Vacations     []VacationItem     `json:"vacations"`
	BusinessTrips []BusinessTripItem `json:"business_trips"`
	SickLeaves    []SickLeaveItem    `json:"sick_leaves"`
}

type VacationItem struct {
	TypeVacation string `json:"type_vacation"`
	StartDate    string `json:"start_date"`
	EndDate      string `json:"end_date"`
}

type BusinessTripItem struct {
	Destination string `json:"destination"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
}

type SickLeaveItem struct {
	Reason    string `json:"reason"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

// displayDate reformats an ISO date; values that do not parse are returned unchanged.
func displayDate(iso string) string {
	t, err := time.Parse(employee.DateLayout, iso)
	if err != nil {
		return iso
	}
	return t.Format(DisplayDateLayout)
}

func newDocument(empl employee.EmployeeResponse) Document {
	return Document{
		EmployeeID:    empl.EmployeeID,
		LastName:      empl.LastName,
		FirstName:     empl.FirstName,
		MiddleName:    empl.MiddleName,
		Position:      empl.Position,
		HireDate:      displayDate(empl.HireDate),
		Email:         empl.Email,
		PhoneNumber:   empl.PhoneNumber,
		Vacations:     []VacationItem{},
		BusinessTrips: []BusinessTripItem{},
		SickLeaves:    []SickLeaveItem{},
	}
}

func (d *Document) add(e record.Entry) {
	start := e.StartDate.Format(DisplayDateLayout)
	end := e.EndDate.Format(DisplayDateLayout)
	switch e.Kind {
	case record.KindVacation:
		d.Vacations = append(d.Vacations, VacationItem{TypeVacation: e.Detail, StartDate: start, EndDate: end})
	case record.KindBusinessTrip:
		d.BusinessTrips = append(d.BusinessTrips, BusinessTripItem{Destination: e.Detail, StartDate: start, EndDate: end})
	case record.KindSickLeave:
		d.SickLeaves = append(d.SickLeaves, SickLeaveItem{Reason: e.Detail, StartDate: start, EndDate: end})
	}
}
