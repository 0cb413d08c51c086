package detail

import (
	"hr-records/internal/employee"
	"hr-records/internal/record"
	"hr-records/internal/shared/listing"
)

// PageSize is the page size of each record list on the detail page.
const PageSize = 4

// Pages holds the requested page number of each record list.
type Pages map[record.Kind]int

type EmployeeDetail struct {
	Employee      employee.EmployeeResponse           `json:"employee"`
	Vacations     listing.Page[record.RecordResponse] `json:"vacations"`
	BusinessTrips listing.Page[record.RecordResponse] `json:"business_trips"`
	SickLeaves    listing.Page[record.RecordResponse] `json:"sick_leaves"`
}

func (d *EmployeeDetail) set(kind record.Kind, page listing.Page[record.RecordResponse]) {
	switch kind {
	case record.KindVacation:
		d.Vacations = page
	case record.KindBusinessTrip:
		d.BusinessTrips = page
	case record.KindSickLeave:
		d.SickLeaves = page
	}
}
