package record

import (
	"hr-records/internal/employee"
	"hr-records/internal/shared/listing"
)

// Period is shared by every event form.
type Period struct {
	StartDate string `form:"start_date" json:"start_date" binding:"required,datetime=2006-01-02"`
	EndDate   string `form:"end_date" json:"end_date" binding:"required,datetime=2006-01-02"`
}

type VacationForm struct {
	TypeVacation string `form:"type_vacation" json:"type_vacation" binding:"required,max=255"`
	Period
}

type BusinessTripForm struct {
	Destination string `form:"destination" json:"destination" binding:"required,max=255"`
	Period
}

type SickLeaveForm struct {
	Reason string `form:"reason" json:"reason" binding:"required,max=255"`
	Period
}

// Draft is a submitted form reduced to the fields every kind shares.
type Draft struct {
	Detail    string
	StartDate string
	EndDate   string
}

type Form interface {
	Draft() Draft
}

func (f *VacationForm) Draft() Draft {
	return Draft{Detail: f.TypeVacation, StartDate: f.StartDate, EndDate: f.EndDate}
}

func (f *BusinessTripForm) Draft() Draft {
	return Draft{Detail: f.Destination, StartDate: f.StartDate, EndDate: f.EndDate}
}

func (f *SickLeaveForm) Draft() Draft {
	return Draft{Detail: f.Reason, StartDate: f.StartDate, EndDate: f.EndDate}
}

var formFactories = map[Kind]func() Form{
	KindVacation:     func() Form { return &VacationForm{} },
	KindBusinessTrip: func() Form { return &BusinessTripForm{} },
	KindSickLeave:    func() Form { return &SickLeaveForm{} },
}

// NewForm returns an empty form for kind, or nil for an unknown kind.
func NewForm(kind Kind) Form {
	factory, ok := formFactories[kind]
	if !ok {
		return nil
	}
	return factory()
}

type RecordResponse struct {
	ID         string                     `json:"id"`
	Kind       Kind                       `json:"kind"`
	Label      string                     `json:"label"`
	EmployeeID string                     `json:"employee_id"`
	Employee   *employee.EmployeeResponse `json:"employee,omitempty"`
	Detail     string                     `json:"detail"`
	StartDate  string                     `json:"start_date"`
	EndDate    string                     `json:"end_date"`
}

type ListResponse struct {
	Kind        Kind                         `json:"kind"`
	Label       string                       `json:"label"`
	Page        listing.Page[RecordResponse] `json:"page"`
	SearchQuery string                       `json:"search_query"`
}

type FormResponse struct {
	Kind  Kind   `json:"kind"`
	Label string `json:"label"`
	// DetailField is the form field holding the kind's description.
	DetailField string                    `json:"detail_field"`
	Form        Form                      `json:"form"`
	Employee    employee.EmployeeResponse `json:"employee"`
}

func mapEntry(e Entry, owner *employee.Employee) RecordResponse {
	resp := RecordResponse{
		ID:         e.ID.String(),
		Kind:       e.Kind,
		Label:      e.Kind.Info().Label,
		EmployeeID: e.EmployeeID,
		Detail:     e.Detail,
		StartDate:  e.StartDate.Format(employee.DateLayout),
		EndDate:    e.EndDate.Format(employee.DateLayout),
	}
	if owner != nil {
		o := employee.MapToResponse(*owner)
		resp.Employee = &o
	}
	return resp
}

func mapEntity[T Entity](rec T) RecordResponse {
	return mapEntry(rec.Entry(), rec.Owner())
}
