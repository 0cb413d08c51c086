package record

import (
	"time"

	"hr-records/internal/employee"

	"github.com/google/uuid"
)

type Vacation struct {
	ID           uuid.UUID          `gorm:"type:uuid;primaryKey"`
	EmployeeID   string             `gorm:"size:20;not null;index"`
	Employee     *employee.Employee `gorm:"foreignKey:EmployeeID;references:EmployeeID;constraint:OnDelete:RESTRICT"`
	TypeVacation string             `gorm:"size:255;not null"`
	StartDate    time.Time          `gorm:"type:date;not null;index"`
	EndDate      time.Time          `gorm:"type:date;not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (Vacation) TableName() string { return "vacations" }

type BusinessTrip struct {
	ID          uuid.UUID          `gorm:"type:uuid;primaryKey"`
	EmployeeID  string             `gorm:"size:20;not null;index"`
	Employee    *employee.Employee `gorm:"foreignKey:EmployeeID;references:EmployeeID;constraint:OnDelete:RESTRICT"`
	Destination string             `gorm:"size:255;not null"`
	StartDate   time.Time          `gorm:"type:date;not null;index"`
	EndDate     time.Time          `gorm:"type:date;not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (BusinessTrip) TableName() string { return "business_trips" }

type SickLeave struct {
	ID         uuid.UUID          `gorm:"type:uuid;primaryKey"`
	EmployeeID string             `gorm:"size:20;not null;index"`
	Employee   *employee.Employee `gorm:"foreignKey:EmployeeID;references:EmployeeID;constraint:OnDelete:RESTRICT"`
	Reason     string             `gorm:"size:255;not null"`
	StartDate  time.Time          `gorm:"type:date;not null;index"`
	EndDate    time.Time          `gorm:"type:date;not null"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (SickLeave) TableName() string { return "sick_leaves" }

// Entry is a kind-tagged view of any event record. Detail holds the
// kind's descriptive field: vacation type, destination or reason.
type Entry struct {
	Kind       Kind
	ID         uuid.UUID
	EmployeeID string
	Detail     string
	StartDate  time.Time
	EndDate    time.Time
}

// Entity is implemented by the three event record types.
type Entity interface {
	Vacation | BusinessTrip | SickLeave
	Entry() Entry
	Owner() *employee.Employee
}

func (v Vacation) Entry() Entry {
	return Entry{Kind: KindVacation, ID: v.ID, EmployeeID: v.EmployeeID, Detail: v.TypeVacation, StartDate: v.StartDate, EndDate: v.EndDate}
}

func (v Vacation) Owner() *employee.Employee { return v.Employee }

func (b BusinessTrip) Entry() Entry {
	return Entry{Kind: KindBusinessTrip, ID: b.ID, EmployeeID: b.EmployeeID, Detail: b.Destination, StartDate: b.StartDate, EndDate: b.EndDate}
}

func (b BusinessTrip) Owner() *employee.Employee { return b.Employee }

func (s SickLeave) Entry() Entry {
	return Entry{Kind: KindSickLeave, ID: s.ID, EmployeeID: s.EmployeeID, Detail: s.Reason, StartDate: s.StartDate, EndDate: s.EndDate}
}

func (s SickLeave) Owner() *employee.Employee { return s.Employee }

func newVacation(e Entry) Vacation {
	return Vacation{ID: e.ID, EmployeeID: e.EmployeeID, TypeVacation: e.Detail, StartDate: e.StartDate, EndDate: e.EndDate}
}

func newBusinessTrip(e Entry) BusinessTrip {
	return BusinessTrip{ID: e.ID, EmployeeID: e.EmployeeID, Destination: e.Detail, StartDate: e.StartDate, EndDate: e.EndDate}
}

func newSickLeave(e Entry) SickLeave {
	return SickLeave{ID: e.ID, EmployeeID: e.EmployeeID, Reason: e.Detail, StartDate: e.StartDate, EndDate: e.EndDate}
}
