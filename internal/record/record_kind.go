package record

import "hr-records/internal/events"

// Kind names one of the three employee event categories.
type Kind string

const (
	KindVacation     Kind = "vacation"
	KindBusinessTrip Kind = "business_trip"
	KindSickLeave    Kind = "sick_leave"
)

// KindInfo is everything that differs between kinds apart from the Go type.
type KindInfo struct {
	Table       string
	DetailField string
	Label       string
	ListPath    string
	PageParam   string
	EventType   string
}

var kinds = map[Kind]KindInfo{
	KindVacation: {
		Table:       "vacations",
		DetailField: "type_vacation",
		Label:       "Отпуск",
		ListPath:    "/vacations",
		PageParam:   "vacations_page",
		EventType:   events.VacationCreated,
	},
	KindBusinessTrip: {
		Table:       "business_trips",
		DetailField: "destination",
		Label:       "Командировка",
		ListPath:    "/business-trips",
		PageParam:   "business_trips_page",
		EventType:   events.BusinessTripCreated,
	},
	KindSickLeave: {
		Table:       "sick_leaves",
		DetailField: "reason",
		Label:       "Больничный",
		ListPath:    "/sick-leaves",
		PageParam:   "sick_leaves_page",
		EventType:   events.SickLeaveCreated,
	},
}

// Kinds lists every kind in display order.
func Kinds() []Kind {
	return []Kind{KindVacation, KindBusinessTrip, KindSickLeave}
}

func (k Kind) Info() KindInfo {
	return kinds[k]
}

func (k Kind) Valid() bool {
	_, ok := kinds[k]
	return ok
}
