package record

import (
	"context"

	"hr-records/internal/shared/listing"

	"gorm.io/gorm"
)

// PageSize is the page size of the per-kind list views.
const PageSize = 3

// Order picks the date direction of an employee's records.
type Order int

const (
	// RecentFirst sorts by start date, newest first.
	RecentFirst Order = iota
	// Chronological sorts by start date, oldest first.
	Chronological
)

// ListSpec searches records by the owning employee's last name.
func ListSpec(kind Kind) listing.Spec {
	table := kind.Info().Table
	return listing.Spec{
		Table:        table,
		Join:         "JOIN employees ON employees.employee_id = " + table + ".employee_id",
		SearchColumn: "employees.last_name",
		StartColumn:  table + ".start_date",
		EndColumn:    table + ".end_date",
		IDColumn:     table + ".id",
		PageSize:     PageSize,
	}
}

type Repository[T Entity] interface {
	WithTx(tx *gorm.DB) Repository[T]
	Create(ctx context.Context, rec *T) error
	Search(ctx context.Context, params listing.Params) (listing.Page[T], string, error)
	PageForEmployee(ctx context.Context, employeeID string, number, size int) (listing.Page[T], error)
	ListForEmployee(ctx context.Context, employeeID string, order Order) ([]T, error)
}

type repository[T Entity] struct {
	db   *gorm.DB
	kind Kind
}

func NewRepository[T Entity](db *gorm.DB, kind Kind) Repository[T] {
	return &repository[T]{db: db, kind: kind}
}

func (r *repository[T]) WithTx(tx *gorm.DB) Repository[T] {
	return &repository[T]{db: tx, kind: r.kind}
}

func (r *repository[T]) Create(ctx context.Context, rec *T) error {
	return r.db.WithContext(ctx).Create(rec).Error
}

func (r *repository[T]) Search(ctx context.Context, params listing.Params) (listing.Page[T], string, error) {
	return listing.Search[T](ctx, r.db, ListSpec(r.kind), params, preloadEmployee)
}

func (r *repository[T]) PageForEmployee(ctx context.Context, employeeID string, number, size int) (listing.Page[T], error) {
	query := r.db.WithContext(ctx).
		Model(new(T)).
		Where("employee_id = ?", employeeID).
		Order("start_date DESC").
		Order("id ASC")
	return listing.Paginate[T](ctx, query, number, size)
}

func (r *repository[T]) ListForEmployee(ctx context.Context, employeeID string, order Order) ([]T, error) {
	direction := "start_date DESC"
	if order == Chronological {
		direction = "start_date ASC"
	}

	var items []T
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Order(direction).
		Order("id ASC").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func preloadEmployee(db *gorm.DB) *gorm.DB {
	return db.Preload("Employee")
}

// Repositories bundles one repository per kind.
type Repositories struct {
	Vacations     Repository[Vacation]
	BusinessTrips Repository[BusinessTrip]
	SickLeaves    Repository[SickLeave]
}

func NewRepositories(db *gorm.DB) Repositories {
	return Repositories{
		Vacations:     NewRepository[Vacation](db, KindVacation),
		BusinessTrips: NewRepository[BusinessTrip](db, KindBusinessTrip),
		SickLeaves:    NewRepository[SickLeave](db, KindSickLeave),
	}
}
