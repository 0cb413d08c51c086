package employee

import (
	"context"

	"hr-records/internal/shared/listing"

	"gorm.io/gorm"
)

const PageSize = 10

var ListSpec = listing.Spec{
	Table:        "employees",
	SearchColumn: "employees.last_name",
	IDColumn:     "employees.employee_id",
	PageSize:     PageSize,
}

//go:generate mockgen -source=employee_repo.go -destination=mock/employee_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, empl *Employee) error
	Update(ctx context.Context, empl *Employee) error
	FindByID(ctx context.Context, id string) (*Employee, error)
	Search(ctx context.Context, params listing.Params) (listing.Page[Employee], string, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	return &repository{db: tx}
}

func (r *repository) Create(ctx context.Context, empl *Employee) error {
	return r.db.WithContext(ctx).Create(empl).Error
}

func (r *repository) Update(ctx context.Context, empl *Employee) error {
	return r.db.WithContext(ctx).Save(empl).Error
}

func (r *repository) FindByID(ctx context.Context, id string) (*Employee, error) {
	var empl Employee
	err := r.db.WithContext(ctx).
		First(&empl, "employee_id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &empl, nil
}

func (r *repository) Search(ctx context.Context, params listing.Params) (listing.Page[Employee], string, error) {
	return listing.Search[Employee](ctx, r.db, ListSpec, params)
}
