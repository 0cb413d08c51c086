package detail

import (
	"context"
	"sync"

	"hr-records/internal/employee"
	"hr-records/internal/record"
	"hr-records/internal/shared/listing"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type Service interface {
	GetDetail(ctx context.Context, employeeID string, pages Pages) (EmployeeDetail, error)
}

type service struct {
	employees employee.Service
	records   record.Service
	logger    *zap.Logger
}

func NewService(employees employee.Service, records record.Service, logger ...*zap.Logger) Service {
	l := zap.L().Named("detail.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("detail.service")
	}
	return &service{employees: employees, records: records, logger: l}
}

// GetDetail loads the employee and one page of each record kind. The three
// pages are fetched concurrently and paginate independently.
func (s *service) GetDetail(ctx context.Context, employeeID string, pages Pages) (EmployeeDetail, error) {
	empl, err := s.employees.GetByID(ctx, employeeID)
	if err != nil {
		return EmployeeDetail{}, err
	}

	detail := EmployeeDetail{Employee: empl}
	var mu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	for _, kind := range record.Kinds() {
		number := pages[kind]
		if number == 0 {
			number = 1
		}
		g.Go(func() error {
			page, err := s.records.PageForEmployee(gctx, kind, employeeID, number, PageSize)
			if err != nil {
				return err
			}
			mu.Lock()
			detail.set(kind, page)
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		s.logger.Error("employee detail failed", zap.String("employee_id", employeeID), zap.Error(err))
		return EmployeeDetail{}, err
	}

	s.logger.Debug("employee detail loaded",
		zap.String("employee_id", employeeID),
		zap.Int("vacations", len(detail.Vacations.Items)),
		zap.Int("business_trips", len(detail.BusinessTrips.Items)),
		zap.Int("sick_leaves", len(detail.SickLeaves.Items)),
	)
	return detail, nil
}

// PagesFromQuery reads each kind's page parameter through get.
func PagesFromQuery(get func(string) string) Pages {
	pages := make(Pages, len(record.Kinds()))
	for _, kind := range record.Kinds() {
		pages[kind] = listing.ParsePage(get(kind.Info().PageParam))
	}
	return pages
}
