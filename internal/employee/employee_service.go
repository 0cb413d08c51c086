package employee

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	employeeerrors "hr-records/internal/employee/errors"
	"hr-records/internal/events"
	"hr-records/internal/messaging/kafka"
	"hr-records/internal/shared/contextutil"
	"hr-records/internal/shared/counter"
	"hr-records/internal/shared/listing"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	EmployeeIDCounter = "employee_id"

	// generatedIDAttempts bounds how many counter values Create skips over
	// when they collide with hand-entered personnel numbers.
	generatedIDAttempts = 20
)

//go:generate mockgen -source=employee_service.go -destination=mock/employee_service_mock.go -package=mock
type Service interface {
	List(ctx context.Context, params listing.Params) (ListResponse, error)
	GetByID(ctx context.Context, id string) (EmployeeResponse, error)
	GetEditForm(ctx context.Context, id string) (FormResponse, error)
	Create(ctx context.Context, form EmployeeForm) (EmployeeResponse, error)
	Update(ctx context.Context, id string, form EmployeeForm) (EmployeeResponse, error)
}

type service struct {
	db      *gorm.DB
	repo    Repository
	counter counter.Repository
	outbox  kafka.OutboxRepository
	logger  *zap.Logger
}

func NewService(db *gorm.DB, repo Repository, counter counter.Repository, logger ...*zap.Logger) Service {
	return NewServiceWithOutbox(db, repo, counter, nil, logger...)
}

func NewServiceWithOutbox(
	db *gorm.DB,
	repo Repository,
	counter counter.Repository,
	outboxRepo kafka.OutboxRepository,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	return &service{
		db:      db,
		repo:    repo,
		counter: counter,
		outbox:  outboxRepo,
		logger:  l,
	}
}

func (s *service) List(ctx context.Context, params listing.Params) (ListResponse, error) {
	s.logger.Debug("list employees requested",
		zap.String("q", params.Query),
		zap.String("page", params.Page),
	)
	page, term, err := s.repo.Search(ctx, params)
	if err != nil {
		s.logger.Error("list employees failed", zap.Error(err))
		return ListResponse{}, mapRepositoryError(err)
	}

	return ListResponse{
		Page:        listing.MapPage(page, MapToResponse),
		SearchQuery: term,
	}, nil
}

func (s *service) GetByID(ctx context.Context, id string) (EmployeeResponse, error) {
	s.logger.Debug("get employee by id requested", zap.String("employee_id", id))
	empl, err := s.repo.FindByID(ctx, id)
	if err != nil {
		s.logger.Warn("get employee by id failed", zap.String("employee_id", id), zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	return MapToResponse(*empl), nil
}

func (s *service) GetEditForm(ctx context.Context, id string) (FormResponse, error) {
	empl, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return FormResponse{}, mapRepositoryError(err)
	}

	resp := MapToResponse(*empl)
	return FormResponse{Form: formFromEmployee(*empl), Employee: &resp}, nil
}

func (s *service) Create(ctx context.Context, form EmployeeForm) (EmployeeResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create employee requested",
		zap.String("request_id", rid),
		zap.String("employee_id", form.EmployeeID),
		zap.String("email", form.Email),
	)

	hireDate, err := time.Parse(DateLayout, form.HireDate)
	if err != nil {
		s.logger.Warn("create employee invalid hire_date",
			zap.String("hire_date", form.HireDate),
			zap.Error(err),
		)
		return EmployeeResponse{}, employeeerrors.ErrInvalidHireDate
	}

	empl := &Employee{
		EmployeeID:  strings.TrimSpace(form.EmployeeID),
		LastName:    strings.TrimSpace(form.LastName),
		FirstName:   strings.TrimSpace(form.FirstName),
		MiddleName:  strings.TrimSpace(form.MiddleName),
		Position:    strings.TrimSpace(form.Position),
		HireDate:    hireDate,
		Email:       strings.TrimSpace(form.Email),
		PhoneNumber: strings.TrimSpace(form.PhoneNumber),
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if empl.EmployeeID == "" {
			id, err := s.nextEmployeeID(ctx, tx)
			if err != nil {
				return err
			}
			empl.EmployeeID = id
		}

		if err := s.repo.WithTx(tx).Create(ctx, empl); err != nil {
			s.logger.Error("create employee persist failed", zap.Error(err))
			return mapRepositoryError(err)
		}

		return s.queueEvent(ctx, tx, events.EmployeeCreated, empl.EmployeeID)
	})
	if err != nil {
		return EmployeeResponse{}, err
	}

	s.logger.Info("create employee success",
		zap.String("request_id", rid),
		zap.String("employee_id", empl.EmployeeID),
	)

	return MapToResponse(*empl), nil
}

// nextEmployeeID draws counter values until one is not already taken by a
// manually entered personnel number.
func (s *service) nextEmployeeID(ctx context.Context, tx *gorm.DB) (string, error) {
	counterRepo := s.counter.WithTx(tx)
	repo := s.repo.WithTx(tx)

	for attempt := 0; attempt < generatedIDAttempts; attempt++ {
		nextVal, err := counterRepo.GetNextValue(ctx, EmployeeIDCounter)
		if err != nil {
			s.logger.Error("create employee generate id failed", zap.Error(err))
			return "", err
		}
		id := fmt.Sprintf("EMP-%06d", nextVal)

		_, err = repo.FindByID(ctx, id)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return id, nil
		}
		if err != nil {
			s.logger.Error("create employee check generated id failed", zap.Error(err))
			return "", err
		}
		s.logger.Warn("generated employee id already taken", zap.String("employee_id", id))
	}

	return "", employeeerrors.ErrEmployeeAlreadyExists
}

func (s *service) Update(ctx context.Context, id string, form EmployeeForm) (EmployeeResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("update employee requested",
		zap.String("request_id", rid),
		zap.String("employee_id", id),
	)

	if submitted := strings.TrimSpace(form.EmployeeID); submitted != "" && submitted != id {
		s.logger.Warn("update employee id mismatch",
			zap.String("employee_id", id),
			zap.String("submitted_employee_id", submitted),
		)
		return EmployeeResponse{}, employeeerrors.ErrEmployeeIDMismatch
	}

	hireDate, err := time.Parse(DateLayout, form.HireDate)
	if err != nil {
		s.logger.Warn("update employee invalid hire_date",
			zap.String("hire_date", form.HireDate),
			zap.Error(err),
		)
		return EmployeeResponse{}, employeeerrors.ErrInvalidHireDate
	}

	var empl *Employee
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)

		existing, err := qtx.FindByID(ctx, id)
		if err != nil {
			s.logger.Warn("update employee fetch existing failed", zap.Error(err))
			return mapRepositoryError(err)
		}

		existing.LastName = strings.TrimSpace(form.LastName)
		existing.FirstName = strings.TrimSpace(form.FirstName)
		existing.MiddleName = strings.TrimSpace(form.MiddleName)
		existing.Position = strings.TrimSpace(form.Position)
		existing.HireDate = hireDate
		existing.Email = strings.TrimSpace(form.Email)
		existing.PhoneNumber = strings.TrimSpace(form.PhoneNumber)

		if err := qtx.Update(ctx, existing); err != nil {
			s.logger.Error("update employee persist failed", zap.Error(err))
			return mapRepositoryError(err)
		}
		empl = existing

		return s.queueEvent(ctx, tx, events.EmployeeUpdated, id)
	})
	if err != nil {
		return EmployeeResponse{}, err
	}

	s.logger.Info("update employee success",
		zap.String("request_id", rid),
		zap.String("employee_id", id),
	)

	return MapToResponse(*empl), nil
}

func (s *service) queueEvent(ctx context.Context, tx *gorm.DB, eventType, employeeID string) error {
	if s.outbox == nil {
		return nil
	}

	rid := contextutil.GetRequestID(ctx)
	event := events.RecordChangedEvent{
		EventType:  eventType,
		RequestID:  rid,
		EmployeeID: employeeID,
		OccurredAt: time.Now().UTC(),
	}
	outboxEvent, err := kafka.NewOutboxEvent(rid, "employee", employeeID, eventType, events.RecordsChangedTopic, event)
	if err != nil {
		s.logger.Error("marshal event failed", zap.String("request_id", rid), zap.Error(err))
		return err
	}

	if err := s.outbox.WithTx(tx).Create(ctx, outboxEvent); err != nil {
		s.logger.Error("employee outbox persist failed",
			zap.String("employee_id", employeeID),
			zap.Error(err),
		)
		return err
	}
	return nil
}
