package record

import (
	"context"
	"strings"
	"time"

	"hr-records/internal/employee"
	"hr-records/internal/events"
	"hr-records/internal/messaging/kafka"
	recorderrors "hr-records/internal/record/errors"
	"hr-records/internal/shared/contextutil"
	"hr-records/internal/shared/listing"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=record_service.go -destination=mock/record_service_mock.go -package=mock
type Service interface {
	List(ctx context.Context, kind Kind, params listing.Params) (ListResponse, error)
	GetForm(ctx context.Context, kind Kind, employeeID string) (FormResponse, error)
	Create(ctx context.Context, kind Kind, employeeID string, form Form) (RecordResponse, error)
	PageForEmployee(ctx context.Context, kind Kind, employeeID string, number, size int) (listing.Page[RecordResponse], error)
	EntriesForEmployee(ctx context.Context, kind Kind, employeeID string, order Order) ([]Entry, error)
}

type service struct {
	db        *gorm.DB
	employees employee.Repository
	stores    map[Kind]store
	outbox    kafka.OutboxRepository
	logger    *zap.Logger
}

func NewService(db *gorm.DB, employees employee.Repository, repos Repositories, logger ...*zap.Logger) Service {
	return NewServiceWithOutbox(db, employees, repos, nil, logger...)
}

func NewServiceWithOutbox(
	db *gorm.DB,
	employees employee.Repository,
	repos Repositories,
	outboxRepo kafka.OutboxRepository,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("record.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("record.service")
	}
	return &service{
		db:        db,
		employees: employees,
		stores:    newStores(repos),
		outbox:    outboxRepo,
		logger:    l,
	}
}

func (s *service) store(kind Kind) (store, error) {
	st, ok := s.stores[kind]
	if !ok {
		return nil, recorderrors.ErrUnknownKind
	}
	return st, nil
}

func (s *service) List(ctx context.Context, kind Kind, params listing.Params) (ListResponse, error) {
	st, err := s.store(kind)
	if err != nil {
		return ListResponse{}, err
	}

	s.logger.Debug("list records requested",
		zap.String("kind", string(kind)),
		zap.String("q", params.Query),
		zap.String("year", params.Year),
		zap.String("month", params.Month),
		zap.String("page", params.Page),
	)
	page, term, err := st.search(ctx, params)
	if err != nil {
		s.logger.Error("list records failed", zap.String("kind", string(kind)), zap.Error(err))
		return ListResponse{}, err
	}

	return ListResponse{
		Kind:        kind,
		Label:       kind.Info().Label,
		Page:        page,
		SearchQuery: term,
	}, nil
}

func (s *service) GetForm(ctx context.Context, kind Kind, employeeID string) (FormResponse, error) {
	if !kind.Valid() {
		return FormResponse{}, recorderrors.ErrUnknownKind
	}
	employeeID = strings.TrimSpace(employeeID)
	if employeeID == "" {
		return FormResponse{}, recorderrors.ErrMissingEmployeeID
	}

	empl, err := s.employees.FindByID(ctx, employeeID)
	if err != nil {
		return FormResponse{}, mapRepositoryError(err)
	}

	info := kind.Info()
	return FormResponse{
		Kind:        kind,
		Label:       info.Label,
		DetailField: info.DetailField,
		Form:        NewForm(kind),
		Employee:    employee.MapToResponse(*empl),
	}, nil
}

func (s *service) Create(ctx context.Context, kind Kind, employeeID string, form Form) (RecordResponse, error) {
	st, err := s.store(kind)
	if err != nil {
		return RecordResponse{}, err
	}

	rid := contextutil.GetRequestID(ctx)
	employeeID = strings.TrimSpace(employeeID)
	s.logger.Debug("create record requested",
		zap.String("request_id", rid),
		zap.String("kind", string(kind)),
		zap.String("employee_id", employeeID),
	)
	if employeeID == "" {
		return RecordResponse{}, recorderrors.ErrMissingEmployeeID
	}

	entry, err := parseDraft(kind, employeeID, form.Draft())
	if err != nil {
		s.logger.Warn("create record invalid period",
			zap.String("kind", string(kind)),
			zap.Error(err),
		)
		return RecordResponse{}, err
	}

	var owner *employee.Employee
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		empl, err := s.employees.WithTx(tx).FindByID(ctx, employeeID)
		if err != nil {
			s.logger.Warn("create record employee lookup failed",
				zap.String("employee_id", employeeID),
				zap.Error(err),
			)
			return mapRepositoryError(err)
		}
		owner = empl

		if err := st.withTx(tx).create(ctx, entry); err != nil {
			s.logger.Error("create record persist failed", zap.String("kind", string(kind)), zap.Error(err))
			return err
		}

		return s.queueEvent(ctx, tx, entry)
	})
	if err != nil {
		return RecordResponse{}, err
	}

	s.logger.Info("create record success",
		zap.String("request_id", rid),
		zap.String("kind", string(kind)),
		zap.String("employee_id", employeeID),
		zap.String("record_id", entry.ID.String()),
	)

	return mapEntry(entry, owner), nil
}

func (s *service) PageForEmployee(ctx context.Context, kind Kind, employeeID string, number, size int) (listing.Page[RecordResponse], error) {
	st, err := s.store(kind)
	if err != nil {
		return listing.Page[RecordResponse]{}, err
	}
	page, err := st.pageForEmployee(ctx, employeeID, number, size)
	if err != nil {
		s.logger.Error("employee record page failed",
			zap.String("kind", string(kind)),
			zap.String("employee_id", employeeID),
			zap.Error(err),
		)
		return listing.Page[RecordResponse]{}, err
	}
	return page, nil
}

func (s *service) EntriesForEmployee(ctx context.Context, kind Kind, employeeID string, order Order) ([]Entry, error) {
	st, err := s.store(kind)
	if err != nil {
		return nil, err
	}
	entries, err := st.listForEmployee(ctx, employeeID, order)
	if err != nil {
		s.logger.Error("employee records failed",
			zap.String("kind", string(kind)),
			zap.String("employee_id", employeeID),
			zap.Error(err),
		)
		return nil, err
	}
	return entries, nil
}

// parseDraft checks the submitted period and turns the draft into a new entry.
func parseDraft(kind Kind, employeeID string, d Draft) (Entry, error) {
	start, err := time.Parse(employee.DateLayout, d.StartDate)
	if err != nil {
		return Entry{}, recorderrors.ErrInvalidStartDate
	}
	end, err := time.Parse(employee.DateLayout, d.EndDate)
	if err != nil {
		return Entry{}, recorderrors.ErrInvalidEndDate
	}
	if end.Before(start) {
		return Entry{}, recorderrors.ErrInvalidDateRange
	}

	return Entry{
		Kind:       kind,
		ID:         uuid.New(),
		EmployeeID: employeeID,
		Detail:     strings.TrimSpace(d.Detail),
		StartDate:  start,
		EndDate:    end,
	}, nil
}

func (s *service) queueEvent(ctx context.Context, tx *gorm.DB, entry Entry) error {
	if s.outbox == nil {
		return nil
	}

	rid := contextutil.GetRequestID(ctx)
	eventType := entry.Kind.Info().EventType
	event := events.RecordChangedEvent{
		EventType:  eventType,
		RequestID:  rid,
		EmployeeID: entry.EmployeeID,
		RecordID:   entry.ID.String(),
		OccurredAt: time.Now().UTC(),
	}
	outboxEvent, err := kafka.NewOutboxEvent(rid, string(entry.Kind), entry.ID.String(), eventType, events.RecordsChangedTopic, event)
	if err != nil {
		s.logger.Error("marshal event failed", zap.String("request_id", rid), zap.Error(err))
		return err
	}

	if err := s.outbox.WithTx(tx).Create(ctx, outboxEvent); err != nil {
		s.logger.Error("record outbox persist failed",
			zap.String("record_id", entry.ID.String()),
			zap.Error(err),
		)
		return err
	}
	return nil
}
