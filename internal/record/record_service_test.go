package record_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"hr-records/internal/employee"
	employeeerrors "hr-records/internal/employee/errors"
	"hr-records/internal/events"
	"hr-records/internal/messaging/kafka"
	"hr-records/internal/record"
	recorderrors "hr-records/internal/record/errors"
	"hr-records/internal/shared/apperror"
	"hr-records/internal/shared/contextutil"
	"hr-records/internal/shared/listing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupService(t *testing.T) (record.Service, *gorm.DB) {
	t.Helper()
	db := openDB(t, &kafka.OutboxEvent{})
	svc := record.NewServiceWithOutbox(
		db,
		employee.NewRepository(db),
		record.NewRepositories(db),
		kafka.NewOutboxRepository(db),
	)
	return svc, db
}

func vacationForm(start, end string) *record.VacationForm {
	return &record.VacationForm{
		TypeVacation: "Ежегодный",
		Period:       record.Period{StartDate: start, EndDate: end},
	}
}

func countRows(t *testing.T, db *gorm.DB, model any) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(model).Count(&n).Error)
	return n
}

func TestService_Create(t *testing.T) {
	t.Run("success - record and outbox row are written together", func(t *testing.T) {
		svc, db := setupService(t)
		seedEmployee(t, db, "E1", "Петров")
		ctx := contextutil.WithRequestID(context.Background(), "req-1")

		resp, err := svc.Create(ctx, record.KindVacation, "E1", vacationForm("2024-07-01", "2024-07-14"))

		require.NoError(t, err)
		assert.Equal(t, "Ежегодный", resp.Detail)
		assert.Equal(t, "2024-07-01", resp.StartDate)
		assert.Equal(t, "2024-07-14", resp.EndDate)
		require.NotNil(t, resp.Employee)
		assert.Equal(t, "Петров", resp.Employee.LastName)

		var stored record.Vacation
		require.NoError(t, db.First(&stored, "id = ?", resp.ID).Error)
		assert.Equal(t, "E1", stored.EmployeeID)

		var outbox kafka.OutboxEvent
		require.NoError(t, db.First(&outbox).Error)
		assert.Equal(t, events.VacationCreated, outbox.EventType)
		assert.Equal(t, events.RecordsChangedTopic, outbox.Topic)
		assert.Equal(t, resp.ID, outbox.AggregateID)

		var payload events.RecordChangedEvent
		require.NoError(t, json.Unmarshal(outbox.Payload, &payload))
		assert.Equal(t, "E1", payload.EmployeeID)
		assert.Equal(t, resp.ID, payload.RecordID)
		assert.Equal(t, "req-1", payload.RequestID)
	})

	t.Run("single day period is allowed", func(t *testing.T) {
		svc, db := setupService(t)
		seedEmployee(t, db, "E1", "Петров")

		form := &record.SickLeaveForm{Reason: "ОРВИ", Period: record.Period{StartDate: "2024-02-02", EndDate: "2024-02-02"}}
		_, err := svc.Create(context.Background(), record.KindSickLeave, "E1", form)

		require.NoError(t, err)
		assert.EqualValues(t, 1, countRows(t, db, &record.SickLeave{}))
	})

	t.Run("end before start", func(t *testing.T) {
		svc, db := setupService(t)
		seedEmployee(t, db, "E1", "Петров")

		_, err := svc.Create(context.Background(), record.KindVacation, "E1", vacationForm("2024-07-14", "2024-07-01"))

		assert.ErrorIs(t, err, recorderrors.ErrInvalidDateRange)
		httpErr := apperror.ToHTTP(err)
		assert.Equal(t, 400, httpErr.Status)
		assert.Contains(t, httpErr.Details, "end_date")
		assert.Zero(t, countRows(t, db, &record.Vacation{}))
	})

	t.Run("unknown employee rolls back", func(t *testing.T) {
		svc, db := setupService(t)

		_, err := svc.Create(context.Background(), record.KindVacation, "E404", vacationForm("2024-07-01", "2024-07-02"))

		assert.ErrorIs(t, err, employeeerrors.ErrEmployeeNotFound)
		assert.Zero(t, countRows(t, db, &record.Vacation{}))
		assert.Zero(t, countRows(t, db, &kafka.OutboxEvent{}))
	})

	t.Run("missing employee id", func(t *testing.T) {
		svc, _ := setupService(t)

		_, err := svc.Create(context.Background(), record.KindVacation, "  ", vacationForm("2024-07-01", "2024-07-02"))

		httpErr := apperror.ToHTTP(err)
		assert.Equal(t, 400, httpErr.Status)
		assert.Equal(t, map[string]string{"employee_id": "Обязательное поле"}, httpErr.Details)
	})

	t.Run("unknown kind", func(t *testing.T) {
		svc, _ := setupService(t)

		_, err := svc.Create(context.Background(), record.Kind("holiday"), "E1", vacationForm("2024-07-01", "2024-07-02"))

		assert.ErrorIs(t, err, recorderrors.ErrUnknownKind)
	})
}

func TestService_GetForm(t *testing.T) {
	svc, db := setupService(t)
	seedEmployee(t, db, "E1", "Петров")
	ctx := context.Background()

	resp, err := svc.GetForm(ctx, record.KindBusinessTrip, "E1")
	require.NoError(t, err)
	assert.Equal(t, "Командировка", resp.Label)
	assert.Equal(t, "destination", resp.DetailField)
	assert.Equal(t, "E1", resp.Employee.EmployeeID)
	assert.IsType(t, &record.BusinessTripForm{}, resp.Form)

	_, err = svc.GetForm(ctx, record.KindBusinessTrip, "E404")
	assert.ErrorIs(t, err, employeeerrors.ErrEmployeeNotFound)

	_, err = svc.GetForm(ctx, record.KindBusinessTrip, "")
	assert.Equal(t, 400, apperror.ToHTTP(err).Status)
}

func TestService_ListAndEmployeeViews(t *testing.T) {
	svc, db := setupService(t)
	seedEmployee(t, db, "E1", "Петров")
	seedTrip(t, db, "E1", "Казань", date(2024, time.March, 1), date(2024, time.March, 5))
	seedTrip(t, db, "E1", "Омск", date(2024, time.May, 1), date(2024, time.May, 3))
	ctx := context.Background()

	list, err := svc.List(ctx, record.KindBusinessTrip, listing.Params{Query: "петров", Month: "5"})
	require.NoError(t, err)
	assert.Equal(t, "Петров", list.SearchQuery)
	require.Len(t, list.Page.Items, 1)
	assert.Equal(t, "Омск", list.Page.Items[0].Detail)
	assert.Equal(t, "Петров", list.Page.Items[0].Employee.LastName)

	page, err := svc.PageForEmployee(ctx, record.KindBusinessTrip, "E1", 1, 4)
	require.NoError(t, err)
	require.Len(t, page.Items, 2)
	assert.Equal(t, "Омск", page.Items[0].Detail)

	entries, err := svc.EntriesForEmployee(ctx, record.KindBusinessTrip, "E1", record.Chronological)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "Казань", entries[0].Detail)
	assert.Equal(t, record.KindBusinessTrip, entries[0].Kind)

	_, err = svc.List(ctx, record.Kind("holiday"), listing.Params{})
	assert.ErrorIs(t, err, recorderrors.ErrUnknownKind)
}
