package kafka_test

import (
	"context"
	"strings"
	"testing"

	"hr-records/internal/events"
	"hr-records/internal/messaging/kafka"
	"hr-records/internal/shared/testdb"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEvent(t *testing.T, employeeID string) kafka.OutboxEvent {
	t.Helper()
	ev, err := kafka.NewOutboxEvent("req-1", "employee", employeeID, events.EmployeeCreated, events.RecordsChangedTopic,
		events.RecordChangedEvent{EventType: events.EmployeeCreated, EmployeeID: employeeID})
	require.NoError(t, err)
	return ev
}

func TestNewOutboxEvent(t *testing.T) {
	ev := newEvent(t, "E-1")

	assert.NotEmpty(t, ev.ID)
	assert.Equal(t, kafka.OutboxStatusPending, ev.Status)
	assert.Equal(t, events.RecordsChangedTopic, ev.Topic)
	assert.JSONEq(t, `{"event_type":"employee_created","employee_id":"E-1","occurred_at":"0001-01-01T00:00:00Z"}`, string(ev.Payload))
}

func TestValidateOutboxEvent(t *testing.T) {
	ev := newEvent(t, "E-1")
	assert.NoError(t, kafka.ValidateOutboxEvent(ev))

	noTopic := ev
	noTopic.Topic = ""
	assert.Error(t, kafka.ValidateOutboxEvent(noTopic))

	badStatus := ev
	badStatus.Status = "queued"
	assert.Error(t, kafka.ValidateOutboxEvent(badStatus))
}

func TestOutboxRepository_Lifecycle(t *testing.T) {
	db := testdb.Open(t, &kafka.OutboxEvent{})
	repo := kafka.NewOutboxRepository(db)
	ctx := context.Background()

	first := newEvent(t, "E-1")
	second := newEvent(t, "E-2")
	require.NoError(t, repo.Create(ctx, first))
	require.NoError(t, repo.Create(ctx, second))

	invalid := newEvent(t, "E-3")
	invalid.Payload = nil
	assert.Error(t, repo.Create(ctx, invalid))

	pending, err := repo.ListPending(ctx, 10)
	require.NoError(t, err)
	assert.Len(t, pending, 2)

	require.NoError(t, repo.MarkSent(ctx, first.ID))
	require.NoError(t, repo.MarkFailed(ctx, second, strings.Repeat("x", 600)))

	pending, err = repo.ListPending(ctx, 10)
	require.NoError(t, err)
	assert.Empty(t, pending, "sent events and events waiting for retry are not listed")

	var failed kafka.OutboxEvent
	require.NoError(t, db.First(&failed, "id = ?", second.ID).Error)
	assert.Equal(t, kafka.OutboxStatusFailed, failed.Status)
	assert.Equal(t, 1, failed.RetryCount)
	require.NotNil(t, failed.ErrorMessage)
	assert.Len(t, *failed.ErrorMessage, 500)
	require.NotNil(t, failed.NextRetryAt)

	var sent kafka.OutboxEvent
	require.NoError(t, db.First(&sent, "id = ?", first.ID).Error)
	assert.Equal(t, kafka.OutboxStatusSent, sent.Status)
	assert.NotNil(t, sent.ProcessedAt)
}
