package producer

import (
	"context"
	"errors"
	"testing"

	"hr-records/internal/messaging/kafka"
	kafkaMock "hr-records/internal/messaging/kafka/mock"

	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

type fakeWriter struct {
	failKeys map[string]bool
	written  []kafkago.Message
}

func (w *fakeWriter) WriteMessages(_ context.Context, msgs ...kafkago.Message) error {
	for _, m := range msgs {
		if w.failKeys[string(m.Key)] {
			return errors.New("broker unavailable")
		}
		w.written = append(w.written, m)
	}
	return nil
}

func TestProcessPendingEvents(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := kafkaMock.NewMockOutboxRepository(ctrl)
	ctx := context.Background()

	ok := kafka.OutboxEvent{ID: "1", RequestID: "req-1", AggregateType: "employee", AggregateID: "E-1", EventType: "employee_created", Topic: "t", Payload: []byte(`{}`)}
	broken := kafka.OutboxEvent{ID: "2", AggregateType: "vacation", AggregateID: "E-2", EventType: "vacation_created", Topic: "t", Payload: []byte(`{}`)}

	repo.EXPECT().ListPending(ctx, batchSize).Return([]kafka.OutboxEvent{ok, broken}, nil)
	repo.EXPECT().MarkSent(ctx, "1").Return(nil)
	repo.EXPECT().MarkFailed(ctx, broken, "broker unavailable").Return(nil)

	writer := &fakeWriter{failKeys: map[string]bool{"E-2": true}}
	err := processPendingEvents(ctx, repo, writer, zap.NewNop())

	assert.NoError(t, err)
	if assert.Len(t, writer.written, 1) {
		msg := writer.written[0]
		assert.Equal(t, "E-1", string(msg.Key))
		assert.Contains(t, msg.Headers, kafkago.Header{Key: "request_id", Value: []byte("req-1")})
		assert.Contains(t, msg.Headers, kafkago.Header{Key: "event_type", Value: []byte("employee_created")})
	}
}

func TestProcessPendingEvents_ListError(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := kafkaMock.NewMockOutboxRepository(ctrl)
	ctx := context.Background()

	repo.EXPECT().ListPending(ctx, batchSize).Return(nil, errors.New("db down"))

	err := processPendingEvents(ctx, repo, &fakeWriter{}, zap.NewNop())

	assert.EqualError(t, err, "db down")
}
