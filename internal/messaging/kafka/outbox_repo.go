package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	OutboxStatusPending = "pending"
	OutboxStatusSent    = "sent"
	OutboxStatusFailed  = "failed"
)

const (
	maxErrorMessageLen = 500
	retryStep          = 15 * time.Second
	maxRetrySteps      = 10
)

type OutboxEvent struct {
	ID            string `gorm:"primaryKey;size:36"`
	RequestID     string `gorm:"size:64"`
	AggregateType string `gorm:"size:50;not null"`
	AggregateID   string `gorm:"size:64;not null"`
	EventType     string `gorm:"size:50;not null"`
	Topic         string `gorm:"size:100;not null"`
	Payload       []byte `gorm:"not null"`
	Status        string `gorm:"size:20;not null;index"`
	RetryCount    int    `gorm:"not null;default:0"`
	ErrorMessage  *string
	NextRetryAt   *time.Time
	ProcessedAt   *time.Time
	CreatedAt     time.Time `gorm:"index"`
	UpdatedAt     time.Time
}

func (OutboxEvent) TableName() string { return "outbox_events" }

// NewOutboxEvent builds a pending event with payload marshalled as JSON.
func NewOutboxEvent(requestID, aggregateType, aggregateID, eventType, topic string, payload any) (OutboxEvent, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return OutboxEvent{}, fmt.Errorf("marshal outbox payload: %w", err)
	}
	return OutboxEvent{
		ID:            uuid.NewString(),
		RequestID:     requestID,
		AggregateType: aggregateType,
		AggregateID:   aggregateID,
		EventType:     eventType,
		Topic:         topic,
		Payload:       body,
		Status:        OutboxStatusPending,
	}, nil
}

//go:generate mockgen -source=outbox_repo.go -destination=mock/outbox_repo_mock.go -package=mock

type OutboxRepository interface {
	WithTx(tx *gorm.DB) OutboxRepository
	Create(ctx context.Context, event OutboxEvent) error
	ListPending(ctx context.Context, limit int) ([]OutboxEvent, error)
	MarkSent(ctx context.Context, id string) error
	MarkFailed(ctx context.Context, event OutboxEvent, reason string) error
}

type outboxRepository struct {
	db  *gorm.DB
	now func() time.Time
}

func NewOutboxRepository(db *gorm.DB) OutboxRepository {
	return &outboxRepository{db: db, now: time.Now}
}

func (r *outboxRepository) WithTx(tx *gorm.DB) OutboxRepository {
	return &outboxRepository{db: tx, now: r.now}
}

func (r *outboxRepository) Create(ctx context.Context, event OutboxEvent) error {
	if err := ValidateOutboxEvent(event); err != nil {
		return err
	}
	return r.db.WithContext(ctx).Create(&event).Error
}

func (r *outboxRepository) ListPending(ctx context.Context, limit int) ([]OutboxEvent, error) {
	events := make([]OutboxEvent, 0, limit)
	err := r.db.WithContext(ctx).
		Where("status IN ?", []string{OutboxStatusPending, OutboxStatusFailed}).
		Where("next_retry_at IS NULL OR next_retry_at <= ?", r.now().UTC()).
		Order("created_at ASC").
		Limit(limit).
		Find(&events).Error
	if err != nil {
		return nil, err
	}
	return events, nil
}

func (r *outboxRepository) MarkSent(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Model(&OutboxEvent{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"status":        OutboxStatusSent,
			"processed_at":  r.now().UTC(),
			"error_message": nil,
		}).Error
}

// MarkFailed schedules the next attempt 15s later per previous failure, capped at 10 steps.
func (r *outboxRepository) MarkFailed(ctx context.Context, event OutboxEvent, reason string) error {
	steps := event.RetryCount + 1
	if steps > maxRetrySteps {
		steps = maxRetrySteps
	}
	if runes := []rune(reason); len(runes) > maxErrorMessageLen {
		reason = string(runes[:maxErrorMessageLen])
	}

	return r.db.WithContext(ctx).
		Model(&OutboxEvent{}).
		Where("id = ?", event.ID).
		Updates(map[string]any{
			"status":        OutboxStatusFailed,
			"retry_count":   gorm.Expr("retry_count + 1"),
			"error_message": reason,
			"next_retry_at": r.now().UTC().Add(time.Duration(steps) * retryStep),
		}).Error
}

func ValidateOutboxEvent(event OutboxEvent) error {
	if event.ID == "" {
		return errors.New("outbox id is required")
	}
	if event.Topic == "" {
		return errors.New("outbox topic is required")
	}
	if len(event.Payload) == 0 {
		return errors.New("outbox payload is required")
	}
	switch event.Status {
	case OutboxStatusPending, OutboxStatusSent, OutboxStatusFailed:
		return nil
	default:
		return fmt.Errorf("invalid outbox status: %s", event.Status)
	}
}
