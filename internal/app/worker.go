package app

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"hr-records/internal/config"
	"hr-records/internal/messaging/kafka"
	"hr-records/internal/messaging/kafka/producer"
	"hr-records/internal/shared/connection"

	"go.uber.org/zap"
)

// RunWorker publishes outbox events to Kafka until SIGINT or SIGTERM.
func RunWorker(cfg config.Config) error {
	logger := zap.L().Named("app.worker")

	if cfg.KafkaBroker == "" {
		return errors.New("KAFKA_BROKER is required")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := connection.ConnectGORMWithRetry(ctx, postgresConfig(cfg), cfg.ConnectRetries)
	if err != nil {
		return err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	kafkaWriter, err := connection.ConnectKafkaWithRetry(ctx, cfg.KafkaBroker, cfg.ConnectRetries)
	if err != nil {
		return err
	}
	defer kafkaWriter.Close()

	outboxRepo := kafka.NewOutboxRepository(db)

	producer.ProcessOutboxEvents(ctx, outboxRepo, kafkaWriter, logger, cfg.OutboxPollInterval)

	logger.Info("worker shutting down")
	return nil
}
