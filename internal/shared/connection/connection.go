package connection

import (
	"context"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v5"
	"github.com/redis/go-redis/v9"
	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const retryInterval = 5 * time.Second

type PostgresConfig struct {
	Host     string
	User     string
	Password string
	DBName   string
	Port     string
	SSLMode  string
}

func (c PostgresConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		c.Host, c.User, c.Password, c.DBName, c.Port, c.SSLMode,
	)
}

func retry[T any](ctx context.Context, what string, maxRetries int, op backoff.Operation[T]) (T, error) {
	log := zap.L().Named("connection")
	if maxRetries < 1 {
		maxRetries = 1
	}
	return backoff.Retry(ctx, op,
		backoff.WithBackOff(backoff.NewConstantBackOff(retryInterval)),
		backoff.WithMaxTries(uint(maxRetries)),
		backoff.WithNotify(func(err error, next time.Duration) {
			log.Warn(what+" connection failed, retrying",
				zap.Duration("next_attempt_in", next),
				zap.Error(err),
			)
		}),
	)
}

func ConnectGORMWithRetry(ctx context.Context, cfg PostgresConfig, maxRetries int) (*gorm.DB, error) {
	db, err := retry(ctx, "postgres", maxRetries, func() (*gorm.DB, error) {
		db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{
			Logger: gormlogger.Default.LogMode(gormlogger.Warn),
		})
		if err != nil {
			return nil, err
		}

		sqlDB, err := db.DB()
		if err != nil {
			return nil, err
		}
		if err := sqlDB.PingContext(ctx); err != nil {
			_ = sqlDB.Close()
			return nil, err
		}

		sqlDB.SetMaxOpenConns(25)
		sqlDB.SetMaxIdleConns(10)
		sqlDB.SetConnMaxLifetime(time.Hour)
		return db, nil
	})
	if err != nil {
		return nil, fmt.Errorf("database connection failed after %d retries: %w", maxRetries, err)
	}

	zap.L().Info("connected to postgres", zap.String("host", cfg.Host), zap.String("db", cfg.DBName))
	return db, nil
}

func ConnectRedisWithRetry(ctx context.Context, addr string, maxRetries int) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr: addr,
	})

	_, err := retry(ctx, "redis", maxRetries, func() (string, error) {
		return rdb.Ping(ctx).Result()
	})
	if err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis connection failed after %d retries: %w", maxRetries, err)
	}

	zap.L().Info("connected to redis", zap.String("addr", addr))
	return rdb, nil
}

// ConnectKafkaWithRetry waits until the broker accepts connections and returns
// a writer that routes every message by its own Topic.
func ConnectKafkaWithRetry(ctx context.Context, broker string, maxRetries int) (*kafkago.Writer, error) {
	_, err := retry(ctx, "kafka", maxRetries, func() (struct{}, error) {
		conn, err := kafkago.DialContext(ctx, "tcp", broker)
		if err != nil {
			return struct{}{}, err
		}
		return struct{}{}, conn.Close()
	})
	if err != nil {
		return nil, fmt.Errorf("kafka connection failed after %d retries: %w", maxRetries, err)
	}

	zap.L().Info("connected to kafka", zap.String("broker", broker))
	return &kafkago.Writer{
		Addr:                   kafkago.TCP(broker),
		Balancer:               &kafkago.Hash{},
		RequiredAcks:           kafkago.RequireAll,
		AllowAutoTopicCreation: true,
	}, nil
}
