package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gamerspanglao-sys/game-time-keeper-sub002/internal/activity"
	"github.com/gamerspanglao-sys/game-time-keeper-sub002/internal/events"
	"github.com/gamerspanglao-sys/game-time-keeper-sub002/internal/messaging/kafka/consumer"
	"github.com/gamerspanglao-sys/game-time-keeper-sub002/internal/shared/connection"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

func RunConsumer() error {
	logger := zap.L().Named("app.consumer")

	gormDB, err := connection.ConnectGORMWithRetry(
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_SSLMODE"),
		5,
	)
	if err != nil {
		return err
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	kafkaBroker := os.Getenv("KAFKA_BROKER")
	if kafkaBroker == "" {
		return fmt.Errorf("KAFKA_BROKER is required")
	}

	activityRepo := activity.NewRepository(gormDB)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// One reader per topic; both project into the same activity log.
	for _, topic := range []string{events.ShiftLifecycleTopic, events.BonusTopic} {
		reader := kafkago.NewReader(kafkago.ReaderConfig{
			Brokers:        []string{kafkaBroker},
			Topic:          topic,
			GroupID:        "lounge-activity-log",
			CommitInterval: 0,
			StartOffset:    kafkago.FirstOffset,
		})
		defer reader.Close()

		go consumer.ConsumeLoungeEvents(ctx, reader, activityRepo, logger)
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("consumer shutting down")
	cancel()

	return nil
}
