package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"sahl/internal/dailyclosing"
	"sahl/internal/events"
	"sahl/internal/expense"
	"sahl/internal/messaging/kafka/consumer"
	"sahl/internal/revenue"
	"sahl/internal/shared/connection"

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

	closingRepo := dailyclosing.NewRepository(gormDB)
	revenueRepo := revenue.NewRepository(gormDB)
	expenseRepo := expense.NewRepository(gormDB)
	closingService := dailyclosing.NewService(closingRepo, revenueRepo, expenseRepo)

	reader := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:        []string{kafkaBroker},
		Topic:          events.RevenueRecordedTopic,
		GroupID:        "sahl-daily-closing",
		CommitInterval: 0,
		StartOffset:    kafkago.FirstOffset,
	})
	defer reader.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go consumer.ConsumeRevenueRecorded(ctx, reader, closingService, logger)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("consumer shutting down")
	cancel()

	return nil
}
