package app

import (
	"context"
	"fmt"
	"os/signal"
	"sync"
	"syscall"

	"go-leave/internal/events"
	"go-leave/internal/leavebalance"
	"go-leave/internal/leavetype"
	"go-leave/internal/messaging/kafka/consumer"
	"go-leave/internal/shared/connection"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

const consumerGroup = "go-leave"

// RunConsumer provisions leave balances for new employees and emits approver
// notifications for leave request events until SIGINT/SIGTERM.
func RunConsumer(cfg Config) error {
	logger := zap.L().Named("app.consumer")

	gormDB, err := connection.ConnectGORMWithRetry(cfg.DB, 5)
	if err != nil {
		return err
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	if cfg.KafkaBroker == "" {
		return fmt.Errorf("KAFKA_BROKER is required")
	}

	balanceService := leavebalance.NewService(
		sqlDB,
		leavebalance.NewRepository(gormDB),
		leavetype.NewRepository(gormDB),
	)

	employeeReader := newReader(cfg.KafkaBroker, events.EmployeeLifecycleTopic, consumerGroup+"-leave-balance")
	defer employeeReader.Close()
	leaveReader := newReader(cfg.KafkaBroker, events.LeaveRequestTopic, consumerGroup+"-notifications")
	defer leaveReader.Close()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		consumer.ConsumeEmployeeLifecycle(ctx, employeeReader, balanceService, logger)
	}()
	go func() {
		defer wg.Done()
		consumer.ConsumeLeaveRequests(ctx, leaveReader, logger)
	}()

	<-ctx.Done()
	logger.Info("consumer shutting down")
	wg.Wait()

	return nil
}

func newReader(broker, topic, group string) *kafkago.Reader {
	return kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:        []string{broker},
		Topic:          topic,
		GroupID:        group,
		CommitInterval: 0,
		StartOffset:    kafkago.FirstOffset,
	})
}
