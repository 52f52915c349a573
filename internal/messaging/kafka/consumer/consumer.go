package consumer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go-leave/internal/events"

	"github.com/google/uuid"
	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// MessageReader is satisfied by *kafkago.Reader.
type MessageReader interface {
	FetchMessage(ctx context.Context) (kafkago.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafkago.Message) error
}

// BalanceProvisioner creates the yearly ledger rows for a new employee.
type BalanceProvisioner interface {
	EnsureForEmployee(ctx context.Context, employeeID uuid.UUID, year int) (int64, error)
}

// Handler processes one message. A poison error commits the message without
// retrying it; any other error leaves it uncommitted for redelivery.
type Handler func(ctx context.Context, msg kafkago.Message) error

type poisonError struct{ err error }

func (e poisonError) Error() string { return e.err.Error() }
func (e poisonError) Unwrap() error { return e.err }

func poison(err error) error { return poisonError{err: err} }

// Run fetches and handles messages until ctx is cancelled.
func Run(ctx context.Context, reader MessageReader, handle Handler, log *zap.Logger) {
	log.Info("consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("consumer stopped")
				return
			}
			log.Error("fetch message failed", zap.Error(err))
			continue
		}

		if err := handle(ctx, msg); err != nil {
			var pe poisonError
			if !errors.As(err, &pe) {
				log.Error("handle message failed",
					zap.String("topic", msg.Topic),
					zap.Int64("offset", msg.Offset),
					zap.Error(err),
				)
				continue
			}
			log.Warn("dropping undecodable message",
				zap.String("topic", msg.Topic),
				zap.Int64("offset", msg.Offset),
				zap.Error(err),
			)
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit message failed", zap.Error(err))
		}
	}
}

// ConsumeEmployeeLifecycle provisions leave balances for every employee_created
// event.
func ConsumeEmployeeLifecycle(
	ctx context.Context,
	reader MessageReader,
	balances BalanceProvisioner,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.employee_lifecycle")
	Run(ctx, reader, EmployeeCreatedHandler(balances, log), log)
}

func EmployeeCreatedHandler(balances BalanceProvisioner, log *zap.Logger) Handler {
	return func(ctx context.Context, msg kafkago.Message) error {
		var event events.EmployeeCreatedEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			return poison(fmt.Errorf("decode employee_created event: %w", err))
		}
		if event.EventType != "" && event.EventType != events.EmployeeCreated {
			return nil
		}

		employeeID, err := uuid.Parse(event.EmployeeID)
		if err != nil {
			return poison(fmt.Errorf("invalid employee id %q: %w", event.EmployeeID, err))
		}

		occurred := event.OccurredAt
		if occurred.IsZero() {
			occurred = time.Now()
		}

		created, err := balances.EnsureForEmployee(ctx, employeeID, occurred.Year())
		if err != nil {
			return err
		}

		log.Info("leave balances provisioned from employee_created event",
			zap.String("request_id", event.RequestID),
			zap.String("employee_id", event.EmployeeID),
			zap.Int("year", occurred.Year()),
			zap.Int64("created", created),
		)
		return nil
	}
}

// ConsumeLeaveRequests logs approver notifications for leave request events.
func ConsumeLeaveRequests(ctx context.Context, reader MessageReader, logger *zap.Logger) {
	log := logger.Named("kafka.consumer.leave_requests")
	Run(ctx, reader, LeaveRequestHandler(log), log)
}

func LeaveRequestHandler(log *zap.Logger) Handler {
	return func(_ context.Context, msg kafkago.Message) error {
		var envelope struct {
			EventType string `json:"event_type"`
		}
		if err := json.Unmarshal(msg.Value, &envelope); err != nil {
			return poison(fmt.Errorf("decode leave request event: %w", err))
		}

		switch envelope.EventType {
		case events.LeaveRequestCreated:
			var event events.LeaveRequestCreatedEvent
			if err := json.Unmarshal(msg.Value, &event); err != nil {
				return poison(err)
			}
			log.Info("notify department manager of new leave request",
				zap.String("request_id", event.RequestID),
				zap.String("leave_request_id", event.LeaveRequestID),
				zap.String("employee_id", event.EmployeeID),
				zap.String("department_manager_id", event.DepartmentManagerID),
				zap.Int("total_days", event.TotalDays),
			)
		case events.LeaveRequestStatusChanged:
			var event events.LeaveRequestStatusChangedEvent
			if err := json.Unmarshal(msg.Value, &event); err != nil {
				return poison(err)
			}
			log.Info("notify employee of leave request status change",
				zap.String("request_id", event.RequestID),
				zap.String("leave_request_id", event.LeaveRequestID),
				zap.String("employee_id", event.EmployeeID),
				zap.String("from", event.FromStatus),
				zap.String("to", event.ToStatus),
			)
		default:
			log.Debug("ignoring leave request event", zap.String("event_type", envelope.EventType))
		}
		return nil
	}
}
