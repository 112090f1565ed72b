package consumer

import (
	"context"
	"encoding/json"
	"time"

	"github.com/gamerspanglao-sys/game-time-keeper-sub002/internal/activity"

	"github.com/google/uuid"
	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

type eventEnvelope struct {
	EventType  string    `json:"event_type"`
	ShiftID    string    `json:"shift_id"`
	EmployeeID string    `json:"employee_id"`
	OccurredAt time.Time `json:"occurred_at"`
}

// ConsumeLoungeEvents projects shift and bonus events into the activity log.
// Malformed messages are committed and skipped so one bad payload cannot
// stall the partition.
func ConsumeLoungeEvents(
	ctx context.Context,
	reader *kafkago.Reader,
	repo activity.Repository,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.activity")
	log.Info("activity consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("activity consumer stopped")
				return
			}
			log.Error("fetch lounge event failed", zap.Error(err))
			continue
		}

		var env eventEnvelope
		if err := json.Unmarshal(msg.Value, &env); err != nil {
			log.Error("decode lounge event failed", zap.Error(err))
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		entry := &activity.Entry{
			ID:         uuid.New(),
			Action:     env.EventType,
			Payload:    msg.Value,
			OccurredAt: env.OccurredAt,
		}
		if id, err := uuid.Parse(env.EmployeeID); err == nil {
			entry.EmployeeID = &id
		}
		if id, err := uuid.Parse(env.ShiftID); err == nil {
			entry.ShiftID = &id
		}
		if entry.OccurredAt.IsZero() {
			entry.OccurredAt = time.Now().UTC()
		}

		if err := repo.Create(ctx, entry); err != nil {
			log.Error("write activity entry failed",
				zap.String("event_type", env.EventType),
				zap.Error(err),
			)
			// Not committed, will be retried on the next fetch.
			continue
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit lounge event failed", zap.Error(err))
		}
	}
}
