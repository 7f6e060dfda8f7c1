package consumer

import (
	"context"
	"encoding/json"
	"time"

	"sahl/internal/dailyclosing"
	"sahl/internal/events"

	"github.com/google/uuid"
	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// ConsumeRevenueRecorded recomputes the daily closing of a branch day when a
// revenue event lands after the day was already closed.
func ConsumeRevenueRecorded(
	ctx context.Context,
	reader *kafkago.Reader,
	closingService dailyclosing.Service,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.revenue_recorded")
	log.Info("revenue recorded consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("revenue recorded consumer stopped")
				return
			}
			log.Error("fetch revenue recorded message failed", zap.Error(err))
			continue
		}

		var event events.RevenueRecordedEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			log.Error("decode revenue.recorded event failed", zap.Error(err))
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		branchID, err := uuid.Parse(event.BranchID)
		if err != nil {
			log.Error("revenue.recorded event has invalid branch id",
				zap.String("branch_id", event.BranchID),
			)
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		date, err := time.Parse("2006-01-02", event.Date)
		if err != nil {
			log.Error("revenue.recorded event has invalid date",
				zap.String("date", event.Date),
			)
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		if err := closingService.Recompute(ctx, branchID, date); err != nil {
			log.Error("recompute daily closing failed",
				zap.String("branch_id", event.BranchID),
				zap.String("date", event.Date),
				zap.Error(err),
			)
			continue
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit revenue recorded message failed", zap.Error(err))
			continue
		}

		log.Info("daily closing refreshed from revenue.recorded event",
			zap.String("branch_id", event.BranchID),
			zap.String("date", event.Date),
			zap.String("revenue_id", event.RevenueID),
		)
	}
}
