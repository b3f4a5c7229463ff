package consumer

import (
	"context"
	"encoding/json"

	"github.com/Waynegg8/horgoscpa-sub000/internal/events"
	"github.com/Waynegg8/horgoscpa-sub000/internal/overhead"
	"github.com/Waynegg8/horgoscpa-sub000/internal/shared/cache"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// ConsumePayrollFinalized bereaksi atas snapshot yang baru difinalisasi:
// membuang cache statistik timesheet dan laporan biaya yang kini basi,
// lalu mencatat jejak audit. Kegagalan cache bersifat advisory.
func ConsumePayrollFinalized(
	ctx context.Context,
	reader *kafkago.Reader,
	store cache.Store,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.payroll_finalized")
	log.Info("payroll finalized consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("payroll finalized consumer stopped")
				return
			}
			log.Error("fetch payroll finalized message failed", zap.Error(err))
			continue
		}

		var event events.PayrollFinalizedEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			log.Error("decode payroll finalized event failed", zap.Error(err))
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		store.Invalidate(ctx, "timesheet:stats:")
		store.Invalidate(ctx, overhead.CostRatesCachePrefix)

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit payroll finalized message failed", zap.Error(err))
			continue
		}

		log.Info("payroll snapshot processed",
			zap.String("request_id", event.RequestID),
			zap.String("period", event.Period),
			zap.Int("version", event.Version),
			zap.Int("employees", event.EmployeeCount),
			zap.Int64("total_net_cents", event.TotalNetCents),
			zap.String("created_by", event.CreatedBy),
		)
	}
}
