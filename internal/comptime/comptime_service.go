package comptime

import (
	"context"

	"github.com/Waynegg8/horgoscpa-sub000/internal/leave"
	"github.com/Waynegg8/horgoscpa-sub000/internal/shared/period"
	"github.com/Waynegg8/horgoscpa-sub000/internal/shared/rounding"
	"github.com/Waynegg8/horgoscpa-sub000/internal/timesheet"
	"github.com/Waynegg8/horgoscpa-sub000/internal/worktype"

	"go.uber.org/zap"
)

//go:generate mockgen -source=comptime_service.go -destination=mock/comptime_service_mock.go -package=mock
type Service interface {
	// OvertimeDetails membangun rincian lembur per entri satu bulan:
	// generasi jam kompensasi lalu konsumsi FIFO terhadap cuti
	// kompensasi approved bulan itu.
	OvertimeDetails(ctx context.Context, userID string, p period.Period) (OvertimeDetails, error)

	// ExpiredCompPayCents mengonversi jam kompensasi yang tidak terpakai
	// pada akhir bulan menjadi sen, per jam dikali rate x multiplier.
	// Konsumsi cuti diterapkan dulu supaya tidak double-subtract.
	ExpiredCompPayCents(ctx context.Context, userID string, p period.Period, hourlyRateCents int64) (int64, error)
}

type service struct {
	timesheets timesheet.Repository
	leaves     leave.Service
	logger     *zap.Logger
}

func NewService(timesheets timesheet.Repository, leaves leave.Service, logger ...*zap.Logger) Service {
	l := zap.L().Named("comptime.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("comptime.service")
	}
	return &service{timesheets: timesheets, leaves: leaves, logger: l}
}

// buildQueue menurunkan antrean grant bulan itu dan langsung menerapkan
// konsumsi cuti kompensasi. Antrean tidak dipersist lintas bulan.
func (s *service) buildQueue(ctx context.Context, userID string, p period.Period) (*GrantQueue, float64, error) {
	entries, err := s.timesheets.FindByUserAndRange(ctx, userID, p.Start(), p.End())
	if err != nil {
		s.logger.Error("load timesheets failed",
			zap.String("user_id", userID),
			zap.String("period", p.String()),
			zap.Error(err),
		)
		return nil, 0, err
	}

	used, err := s.leaves.ApprovedCompHours(ctx, userID, p)
	if err != nil {
		return nil, 0, err
	}

	q := BuildGrantQueue(entries, worktype.ForContext(worktype.Detailed))
	q.Consume(used)
	return q, used, nil
}

func (s *service) OvertimeDetails(ctx context.Context, userID string, p period.Period) (OvertimeDetails, error) {
	q, used, err := s.buildQueue(ctx, userID, p)
	if err != nil {
		return OvertimeDetails{}, err
	}

	details := OvertimeDetails{
		Period:             p.String(),
		TotalCompHoursUsed: rounding.Hours2(used),
	}
	for _, g := range q.Grants() {
		details.Entries = append(details.Entries, OvertimeEntry{
			Date:               g.Date.Format("2006-01-02"),
			WorkTypeCode:       g.WorkTypeCode,
			WorkTypeName:       g.WorkTypeName,
			Multiplier:         g.Multiplier,
			OriginalHours:      rounding.Hours1(g.OriginalHours),
			CompHoursGenerated: rounding.Hours2(g.Generated),
			CompDeducted:       rounding.Hours2(g.Deducted),
			RemainingHours:     rounding.Hours2(g.Remaining),
			EffectiveWeighted:  rounding.Hours2(g.Remaining * g.Multiplier),
		})
	}

	details.TotalCompHoursGenerated = rounding.Hours2(q.TotalGenerated())
	details.UnusedCompHours = rounding.Hours2(q.TotalRemaining())
	return details, nil
}

func (s *service) ExpiredCompPayCents(ctx context.Context, userID string, p period.Period, hourlyRateCents int64) (int64, error) {
	q, _, err := s.buildQueue(ctx, userID, p)
	if err != nil {
		return 0, err
	}

	unused := q.TotalRemaining()
	if unused <= 0 {
		return 0, nil
	}
	return q.CashOut(unused, hourlyRateCents), nil
}
