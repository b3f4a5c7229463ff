package allowance

import (
	"context"
	"math"

	"github.com/Waynegg8/horgoscpa-sub000/internal/settings"
	"github.com/Waynegg8/horgoscpa-sub000/internal/shared/period"
	"github.com/Waynegg8/horgoscpa-sub000/internal/shared/rounding"
	"github.com/Waynegg8/horgoscpa-sub000/internal/timesheet"

	"go.uber.org/zap"
)

// Hanya jam kode ini yang dihitung untuk kelayakan uang makan.
const mealQualifyingWorkTypeCode = 2

//go:generate mockgen -source=allowance_service.go -destination=mock/allowance_service_mock.go -package=mock
type Service interface {
	MealAllowanceCents(ctx context.Context, userID string, p period.Period, cfg settings.PayrollConfig) (int64, error)
	TransportAllowanceCents(ctx context.Context, userID string, p period.Period, cfg settings.PayrollConfig) (int64, error)
}

type service struct {
	timesheets timesheet.Repository
	trips      TripRepository
	logger     *zap.Logger
}

func NewService(timesheets timesheet.Repository, trips TripRepository, logger ...*zap.Logger) Service {
	l := zap.L().Named("allowance.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("allowance.service")
	}
	return &service{timesheets: timesheets, trips: trips, logger: l}
}

func (s *service) MealAllowanceCents(ctx context.Context, userID string, p period.Period, cfg settings.PayrollConfig) (int64, error) {
	entries, err := s.timesheets.FindByUserAndRange(ctx, userID, p.Start(), p.End())
	if err != nil {
		s.logger.Error("load timesheets failed",
			zap.String("user_id", userID),
			zap.String("period", p.String()),
			zap.Error(err),
		)
		return 0, err
	}
	return ComputeMealAllowance(entries, cfg), nil
}

// ComputeMealAllowance menghitung hari yang memenuhi syarat: jumlah jam
// kode 2 per tanggal mencapai ambang, lalu hari x tarif x 100 sen.
func ComputeMealAllowance(entries []timesheet.Timesheet, cfg settings.PayrollConfig) int64 {
	hoursPerDay := make(map[string]float64)
	for _, e := range entries {
		if e.WorkTypeCode != mealQualifyingWorkTypeCode {
			continue
		}
		hoursPerDay[e.WorkDate.Format("2006-01-02")] += e.Hours
	}

	var qualifyingDays int64
	for _, hours := range hoursPerDay {
		if hours >= cfg.MealMinOvertimeHours {
			qualifyingDays++
		}
	}
	return qualifyingDays * rounding.Cents(cfg.MealPerTime*100)
}

func (s *service) TransportAllowanceCents(ctx context.Context, userID string, p period.Period, cfg settings.PayrollConfig) (int64, error) {
	trips, err := s.trips.FindApprovedByUserAndRange(ctx, userID, p.Start(), p.End())
	if err != nil {
		s.logger.Error("load business trips failed",
			zap.String("user_id", userID),
			zap.String("period", p.String()),
			zap.Error(err),
		)
		return 0, err
	}
	return ComputeTransportAllowance(trips, cfg), nil
}

// ComputeTransportAllowance: per trip, interval = ceil(km / kmPerInterval);
// trip 0 km tidak menambah apa pun.
func ComputeTransportAllowance(trips []BusinessTrip, cfg settings.PayrollConfig) int64 {
	if cfg.TransportKmPerInterval <= 0 {
		return 0
	}

	var amount float64
	for _, trip := range trips {
		if trip.DistanceKm <= 0 {
			continue
		}
		intervals := math.Ceil(trip.DistanceKm / cfg.TransportKmPerInterval)
		amount += intervals * cfg.TransportPerInterval
	}
	return rounding.Cents(amount * 100)
}
