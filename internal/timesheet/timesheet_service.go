package timesheet

import (
	"context"
	"fmt"
	"time"

	timesheeterrors "github.com/Waynegg8/horgoscpa-sub000/internal/timesheet/errors"

	"github.com/Waynegg8/horgoscpa-sub000/internal/shared/cache"
	"github.com/Waynegg8/horgoscpa-sub000/internal/shared/period"
	"github.com/Waynegg8/horgoscpa-sub000/internal/shared/rounding"
	"github.com/Waynegg8/horgoscpa-sub000/internal/worktype"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const statsCacheTTL = 10 * time.Minute

func statsCacheKey(userID string, p period.Period) string {
	return fmt.Sprintf("timesheet:stats:%s:%s", userID, p)
}

func statsCachePrefix(userID string) string {
	return fmt.Sprintf("timesheet:stats:%s:", userID)
}

//go:generate mockgen -source=timesheet_service.go -destination=mock/timesheet_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateTimesheetRequest) (TimesheetResponse, error)
	Update(ctx context.Context, id string, req UpdateTimesheetRequest) (TimesheetResponse, error)
	BatchDelete(ctx context.Context, req BatchDeleteRequest) (int, error)
	MonthlyStats(ctx context.Context, userID string, p period.Period) (MonthlyStats, error)
}

type service struct {
	repo   Repository
	store  cache.Store
	sf     *singleflight.Group
	logger *zap.Logger
}

func NewService(repo Repository, store cache.Store, logger ...*zap.Logger) Service {
	l := zap.L().Named("timesheet.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("timesheet.service")
	}
	if store == nil {
		store = cache.Noop{}
	}
	return &service{repo: repo, store: store, sf: &singleflight.Group{}, logger: l}
}

func (s *service) Create(ctx context.Context, req CreateTimesheetRequest) (TimesheetResponse, error) {
	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		return TimesheetResponse{}, timesheeterrors.ErrInvalidUserID
	}

	workDate, err := parseDate(req.WorkDate)
	if err != nil {
		return TimesheetResponse{}, err
	}
	if err := validateHours(req.Hours); err != nil {
		return TimesheetResponse{}, err
	}
	if _, ok := worktype.ForContext(worktype.Detailed).Lookup(req.WorkTypeCode); !ok {
		return TimesheetResponse{}, timesheeterrors.ErrUnknownWorkType
	}

	ts := &Timesheet{
		ID:           uuid.New(),
		UserID:       userID,
		WorkDate:     workDate,
		WorkTypeCode: req.WorkTypeCode,
		Hours:        req.Hours,
		ServiceCode:  req.ServiceCode,
	}
	if req.ClientID != nil && *req.ClientID != "" {
		clientID, err := uuid.Parse(*req.ClientID)
		if err != nil {
			return TimesheetResponse{}, timesheeterrors.ErrInvalidClientID
		}
		ts.ClientID = &clientID
	}

	if err := s.repo.Create(ctx, ts); err != nil {
		s.logger.Error("create timesheet persist failed", zap.Error(err))
		return TimesheetResponse{}, err
	}

	s.store.Invalidate(ctx, statsCachePrefix(req.UserID))
	s.logger.Info("timesheet created",
		zap.String("timesheet_id", ts.ID.String()),
		zap.String("user_id", req.UserID),
		zap.String("work_date", req.WorkDate),
	)

	return mapToResponse(*ts), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateTimesheetRequest) (TimesheetResponse, error) {
	ts, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return TimesheetResponse{}, timesheeterrors.ErrTimesheetNotFound
	}

	workDate, err := parseDate(req.WorkDate)
	if err != nil {
		return TimesheetResponse{}, err
	}
	if err := validateHours(req.Hours); err != nil {
		return TimesheetResponse{}, err
	}
	if _, ok := worktype.ForContext(worktype.Detailed).Lookup(req.WorkTypeCode); !ok {
		return TimesheetResponse{}, timesheeterrors.ErrUnknownWorkType
	}

	ts.WorkDate = workDate
	ts.WorkTypeCode = req.WorkTypeCode
	ts.Hours = req.Hours
	ts.ServiceCode = req.ServiceCode
	ts.ClientID = nil
	if req.ClientID != nil && *req.ClientID != "" {
		clientID, err := uuid.Parse(*req.ClientID)
		if err != nil {
			return TimesheetResponse{}, timesheeterrors.ErrInvalidClientID
		}
		ts.ClientID = &clientID
	}

	if err := s.repo.Update(ctx, ts); err != nil {
		s.logger.Error("update timesheet persist failed", zap.String("timesheet_id", id), zap.Error(err))
		return TimesheetResponse{}, err
	}

	s.store.Invalidate(ctx, statsCachePrefix(ts.UserID.String()))

	return mapToResponse(*ts), nil
}

func (s *service) BatchDelete(ctx context.Context, req BatchDeleteRequest) (int, error) {
	deleted, err := s.repo.BatchDelete(ctx, req.IDs)
	if err != nil {
		s.logger.Error("batch delete timesheets failed", zap.Error(err))
		return 0, err
	}

	seen := make(map[string]struct{})
	for _, ts := range deleted {
		uid := ts.UserID.String()
		if _, done := seen[uid]; done {
			continue
		}
		seen[uid] = struct{}{}
		s.store.Invalidate(ctx, statsCachePrefix(uid))
	}

	s.logger.Info("timesheets batch deleted", zap.Int("count", len(deleted)))
	return len(deleted), nil
}

// MonthlyStats membaca cache dulu; saat miss, perhitungan di-dedup dengan
// singleflight supaya request paralel untuk (user, bulan) yang sama tidak
// menghitung ganda.
func (s *service) MonthlyStats(ctx context.Context, userID string, p period.Period) (MonthlyStats, error) {
	key := statsCacheKey(userID, p)

	var cached MonthlyStats
	if s.store.Get(ctx, key, &cached) {
		return cached, nil
	}

	v, err, _ := s.sf.Do(key, func() (any, error) {
		entries, err := s.repo.FindByUserAndRange(ctx, userID, p.Start(), p.End())
		if err != nil {
			return MonthlyStats{}, err
		}

		stats := ComputeMonthlyStats(entries, worktype.ForContext(worktype.Detailed))
		s.store.Set(ctx, key, stats, statsCacheTTL)
		return stats, nil
	})
	if err != nil {
		s.logger.Error("monthly stats failed",
			zap.String("user_id", userID),
			zap.String("period", p.String()),
			zap.Error(err),
		)
		return MonthlyStats{}, err
	}

	return v.(MonthlyStats), nil
}

// ComputeMonthlyStats menjumlahkan jam mentah, jam lembur, dan jam tertimbang
// satu bulan. Kode fixed_8h dikreditkan tepat 8 jam tertimbang sekali per
// (tanggal, kode) berapa pun jumlah barisnya; kode tak dikenal dianggap kerja
// normal multiplier 1 (konvensi ringkasan bulanan).
func ComputeMonthlyStats(entries []Timesheet, catalog *worktype.Catalog) MonthlyStats {
	var stats MonthlyStats
	fixed8hCredited := make(map[string]struct{})

	for _, e := range entries {
		wt := catalog.LookupOrNormal(e.WorkTypeCode)

		stats.TotalHours += e.Hours
		if wt.Overtime {
			stats.OvertimeHours += e.Hours
		}

		if wt.IsFixed8h() {
			key := fmt.Sprintf("%s|%d", e.WorkDate.Format("2006-01-02"), e.WorkTypeCode)
			if _, done := fixed8hCredited[key]; !done {
				fixed8hCredited[key] = struct{}{}
				stats.WeightedHours += 8
			}
			continue
		}

		stats.WeightedHours += e.Hours * wt.Multiplier
	}

	stats.TotalHours = rounding.Hours1(stats.TotalHours)
	stats.OvertimeHours = rounding.Hours1(stats.OvertimeHours)
	stats.WeightedHours = rounding.Hours1(stats.WeightedHours)
	return stats
}

func validateHours(hours float64) error {
	// kelipatan 0.5
	if hours <= 0 || hours*2 != float64(int(hours*2)) {
		return timesheeterrors.ErrInvalidHours
	}
	return nil
}

func parseDate(v string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", v)
	if err != nil {
		return time.Time{}, timesheeterrors.ErrInvalidDateFormat
	}
	return t, nil
}

func mapToResponse(ts Timesheet) TimesheetResponse {
	resp := TimesheetResponse{
		ID:           ts.ID.String(),
		UserID:       ts.UserID.String(),
		WorkDate:     ts.WorkDate.Format("2006-01-02"),
		WorkTypeCode: ts.WorkTypeCode,
		Hours:        ts.Hours,
		ServiceCode:  ts.ServiceCode,
	}
	if ts.ClientID != nil {
		v := ts.ClientID.String()
		resp.ClientID = &v
	}
	return resp
}
