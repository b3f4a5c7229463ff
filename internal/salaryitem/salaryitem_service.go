package salaryitem

import (
	"context"

	"github.com/Waynegg8/horgoscpa-sub000/internal/shared/period"

	"go.uber.org/zap"
)

// ItemBreakdown dipakai untuk itemisasi audit/tampilan pada slip dan
// snapshot payroll.
type ItemBreakdown struct {
	ItemCode    string `json:"itemCode"`
	ItemName    string `json:"itemName"`
	Bucket      string `json:"bucket"`
	AmountCents int64  `json:"amountCents"`

	// FullAttendanceGated true berarti item ini hanya dibayar bila
	// karyawan full attendance bulan itu.
	FullAttendanceGated bool `json:"fullAttendanceGated"`
}

// ResolvedItems memisahkan bonus bersyarat full-attendance dari bonus
// tanpa syarat; gating-nya sendiri diputuskan kalkulator payroll yang
// tahu status kehadiran.
type ResolvedItems struct {
	RegularAllowanceCents    int64 `json:"regularAllowanceCents"`
	IrregularAllowanceCents  int64 `json:"irregularAllowanceCents"`
	BonusCents               int64 `json:"bonusCents"`
	FullAttendanceBonusCents int64 `json:"fullAttendanceBonusCents"`
	PerformanceBonusCents    int64 `json:"performanceBonusCents"`
	YearEndBonusCents        int64 `json:"yearEndBonusCents"`
	DeductionCents           int64 `json:"deductionCents"`

	Items []ItemBreakdown `json:"items"`
}

//go:generate mockgen -source=salaryitem_service.go -destination=mock/salaryitem_service_mock.go -package=mock
type Service interface {
	ResolveForMonth(ctx context.Context, userID string, p period.Period) (ResolvedItems, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("salaryitem.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("salaryitem.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) ResolveForMonth(ctx context.Context, userID string, p period.Period) (ResolvedItems, error) {
	items, err := s.repo.FindActiveByUser(ctx, userID)
	if err != nil {
		s.logger.Error("load salary items failed",
			zap.String("user_id", userID),
			zap.String("period", p.String()),
			zap.Error(err),
		)
		return ResolvedItems{}, err
	}

	var resolved ResolvedItems
	for _, item := range items {
		if !ShouldPayInMonth(item, p, s.logger) {
			continue
		}

		bucket := ClassifyBucket(item.Type)
		amount := item.AmountCents

		if bucket == BucketPerformance {
			amount, err = s.performanceAmount(ctx, userID, p, item.AmountCents)
			if err != nil {
				return ResolvedItems{}, err
			}
		}

		gated := bucket == BucketBonus && IsFullAttendance(item.Type)
		resolved.Items = append(resolved.Items, ItemBreakdown{
			ItemCode:            item.Type.ItemCode,
			ItemName:            item.Type.ItemName,
			Bucket:              bucket.String(),
			AmountCents:         amount,
			FullAttendanceGated: gated,
		})

		switch bucket {
		case BucketRegularAllowance:
			resolved.RegularAllowanceCents += amount
		case BucketIrregularAllowance:
			resolved.IrregularAllowanceCents += amount
		case BucketDeduction:
			resolved.DeductionCents += amount
		case BucketPerformance:
			resolved.PerformanceBonusCents += amount
		case BucketYearEndBonus:
			resolved.YearEndBonusCents += amount
		case BucketBonus:
			if gated {
				resolved.FullAttendanceBonusCents += amount
			} else {
				resolved.BonusCents += amount
			}
		}
	}

	// Bonus akhir tahun dari tabel khusus ikut menjumlah di samping item
	// generik bernuansa year-end.
	yearEnd, err := s.repo.FindYearEndBonuses(ctx, userID, p.Year, int(p.Month))
	if err != nil {
		return ResolvedItems{}, err
	}
	for _, bonus := range yearEnd {
		resolved.YearEndBonusCents += bonus.AmountCents
		resolved.Items = append(resolved.Items, ItemBreakdown{
			ItemCode:    "YEAR_END",
			ItemName:    "年終獎金",
			Bucket:      BucketYearEndBonus.String(),
			AmountCents: bonus.AmountCents,
		})
	}

	return resolved, nil
}

// performanceAmount memakai nilai override bulanan bila ada, selain itu
// jatuh ke nominal default item.
func (s *service) performanceAmount(ctx context.Context, userID string, p period.Period, defaultCents int64) (int64, error) {
	adj, err := s.repo.FindBonusAdjustment(ctx, userID, p.String())
	if err != nil {
		return 0, err
	}
	if adj != nil {
		return adj.AmountCents, nil
	}
	return defaultCents, nil
}
