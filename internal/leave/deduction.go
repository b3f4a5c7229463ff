package leave

import (
	"context"

	"github.com/Waynegg8/horgoscpa-sub000/internal/settings"
	"github.com/Waynegg8/horgoscpa-sub000/internal/shared/period"
	"github.com/Waynegg8/horgoscpa-sub000/internal/shared/rounding"

	"go.uber.org/zap"
)

// Hari cuti haid bebas per tahun kalender; selebihnya dibukukan sebagai
// gabungan ke cuti sakit untuk keperluan tampilan.
const menstrualFreeDaysPerYear = 3

// DeductionDetail adalah rincian potongan cuti satu bulan, diekspos utuh
// untuk audit; potongan per komponen di-floor sendiri-sendiri sebelum
// dijumlah.
type DeductionDetail struct {
	SickHours      float64 `json:"sickHours"`
	PersonalHours  float64 `json:"personalHours"`
	MenstrualHours float64 `json:"menstrualHours"`

	// Pembukuan hari haid bebas vs digabung ke sakit; murni tampilan,
	// tidak mempengaruhi perhitungan sen.
	MenstrualFreeDays   float64 `json:"menstrualFreeDays"`
	MenstrualMergedDays float64 `json:"menstrualMergedDays"`

	DailySalaryCents int64 `json:"dailySalaryCents"`
	HourlyRateCents  int64 `json:"hourlyRateCents"`

	SickDeductionCents      int64 `json:"sickDeductionCents"`
	PersonalDeductionCents  int64 `json:"personalDeductionCents"`
	MenstrualDeductionCents int64 `json:"menstrualDeductionCents"`
	TotalDeductionCents     int64 `json:"totalDeductionCents"`
}

//go:generate mockgen -source=deduction.go -destination=mock/leave_service_mock.go -package=mock
type Service interface {
	MonthlyDeduction(ctx context.Context, userID string, p period.Period, baseSalaryCents, regularAllowanceCents int64, cfg settings.PayrollConfig) (DeductionDetail, error)
	// FullAttendance true bila tidak ada cuti sakit/pribadi approved yang
	// beririsan dengan bulan tsb; haid dan kompensasi tidak mempengaruhi.
	FullAttendance(ctx context.Context, userID string, p period.Period) (bool, error)
	// ApprovedCompHours menjumlahkan jam cuti kompensasi approved bulan
	// itu (unit day x8), sebagai demand FIFO ledger jam kompensasi.
	ApprovedCompHours(ctx context.Context, userID string, p period.Period) (float64, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("leave.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leave.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) MonthlyDeduction(
	ctx context.Context,
	userID string,
	p period.Period,
	baseSalaryCents, regularAllowanceCents int64,
	cfg settings.PayrollConfig,
) (DeductionDetail, error) {
	requests, err := s.repo.FindApprovedOverlapping(
		ctx, userID, p.Start(), p.End(),
		TypeSick, TypePersonal, TypeMenstrual,
	)
	if err != nil {
		s.logger.Error("load leave requests failed",
			zap.String("user_id", userID),
			zap.String("period", p.String()),
			zap.Error(err),
		)
		return DeductionDetail{}, err
	}

	priorMenstrualDays, err := s.repo.MenstrualDaysBefore(ctx, userID, p.YearStart(), p.Start())
	if err != nil {
		return DeductionDetail{}, err
	}

	return ComputeDeduction(requests, priorMenstrualDays, baseSalaryCents, regularAllowanceCents, cfg), nil
}

// ComputeDeduction menjalankan langkah potongan cuti §leave secara berurutan.
// Dipisah sebagai fungsi murni agar mudah diuji tanpa repo.
func ComputeDeduction(
	requests []LeaveRequest,
	priorMenstrualDays float64,
	baseSalaryCents, regularAllowanceCents int64,
	cfg settings.PayrollConfig,
) DeductionDetail {
	var d DeductionDetail

	for _, req := range requests {
		hours := req.HoursEquivalent()
		switch req.LeaveType {
		case TypeSick:
			d.SickHours += hours
		case TypePersonal:
			d.PersonalHours += hours
		case TypeMenstrual:
			d.MenstrualHours += hours
		}
	}

	payBase := float64(baseSalaryCents + regularAllowanceCents)
	d.DailySalaryCents = rounding.Cents(payBase / cfg.LeaveDailySalaryDivisor)
	d.HourlyRateCents = rounding.Cents(payBase / cfg.HourlyRateDivisor)

	rate := float64(d.HourlyRateCents)
	d.SickDeductionCents = rounding.FloorCents(d.SickHours * rate * cfg.SickLeaveRate)
	d.PersonalDeductionCents = rounding.FloorCents(d.PersonalHours * rate * cfg.PersonalLeaveRate)

	// Potongan haid tetap 0.5x untuk seluruh jam; status bebas/gabung
	// hanya pembukuan.
	d.MenstrualDeductionCents = rounding.FloorCents(d.MenstrualHours * rate * cfg.SickLeaveRate)

	menstrualDays := d.MenstrualHours / 8
	freeRemaining := menstrualFreeDaysPerYear - priorMenstrualDays
	if freeRemaining < 0 {
		freeRemaining = 0
	}
	d.MenstrualFreeDays = menstrualDays
	if d.MenstrualFreeDays > freeRemaining {
		d.MenstrualFreeDays = freeRemaining
	}
	d.MenstrualMergedDays = menstrualDays - d.MenstrualFreeDays

	d.TotalDeductionCents = d.SickDeductionCents + d.PersonalDeductionCents + d.MenstrualDeductionCents
	return d
}

func (s *service) FullAttendance(ctx context.Context, userID string, p period.Period) (bool, error) {
	requests, err := s.repo.FindApprovedOverlapping(
		ctx, userID, p.Start(), p.End(),
		TypeSick, TypePersonal,
	)
	if err != nil {
		return false, err
	}
	return len(requests) == 0, nil
}

func (s *service) ApprovedCompHours(ctx context.Context, userID string, p period.Period) (float64, error) {
	requests, err := s.repo.FindApprovedOverlapping(
		ctx, userID, p.Start(), p.End(),
		TypeCompensatory,
	)
	if err != nil {
		return 0, err
	}

	var total float64
	for _, req := range requests {
		total += req.HoursEquivalent()
	}
	return total, nil
}
