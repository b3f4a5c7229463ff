package overhead

import (
	"context"
	"time"

	"github.com/Waynegg8/horgoscpa-sub000/internal/employee"
	"github.com/Waynegg8/horgoscpa-sub000/internal/payroll"
	"github.com/Waynegg8/horgoscpa-sub000/internal/settings"
	"github.com/Waynegg8/horgoscpa-sub000/internal/shared/cache"
	"github.com/Waynegg8/horgoscpa-sub000/internal/shared/period"
	"github.com/Waynegg8/horgoscpa-sub000/internal/shared/rounding"
	"github.com/Waynegg8/horgoscpa-sub000/internal/timesheet"
	"github.com/Waynegg8/horgoscpa-sub000/internal/worktype"

	"go.uber.org/zap"
)

const costRatesCacheTTL = 10 * time.Minute

// CostRatesCachePrefix juga dipakai consumer Kafka untuk membuang laporan
// basi setelah payroll difinalisasi.
const CostRatesCachePrefix = "overhead:cost-rates:"

func costRatesCacheKey(p period.Period) string {
	return CostRatesCachePrefix + p.String()
}

// EmployeeCostRate adalah tarif per jam "sebenarnya" satu karyawan:
// (biaya tenaga kerja + overhead teralokasi) / jam kerja.
type EmployeeCostRate struct {
	UserID         string `json:"userId"`
	EmployeeName   string `json:"employeeName"`
	EmployeeNumber string `json:"employeeNumber"`

	HoursWorked   float64 `json:"hoursWorked"`
	WeightedHours float64 `json:"weightedHours"`

	LaborCostCents    int64 `json:"laborCostCents"`
	OverheadCents     int64 `json:"overheadCents"`
	TotalCostCents    int64 `json:"totalCostCents"`
	ActualHourlyCents int64 `json:"actualHourlyCents"`
	RevenueCents      int64 `json:"revenueCents"`
}

type CostRatesReport struct {
	Period    string             `json:"period"`
	Employees []EmployeeCostRate `json:"employees"`

	TotalOverheadCents int64 `json:"totalOverheadCents"`
}

//go:generate mockgen -source=overhead_service.go -destination=mock/overhead_service_mock.go -package=mock
type Service interface {
	EmployeeCostRates(ctx context.Context, p period.Period) (CostRatesReport, error)
}

type service struct {
	repo       Repository
	employees  employee.Repository
	timesheets timesheet.Repository
	calc       payroll.Calculator
	config     settings.Service
	store      cache.Store
	logger     *zap.Logger
}

func NewService(
	repo Repository,
	employees employee.Repository,
	timesheets timesheet.Repository,
	calc payroll.Calculator,
	config settings.Service,
	store cache.Store,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("overhead.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("overhead.service")
	}
	return &service{
		repo:       repo,
		employees:  employees,
		timesheets: timesheets,
		calc:       calc,
		config:     config,
		store:      store,
		logger:     l,
	}
}

// EmployeeCostRates membaca cache dulu; laporan dihitung ulang saat miss
// dan dibuang oleh consumer saat payroll bulan itu difinalisasi.
func (s *service) EmployeeCostRates(ctx context.Context, p period.Period) (CostRatesReport, error) {
	var cached CostRatesReport
	if s.store.Get(ctx, costRatesCacheKey(p), &cached) {
		return cached, nil
	}

	cfg, err := s.config.LoadPayrollConfig(ctx)
	if err != nil {
		return CostRatesReport{}, err
	}

	empls, err := s.employees.FindActive(ctx)
	if err != nil {
		return CostRatesReport{}, err
	}

	costs, err := s.repo.FindMonthlyCosts(ctx, p.String())
	if err != nil {
		return CostRatesReport{}, err
	}

	revenue, err := s.repo.RevenueByUser(ctx, p.Start(), p.End())
	if err != nil {
		return CostRatesReport{}, err
	}

	// Konteks costing memakai tabel 11 kode; multiplier kode 10-11 beda
	// dari payroll detail.
	catalog := worktype.ForContext(worktype.Costing)

	report := CostRatesReport{Period: p.String()}
	var totalHours float64
	var totalRevenue int64

	rates := make([]EmployeeCostRate, 0, len(empls))
	for _, empl := range empls {
		result, err := s.calc.CalculateEmployee(ctx, empl.ID.String(), p, cfg)
		if err != nil {
			s.logger.Error("employee cost rate failed, skipped",
				zap.String("user_id", empl.ID.String()),
				zap.String("period", p.String()),
				zap.Error(err),
			)
			continue
		}
		if result == nil {
			continue
		}

		entries, err := s.timesheets.FindByUserAndRange(ctx, empl.ID.String(), p.Start(), p.End())
		if err != nil {
			return CostRatesReport{}, err
		}
		stats := timesheet.ComputeMonthlyStats(entries, catalog)

		rate := EmployeeCostRate{
			UserID:         empl.ID.String(),
			EmployeeName:   empl.FullName,
			EmployeeNumber: empl.EmployeeNumber,
			HoursWorked:    stats.TotalHours,
			WeightedHours:  stats.WeightedHours,
			LaborCostCents: result.LaborCostCents(),
			RevenueCents:   revenue[empl.ID.String()],
		}
		totalHours += rate.HoursWorked
		totalRevenue += rate.RevenueCents
		rates = append(rates, rate)
	}

	// Pembagi per_employee adalah seluruh karyawan aktif, bukan hanya
	// yang berhasil dihitung.
	activeCount, err := s.employees.CountActive(ctx)
	if err != nil {
		return CostRatesReport{}, err
	}
	for i := range rates {
		rates[i].OverheadCents = allocate(costs, rates[i], activeCount, totalHours, totalRevenue)
		rates[i].TotalCostCents = rates[i].LaborCostCents + rates[i].OverheadCents
		if rates[i].HoursWorked > 0 {
			rates[i].ActualHourlyCents = rounding.Cents(float64(rates[i].TotalCostCents) / rates[i].HoursWorked)
		}
		report.TotalOverheadCents += rates[i].OverheadCents
	}

	report.Employees = rates
	s.store.Set(ctx, costRatesCacheKey(p), report, costRatesCacheTTL)
	return report, nil
}

// allocate menjumlahkan bagian karyawan atas tiap tipe biaya; setiap tipe
// dibulatkan ke sen sendiri-sendiri sebelum dijumlah.
func allocate(costs []MonthlyCost, rate EmployeeCostRate, activeCount int64, totalHours float64, totalRevenue int64) int64 {
	var total int64
	for _, cost := range costs {
		amount := float64(cost.AmountCents)
		switch cost.CostType.AllocationMethod {
		case MethodPerEmployee:
			if activeCount > 0 {
				total += rounding.Cents(amount / float64(activeCount))
			}
		case MethodPerHour:
			if totalHours > 0 {
				total += rounding.Cents(amount * rate.HoursWorked / totalHours)
			}
		case MethodPerRevenue:
			if totalRevenue > 0 {
				total += rounding.Cents(amount * float64(rate.RevenueCents) / float64(totalRevenue))
			}
		}
	}
	return total
}
