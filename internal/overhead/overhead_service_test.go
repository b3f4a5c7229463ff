package overhead_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Waynegg8/horgoscpa-sub000/internal/employee"
	"github.com/Waynegg8/horgoscpa-sub000/internal/overhead"
	"github.com/Waynegg8/horgoscpa-sub000/internal/payroll"
	"github.com/Waynegg8/horgoscpa-sub000/internal/settings"
	"github.com/Waynegg8/horgoscpa-sub000/internal/shared/cache"
	"github.com/Waynegg8/horgoscpa-sub000/internal/shared/period"
	"github.com/Waynegg8/horgoscpa-sub000/internal/timesheet"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type fakeOverheadRepository struct {
	costs   []overhead.MonthlyCost
	revenue map[string]int64
	err     error
}

func (f *fakeOverheadRepository) FindMonthlyCosts(ctx context.Context, month string) ([]overhead.MonthlyCost, error) {
	return f.costs, f.err
}

func (f *fakeOverheadRepository) RevenueByUser(ctx context.Context, first, last time.Time) (map[string]int64, error) {
	return f.revenue, f.err
}

type fakeEmployeeRepository struct {
	empls []employee.Employee
	// activeCount 0 berarti pakai len(empls).
	activeCount int64
}

func (f *fakeEmployeeRepository) FindByID(ctx context.Context, id string) (*employee.Employee, error) {
	for i := range f.empls {
		if f.empls[i].ID.String() == id {
			return &f.empls[i], nil
		}
	}
	return nil, nil
}

func (f *fakeEmployeeRepository) FindActive(ctx context.Context) ([]employee.Employee, error) {
	return f.empls, nil
}

func (f *fakeEmployeeRepository) CountActive(ctx context.Context) (int64, error) {
	if f.activeCount > 0 {
		return f.activeCount, nil
	}
	return int64(len(f.empls)), nil
}

type fakeReportStore struct {
	reports map[string]overhead.CostRatesReport
	sets    []string
}

func (f *fakeReportStore) Get(ctx context.Context, key string, dest any) bool {
	report, ok := f.reports[key]
	if !ok {
		return false
	}
	*dest.(*overhead.CostRatesReport) = report
	return true
}

func (f *fakeReportStore) Set(ctx context.Context, key string, value any, ttl time.Duration) {
	f.sets = append(f.sets, key)
}

func (f *fakeReportStore) Invalidate(ctx context.Context, prefix string) {}

type fakeTimesheetRepository struct {
	byUser map[string][]timesheet.Timesheet
}

func (f *fakeTimesheetRepository) Create(ctx context.Context, ts *timesheet.Timesheet) error {
	return nil
}

func (f *fakeTimesheetRepository) Update(ctx context.Context, ts *timesheet.Timesheet) error {
	return nil
}

func (f *fakeTimesheetRepository) FindByID(ctx context.Context, id string) (*timesheet.Timesheet, error) {
	return nil, nil
}

func (f *fakeTimesheetRepository) FindByUserAndRange(ctx context.Context, userID string, first, last time.Time) ([]timesheet.Timesheet, error) {
	return f.byUser[userID], nil
}

func (f *fakeTimesheetRepository) FindByRange(ctx context.Context, first, last time.Time) ([]timesheet.Timesheet, error) {
	return nil, nil
}

func (f *fakeTimesheetRepository) BatchDelete(ctx context.Context, ids []string) ([]timesheet.Timesheet, error) {
	return nil, nil
}

type fakeCalculator struct {
	fn func(ctx context.Context, userID string, p period.Period, cfg settings.PayrollConfig) (*payroll.EmployeePayroll, error)
}

func (f *fakeCalculator) CalculateEmployee(ctx context.Context, userID string, p period.Period, cfg settings.PayrollConfig) (*payroll.EmployeePayroll, error) {
	return f.fn(ctx, userID, p, cfg)
}

type fakeSettingsService struct{}

func (fakeSettingsService) LoadPayrollConfig(ctx context.Context) (settings.PayrollConfig, error) {
	return settings.DefaultPayrollConfig(), nil
}

func costType(name, method string, cents int64) overhead.MonthlyCost {
	return overhead.MonthlyCost{
		AmountCents: cents,
		CostType:    overhead.CostType{Name: name, AllocationMethod: method, Active: true},
	}
}

func entry(userID string, date string, code int, hours float64) timesheet.Timesheet {
	d, _ := time.Parse("2006-01-02", date)
	uid, _ := uuid.Parse(userID)
	return timesheet.Timesheet{UserID: uid, WorkDate: d, WorkTypeCode: code, Hours: hours}
}

func TestEmployeeCostRates_AllThreeMethods(t *testing.T) {
	emplA := employee.Employee{ID: uuid.New(), FullName: "A", EmployeeNumber: "EMP-000001"}
	emplB := employee.Employee{ID: uuid.New(), FullName: "B", EmployeeNumber: "EMP-000002"}

	repo := &fakeOverheadRepository{
		costs: []overhead.MonthlyCost{
			costType("租金", overhead.MethodPerEmployee, 1000000),
			costType("水電", overhead.MethodPerHour, 300000),
			costType("系統", overhead.MethodPerRevenue, 500000),
		},
		revenue: map[string]int64{
			emplA.ID.String(): 7500000,
			emplB.ID.String(): 2500000,
		},
	}
	tsRepo := &fakeTimesheetRepository{byUser: map[string][]timesheet.Timesheet{
		// A: 120 jam, B: 60 jam.
		emplA.ID.String(): {entry(emplA.ID.String(), "2024-06-03", 1, 120)},
		emplB.ID.String(): {entry(emplB.ID.String(), "2024-06-03", 1, 60)},
	}}
	calc := &fakeCalculator{fn: func(ctx context.Context, userID string, p period.Period, cfg settings.PayrollConfig) (*payroll.EmployeePayroll, error) {
		return &payroll.EmployeePayroll{UserID: userID, BaseSalaryCents: 3000000}, nil
	}}

	svc := overhead.NewService(repo, &fakeEmployeeRepository{empls: []employee.Employee{emplA, emplB}}, tsRepo, calc, fakeSettingsService{}, cache.Noop{})

	p, _ := period.Parse("2024-06")
	report, err := svc.EmployeeCostRates(context.Background(), p)
	assert.NoError(t, err)
	assert.Len(t, report.Employees, 2)

	a := report.Employees[0]
	// per_employee: 1000000/2 = 500000
	// per_hour:     300000 x 120/180 = 200000
	// per_revenue:  500000 x 7500000/10000000 = 375000
	assert.Equal(t, int64(500000+200000+375000), a.OverheadCents)
	assert.Equal(t, int64(3000000), a.LaborCostCents)
	assert.Equal(t, a.LaborCostCents+a.OverheadCents, a.TotalCostCents)
	// (3000000 + 1075000) / 120 = 33958.33 -> 33958
	assert.Equal(t, int64(33958), a.ActualHourlyCents)

	b := report.Employees[1]
	assert.Equal(t, int64(500000+100000+125000), b.OverheadCents)

	assert.Equal(t, a.OverheadCents+b.OverheadCents, report.TotalOverheadCents)
}

func TestEmployeeCostRates_ZeroHoursNoDivide(t *testing.T) {
	empl := employee.Employee{ID: uuid.New(), FullName: "A", EmployeeNumber: "EMP-000001"}

	repo := &fakeOverheadRepository{
		costs: []overhead.MonthlyCost{costType("水電", overhead.MethodPerHour, 300000)},
	}
	calc := &fakeCalculator{fn: func(ctx context.Context, userID string, p period.Period, cfg settings.PayrollConfig) (*payroll.EmployeePayroll, error) {
		return &payroll.EmployeePayroll{UserID: userID, BaseSalaryCents: 3000000}, nil
	}}

	svc := overhead.NewService(repo, &fakeEmployeeRepository{empls: []employee.Employee{empl}}, &fakeTimesheetRepository{}, calc, fakeSettingsService{}, cache.Noop{})

	p, _ := period.Parse("2024-06")
	report, err := svc.EmployeeCostRates(context.Background(), p)
	assert.NoError(t, err)
	assert.Len(t, report.Employees, 1)
	// Tanpa jam: tak ada alokasi per_hour, tarif aktual 0.
	assert.Equal(t, int64(0), report.Employees[0].OverheadCents)
	assert.Equal(t, int64(0), report.Employees[0].ActualHourlyCents)
}

func TestEmployeeCostRates_FailedEmployeeSkipped(t *testing.T) {
	emplA := employee.Employee{ID: uuid.New(), FullName: "A", EmployeeNumber: "EMP-000001"}
	emplB := employee.Employee{ID: uuid.New(), FullName: "B", EmployeeNumber: "EMP-000002"}

	repo := &fakeOverheadRepository{
		costs: []overhead.MonthlyCost{costType("租金", overhead.MethodPerEmployee, 1000000)},
	}
	calc := &fakeCalculator{fn: func(ctx context.Context, userID string, p period.Period, cfg settings.PayrollConfig) (*payroll.EmployeePayroll, error) {
		if userID == emplA.ID.String() {
			return nil, errors.New("boom")
		}
		return &payroll.EmployeePayroll{UserID: userID}, nil
	}}

	svc := overhead.NewService(repo, &fakeEmployeeRepository{empls: []employee.Employee{emplA, emplB}}, &fakeTimesheetRepository{}, calc, fakeSettingsService{}, cache.Noop{})

	p, _ := period.Parse("2024-06")
	report, err := svc.EmployeeCostRates(context.Background(), p)
	assert.NoError(t, err)
	assert.Len(t, report.Employees, 1)
	// Pembagi per_employee tetap seluruh karyawan aktif (2), meski satu
	// gagal dihitung dan dilewati.
	assert.Equal(t, int64(500000), report.Employees[0].OverheadCents)
}

func TestEmployeeCostRates_DivisorFromActiveCount(t *testing.T) {
	empl := employee.Employee{ID: uuid.New(), FullName: "A", EmployeeNumber: "EMP-000001"}

	repo := &fakeOverheadRepository{
		costs: []overhead.MonthlyCost{costType("租金", overhead.MethodPerEmployee, 1000000)},
	}
	calc := &fakeCalculator{fn: func(ctx context.Context, userID string, p period.Period, cfg settings.PayrollConfig) (*payroll.EmployeePayroll, error) {
		return &payroll.EmployeePayroll{UserID: userID}, nil
	}}

	// Repo melaporkan 4 karyawan aktif meski hanya satu ikut laporan;
	// pembagi per_employee mengikuti angka repo, bukan jumlah baris.
	empls := &fakeEmployeeRepository{empls: []employee.Employee{empl}, activeCount: 4}
	svc := overhead.NewService(repo, empls, &fakeTimesheetRepository{}, calc, fakeSettingsService{}, cache.Noop{})

	p, _ := period.Parse("2024-06")
	report, err := svc.EmployeeCostRates(context.Background(), p)
	assert.NoError(t, err)
	assert.Len(t, report.Employees, 1)
	assert.Equal(t, int64(250000), report.Employees[0].OverheadCents)
}

func TestEmployeeCostRates_CachedReportServed(t *testing.T) {
	cached := overhead.CostRatesReport{Period: "2024-06", TotalOverheadCents: 42}
	store := &fakeReportStore{reports: map[string]overhead.CostRatesReport{
		"overhead:cost-rates:2024-06": cached,
	}}

	// Repo yang selalu gagal membuktikan jalur hitung tidak disentuh.
	repo := &fakeOverheadRepository{err: errors.New("db down")}
	calc := &fakeCalculator{fn: func(ctx context.Context, userID string, p period.Period, cfg settings.PayrollConfig) (*payroll.EmployeePayroll, error) {
		return nil, errors.New("unreachable")
	}}

	svc := overhead.NewService(repo, &fakeEmployeeRepository{}, &fakeTimesheetRepository{}, calc, fakeSettingsService{}, store)

	p, _ := period.Parse("2024-06")
	report, err := svc.EmployeeCostRates(context.Background(), p)
	assert.NoError(t, err)
	assert.Equal(t, cached, report)
	assert.Empty(t, store.sets)
}

func TestEmployeeCostRates_ReportCachedAfterCompute(t *testing.T) {
	empl := employee.Employee{ID: uuid.New(), FullName: "A", EmployeeNumber: "EMP-000001"}

	repo := &fakeOverheadRepository{
		costs: []overhead.MonthlyCost{costType("租金", overhead.MethodPerEmployee, 1000000)},
	}
	calc := &fakeCalculator{fn: func(ctx context.Context, userID string, p period.Period, cfg settings.PayrollConfig) (*payroll.EmployeePayroll, error) {
		return &payroll.EmployeePayroll{UserID: userID}, nil
	}}
	store := &fakeReportStore{}

	svc := overhead.NewService(repo, &fakeEmployeeRepository{empls: []employee.Employee{empl}}, &fakeTimesheetRepository{}, calc, fakeSettingsService{}, store)

	p, _ := period.Parse("2024-06")
	_, err := svc.EmployeeCostRates(context.Background(), p)
	assert.NoError(t, err)
	assert.Equal(t, []string{"overhead:cost-rates:2024-06"}, store.sets)
}
