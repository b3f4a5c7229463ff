package payroll_test

import (
	"context"
	"errors"
	"testing"

	"github.com/Waynegg8/horgoscpa-sub000/internal/comptime"
	"github.com/Waynegg8/horgoscpa-sub000/internal/employee"
	"github.com/Waynegg8/horgoscpa-sub000/internal/leave"
	"github.com/Waynegg8/horgoscpa-sub000/internal/payroll"
	"github.com/Waynegg8/horgoscpa-sub000/internal/salaryitem"
	"github.com/Waynegg8/horgoscpa-sub000/internal/settings"
	"github.com/Waynegg8/horgoscpa-sub000/internal/shared/period"
	"github.com/Waynegg8/horgoscpa-sub000/internal/timesheet"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type fakeEmployeeRepository struct {
	findByIDFn    func(ctx context.Context, id string) (*employee.Employee, error)
	findActiveFn  func(ctx context.Context) ([]employee.Employee, error)
	countActiveFn func(ctx context.Context) (int64, error)
}

func (f *fakeEmployeeRepository) FindByID(ctx context.Context, id string) (*employee.Employee, error) {
	return f.findByIDFn(ctx, id)
}

func (f *fakeEmployeeRepository) FindActive(ctx context.Context) ([]employee.Employee, error) {
	if f.findActiveFn != nil {
		return f.findActiveFn(ctx)
	}
	return nil, nil
}

func (f *fakeEmployeeRepository) CountActive(ctx context.Context) (int64, error) {
	if f.countActiveFn != nil {
		return f.countActiveFn(ctx)
	}
	return 0, nil
}

type fakeTimesheetService struct {
	stats timesheet.MonthlyStats
	err   error
}

func (f *fakeTimesheetService) Create(ctx context.Context, req timesheet.CreateTimesheetRequest) (timesheet.TimesheetResponse, error) {
	return timesheet.TimesheetResponse{}, nil
}

func (f *fakeTimesheetService) Update(ctx context.Context, id string, req timesheet.UpdateTimesheetRequest) (timesheet.TimesheetResponse, error) {
	return timesheet.TimesheetResponse{}, nil
}

func (f *fakeTimesheetService) BatchDelete(ctx context.Context, req timesheet.BatchDeleteRequest) (int, error) {
	return 0, nil
}

func (f *fakeTimesheetService) MonthlyStats(ctx context.Context, userID string, p period.Period) (timesheet.MonthlyStats, error) {
	return f.stats, f.err
}

type fakeComptimeService struct {
	details  comptime.OvertimeDetails
	payCents int64
	err      error
}

func (f *fakeComptimeService) OvertimeDetails(ctx context.Context, userID string, p period.Period) (comptime.OvertimeDetails, error) {
	return f.details, f.err
}

func (f *fakeComptimeService) ExpiredCompPayCents(ctx context.Context, userID string, p period.Period, hourlyRateCents int64) (int64, error) {
	return f.payCents, f.err
}

type fakeAllowanceService struct {
	meal      int64
	transport int64
	err       error
}

func (f *fakeAllowanceService) MealAllowanceCents(ctx context.Context, userID string, p period.Period, cfg settings.PayrollConfig) (int64, error) {
	return f.meal, f.err
}

func (f *fakeAllowanceService) TransportAllowanceCents(ctx context.Context, userID string, p period.Period, cfg settings.PayrollConfig) (int64, error) {
	return f.transport, f.err
}

type fakeLeaveService struct {
	deduction      leave.DeductionDetail
	fullAttendance bool
	compHours      float64
	err            error
}

func (f *fakeLeaveService) MonthlyDeduction(ctx context.Context, userID string, p period.Period, baseSalaryCents, regularAllowanceCents int64, cfg settings.PayrollConfig) (leave.DeductionDetail, error) {
	return f.deduction, f.err
}

func (f *fakeLeaveService) FullAttendance(ctx context.Context, userID string, p period.Period) (bool, error) {
	return f.fullAttendance, f.err
}

func (f *fakeLeaveService) ApprovedCompHours(ctx context.Context, userID string, p period.Period) (float64, error) {
	return f.compHours, f.err
}

type fakeSalaryItemService struct {
	resolved salaryitem.ResolvedItems
	err      error
}

func (f *fakeSalaryItemService) ResolveForMonth(ctx context.Context, userID string, p period.Period) (salaryitem.ResolvedItems, error) {
	return f.resolved, f.err
}

func activeEmployee(base int64) *employee.Employee {
	return &employee.Employee{
		ID:              uuid.New(),
		FullName:        "王小明",
		EmployeeNumber:  "EMP-000001",
		BaseSalaryCents: base,
	}
}

func mustPeriod(t *testing.T, s string) period.Period {
	t.Helper()
	p, err := period.Parse(s)
	assert.NoError(t, err)
	return p
}

func TestCalculateEmployee_FullBreakdown(t *testing.T) {
	empl := activeEmployee(3000000)
	calc := payroll.NewCalculator(
		&fakeEmployeeRepository{findByIDFn: func(ctx context.Context, id string) (*employee.Employee, error) {
			return empl, nil
		}},
		&fakeTimesheetService{stats: timesheet.MonthlyStats{TotalHours: 170, OvertimeHours: 10, WeightedHours: 173.4}},
		&fakeComptimeService{payCents: 1675000},
		&fakeAllowanceService{meal: 10000, transport: 18000},
		&fakeLeaveService{
			deduction:      leave.DeductionDetail{TotalDeductionCents: 50000},
			fullAttendance: false,
		},
		&fakeSalaryItemService{resolved: salaryitem.ResolvedItems{
			RegularAllowanceCents:    240000,
			IrregularAllowanceCents:  50000,
			BonusCents:               30000,
			FullAttendanceBonusCents: 100000,
			PerformanceBonusCents:    125000,
			DeductionCents:           120000,
		}},
	)

	result, err := calc.CalculateEmployee(context.Background(), empl.ID.String(), mustPeriod(t, "2024-06"), settings.DefaultPayrollConfig())
	assert.NoError(t, err)
	assert.NotNil(t, result)

	// 3000000 / 240 = 12500.
	assert.Equal(t, int64(12500), result.HourlyRateCents)

	// Tidak full attendance: bonus全勤 tidak dibayar.
	assert.False(t, result.FullAttendance)
	assert.Equal(t, int64(0), result.FullAttendanceBonusCents)

	wantGross := int64(3000000 + 240000 + 50000 + 30000 + 125000 + 1675000 + 10000 + 18000)
	assert.Equal(t, wantGross, result.GrossSalaryCents)
	assert.Equal(t, int64(120000+50000), result.TotalDeductionCents)
	assert.Equal(t, wantGross-170000, result.NetSalaryCents)

	// Invarian slip: net = gross - total deduction, selalu.
	assert.Equal(t, result.NetSalaryCents, result.GrossSalaryCents-result.TotalDeductionCents)
}

func TestCalculateEmployee_FullAttendanceBonusPaid(t *testing.T) {
	empl := activeEmployee(3000000)
	calc := payroll.NewCalculator(
		&fakeEmployeeRepository{findByIDFn: func(ctx context.Context, id string) (*employee.Employee, error) {
			return empl, nil
		}},
		&fakeTimesheetService{},
		&fakeComptimeService{},
		&fakeAllowanceService{},
		&fakeLeaveService{fullAttendance: true},
		&fakeSalaryItemService{resolved: salaryitem.ResolvedItems{FullAttendanceBonusCents: 100000}},
	)

	result, err := calc.CalculateEmployee(context.Background(), empl.ID.String(), mustPeriod(t, "2024-06"), settings.DefaultPayrollConfig())
	assert.NoError(t, err)
	assert.True(t, result.FullAttendance)
	assert.Equal(t, int64(100000), result.FullAttendanceBonusCents)
	assert.Equal(t, int64(3100000), result.GrossSalaryCents)
}

func TestCalculateEmployee_MissingEmployeeReturnsNil(t *testing.T) {
	calc := payroll.NewCalculator(
		&fakeEmployeeRepository{findByIDFn: func(ctx context.Context, id string) (*employee.Employee, error) {
			return nil, nil
		}},
		&fakeTimesheetService{},
		&fakeComptimeService{},
		&fakeAllowanceService{},
		&fakeLeaveService{},
		&fakeSalaryItemService{},
	)

	result, err := calc.CalculateEmployee(context.Background(), uuid.NewString(), mustPeriod(t, "2024-06"), settings.DefaultPayrollConfig())
	assert.NoError(t, err)
	assert.Nil(t, result)
}

func TestCalculateEmployee_DependencyErrorSurfaces(t *testing.T) {
	empl := activeEmployee(3000000)
	calc := payroll.NewCalculator(
		&fakeEmployeeRepository{findByIDFn: func(ctx context.Context, id string) (*employee.Employee, error) {
			return empl, nil
		}},
		&fakeTimesheetService{err: errors.New("db down")},
		&fakeComptimeService{},
		&fakeAllowanceService{},
		&fakeLeaveService{},
		&fakeSalaryItemService{},
	)

	result, err := calc.CalculateEmployee(context.Background(), empl.ID.String(), mustPeriod(t, "2024-06"), settings.DefaultPayrollConfig())
	assert.Error(t, err)
	assert.Nil(t, result)
}
