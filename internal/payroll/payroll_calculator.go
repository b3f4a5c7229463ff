package payroll

import (
	"context"

	"github.com/Waynegg8/horgoscpa-sub000/internal/allowance"
	"github.com/Waynegg8/horgoscpa-sub000/internal/comptime"
	"github.com/Waynegg8/horgoscpa-sub000/internal/employee"
	"github.com/Waynegg8/horgoscpa-sub000/internal/leave"
	"github.com/Waynegg8/horgoscpa-sub000/internal/salaryitem"
	"github.com/Waynegg8/horgoscpa-sub000/internal/settings"
	"github.com/Waynegg8/horgoscpa-sub000/internal/shared/period"
	"github.com/Waynegg8/horgoscpa-sub000/internal/shared/rounding"
	"github.com/Waynegg8/horgoscpa-sub000/internal/timesheet"

	"go.uber.org/zap"
)

//go:generate mockgen -source=payroll_calculator.go -destination=mock/payroll_calculator_mock.go -package=mock
type Calculator interface {
	// CalculateEmployee mengembalikan (nil, nil) untuk karyawan yang
	// tidak ada / nonaktif; batch melewatkannya tanpa menggagalkan run.
	CalculateEmployee(ctx context.Context, userID string, p period.Period, cfg settings.PayrollConfig) (*EmployeePayroll, error)
}

type calculator struct {
	employees  employee.Repository
	timesheets timesheet.Service
	comp       comptime.Service
	allowances allowance.Service
	leaves     leave.Service
	items      salaryitem.Service
	logger     *zap.Logger
}

func NewCalculator(
	employees employee.Repository,
	timesheets timesheet.Service,
	comp comptime.Service,
	allowances allowance.Service,
	leaves leave.Service,
	items salaryitem.Service,
	logger ...*zap.Logger,
) Calculator {
	l := zap.L().Named("payroll.calculator")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("payroll.calculator")
	}
	return &calculator{
		employees:  employees,
		timesheets: timesheets,
		comp:       comp,
		allowances: allowances,
		leaves:     leaves,
		items:      items,
		logger:     l,
	}
}

func (c *calculator) CalculateEmployee(ctx context.Context, userID string, p period.Period, cfg settings.PayrollConfig) (*EmployeePayroll, error) {
	empl, err := c.employees.FindByID(ctx, userID)
	if err != nil {
		c.logger.Error("load employee failed",
			zap.String("user_id", userID),
			zap.String("period", p.String()),
			zap.Error(err),
		)
		return nil, err
	}
	if empl == nil {
		return nil, nil
	}

	result := &EmployeePayroll{
		UserID:          empl.ID.String(),
		EmployeeName:    empl.FullName,
		EmployeeNumber:  empl.EmployeeNumber,
		Period:          p.String(),
		BaseSalaryCents: empl.BaseSalaryCents,
		HourlyRateCents: rounding.Cents(float64(empl.BaseSalaryCents) / cfg.HourlyRateDivisor),
	}

	resolved, err := c.items.ResolveForMonth(ctx, userID, p)
	if err != nil {
		return nil, err
	}
	result.RegularAllowanceCents = resolved.RegularAllowanceCents
	result.IrregularAllowanceCents = resolved.IrregularAllowanceCents
	result.BonusCents = resolved.BonusCents
	result.PerformanceBonusCents = resolved.PerformanceBonusCents
	result.YearEndBonusCents = resolved.YearEndBonusCents
	result.FixedDeductionCents = resolved.DeductionCents
	result.Items = resolved.Items

	result.MonthlyStats, err = c.timesheets.MonthlyStats(ctx, userID, p)
	if err != nil {
		return nil, err
	}

	result.Overtime, err = c.comp.OvertimeDetails(ctx, userID, p)
	if err != nil {
		return nil, err
	}
	result.OvertimeCents, err = c.comp.ExpiredCompPayCents(ctx, userID, p, result.HourlyRateCents)
	if err != nil {
		return nil, err
	}

	result.MealAllowanceCents, err = c.allowances.MealAllowanceCents(ctx, userID, p, cfg)
	if err != nil {
		return nil, err
	}
	result.TransportAllowanceCents, err = c.allowances.TransportAllowanceCents(ctx, userID, p, cfg)
	if err != nil {
		return nil, err
	}

	// Potongan cuti memakai gaji pokok + tunjangan tetap sebagai dasar rate.
	result.LeaveDeduction, err = c.leaves.MonthlyDeduction(ctx, userID, p, empl.BaseSalaryCents, resolved.RegularAllowanceCents, cfg)
	if err != nil {
		return nil, err
	}

	result.FullAttendance, err = c.leaves.FullAttendance(ctx, userID, p)
	if err != nil {
		return nil, err
	}
	if result.FullAttendance {
		result.FullAttendanceBonusCents = resolved.FullAttendanceBonusCents
	}

	result.GrossSalaryCents = result.BaseSalaryCents +
		result.RegularAllowanceCents +
		result.IrregularAllowanceCents +
		result.BonusCents +
		result.FullAttendanceBonusCents +
		result.PerformanceBonusCents +
		result.YearEndBonusCents +
		result.OvertimeCents +
		result.MealAllowanceCents +
		result.TransportAllowanceCents
	result.TotalDeductionCents = result.FixedDeductionCents + result.LeaveDeduction.TotalDeductionCents
	result.NetSalaryCents = result.GrossSalaryCents - result.TotalDeductionCents

	return result, nil
}
