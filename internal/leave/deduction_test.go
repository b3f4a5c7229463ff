package leave_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Waynegg8/horgoscpa-sub000/internal/leave"
	"github.com/Waynegg8/horgoscpa-sub000/internal/settings"
	"github.com/Waynegg8/horgoscpa-sub000/internal/shared/period"

	"github.com/stretchr/testify/assert"
)

type fakeLeaveRepository struct {
	findApprovedOverlappingFn func(ctx context.Context, userID string, first, last time.Time, leaveTypes ...string) ([]leave.LeaveRequest, error)
	menstrualDaysBeforeFn     func(ctx context.Context, userID string, yearStart, before time.Time) (float64, error)
}

func (f *fakeLeaveRepository) FindApprovedOverlapping(ctx context.Context, userID string, first, last time.Time, leaveTypes ...string) ([]leave.LeaveRequest, error) {
	return f.findApprovedOverlappingFn(ctx, userID, first, last, leaveTypes...)
}

func (f *fakeLeaveRepository) MenstrualDaysBefore(ctx context.Context, userID string, yearStart, before time.Time) (float64, error) {
	if f.menstrualDaysBeforeFn == nil {
		return 0, nil
	}
	return f.menstrualDaysBeforeFn(ctx, userID, yearStart, before)
}

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

func TestComputeDeduction_SickHalfRate(t *testing.T) {
	cfg := settings.DefaultPayrollConfig()

	d := leave.ComputeDeduction([]leave.LeaveRequest{
		{LeaveType: leave.TypeSick, Unit: leave.UnitHour, Amount: 8},
	}, 0, 3000000, 0, cfg)

	// 3000000/240 = 12500 per jam; 8 x 12500 x 0.5 = 50000
	assert.Equal(t, int64(12500), d.HourlyRateCents)
	assert.Equal(t, int64(100000), d.DailySalaryCents)
	assert.Equal(t, int64(50000), d.SickDeductionCents)
	assert.Equal(t, int64(50000), d.TotalDeductionCents)
}

func TestComputeDeduction_PersonalFullRate(t *testing.T) {
	cfg := settings.DefaultPayrollConfig()

	d := leave.ComputeDeduction([]leave.LeaveRequest{
		{LeaveType: leave.TypePersonal, Unit: leave.UnitDay, Amount: 1},
	}, 0, 3000000, 0, cfg)

	assert.Equal(t, float64(8), d.PersonalHours)
	assert.Equal(t, int64(100000), d.PersonalDeductionCents)
}

func TestComputeDeduction_FloorPerComponent(t *testing.T) {
	cfg := settings.DefaultPayrollConfig()

	// Gaji 3100000 sen: hourly = round(3100000/240) = 12917.
	// Sakit 1.5 jam: floor(1.5 x 12917 x 0.5)  = floor(9687.75)  = 9687
	// Pribadi 2.5 jam: floor(2.5 x 12917 x 1.0) = floor(32292.5) = 32292
	d := leave.ComputeDeduction([]leave.LeaveRequest{
		{LeaveType: leave.TypeSick, Unit: leave.UnitHour, Amount: 1.5},
		{LeaveType: leave.TypePersonal, Unit: leave.UnitHour, Amount: 2.5},
	}, 0, 3100000, 0, cfg)

	assert.Equal(t, int64(12917), d.HourlyRateCents)
	assert.Equal(t, int64(9687), d.SickDeductionCents)
	assert.Equal(t, int64(32292), d.PersonalDeductionCents)
	assert.Equal(t, int64(41979), d.TotalDeductionCents)
}

func TestComputeDeduction_RegularAllowanceRaisesRate(t *testing.T) {
	cfg := settings.DefaultPayrollConfig()

	d := leave.ComputeDeduction([]leave.LeaveRequest{
		{LeaveType: leave.TypePersonal, Unit: leave.UnitHour, Amount: 8},
	}, 0, 3000000, 240000, cfg)

	// (3000000+240000)/240 = 13500
	assert.Equal(t, int64(13500), d.HourlyRateCents)
	assert.Equal(t, int64(108000), d.PersonalDeductionCents)
}

func TestComputeDeduction_MenstrualBookkeeping(t *testing.T) {
	cfg := settings.DefaultPayrollConfig()

	// 2 hari haid di tahun berjalan sudah terpakai; bulan ini 2 hari lagi.
	// Sisa gratis 1 hari, 1 hari lainnya digabung ke sakit. Potongan tetap
	// 0.5x untuk seluruh 16 jam.
	d := leave.ComputeDeduction([]leave.LeaveRequest{
		{LeaveType: leave.TypeMenstrual, Unit: leave.UnitDay, Amount: 2},
	}, 2, 3000000, 0, cfg)

	assert.Equal(t, float64(16), d.MenstrualHours)
	assert.Equal(t, float64(1), d.MenstrualFreeDays)
	assert.Equal(t, float64(1), d.MenstrualMergedDays)
	assert.Equal(t, int64(100000), d.MenstrualDeductionCents)
}

func TestComputeDeduction_MenstrualQuotaExhausted(t *testing.T) {
	cfg := settings.DefaultPayrollConfig()

	d := leave.ComputeDeduction([]leave.LeaveRequest{
		{LeaveType: leave.TypeMenstrual, Unit: leave.UnitDay, Amount: 1},
	}, 5, 3000000, 0, cfg)

	assert.Equal(t, float64(0), d.MenstrualFreeDays)
	assert.Equal(t, float64(1), d.MenstrualMergedDays)
}

func TestMonthlyDeduction_PropagatesRepoError(t *testing.T) {
	repo := &fakeLeaveRepository{
		findApprovedOverlappingFn: func(ctx context.Context, userID string, first, last time.Time, leaveTypes ...string) ([]leave.LeaveRequest, error) {
			return nil, errors.New("db down")
		},
	}
	svc := leave.NewService(repo)
	p, _ := period.Parse("2024-06")

	_, err := svc.MonthlyDeduction(context.Background(), "user-1", p, 3000000, 0, settings.DefaultPayrollConfig())
	assert.Error(t, err)
}

func TestFullAttendance(t *testing.T) {
	p, _ := period.Parse("2024-06")

	repo := &fakeLeaveRepository{
		findApprovedOverlappingFn: func(ctx context.Context, userID string, first, last time.Time, leaveTypes ...string) ([]leave.LeaveRequest, error) {
			// Haid & kompensasi tidak termasuk filter full attendance.
			assert.ElementsMatch(t, []string{leave.TypeSick, leave.TypePersonal}, leaveTypes)
			return nil, nil
		},
	}
	svc := leave.NewService(repo)

	ok, err := svc.FullAttendance(context.Background(), "user-1", p)
	assert.NoError(t, err)
	assert.True(t, ok)

	repo.findApprovedOverlappingFn = func(ctx context.Context, userID string, first, last time.Time, leaveTypes ...string) ([]leave.LeaveRequest, error) {
		return []leave.LeaveRequest{
			{LeaveType: leave.TypeSick, Unit: leave.UnitHour, Amount: 1, StartDate: day(2024, 6, 10), EndDate: day(2024, 6, 10)},
		}, nil
	}
	ok, err = svc.FullAttendance(context.Background(), "user-1", p)
	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestApprovedCompHours(t *testing.T) {
	p, _ := period.Parse("2024-06")
	repo := &fakeLeaveRepository{
		findApprovedOverlappingFn: func(ctx context.Context, userID string, first, last time.Time, leaveTypes ...string) ([]leave.LeaveRequest, error) {
			assert.Equal(t, []string{leave.TypeCompensatory}, leaveTypes)
			return []leave.LeaveRequest{
				{LeaveType: leave.TypeCompensatory, Unit: leave.UnitDay, Amount: 1},
				{LeaveType: leave.TypeCompensatory, Unit: leave.UnitHour, Amount: 2.5},
			}, nil
		},
	}
	svc := leave.NewService(repo)

	hours, err := svc.ApprovedCompHours(context.Background(), "user-1", p)
	assert.NoError(t, err)
	assert.Equal(t, 10.5, hours)
}
