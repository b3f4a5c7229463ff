package settings

import (
	"context"
	"strconv"

	"go.uber.org/zap"
)

// Setting key yang dikenali mesin payroll beserta default-nya.
const (
	KeyHourlyRateDivisor       = "hourly_rate_divisor"
	KeyMealMinOvertimeHours    = "meal_allowance_min_overtime_hours"
	KeyMealPerTime             = "meal_allowance_per_time"
	KeyTransportPerInterval    = "transport_amount_per_interval"
	KeyTransportKmPerInterval  = "transport_km_per_interval"
	KeyLeaveDailySalaryDivisor = "leave_daily_salary_divisor"
	KeySickLeaveRate           = "sick_leave_deduction_rate"
	KeyPersonalLeaveRate       = "personal_leave_deduction_rate"
)

// PayrollConfig dimuat sekali per request/batch; kalkulasi tidak pernah
// query setting satu per satu di tengah jalan.
type PayrollConfig struct {
	HourlyRateDivisor       float64
	MealMinOvertimeHours    float64
	MealPerTime             float64
	TransportPerInterval    float64
	TransportKmPerInterval  float64
	LeaveDailySalaryDivisor float64
	SickLeaveRate           float64
	PersonalLeaveRate       float64
}

func DefaultPayrollConfig() PayrollConfig {
	return PayrollConfig{
		HourlyRateDivisor:       240,
		MealMinOvertimeHours:    1.5,
		MealPerTime:             100,
		TransportPerInterval:    60,
		TransportKmPerInterval:  5,
		LeaveDailySalaryDivisor: 30,
		SickLeaveRate:           0.5,
		PersonalLeaveRate:       1,
	}
}

//go:generate mockgen -source=settings_service.go -destination=mock/settings_service_mock.go -package=mock
type Service interface {
	LoadPayrollConfig(ctx context.Context) (PayrollConfig, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("settings.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("settings.service")
	}
	return &service{repo: repo, logger: l}
}

// LoadPayrollConfig membaca semua setting sekali lalu menimpanya di atas
// default. Nilai yang tidak bisa di-parse dicatat dan diabaikan.
func (s *service) LoadPayrollConfig(ctx context.Context) (PayrollConfig, error) {
	cfg := DefaultPayrollConfig()

	rows, err := s.repo.FindAll(ctx)
	if err != nil {
		return PayrollConfig{}, err
	}

	targets := map[string]*float64{
		KeyHourlyRateDivisor:       &cfg.HourlyRateDivisor,
		KeyMealMinOvertimeHours:    &cfg.MealMinOvertimeHours,
		KeyMealPerTime:             &cfg.MealPerTime,
		KeyTransportPerInterval:    &cfg.TransportPerInterval,
		KeyTransportKmPerInterval:  &cfg.TransportKmPerInterval,
		KeyLeaveDailySalaryDivisor: &cfg.LeaveDailySalaryDivisor,
		KeySickLeaveRate:           &cfg.SickLeaveRate,
		KeyPersonalLeaveRate:       &cfg.PersonalLeaveRate,
	}

	for _, row := range rows {
		target, recognized := targets[row.Key]
		if !recognized {
			continue
		}
		v, err := strconv.ParseFloat(row.Value, 64)
		if err != nil {
			s.logger.Warn("malformed setting value, using default",
				zap.String("key", row.Key),
				zap.String("value", row.Value),
			)
			continue
		}
		*target = v
	}

	return cfg, nil
}
