package salaryitem

import (
	"encoding/json"
	"time"

	"github.com/Waynegg8/horgoscpa-sub000/internal/shared/period"

	"go.uber.org/zap"
)

// ShouldPayInMonth memutuskan apakah sebuah item gaji dibayar pada bulan
// target. Urutan: jendela effective/expiry dulu, lalu aturan recurring.
// recurring_months yang tidak valid dianggap tidak cocok, tidak pernah
// menghentikan kalkulasi.
func ShouldPayInMonth(item EmployeeSalaryItem, target period.Period, logger *zap.Logger) bool {
	if item.EffectiveDate.After(target.End()) {
		return false
	}
	if item.ExpiryDate != nil && item.ExpiryDate.Before(target.Start()) {
		return false
	}

	switch item.RecurringType {
	case RecurringMonthly:
		return true

	case RecurringOnce:
		return item.EffectiveDate.Year() == target.Year &&
			item.EffectiveDate.Month() == target.Month

	case RecurringYearly:
		var months []int
		if err := json.Unmarshal([]byte(item.RecurringMonths), &months); err != nil {
			if logger != nil {
				logger.Warn("malformed recurring_months, item skipped",
					zap.String("item_id", item.ID.String()),
					zap.String("recurring_months", item.RecurringMonths),
				)
			}
			return false
		}
		for _, m := range months {
			if time.Month(m) == target.Month {
				return true
			}
		}
		return false

	default:
		if logger != nil {
			logger.Warn("unknown recurring_type, item skipped",
				zap.String("item_id", item.ID.String()),
				zap.String("recurring_type", item.RecurringType),
			)
		}
		return false
	}
}
