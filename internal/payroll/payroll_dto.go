package payroll

import (
	"github.com/Waynegg8/horgoscpa-sub000/internal/comptime"
	"github.com/Waynegg8/horgoscpa-sub000/internal/leave"
	"github.com/Waynegg8/horgoscpa-sub000/internal/salaryitem"
	"github.com/Waynegg8/horgoscpa-sub000/internal/timesheet"
)

// EmployeePayroll memuat setiap angka antara dan akhir, bukan hanya
// total: diffing snapshot dan tampilan slip sama-sama bergantung pada
// itemisasi ini.
type EmployeePayroll struct {
	UserID         string `json:"userId"`
	EmployeeName   string `json:"employeeName"`
	EmployeeNumber string `json:"employeeNumber"`
	Period         string `json:"period"`

	BaseSalaryCents int64 `json:"baseSalaryCents"`
	HourlyRateCents int64 `json:"hourlyRateCents"`

	RegularAllowanceCents   int64 `json:"regularAllowanceCents"`
	IrregularAllowanceCents int64 `json:"irregularAllowanceCents"`

	BonusCents               int64 `json:"bonusCents"`
	FullAttendanceBonusCents int64 `json:"fullAttendanceBonusCents"`
	PerformanceBonusCents    int64 `json:"performanceBonusCents"`
	YearEndBonusCents        int64 `json:"yearEndBonusCents"`

	// Konversi tunai jam kompensasi yang hangus akhir bulan.
	OvertimeCents int64 `json:"overtimeCents"`

	MealAllowanceCents      int64 `json:"mealAllowanceCents"`
	TransportAllowanceCents int64 `json:"transportAllowanceCents"`

	FullAttendance bool `json:"fullAttendance"`

	FixedDeductionCents int64                 `json:"fixedDeductionCents"`
	LeaveDeduction      leave.DeductionDetail `json:"leaveDeduction"`

	GrossSalaryCents    int64 `json:"grossSalaryCents"`
	TotalDeductionCents int64 `json:"totalDeductionCents"`
	NetSalaryCents      int64 `json:"netSalaryCents"`

	MonthlyStats timesheet.MonthlyStats      `json:"monthlyStats"`
	Overtime     comptime.OvertimeDetails    `json:"overtime"`
	Items        []salaryitem.ItemBreakdown  `json:"items"`
}

// LaborCostCents adalah biaya tenaga kerja satu bulan yang dipakai mesin
// alokasi overhead: gaji pokok + item gaji yang berlaku (bonus 全勤 sudah
// ter-gate) + konversi tunai jam kompensasi hangus - potongan cuti.
// Satu-satunya definisi labor cost; laporan biaya tidak menghitung ulang
// versinya sendiri.
func (e EmployeePayroll) LaborCostCents() int64 {
	return e.BaseSalaryCents +
		e.RegularAllowanceCents +
		e.IrregularAllowanceCents +
		e.BonusCents +
		e.FullAttendanceBonusCents +
		e.PerformanceBonusCents +
		e.YearEndBonusCents +
		e.OvertimeCents -
		e.LeaveDeduction.TotalDeductionCents
}

// PayrollRun adalah hasil preview/finalize untuk seluruh karyawan aktif.
type PayrollRun struct {
	Period    string            `json:"period"`
	Employees []EmployeePayroll `json:"employees"`

	TotalGrossCents int64 `json:"totalGrossCents"`
	TotalNetCents   int64 `json:"totalNetCents"`

	// Karyawan yang kalkulasinya gagal dan dilewati (batch tetap sukses).
	SkippedUserIDs []string `json:"skippedUserIds,omitempty"`
}

type FinalizeRequest struct {
	Notes string `json:"notes" binding:"max=500"`
}

type FinalizeResponse struct {
	SnapshotID int64           `json:"snapshotId"`
	Period     string          `json:"period"`
	Version    int             `json:"version"`
	Changes    *ChangesSummary `json:"changes,omitempty"`
}

type SnapshotResponse struct {
	ID        int64           `json:"id"`
	Period    string          `json:"period"`
	Version   int             `json:"version"`
	CreatedBy string          `json:"createdBy"`
	Notes     string          `json:"notes,omitempty"`
	Changes   *ChangesSummary `json:"changes,omitempty"`
	CreatedAt string          `json:"createdAt"`
}
