package salaryitem

import "strings"

// Bucket adalah tujuan akhir sebuah item dalam perhitungan payroll.
type Bucket int

const (
	BucketRegularAllowance Bucket = iota
	BucketIrregularAllowance
	BucketBonus
	BucketYearEndBonus
	BucketDeduction
	BucketPerformance
)

func (b Bucket) String() string {
	switch b {
	case BucketRegularAllowance:
		return "regular_allowance"
	case BucketIrregularAllowance:
		return "irregular_allowance"
	case BucketBonus:
		return "bonus"
	case BucketYearEndBonus:
		return "year_end_bonus"
	case BucketDeduction:
		return "deduction"
	case BucketPerformance:
		return "performance"
	}
	return "unknown"
}

// ClassifyBucket memetakan kategori tertutup ke bucket kalkulasi. Item
// berkode PERFORMANCE selalu keluar dari bucket bonus generik karena
// resolusinya lewat tabel override bulanan.
func ClassifyBucket(t SalaryItemType) Bucket {
	if strings.EqualFold(t.ItemCode, ItemCodePerformance) {
		return BucketPerformance
	}
	if IsYearEnd(t) {
		return BucketYearEndBonus
	}

	switch t.Category {
	case CategoryRegularAllowance:
		return BucketRegularAllowance
	case CategoryIrregularAllowance, CategoryAllowance:
		return BucketIrregularAllowance
	case CategoryDeduction:
		return BucketDeduction
	case CategoryBonus:
		return BucketBonus
	}
	// Kategori tak dikenal diperlakukan sebagai bonus generik, mengikuti
	// perilaku data lawas.
	return BucketBonus
}

// IsFullAttendance: flag eksplisit menang; fallback substring tetap
// didukung untuk data lawas yang belum dimigrasi.
func IsFullAttendance(t SalaryItemType) bool {
	if t.IsFullAttendanceBonus {
		return true
	}
	return strings.Contains(strings.ToUpper(t.ItemCode), "FULL") ||
		strings.Contains(t.ItemName, "全勤")
}

func IsYearEnd(t SalaryItemType) bool {
	if t.IsYearEndBonus || t.Category == CategoryYearEndBonus {
		return true
	}
	name := strings.ToLower(t.ItemName)
	return strings.Contains(name, "year end") || strings.Contains(t.ItemName, "年終")
}
