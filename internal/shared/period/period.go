package period

import (
	"errors"
	"time"
)

var ErrInvalidFormat = errors.New("invalid period format, expected YYYY-MM")

// Period adalah satu bulan kalender. Semua perhitungan payroll dan costing
// dibatasi per period ini.
type Period struct {
	Year  int
	Month time.Month
}

func Parse(v string) (Period, error) {
	t, err := time.Parse("2006-01", v)
	if err != nil {
		return Period{}, ErrInvalidFormat
	}
	return Period{Year: t.Year(), Month: t.Month()}, nil
}

func FromTime(t time.Time) Period {
	return Period{Year: t.Year(), Month: t.Month()}
}

func (p Period) String() string {
	return time.Date(p.Year, p.Month, 1, 0, 0, 0, 0, time.UTC).Format("2006-01")
}

// Start adalah hari pertama bulan (00:00 UTC).
func (p Period) Start() time.Time {
	return time.Date(p.Year, p.Month, 1, 0, 0, 0, 0, time.UTC)
}

// End adalah hari terakhir bulan (00:00 UTC).
func (p Period) End() time.Time {
	return p.Start().AddDate(0, 1, -1)
}

func (p Period) Prev() Period {
	return FromTime(p.Start().AddDate(0, -1, 0))
}

func (p Period) Next() Period {
	return FromTime(p.Start().AddDate(0, 1, 0))
}

// YearStart adalah 1 Januari dari tahun period, dipakai aturan kumulatif
// per tahun kalender (mis. hari bebas cuti haid).
func (p Period) YearStart() time.Time {
	return time.Date(p.Year, time.January, 1, 0, 0, 0, 0, time.UTC)
}

// Contains memeriksa apakah tanggal t jatuh di dalam period (berdasarkan date).
func (p Period) Contains(t time.Time) bool {
	return t.Year() == p.Year && t.Month() == p.Month
}

// Overlaps memeriksa irisan rentang tanggal dengan period:
// start <= akhir bulan DAN end >= awal bulan.
func (p Period) Overlaps(start, end time.Time) bool {
	return !start.After(p.End()) && !end.Before(p.Start())
}
