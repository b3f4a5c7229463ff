package comptime

import (
	"sort"
	"strconv"
	"time"

	"github.com/Waynegg8/horgoscpa-sub000/internal/shared/rounding"
	"github.com/Waynegg8/horgoscpa-sub000/internal/timesheet"
	"github.com/Waynegg8/horgoscpa-sub000/internal/worktype"
)

// Grant adalah jam kompensasi yang dihasilkan satu entri lembur. Bukan
// tabel tersendiri: antrean diturunkan ulang per bulan dari timesheet
// bulan itu, lalu dikonsumsi FIFO urut tanggal.
type Grant struct {
	Date         time.Time
	WorkTypeCode int
	WorkTypeName string
	Multiplier   float64

	OriginalHours float64
	Generated     float64
	Deducted      float64
	Remaining     float64
}

type GrantQueue struct {
	grants []Grant
}

// BuildGrantQueue menyaring entri lembur dan menghitung jam kompensasi
// per entri. Kode fixed_8h dikreditkan total 8 jam per (tanggal, kode),
// dibagi proporsional antar entri yang berbagi pasangan itu.
func BuildGrantQueue(entries []timesheet.Timesheet, catalog *worktype.Catalog) *GrantQueue {
	// Total jam per (tanggal, kode) untuk pembagian proporsional fixed_8h.
	totals := make(map[string]float64)
	for _, e := range entries {
		t := catalog.LookupOrNormal(e.WorkTypeCode)
		if t.IsFixed8h() {
			totals[fixed8hKey(e.WorkDate, e.WorkTypeCode)] += e.Hours
		}
	}

	q := &GrantQueue{}
	for _, e := range entries {
		t := catalog.LookupOrNormal(e.WorkTypeCode)
		if !t.Overtime {
			continue
		}

		generated := e.Hours
		if t.IsFixed8h() {
			total := totals[fixed8hKey(e.WorkDate, e.WorkTypeCode)]
			if total <= 0 {
				generated = 0
			} else {
				generated = rounding.Hours2(8 * e.Hours / total)
			}
		}

		q.grants = append(q.grants, Grant{
			Date:          e.WorkDate,
			WorkTypeCode:  e.WorkTypeCode,
			WorkTypeName:  t.Name,
			Multiplier:    t.Multiplier,
			OriginalHours: e.Hours,
			Generated:     generated,
			Remaining:     generated,
		})
	}

	sort.SliceStable(q.grants, func(i, j int) bool {
		return q.grants[i].Date.Before(q.grants[j].Date)
	})
	return q
}

func fixed8hKey(date time.Time, code int) string {
	return date.Format("2006-01-02") + "|" + strconv.Itoa(code)
}

// Consume memotong `hours` dari antrean urut tanggal (grant tertua lebih
// dulu) dan mengembalikan sisa permintaan yang tidak terpenuhi.
func (q *GrantQueue) Consume(hours float64) float64 {
	for i := range q.grants {
		if hours <= 0 {
			break
		}
		g := &q.grants[i]
		take := g.Remaining
		if take > hours {
			take = hours
		}
		g.Deducted += take
		g.Remaining -= take
		hours -= take
	}
	if hours < 0 {
		hours = 0
	}
	return hours
}

// TotalGenerated menjumlahkan seluruh jam kompensasi yang dihasilkan.
func (q *GrantQueue) TotalGenerated() float64 {
	var total float64
	for _, g := range q.grants {
		total += g.Generated
	}
	return total
}

// TotalRemaining menjumlahkan jam yang belum terkonsumsi cuti kompensasi.
func (q *GrantQueue) TotalRemaining() float64 {
	var total float64
	for _, g := range q.grants {
		total += g.Remaining
	}
	return total
}

func (q *GrantQueue) Grants() []Grant {
	return q.grants
}

// CashOut mengonversi jam tersisa menjadi sen, front-to-back, paling
// banyak `unusedHours`, per jam dikali hourlyRate x multiplier grant
// asalnya. Dipanggil SETELAH Consume agar tidak double-subtract.
func (q *GrantQueue) CashOut(unusedHours float64, hourlyRateCents int64) int64 {
	var total int64
	for _, g := range q.grants {
		if unusedHours <= 0 {
			break
		}
		take := g.Remaining
		if take > unusedHours {
			take = unusedHours
		}
		if take <= 0 {
			continue
		}
		total += rounding.Cents(take * float64(hourlyRateCents) * g.Multiplier)
		unusedHours -= take
	}
	return total
}
