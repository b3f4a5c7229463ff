// Package worktype adalah tabel statis kode jenis kerja. Satu katalog
// bertag context menggantikan dua tabel lepas yang dulunya diduplikasi:
// context Detailed (12 kode, payroll umum) dan Costing (11 kode, laporan
// biaya karyawan). Kode 10-11 memang berbeda multiplier antar context dan
// kode 12 hanya ada di Detailed.
package worktype

// Special menandai aturan akrual khusus sebuah kode.
const SpecialFixed8h = "fixed_8h"

type Type struct {
	Code       int
	Name       string
	Multiplier float64
	Overtime   bool
	Special    string
}

// Context memilih varian katalog; tagged enum, bukan dua object literal lepas.
type Context int

const (
	Detailed Context = iota // payroll per karyawan (12 kode)
	Costing                 // laporan biaya per karyawan (11 kode)
)

type Catalog struct {
	context Context
	types   map[int]Type
}

// IsFixed8h melaporkan apakah kode ini dikreditkan tepat 8 jam per tanggal,
// berapa pun jam yang dicatat (hari libur nasional / hari istirahat wajib).
func (t Type) IsFixed8h() bool {
	return t.Special == SpecialFixed8h
}

var base = []Type{
	{Code: 1, Name: "正常工時", Multiplier: 1.0},
	{Code: 2, Name: "前2h平日加班", Multiplier: 1.34, Overtime: true},
	{Code: 3, Name: "後2h平日加班", Multiplier: 1.67, Overtime: true},
	{Code: 4, Name: "休息日前2h加班", Multiplier: 1.34, Overtime: true},
	{Code: 5, Name: "休息日2-8h加班", Multiplier: 1.67, Overtime: true},
	{Code: 6, Name: "休息日8-12h加班", Multiplier: 2.67, Overtime: true},
	{Code: 7, Name: "國定假日出勤8h內", Multiplier: 1.0, Overtime: true, Special: SpecialFixed8h},
	{Code: 8, Name: "國定假日加班", Multiplier: 1.34, Overtime: true},
	{Code: 9, Name: "例假日出勤8h內", Multiplier: 1.0, Overtime: true, Special: SpecialFixed8h},
}

// Kode 10-12 adalah titik drift historis antara kedua tabel; nilai per
// context dipertahankan apa adanya.
var detailedTail = []Type{
	{Code: 10, Name: "天災出勤", Multiplier: 2.0, Overtime: true},
	{Code: 11, Name: "特殊專案加班", Multiplier: 2.67, Overtime: true},
	{Code: 12, Name: "補休出勤", Multiplier: 1.0},
}

var costingTail = []Type{
	{Code: 10, Name: "天災出勤", Multiplier: 1.67, Overtime: true},
	{Code: 11, Name: "特殊專案加班", Multiplier: 2.0, Overtime: true},
}

var catalogs = map[Context]*Catalog{
	Detailed: build(Detailed, base, detailedTail),
	Costing:  build(Costing, base, costingTail),
}

func build(c Context, groups ...[]Type) *Catalog {
	types := make(map[int]Type)
	for _, group := range groups {
		for _, t := range group {
			types[t.Code] = t
		}
	}
	return &Catalog{context: c, types: types}
}

// ForContext mengembalikan katalog untuk context yang diminta.
func ForContext(c Context) *Catalog {
	return catalogs[c]
}

// Lookup mencari jenis kerja berdasarkan kode. Caller menentukan sendiri
// perlakuan kode tak dikenal: agregasi bulanan memakai LookupOrNormal,
// payroll detail melewatkan baris yang tidak ditemukan.
func (c *Catalog) Lookup(code int) (Type, bool) {
	t, ok := c.types[code]
	return t, ok
}

// LookupOrNormal memperlakukan kode tak dikenal sebagai kerja normal
// multiplier 1 (konvensi ringkasan bulanan).
func (c *Catalog) LookupOrNormal(code int) Type {
	if t, ok := c.types[code]; ok {
		return t
	}
	return Type{Code: 1, Name: "正常工時", Multiplier: 1.0}
}

func (c *Catalog) Context() Context {
	return c.context
}

// Codes mengembalikan semua kode terdaftar (untuk validasi input timesheet).
func (c *Catalog) Codes() []int {
	codes := make([]int, 0, len(c.types))
	for code := range c.types {
		codes = append(codes, code)
	}
	return codes
}
