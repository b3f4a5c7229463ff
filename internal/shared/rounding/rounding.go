// Package rounding memusatkan titik pembulatan yang dipakai mesin kalkulasi.
// Pembulatan hanya dilakukan di batas output yang sudah ditentukan, tidak
// pernah di tengah kalkulasi: jam mentah 1 desimal, jam tertimbang/komp 2
// desimal, nilai uang selalu integer sen.
package rounding

import "math"

// Hours1 membulatkan jam ke 1 desimal, half away from zero.
func Hours1(v float64) float64 {
	return math.Round(v*10) / 10
}

// Hours2 membulatkan jam ke 2 desimal, half away from zero.
func Hours2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Cents membulatkan nilai uang ke integer sen.
func Cents(v float64) int64 {
	return int64(math.Round(v))
}

// FloorCents memotong ke bawah; dipakai komponen potongan cuti yang
// di-floor per komponen sebelum dijumlah.
func FloorCents(v float64) int64 {
	return int64(math.Floor(v))
}
