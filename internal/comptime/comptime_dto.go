package comptime

// OvertimeEntry adalah rincian satu entri lembur setelah konsumsi FIFO
// diterapkan. EffectiveWeighted hanya memperhitungkan jam yang belum
// "dibayar" lewat cuti kompensasi.
type OvertimeEntry struct {
	Date         string  `json:"date"`
	WorkTypeCode int     `json:"workTypeCode"`
	WorkTypeName string  `json:"workTypeName"`
	Multiplier   float64 `json:"multiplier"`

	OriginalHours      float64 `json:"originalHours"`
	CompHoursGenerated float64 `json:"compHoursGenerated"`
	CompDeducted       float64 `json:"compDeducted"`
	RemainingHours     float64 `json:"remainingHours"`
	EffectiveWeighted  float64 `json:"effectiveWeighted"`
}

type OvertimeDetails struct {
	Period  string          `json:"period"`
	Entries []OvertimeEntry `json:"entries"`

	TotalCompHoursGenerated float64 `json:"totalCompHoursGenerated"`
	TotalCompHoursUsed      float64 `json:"totalCompHoursUsed"`
	UnusedCompHours         float64 `json:"unusedCompHours"`
}
