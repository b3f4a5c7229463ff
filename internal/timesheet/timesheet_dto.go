package timesheet

type CreateTimesheetRequest struct {
	UserID       string  `json:"user_id" binding:"required,uuid"`
	WorkDate     string  `json:"work_date" binding:"required"`
	WorkTypeCode int     `json:"work_type_code" binding:"required,min=1"`
	Hours        float64 `json:"hours" binding:"required,gt=0"`
	ClientID     *string `json:"client_id"`
	ServiceCode  *string `json:"service_code"`
}

type UpdateTimesheetRequest struct {
	WorkDate     string  `json:"work_date" binding:"required"`
	WorkTypeCode int     `json:"work_type_code" binding:"required,min=1"`
	Hours        float64 `json:"hours" binding:"required,gt=0"`
	ClientID     *string `json:"client_id"`
	ServiceCode  *string `json:"service_code"`
}

type BatchDeleteRequest struct {
	IDs []string `json:"ids" binding:"required,min=1,dive,uuid"`
}

type TimesheetResponse struct {
	ID           string  `json:"id"`
	UserID       string  `json:"userId"`
	WorkDate     string  `json:"workDate"`
	WorkTypeCode int     `json:"workTypeCode"`
	Hours        float64 `json:"hours"`
	ClientID     *string `json:"clientId,omitempty"`
	ServiceCode  *string `json:"serviceCode,omitempty"`
}

// MonthlyStats adalah agregat bulanan satu user. Ketiga angka dibulatkan
// ke 1 desimal di batas output.
type MonthlyStats struct {
	TotalHours    float64 `json:"totalHours"`
	OvertimeHours float64 `json:"overtimeHours"`
	WeightedHours float64 `json:"weightedHours"`
}
