package events

import "time"

const PayrollFinalizedTopic = "payroll.finalized"

// PayrollFinalizedEvent dipublikasikan lewat outbox pada commit yang sama
// dengan baris snapshot, lalu dikirim worker ke Kafka.
type PayrollFinalizedEvent struct {
	EventType     string    `json:"event_type"`
	RequestID     string    `json:"request_id"`
	SnapshotID    int64     `json:"snapshot_id"`
	Period        string    `json:"period"`
	Version       int       `json:"version"`
	EmployeeCount int       `json:"employee_count"`
	TotalNetCents int64     `json:"total_net_cents"`
	CreatedBy     string    `json:"created_by"`
	OccurredAt    time.Time `json:"occurred_at"`
}
