package bootstrap

import "context"

type AuditLog struct {
	Action  string
	Message string
	Meta    map[string]any
}

// AuditLogger records server-level operational events (startup,
// shutdown). Domain audit trails such as payroll finalization go
// through snapshots and outbox events instead.
type AuditLogger interface {
	Log(ctx context.Context, entry AuditLog)
}
