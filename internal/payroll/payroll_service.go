package payroll

import (
	"context"
	"encoding/json"
	"time"

	"github.com/Waynegg8/horgoscpa-sub000/internal/employee"
	"github.com/Waynegg8/horgoscpa-sub000/internal/events"
	"github.com/Waynegg8/horgoscpa-sub000/internal/messaging/kafka"
	payrollerrors "github.com/Waynegg8/horgoscpa-sub000/internal/payroll/errors"
	"github.com/Waynegg8/horgoscpa-sub000/internal/settings"
	"github.com/Waynegg8/horgoscpa-sub000/internal/shared/contextutil"
	"github.com/Waynegg8/horgoscpa-sub000/internal/shared/period"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=payroll_service.go -destination=mock/payroll_service_mock.go -package=mock
type Service interface {
	// Preview menghitung seluruh karyawan aktif tanpa menulis apa pun.
	Preview(ctx context.Context, p period.Period) (PayrollRun, error)

	// Finalize menghitung ulang seluruh karyawan lalu menulis versi
	// snapshot baru (append-only) beserta event outbox-nya.
	Finalize(ctx context.Context, p period.Period, createdBy, notes string) (FinalizeResponse, error)

	ListSnapshots(ctx context.Context, p period.Period) ([]SnapshotResponse, error)
	GetSnapshot(ctx context.Context, id int64) (SnapshotResponse, []EmployeePayroll, error)
}

type service struct {
	db        *gorm.DB
	employees employee.Repository
	calc      Calculator
	config    settings.Service
	snapshots SnapshotRepository
	outbox    kafka.OutboxRepository
	logger    *zap.Logger
}

func NewService(
	db *gorm.DB,
	employees employee.Repository,
	calc Calculator,
	config settings.Service,
	snapshots SnapshotRepository,
	outbox kafka.OutboxRepository,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("payroll.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("payroll.service")
	}
	return &service{
		db:        db,
		employees: employees,
		calc:      calc,
		config:    config,
		snapshots: snapshots,
		outbox:    outbox,
		logger:    l,
	}
}

// computeRun menghitung payroll seluruh karyawan aktif. Kegagalan satu
// karyawan dicatat dan karyawan itu dilewati; batch tetap sukses.
func (s *service) computeRun(ctx context.Context, p period.Period) (PayrollRun, error) {
	cfg, err := s.config.LoadPayrollConfig(ctx)
	if err != nil {
		return PayrollRun{}, err
	}

	empls, err := s.employees.FindActive(ctx)
	if err != nil {
		return PayrollRun{}, err
	}

	run := PayrollRun{Period: p.String()}
	for _, empl := range empls {
		result, err := s.calc.CalculateEmployee(ctx, empl.ID.String(), p, cfg)
		if err != nil {
			s.logger.Error("employee payroll failed, skipped",
				zap.String("user_id", empl.ID.String()),
				zap.String("period", p.String()),
				zap.Error(err),
			)
			run.SkippedUserIDs = append(run.SkippedUserIDs, empl.ID.String())
			continue
		}
		if result == nil {
			continue
		}
		run.Employees = append(run.Employees, *result)
		run.TotalGrossCents += result.GrossSalaryCents
		run.TotalNetCents += result.NetSalaryCents
	}

	return run, nil
}

func (s *service) Preview(ctx context.Context, p period.Period) (PayrollRun, error) {
	return s.computeRun(ctx, p)
}

func (s *service) Finalize(ctx context.Context, p period.Period, createdBy, notes string) (FinalizeResponse, error) {
	run, err := s.computeRun(ctx, p)
	if err != nil {
		return FinalizeResponse{}, err
	}

	latest, err := s.snapshots.FindLatestByMonth(ctx, p.String())
	if err != nil {
		return FinalizeResponse{}, err
	}

	version := 1
	var changes *ChangesSummary
	if latest != nil {
		version = latest.Version + 1

		var prev []EmployeePayroll
		if err := json.Unmarshal(latest.SnapshotData, &prev); err != nil {
			// Data versi lama yang rusak tidak menggagalkan finalize;
			// diff saja yang dikosongkan.
			s.logger.Warn("previous snapshot data unreadable, diff skipped",
				zap.String("period", p.String()),
				zap.Int("previous_version", latest.Version),
				zap.Error(err),
			)
		} else {
			changes = DiffRuns(prev, run.Employees)
		}
	}

	data, err := json.Marshal(run.Employees)
	if err != nil {
		return FinalizeResponse{}, err
	}

	snapshot := &Snapshot{
		Month:        p.String(),
		Version:      version,
		CreatedBy:    createdBy,
		Notes:        notes,
		SnapshotData: data,
	}
	if changes != nil {
		snapshot.ChangesSummary, err = json.Marshal(changes)
		if err != nil {
			return FinalizeResponse{}, err
		}
	}

	rid := contextutil.GetRequestID(ctx)
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.snapshots.WithTx(tx).Create(ctx, snapshot); err != nil {
			return mapRepositoryError(err)
		}

		if s.outbox == nil {
			return nil
		}

		event := events.PayrollFinalizedEvent{
			EventType:     "payroll_finalized",
			RequestID:     rid,
			SnapshotID:    snapshot.ID,
			Period:        p.String(),
			Version:       version,
			EmployeeCount: len(run.Employees),
			TotalNetCents: run.TotalNetCents,
			CreatedBy:     createdBy,
			OccurredAt:    time.Now().UTC(),
		}
		payload, err := json.Marshal(event)
		if err != nil {
			return err
		}

		return s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
			ID:            uuid.NewString(),
			RequestID:     rid,
			AggregateType: "payroll_snapshot",
			AggregateID:   p.String(),
			EventType:     event.EventType,
			Topic:         events.PayrollFinalizedTopic,
			Payload:       payload,
			Status:        kafka.OutboxStatusPending,
		})
	})
	if err != nil {
		s.logger.Error("finalize payroll failed",
			zap.String("period", p.String()),
			zap.Int("version", version),
			zap.Error(err),
		)
		return FinalizeResponse{}, err
	}

	s.logger.Info("payroll finalized",
		zap.String("period", p.String()),
		zap.Int("version", version),
		zap.Int("employees", len(run.Employees)),
		zap.Int64("total_net_cents", run.TotalNetCents),
	)

	return FinalizeResponse{
		SnapshotID: snapshot.ID,
		Period:     p.String(),
		Version:    version,
		Changes:    changes,
	}, nil
}

func (s *service) ListSnapshots(ctx context.Context, p period.Period) ([]SnapshotResponse, error) {
	rows, err := s.snapshots.FindByMonth(ctx, p.String())
	if err != nil {
		return nil, err
	}

	resp := make([]SnapshotResponse, 0, len(rows))
	for _, row := range rows {
		resp = append(resp, s.toSnapshotResponse(row))
	}
	return resp, nil
}

func (s *service) GetSnapshot(ctx context.Context, id int64) (SnapshotResponse, []EmployeePayroll, error) {
	row, err := s.snapshots.FindByID(ctx, id)
	if err != nil {
		return SnapshotResponse{}, nil, err
	}
	if row == nil {
		return SnapshotResponse{}, nil, payrollerrors.ErrSnapshotNotFound
	}

	var employees []EmployeePayroll
	if err := json.Unmarshal(row.SnapshotData, &employees); err != nil {
		s.logger.Warn("snapshot data unreadable",
			zap.Int64("snapshot_id", row.ID),
			zap.Error(err),
		)
		employees = nil
	}

	return s.toSnapshotResponse(*row), employees, nil
}

func (s *service) toSnapshotResponse(row Snapshot) SnapshotResponse {
	resp := SnapshotResponse{
		ID:        row.ID,
		Period:    row.Month,
		Version:   row.Version,
		CreatedBy: row.CreatedBy,
		Notes:     row.Notes,
		CreatedAt: row.CreatedAt.UTC().Format(time.RFC3339),
	}
	if len(row.ChangesSummary) > 0 {
		var changes ChangesSummary
		if err := json.Unmarshal(row.ChangesSummary, &changes); err != nil {
			s.logger.Warn("snapshot changes summary unreadable",
				zap.Int64("snapshot_id", row.ID),
				zap.Error(err),
			)
		} else {
			resp.Changes = &changes
		}
	}
	return resp
}
