package payroll

import (
	"errors"
	"strings"

	payrollerrors "github.com/Waynegg8/horgoscpa-sub000/internal/payroll/errors"

	"github.com/jackc/pgx/v5/pgconn"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == "23505" && pgErr.ConstraintName == "uq_payroll_snapshot_month_version" {
			return payrollerrors.ErrSnapshotVersionConflict
		}
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, "uq_payroll_snapshot_month_version") {
		return payrollerrors.ErrSnapshotVersionConflict
	}

	return err
}
