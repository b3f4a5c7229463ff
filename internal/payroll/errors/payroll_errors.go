package payrollerrors

import (
	"net/http"

	"github.com/Waynegg8/horgoscpa-sub000/internal/shared/apperror"
)

var (
	ErrInvalidPeriod = apperror.New(
		apperror.CodeInvalidInput,
		"invalid period, expected YYYY-MM",
		http.StatusBadRequest,
	)
	ErrSnapshotNotFound = apperror.New(
		apperror.CodeNotFound,
		"payroll snapshot not found",
		http.StatusNotFound,
	)
	// Dua finalize untuk bulan yang sama boleh balapan; constraint unik
	// (month, version) menolak yang kalah.
	ErrSnapshotVersionConflict = apperror.New(
		apperror.CodeConflict,
		"payroll snapshot version conflict, retry finalize",
		http.StatusConflict,
	)
)
