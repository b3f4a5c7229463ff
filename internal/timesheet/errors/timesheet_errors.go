package timesheeterrors

import (
	"net/http"

	"github.com/Waynegg8/horgoscpa-sub000/internal/shared/apperror"
)

var (
	ErrInvalidUserID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid user id",
		http.StatusBadRequest,
	)
	ErrInvalidClientID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid client id",
		http.StatusBadRequest,
	)
	ErrInvalidDateFormat = apperror.New(
		apperror.CodeInvalidInput,
		"invalid date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrInvalidHours = apperror.New(
		apperror.CodeInvalidInput,
		"hours must be positive in 0.5 increments",
		http.StatusBadRequest,
	)
	ErrUnknownWorkType = apperror.New(
		apperror.CodeInvalidInput,
		"unknown work type code",
		http.StatusBadRequest,
	)
	ErrTimesheetNotFound = apperror.New(
		apperror.CodeNotFound,
		"timesheet not found",
		http.StatusNotFound,
	)
)
