package apperror

import (
	"errors"
	"net/http"
	"os"
)

// HTTPError adalah bentuk siap-kirim dari sebuah error untuk handler layer.
type HTTPError struct {
	Status  int
	Code    string
	Message string
	Details any
}

// ToHTTP memetakan error apa pun menjadi HTTPError. AppError dipetakan
// apa adanya; error lain dianggap internal. Detail error asli hanya
// diikutkan di luar mode release.
func ToHTTP(err error) HTTPError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		httpErr := HTTPError{
			Status:  appErr.HTTPStatus,
			Code:    appErr.Code,
			Message: appErr.Message,
		}
		if appErr.Err != nil && !isReleaseMode() {
			httpErr.Details = appErr.Err.Error()
		}
		return httpErr
	}

	httpErr := HTTPError{
		Status:  http.StatusInternalServerError,
		Code:    CodeInternalError,
		Message: ErrInternal.Message,
	}
	if err != nil && !isReleaseMode() {
		httpErr.Details = err.Error()
	}
	return httpErr
}

func isReleaseMode() bool {
	return os.Getenv("GIN_MODE") == "release"
}
