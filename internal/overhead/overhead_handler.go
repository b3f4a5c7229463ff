package overhead

import (
	"net/http"

	"github.com/Waynegg8/horgoscpa-sub000/internal/shared/apperror"
	"github.com/Waynegg8/horgoscpa-sub000/internal/shared/period"
	"github.com/Waynegg8/horgoscpa-sub000/internal/shared/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) EmployeeCostRates(c *gin.Context) {
	p, err := period.Parse(c.Param("period"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, apperror.CodeInvalidInput, err.Error(), nil)
		return
	}

	report, err := h.service.EmployeeCostRates(c.Request.Context(), p)
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
		return
	}

	response.Success(c, http.StatusOK, report, nil)
}
