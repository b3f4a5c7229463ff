package payroll

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	payrollerrors "github.com/Waynegg8/horgoscpa-sub000/internal/payroll/errors"
	"github.com/Waynegg8/horgoscpa-sub000/internal/settings"
	"github.com/Waynegg8/horgoscpa-sub000/internal/shared/apperror"
	"github.com/Waynegg8/horgoscpa-sub000/internal/shared/contextutil"
	"github.com/Waynegg8/horgoscpa-sub000/internal/shared/period"
	"github.com/Waynegg8/horgoscpa-sub000/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

type Handler struct {
	service Service
	calc    Calculator
	config  settings.Service
	rdb     *redis.Client
}

func NewHandler(service Service, calc Calculator, config settings.Service) *Handler {
	return &Handler{service: service, calc: calc, config: config}
}

func NewHandlerWithRedis(service Service, calc Calculator, config settings.Service, rdb *redis.Client) *Handler {
	return &Handler{service: service, calc: calc, config: config, rdb: rdb}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) Preview(c *gin.Context) {
	p, err := period.Parse(c.Param("period"))
	if err != nil {
		h.writeServiceError(c, payrollerrors.ErrInvalidPeriod)
		return
	}

	run, err := h.service.Preview(c.Request.Context(), p)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, run, nil)
}

func (h *Handler) Finalize(c *gin.Context) {
	lockKey, _ := c.Get("idempotency_lock_key")
	cacheKey, _ := c.Get("idempotency_cache_key")

	if h.rdb != nil {
		if lk, ok := lockKey.(string); ok && lk != "" {
			defer h.rdb.Del(c.Request.Context(), lk)
		}
	}

	p, err := period.Parse(c.Param("period"))
	if err != nil {
		h.writeServiceError(c, payrollerrors.ErrInvalidPeriod)
		return
	}

	var req FinalizeRequest
	if err := c.ShouldBindJSON(&req); err != nil && c.Request.ContentLength > 0 {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	createdBy := contextutil.GetUserID(c.Request.Context())
	resp, err := h.service.Finalize(c.Request.Context(), p, createdBy, req.Notes)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	if h.rdb != nil {
		if ck, ok := cacheKey.(string); ok && ck != "" {
			if payload, marshalErr := json.Marshal(resp); marshalErr == nil {
				_ = h.rdb.Set(c.Request.Context(), ck, payload, 24*time.Hour).Err()
			}
		}
	}

	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) ListSnapshots(c *gin.Context) {
	p, err := period.Parse(c.Param("period"))
	if err != nil {
		h.writeServiceError(c, payrollerrors.ErrInvalidPeriod)
		return
	}

	snapshots, err := h.service.ListSnapshots(c.Request.Context(), p)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, snapshots, nil)
}

// EmployeePayroll menghitung slip satu karyawan on-the-fly (tidak
// membaca snapshot). Karyawan yang tidak ada mengembalikan 404.
func (h *Handler) EmployeePayroll(c *gin.Context) {
	p, err := period.Parse(c.Param("period"))
	if err != nil {
		h.writeServiceError(c, payrollerrors.ErrInvalidPeriod)
		return
	}

	cfg, err := h.config.LoadPayrollConfig(c.Request.Context())
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	result, err := h.calc.CalculateEmployee(c.Request.Context(), c.Param("id"), p, cfg)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	if result == nil {
		response.Error(c, http.StatusNotFound, apperror.CodeNotFound, "employee not found", nil)
		return
	}

	response.Success(c, http.StatusOK, result, nil)
}

func (h *Handler) GetSnapshot(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("snapshotId"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, apperror.CodeInvalidInput, "invalid snapshot id", nil)
		return
	}

	meta, employees, err := h.service.GetSnapshot(c.Request.Context(), id)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"snapshot":  meta,
		"employees": employees,
	}, nil)
}
