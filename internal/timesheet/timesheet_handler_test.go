package timesheet_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Waynegg8/horgoscpa-sub000/internal/shared/period"
	"github.com/Waynegg8/horgoscpa-sub000/internal/timesheet"
	timesheeterrors "github.com/Waynegg8/horgoscpa-sub000/internal/timesheet/errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type apiEnvelope struct {
	Ok    bool            `json:"ok"`
	Data  json.RawMessage `json:"data"`
	Error *apiError       `json:"error"`
}

func decodeEnvelope(t *testing.T, body []byte) apiEnvelope {
	t.Helper()
	var env apiEnvelope
	err := json.Unmarshal(body, &env)
	assert.NoError(t, err)
	return env
}

type fakeTimesheetService struct {
	createFn       func(ctx context.Context, req timesheet.CreateTimesheetRequest) (timesheet.TimesheetResponse, error)
	updateFn       func(ctx context.Context, id string, req timesheet.UpdateTimesheetRequest) (timesheet.TimesheetResponse, error)
	batchDeleteFn  func(ctx context.Context, req timesheet.BatchDeleteRequest) (int, error)
	monthlyStatsFn func(ctx context.Context, userID string, p period.Period) (timesheet.MonthlyStats, error)
}

func (f *fakeTimesheetService) Create(ctx context.Context, req timesheet.CreateTimesheetRequest) (timesheet.TimesheetResponse, error) {
	return f.createFn(ctx, req)
}
func (f *fakeTimesheetService) Update(ctx context.Context, id string, req timesheet.UpdateTimesheetRequest) (timesheet.TimesheetResponse, error) {
	return f.updateFn(ctx, id, req)
}
func (f *fakeTimesheetService) BatchDelete(ctx context.Context, req timesheet.BatchDeleteRequest) (int, error) {
	return f.batchDeleteFn(ctx, req)
}
func (f *fakeTimesheetService) MonthlyStats(ctx context.Context, userID string, p period.Period) (timesheet.MonthlyStats, error) {
	return f.monthlyStatsFn(ctx, userID, p)
}

func TestTimesheetHandler_Create(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		userID := uuid.NewString()
		svc := &fakeTimesheetService{
			createFn: func(ctx context.Context, req timesheet.CreateTimesheetRequest) (timesheet.TimesheetResponse, error) {
				assert.Equal(t, userID, req.UserID)
				assert.Equal(t, 2, req.WorkTypeCode)
				assert.Equal(t, 2.5, req.Hours)
				return timesheet.TimesheetResponse{
					ID:           uuid.NewString(),
					UserID:       req.UserID,
					WorkDate:     req.WorkDate,
					WorkTypeCode: req.WorkTypeCode,
					Hours:        req.Hours,
				}, nil
			},
		}
		h := timesheet.NewHandler(svc)

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		body := `{"user_id":"` + userID + `","work_date":"2024-06-03","work_type_code":2,"hours":2.5}`
		c.Request = httptest.NewRequest(http.MethodPost, "/timesheets", strings.NewReader(body))
		c.Request.Header.Set("Content-Type", "application/json")

		h.Create(c)

		assert.Equal(t, http.StatusCreated, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		assert.True(t, env.Ok)

		var got timesheet.TimesheetResponse
		assert.NoError(t, json.Unmarshal(env.Data, &got))
		assert.Equal(t, userID, got.UserID)
		assert.Equal(t, 2.5, got.Hours)
	})

	t.Run("negative missing fields", func(t *testing.T) {
		h := timesheet.NewHandler(&fakeTimesheetService{})

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPost, "/timesheets", strings.NewReader(`{}`))
		c.Request.Header.Set("Content-Type", "application/json")

		h.Create(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		assert.False(t, env.Ok)
		assert.NotNil(t, env.Error)
	})

	t.Run("negative half hour step violation from service", func(t *testing.T) {
		svc := &fakeTimesheetService{
			createFn: func(ctx context.Context, req timesheet.CreateTimesheetRequest) (timesheet.TimesheetResponse, error) {
				return timesheet.TimesheetResponse{}, timesheeterrors.ErrInvalidHours
			},
		}
		h := timesheet.NewHandler(svc)

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		body := `{"user_id":"` + uuid.NewString() + `","work_date":"2024-06-03","work_type_code":2,"hours":2.3}`
		c.Request = httptest.NewRequest(http.MethodPost, "/timesheets", strings.NewReader(body))
		c.Request.Header.Set("Content-Type", "application/json")

		h.Create(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		assert.False(t, env.Ok)
		assert.NotNil(t, env.Error)
	})
}

func TestTimesheetHandler_BatchDelete(t *testing.T) {
	gin.SetMode(gin.TestMode)

	svc := &fakeTimesheetService{
		batchDeleteFn: func(ctx context.Context, req timesheet.BatchDeleteRequest) (int, error) {
			assert.Len(t, req.IDs, 2)
			return 2, nil
		},
	}
	h := timesheet.NewHandler(svc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	body := `{"ids":["` + uuid.NewString() + `","` + uuid.NewString() + `"]}`
	c.Request = httptest.NewRequest(http.MethodPost, "/timesheets/batch-delete", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	h.BatchDelete(c)

	assert.Equal(t, http.StatusOK, w.Code)
	env := decodeEnvelope(t, w.Body.Bytes())
	assert.True(t, env.Ok)
	assert.Contains(t, string(env.Data), `"deleted":2`)
}

func TestTimesheetHandler_MonthlyStats(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		svc := &fakeTimesheetService{
			monthlyStatsFn: func(ctx context.Context, userID string, p period.Period) (timesheet.MonthlyStats, error) {
				assert.Equal(t, "u1", userID)
				assert.Equal(t, "2024-06", p.String())
				return timesheet.MonthlyStats{TotalHours: 168, OvertimeHours: 8, WeightedHours: 170.7}, nil
			},
		}
		h := timesheet.NewHandler(svc)

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/employees/u1/timesheet-stats/2024-06", nil)
		c.Params = gin.Params{
			{Key: "id", Value: "u1"},
			{Key: "period", Value: "2024-06"},
		}

		h.MonthlyStats(c)

		assert.Equal(t, http.StatusOK, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		assert.True(t, env.Ok)

		var stats timesheet.MonthlyStats
		assert.NoError(t, json.Unmarshal(env.Data, &stats))
		assert.Equal(t, 170.7, stats.WeightedHours)
	})

	t.Run("negative bad period", func(t *testing.T) {
		h := timesheet.NewHandler(&fakeTimesheetService{})

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/employees/u1/timesheet-stats/202406", nil)
		c.Params = gin.Params{
			{Key: "id", Value: "u1"},
			{Key: "period", Value: "202406"},
		}

		h.MonthlyStats(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		assert.False(t, env.Ok)
		assert.Equal(t, "INVALID_INPUT", env.Error.Code)
	})
}
