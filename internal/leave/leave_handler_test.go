package leave_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-leave/internal/leave"
	leaveerrors "go-leave/internal/leave/errors"

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

type fakeLeaveService struct {
	createFn       func(ctx context.Context, actorID string, req leave.CreateLeaveRequest) (leave.LeaveResponse, error)
	getAllFn       func(ctx context.Context) ([]leave.LeaveResponse, error)
	getByIDFn      func(ctx context.Context, id string) (leave.LeaveResponse, error)
	getMineFn      func(ctx context.Context, actorID string) ([]leave.LeaveResponse, error)
	pendingDeptFn  func(ctx context.Context, managerID string) ([]leave.LeaveResponse, error)
	pendingHRFn    func(ctx context.Context, actorID string) ([]leave.LeaveResponse, error)
	updateStatusFn func(ctx context.Context, actorID, id string, req leave.UpdateLeaveStatusRequest, isHrManager bool) (leave.LeaveResponse, error)
	cancelFn       func(ctx context.Context, actorID, id string) (leave.LeaveResponse, error)
	deleteFn       func(ctx context.Context, id string) error
}

func (f *fakeLeaveService) Create(ctx context.Context, actorID string, req leave.CreateLeaveRequest) (leave.LeaveResponse, error) {
	return f.createFn(ctx, actorID, req)
}
func (f *fakeLeaveService) GetAll(ctx context.Context) ([]leave.LeaveResponse, error) {
	return f.getAllFn(ctx)
}
func (f *fakeLeaveService) GetByID(ctx context.Context, id string) (leave.LeaveResponse, error) {
	return f.getByIDFn(ctx, id)
}
func (f *fakeLeaveService) GetMine(ctx context.Context, actorID string) ([]leave.LeaveResponse, error) {
	return f.getMineFn(ctx, actorID)
}
func (f *fakeLeaveService) GetPendingForDepartmentManager(ctx context.Context, managerID string) ([]leave.LeaveResponse, error) {
	return f.pendingDeptFn(ctx, managerID)
}
func (f *fakeLeaveService) GetPendingForHrManager(ctx context.Context, actorID string) ([]leave.LeaveResponse, error) {
	return f.pendingHRFn(ctx, actorID)
}
func (f *fakeLeaveService) UpdateStatus(ctx context.Context, actorID, id string, req leave.UpdateLeaveStatusRequest, isHrManager bool) (leave.LeaveResponse, error) {
	return f.updateStatusFn(ctx, actorID, id, req, isHrManager)
}
func (f *fakeLeaveService) Cancel(ctx context.Context, actorID, id string) (leave.LeaveResponse, error) {
	return f.cancelFn(ctx, actorID, id)
}
func (f *fakeLeaveService) Delete(ctx context.Context, id string) error {
	return f.deleteFn(ctx, id)
}

func TestLeaveHandler_Create(t *testing.T) {
	t.Run("success uses user_id_validated fallback", func(t *testing.T) {
		actorID := uuid.New().String()
		leaveTypeID := uuid.New().String()

		svc := &fakeLeaveService{
			createFn: func(ctx context.Context, aid string, req leave.CreateLeaveRequest) (leave.LeaveResponse, error) {
				assert.Equal(t, actorID, aid)
				assert.Equal(t, leaveTypeID, req.LeaveTypeID)
				return leave.LeaveResponse{
					ID:          uuid.New().String(),
					EmployeeID:  aid,
					LeaveTypeID: req.LeaveTypeID,
					StartDate:   req.StartDate,
					EndDate:     req.EndDate,
					TotalDays:   2,
					Reason:      req.Reason,
					Status:      leave.StatusPending,
				}, nil
			},
		}

		h := leave.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		body := `{"leave_type_id":"` + leaveTypeID + `","start_date":"2026-03-10","end_date":"2026-03-11","reason":"Family matters"}`
		c.Request = httptest.NewRequest(http.MethodPost, "/leave-requests", strings.NewReader(body))
		c.Request.Header.Set("Content-Type", "application/json")
		c.Set("user_id_validated", actorID)

		h.Create(c)

		assert.Equal(t, http.StatusCreated, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		assert.True(t, env.Ok)
		var got leave.LeaveResponse
		err := json.Unmarshal(env.Data, &got)
		assert.NoError(t, err)
		assert.Equal(t, actorID, got.EmployeeID)
		assert.Equal(t, 2, got.TotalDays)
		assert.Equal(t, leave.StatusPending, got.Status)
	})

	t.Run("negative validation error", func(t *testing.T) {
		h := leave.NewHandler(&fakeLeaveService{})
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPost, "/leave-requests", strings.NewReader(`{}`))
		c.Request.Header.Set("Content-Type", "application/json")

		h.Create(c)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		assert.False(t, env.Ok)
		assert.NotNil(t, env.Error)
		assert.Equal(t, "VALIDATION_ERROR", env.Error.Code)
	})

	t.Run("negative service error", func(t *testing.T) {
		svc := &fakeLeaveService{
			createFn: func(ctx context.Context, actorID string, req leave.CreateLeaveRequest) (leave.LeaveResponse, error) {
				return leave.LeaveResponse{}, errors.New("create failed")
			},
		}
		h := leave.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		body := `{"leave_type_id":"` + uuid.New().String() + `","start_date":"2026-03-10","end_date":"2026-03-11"}`
		c.Request = httptest.NewRequest(http.MethodPost, "/leave-requests", strings.NewReader(body))
		c.Request.Header.Set("Content-Type", "application/json")
		c.Set("employee_id", uuid.New().String())

		h.Create(c)
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		assert.False(t, env.Ok)
		assert.NotNil(t, env.Error)
		assert.Equal(t, "INTERNAL_ERROR", env.Error.Code)
		assert.Equal(t, "Internal server error", env.Error.Message)
	})

	t.Run("negative insufficient balance is a business rule violation", func(t *testing.T) {
		svc := &fakeLeaveService{
			createFn: func(ctx context.Context, actorID string, req leave.CreateLeaveRequest) (leave.LeaveResponse, error) {
				return leave.LeaveResponse{}, leaveerrors.ErrInsufficientBalance.WithDetails(map[string]any{"remaining_days": 1})
			},
		}
		h := leave.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		body := `{"leave_type_id":"` + uuid.New().String() + `","start_date":"2026-03-10","end_date":"2026-03-11"}`
		c.Request = httptest.NewRequest(http.MethodPost, "/leave-requests", strings.NewReader(body))
		c.Request.Header.Set("Content-Type", "application/json")
		c.Set("employee_id", uuid.New().String())

		h.Create(c)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		assert.False(t, env.Ok)
		assert.Equal(t, "BUSINESS_RULE_VIOLATION", env.Error.Code)
	})
}

func TestLeaveHandler_GetAll(t *testing.T) {
	t.Run("success paginates", func(t *testing.T) {
		svc := &fakeLeaveService{
			getAllFn: func(ctx context.Context) ([]leave.LeaveResponse, error) {
				return []leave.LeaveResponse{
					{ID: uuid.New().String(), LeaveTypeCode: "SICK", Status: leave.StatusPending},
					{ID: uuid.New().String(), LeaveTypeCode: "ANNUAL", Status: leave.StatusCancelled},
					{ID: uuid.New().String(), LeaveTypeCode: "ANNUAL", Status: leave.StatusPending},
				}, nil
			},
		}

		h := leave.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/leave-requests?page=2&page_size=2", nil)

		h.GetAll(c)

		assert.Equal(t, http.StatusOK, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		assert.True(t, env.Ok)
		var got []leave.LeaveResponse
		err := json.Unmarshal(env.Data, &got)
		assert.NoError(t, err)
		assert.Len(t, got, 1)
		assert.Equal(t, "ANNUAL", got[0].LeaveTypeCode)
	})

	t.Run("negative service error", func(t *testing.T) {
		svc := &fakeLeaveService{
			getAllFn: func(ctx context.Context) ([]leave.LeaveResponse, error) {
				return nil, errors.New("db error")
			},
		}
		h := leave.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/leave-requests", nil)

		h.GetAll(c)
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		assert.False(t, env.Ok)
		assert.Equal(t, "INTERNAL_ERROR", env.Error.Code)
	})
}

func TestLeaveHandler_GetByID(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		leaveID := uuid.New().String()
		svc := &fakeLeaveService{
			getByIDFn: func(ctx context.Context, id string) (leave.LeaveResponse, error) {
				assert.Equal(t, leaveID, id)
				return leave.LeaveResponse{ID: id, LeaveTypeCode: "ANNUAL"}, nil
			},
		}
		h := leave.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/leave-requests/"+leaveID, nil)
		c.Params = []gin.Param{{Key: "id", Value: leaveID}}

		h.GetById(c)

		assert.Equal(t, http.StatusOK, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		assert.True(t, env.Ok)
		var got leave.LeaveResponse
		err := json.Unmarshal(env.Data, &got)
		assert.NoError(t, err)
		assert.Equal(t, leaveID, got.ID)
	})

	t.Run("negative not found", func(t *testing.T) {
		svc := &fakeLeaveService{
			getByIDFn: func(ctx context.Context, id string) (leave.LeaveResponse, error) {
				return leave.LeaveResponse{}, leaveerrors.ErrLeaveNotFound
			},
		}
		h := leave.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		id := uuid.New().String()
		c.Request = httptest.NewRequest(http.MethodGet, "/leave-requests/"+id, nil)
		c.Params = []gin.Param{{Key: "id", Value: id}}

		h.GetById(c)
		assert.Equal(t, http.StatusNotFound, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		assert.Equal(t, "NOT_FOUND", env.Error.Code)
	})
}

func TestLeaveHandler_UpdateStatus(t *testing.T) {
	t.Run("success passes the hr stage flag", func(t *testing.T) {
		actorID := uuid.New().String()
		leaveID := uuid.New().String()

		svc := &fakeLeaveService{
			updateStatusFn: func(ctx context.Context, aid, id string, req leave.UpdateLeaveStatusRequest, isHrManager bool) (leave.LeaveResponse, error) {
				assert.Equal(t, actorID, aid)
				assert.Equal(t, leaveID, id)
				assert.True(t, isHrManager)
				assert.Equal(t, "looks fine", req.Comments)
				return leave.LeaveResponse{ID: id, Status: req.Status}, nil
			},
		}

		h := leave.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		body := `{"status":"APPROVED_BY_HR_MANAGER","comments":"looks fine","is_hr_manager":true}`
		c.Request = httptest.NewRequest(http.MethodPut, "/leave-requests/"+leaveID+"/status", strings.NewReader(body))
		c.Request.Header.Set("Content-Type", "application/json")
		c.Params = []gin.Param{{Key: "id", Value: leaveID}}
		c.Set("employee_id", actorID)

		h.UpdateStatus(c)

		assert.Equal(t, http.StatusOK, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		assert.True(t, env.Ok)
		var got leave.LeaveResponse
		err := json.Unmarshal(env.Data, &got)
		assert.NoError(t, err)
		assert.Equal(t, leave.StatusApprovedByHRManager, got.Status)
	})

	t.Run("negative unknown status", func(t *testing.T) {
		h := leave.NewHandler(&fakeLeaveService{})
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPut, "/leave-requests/123/status", strings.NewReader(`{"status":"CANCELLED"}`))
		c.Request.Header.Set("Content-Type", "application/json")
		c.Params = []gin.Param{{Key: "id", Value: "123"}}

		h.UpdateStatus(c)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		assert.Equal(t, "VALIDATION_ERROR", env.Error.Code)
	})

	t.Run("negative invalid transition is a conflict", func(t *testing.T) {
		svc := &fakeLeaveService{
			updateStatusFn: func(ctx context.Context, aid, id string, req leave.UpdateLeaveStatusRequest, isHrManager bool) (leave.LeaveResponse, error) {
				return leave.LeaveResponse{}, leaveerrors.ErrInvalidStatusTransition
			},
		}
		h := leave.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		body := `{"status":"APPROVED_BY_HR_MANAGER","is_hr_manager":true}`
		c.Request = httptest.NewRequest(http.MethodPut, "/leave-requests/123/status", strings.NewReader(body))
		c.Request.Header.Set("Content-Type", "application/json")
		c.Params = []gin.Param{{Key: "id", Value: "123"}}
		c.Set("employee_id", uuid.New().String())

		h.UpdateStatus(c)
		assert.Equal(t, http.StatusConflict, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		assert.Equal(t, "INVALID_STATE", env.Error.Code)
	})

	t.Run("negative wrong approver is forbidden", func(t *testing.T) {
		svc := &fakeLeaveService{
			updateStatusFn: func(ctx context.Context, aid, id string, req leave.UpdateLeaveStatusRequest, isHrManager bool) (leave.LeaveResponse, error) {
				assert.False(t, isHrManager)
				return leave.LeaveResponse{}, leaveerrors.ErrNotAssignedApprover
			},
		}
		h := leave.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		body := `{"status":"REJECTED_BY_DEPARTMENT_MANAGER"}`
		c.Request = httptest.NewRequest(http.MethodPut, "/leave-requests/123/status", strings.NewReader(body))
		c.Request.Header.Set("Content-Type", "application/json")
		c.Params = []gin.Param{{Key: "id", Value: "123"}}
		c.Set("employee_id", uuid.New().String())

		h.UpdateStatus(c)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}

func TestLeaveHandler_Cancel(t *testing.T) {
	actorID := uuid.New().String()
	leaveID := uuid.New().String()
	svc := &fakeLeaveService{
		cancelFn: func(ctx context.Context, aid, id string) (leave.LeaveResponse, error) {
			assert.Equal(t, actorID, aid)
			assert.Equal(t, leaveID, id)
			return leave.LeaveResponse{ID: id, Status: leave.StatusCancelled}, nil
		},
	}
	h := leave.NewHandler(svc)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/leave-requests/"+leaveID+"/cancel", nil)
	c.Params = []gin.Param{{Key: "id", Value: leaveID}}
	c.Set("employee_id", actorID)

	h.Cancel(c)

	assert.Equal(t, http.StatusOK, w.Code)
	env := decodeEnvelope(t, w.Body.Bytes())
	var got leave.LeaveResponse
	assert.NoError(t, json.Unmarshal(env.Data, &got))
	assert.Equal(t, leave.StatusCancelled, got.Status)
}

func TestLeaveHandler_PendingQueues(t *testing.T) {
	actorID := uuid.New().String()
	svc := &fakeLeaveService{
		pendingDeptFn: func(ctx context.Context, managerID string) ([]leave.LeaveResponse, error) {
			assert.Equal(t, actorID, managerID)
			return []leave.LeaveResponse{}, nil
		},
		pendingHRFn: func(ctx context.Context, aid string) ([]leave.LeaveResponse, error) {
			return nil, leaveerrors.ErrNotHRManager
		},
	}
	h := leave.NewHandler(svc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/leave-requests/pending/department", nil)
	c.Set("employee_id", actorID)
	h.GetPendingForDepartment(c)
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	c, _ = gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/leave-requests/pending/hr", nil)
	c.Set("employee_id", actorID)
	h.GetPendingForHR(c)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestLeaveHandler_Delete(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		leaveID := uuid.New().String()
		svc := &fakeLeaveService{
			deleteFn: func(ctx context.Context, id string) error {
				assert.Equal(t, leaveID, id)
				return nil
			},
		}
		h := leave.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodDelete, "/leave-requests/"+leaveID, nil)
		c.Params = []gin.Param{{Key: "id", Value: leaveID}}

		h.Delete(c)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("negative approved request", func(t *testing.T) {
		svc := &fakeLeaveService{
			deleteFn: func(ctx context.Context, id string) error {
				return leaveerrors.ErrApprovedLeaveImmutable
			},
		}
		h := leave.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodDelete, "/leave-requests/123", nil)
		c.Params = []gin.Param{{Key: "id", Value: "123"}}

		h.Delete(c)
		assert.Equal(t, http.StatusConflict, w.Code)
	})
}
