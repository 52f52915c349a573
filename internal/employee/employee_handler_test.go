package employee_test

import (
	"context"
	"errors"
	"go-leave/internal/employee"
	employeeerrors "go-leave/internal/employee/errors"
	"go-leave/internal/shared/apperror"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type fakeEmployeeService struct {
	CreateFn            func(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error)
	GetAllFn            func(ctx context.Context) ([]employee.EmployeeResponse, error)
	GetOptionsFn        func(ctx context.Context) ([]employee.EmployeeResponse, error)
	GetByIDFn           func(ctx context.Context, id string) (employee.EmployeeResponse, error)
	UpdateFn            func(ctx context.Context, id string, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error)
	DeleteFn            func(ctx context.Context, id string) error
	EnsureSystemAdminFn func(ctx context.Context, email, password string) (employee.EmployeeResponse, error)
}

func (f *fakeEmployeeService) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	return f.CreateFn(ctx, req)
}
func (f *fakeEmployeeService) GetAll(ctx context.Context) ([]employee.EmployeeResponse, error) {
	return f.GetAllFn(ctx)
}
func (f *fakeEmployeeService) GetOptions(ctx context.Context) ([]employee.EmployeeResponse, error) {
	return f.GetOptionsFn(ctx)
}
func (f *fakeEmployeeService) GetByID(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	return f.GetByIDFn(ctx, id)
}
func (f *fakeEmployeeService) Update(ctx context.Context, id string, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	return f.UpdateFn(ctx, id, req)
}
func (f *fakeEmployeeService) Delete(ctx context.Context, id string) error {
	return f.DeleteFn(ctx, id)
}
func (f *fakeEmployeeService) EnsureSystemAdmin(ctx context.Context, email, password string) (employee.EmployeeResponse, error) {
	return f.EnsureSystemAdminFn(ctx, email, password)
}

func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func TestEmployeeHandler_Create(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		svc := &fakeEmployeeService{
			CreateFn: func(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
				assert.Equal(t, "John", req.FirstName)
				assert.True(t, req.WorksOnSaturday)
				return employee.EmployeeResponse{
					ID:       uuid.New().String(),
					FullName: req.FirstName + " " + req.LastName,
					Email:    req.Email,
				}, nil
			},
		}

		h := employee.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		body := `{"first_name":"John","last_name":"Doe","email":"john@example.com","works_on_saturday":true,"department_id":"` + uuid.New().String() + `"}`
		req := httptest.NewRequest(http.MethodPost, "/api/v1/employees", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		c.Request = req

		h.Create(c)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), "John Doe")
	})

	t.Run("validation error", func(t *testing.T) {
		h := employee.NewHandler(&fakeEmployeeService{})

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		req := httptest.NewRequest(http.MethodPost, "/employees", strings.NewReader(`{}`))
		req.Header.Set("Content-Type", "application/json")
		c.Request = req

		h.Create(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("unknown role rejected", func(t *testing.T) {
		h := employee.NewHandler(&fakeEmployeeService{})

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		body := `{"first_name":"A","last_name":"B","email":"a@b.com","role":"OWNER"}`
		req := httptest.NewRequest(http.MethodPost, "/employees", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		c.Request = req

		h.Create(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("service error", func(t *testing.T) {
		svc := &fakeEmployeeService{
			CreateFn: func(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
				return employee.EmployeeResponse{}, errors.New("database connection failed")
			},
		}

		h := employee.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		body := `{"first_name":"HR","last_name":"Person","email":"hr@example.com"}`
		req := httptest.NewRequest(http.MethodPost, "/employees", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		c.Request = req

		h.Create(c)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Contains(t, w.Body.String(), "Internal server error")
	})

	t.Run("duplicate employee number returns conflict", func(t *testing.T) {
		svc := &fakeEmployeeService{
			CreateFn: func(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
				return employee.EmployeeResponse{}, employeeerrors.ErrEmployeeNumberAlreadyExists
			},
		}

		h := employee.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		body := `{"first_name":"John","last_name":"Doe","email":"john2@example.com","employee_number":"EMP-900"}`
		req := httptest.NewRequest(http.MethodPost, "/api/v1/employees", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		c.Request = req

		h.Create(c)

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Contains(t, w.Body.String(), apperror.CodeConflict)
		assert.Contains(t, w.Body.String(), "Employee number already exists")
	})
}

func TestEmployeeHandler_GetAll(t *testing.T) {
	list := []employee.EmployeeResponse{
		{ID: "1", FullName: "Zeynep Arslan", Email: "zeynep@example.com", EmployeeNumber: "EMP-000003"},
		{ID: "2", FullName: "Ali Veli", Email: "ali@example.com", EmployeeNumber: "EMP-000001"},
		{ID: "3", FullName: "Mert Can", Email: "mert@example.com", EmployeeNumber: "EMP-000002"},
	}

	t.Run("sorted by name and paginated", func(t *testing.T) {
		svc := &fakeEmployeeService{
			GetAllFn: func(ctx context.Context) ([]employee.EmployeeResponse, error) {
				out := make([]employee.EmployeeResponse, len(list))
				copy(out, list)
				return out, nil
			},
		}
		r := setupRouter()
		r.GET("/employees", employee.NewHandler(svc).GetAll)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/employees?page=1&page_size=2", nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		body := w.Body.String()
		assert.Contains(t, body, "Ali Veli")
		assert.Contains(t, body, "Mert Can")
		assert.NotContains(t, body, "Zeynep Arslan")
		assert.Contains(t, body, `"total":3`)
	})

	t.Run("search by employee number", func(t *testing.T) {
		svc := &fakeEmployeeService{
			GetAllFn: func(ctx context.Context) ([]employee.EmployeeResponse, error) {
				out := make([]employee.EmployeeResponse, len(list))
				copy(out, list)
				return out, nil
			},
		}
		r := setupRouter()
		r.GET("/employees", employee.NewHandler(svc).GetAll)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/employees?q=emp-000003", nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Zeynep Arslan")
		assert.NotContains(t, w.Body.String(), "Ali Veli")
	})

	t.Run("service error", func(t *testing.T) {
		svc := &fakeEmployeeService{
			GetAllFn: func(ctx context.Context) ([]employee.EmployeeResponse, error) {
				return nil, errors.New("db down")
			},
		}
		r := setupRouter()
		r.GET("/employees", employee.NewHandler(svc).GetAll)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/employees", nil))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestEmployeeHandler_GetOptions(t *testing.T) {
	svc := &fakeEmployeeService{
		GetOptionsFn: func(ctx context.Context) ([]employee.EmployeeResponse, error) {
			return []employee.EmployeeResponse{{ID: "1", FullName: "Caca Demir"}}, nil
		},
	}
	r := setupRouter()
	r.GET("/employees/options", employee.NewHandler(svc).GetOptions)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/employees/options", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Caca Demir")
}

func TestEmployeeHandler_GetByID(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		id := uuid.New().String()
		svc := &fakeEmployeeService{
			GetByIDFn: func(ctx context.Context, got string) (employee.EmployeeResponse, error) {
				assert.Equal(t, id, got)
				return employee.EmployeeResponse{ID: id, FullName: "Ayse Yilmaz"}, nil
			},
		}
		r := setupRouter()
		r.GET("/employees/:id", employee.NewHandler(svc).GetById)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/employees/"+id, nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Ayse Yilmaz")
	})

	t.Run("not found", func(t *testing.T) {
		svc := &fakeEmployeeService{
			GetByIDFn: func(ctx context.Context, id string) (employee.EmployeeResponse, error) {
				return employee.EmployeeResponse{}, employeeerrors.ErrEmployeeNotFound
			},
		}
		r := setupRouter()
		r.GET("/employees/:id", employee.NewHandler(svc).GetById)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/employees/"+uuid.New().String(), nil))

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestEmployeeHandler_Update(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		id := uuid.New().String()
		svc := &fakeEmployeeService{
			UpdateFn: func(ctx context.Context, got string, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
				assert.Equal(t, id, got)
				assert.NotNil(t, req.IsActive)
				return employee.EmployeeResponse{ID: id, FullName: req.FirstName + " " + req.LastName}, nil
			},
		}
		r := setupRouter()
		r.PUT("/employees/:id", employee.NewHandler(svc).Update)

		w := httptest.NewRecorder()
		body := `{"first_name":"New","last_name":"Name","email":"new@example.com","is_active":true}`
		req := httptest.NewRequest(http.MethodPut, "/employees/"+id, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "New Name")
	})

	t.Run("system admin deactivation is unprocessable", func(t *testing.T) {
		svc := &fakeEmployeeService{
			UpdateFn: func(ctx context.Context, id string, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
				return employee.EmployeeResponse{}, employeeerrors.ErrSystemAdminImmutable
			},
		}
		r := setupRouter()
		r.PUT("/employees/:id", employee.NewHandler(svc).Update)

		w := httptest.NewRecorder()
		body := `{"first_name":"A","last_name":"B","email":"a@b.com","is_active":false}`
		req := httptest.NewRequest(http.MethodPut, "/employees/"+uuid.New().String(), strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})

	t.Run("bad payload", func(t *testing.T) {
		r := setupRouter()
		r.PUT("/employees/:id", employee.NewHandler(&fakeEmployeeService{}).Update)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPut, "/employees/x", strings.NewReader(`{"email":"nope"}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestDeleteEmployeeHandler(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		id := uuid.New().String()
		svc := &fakeEmployeeService{
			DeleteFn: func(ctx context.Context, got string) error {
				assert.Equal(t, id, got)
				return nil
			},
		}
		r := setupRouter()
		r.DELETE("/employees/:id", employee.NewHandler(svc).Delete)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/employees/"+id, nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"deactivated":true`)
	})

	t.Run("not found", func(t *testing.T) {
		svc := &fakeEmployeeService{
			DeleteFn: func(ctx context.Context, id string) error {
				return employeeerrors.ErrEmployeeNotFound
			},
		}
		r := setupRouter()
		r.DELETE("/employees/:id", employee.NewHandler(svc).Delete)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/employees/"+uuid.New().String(), nil))

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
