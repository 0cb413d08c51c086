package employee_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"hr-records/internal/employee"
	employeeerrors "hr-records/internal/employee/errors"
	"hr-records/internal/shared/apperror"
	"hr-records/internal/shared/listing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeEmployeeService struct {
	ListFn        func(ctx context.Context, params listing.Params) (employee.ListResponse, error)
	GetByIDFn     func(ctx context.Context, id string) (employee.EmployeeResponse, error)
	GetEditFormFn func(ctx context.Context, id string) (employee.FormResponse, error)
	CreateFn      func(ctx context.Context, form employee.EmployeeForm) (employee.EmployeeResponse, error)
	UpdateFn      func(ctx context.Context, id string, form employee.EmployeeForm) (employee.EmployeeResponse, error)
}

func (f *fakeEmployeeService) List(ctx context.Context, params listing.Params) (employee.ListResponse, error) {
	return f.ListFn(ctx, params)
}
func (f *fakeEmployeeService) GetByID(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	return f.GetByIDFn(ctx, id)
}
func (f *fakeEmployeeService) GetEditForm(ctx context.Context, id string) (employee.FormResponse, error) {
	return f.GetEditFormFn(ctx, id)
}
func (f *fakeEmployeeService) Create(ctx context.Context, form employee.EmployeeForm) (employee.EmployeeResponse, error) {
	return f.CreateFn(ctx, form)
}
func (f *fakeEmployeeService) Update(ctx context.Context, id string, form employee.EmployeeForm) (employee.EmployeeResponse, error) {
	return f.UpdateFn(ctx, id, form)
}

func init() {
	apperror.Init()
}

func setupRouter(h *employee.Handler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/employees", h.List)
	r.GET("/employees/new", h.NewForm)
	r.POST("/employees/new", h.Create)
	r.GET("/employees/:employee_id/edit", h.EditForm)
	r.POST("/employees/:employee_id/edit", h.Update)
	return r
}

func formBody() url.Values {
	return url.Values{
		"last_name":    {"Иванов"},
		"first_name":   {"Иван"},
		"position":     {"Инженер"},
		"hire_date":    {"2020-03-15"},
		"email":        {"ivanov@example.com"},
		"phone_number": {"+79000000000"},
	}
}

func postForm(r *gin.Engine, path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

type errorBody struct {
	Ok    bool `json:"ok"`
	Error struct {
		Code    string            `json:"code"`
		Message string            `json:"message"`
		Details map[string]string `json:"details"`
	} `json:"error"`
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) errorBody {
	t.Helper()
	var body errorBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestEmployeeHandler_Create(t *testing.T) {
	t.Run("success redirects to the list", func(t *testing.T) {
		svc := &fakeEmployeeService{
			CreateFn: func(_ context.Context, form employee.EmployeeForm) (employee.EmployeeResponse, error) {
				assert.Equal(t, "Иванов", form.LastName)
				assert.Equal(t, "2020-03-15", form.HireDate)
				return employee.EmployeeResponse{EmployeeID: "EMP-000001"}, nil
			},
		}

		w := postForm(setupRouter(employee.NewHandler(svc)), "/employees/new", formBody())

		assert.Equal(t, http.StatusSeeOther, w.Code)
		assert.Equal(t, "/employees", w.Header().Get("Location"))
	})

	t.Run("validation error lists every bad field", func(t *testing.T) {
		form := formBody()
		form.Del("last_name")
		form.Set("email", "not-an-email")
		form.Set("hire_date", "15.03.2020")

		w := postForm(setupRouter(employee.NewHandler(&fakeEmployeeService{})), "/employees/new", form)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		body := decodeError(t, w)
		assert.Equal(t, apperror.CodeValidationError, body.Error.Code)
		assert.Contains(t, body.Error.Details, "last_name")
		assert.Contains(t, body.Error.Details, "email")
		assert.Contains(t, body.Error.Details, "hire_date")
	})

	t.Run("duplicate personnel number", func(t *testing.T) {
		svc := &fakeEmployeeService{
			CreateFn: func(context.Context, employee.EmployeeForm) (employee.EmployeeResponse, error) {
				return employee.EmployeeResponse{}, employeeerrors.ErrEmployeeAlreadyExists
			},
		}

		w := postForm(setupRouter(employee.NewHandler(svc)), "/employees/new", formBody())

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Contains(t, decodeError(t, w).Error.Details, "employee_id")
	})

	t.Run("unexpected error is a 500", func(t *testing.T) {
		svc := &fakeEmployeeService{
			CreateFn: func(context.Context, employee.EmployeeForm) (employee.EmployeeResponse, error) {
				return employee.EmployeeResponse{}, errors.New("database connection failed")
			},
		}

		w := postForm(setupRouter(employee.NewHandler(svc)), "/employees/new", formBody())

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.NotContains(t, w.Body.String(), "database connection failed")
	})
}

func TestEmployeeHandler_Update(t *testing.T) {
	t.Run("success redirects to the detail page", func(t *testing.T) {
		svc := &fakeEmployeeService{
			UpdateFn: func(_ context.Context, id string, form employee.EmployeeForm) (employee.EmployeeResponse, error) {
				assert.Equal(t, "E 1", id)
				return employee.EmployeeResponse{EmployeeID: id}, nil
			},
		}

		w := postForm(setupRouter(employee.NewHandler(svc)), "/employees/E%201/edit", formBody())

		assert.Equal(t, http.StatusSeeOther, w.Code)
		assert.Equal(t, "/employees/E%201", w.Header().Get("Location"))
	})

	t.Run("unknown employee", func(t *testing.T) {
		svc := &fakeEmployeeService{
			UpdateFn: func(context.Context, string, employee.EmployeeForm) (employee.EmployeeResponse, error) {
				return employee.EmployeeResponse{}, employeeerrors.ErrEmployeeNotFound
			},
		}

		w := postForm(setupRouter(employee.NewHandler(svc)), "/employees/E-404/edit", formBody())

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "Сотрудник не найден", decodeError(t, w).Error.Message)
	})
}

func TestEmployeeHandler_List(t *testing.T) {
	svc := &fakeEmployeeService{
		ListFn: func(_ context.Context, params listing.Params) (employee.ListResponse, error) {
			assert.Equal(t, "ив", params.Query)
			assert.Equal(t, "2", params.Page)
			return employee.ListResponse{
				Page:        listing.NewPage([]employee.EmployeeResponse{{EmployeeID: "E-1"}}, 2, 11, employee.PageSize),
				SearchQuery: "Ив",
			}, nil
		},
	}

	w := httptest.NewRecorder()
	setupRouter(employee.NewHandler(svc)).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/employees?q=%D0%B8%D0%B2&page=2", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	var body struct {
		Data employee.ListResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Ив", body.Data.SearchQuery)
	assert.Equal(t, 2, body.Data.Page.Number)
	assert.True(t, body.Data.Page.HasPrevious)
}

func TestEmployeeHandler_EditForm(t *testing.T) {
	svc := &fakeEmployeeService{
		GetEditFormFn: func(_ context.Context, id string) (employee.FormResponse, error) {
			if id == "E-1" {
				return employee.FormResponse{Form: employee.EmployeeForm{EmployeeID: "E-1"}}, nil
			}
			return employee.FormResponse{}, employeeerrors.ErrEmployeeNotFound
		},
	}
	r := setupRouter(employee.NewHandler(svc))

	ok := httptest.NewRecorder()
	r.ServeHTTP(ok, httptest.NewRequest(http.MethodGet, "/employees/E-1/edit", nil))
	assert.Equal(t, http.StatusOK, ok.Code)

	missing := httptest.NewRecorder()
	r.ServeHTTP(missing, httptest.NewRequest(http.MethodGet, "/employees/E-2/edit", nil))
	assert.Equal(t, http.StatusNotFound, missing.Code)
}
