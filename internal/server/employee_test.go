package server_test

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Fuad-Aliyev/employee-api/internal/metrics"
	"github.com/Fuad-Aliyev/employee-api/internal/models"
	"github.com/Fuad-Aliyev/employee-api/internal/server"
	"github.com/Fuad-Aliyev/employee-api/internal/services/employees"
	mocks "github.com/Fuad-Aliyev/employee-api/mock"
)

func newTestRouter(svc employees.EmployeeServiceIface) *echo.Echo {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	reg := prometheus.NewRegistry()
	return server.NewRouter(logger, reg, &MockDBPinger{}, metrics.NewMetrics(reg), svc)
}

func performRequest(router *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func TestCreateEmployee_Success(t *testing.T) {
	t.Parallel()

	savedEmployee := models.Employee{
		ID:        1,
		FirstName: "fuad",
		LastName:  "aliyev",
		Email:     "aliyev@gmail.com",
	}

	mockSvc := mocks.NewEmployeeServiceIface(t)
	mockSvc.On("SaveEmployee", mock.Anything, models.Employee{
		FirstName: "fuad", LastName: "aliyev", Email: "aliyev@gmail.com",
	}).Return(savedEmployee, nil)

	router := newTestRouter(mockSvc)
	rr := performRequest(router, http.MethodPost, "/api/employees",
		`{"firstName":"fuad","lastName":"aliyev","email":"aliyev@gmail.com"}`)

	require.Equal(t, http.StatusCreated, rr.Code)

	var got models.Employee
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	assert.Equal(t, savedEmployee, got)
}

func TestCreateEmployee_IgnoresClientAssignedID(t *testing.T) {
	t.Parallel()

	mockSvc := mocks.NewEmployeeServiceIface(t)
	mockSvc.On("SaveEmployee", mock.Anything, models.Employee{
		FirstName: "fuad", LastName: "aliyev", Email: "aliyev@gmail.com",
	}).Return(models.Employee{ID: 1, FirstName: "fuad", LastName: "aliyev", Email: "aliyev@gmail.com"}, nil)

	router := newTestRouter(mockSvc)
	rr := performRequest(router, http.MethodPost, "/api/employees",
		`{"id":999,"firstName":"fuad","lastName":"aliyev","email":"aliyev@gmail.com"}`)

	require.Equal(t, http.StatusCreated, rr.Code)
}

func TestCreateEmployee_DuplicateEmail(t *testing.T) {
	t.Parallel()

	mockSvc := mocks.NewEmployeeServiceIface(t)
	mockSvc.On("SaveEmployee", mock.Anything, mock.Anything).
		Return(models.Employee{}, employees.ErrEmailExists)

	router := newTestRouter(mockSvc)
	rr := performRequest(router, http.MethodPost, "/api/employees",
		`{"firstName":"fuad","lastName":"aliyev","email":"aliyev@gmail.com"}`)

	require.Equal(t, http.StatusConflict, rr.Code)
	assert.Contains(t, rr.Body.String(), "employee already exists with given email")
}

func TestCreateEmployee_ServiceError(t *testing.T) {
	t.Parallel()

	mockSvc := mocks.NewEmployeeServiceIface(t)
	mockSvc.On("SaveEmployee", mock.Anything, mock.Anything).
		Return(models.Employee{}, assert.AnError)

	router := newTestRouter(mockSvc)
	rr := performRequest(router, http.MethodPost, "/api/employees",
		`{"firstName":"fuad","lastName":"aliyev","email":"aliyev@gmail.com"}`)

	require.Equal(t, http.StatusInternalServerError, rr.Code)
}

func TestCreateEmployee_InvalidBody(t *testing.T) {
	t.Parallel()

	mockSvc := mocks.NewEmployeeServiceIface(t)

	router := newTestRouter(mockSvc)
	rr := performRequest(router, http.MethodPost, "/api/employees", `{invalid`)

	require.Equal(t, http.StatusBadRequest, rr.Code)
	mockSvc.AssertNotCalled(t, "SaveEmployee")
}

func TestGetAllEmployees_ReturnsList(t *testing.T) {
	t.Parallel()

	expectedList := []models.Employee{
		{ID: 1, FirstName: "fuad", LastName: "aliyev", Email: "aliyev@gmail.com"},
		{ID: 2, FirstName: "John", LastName: "Johnson", Email: "john@gmail.com"},
	}

	mockSvc := mocks.NewEmployeeServiceIface(t)
	mockSvc.On("GetAllEmployees", mock.Anything).Return(expectedList, nil)

	router := newTestRouter(mockSvc)
	rr := performRequest(router, http.MethodGet, "/api/employees", "")

	require.Equal(t, http.StatusOK, rr.Code)

	var got []models.Employee
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	assert.Equal(t, expectedList, got)
}

func TestGetAllEmployees_EmptyStoreReturnsEmptyArray(t *testing.T) {
	t.Parallel()

	mockSvc := mocks.NewEmployeeServiceIface(t)
	mockSvc.On("GetAllEmployees", mock.Anything).Return([]models.Employee{}, nil)

	router := newTestRouter(mockSvc)
	rr := performRequest(router, http.MethodGet, "/api/employees", "")

	require.Equal(t, http.StatusOK, rr.Code)
	require.JSONEq(t, `[]`, rr.Body.String())
}

func TestGetEmployeeByID_Found(t *testing.T) {
	t.Parallel()

	expectedEmployee := models.Employee{
		ID:        1,
		FirstName: "fuad",
		LastName:  "aliyev",
		Email:     "aliyev@gmail.com",
	}

	mockSvc := mocks.NewEmployeeServiceIface(t)
	mockSvc.On("GetEmployeeByID", mock.Anything, int64(1)).Return(expectedEmployee, true, nil)

	router := newTestRouter(mockSvc)
	rr := performRequest(router, http.MethodGet, "/api/employees/1", "")

	require.Equal(t, http.StatusOK, rr.Code)

	var got models.Employee
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	assert.Equal(t, expectedEmployee, got)
}

func TestGetEmployeeByID_NotFound(t *testing.T) {
	t.Parallel()

	mockSvc := mocks.NewEmployeeServiceIface(t)
	mockSvc.On("GetEmployeeByID", mock.Anything, int64(404)).Return(models.Employee{}, false, nil)

	router := newTestRouter(mockSvc)
	rr := performRequest(router, http.MethodGet, "/api/employees/404", "")

	require.Equal(t, http.StatusNotFound, rr.Code)
}

func TestGetEmployeeByID_InvalidID(t *testing.T) {
	t.Parallel()

	mockSvc := mocks.NewEmployeeServiceIface(t)

	router := newTestRouter(mockSvc)
	rr := performRequest(router, http.MethodGet, "/api/employees/abc", "")

	require.Equal(t, http.StatusBadRequest, rr.Code)
	mockSvc.AssertNotCalled(t, "GetEmployeeByID")
}

func TestUpdateEmployee_MergesFieldsAndPreservesID(t *testing.T) {
	t.Parallel()

	storedEmployee := models.Employee{
		ID:        1,
		FirstName: "Fuad",
		LastName:  "Aliyev",
		Email:     "fuad@gmail.com",
	}
	mergedEmployee := models.Employee{
		ID:        1,
		FirstName: "fuad",
		LastName:  "aliyev",
		Email:     "aliyev@gmail.com",
	}

	mockSvc := mocks.NewEmployeeServiceIface(t)
	mockSvc.On("GetEmployeeByID", mock.Anything, int64(1)).Return(storedEmployee, true, nil)
	mockSvc.On("UpdateEmployee", mock.Anything, mergedEmployee).Return(mergedEmployee, nil)

	router := newTestRouter(mockSvc)
	rr := performRequest(router, http.MethodPut, "/api/employees/1",
		`{"firstName":"fuad","lastName":"aliyev","email":"aliyev@gmail.com"}`)

	require.Equal(t, http.StatusOK, rr.Code)

	var got models.Employee
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	assert.Equal(t, mergedEmployee, got)
}

func TestUpdateEmployee_NotFound(t *testing.T) {
	t.Parallel()

	mockSvc := mocks.NewEmployeeServiceIface(t)
	mockSvc.On("GetEmployeeByID", mock.Anything, int64(404)).Return(models.Employee{}, false, nil)

	router := newTestRouter(mockSvc)
	rr := performRequest(router, http.MethodPut, "/api/employees/404",
		`{"firstName":"fuad","lastName":"aliyev","email":"aliyev@gmail.com"}`)

	require.Equal(t, http.StatusNotFound, rr.Code)
	mockSvc.AssertNotCalled(t, "UpdateEmployee")
}

func TestDeleteEmployee_AlwaysOK(t *testing.T) {
	t.Parallel()

	mockSvc := mocks.NewEmployeeServiceIface(t)
	mockSvc.On("DeleteEmployee", mock.Anything, int64(1)).Return(nil)

	router := newTestRouter(mockSvc)
	rr := performRequest(router, http.MethodDelete, "/api/employees/1", "")

	require.Equal(t, http.StatusOK, rr.Code)
	require.JSONEq(t, `{"message":"Employee deleted successfully!"}`, rr.Body.String())
}

// TestEmployeeLifecycle walks the create/read/delete/read sequence the API
// promises: 201, then 200, then 200, then 404.
func TestEmployeeLifecycle(t *testing.T) {
	t.Parallel()

	employee := models.Employee{
		ID:        1,
		FirstName: "fuad",
		LastName:  "aliyev",
		Email:     "aliyev@gmail.com",
	}

	mockSvc := mocks.NewEmployeeServiceIface(t)
	mockSvc.On("SaveEmployee", mock.Anything, mock.Anything).Return(employee, nil).Once()
	mockSvc.On("GetEmployeeByID", mock.Anything, int64(1)).Return(employee, true, nil).Once()
	mockSvc.On("DeleteEmployee", mock.Anything, int64(1)).Return(nil).Once()
	mockSvc.On("GetEmployeeByID", mock.Anything, int64(1)).Return(models.Employee{}, false, nil).Once()

	router := newTestRouter(mockSvc)

	rr := performRequest(router, http.MethodPost, "/api/employees",
		`{"firstName":"fuad","lastName":"aliyev","email":"aliyev@gmail.com"}`)
	require.Equal(t, http.StatusCreated, rr.Code)

	rr = performRequest(router, http.MethodGet, "/api/employees/1", "")
	require.Equal(t, http.StatusOK, rr.Code)

	rr = performRequest(router, http.MethodDelete, "/api/employees/1", "")
	require.Equal(t, http.StatusOK, rr.Code)

	rr = performRequest(router, http.MethodGet, "/api/employees/1", "")
	require.Equal(t, http.StatusNotFound, rr.Code)
}
