package server

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/Fuad-Aliyev/employee-api/internal/lib/logger/sl"
	"github.com/Fuad-Aliyev/employee-api/internal/models"
	"github.com/Fuad-Aliyev/employee-api/internal/services/employees"
)

type errorResponse struct {
	Message string `json:"message"`
}

type messageResponse struct {
	Message string `json:"message"`
}

// EmployeeHandler translates HTTP requests into employee service calls.
type EmployeeHandler struct {
	log *slog.Logger
	svc employees.EmployeeServiceIface
}

func NewEmployeeHandler(log *slog.Logger, svc employees.EmployeeServiceIface) *EmployeeHandler {
	return &EmployeeHandler{log: log, svc: svc}
}

// CreateEmployee handles POST /api/employees.
func (h *EmployeeHandler) CreateEmployee(c echo.Context) error {
	var req models.Employee
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Message: "invalid request body"})
	}
	req.ID = 0

	created, err := h.svc.SaveEmployee(c.Request().Context(), req)
	if err != nil {
		if errors.Is(err, employees.ErrEmailExists) {
			return c.JSON(http.StatusConflict, errorResponse{Message: err.Error()})
		}
		h.log.ErrorContext(c.Request().Context(), "Failed to create employee", sl.Err(err))
		return c.JSON(http.StatusInternalServerError, errorResponse{Message: "failed to create employee"})
	}

	return c.JSON(http.StatusCreated, created)
}

// GetAllEmployees handles GET /api/employees.
func (h *EmployeeHandler) GetAllEmployees(c echo.Context) error {
	list, err := h.svc.GetAllEmployees(c.Request().Context())
	if err != nil {
		h.log.ErrorContext(c.Request().Context(), "Failed to list employees", sl.Err(err))
		return c.JSON(http.StatusInternalServerError, errorResponse{Message: "failed to list employees"})
	}

	return c.JSON(http.StatusOK, list)
}

// GetEmployeeByID handles GET /api/employees/:id.
func (h *EmployeeHandler) GetEmployeeByID(c echo.Context) error {
	identifier, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Message: "invalid employee id"})
	}

	employee, found, err := h.svc.GetEmployeeByID(c.Request().Context(), identifier)
	if err != nil {
		h.log.ErrorContext(c.Request().Context(), "Failed to get employee", sl.Err(err))
		return c.JSON(http.StatusInternalServerError, errorResponse{Message: "failed to get employee"})
	}
	if !found {
		return c.JSON(http.StatusNotFound, errorResponse{Message: "employee not found"})
	}

	return c.JSON(http.StatusOK, employee)
}

// UpdateEmployee handles PUT /api/employees/:id. The employee is fetched
// first: an unknown id returns 404 and no update is attempted; otherwise
// the request fields replace the stored ones and the id is preserved.
func (h *EmployeeHandler) UpdateEmployee(c echo.Context) error {
	identifier, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Message: "invalid employee id"})
	}

	employee, found, err := h.svc.GetEmployeeByID(c.Request().Context(), identifier)
	if err != nil {
		h.log.ErrorContext(c.Request().Context(), "Failed to get employee", sl.Err(err))
		return c.JSON(http.StatusInternalServerError, errorResponse{Message: "failed to get employee"})
	}
	if !found {
		return c.JSON(http.StatusNotFound, errorResponse{Message: "employee not found"})
	}

	var req models.Employee
	if err = c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Message: "invalid request body"})
	}

	employee.FirstName = req.FirstName
	employee.LastName = req.LastName
	employee.Email = req.Email

	updated, err := h.svc.UpdateEmployee(c.Request().Context(), employee)
	if err != nil {
		h.log.ErrorContext(c.Request().Context(), "Failed to update employee", sl.Err(err))
		return c.JSON(http.StatusInternalServerError, errorResponse{Message: "failed to update employee"})
	}

	return c.JSON(http.StatusOK, updated)
}

// DeleteEmployee handles DELETE /api/employees/:id. The delete is
// idempotent and answers 200 whether or not the id existed.
func (h *EmployeeHandler) DeleteEmployee(c echo.Context) error {
	identifier, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Message: "invalid employee id"})
	}

	if err = h.svc.DeleteEmployee(c.Request().Context(), identifier); err != nil {
		h.log.ErrorContext(c.Request().Context(), "Failed to delete employee", sl.Err(err))
		return c.JSON(http.StatusInternalServerError, errorResponse{Message: "failed to delete employee"})
	}

	return c.JSON(http.StatusOK, messageResponse{Message: "Employee deleted successfully!"})
}
