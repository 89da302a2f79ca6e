package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"workgroup/internal/model"
	"workgroup/internal/service"
)

// EmployeeHandler bundles the staff record HTTP handlers.
type EmployeeHandler struct {
	svc service.EmployeeService
}

// NewEmployeeHandler creates a handler layer.
func NewEmployeeHandler(svc service.EmployeeService) *EmployeeHandler {
	return &EmployeeHandler{svc: svc}
}

// EmployeeRequest represents an employee create or update payload.
// Updates replace every field.
type EmployeeRequest struct {
	Name   string          `json:"name" validate:"required"`
	Role   string          `json:"role" validate:"required"`
	Salary decimal.Decimal `json:"salary"`
}

// CreateEmployee godoc
// @Summary Create employee
// @Tags employees
// @Accept json
// @Produce json
// @Param employee body EmployeeRequest true "Employee payload"
// @Success 201 {object} model.Employee
// @Failure 400 {object} errors.ErrorResponse
// @Router /employees [post]
func (h *EmployeeHandler) CreateEmployee(c echo.Context) error {
	var req EmployeeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	created, err := h.svc.CreateEmployee(c.Request().Context(), &model.Employee{
		Name:   req.Name,
		Role:   req.Role,
		Salary: req.Salary,
	})
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(http.StatusCreated, created)
}

// GetEmployee godoc
// @Summary Get employee by id
// @Tags employees
// @Produce json
// @Param id path int true "Employee ID"
// @Success 200 {object} model.Employee
// @Failure 404 {object} errors.ErrorResponse
// @Router /employees/{id} [get]
func (h *EmployeeHandler) GetEmployee(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	employee, err := h.svc.GetEmployee(c.Request().Context(), id)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, employee)
}

// ListEmployees godoc
// @Summary List all employees
// @Tags employees
// @Produce json
// @Success 200 {array} model.Employee
// @Router /employees [get]
func (h *EmployeeHandler) ListEmployees(c echo.Context) error {
	employees, err := h.svc.ListEmployees(c.Request().Context())
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, employees)
}

// UpdateEmployee godoc
// @Summary Replace employee fields
// @Tags employees
// @Accept json
// @Produce json
// @Param id path int true "Employee ID"
// @Param employee body EmployeeRequest true "Replacement fields"
// @Success 200 {object} model.Employee
// @Failure 404 {object} errors.ErrorResponse
// @Router /employees/{id} [put]
func (h *EmployeeHandler) UpdateEmployee(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	var req EmployeeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	updated, err := h.svc.UpdateEmployee(c.Request().Context(), id, model.Employee{
		Name:   req.Name,
		Role:   req.Role,
		Salary: req.Salary,
	})
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, updated)
}

// DeleteEmployee godoc
// @Summary Delete employee
// @Tags employees
// @Produce json
// @Param id path int true "Employee ID"
// @Success 200 {object} MessageResponse
// @Router /employees/{id} [delete]
func (h *EmployeeHandler) DeleteEmployee(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	if err := h.svc.DeleteEmployee(c.Request().Context(), id); err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, MessageResponse{Message: "Employee deleted successfully!"})
}
