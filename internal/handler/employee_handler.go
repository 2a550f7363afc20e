package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"staffdesk/internal/model"
	"staffdesk/internal/service"
)

// EmployeeHandler handles employee CRUD endpoints.
type EmployeeHandler struct {
	svc *service.EmployeeService
}

// NewEmployeeHandler creates a new employee handler.
func NewEmployeeHandler(svc *service.EmployeeService) *EmployeeHandler {
	return &EmployeeHandler{svc: svc}
}

// EmployeeCreateRequest represents an employee creation request.
type EmployeeCreateRequest struct {
	FirstName   string           `json:"firstName" validate:"required,max=100"`
	LastName    string           `json:"lastName" validate:"required,max=100"`
	Email       string           `json:"email" validate:"required,email,max=100"`
	PhoneNumber string           `json:"phoneNumber" validate:"required,max=15"`
	Position    string           `json:"position" validate:"required,max=50"`
	Salary      *decimal.Decimal `json:"salary" validate:"required"`
	HireDate    model.Date       `json:"hireDate" validate:"required"`
}

// EmployeeUpdateRequest represents a full-replace update request. Only email,
// position, salary and phone number are replaceable.
type EmployeeUpdateRequest struct {
	Email       string           `json:"email" validate:"required,email,max=100"`
	PhoneNumber string           `json:"phoneNumber" validate:"required,max=15"`
	Position    string           `json:"position" validate:"required,max=50"`
	Salary      *decimal.Decimal `json:"salary" validate:"required"`
}

// EmployeePatchRequest represents a partial update; absent fields are untouched.
type EmployeePatchRequest struct {
	FirstName *string          `json:"firstName" validate:"omitempty,max=100"`
	LastName  *string          `json:"lastName" validate:"omitempty,max=100"`
	Salary    *decimal.Decimal `json:"salary"`
	HireDate  *model.Date      `json:"hireDate"`
}

// List godoc
// @Summary List employees
// @Tags employees
// @Produce json
// @Success 200 {object} Envelope
// @Router /employees [get]
func (h *EmployeeHandler) List(c echo.Context) error {
	employees, err := h.svc.List(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, employees)
}

// Get godoc
// @Summary Get employee by id
// @Tags employees
// @Produce json
// @Param id path string true "Employee ID"
// @Success 200 {object} Envelope
// @Failure 404 {object} errors.ErrorResponse
// @Router /employees/{id} [get]
func (h *EmployeeHandler) Get(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	employee, err := h.svc.Get(c.Request().Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, employee)
}

// Create godoc
// @Summary Create employee
// @Tags employees
// @Accept json
// @Produce json
// @Param request body EmployeeCreateRequest true "Employee fields"
// @Success 200 {object} Envelope
// @Failure 400 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /employees [post]
func (h *EmployeeHandler) Create(c echo.Context) error {
	var req EmployeeCreateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	employee, err := h.svc.Create(c.Request().Context(), service.EmployeeDraft{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		Position:    req.Position,
		Salary:      *req.Salary,
		HireDate:    req.HireDate,
	})
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, employee)
}

// Update godoc
// @Summary Replace employee fields
// @Tags employees
// @Accept json
// @Produce json
// @Param id path string true "Employee ID"
// @Param request body EmployeeUpdateRequest true "Replacement fields"
// @Success 200 {object} Envelope
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /employees/{id} [put]
func (h *EmployeeHandler) Update(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	var req EmployeeUpdateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	employee, err := h.svc.Update(c.Request().Context(), id, service.EmployeeUpdate{
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		Position:    req.Position,
		Salary:      *req.Salary,
	})
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, employee)
}

// Patch godoc
// @Summary Patch employee fields
// @Tags employees
// @Accept json
// @Produce json
// @Param id path string true "Employee ID"
// @Param request body EmployeePatchRequest true "Subset of fields"
// @Success 200 {object} Envelope
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /employees/{id} [patch]
func (h *EmployeeHandler) Patch(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	var req EmployeePatchRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	employee, err := h.svc.Patch(c.Request().Context(), id, service.EmployeePatch{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Salary:    req.Salary,
		HireDate:  req.HireDate,
	})
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, employee)
}

// Delete godoc
// @Summary Delete employee
// @Tags employees
// @Produce json
// @Param id path string true "Employee ID"
// @Success 200 {object} Envelope
// @Failure 404 {object} errors.ErrorResponse
// @Router /employees/{id} [delete]
func (h *EmployeeHandler) Delete(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	if err := h.svc.Delete(c.Request().Context(), id); err != nil {
		return respondError(c, err)
	}
	return respondMessage(c, "Employee deleted")
}
