package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/rentsoft/property-api/internal/api/metrics"
	"github.com/rentsoft/property-api/internal/core/domain"
	"github.com/rentsoft/property-api/internal/core/ports"
)

// ApplicationHandler serves rental applications.
type ApplicationHandler struct {
	service ports.ApplicationService
}

func NewApplicationHandler(service ports.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{service: service}
}

// List handles GET /applications.
//
// @Summary      List rental applications
// @Description  Tenants only see their own applications.
// @Tags         applications
// @Produce      json
// @Security     BearerAuth
// @Param        status  query     string  false  "Filter by status"  Enums(PENDING, UNDER_REVIEW, APPROVED, REJECTED, WITHDRAWN)
// @Param        unitId  query     string  false  "Filter by unit"
// @Success      200     {array}   applicationResponse
// @Failure      400     {object}  errorResponse
// @Router       /applications [get]
func (h *ApplicationHandler) List(c echo.Context) error {
	caller, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	applications, err := h.service.List(c.Request().Context(), caller, ports.ApplicationFilter{
		Status: domain.ApplicationStatus(c.QueryParam("status")),
		UnitID: c.QueryParam("unitId"),
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, mapSlice(applications, toApplicationResponse))
}

// Create handles POST /applications. The caller is the applicant.
//
// @Summary      Submit a rental application
// @Tags         applications
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createApplicationRequest  true  "Application"
// @Success      201   {object}  applicationResponse
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /applications [post]
func (h *ApplicationHandler) Create(c echo.Context) error {
	caller, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	var req createApplicationRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	application, err := h.service.Create(c.Request().Context(), caller, toCreateApplicationInput(req))
	if err != nil {
		return err
	}

	metrics.EntitiesCreatedTotal.WithLabelValues("application").Inc()
	return c.JSON(http.StatusCreated, toApplicationResponse(application))
}

// MaintenanceHandler serves maintenance requests.
type MaintenanceHandler struct {
	service ports.MaintenanceService
}

func NewMaintenanceHandler(service ports.MaintenanceService) *MaintenanceHandler {
	return &MaintenanceHandler{service: service}
}

// List handles GET /maintenance. Rows come most urgent first.
//
// @Summary      List maintenance requests
// @Description  Tenants only see their own requests.
// @Tags         maintenance
// @Produce      json
// @Security     BearerAuth
// @Param        status    query     string  false  "Filter by status"    Enums(OPEN, IN_PROGRESS, PENDING_APPROVAL, COMPLETED, CANCELLED)
// @Param        priority  query     string  false  "Filter by priority"  Enums(LOW, MEDIUM, HIGH, URGENT)
// @Param        unitId    query     string  false  "Filter by unit"
// @Success      200       {array}   maintenanceResponse
// @Failure      400       {object}  errorResponse
// @Router       /maintenance [get]
func (h *MaintenanceHandler) List(c echo.Context) error {
	caller, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	requests, err := h.service.List(c.Request().Context(), caller, ports.MaintenanceFilter{
		Status:   domain.MaintenanceStatus(c.QueryParam("status")),
		Priority: domain.Priority(c.QueryParam("priority")),
		UnitID:   c.QueryParam("unitId"),
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, mapSlice(requests, toMaintenanceResponse))
}

// Create handles POST /maintenance. The caller is the reporting tenant.
//
// @Summary      Report a maintenance issue
// @Tags         maintenance
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createMaintenanceRequest  true  "Maintenance request"
// @Success      201   {object}  maintenanceResponse
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /maintenance [post]
func (h *MaintenanceHandler) Create(c echo.Context) error {
	caller, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	var req createMaintenanceRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	request, err := h.service.Create(c.Request().Context(), caller, toCreateMaintenanceInput(req))
	if err != nil {
		return err
	}

	metrics.EntitiesCreatedTotal.WithLabelValues("maintenance").Inc()
	return c.JSON(http.StatusCreated, toMaintenanceResponse(request))
}

// PaymentHandler serves lease payments.
type PaymentHandler struct {
	service ports.PaymentService
}

func NewPaymentHandler(service ports.PaymentService) *PaymentHandler {
	return &PaymentHandler{service: service}
}

// List handles GET /payments.
//
// @Summary      List payments
// @Description  Tenants only see payments they made.
// @Tags         payments
// @Produce      json
// @Security     BearerAuth
// @Param        status   query     string  false  "Filter by status"  Enums(PENDING, COMPLETED, FAILED, REFUNDED, CANCELLED)
// @Param        leaseId  query     string  false  "Filter by lease"
// @Success      200      {array}   paymentResponse
// @Failure      400      {object}  errorResponse
// @Router       /payments [get]
func (h *PaymentHandler) List(c echo.Context) error {
	caller, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	payments, err := h.service.List(c.Request().Context(), caller, ports.PaymentFilter{
		Status:  domain.PaymentStatus(c.QueryParam("status")),
		LeaseID: c.QueryParam("leaseId"),
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, mapSlice(payments, toPaymentResponse))
}

// Create handles POST /payments. The caller is the payer.
//
// @Summary      Record a payment
// @Tags         payments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createPaymentRequest  true  "Payment"
// @Success      201   {object}  paymentResponse
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /payments [post]
func (h *PaymentHandler) Create(c echo.Context) error {
	caller, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	var req createPaymentRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	payment, err := h.service.Create(c.Request().Context(), caller, toCreatePaymentInput(req))
	if err != nil {
		return err
	}

	metrics.EntitiesCreatedTotal.WithLabelValues("payment").Inc()
	return c.JSON(http.StatusCreated, toPaymentResponse(payment))
}
