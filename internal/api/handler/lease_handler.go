package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/rentsoft/property-api/internal/api/metrics"
	"github.com/rentsoft/property-api/internal/core/domain"
	"github.com/rentsoft/property-api/internal/core/ports"
)

// LeaseHandler serves leases and their status changes.
type LeaseHandler struct {
	service ports.LeaseService
}

func NewLeaseHandler(service ports.LeaseService) *LeaseHandler {
	return &LeaseHandler{service: service}
}

// List handles GET /leases.
//
// @Summary      List leases
// @Description  Tenants only see their own leases.
// @Tags         leases
// @Produce      json
// @Security     BearerAuth
// @Param        status  query     string  false  "Filter by status"  Enums(DRAFT, ACTIVE, PENDING_RENEWAL, EXPIRED)
// @Param        unitId  query     string  false  "Filter by unit"
// @Success      200     {array}   leaseResponse
// @Failure      400     {object}  errorResponse
// @Router       /leases [get]
func (h *LeaseHandler) List(c echo.Context) error {
	caller, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	leases, err := h.service.List(c.Request().Context(), caller, ports.LeaseFilter{
		Status: domain.LeaseStatus(c.QueryParam("status")),
		UnitID: c.QueryParam("unitId"),
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, mapSlice(leases, toLeaseResponse))
}

// Create handles POST /leases. An ACTIVE lease marks its unit OCCUPIED.
//
// @Summary      Create a lease
// @Tags         leases
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createLeaseRequest  true  "Lease details"
// @Success      201   {object}  leaseResponse
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /leases [post]
func (h *LeaseHandler) Create(c echo.Context) error {
	caller, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	var req createLeaseRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	lease, err := h.service.Create(c.Request().Context(), caller, toCreateLeaseInput(req))
	if err != nil {
		return err
	}

	metrics.EntitiesCreatedTotal.WithLabelValues("lease").Inc()
	if lease.Status.OccupiesUnit() {
		metrics.LeaseActivationsTotal.Inc()
	}
	return c.JSON(http.StatusCreated, toLeaseResponse(lease))
}

// UpdateStatus handles PATCH /leases/:id/status.
//
// @Summary      Change a lease's status
// @Description  Moving a lease to ACTIVE marks its unit OCCUPIED in the same transaction.
// @Tags         leases
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string              true  "Lease id"
// @Param        body  body      leaseStatusRequest  true  "New status"
// @Success      200   {object}  leaseResponse
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /leases/{id}/status [patch]
func (h *LeaseHandler) UpdateStatus(c echo.Context) error {
	caller, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	var req leaseStatusRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	lease, err := h.service.UpdateStatus(c.Request().Context(), caller, c.Param("id"), domain.LeaseStatus(req.Status))
	if err != nil {
		return err
	}

	if lease.Status.OccupiesUnit() {
		metrics.LeaseActivationsTotal.Inc()
	}
	return c.JSON(http.StatusOK, toLeaseResponse(lease))
}
