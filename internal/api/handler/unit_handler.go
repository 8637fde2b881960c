package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/rentsoft/property-api/internal/api/metrics"
	"github.com/rentsoft/property-api/internal/core/domain"
	"github.com/rentsoft/property-api/internal/core/ports"
)

// UnitHandler serves rentable units.
type UnitHandler struct {
	service ports.UnitService
}

func NewUnitHandler(service ports.UnitService) *UnitHandler {
	return &UnitHandler{service: service}
}

// List handles GET /units.
//
// @Summary      List units
// @Tags         units
// @Produce      json
// @Security     BearerAuth
// @Param        propertyId  query     string  false  "Filter by property"
// @Param        status      query     string  false  "Filter by status"  Enums(AVAILABLE, OCCUPIED, MAINTENANCE, RESERVED)
// @Success      200         {array}   unitResponse
// @Failure      400         {object}  errorResponse
// @Router       /units [get]
func (h *UnitHandler) List(c echo.Context) error {
	caller, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	units, err := h.service.List(c.Request().Context(), caller, ports.UnitFilter{
		PropertyID: c.QueryParam("propertyId"),
		Status:     domain.UnitStatus(c.QueryParam("status")),
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, mapSlice(units, toUnitResponse))
}

// Get handles GET /units/:id.
//
// @Summary      Get a unit
// @Tags         units
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Unit id"
// @Success      200  {object}  unitResponse
// @Failure      404  {object}  errorResponse
// @Router       /units/{id} [get]
func (h *UnitHandler) Get(c echo.Context) error {
	caller, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	unit, err := h.service.Get(c.Request().Context(), caller, c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toUnitResponse(unit))
}

// Create handles POST /units.
//
// @Summary      Create a unit
// @Tags         units
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createUnitRequest  true  "Unit details"
// @Success      201   {object}  unitResponse
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /units [post]
func (h *UnitHandler) Create(c echo.Context) error {
	caller, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	var req createUnitRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	unit, err := h.service.Create(c.Request().Context(), caller, toCreateUnitInput(req))
	if err != nil {
		return err
	}

	metrics.EntitiesCreatedTotal.WithLabelValues("unit").Inc()
	return c.JSON(http.StatusCreated, toUnitResponse(unit))
}

// Update handles PATCH /units/:id.
//
// @Summary      Update a unit
// @Description  Also used to manage unit status by hand.
// @Tags         units
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string             true  "Unit id"
// @Param        body  body      updateUnitRequest  true  "Fields to change"
// @Success      200   {object}  unitResponse
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /units/{id} [patch]
func (h *UnitHandler) Update(c echo.Context) error {
	caller, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	var req updateUnitRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	unit, err := h.service.Update(c.Request().Context(), caller, c.Param("id"), toUpdateUnitInput(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toUnitResponse(unit))
}
