package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/rentsoft/property-api/internal/api/metrics"
	"github.com/rentsoft/property-api/internal/core/domain"
	"github.com/rentsoft/property-api/internal/core/ports"
)

// PropertyHandler serves properties and their amenities.
type PropertyHandler struct {
	service ports.PropertyService
}

func NewPropertyHandler(service ports.PropertyService) *PropertyHandler {
	return &PropertyHandler{service: service}
}

// List handles GET /properties.
//
// @Summary      List properties
// @Description  Managers only see the properties they manage.
// @Tags         properties
// @Produce      json
// @Security     BearerAuth
// @Param        status  query     string  false  "Filter by status"  Enums(ACTIVE, INACTIVE, MAINTENANCE)
// @Success      200     {array}   propertyResponse
// @Failure      400     {object}  errorResponse
// @Failure      401     {object}  errorResponse
// @Router       /properties [get]
func (h *PropertyHandler) List(c echo.Context) error {
	caller, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	properties, err := h.service.List(c.Request().Context(), caller, ports.PropertyFilter{
		Status: domain.PropertyStatus(c.QueryParam("status")),
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, mapSlice(properties, toPropertyResponse))
}

// Get handles GET /properties/:id.
//
// @Summary      Get a property
// @Tags         properties
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Property id"
// @Success      200  {object}  propertyResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /properties/{id} [get]
func (h *PropertyHandler) Get(c echo.Context) error {
	caller, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	property, err := h.service.Get(c.Request().Context(), caller, c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toPropertyResponse(property))
}

// Create handles POST /properties.
//
// @Summary      Create a property
// @Description  Managers own what they create; administrators must name the manager.
// @Tags         properties
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createPropertyRequest  true  "Property details"
// @Success      201   {object}  propertyResponse
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /properties [post]
func (h *PropertyHandler) Create(c echo.Context) error {
	caller, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	var req createPropertyRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	property, err := h.service.Create(c.Request().Context(), caller, toCreatePropertyInput(req))
	if err != nil {
		return err
	}

	metrics.EntitiesCreatedTotal.WithLabelValues("property").Inc()
	return c.JSON(http.StatusCreated, toPropertyResponse(property))
}

// Update handles PATCH /properties/:id.
//
// @Summary      Update a property
// @Tags         properties
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                 true  "Property id"
// @Param        body  body      updatePropertyRequest  true  "Fields to change"
// @Success      200   {object}  propertyResponse
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /properties/{id} [patch]
func (h *PropertyHandler) Update(c echo.Context) error {
	caller, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	var req updatePropertyRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	property, err := h.service.Update(c.Request().Context(), caller, c.Param("id"), toUpdatePropertyInput(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toPropertyResponse(property))
}

// Delete handles DELETE /properties/:id.
//
// @Summary      Delete a property with its units and amenities
// @Tags         properties
// @Security     BearerAuth
// @Param        id   path  string  true  "Property id"
// @Success      204
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /properties/{id} [delete]
func (h *PropertyHandler) Delete(c echo.Context) error {
	caller, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	if err := h.service.Delete(c.Request().Context(), caller, c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// ListAmenities handles GET /properties/:id/amenities.
//
// @Summary      List a property's amenities
// @Tags         properties
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Property id"
// @Success      200  {array}   amenityResponse
// @Failure      404  {object}  errorResponse
// @Router       /properties/{id}/amenities [get]
func (h *PropertyHandler) ListAmenities(c echo.Context) error {
	caller, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	amenities, err := h.service.ListAmenities(c.Request().Context(), caller, c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, mapSlice(amenities, func(a *domain.Amenity) amenityResponse {
		return toAmenityResponse(*a)
	}))
}

// AddAmenity handles POST /properties/:id/amenities.
//
// @Summary      Add an amenity to a property
// @Tags         properties
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string          true  "Property id"
// @Param        body  body      amenityRequest  true  "Amenity"
// @Success      201   {object}  amenityResponse
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /properties/{id}/amenities [post]
func (h *PropertyHandler) AddAmenity(c echo.Context) error {
	caller, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	var req amenityRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	amenity, err := h.service.AddAmenity(c.Request().Context(), caller, c.Param("id"), ports.AmenityInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		return err
	}

	metrics.EntitiesCreatedTotal.WithLabelValues("amenity").Inc()
	return c.JSON(http.StatusCreated, toAmenityResponse(*amenity))
}
