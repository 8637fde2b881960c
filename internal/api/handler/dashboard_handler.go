package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/rentsoft/property-api/internal/core/ports"
)

type DashboardHandler struct {
	service ports.DashboardService
}

func NewDashboardHandler(service ports.DashboardService) *DashboardHandler {
	return &DashboardHandler{service: service}
}

// Summary handles GET /dashboard.
//
// @Summary      Portfolio counters
// @Description  Property and unit counts follow the manager scope; activity figures follow the tenant scope.
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  domain.DashboardSummary
// @Failure      401  {object}  errorResponse
// @Router       /dashboard [get]
func (h *DashboardHandler) Summary(c echo.Context) error {
	caller, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	summary, err := h.service.Summary(c.Request().Context(), caller)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, summary)
}
