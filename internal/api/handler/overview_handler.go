package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/havenbridge/homecare-api/internal/core/ports"
)

// OverviewHandler serves the admin dashboard aggregation.
type OverviewHandler struct {
	service ports.OverviewService
}

func NewOverviewHandler(service ports.OverviewService) *OverviewHandler {
	return &OverviewHandler{service: service}
}

type overviewResponse struct {
	Success  bool            `json:"success"`
	Overview *ports.Overview `json:"overview"`
}

// Overview returns per-status counts, recent pending appointments and recent
// audit activity.
//
// @Summary      Dashboard overview
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  overviewResponse
// @Failure      401  {object}  errorResponse
// @Router       /api/admin/overview [get]
func (h *OverviewHandler) Overview(c echo.Context) error {
	overview, err := h.service.Overview(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, overviewResponse{Success: true, Overview: overview})
}
