package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/xezo360hye/DIP392-1337/internal/response"
	"github.com/xezo360hye/DIP392-1337/internal/service"
)

// DashboardHandler handles the admin dashboard endpoint.
type DashboardHandler struct {
	dashboardService *service.DashboardService
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(dashboardService *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// GetDashboardData godoc
// GET /api/dashboard
// Returns summary counts, the overall attendance rate and upcoming sessions.
func (h *DashboardHandler) GetDashboardData(c *gin.Context) {
	data, err := h.dashboardService.GetDashboardData(c.Request.Context())
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, data)
}
