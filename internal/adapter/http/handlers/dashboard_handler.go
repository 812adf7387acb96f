package handlers

import (
	response "furniture_warehouse/internal/adapter/http/dto/response"
	"furniture_warehouse/internal/usecase"
	"net/http"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	usecase usecase.IDashboardUseCase
}

func NewDashboardHandler(uc usecase.IDashboardUseCase) *DashboardHandler {
	return &DashboardHandler{usecase: uc}
}

// Stats godoc
// @Summary      Warehouse dashboard figures
// @Tags         dashboard
// @Produce      json
// @Security     Bearer
// @Success      200  {object}  response.DashboardResponse
// @Router       /dashboard [get]
func (h *DashboardHandler) Stats(c *gin.Context) {
	stats, err := h.usecase.Stats(c.Request.Context())
	if err != nil {
		respondError(c, "dashboard", err)
		return
	}
	c.JSON(http.StatusOK, response.FromDashboard(stats))
}
