package handlers

import (
	response "furniture_warehouse/internal/adapter/http/dto/response"
	"furniture_warehouse/internal/usecase"
	"furniture_warehouse/pkg"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

var errInvalidLimit = pkg.NewDomainErrorSimple("INVALID_LIMIT", "limit must be a non-negative integer", http.StatusBadRequest)

type AuditHandler struct {
	usecase usecase.IAuditUseCase
}

func NewAuditHandler(uc usecase.IAuditUseCase) *AuditHandler {
	return &AuditHandler{usecase: uc}
}

// List godoc
// @Summary      Recent audit events (admin)
// @Tags         audit
// @Produce      json
// @Security     Bearer
// @Param        limit  query     int  false  "Maximum events (default 50, max 500)"
// @Success      200    {array}   response.AuditEventResponse
// @Failure      400    {object}  pkg.HTTPError
// @Router       /audit [get]
func (h *AuditHandler) List(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v < 0 {
			c.JSON(errInvalidLimit.HTTPStatus, errInvalidLimit.ToHTTPError())
			return
		}
		limit = v
	}
	events, err := h.usecase.ListRecent(c.Request.Context(), limit)
	if err != nil {
		respondError(c, "audit", err)
		return
	}
	c.JSON(http.StatusOK, response.FromAuditEvents(events))
}
