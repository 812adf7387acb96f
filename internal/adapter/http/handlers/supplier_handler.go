package handlers

import (
	request "furniture_warehouse/internal/adapter/http/dto/request"
	response "furniture_warehouse/internal/adapter/http/dto/response"
	"furniture_warehouse/internal/usecase"
	"net/http"

	"github.com/gin-gonic/gin"
)

type SupplierHandler struct {
	usecase usecase.ISupplierUseCase
}

func NewSupplierHandler(uc usecase.ISupplierUseCase) *SupplierHandler {
	return &SupplierHandler{usecase: uc}
}

// List godoc
// @Summary      List suppliers
// @Tags         suppliers
// @Produce      json
// @Security     Bearer
// @Success      200  {array}   response.SupplierResponse
// @Failure      401  {object}  pkg.HTTPError
// @Router       /suppliers [get]
func (h *SupplierHandler) List(c *gin.Context) {
	suppliers, err := h.usecase.List(c.Request.Context())
	if err != nil {
		respondError(c, "supplier", err)
		return
	}
	c.JSON(http.StatusOK, response.FromSuppliers(suppliers))
}

// Get godoc
// @Summary      Get a supplier
// @Tags         suppliers
// @Produce      json
// @Security     Bearer
// @Param        id   path      int  true  "Supplier ID"
// @Success      200  {object}  response.SupplierResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /suppliers/{id} [get]
func (h *SupplierHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "supplier")
	if !ok {
		return
	}
	supplier, err := h.usecase.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, "supplier", err)
		return
	}
	c.JSON(http.StatusOK, response.FromSupplier(supplier))
}

// Create godoc
// @Summary      Create a supplier
// @Tags         suppliers
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        supplier  body      request.SupplierRequest  true  "Supplier"
// @Success      201       {object}  response.SupplierResponse
// @Failure      400       {object}  pkg.HTTPError
// @Router       /suppliers [post]
func (h *SupplierHandler) Create(c *gin.Context) {
	var payload request.SupplierRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondInvalidPayload(c, "supplier", err)
		return
	}
	created, err := h.usecase.Create(c.Request.Context(), payload.ToEntity())
	if err != nil {
		respondError(c, "supplier", err)
		return
	}
	c.JSON(http.StatusCreated, response.FromSupplier(created))
}

// Update godoc
// @Summary      Update a supplier
// @Tags         suppliers
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        id        path      int                      true  "Supplier ID"
// @Param        supplier  body      request.SupplierRequest  true  "Supplier"
// @Success      200       {object}  response.SupplierResponse
// @Failure      400       {object}  pkg.HTTPError
// @Failure      404       {object}  pkg.HTTPError
// @Router       /suppliers/{id} [put]
func (h *SupplierHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "supplier")
	if !ok {
		return
	}
	var payload request.SupplierRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondInvalidPayload(c, "supplier", err)
		return
	}
	updated, err := h.usecase.Update(c.Request.Context(), id, payload.ToEntity())
	if err != nil {
		respondError(c, "supplier", err)
		return
	}
	c.JSON(http.StatusOK, response.FromSupplier(updated))
}

// Delete godoc
// @Summary      Delete a supplier
// @Tags         suppliers
// @Produce      json
// @Security     Bearer
// @Param        id   path      int  true  "Supplier ID"
// @Success      200  {object}  response.MessageResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /suppliers/{id} [delete]
func (h *SupplierHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "supplier")
	if !ok {
		return
	}
	if err := h.usecase.Delete(c.Request.Context(), id); err != nil {
		respondError(c, "supplier", err)
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "supplier deleted successfully"})
}
