package handlers

import (
	request "furniture_warehouse/internal/adapter/http/dto/request"
	response "furniture_warehouse/internal/adapter/http/dto/response"
	"furniture_warehouse/internal/usecase"
	"net/http"

	"github.com/gin-gonic/gin"
)

type FurnitureHandler struct {
	usecase usecase.IFurnitureUseCase
}

func NewFurnitureHandler(uc usecase.IFurnitureUseCase) *FurnitureHandler {
	return &FurnitureHandler{usecase: uc}
}

// List godoc
// @Summary      List furniture with supplier names
// @Tags         furniture
// @Produce      json
// @Security     Bearer
// @Success      200  {array}  response.FurnitureResponse
// @Router       /furniture [get]
func (h *FurnitureHandler) List(c *gin.Context) {
	items, err := h.usecase.List(c.Request.Context())
	if err != nil {
		respondError(c, "furniture", err)
		return
	}
	c.JSON(http.StatusOK, response.FromFurnitureList(items))
}

// Get godoc
// @Summary      Get a furniture item
// @Tags         furniture
// @Produce      json
// @Security     Bearer
// @Param        id   path      int  true  "Furniture ID"
// @Success      200  {object}  response.FurnitureResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /furniture/{id} [get]
func (h *FurnitureHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "furniture")
	if !ok {
		return
	}
	item, err := h.usecase.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, "furniture", err)
		return
	}
	c.JSON(http.StatusOK, response.FromFurniture(item))
}

// Create godoc
// @Summary      Create a furniture item
// @Tags         furniture
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        furniture  body      request.FurnitureRequest  true  "Furniture"
// @Success      201        {object}  response.FurnitureResponse
// @Failure      400        {object}  pkg.HTTPError
// @Router       /furniture [post]
func (h *FurnitureHandler) Create(c *gin.Context) {
	var payload request.FurnitureRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondInvalidPayload(c, "furniture", err)
		return
	}
	created, err := h.usecase.Create(c.Request.Context(), payload.ToInput())
	if err != nil {
		respondError(c, "furniture", err)
		return
	}
	c.JSON(http.StatusCreated, response.FromFurniture(created))
}

// Update godoc
// @Summary      Update a furniture item
// @Tags         furniture
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        id         path      int                       true  "Furniture ID"
// @Param        furniture  body      request.FurnitureRequest  true  "Furniture"
// @Success      200        {object}  response.FurnitureResponse
// @Failure      400        {object}  pkg.HTTPError
// @Failure      404        {object}  pkg.HTTPError
// @Router       /furniture/{id} [put]
func (h *FurnitureHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "furniture")
	if !ok {
		return
	}
	var payload request.FurnitureRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondInvalidPayload(c, "furniture", err)
		return
	}
	updated, err := h.usecase.Update(c.Request.Context(), id, payload.ToInput())
	if err != nil {
		respondError(c, "furniture", err)
		return
	}
	c.JSON(http.StatusOK, response.FromFurniture(updated))
}

// UpdateQuantity godoc
// @Summary      Set the stock quantity of a furniture item
// @Tags         furniture
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        id        path      int                      true  "Furniture ID"
// @Param        quantity  body      request.QuantityRequest  true  "Quantity"
// @Success      200       {object}  response.MessageResponse
// @Failure      400       {object}  pkg.HTTPError
// @Failure      404       {object}  pkg.HTTPError
// @Router       /furniture/{id}/quantity [patch]
func (h *FurnitureHandler) UpdateQuantity(c *gin.Context) {
	id, ok := parseID(c, "furniture")
	if !ok {
		return
	}
	var payload request.QuantityRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondInvalidPayload(c, "furniture", err)
		return
	}
	if err := h.usecase.UpdateQuantity(c.Request.Context(), id, payload.Quantity); err != nil {
		respondError(c, "furniture", err)
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "quantity updated successfully"})
}

// Delete godoc
// @Summary      Delete a furniture item
// @Tags         furniture
// @Produce      json
// @Security     Bearer
// @Param        id   path      int  true  "Furniture ID"
// @Success      200  {object}  response.MessageResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /furniture/{id} [delete]
func (h *FurnitureHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "furniture")
	if !ok {
		return
	}
	if err := h.usecase.Delete(c.Request.Context(), id); err != nil {
		respondError(c, "furniture", err)
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "furniture deleted successfully"})
}
