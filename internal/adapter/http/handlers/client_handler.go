package handlers

import (
	request "furniture_warehouse/internal/adapter/http/dto/request"
	response "furniture_warehouse/internal/adapter/http/dto/response"
	"furniture_warehouse/internal/usecase"
	"net/http"

	"github.com/gin-gonic/gin"
)

type ClientHandler struct {
	usecase usecase.IClientUseCase
}

func NewClientHandler(uc usecase.IClientUseCase) *ClientHandler {
	return &ClientHandler{usecase: uc}
}

// List godoc
// @Summary      List clients
// @Tags         clients
// @Produce      json
// @Security     Bearer
// @Success      200  {array}  response.ClientResponse
// @Router       /clients [get]
func (h *ClientHandler) List(c *gin.Context) {
	clients, err := h.usecase.List(c.Request.Context())
	if err != nil {
		respondError(c, "client", err)
		return
	}
	c.JSON(http.StatusOK, response.FromClients(clients))
}

// Get godoc
// @Summary      Get a client
// @Tags         clients
// @Produce      json
// @Security     Bearer
// @Param        id   path      int  true  "Client ID"
// @Success      200  {object}  response.ClientResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /clients/{id} [get]
func (h *ClientHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "client")
	if !ok {
		return
	}
	client, err := h.usecase.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, "client", err)
		return
	}
	c.JSON(http.StatusOK, response.FromClient(client))
}

// Create godoc
// @Summary      Create a client
// @Tags         clients
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        client  body      request.ClientRequest  true  "Client"
// @Success      201     {object}  response.ClientResponse
// @Failure      400     {object}  pkg.HTTPError
// @Router       /clients [post]
func (h *ClientHandler) Create(c *gin.Context) {
	var payload request.ClientRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondInvalidPayload(c, "client", err)
		return
	}
	created, err := h.usecase.Create(c.Request.Context(), payload.ToEntity())
	if err != nil {
		respondError(c, "client", err)
		return
	}
	c.JSON(http.StatusCreated, response.FromClient(created))
}

// Update godoc
// @Summary      Update a client
// @Tags         clients
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        id      path      int                    true  "Client ID"
// @Param        client  body      request.ClientRequest  true  "Client"
// @Success      200     {object}  response.ClientResponse
// @Failure      404     {object}  pkg.HTTPError
// @Router       /clients/{id} [put]
func (h *ClientHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "client")
	if !ok {
		return
	}
	var payload request.ClientRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondInvalidPayload(c, "client", err)
		return
	}
	updated, err := h.usecase.Update(c.Request.Context(), id, payload.ToEntity())
	if err != nil {
		respondError(c, "client", err)
		return
	}
	c.JSON(http.StatusOK, response.FromClient(updated))
}

// Delete godoc
// @Summary      Delete a client
// @Tags         clients
// @Produce      json
// @Security     Bearer
// @Param        id   path      int  true  "Client ID"
// @Success      200  {object}  response.MessageResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /clients/{id} [delete]
func (h *ClientHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "client")
	if !ok {
		return
	}
	if err := h.usecase.Delete(c.Request.Context(), id); err != nil {
		respondError(c, "client", err)
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "client deleted successfully"})
}
