package handlers

import (
	request "furniture_warehouse/internal/adapter/http/dto/request"
	response "furniture_warehouse/internal/adapter/http/dto/response"
	"furniture_warehouse/internal/adapter/http/middleware"
	"furniture_warehouse/internal/usecase"
	"net/http"

	"github.com/gin-gonic/gin"
)

// AuthHandler serves registration, login, the caller's profile and the
// administrative user routes.
type AuthHandler struct {
	usecase usecase.IAuthUseCase
}

func NewAuthHandler(uc usecase.IAuthUseCase) *AuthHandler {
	return &AuthHandler{usecase: uc}
}

// Register godoc
// @Summary      Register a user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        user  body      request.RegisterRequest  true  "Registration"
// @Success      201   {object}  response.AuthResponse
// @Failure      400   {object}  pkg.HTTPError
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var payload request.RegisterRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondInvalidPayload(c, "auth", err)
		return
	}
	res, err := h.usecase.Register(c.Request.Context(), payload.ToInput())
	if err != nil {
		respondError(c, "auth", err)
		return
	}
	c.JSON(http.StatusCreated, response.AuthResponse{
		Message: "user registered successfully",
		Token:   res.Token,
		User:    response.FromUser(res.User),
	})
}

// Login godoc
// @Summary      Log in with a username or email
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        credentials  body      request.LoginRequest  true  "Credentials"
// @Success      200          {object}  response.AuthResponse
// @Failure      401          {object}  pkg.HTTPError
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var payload request.LoginRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondInvalidPayload(c, "auth", err)
		return
	}
	res, err := h.usecase.Login(c.Request.Context(), payload.Username, payload.Password)
	if err != nil {
		respondError(c, "auth", err)
		return
	}
	c.JSON(http.StatusOK, response.AuthResponse{
		Message: "login successful",
		Token:   res.Token,
		User:    response.FromUser(res.User),
	})
}

// Profile godoc
// @Summary      Current user profile
// @Tags         auth
// @Produce      json
// @Security     Bearer
// @Success      200  {object}  response.UserEnvelope
// @Failure      401  {object}  pkg.HTTPError
// @Router       /auth/profile [get]
func (h *AuthHandler) Profile(c *gin.Context) {
	claims, _ := middleware.ClaimsFrom(c)
	user, err := h.usecase.Profile(c.Request.Context(), claims.UserID)
	if err != nil {
		respondError(c, "auth", err)
		return
	}
	c.JSON(http.StatusOK, response.UserEnvelope{User: response.FromUser(user)})
}

// UpdateProfile godoc
// @Summary      Update full name and/or email
// @Tags         auth
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        profile  body      request.ProfileRequest  true  "Profile"
// @Success      200      {object}  response.UserUpdatedResponse
// @Failure      400      {object}  pkg.HTTPError
// @Router       /auth/profile [put]
func (h *AuthHandler) UpdateProfile(c *gin.Context) {
	claims, _ := middleware.ClaimsFrom(c)
	var payload request.ProfileRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondInvalidPayload(c, "auth", err)
		return
	}
	user, err := h.usecase.UpdateProfile(c.Request.Context(), claims.UserID, payload.ToInput())
	if err != nil {
		respondError(c, "auth", err)
		return
	}
	c.JSON(http.StatusOK, response.UserUpdatedResponse{Message: "profile updated successfully", User: response.FromUser(user)})
}

// ChangePassword godoc
// @Summary      Change the caller's password
// @Tags         auth
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        passwords  body      request.ChangePasswordRequest  true  "Passwords"
// @Success      200        {object}  response.MessageResponse
// @Failure      400        {object}  pkg.HTTPError
// @Router       /auth/change-password [post]
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	claims, _ := middleware.ClaimsFrom(c)
	var payload request.ChangePasswordRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondInvalidPayload(c, "auth", err)
		return
	}
	if err := h.usecase.ChangePassword(c.Request.Context(), claims.UserID, payload.CurrentPassword, payload.NewPassword); err != nil {
		respondError(c, "auth", err)
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "password changed successfully"})
}

// ListUsers godoc
// @Summary      List all users (admin)
// @Tags         auth
// @Produce      json
// @Security     Bearer
// @Success      200  {object}  response.UsersEnvelope
// @Failure      403  {object}  pkg.HTTPError
// @Router       /auth/users [get]
func (h *AuthHandler) ListUsers(c *gin.Context) {
	users, err := h.usecase.ListUsers(c.Request.Context())
	if err != nil {
		respondError(c, "auth", err)
		return
	}
	c.JSON(http.StatusOK, response.FromUsers(users))
}

// DeleteUser godoc
// @Summary      Delete a user (admin)
// @Tags         auth
// @Produce      json
// @Security     Bearer
// @Param        id   path      int  true  "User ID"
// @Success      200  {object}  response.MessageResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      404  {object}  pkg.HTTPError
// @Router       /auth/users/{id} [delete]
func (h *AuthHandler) DeleteUser(c *gin.Context) {
	id, ok := parseID(c, "auth")
	if !ok {
		return
	}
	claims, _ := middleware.ClaimsFrom(c)
	if err := h.usecase.DeleteUser(c.Request.Context(), claims.UserID, id); err != nil {
		respondError(c, "auth", err)
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "user deleted successfully"})
}
