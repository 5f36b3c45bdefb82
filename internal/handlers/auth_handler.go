package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jobsterhq/jobster-api/internal/apperrors"
	"github.com/jobsterhq/jobster-api/internal/dtos"
	"github.com/jobsterhq/jobster-api/internal/middleware"
	"github.com/jobsterhq/jobster-api/internal/services"
)

type AuthHandler struct {
	Auth *services.AuthService
}

func NewAuthHandler(auth *services.AuthService) *AuthHandler {
	return &AuthHandler{
		Auth: auth,
	}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req dtos.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(apperrors.BadRequest("Please provide name, email and password"))
		return
	}

	user, err := h.Auth.Register(c.Request.Context(), &req)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, dtos.UserEnvelope{User: *user})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req dtos.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(apperrors.BadRequest("Please provide email and password"))
		return
	}

	user, err := h.Auth.Login(c.Request.Context(), &req)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, dtos.UserEnvelope{User: *user})
}

func (h *AuthHandler) UpdateUser(c *gin.Context) {
	var req dtos.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(apperrors.BadRequest("Please provide all values"))
		return
	}

	user, err := h.Auth.UpdateUser(c.Request.Context(), middleware.Identity(c).UserID, &req)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, dtos.UserEnvelope{User: *user})
}
