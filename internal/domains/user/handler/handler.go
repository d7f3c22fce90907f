package handler

import (
	"errors"
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/gin-gonic/gin"

	"smarttrack-backend/internal/domains/user/model"
	"smarttrack-backend/internal/domains/user/service"
	"smarttrack-backend/internal/shared/response"
)

type Handler struct {
	service service.Service
}

// NewHandler creates a new user handler
func NewHandler(service service.Service) *Handler {
	return &Handler{service: service}
}

// Register handles POST /api/v1/auth/register
func (h *Handler) Register(c *gin.Context) {
	var req model.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request payload", err.Error())
		return
	}

	user, err := h.service.Register(c.Request.Context(), req)
	if err != nil {
		h.writeAuthError(c, err, "Failed to register user")
		return
	}

	response.Success(c, http.StatusCreated, "User registered successfully", user)
}

// Login handles POST /api/v1/auth/login
func (h *Handler) Login(c *gin.Context) {
	var req model.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request payload", err.Error())
		return
	}

	auth, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		h.writeAuthError(c, err, "Failed to log in")
		return
	}

	response.Success(c, http.StatusOK, "Logged in successfully", auth)
}

// Refresh handles POST /api/v1/auth/refresh
func (h *Handler) Refresh(c *gin.Context) {
	var req struct {
		RefreshToken string `json:"refresh_token" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request payload", err.Error())
		return
	}

	auth, err := h.service.Refresh(c.Request.Context(), req.RefreshToken)
	if err != nil {
		h.writeAuthError(c, err, "Failed to refresh token")
		return
	}

	response.Success(c, http.StatusOK, "Token refreshed successfully", auth)
}

func (h *Handler) writeAuthError(c *gin.Context, err error, fallback string) {
	var validationErrs validation.Errors
	switch {
	case errors.As(err, &validationErrs):
		response.Error(c, http.StatusBadRequest, "Validation failed", validationErrs)
	case errors.Is(err, model.ErrPasswordsDoNotMatch):
		response.Error(c, http.StatusBadRequest, "Passwords do not match", err.Error())
	case errors.Is(err, model.ErrUsernameAlreadyExists),
		errors.Is(err, model.ErrEmailAlreadyExists):
		response.Error(c, http.StatusConflict, "Account already exists", err.Error())
	case errors.Is(err, model.ErrInvalidCredentials):
		response.Error(c, http.StatusUnauthorized, "Invalid credentials", err.Error())
	case errors.Is(err, model.ErrAccountLocked):
		response.Error(c, http.StatusLocked, "Account temporarily locked", err.Error())
	case errors.Is(err, model.ErrAccountInactive):
		response.Error(c, http.StatusForbidden, "Account is inactive", err.Error())
	default:
		response.Error(c, http.StatusInternalServerError, fallback, err.Error())
	}
}
