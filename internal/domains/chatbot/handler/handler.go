package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"smarttrack-backend/internal/domains/chatbot/model"
	"smarttrack-backend/internal/domains/chatbot/service"
	"smarttrack-backend/internal/shared/response"
)

type Handler struct {
	service service.Service
}

// NewHandler creates a new chatbot handler
func NewHandler(service service.Service) *Handler {
	return &Handler{service: service}
}

// Chat handles POST /api/v1/chat
func (h *Handler) Chat(c *gin.Context) {
	var req model.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request payload", err.Error())
		return
	}

	reply, err := h.service.Reply(c.Request.Context(), req)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to generate reply", err.Error())
		return
	}

	response.Success(c, http.StatusOK, "Reply generated successfully", reply)
}
