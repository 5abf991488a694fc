package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"journal-backend/internal/domains/auth"
	"journal-backend/internal/shared/middleware"
	"journal-backend/internal/shared/response"
)

// AuthHandler handles HTTP requests for the auth domain
type AuthHandler struct {
	service auth.Service
}

func NewAuthHandler(service auth.Service) *AuthHandler {
	return &AuthHandler{service: service}
}

// Login handles POST /auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req auth.LoginRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request payload", err.Error())
		return
	}

	result, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		statusCode, message, code := auth.GetErrorResponse(err)
		response.Error(c, statusCode, message, code)
		return
	}

	response.Success(c, http.StatusOK, "Login successful", result)
}

// Me handles GET /auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.GetString(middleware.CtxUserID))
	if err != nil {
		response.Error(c, http.StatusUnauthorized, "Invalid identity in token", nil)
		return
	}

	result, err := h.service.Me(c.Request.Context(), id)
	if err != nil {
		statusCode, message, code := auth.GetErrorResponse(err)
		response.Error(c, statusCode, message, code)
		return
	}

	response.Success(c, http.StatusOK, "Account retrieved successfully", result)
}
