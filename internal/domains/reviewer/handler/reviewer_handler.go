package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"journal-backend/internal/domains/reviewer"
	"journal-backend/internal/shared/response"
)

// ReviewerHandler handles HTTP requests for the reviewer roster
type ReviewerHandler struct {
	service reviewer.Service
}

func NewReviewerHandler(service reviewer.Service) *ReviewerHandler {
	return &ReviewerHandler{service: service}
}

// Register handles POST /reviewers
func (h *ReviewerHandler) Register(c *gin.Context) {
	var req reviewer.RegisterRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request payload", err.Error())
		return
	}

	result, err := h.service.Register(c.Request.Context(), req)
	if err != nil {
		statusCode, message, code := reviewer.GetErrorResponse(err)
		response.Error(c, statusCode, message, code)
		return
	}

	response.Success(c, http.StatusCreated, "Reviewer registered successfully", result)
}

// RegisterBulk handles POST /reviewers/bulk
func (h *ReviewerHandler) RegisterBulk(c *gin.Context) {
	var records []reviewer.BulkRecord

	if err := c.ShouldBindJSON(&records); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request payload", err.Error())
		return
	}

	inserted, err := h.service.RegisterBulk(c.Request.Context(), records)
	if err != nil {
		statusCode, message, code := reviewer.GetErrorResponse(err)
		response.Error(c, statusCode, message, code)
		return
	}

	response.Success(c, http.StatusCreated, "Reviewers registered successfully", gin.H{"inserted": inserted})
}

// List handles GET /reviewers
func (h *ReviewerHandler) List(c *gin.Context) {
	results, err := h.service.List(c.Request.Context())
	if err != nil {
		statusCode, message, code := reviewer.GetErrorResponse(err)
		response.Error(c, statusCode, message, code)
		return
	}

	response.Success(c, http.StatusOK, "Reviewers retrieved successfully", results)
}

// Remove handles DELETE /reviewers/:id
func (h *ReviewerHandler) Remove(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		statusCode, message, code := reviewer.GetErrorResponse(reviewer.NewInvalidReviewerID(c.Param("id")))
		response.Error(c, statusCode, message, code)
		return
	}

	if err := h.service.Remove(c.Request.Context(), id); err != nil {
		statusCode, message, code := reviewer.GetErrorResponse(err)
		response.Error(c, statusCode, message, code)
		return
	}

	response.Success(c, http.StatusOK, "Reviewer removed successfully", nil)
}
