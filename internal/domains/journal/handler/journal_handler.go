package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"journal-backend/internal/domains/journal"
	"journal-backend/internal/shared/response"
)

// JournalHandler handles HTTP requests for the journal domain
type JournalHandler struct {
	service journal.Service
}

func NewJournalHandler(service journal.Service) *JournalHandler {
	return &JournalHandler{service: service}
}

// Create handles POST /journals
func (h *JournalHandler) Create(c *gin.Context) {
	var req journal.CreateRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request payload", err.Error())
		return
	}

	result, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		statusCode, message, code := journal.GetErrorResponse(err)
		response.Error(c, statusCode, message, code)
		return
	}

	response.Success(c, http.StatusCreated, "Journal created successfully", result)
}

// List handles GET /journals
func (h *JournalHandler) List(c *gin.Context) {
	results, err := h.service.List(c.Request.Context())
	if err != nil {
		statusCode, message, code := journal.GetErrorResponse(err)
		response.Error(c, statusCode, message, code)
		return
	}

	response.Success(c, http.StatusOK, "Journals retrieved successfully", results)
}

// Delete handles DELETE /journals/:id
func (h *JournalHandler) Delete(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		statusCode, message, code := journal.GetErrorResponse(journal.NewInvalidJournalID(c.Param("id")))
		response.Error(c, statusCode, message, code)
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		statusCode, message, code := journal.GetErrorResponse(err)
		response.Error(c, statusCode, message, code)
		return
	}

	response.Success(c, http.StatusOK, "Journal deleted successfully", nil)
}

// AssignEditor handles POST /journals/:id/editor
func (h *JournalHandler) AssignEditor(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		statusCode, message, code := journal.GetErrorResponse(journal.NewInvalidJournalID(c.Param("id")))
		response.Error(c, statusCode, message, code)
		return
	}

	var req journal.AssignEditorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request payload", err.Error())
		return
	}

	result, err := h.service.AssignEditor(c.Request.Context(), id, req)
	if err != nil {
		statusCode, message, code := journal.GetErrorResponse(err)
		response.Error(c, statusCode, message, code)
		return
	}

	response.Success(c, http.StatusCreated, "Editor assigned successfully", result)
}

// RemoveEditor handles DELETE /journals/:id/editor
func (h *JournalHandler) RemoveEditor(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		statusCode, message, code := journal.GetErrorResponse(journal.NewInvalidJournalID(c.Param("id")))
		response.Error(c, statusCode, message, code)
		return
	}

	if err := h.service.RemoveEditor(c.Request.Context(), id); err != nil {
		statusCode, message, code := journal.GetErrorResponse(err)
		response.Error(c, statusCode, message, code)
		return
	}

	response.Success(c, http.StatusOK, "Editor removed successfully", nil)
}
