package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"journal-backend/internal/domains/archive"
	"journal-backend/internal/shared/response"
)

// ArchiveHandler exposes the archive build and download endpoints.
type ArchiveHandler struct {
	service archive.Service
}

func NewArchiveHandler(service archive.Service) *ArchiveHandler {
	return &ArchiveHandler{
		service: service,
	}
}

// Build bundles named uploads into a staged zip archive.
// POST /api/v1/archives
func (h *ArchiveHandler) Build(c *gin.Context) {
	var req archive.BuildRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	result, err := h.service.Build(c.Request.Context(), req)
	if err != nil {
		status, message, code := archive.GetErrorResponse(err)
		response.Error(c, status, message, gin.H{"code": code})
		return
	}

	response.Success(c, http.StatusCreated, "Archive created successfully", result)
}

// Download streams a staged archive before it expires.
// GET /api/v1/archives/:fileName
func (h *ArchiveHandler) Download(c *gin.Context) {
	path, err := h.service.Resolve(c.Request.Context(), c.Param("fileName"))
	if err != nil {
		status, message, code := archive.GetErrorResponse(err)
		response.Error(c, status, message, gin.H{"code": code})
		return
	}

	c.FileAttachment(path, c.Param("fileName"))
}
