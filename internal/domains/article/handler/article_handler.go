package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"journal-backend/internal/domains/article"
	"journal-backend/internal/shared/middleware"
	"journal-backend/internal/shared/response"
	"journal-backend/pkg/logger"
)

// ArticleHandler exposes the article endpoints.
type ArticleHandler struct {
	service   article.Service
	uploadDir string
}

func NewArticleHandler(service article.Service, uploadDir string) *ArticleHandler {
	return &ArticleHandler{
		service:   service,
		uploadDir: uploadDir,
	}
}

// Submit accepts a multipart submission: scalar fields plus JSON-encoded
// keywords and authors, and the manuscript file itself.
// POST /api/v1/articles
func (h *ArticleHandler) Submit(c *gin.Context) {
	req := article.SubmitRequest{
		UserID:    c.PostForm("userId"),
		Title:     c.PostForm("title"),
		Abstract:  c.PostForm("abstract"),
		JournalID: c.PostForm("journalId"),
	}

	if raw := c.PostForm("keywords"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &req.Keywords); err != nil {
			response.Error(c, http.StatusBadRequest, "keywords must be a JSON array of strings", err.Error())
			return
		}
	}
	if raw := c.PostForm("authors"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &req.Authors); err != nil {
			response.Error(c, http.StatusBadRequest, "authors must be a JSON array", err.Error())
			return
		}
	}

	file, err := c.FormFile("file")
	if err != nil {
		response.Error(c, http.StatusBadRequest, "manuscript file is required", err.Error())
		return
	}

	storedName := fmt.Sprintf("%s%s", uuid.New().String(), filepath.Ext(file.Filename))
	if err := c.SaveUploadedFile(file, filepath.Join(h.uploadDir, storedName)); err != nil {
		logger.Error("Failed to store manuscript", err)
		response.Error(c, http.StatusInternalServerError, "Failed to store manuscript file", nil)
		return
	}
	req.FileRef = storedName

	created, err := h.service.Submit(c.Request.Context(), req)
	if err != nil {
		status, message, code := article.GetErrorResponse(err)
		response.Error(c, status, message, gin.H{"code": code})
		return
	}

	response.Success(c, http.StatusCreated, "Article submitted successfully", created)
}

// ListForUser returns the caller's owned and authored articles.
// GET /api/v1/articles
func (h *ArticleHandler) ListForUser(c *gin.Context) {
	userID, err := primitive.ObjectIDFromHex(c.GetString(middleware.CtxUserID))
	if err != nil {
		response.Error(c, http.StatusUnauthorized, "Invalid caller identity", nil)
		return
	}
	email := c.GetString(middleware.CtxUserEmail)

	articles, err := h.service.ListForUser(c.Request.Context(), userID, email)
	if err != nil {
		status, message, code := article.GetErrorResponse(err)
		response.Error(c, status, message, gin.H{"code": code})
		return
	}

	response.Success(c, http.StatusOK, "Articles retrieved successfully", articles)
}

// Update replaces the mutable fields of an article.
// PUT /api/v1/articles/:id
func (h *ArticleHandler) Update(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		status, message, code := article.GetErrorResponse(article.NewInvalidArticleID(c.Param("id")))
		response.Error(c, status, message, gin.H{"code": code})
		return
	}

	var req article.UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	updated, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		status, message, code := article.GetErrorResponse(err)
		response.Error(c, status, message, gin.H{"code": code})
		return
	}

	response.Success(c, http.StatusOK, "Article updated successfully", updated)
}

// ListByJournal returns every article submitted to one journal.
// GET /api/v1/articles/journal/:journalId
func (h *ArticleHandler) ListByJournal(c *gin.Context) {
	articles, err := h.service.ListByJournal(c.Request.Context(), c.Param("journalId"))
	if err != nil {
		status, message, code := article.GetErrorResponse(err)
		response.Error(c, status, message, gin.H{"code": code})
		return
	}

	response.Success(c, http.StatusOK, "Articles retrieved successfully", articles)
}

// UpdateReview replaces the caller's reviewer entry on an article.
// PUT /api/v1/articles/:id/review
func (h *ArticleHandler) UpdateReview(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		status, message, code := article.GetErrorResponse(article.NewInvalidArticleID(c.Param("id")))
		response.Error(c, status, message, gin.H{"code": code})
		return
	}

	var patch article.ReviewPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	updated, err := h.service.UpdateReview(c.Request.Context(), id, patch.Email, patch)
	if err != nil {
		status, message, code := article.GetErrorResponse(err)
		response.Error(c, status, message, gin.H{"code": code})
		return
	}

	response.Success(c, http.StatusOK, "Review updated successfully", updated)
}

// ListForReviewer returns the articles assigned to the caller, each
// carrying only the caller's own review entry.
// GET /api/v1/articles/assigned
func (h *ArticleHandler) ListForReviewer(c *gin.Context) {
	email := c.GetString(middleware.CtxUserEmail)

	articles, err := h.service.ListForReviewer(c.Request.Context(), email)
	if err != nil {
		status, message, code := article.GetErrorResponse(err)
		response.Error(c, status, message, gin.H{"code": code})
		return
	}

	response.Success(c, http.StatusOK, "Assigned articles retrieved successfully", articles)
}

// AssignReviewers attaches roster reviewers to an article.
// POST /api/v1/articles/:id/reviewers
func (h *ArticleHandler) AssignReviewers(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		status, message, code := article.GetErrorResponse(article.NewInvalidArticleID(c.Param("id")))
		response.Error(c, status, message, gin.H{"code": code})
		return
	}

	var req article.AssignReviewersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	updated, err := h.service.AssignReviewers(c.Request.Context(), id, req)
	if err != nil {
		status, message, code := article.GetErrorResponse(err)
		response.Error(c, status, message, gin.H{"code": code})
		return
	}

	response.Success(c, http.StatusOK, "Reviewers assigned successfully", updated)
}
