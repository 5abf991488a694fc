package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"journal-backend/internal/domains/article"
	"journal-backend/internal/shared/middleware"
	"journal-backend/internal/shared/response"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// stubService records the last request and returns canned results.
type stubService struct {
	submitted    *article.SubmitRequest
	submitResult *article.Article
	submitErr    error

	listResult []*article.Article
	listErr    error
}

func (s *stubService) Submit(ctx context.Context, req article.SubmitRequest) (*article.Article, error) {
	s.submitted = &req
	if s.submitErr != nil {
		return nil, s.submitErr
	}
	return s.submitResult, nil
}

func (s *stubService) ListForUser(ctx context.Context, userID primitive.ObjectID, email string) ([]*article.Article, error) {
	return s.listResult, s.listErr
}

func (s *stubService) Update(ctx context.Context, id primitive.ObjectID, req article.UpdateRequest) (*article.Article, error) {
	return s.submitResult, s.submitErr
}

func (s *stubService) ListByJournal(ctx context.Context, journalID string) ([]*article.Article, error) {
	return s.listResult, s.listErr
}

func (s *stubService) UpdateReview(ctx context.Context, articleID primitive.ObjectID, reviewerEmail string, patch article.ReviewPatch) (*article.Article, error) {
	return s.submitResult, s.submitErr
}

func (s *stubService) ListForReviewer(ctx context.Context, email string) ([]*article.Article, error) {
	return s.listResult, s.listErr
}

func (s *stubService) AssignReviewers(ctx context.Context, articleID primitive.ObjectID, req article.AssignReviewersRequest) (*article.Article, error) {
	return s.submitResult, s.submitErr
}

func identityMiddleware(userID primitive.ObjectID, email string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.CtxUserID, userID.Hex())
		c.Set(middleware.CtxUserEmail, email)
		c.Next()
	}
}

func buildSubmitForm(t *testing.T, fields map[string]string) (*bytes.Buffer, string) {
	t.Helper()

	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)

	for key, value := range fields {
		require.NoError(t, w.WriteField(key, value))
	}

	part, err := w.CreateFormFile("file", "paper.pdf")
	require.NoError(t, err)
	_, err = part.Write([]byte("%PDF-1.4 manuscript"))
	require.NoError(t, err)

	require.NoError(t, w.Close())
	return body, w.FormDataContentType()
}

func TestSubmit_ParsesMultipartAndStoresFile(t *testing.T) {
	uploadDir := t.TempDir()
	userID := primitive.NewObjectID()

	svc := &stubService{submitResult: &article.Article{Title: "Adaptive Mesh Refinement"}}
	h := NewArticleHandler(svc, uploadDir)

	router := gin.New()
	router.POST("/articles", identityMiddleware(userID, "dana@uni.edu"), h.Submit)

	body, contentType := buildSubmitForm(t, map[string]string{
		"userId":    userID.Hex(),
		"title":     "Adaptive Mesh Refinement",
		"abstract":  "A study of refinement strategies.",
		"keywords":  `["mesh","refinement"]`,
		"authors":   `[{"name":"Dana Cole","email":"dana@uni.edu","affiliation":"Uni"}]`,
		"journalId": "J1",
	})

	req := httptest.NewRequest(http.MethodPost, "/articles", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var envelope response.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.True(t, envelope.Success)

	// The decoded form reached the service intact.
	require.NotNil(t, svc.submitted)
	assert.Equal(t, "J1", svc.submitted.JournalID)
	assert.Equal(t, []string{"mesh", "refinement"}, svc.submitted.Keywords)
	require.Len(t, svc.submitted.Authors, 1)
	assert.Equal(t, "dana@uni.edu", svc.submitted.Authors[0].Email)

	// The manuscript landed in the upload dir under the generated name.
	require.NotEmpty(t, svc.submitted.FileRef)
	stored, err := os.ReadFile(filepath.Join(uploadDir, svc.submitted.FileRef))
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.4 manuscript", string(stored))
}

func TestSubmit_MissingFile(t *testing.T) {
	h := NewArticleHandler(&stubService{}, t.TempDir())

	router := gin.New()
	router.POST("/articles", h.Submit)

	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	require.NoError(t, w.WriteField("title", "No File"))
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/articles", body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSubmit_MalformedKeywordsJSON(t *testing.T) {
	h := NewArticleHandler(&stubService{}, t.TempDir())

	router := gin.New()
	router.POST("/articles", h.Submit)

	body, contentType := buildSubmitForm(t, map[string]string{
		"title":    "Bad Keywords",
		"keywords": `not-json`,
	})

	req := httptest.NewRequest(http.MethodPost, "/articles", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListForUser_MapsDomainErrorToEnvelope(t *testing.T) {
	svc := &stubService{listErr: article.NewNoArticlesFound()}
	h := NewArticleHandler(svc, t.TempDir())

	router := gin.New()
	router.GET("/articles", identityMiddleware(primitive.NewObjectID(), "dana@uni.edu"), h.ListForUser)

	req := httptest.NewRequest(http.MethodGet, "/articles", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)

	var envelope response.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.False(t, envelope.Success)
}

func TestUpdate_InvalidID(t *testing.T) {
	h := NewArticleHandler(&stubService{}, t.TempDir())

	router := gin.New()
	router.PUT("/articles/:id", h.Update)

	req := httptest.NewRequest(http.MethodPut, "/articles/not-an-id", bytes.NewBufferString(`{}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAssignReviewers_BindsRequest(t *testing.T) {
	svc := &stubService{submitResult: &article.Article{Title: "Sparse Solvers"}}
	h := NewArticleHandler(svc, t.TempDir())

	router := gin.New()
	router.POST("/articles/:id/reviewers", h.AssignReviewers)

	payload := `{"reviewerIds":["` + primitive.NewObjectID().Hex() + `"]}`
	req := httptest.NewRequest(http.MethodPost, "/articles/"+primitive.NewObjectID().Hex()+"/reviewers", bytes.NewBufferString(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}
