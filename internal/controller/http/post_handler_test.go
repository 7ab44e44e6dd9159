package http

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"blogicum/internal/entity"
	"blogicum/internal/usecase"
	"blogicum/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockPostUseCase is a mock implementation of PostUseCase
type MockPostUseCase struct {
	mock.Mock
}

func (m *MockPostUseCase) ListPublished(page int) (*usecase.PostPage, error) {
	args := m.Called(page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*usecase.PostPage), args.Error(1)
}

func (m *MockPostUseCase) ListByCategory(slug string, page int) (*entity.Category, *usecase.PostPage, error) {
	args := m.Called(slug, page)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(*entity.Category), args.Get(1).(*usecase.PostPage), args.Error(2)
}

func (m *MockPostUseCase) ListByProfile(username, actorID string, page int) (*entity.User, *usecase.PostPage, error) {
	args := m.Called(username, actorID, page)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(*entity.User), args.Get(1).(*usecase.PostPage), args.Error(2)
}

func (m *MockPostUseCase) GetPost(id, actorID string) (*entity.Post, error) {
	args := m.Called(id, actorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Post), args.Error(1)
}

func (m *MockPostUseCase) CreatePost(actorID string, input usecase.CreatePostInput) (*entity.Post, error) {
	args := m.Called(actorID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Post), args.Error(1)
}

func (m *MockPostUseCase) UpdatePost(actorID, id string, input usecase.UpdatePostInput) (*entity.Post, error) {
	args := m.Called(actorID, id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Post), args.Error(1)
}

func (m *MockPostUseCase) DeletePost(actorID, id string) error {
	args := m.Called(actorID, id)
	return args.Error(0)
}

func (m *MockPostUseCase) UploadImage(actorID, postID string, file io.Reader, filename, contentType string) (*entity.Post, error) {
	args := m.Called(actorID, postID, file, filename, contentType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Post), args.Error(1)
}

var _ usecase.PostUseCase = (*MockPostUseCase)(nil)

func setupTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func TestListPosts_Success(t *testing.T) {
	mockUseCase := new(MockPostUseCase)
	logger := logger.New()
	handler := NewPostHandler(mockUseCase, logger)

	router := setupTestRouter()
	router.GET("/posts", handler.ListPosts)

	mockPage := &usecase.PostPage{
		Posts: []*entity.Post{
			{ID: "post-1", AuthorID: "author-1", Title: "Post 1", IsPublished: true},
			{ID: "post-2", AuthorID: "author-2", Title: "Post 2", IsPublished: true},
		},
		Total:      2,
		Page:       1,
		TotalPages: 1,
	}

	mockUseCase.On("ListPublished", 1).Return(mockPage, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/posts", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	posts := response["posts"].([]interface{})
	assert.Equal(t, 2, len(posts))
	assert.Equal(t, float64(2), response["total"])

	mockUseCase.AssertExpectations(t)
}

func TestListPosts_PageParam(t *testing.T) {
	mockUseCase := new(MockPostUseCase)
	logger := logger.New()
	handler := NewPostHandler(mockUseCase, logger)

	router := setupTestRouter()
	router.GET("/posts", handler.ListPosts)

	mockUseCase.On("ListPublished", 3).Return(&usecase.PostPage{Posts: []*entity.Post{}, Page: 3}, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/posts?page=3", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	mockUseCase.AssertExpectations(t)
}

func TestListPosts_BadPageDefaultsToFirst(t *testing.T) {
	mockUseCase := new(MockPostUseCase)
	logger := logger.New()
	handler := NewPostHandler(mockUseCase, logger)

	router := setupTestRouter()
	router.GET("/posts", handler.ListPosts)

	mockUseCase.On("ListPublished", 1).Return(&usecase.PostPage{Posts: []*entity.Post{}, Page: 1}, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/posts?page=banana", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	mockUseCase.AssertExpectations(t)
}

func TestListCategoryPosts_Success(t *testing.T) {
	mockUseCase := new(MockPostUseCase)
	logger := logger.New()
	handler := NewPostHandler(mockUseCase, logger)

	router := setupTestRouter()
	router.GET("/categories/:slug/posts", handler.ListCategoryPosts)

	category := &entity.Category{ID: "cat-1", Title: "Travel", Slug: "travel", IsPublished: true}
	page := &usecase.PostPage{
		Posts:      []*entity.Post{{ID: "post-1", Title: "Post 1"}},
		Total:      1,
		Page:       1,
		TotalPages: 1,
	}

	mockUseCase.On("ListByCategory", "travel", 1).Return(category, page, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/categories/travel/posts", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.NotNil(t, response["category"])
	assert.NotNil(t, response["posts"])

	mockUseCase.AssertExpectations(t)
}

func TestListCategoryPosts_NotFound(t *testing.T) {
	mockUseCase := new(MockPostUseCase)
	logger := logger.New()
	handler := NewPostHandler(mockUseCase, logger)

	router := setupTestRouter()
	router.GET("/categories/:slug/posts", handler.ListCategoryPosts)

	mockUseCase.On("ListByCategory", "hidden", 1).Return(nil, nil, usecase.ErrNotFound)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/categories/hidden/posts", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	mockUseCase.AssertExpectations(t)
}

func TestGetPost_Success(t *testing.T) {
	mockUseCase := new(MockPostUseCase)
	logger := logger.New()
	handler := NewPostHandler(mockUseCase, logger)

	router := setupTestRouter()
	router.GET("/posts/:id", handler.GetPost)

	mockPost := &entity.Post{
		ID:          "post-123",
		AuthorID:    "author-123",
		Title:       "Test Post",
		IsPublished: true,
	}

	mockUseCase.On("GetPost", "post-123", "").Return(mockPost, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/posts/post-123", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	mockUseCase.AssertExpectations(t)
}

func TestGetPost_HiddenReportsNotFound(t *testing.T) {
	mockUseCase := new(MockPostUseCase)
	logger := logger.New()
	handler := NewPostHandler(mockUseCase, logger)

	router := setupTestRouter()
	router.GET("/posts/:id", func(c *gin.Context) {
		c.Set("user_id", "visitor-1")
		handler.GetPost(c)
	})

	mockUseCase.On("GetPost", "post-hidden", "visitor-1").Return(nil, usecase.ErrNotFound)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/posts/post-hidden", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, "Post not found", response["error"])

	mockUseCase.AssertExpectations(t)
}

func TestCreatePost_Success(t *testing.T) {
	mockUseCase := new(MockPostUseCase)
	logger := logger.New()
	handler := NewPostHandler(mockUseCase, logger)

	router := setupTestRouter()
	router.POST("/posts", func(c *gin.Context) {
		c.Set("user_id", "author-123")
		handler.CreatePost(c)
	})

	mockPost := &entity.Post{
		ID:       "post-123",
		AuthorID: "author-123",
		Title:    "New Post",
		Text:     "Body",
	}

	input := usecase.CreatePostInput{Title: "New Post", Text: "Body"}
	mockUseCase.On("CreatePost", "author-123", input).Return(mockPost, nil)

	body := `{"title":"New Post","text":"Body"}`
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/posts", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	mockUseCase.AssertExpectations(t)
}

func TestCreatePost_MissingTitle(t *testing.T) {
	mockUseCase := new(MockPostUseCase)
	logger := logger.New()
	handler := NewPostHandler(mockUseCase, logger)

	router := setupTestRouter()
	router.POST("/posts", handler.CreatePost)

	body := `{"text":"Body"}`
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/posts", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockUseCase.AssertExpectations(t)
}

func TestCreatePost_ScheduledPubDate(t *testing.T) {
	mockUseCase := new(MockPostUseCase)
	logger := logger.New()
	handler := NewPostHandler(mockUseCase, logger)

	router := setupTestRouter()
	router.POST("/posts", func(c *gin.Context) {
		c.Set("user_id", "author-123")
		handler.CreatePost(c)
	})

	pubDate := time.Date(2030, 1, 2, 15, 4, 5, 0, time.UTC)
	input := usecase.CreatePostInput{Title: "Scheduled", Text: "Later", PubDate: &pubDate}
	mockPost := &entity.Post{ID: "post-123", AuthorID: "author-123", Title: "Scheduled", PubDate: pubDate}

	mockUseCase.On("CreatePost", "author-123", input).Return(mockPost, nil)

	body := `{"title":"Scheduled","text":"Later","pub_date":"2030-01-02T15:04:05Z"}`
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/posts", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	mockUseCase.AssertExpectations(t)
}

func TestCreatePost_UnknownCategory(t *testing.T) {
	mockUseCase := new(MockPostUseCase)
	logger := logger.New()
	handler := NewPostHandler(mockUseCase, logger)

	router := setupTestRouter()
	router.POST("/posts", func(c *gin.Context) {
		c.Set("user_id", "author-123")
		handler.CreatePost(c)
	})

	input := usecase.CreatePostInput{Title: "Bad Ref", Text: "Body", CategoryID: "nope"}
	mockUseCase.On("CreatePost", "author-123", input).Return(nil, usecase.ErrInvalidInput)

	body := `{"title":"Bad Ref","text":"Body","category_id":"nope"}`
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/posts", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockUseCase.AssertExpectations(t)
}

func TestUpdatePost_Success(t *testing.T) {
	mockUseCase := new(MockPostUseCase)
	logger := logger.New()
	handler := NewPostHandler(mockUseCase, logger)

	router := setupTestRouter()
	router.PUT("/posts/:id", func(c *gin.Context) {
		c.Set("user_id", "author-123")
		handler.UpdatePost(c)
	})

	mockPost := &entity.Post{ID: "post-123", AuthorID: "author-123", Title: "New Title"}

	input := usecase.UpdatePostInput{Title: "New Title", Text: "New body"}
	mockUseCase.On("UpdatePost", "author-123", "post-123", input).Return(mockPost, nil)

	body := `{"title":"New Title","text":"New body"}`
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("PUT", "/posts/post-123", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	mockUseCase.AssertExpectations(t)
}

func TestUpdatePost_NotAuthorReportsNotFound(t *testing.T) {
	mockUseCase := new(MockPostUseCase)
	logger := logger.New()
	handler := NewPostHandler(mockUseCase, logger)

	router := setupTestRouter()
	router.PUT("/posts/:id", func(c *gin.Context) {
		c.Set("user_id", "intruder-1")
		handler.UpdatePost(c)
	})

	input := usecase.UpdatePostInput{Title: "Hijack", Text: "Body"}
	mockUseCase.On("UpdatePost", "intruder-1", "post-123", input).Return(nil, usecase.ErrNotFound)

	body := `{"title":"Hijack","text":"Body"}`
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("PUT", "/posts/post-123", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	mockUseCase.AssertExpectations(t)
}

func TestDeletePost_Success(t *testing.T) {
	mockUseCase := new(MockPostUseCase)
	logger := logger.New()
	handler := NewPostHandler(mockUseCase, logger)

	router := setupTestRouter()
	router.DELETE("/posts/:id", func(c *gin.Context) {
		c.Set("user_id", "author-123")
		handler.DeletePost(c)
	})

	mockUseCase.On("DeletePost", "author-123", "post-123").Return(nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("DELETE", "/posts/post-123", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, "Post deleted", response["message"])

	mockUseCase.AssertExpectations(t)
}

func TestDeletePost_NotFound(t *testing.T) {
	mockUseCase := new(MockPostUseCase)
	logger := logger.New()
	handler := NewPostHandler(mockUseCase, logger)

	router := setupTestRouter()
	router.DELETE("/posts/:id", handler.DeletePost)

	mockUseCase.On("DeletePost", "", "post-gone").Return(usecase.ErrNotFound)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("DELETE", "/posts/post-gone", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	mockUseCase.AssertExpectations(t)
}

func TestUploadImage_MissingFile(t *testing.T) {
	mockUseCase := new(MockPostUseCase)
	logger := logger.New()
	handler := NewPostHandler(mockUseCase, logger)

	router := setupTestRouter()
	router.POST("/posts/:id/image", func(c *gin.Context) {
		c.Set("user_id", "author-123")
		handler.UploadImage(c)
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/posts/post-123/image", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockUseCase.AssertExpectations(t)
}

func TestNewPostHandler(t *testing.T) {
	mockUseCase := new(MockPostUseCase)
	logger := logger.New()
	handler := NewPostHandler(mockUseCase, logger)

	assert.NotNil(t, handler)
}
