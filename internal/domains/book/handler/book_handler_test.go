package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"library-manager/internal/domains/book/model"
)

// fakeBookService lets each test plug in just the behavior it needs.
type fakeBookService struct {
	CreateBookFn func(ctx context.Context, req model.CreateBookRequest) (*model.BookResponse, error)
	ListBooksFn  func(ctx context.Context, req model.ListBooksRequest) (*model.ListBooksResponse, error)
	UpdateBookFn func(ctx context.Context, id uuid.UUID, req model.UpdateBookRequest) error
	DeleteBookFn func(ctx context.Context, id uuid.UUID) error
}

func (f *fakeBookService) CreateBook(ctx context.Context, req model.CreateBookRequest) (*model.BookResponse, error) {
	return f.CreateBookFn(ctx, req)
}

func (f *fakeBookService) ListBooks(ctx context.Context, req model.ListBooksRequest) (*model.ListBooksResponse, error) {
	return f.ListBooksFn(ctx, req)
}

func (f *fakeBookService) UpdateBook(ctx context.Context, id uuid.UUID, req model.UpdateBookRequest) error {
	return f.UpdateBookFn(ctx, id, req)
}

func (f *fakeBookService) DeleteBook(ctx context.Context, id uuid.UUID) error {
	return f.DeleteBookFn(ctx, id)
}

func setupBookRouter(svc *fakeBookService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	h := NewBookHandler(svc)
	books := router.Group("/api/v1/books")
	{
		books.POST("", h.Create)
		books.GET("", h.List)
		books.PUT("/:id", h.Update)
		books.DELETE("/:id", h.Delete)
	}
	return router
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body interface{}) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return w, env
}

func TestBookHandler_Create(t *testing.T) {
	svc := &fakeBookService{
		CreateBookFn: func(_ context.Context, req model.CreateBookRequest) (*model.BookResponse, error) {
			return &model.BookResponse{
				ID:            uuid.New(),
				Title:         req.Title,
				Author:        req.Author,
				ISBN:          req.ISBN,
				PublishedYear: req.PublishedYear,
			}, nil
		},
	}
	router := setupBookRouter(svc)

	w, env := doJSON(t, router, http.MethodPost, "/api/v1/books", model.CreateBookRequest{
		Title:         "Dune",
		Author:        "Frank Herbert",
		ISBN:          "9780441013593",
		PublishedYear: 1965,
	})

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.True(t, env.Success)

	var created model.BookResponse
	require.NoError(t, json.Unmarshal(env.Data, &created))
	assert.Equal(t, "Dune", created.Title)
	assert.NotEqual(t, uuid.Nil, created.ID)
}

func TestBookHandler_Create_ValidationFailed(t *testing.T) {
	router := setupBookRouter(&fakeBookService{})

	w, env := doJSON(t, router, http.MethodPost, "/api/v1/books", model.CreateBookRequest{
		Title:         "Dune",
		Author:        "Frank Herbert",
		ISBN:          "not-an-isbn",
		PublishedYear: 1965,
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, env.Success)
	require.NotNil(t, env.Error)
	assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
}

func TestBookHandler_Create_DuplicateISBN(t *testing.T) {
	svc := &fakeBookService{
		CreateBookFn: func(_ context.Context, req model.CreateBookRequest) (*model.BookResponse, error) {
			return nil, model.NewDuplicateISBNError(req.ISBN)
		},
	}
	router := setupBookRouter(svc)

	w, env := doJSON(t, router, http.MethodPost, "/api/v1/books", model.CreateBookRequest{
		Title:         "Dune",
		Author:        "Frank Herbert",
		ISBN:          "9780441013593",
		PublishedYear: 1965,
	})

	assert.Equal(t, http.StatusConflict, w.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "CONFLICT", env.Error.Code)
}

func TestBookHandler_Update_NotFound(t *testing.T) {
	svc := &fakeBookService{
		UpdateBookFn: func(_ context.Context, id uuid.UUID, _ model.UpdateBookRequest) error {
			return model.NewBookNotFoundError(id)
		},
	}
	router := setupBookRouter(svc)

	w, env := doJSON(t, router, http.MethodPut, "/api/v1/books/"+uuid.NewString(), model.UpdateBookRequest{
		Title:         "Dune",
		Author:        "Frank Herbert",
		ISBN:          "9780441013593",
		PublishedYear: 1965,
	})

	assert.Equal(t, http.StatusNotFound, w.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "NOT_FOUND", env.Error.Code)
}

func TestBookHandler_Update_InvalidID(t *testing.T) {
	router := setupBookRouter(&fakeBookService{})

	w, _ := doJSON(t, router, http.MethodPut, "/api/v1/books/not-a-uuid", model.UpdateBookRequest{
		Title:         "Dune",
		Author:        "Frank Herbert",
		ISBN:          "9780441013593",
		PublishedYear: 1965,
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestBookHandler_Delete_HasItems(t *testing.T) {
	svc := &fakeBookService{
		DeleteBookFn: func(_ context.Context, _ uuid.UUID) error {
			return model.ErrBookHasItems
		},
	}
	router := setupBookRouter(svc)

	w, env := doJSON(t, router, http.MethodDelete, "/api/v1/books/"+uuid.NewString(), nil)

	assert.Equal(t, http.StatusConflict, w.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "CONFLICT", env.Error.Code)
}

func TestBookHandler_List_DefaultPaging(t *testing.T) {
	var captured model.ListBooksRequest
	svc := &fakeBookService{
		ListBooksFn: func(_ context.Context, req model.ListBooksRequest) (*model.ListBooksResponse, error) {
			captured = req
			return &model.ListBooksResponse{
				Items: []model.BookResponse{},
				Page:  req.Page,
				Limit: req.Limit,
			}, nil
		},
	}
	router := setupBookRouter(svc)

	w, _ := doJSON(t, router, http.MethodGet, "/api/v1/books", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, captured.Page)
	assert.Equal(t, 20, captured.Limit)
	assert.Equal(t, "title", captured.SortBy)
	assert.Equal(t, "asc", captured.Order)
}

func TestBookHandler_List_LimitCapped(t *testing.T) {
	var captured model.ListBooksRequest
	svc := &fakeBookService{
		ListBooksFn: func(_ context.Context, req model.ListBooksRequest) (*model.ListBooksResponse, error) {
			captured = req
			return &model.ListBooksResponse{}, nil
		},
	}
	router := setupBookRouter(svc)

	w, _ := doJSON(t, router, http.MethodGet, "/api/v1/books?limit=5000", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 100, captured.Limit)
}
