package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"library-manager/internal/domains/book/model"
	"library-manager/internal/domains/book/service"
	"library-manager/internal/shared/response"
)

type BookHandler struct {
	service service.ServiceInterface
}

func NewBookHandler(svc service.ServiceInterface) *BookHandler {
	return &BookHandler{
		service: svc,
	}
}

// Create - POST /v1/books
func (h *BookHandler) Create(c *gin.Context) {
	var req model.CreateBookRequest

	if err := c.BindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := req.Validate(); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_FAILED", "Invalid book payload", err)
		return
	}

	resp, err := h.service.CreateBook(c.Request.Context(), req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, resp)
}

// List - GET /v1/books?page=1&limit=20&sort_by=title&order=asc
func (h *BookHandler) List(c *gin.Context) {
	req := model.ListBooksRequest{
		Page:   parsePositiveInt(c.Query("page"), 1),
		Limit:  parseLimit(c.Query("limit"), 20),
		SortBy: c.DefaultQuery("sort_by", "title"),
		Order:  c.DefaultQuery("order", "asc"),
	}

	resp, err := h.service.ListBooks(c.Request.Context(), req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp)
}

// Update - PUT /v1/books/:id
func (h *BookHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid UUID format")
		return
	}

	var req model.UpdateBookRequest
	if err := c.BindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := req.Validate(); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_FAILED", "Invalid book payload", err)
		return
	}

	if err := h.service.UpdateBook(c.Request.Context(), id, req); err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, nil)
}

// Delete - DELETE /v1/books/:id
func (h *BookHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid UUID format")
		return
	}

	if err := h.service.DeleteBook(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, model.MessageResponse{
		Message: "Book deleted successfully",
	})
}

func (h *BookHandler) handleError(c *gin.Context, err error) {
	switch {
	case model.IsNotFoundError(err):
		response.NotFound(c, err.Error())
	case errors.Is(err, model.ErrISBNAlreadyExists):
		response.Conflict(c, err.Error())
	case errors.Is(err, model.ErrBookHasItems):
		response.Conflict(c, err.Error())
	case errors.Is(err, model.ErrInvalidSort):
		response.BadRequest(c, err.Error())
	default:
		response.InternalServerError(c, "Internal server error")
	}
}

func parsePositiveInt(value string, fallback int) int {
	if value == "" {
		return fallback
	}
	n, err := strconv.Atoi(value)
	if err != nil || n < 1 {
		return fallback
	}
	return n
}

func parseLimit(value string, fallback int) int {
	n := parsePositiveInt(value, fallback)
	if n > 100 {
		return 100
	}
	return n
}
