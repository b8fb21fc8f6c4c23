package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	bookModel "library-manager/internal/domains/book/model"
	"library-manager/internal/domains/item/model"
	"library-manager/internal/domains/item/service"
	"library-manager/internal/shared/response"
)

type ItemHandler struct {
	service service.ServiceInterface
}

func NewItemHandler(svc service.ServiceInterface) *ItemHandler {
	return &ItemHandler{
		service: svc,
	}
}

// Create - POST /v1/library-items
func (h *ItemHandler) Create(c *gin.Context) {
	var req model.CreateLibraryItemRequest

	if err := c.BindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := req.Validate(); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_FAILED", "Invalid library item payload", err)
		return
	}

	resp, err := h.service.CreateLibraryItem(c.Request.Context(), req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, resp)
}

// List - GET /v1/library-items?page=1&limit=20
func (h *ItemHandler) List(c *gin.Context) {
	req := model.ListLibraryItemsRequest{
		Page:  parsePositiveInt(c.Query("page"), 1),
		Limit: parseLimit(c.Query("limit"), 20),
	}

	resp, err := h.service.ListLibraryItems(c.Request.Context(), req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp)
}

func (h *ItemHandler) handleError(c *gin.Context, err error) {
	switch {
	case bookModel.IsNotFoundError(err):
		response.NotFound(c, err.Error())
	case errors.Is(err, model.ErrInvalidTotalCopies):
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
