package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"library-manager/internal/domains/reader/model"
	"library-manager/internal/domains/reader/service"
	"library-manager/internal/shared/response"
)

type ReaderHandler struct {
	service service.ServiceInterface
}

func NewReaderHandler(svc service.ServiceInterface) *ReaderHandler {
	return &ReaderHandler{
		service: svc,
	}
}

// Create - POST /v1/readers
func (h *ReaderHandler) Create(c *gin.Context) {
	var req model.CreateReaderRequest

	if err := c.BindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := req.Validate(); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_FAILED", "Invalid reader payload", err)
		return
	}

	resp, err := h.service.CreateReader(c.Request.Context(), req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, resp)
}

// List - GET /v1/readers?page=1&limit=20
func (h *ReaderHandler) List(c *gin.Context) {
	req := model.ListReadersRequest{
		Page:  parsePositiveInt(c.Query("page"), 1),
		Limit: parseLimit(c.Query("limit"), 20),
	}

	resp, err := h.service.ListReaders(c.Request.Context(), req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp)
}

func (h *ReaderHandler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, model.ErrReaderNotFound):
		response.NotFound(c, err.Error())
	case errors.Is(err, model.ErrEmailAlreadyExists):
		response.Conflict(c, err.Error())
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
