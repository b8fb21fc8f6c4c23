package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	itemModel "library-manager/internal/domains/item/model"
	"library-manager/internal/domains/loan/model"
	"library-manager/internal/domains/loan/service"
	readerModel "library-manager/internal/domains/reader/model"
	"library-manager/internal/shared/response"
)

type LoanHandler struct {
	service service.ServiceInterface
}

func NewLoanHandler(svc service.ServiceInterface) *LoanHandler {
	return &LoanHandler{
		service: svc,
	}
}

// Create - POST /v1/loans
func (h *LoanHandler) Create(c *gin.Context) {
	var req model.CreateLoanRequest

	if err := c.BindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := req.Validate(); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_FAILED", "Invalid loan payload", err)
		return
	}

	resp, err := h.service.CreateLoan(c.Request.Context(), req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, resp)
}

// Return - POST /v1/loans/:id/return
func (h *LoanHandler) Return(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid UUID format")
		return
	}

	resp, err := h.service.ReturnLoan(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp)
}

// ListForReader - GET /v1/readers/:id/loans
func (h *LoanHandler) ListForReader(c *gin.Context) {
	readerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid UUID format")
		return
	}

	req := model.ListLoansRequest{
		ReaderID: readerID,
		Page:     parsePositiveInt(c.Query("page"), 1),
		Limit:    parseLimit(c.Query("limit"), 20),
	}

	resp, err := h.service.ListLoansForReader(c.Request.Context(), req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp)
}

func (h *LoanHandler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, model.ErrLoanNotFound):
		response.NotFound(c, err.Error())
	case errors.Is(err, readerModel.ErrReaderNotFound):
		response.NotFound(c, err.Error())
	case errors.Is(err, itemModel.ErrItemNotFound):
		response.NotFound(c, err.Error())
	case errors.Is(err, itemModel.ErrItemNotAvailable):
		response.Conflict(c, err.Error())
	case errors.Is(err, model.ErrLoanAlreadyReturned):
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
