package handlers

import (
	"errors"
	"net/http"

	request "brightworks/internal/adapter/http/dto/request"
	response "brightworks/internal/adapter/http/dto/response"
	"brightworks/internal/domain/entities"
	"brightworks/internal/usecase"
	"brightworks/internal/usecase/interfaces"
	"brightworks/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidQuotePayload = pkg.NewDomainErrorSimple("INVALID_QUOTE_INPUT", "Invalid quote payload", http.StatusBadRequest)

// QuoteHandler handles HTTP requests for quote requests: the public form
// submit, portal listings and the admin approval actions.

type QuoteHandler struct {
	usecase usecase.IQuoteUseCase
}

func NewQuoteHandler(uc usecase.IQuoteUseCase) *QuoteHandler {
	return &QuoteHandler{usecase: uc}
}

// CreateQuote accepts the public quote-request form.
func (h *QuoteHandler) CreateQuote(c *gin.Context) {
	var payload request.QuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	quote, err := h.usecase.Create(c.Request.Context(), payload.ToInput())
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromQuote(quote))
}

func (h *QuoteHandler) GetQuote(c *gin.Context) {
	quote, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromQuote(quote))
}

// ListQuotes is the admin-global listing, optionally filtered by status.
func (h *QuoteHandler) ListQuotes(c *gin.Context) {
	status := entities.QuoteStatus(c.Query("status"))
	quotes, err := h.usecase.ListAll(c.Request.Context(), actorFrom(c), status)
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromQuotes(quotes))
}

func (h *QuoteHandler) ListQuotesForUser(c *gin.Context) {
	quotes, err := h.usecase.ListForUser(c.Request.Context(), c.Param("user_id"))
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromQuotes(quotes))
}

func (h *QuoteHandler) ApproveQuote(c *gin.Context) {
	h.patchStatus(c, entities.QuoteStatusApproved)
}

func (h *QuoteHandler) RejectQuote(c *gin.Context) {
	h.patchStatus(c, entities.QuoteStatusRejected)
}

func (h *QuoteHandler) patchStatus(c *gin.Context, status entities.QuoteStatus) {
	quote, err := h.usecase.SetStatus(c.Request.Context(), actorFrom(c), c.Param("id"), status)
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromQuote(quote))
}

func mapQuoteError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrMissingContact), errors.Is(err, usecase.ErrMissingServiceCategory):
		return pkg.NewDomainErrorSimple("VALIDATION_ERROR", "Missing required quote fields", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidQuoteID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidTransition):
		return pkg.NewDomainErrorSimple("INVALID_TRANSITION", "Status change not allowed from the current state", http.StatusConflict)
	case errors.Is(err, usecase.ErrQuoteNotFound):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_FOUND", "Quote not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrActorForbidden):
		return pkg.NewDomainErrorSimple("FORBIDDEN", "Not allowed for this actor", http.StatusForbidden)
	case errors.Is(err, interfaces.ErrStorageUnavailable):
		return pkg.NewDomainErrorSimple("STORAGE_UNAVAILABLE", "Storage temporarily unavailable, retry later", http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
