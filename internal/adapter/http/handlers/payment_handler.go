package handlers

import (
	"errors"
	"log"
	"net/http"

	request "brightworks/internal/adapter/http/dto/request"
	response "brightworks/internal/adapter/http/dto/response"
	"brightworks/internal/domain/entities"
	"brightworks/internal/usecase"
	"brightworks/internal/usecase/interfaces"
	"brightworks/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidPaymentPayload = pkg.NewDomainErrorSimple("INVALID_PAYMENT_INPUT", "Invalid payment payload", http.StatusBadRequest)

// PaymentHandler handles HTTP requests for the payment ledger.

type PaymentHandler struct {
	usecase usecase.IPaymentUseCase
}

func NewPaymentHandler(uc usecase.IPaymentUseCase) *PaymentHandler {
	return &PaymentHandler{usecase: uc}
}

// RecordPayment submits a charge and appends the gateway-reported result.
func (h *PaymentHandler) RecordPayment(c *gin.Context) {
	var payload request.PaymentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPaymentPayload.HTTPStatus, errInvalidPaymentPayload.ToHTTPError())
		return
	}

	actor := actorFrom(c)
	log.Printf("[payment][handler] record start actor_id=%s quote_id=%q", actor.ID, payload.QuoteID)
	payment, err := h.usecase.Record(c.Request.Context(), actor, payload.ToInput())
	if err != nil {
		log.Printf("[payment][handler] record failed quote_id=%q err=%v", payload.QuoteID, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[payment][handler] record success payment_id=%s status=%s", payment.ID, payment.Status)

	c.JSON(http.StatusCreated, response.FromPayment(payment))
}

func (h *PaymentHandler) GetPayment(c *gin.Context) {
	payment, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromPayment(payment))
}

func (h *PaymentHandler) ListPayments(c *gin.Context) {
	payments, err := h.usecase.ListAll(c.Request.Context(), actorFrom(c))
	if err != nil {
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromPayments(payments))
}

func (h *PaymentHandler) ListPaymentsForQuote(c *gin.Context) {
	payments, err := h.usecase.ListForQuote(c.Request.Context(), c.Param("quote_id"))
	if err != nil {
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromPayments(payments))
}

func (h *PaymentHandler) ListPaymentsForUser(c *gin.Context) {
	payments, err := h.usecase.ListForUser(c.Request.Context(), c.Param("user_id"))
	if err != nil {
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromPayments(payments))
}

// GetQuoteBalance reports amount paid / outstanding for a quote.
func (h *PaymentHandler) GetQuoteBalance(c *gin.Context) {
	balance, err := h.usecase.QuoteBalance(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, balance)
}

// PatchPaymentStatus applies an admin correction.
func (h *PaymentHandler) PatchPaymentStatus(c *gin.Context) {
	var payload request.StatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPaymentPayload.HTTPStatus, errInvalidPaymentPayload.ToHTTPError())
		return
	}

	payment, err := h.usecase.SetStatus(c.Request.Context(), actorFrom(c), c.Param("id"), entities.PaymentStatus(payload.Status))
	if err != nil {
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromPayment(payment))
}

func mapPaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidAmount):
		return pkg.NewDomainErrorSimple("INVALID_AMOUNT", "Payment amount must be positive", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidPaymentID), errors.Is(err, usecase.ErrInvalidQuoteID),
		errors.Is(err, usecase.ErrInvalidPaymentStatus):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrQuoteNotFound):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_FOUND", "Quote not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrActorForbidden):
		return pkg.NewDomainErrorSimple("FORBIDDEN", "Not allowed for this actor", http.StatusForbidden)
	case errors.Is(err, usecase.ErrGatewayFailure), errors.Is(err, usecase.ErrGatewayNotConfigured):
		return pkg.NewDomainError("GATEWAY_ERROR", "Payment provider unavailable, retry later", err, http.StatusBadGateway)
	case errors.Is(err, interfaces.ErrStorageUnavailable):
		return pkg.NewDomainErrorSimple("STORAGE_UNAVAILABLE", "Storage temporarily unavailable, retry later", http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
