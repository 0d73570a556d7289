package handlers

import (
	"errors"
	"net/http"

	"brightworks/internal/usecase"
	"brightworks/internal/usecase/interfaces"
	"brightworks/pkg"

	"github.com/gin-gonic/gin"
)

// DashboardHandler serves the aggregate views both portals render.

type DashboardHandler struct {
	usecase usecase.IDashboardUseCase
}

func NewDashboardHandler(uc usecase.IDashboardUseCase) *DashboardHandler {
	return &DashboardHandler{usecase: uc}
}

func (h *DashboardHandler) AdminDashboard(c *gin.Context) {
	view, err := h.usecase.AdminView(c.Request.Context(), actorFrom(c))
	if err != nil {
		appErr := mapDashboardError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *DashboardHandler) ClientDashboard(c *gin.Context) {
	view, err := h.usecase.ClientView(c.Request.Context(), c.Param("user_id"))
	if err != nil {
		appErr := mapDashboardError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, view)
}

func mapDashboardError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrActorForbidden):
		return pkg.NewDomainErrorSimple("FORBIDDEN", "Not allowed for this actor", http.StatusForbidden)
	case errors.Is(err, usecase.ErrInvalidQuoteID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, interfaces.ErrStorageUnavailable):
		return pkg.NewDomainErrorSimple("STORAGE_UNAVAILABLE", "Storage temporarily unavailable, retry later", http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
