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

var errInvalidProjectPayload = pkg.NewDomainErrorSimple("INVALID_PROJECT_INPUT", "Invalid project payload", http.StatusBadRequest)

// ProjectHandler handles HTTP requests for projects, including the
// quote-to-project conversion.

type ProjectHandler struct {
	usecase usecase.IProjectUseCase
}

func NewProjectHandler(uc usecase.IProjectUseCase) *ProjectHandler {
	return &ProjectHandler{usecase: uc}
}

// ConvertQuote materializes a project from an approved quote. The
// override payload is optional; an empty body keeps the quote-derived
// defaults.
func (h *ProjectHandler) ConvertQuote(c *gin.Context) {
	var payload request.ConvertQuoteRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&payload); err != nil {
			c.JSON(errInvalidProjectPayload.HTTPStatus, errInvalidProjectPayload.ToHTTPError())
			return
		}
	}

	project, err := h.usecase.Convert(c.Request.Context(), actorFrom(c), c.Param("id"), payload.ToOverrides())
	if err != nil {
		appErr := mapProjectError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromProject(project))
}

func (h *ProjectHandler) CreateProject(c *gin.Context) {
	var payload request.ProjectRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidProjectPayload.HTTPStatus, errInvalidProjectPayload.ToHTTPError())
		return
	}

	project, err := h.usecase.Create(c.Request.Context(), actorFrom(c), payload.ToInput())
	if err != nil {
		appErr := mapProjectError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromProject(project))
}

func (h *ProjectHandler) GetProject(c *gin.Context) {
	project, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapProjectError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromProject(project))
}

func (h *ProjectHandler) ListProjects(c *gin.Context) {
	projects, err := h.usecase.ListAll(c.Request.Context(), actorFrom(c))
	if err != nil {
		appErr := mapProjectError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromProjects(projects))
}

func (h *ProjectHandler) ListProjectsForClient(c *gin.Context) {
	projects, err := h.usecase.ListForClient(c.Request.Context(), c.Param("client_id"))
	if err != nil {
		appErr := mapProjectError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromProjects(projects))
}

func (h *ProjectHandler) PatchProjectStatus(c *gin.Context) {
	var payload request.StatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidProjectPayload.HTTPStatus, errInvalidProjectPayload.ToHTTPError())
		return
	}

	project, err := h.usecase.SetStatus(c.Request.Context(), actorFrom(c), c.Param("id"), entities.ProjectStatus(payload.Status))
	if err != nil {
		appErr := mapProjectError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromProject(project))
}

func (h *ProjectHandler) DeleteProject(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), actorFrom(c), c.Param("id")); err != nil {
		appErr := mapProjectError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

func mapProjectError(err error) *pkg.AppError {
	var partial *usecase.PartialConversionError
	switch {
	case errors.As(err, &partial):
		// Distinct from a plain failure: the project exists, only the
		// quote update is missing, and re-running the conversion resumes
		// it idempotently.
		log.Printf("[conversion][handler] partial conversion quote_id=%s project_id=%s err=%v", partial.QuoteID, partial.ProjectID, partial.Err)
		return pkg.NewDomainError("CONVERSION_INCOMPLETE", "Conversion partially applied, retry to complete", err, http.StatusInternalServerError)
	case errors.Is(err, usecase.ErrQuoteNotEligible):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_ELIGIBLE", "Quote is not approved for conversion", http.StatusConflict)
	case errors.Is(err, usecase.ErrQuoteNotFound):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_FOUND", "Quote not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrProjectNotFound):
		return pkg.NewDomainErrorSimple("PROJECT_NOT_FOUND", "Project not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvalidProjectID), errors.Is(err, usecase.ErrInvalidQuoteID),
		errors.Is(err, usecase.ErrMissingProjectName), errors.Is(err, usecase.ErrInvalidProjectStatus):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrActorForbidden):
		return pkg.NewDomainErrorSimple("FORBIDDEN", "Not allowed for this actor", http.StatusForbidden)
	case errors.Is(err, interfaces.ErrStorageUnavailable):
		return pkg.NewDomainErrorSimple("STORAGE_UNAVAILABLE", "Storage temporarily unavailable, retry later", http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
