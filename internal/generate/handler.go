package generate

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"jobtrail-backend/internal/document"
	"jobtrail-backend/internal/llm"
	"jobtrail-backend/internal/shared/server/respond"
)

// Handler exposes the generation endpoints.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches generation routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/ai/generate/resume", h.resume)
	rg.POST("/ai/generate/cover-letter", h.coverLetter)
}

type generateRequest struct {
	ResumeText     string `json:"resumeText"`
	JobDescription string `json:"jobDescription"`
}

func (h *Handler) resume(c *gin.Context) {
	h.generate(c, h.Svc.Resume)
}

func (h *Handler) coverLetter(c *gin.Context) {
	h.generate(c, h.Svc.CoverLetter)
}

func (h *Handler) generate(c *gin.Context, run func(context.Context, string, string) (Result, error)) {
	var req generateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	result, err := run(c.Request.Context(), req.ResumeText, req.JobDescription)
	if err != nil {
		switch {
		case errors.Is(err, ErrMissingInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", "resume text and job description are required", nil)
		case errors.Is(err, llm.ErrNotConfigured):
			respond.Error(c, http.StatusServiceUnavailable, "llm_not_configured", "no completion provider is configured", nil)
		case errors.Is(err, llm.ErrBlocked):
			respond.Error(c, http.StatusUnprocessableEntity, "completion_blocked", "the completion provider blocked this request", nil)
		case errors.Is(err, llm.ErrEmptyCompletion):
			respond.Error(c, http.StatusBadGateway, "empty_completion", "the completion provider returned no content", nil)
		default:
			respond.Error(c, http.StatusBadGateway, "llm_error", "the completion provider request failed", nil)
		}
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+result.Filename+`"`)
	c.Data(http.StatusOK, document.MIMEType, result.Content)
}
