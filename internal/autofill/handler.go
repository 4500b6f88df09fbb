package autofill

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"jobtrail-backend/internal/llm"
	"jobtrail-backend/internal/shared/server/respond"
)

// Handler exposes the autofill endpoint.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches autofill routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/ai/autofill", h.autofill)
}

type autofillRequest struct {
	JobDescription string `json:"jobDescription"`
}

func (h *Handler) autofill(c *gin.Context) {
	var req autofillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	fields, err := h.Svc.Extract(c.Request.Context(), req.JobDescription)
	if err != nil {
		switch {
		case errors.Is(err, ErrEmptyText):
			respond.Error(c, http.StatusBadRequest, "validation_error", "job posting text is required", nil)
		case errors.Is(err, llm.ErrNotConfigured):
			respond.Error(c, http.StatusServiceUnavailable, "llm_not_configured", "no completion provider is configured", nil)
		case errors.Is(err, llm.ErrBlocked):
			respond.Error(c, http.StatusUnprocessableEntity, "completion_blocked", "the completion provider blocked this request", nil)
		case errors.Is(err, llm.ErrEmptyCompletion):
			respond.Error(c, http.StatusBadGateway, "empty_completion", "the completion provider returned no content", nil)
		case errors.Is(err, ErrBadCompletion):
			respond.Error(c, http.StatusBadGateway, "bad_completion", "the completion provider returned an unexpected format", nil)
		default:
			respond.Error(c, http.StatusBadGateway, "llm_error", "the completion provider request failed", nil)
		}
		return
	}

	respond.OK(c, fields)
}
