package extract

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"jobtrail-backend/internal/shared/server/respond"
	"jobtrail-backend/internal/shared/util"
)

// maxUploadBytes caps resume uploads at 5MB.
const maxUploadBytes = 5 << 20

// Handler exposes the resume text-extraction endpoint.
type Handler struct{}

// NewHandler constructs a Handler.
func NewHandler() *Handler {
	return &Handler{}
}

// RegisterRoutes attaches extraction routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/extract/resume", h.extractResume)
}

func (h *Handler) extractResume(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxUploadBytes)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "a file upload named 'file' is required", nil)
		return
	}
	if fileHeader.Size > maxUploadBytes {
		respond.Error(c, http.StatusRequestEntityTooLarge, "file_too_large", "uploads are limited to 5MB", nil)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "could not read the uploaded file", nil)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "could not read the uploaded file", nil)
		return
	}

	// The client-supplied name only feeds the extension fallback; a name that
	// fails sanitization just skips that fallback.
	fileName, sanitizeErr := util.SanitizeFileName(fileHeader.Filename)
	if sanitizeErr != nil {
		fileName = ""
	}

	text, err := ExtractTextFromBytes(c.Request.Context(), data, fileHeader.Header.Get("Content-Type"), fileName)
	if err != nil {
		if errors.Is(err, ErrUnsupportedType) {
			respond.Error(c, http.StatusUnsupportedMediaType, "unsupported_type", "only PDF, DOCX, and plain-text resumes are supported", nil)
			return
		}
		respond.Error(c, http.StatusUnprocessableEntity, "extract_failed", "could not extract text from the uploaded file", nil)
		return
	}

	respond.OK(c, gin.H{"text": text})
}
