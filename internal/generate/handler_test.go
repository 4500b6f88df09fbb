package generate

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"jobtrail-backend/internal/document"
	"jobtrail-backend/internal/llm"
)

func newTestRouter(client llm.Client) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	svc := newTestService(client.(*stubClient))
	NewHandler(svc).RegisterRoutes(router.Group("/api/v1"))
	return router
}

func TestGenerateResumeEndpoint(t *testing.T) {
	router := newTestRouter(&stubClient{result: generatedResume})

	body := `{"resumeText":"Jane Doe","jobDescription":"Position: Backend Engineer\nCompany: Acme"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/ai/generate/resume", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	if got := rec.Header().Get("Content-Type"); got != document.MIMEType {
		t.Fatalf("content type = %q", got)
	}
	disposition := rec.Header().Get("Content-Disposition")
	if !strings.Contains(disposition, "Jane_Doe_Resume_Backend_Engineer_Acme.docx") {
		t.Fatalf("disposition = %q", disposition)
	}
	if rec.Body.Len() == 0 {
		t.Fatalf("empty response body")
	}
}

func TestGenerateEndpointMissingInput(t *testing.T) {
	router := newTestRouter(&stubClient{result: generatedResume})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/ai/generate/cover-letter", strings.NewReader(`{"resumeText":"","jobDescription":"x"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "validation_error") {
		t.Fatalf("body = %s", rec.Body.String())
	}
}

func TestGenerateEndpointBlocked(t *testing.T) {
	router := newTestRouter(&stubClient{err: llm.ErrBlocked})

	body := `{"resumeText":"Jane Doe","jobDescription":"role"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/ai/generate/resume", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
}
