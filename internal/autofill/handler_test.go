package autofill

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"jobtrail-backend/internal/llm"
)

func newTestRouter(client llm.Client) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	NewHandler(NewService(client)).RegisterRoutes(router.Group("/api/v1"))
	return router
}

func TestAutofillEndpointSuccess(t *testing.T) {
	stub := &stubClient{jsonResult: json.RawMessage(`{"jobTitle":"Backend Engineer","company":"Acme","location":"Dublin"}`)}
	router := newTestRouter(stub)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/ai/autofill", strings.NewReader(`{"jobDescription":"hiring at Acme"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	var fields Fields
	if err := json.Unmarshal(rec.Body.Bytes(), &fields); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if fields.JobTitle != "Backend Engineer" {
		t.Fatalf("fields = %+v", fields)
	}
	if !strings.Contains(stub.lastUser, "hiring at Acme") {
		t.Fatalf("posting text not forwarded, got %q", stub.lastUser)
	}
}

func TestAutofillEndpointEmptyText(t *testing.T) {
	router := newTestRouter(&stubClient{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/ai/autofill", strings.NewReader(`{"jobDescription":""}`))
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

func TestAutofillEndpointBlocked(t *testing.T) {
	router := newTestRouter(&stubClient{err: llm.ErrBlocked})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/ai/autofill", strings.NewReader(`{"jobDescription":"posting"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "completion_blocked") {
		t.Fatalf("body = %s", rec.Body.String())
	}
}

func TestAutofillEndpointProviderNotConfigured(t *testing.T) {
	router := newTestRouter(&stubClient{err: llm.ErrNotConfigured})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/ai/autofill", strings.NewReader(`{"jobDescription":"posting"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d", rec.Code)
	}
}
