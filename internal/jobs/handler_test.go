package jobs

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func newTestRouter(repo Repo, userID string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set("userId", userID)
		c.Next()
	})
	NewHandler(NewService(repo)).RegisterRoutes(router.Group("/api/v1"))
	return router
}

func performJSON(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

const createBody = `{
	"jobTitle": "Backend Engineer",
	"company": "Acme",
	"location": "Dublin",
	"status": "Applied",
	"mode": "FullTime",
	"dateApplied": "2025-08-01",
	"jobUrl": "https://acme.example/jobs/1"
}`

func TestJobsCreateAndGet(t *testing.T) {
	repo := NewMemoryRepo()
	router := newTestRouter(repo, "user-1")

	rec := performJSON(router, http.MethodPost, "/api/v1/jobs", createBody)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create status = %d, body = %s", rec.Code, rec.Body.String())
	}
	var created Job
	if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode create: %v", err)
	}
	if created.ID == "" || created.JobTitle != "Backend Engineer" {
		t.Fatalf("created = %+v", created)
	}

	rec = performJSON(router, http.MethodGet, "/api/v1/jobs/"+created.ID, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("get status = %d", rec.Code)
	}
}

func TestJobsCreateValidation(t *testing.T) {
	router := newTestRouter(NewMemoryRepo(), "user-1")

	rec := performJSON(router, http.MethodPost, "/api/v1/jobs", `{"jobTitle":"x"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "validation_error") || !strings.Contains(body, "Job Title must be at least 2 characters.") {
		t.Fatalf("body = %s", body)
	}
}

func TestJobsGetNotFoundForOtherOwner(t *testing.T) {
	repo := NewMemoryRepo()
	owner := newTestRouter(repo, "user-1")
	intruder := newTestRouter(repo, "user-2")

	rec := performJSON(owner, http.MethodPost, "/api/v1/jobs", createBody)
	var created Job
	if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode create: %v", err)
	}

	rec = performJSON(intruder, http.MethodGet, "/api/v1/jobs/"+created.ID, "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("cross-owner get status = %d", rec.Code)
	}
	rec = performJSON(intruder, http.MethodDelete, "/api/v1/jobs/"+created.ID, "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("cross-owner delete status = %d", rec.Code)
	}
}

func TestJobsUpdate(t *testing.T) {
	repo := NewMemoryRepo()
	router := newTestRouter(repo, "user-1")

	rec := performJSON(router, http.MethodPost, "/api/v1/jobs", createBody)
	var created Job
	if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode create: %v", err)
	}

	updateBody := strings.Replace(createBody, `"Applied"`, `"Offer"`, 1)
	rec = performJSON(router, http.MethodPatch, "/api/v1/jobs/"+created.ID, updateBody)
	if rec.Code != http.StatusOK {
		t.Fatalf("update status = %d, body = %s", rec.Code, rec.Body.String())
	}
	var updated Job
	if err := json.Unmarshal(rec.Body.Bytes(), &updated); err != nil {
		t.Fatalf("decode update: %v", err)
	}
	if updated.Status != StatusOffer {
		t.Fatalf("updated = %+v", updated)
	}
}

func TestJobsListWithFilters(t *testing.T) {
	repo := NewMemoryRepo()
	router := newTestRouter(repo, "user-1")

	performJSON(router, http.MethodPost, "/api/v1/jobs", createBody)
	second := strings.Replace(createBody, `"Acme"`, `"Globex"`, 1)
	second = strings.Replace(second, `"Applied"`, `"Pending"`, 1)
	performJSON(router, http.MethodPost, "/api/v1/jobs", second)

	rec := performJSON(router, http.MethodGet, "/api/v1/jobs?search=globex", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("list status = %d", rec.Code)
	}
	var listResp struct {
		Jobs  []Job `json:"jobs"`
		Count int   `json:"count"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &listResp); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if listResp.Count != 1 || listResp.Jobs[0].Company != "Globex" {
		t.Fatalf("list = %+v", listResp)
	}

	rec = performJSON(router, http.MethodGet, "/api/v1/jobs?status=Pending", "")
	if err := json.Unmarshal(rec.Body.Bytes(), &listResp); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if listResp.Count != 1 || listResp.Jobs[0].Status != StatusPending {
		t.Fatalf("filtered list = %+v", listResp)
	}
}

func TestJobsStats(t *testing.T) {
	repo := NewMemoryRepo()
	router := newTestRouter(repo, "user-1")
	performJSON(router, http.MethodPost, "/api/v1/jobs", createBody)

	rec := performJSON(router, http.MethodGet, "/api/v1/jobs/stats", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("stats status = %d", rec.Code)
	}
	var counts map[Status]int
	if err := json.Unmarshal(rec.Body.Bytes(), &counts); err != nil {
		t.Fatalf("decode stats: %v", err)
	}
	if len(counts) != len(AllStatuses()) {
		t.Fatalf("counts = %v", counts)
	}
	if counts[StatusApplied] != 1 {
		t.Fatalf("counts = %v", counts)
	}
}

func TestJobsCharts(t *testing.T) {
	repo := NewMemoryRepo()
	router := newTestRouter(repo, "user-1")
	performJSON(router, http.MethodPost, "/api/v1/jobs", createBody)

	rec := performJSON(router, http.MethodGet, "/api/v1/jobs/charts?months=6", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("charts status = %d", rec.Code)
	}
	var buckets []MonthCount
	if err := json.Unmarshal(rec.Body.Bytes(), &buckets); err != nil {
		t.Fatalf("decode charts: %v", err)
	}
}
