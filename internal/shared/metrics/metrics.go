package metrics

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gin-gonic/gin"
)

var (
	jobsCreatedTotal atomic.Uint64
	jobsUpdatedTotal atomic.Uint64
	jobsDeletedTotal atomic.Uint64

	autofillStartedTotal   atomic.Uint64
	autofillCompletedTotal atomic.Uint64
	autofillFailedTotal    atomic.Uint64

	generationStartedTotal   atomic.Uint64
	generationCompletedTotal atomic.Uint64
	generationFailedTotal    atomic.Uint64

	generationDuration = newHistogram([]float64{100, 250, 500, 1000, 2000, 5000, 10000, 30000, 60000})
)

// IncJobCreated increments the jobs-created counter.
func IncJobCreated() {
	jobsCreatedTotal.Add(1)
}

// IncJobUpdated increments the jobs-updated counter.
func IncJobUpdated() {
	jobsUpdatedTotal.Add(1)
}

// IncJobDeleted increments the jobs-deleted counter.
func IncJobDeleted() {
	jobsDeletedTotal.Add(1)
}

// IncAutofillStarted increments the autofill started counter.
func IncAutofillStarted() {
	autofillStartedTotal.Add(1)
}

// IncAutofillCompleted increments the autofill completed counter.
func IncAutofillCompleted() {
	autofillCompletedTotal.Add(1)
}

// IncAutofillFailed increments the autofill failed counter.
func IncAutofillFailed() {
	autofillFailedTotal.Add(1)
}

// IncGenerationStarted increments the document generation started counter.
func IncGenerationStarted() {
	generationStartedTotal.Add(1)
}

// IncGenerationCompleted increments the document generation completed counter.
func IncGenerationCompleted() {
	generationCompletedTotal.Add(1)
}

// IncGenerationFailed increments the document generation failed counter.
func IncGenerationFailed() {
	generationFailedTotal.Add(1)
}

// ObserveGenerationDurationMs records a document generation duration in milliseconds.
func ObserveGenerationDurationMs(value float64) {
	if value < 0 {
		value = 0
	}
	generationDuration.Observe(value)
}

// Handler exposes metrics in Prometheus text format.
func Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Content-Type", "text/plain; version=0.0.4")
		c.String(http.StatusOK, Render())
	}
}

// Render renders metrics in Prometheus text format.
func Render() string {
	var buf bytes.Buffer
	writeCounter(&buf, "jobs_created_total", "Total jobs created", jobsCreatedTotal.Load())
	writeCounter(&buf, "jobs_updated_total", "Total jobs updated", jobsUpdatedTotal.Load())
	writeCounter(&buf, "jobs_deleted_total", "Total jobs deleted", jobsDeletedTotal.Load())
	writeCounter(&buf, "autofill_started_total", "Total autofill requests started", autofillStartedTotal.Load())
	writeCounter(&buf, "autofill_completed_total", "Total autofill requests completed", autofillCompletedTotal.Load())
	writeCounter(&buf, "autofill_failed_total", "Total autofill requests failed", autofillFailedTotal.Load())
	writeCounter(&buf, "generation_started_total", "Total document generations started", generationStartedTotal.Load())
	writeCounter(&buf, "generation_completed_total", "Total document generations completed", generationCompletedTotal.Load())
	writeCounter(&buf, "generation_failed_total", "Total document generations failed", generationFailedTotal.Load())
	writeHistogram(&buf, "generation_duration_ms", "Document generation duration in milliseconds", generationDuration.Snapshot())
	return buf.String()
}

type histogram struct {
	mu      sync.Mutex
	buckets []float64
	counts  []uint64
	sum     float64
	count   uint64
}

type histogramSnapshot struct {
	buckets []float64
	counts  []uint64
	sum     float64
	count   uint64
}

func newHistogram(buckets []float64) *histogram {
	return &histogram{
		buckets: buckets,
		counts:  make([]uint64, len(buckets)),
	}
}

func (h *histogram) Observe(value float64) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.count++
	h.sum += value
	for i, bound := range h.buckets {
		if value <= bound {
			h.counts[i]++
		}
	}
}

func (h *histogram) Snapshot() histogramSnapshot {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := histogramSnapshot{
		buckets: append([]float64(nil), h.buckets...),
		counts:  append([]uint64(nil), h.counts...),
		sum:     h.sum,
		count:   h.count,
	}
	return out
}

func writeCounter(buf *bytes.Buffer, name, help string, value uint64) {
	fmt.Fprintf(buf, "# HELP %s %s\n", name, help)
	fmt.Fprintf(buf, "# TYPE %s counter\n", name)
	fmt.Fprintf(buf, "%s %d\n", name, value)
}

func writeHistogram(buf *bytes.Buffer, name, help string, snap histogramSnapshot) {
	fmt.Fprintf(buf, "# HELP %s %s\n", name, help)
	fmt.Fprintf(buf, "# TYPE %s histogram\n", name)
	var cumulative uint64
	for i, bound := range snap.buckets {
		cumulative += snap.counts[i]
		fmt.Fprintf(buf, "%s_bucket{le=\"%s\"} %d\n", name, formatFloat(bound), cumulative)
	}
	fmt.Fprintf(buf, "%s_bucket{le=\"+Inf\"} %d\n", name, snap.count)
	fmt.Fprintf(buf, "%s_sum %s\n", name, formatFloat(snap.sum))
	fmt.Fprintf(buf, "%s_count %d\n", name, snap.count)
}

func formatFloat(value float64) string {
	if value == float64(int64(value)) {
		return strconv.FormatInt(int64(value), 10)
	}
	return strconv.FormatFloat(value, 'f', -1, 64)
}

// NowMillis returns current time in milliseconds, useful for callers without time utilities.
func NowMillis() float64 {
	return float64(time.Now().UnixNano()) / float64(time.Millisecond)
}
