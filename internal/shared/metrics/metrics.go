package metrics

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Registry holds the service metrics, apart from the default registry.
var Registry = prometheus.NewRegistry()

var factory = promauto.With(Registry)

var (
	submissionsSaved = factory.NewCounter(prometheus.CounterOpts{
		Name: "cardrequest_submissions_saved_total",
		Help: "Total submissions persisted",
	})
	submissionsRejected = factory.NewCounter(prometheus.CounterOpts{
		Name: "cardrequest_submissions_rejected_total",
		Help: "Total submissions rejected by validation",
	})
	documentsStored = factory.NewCounterVec(prometheus.CounterOpts{
		Name: "cardrequest_documents_stored_total",
		Help: "Total uploaded documents stored, by category",
	}, []string{"category"})
	saveDuration = factory.NewHistogram(prometheus.HistogramOpts{
		Name:    "cardrequest_submission_save_duration_seconds",
		Help:    "Duration of submission inserts",
		Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
	})
	receiptJobs = factory.NewCounterVec(prometheus.CounterOpts{
		Name: "cardrequest_receipt_jobs_total",
		Help: "Receipt archive jobs handled by the worker, by outcome",
	}, []string{"outcome"})
)

// Receipt job outcomes.
const (
	JobReceived      = "received"
	JobCompleted     = "completed"
	JobFailed        = "failed"
	JobUnrecoverable = "deleted_unrecoverable"
)

// IncSubmissionSaved increments the saved counter.
func IncSubmissionSaved() {
	submissionsSaved.Inc()
}

// IncSubmissionRejected increments the validation rejection counter.
func IncSubmissionRejected() {
	submissionsRejected.Inc()
}

// IncDocumentStored counts a stored upload for category.
func IncDocumentStored(category string) {
	documentsStored.WithLabelValues(category).Inc()
}

// IncReceiptJob counts a worker job outcome.
func IncReceiptJob(outcome string) {
	receiptJobs.WithLabelValues(outcome).Inc()
}

// ObserveSave records the duration of an insert.
// Call with time.Now() at the start of the operation.
func ObserveSave(start time.Time) {
	saveDuration.Observe(time.Since(start).Seconds())
}

// Handler exposes metrics in Prometheus text format.
func Handler() gin.HandlerFunc {
	h := promhttp.HandlerFor(Registry, promhttp.HandlerOpts{})
	return func(c *gin.Context) {
		h.ServeHTTP(c.Writer, c.Request)
	}
}
