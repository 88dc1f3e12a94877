package controller

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel/trace"
)

var GetAllBooksDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
	Name:    "bookshelf_get_all_books_duration_ms",
	Help:    "Duration of GetAllBooks in ms",
	Buckets: prometheus.DefBuckets,
})

func init() {
	prometheus.MustRegister(GetAllBooksDuration)
}

func (i *implementation) GetAllBooks(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	defer func() {
		GetAllBooksDuration.Observe(float64(time.Since(start).Milliseconds()))
	}()

	span := trace.SpanFromContext(r.Context())
	defer span.End()

	books, err := i.shelfUseCase.GetAllBooks(r.Context())

	if err != nil {
		span.RecordError(err)
		i.writeError(w, err)
		return
	}

	i.writeJSON(w, http.StatusOK, toBookResponses(books))
}
