package controller

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

var RemoveBookDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
	Name:    "bookshelf_remove_book_duration_ms",
	Help:    "Duration of RemoveBook in ms",
	Buckets: prometheus.DefBuckets,
})

func init() {
	prometheus.MustRegister(RemoveBookDuration)
}

func (i *implementation) RemoveBook(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	defer func() {
		RemoveBookDuration.Observe(float64(time.Since(start).Milliseconds()))
	}()

	span := trace.SpanFromContext(r.Context())
	defer span.End()

	bookID := chi.URLParam(r, "bookID")
	span.SetAttributes(attribute.String("book_id", bookID))

	if err := validation.Validate(bookID, validation.Required, is.UUID); err != nil {
		span.RecordError(err)
		i.writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	if err := i.shelfUseCase.RemoveBook(r.Context(), bookID); err != nil {
		span.RecordError(err)
		i.writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
