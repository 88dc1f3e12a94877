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

var FindBooksByAuthorDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
	Name:    "bookshelf_find_books_by_author_duration_ms",
	Help:    "Duration of FindBooksByAuthor in ms",
	Buckets: prometheus.DefBuckets,
})

func init() {
	prometheus.MustRegister(FindBooksByAuthorDuration)
}

func (i *implementation) FindBooksByAuthor(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	defer func() {
		FindBooksByAuthorDuration.Observe(float64(time.Since(start).Milliseconds()))
	}()

	span := trace.SpanFromContext(r.Context())
	defer span.End()

	authorID := chi.URLParam(r, "authorID")
	span.SetAttributes(attribute.String("author_id", authorID))

	if err := validation.Validate(authorID, validation.Required, is.UUID); err != nil {
		span.RecordError(err)
		i.writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	books, err := i.shelfUseCase.FindBooksByAuthor(r.Context(), authorID)

	if err != nil {
		span.RecordError(err)
		i.writeError(w, err)
		return
	}

	i.writeJSON(w, http.StatusOK, toBookResponses(books))
}
