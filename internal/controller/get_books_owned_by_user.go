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

var GetBooksOwnedByUserDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
	Name:    "bookshelf_get_books_owned_by_user_duration_ms",
	Help:    "Duration of GetBooksOwnedByUser in ms",
	Buckets: prometheus.DefBuckets,
})

func init() {
	prometheus.MustRegister(GetBooksOwnedByUserDuration)
}

func (i *implementation) GetBooksOwnedByUser(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	defer func() {
		GetBooksOwnedByUserDuration.Observe(float64(time.Since(start).Milliseconds()))
	}()

	span := trace.SpanFromContext(r.Context())
	defer span.End()

	userID := chi.URLParam(r, "userID")
	span.SetAttributes(attribute.String("user_id", userID))

	if err := validation.Validate(userID, validation.Required, is.UUID); err != nil {
		span.RecordError(err)
		i.writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	books, err := i.shelfUseCase.GetBooksOwnedByUser(r.Context(), userID)

	if err != nil {
		span.RecordError(err)
		i.writeError(w, err)
		return
	}

	i.writeJSON(w, http.StatusOK, toBookResponses(books))
}
