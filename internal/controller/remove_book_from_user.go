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

var RemoveBookFromUserDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
	Name:    "bookshelf_remove_book_from_user_duration_ms",
	Help:    "Duration of RemoveBookFromUser in ms",
	Buckets: prometheus.DefBuckets,
})

func init() {
	prometheus.MustRegister(RemoveBookFromUserDuration)
}

func (i *implementation) RemoveBookFromUser(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	defer func() {
		RemoveBookFromUserDuration.Observe(float64(time.Since(start).Milliseconds()))
	}()

	span := trace.SpanFromContext(r.Context())
	defer span.End()

	bookID := chi.URLParam(r, "bookID")
	userID := chi.URLParam(r, "userID")
	span.SetAttributes(attribute.String("book_id", bookID), attribute.String("user_id", userID))

	if err := validation.Validate(bookID, validation.Required, is.UUID); err != nil {
		span.RecordError(err)
		i.writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	if err := validation.Validate(userID, validation.Required, is.UUID); err != nil {
		span.RecordError(err)
		i.writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	if err := i.shelfUseCase.RemoveBookFromUser(r.Context(), bookID, userID); err != nil {
		span.RecordError(err)
		i.writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
