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

var FindBookByIDDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
	Name:    "bookshelf_find_book_by_id_duration_ms",
	Help:    "Duration of FindBookByID in ms",
	Buckets: prometheus.DefBuckets,
})

func init() {
	prometheus.MustRegister(FindBookByIDDuration)
}

func (i *implementation) FindBookByID(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	defer func() {
		FindBookByIDDuration.Observe(float64(time.Since(start).Milliseconds()))
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

	book, err := i.shelfUseCase.FindBookByID(r.Context(), bookID)

	if err != nil {
		span.RecordError(err)
		i.writeError(w, err)
		return
	}

	i.writeJSON(w, http.StatusOK, toBookResponse(book))
}
