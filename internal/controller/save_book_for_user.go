package controller

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	intlog "github.com/project/bookshelf/internal/log"
	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

var SaveBookForUserDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
	Name:    "bookshelf_save_book_for_user_duration_ms",
	Help:    "Duration of SaveBookForUser in ms",
	Buckets: prometheus.DefBuckets,
})

func init() {
	prometheus.MustRegister(SaveBookForUserDuration)
}

type saveBookRequest struct {
	Title         string `json:"title"`
	AuthorSurname string `json:"author,omitempty"`
}

func (r saveBookRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.Required),
	)
}

// SaveBookForUser looks the title up in the external catalog and saves the
// first matching volume for the user, the way the original lookup flow
// always took items[0].
func (i *implementation) SaveBookForUser(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	defer func() {
		SaveBookForUserDuration.Observe(float64(time.Since(start).Milliseconds()))
	}()

	span := trace.SpanFromContext(r.Context())
	defer span.End()
	traceID := span.SpanContext().TraceID().String()

	userID := chi.URLParam(r, "userID")
	span.SetAttributes(attribute.String("user_id", userID))

	if err := validation.Validate(userID, validation.Required, is.UUID); err != nil {
		span.RecordError(err)
		i.writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	var req saveBookRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		span.RecordError(err)
		i.writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	if err := req.Validate(); intlog.ErrorSaveBookForUser(i.logger, err, "Got invalid request", traceID, req.Title, userID) {
		span.RecordError(err)
		i.writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	volumes, err := i.catalog.Search(r.Context(), req.Title, req.AuthorSurname)

	if intlog.ErrorSaveBookForUser(i.logger, err, "Failed catalog lookup", traceID, req.Title, userID) {
		span.RecordError(err)
		i.writeError(w, err)
		return
	}

	book, err := i.shelfUseCase.SaveBookForUser(r.Context(), volumes[0], userID)

	if err != nil {
		span.RecordError(err)
		i.writeError(w, err)
		return
	}

	i.writeJSON(w, http.StatusCreated, toBookResponse(book))
}
