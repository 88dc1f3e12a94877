package controller

import (
	"net/http"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	intlog "github.com/project/bookshelf/internal/log"
	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

var SearchCatalogDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
	Name:    "bookshelf_search_catalog_duration_ms",
	Help:    "Duration of SearchCatalog in ms",
	Buckets: prometheus.DefBuckets,
})

func init() {
	prometheus.MustRegister(SearchCatalogDuration)
}

func (i *implementation) SearchCatalog(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	defer func() {
		SearchCatalogDuration.Observe(float64(time.Since(start).Milliseconds()))
	}()

	span := trace.SpanFromContext(r.Context())
	defer span.End()
	traceID := span.SpanContext().TraceID().String()

	title := r.URL.Query().Get("title")
	authorSurname := r.URL.Query().Get("author")
	span.SetAttributes(attribute.String("title", title))

	if err := validation.Validate(title, validation.Required); intlog.ErrorSearchCatalog(i.logger, err, "Got invalid request", traceID, title, authorSurname) {
		span.RecordError(err)
		i.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "title is required"})
		return
	}

	volumes, err := i.catalog.Search(r.Context(), title, authorSurname)

	if intlog.ErrorSearchCatalog(i.logger, err, "Failed search catalog", traceID, title, authorSurname) {
		span.RecordError(err)
		i.writeError(w, err)
		return
	}

	intlog.InfoSearchCatalog(i.logger, "Searched the catalog", traceID, title, authorSurname)
	i.writeJSON(w, http.StatusOK, volumes)
}
