package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/acme/order-fulfillment/internal/inventory/application"
	"github.com/acme/order-fulfillment/internal/inventory/domain"
)

type Handler struct {
	log    *slog.Logger
	lookup application.StockLookup
	tracer trace.Tracer
}

func NewHandler(log *slog.Logger, lookup application.StockLookup) *Handler {
	return &Handler{
		log:    log,
		lookup: lookup,
		tracer: otel.Tracer("inventory-http"),
	}
}

func (h *Handler) Routes() http.Handler {
	r := chi.NewRouter()
	r.Get("/api/inventory", h.stockQuery)
	r.Get("/healthz", h.health)
	return r
}

// stockQuery answers availability for the itemCode query parameters. Codes
// with no stock record are absent from the response, not an error.
func (h *Handler) stockQuery(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "StockQuery")
	defer span.End()

	codes := r.URL.Query()["itemCode"]
	if len(codes) == 0 {
		writeError(w, http.StatusBadRequest, "at least one itemCode query parameter is required")
		return
	}

	availability, err := h.lookup.Lookup(ctx, codes)
	if err != nil {
		h.log.Error("stock lookup failed", "err", err)
		writeError(w, http.StatusInternalServerError, "stock lookup failed")
		return
	}
	if availability == nil {
		availability = []domain.Availability{}
	}

	writeJSON(w, http.StatusOK, availability)
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
