package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/acme/order-fulfillment/internal/order/application"
	"github.com/acme/order-fulfillment/internal/order/domain"
)

type Handler struct {
	log     *slog.Logger
	service *application.Service
	tracer  trace.Tracer
}

func NewHandler(log *slog.Logger, service *application.Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
		tracer:  otel.Tracer("order-http"),
	}
}

func (h *Handler) Routes() http.Handler {
	r := chi.NewRouter()
	r.Post("/api/orders", h.placeOrder)
	r.Get("/api/orders", h.listOrders)
	r.Get("/healthz", h.health)
	return r
}

type placeOrderRequest struct {
	Items []lineItemDTO `json:"items"`
}

type lineItemDTO struct {
	ItemCode string  `json:"itemCode"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

type placeOrderResponse struct {
	OrderNumber string `json:"orderNumber"`
	Message     string `json:"message"`
}

type orderResponse struct {
	ID          int64         `json:"id"`
	OrderNumber string        `json:"orderNumber"`
	Items       []lineItemDTO `json:"items"`
	CreatedAt   string        `json:"createdAt"`
}

func (h *Handler) placeOrder(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "PlaceOrder")
	defer span.End()

	var req placeOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if len(req.Items) == 0 {
		writeError(w, http.StatusBadRequest, "order must contain at least one item")
		return
	}

	items := make([]domain.LineItem, 0, len(req.Items))
	for _, it := range req.Items {
		if it.ItemCode == "" || it.Quantity <= 0 || it.Price < 0 {
			writeError(w, http.StatusBadRequest, "each item needs an itemCode, a positive quantity, and a non-negative price")
			return
		}
		items = append(items, domain.LineItem{
			ItemCode: it.ItemCode,
			Quantity: it.Quantity,
			Price:    it.Price,
		})
	}

	order, err := h.service.PlaceOrder(ctx, items)
	switch {
	case errors.Is(err, application.ErrStockUnavailable):
		writeError(w, http.StatusConflict, "one or more items are out of stock, please try again later")
		return
	case errors.Is(err, application.ErrInventoryUnavailable):
		writeError(w, http.StatusServiceUnavailable, "inventory service unavailable")
		return
	case err != nil:
		h.log.Error("place order failed", "err", err)
		writeError(w, http.StatusInternalServerError, "could not place order")
		return
	}

	writeJSON(w, http.StatusCreated, placeOrderResponse{
		OrderNumber: order.OrderNumber,
		Message:     "order placed successfully",
	})
}

func (h *Handler) listOrders(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "ListOrders")
	defer span.End()

	orders, err := h.service.ListOrders(ctx)
	if err != nil {
		h.log.Error("list orders failed", "err", err)
		writeError(w, http.StatusInternalServerError, "could not list orders")
		return
	}

	out := make([]orderResponse, 0, len(orders))
	for _, o := range orders {
		items := make([]lineItemDTO, 0, len(o.LineItems))
		for _, li := range o.LineItems {
			items = append(items, lineItemDTO{ItemCode: li.ItemCode, Quantity: li.Quantity, Price: li.Price})
		}
		out = append(out, orderResponse{
			ID:          o.ID,
			OrderNumber: o.OrderNumber,
			Items:       items,
			CreatedAt:   o.CreatedAt.Format(time.RFC3339),
		})
	}
	writeJSON(w, http.StatusOK, out)
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
