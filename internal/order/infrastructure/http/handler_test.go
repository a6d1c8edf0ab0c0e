package http

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/acme/order-fulfillment/internal/order/application"
	"github.com/acme/order-fulfillment/internal/order/domain"
)

type memRepo struct {
	saved   []domain.Order
	saveErr error
}

func (m *memRepo) Save(ctx context.Context, o domain.Order, eventType string, payload []byte, traceparent string) (domain.Order, error) {
	if m.saveErr != nil {
		return domain.Order{}, m.saveErr
	}
	o.ID = int64(len(m.saved) + 1)
	m.saved = append(m.saved, o)
	return o, nil
}

func (m *memRepo) FindAll(ctx context.Context) ([]domain.Order, error) {
	return m.saved, nil
}

type stubChecker struct {
	responses []domain.StockAvailability
	err       error
}

func (s *stubChecker) Check(ctx context.Context, codes []string) ([]domain.StockAvailability, error) {
	return s.responses, s.err
}

func newHandler(repo *memRepo, checker *stubChecker) *Handler {
	log := slog.New(slog.DiscardHandler)
	svc := application.NewService(log, repo, checker, application.Validator{})
	return NewHandler(log, svc)
}

func TestPlaceOrder_Created(t *testing.T) {
	repo := &memRepo{}
	h := newHandler(repo, &stubChecker{responses: []domain.StockAvailability{
		{ItemCode: "iphone_13", InStock: true},
	}})

	body := `{"items":[{"itemCode":"iphone_13","quantity":1,"price":999.99}]}`
	req := httptest.NewRequest("POST", "/api/orders", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Routes().ServeHTTP(rec, req)

	if rec.Code != 201 {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp placeOrderResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.OrderNumber == "" || resp.Message == "" {
		t.Errorf("expected order number and confirmation message, got %+v", resp)
	}
	if len(repo.saved) != 1 {
		t.Errorf("expected order persisted")
	}
}

func TestPlaceOrder_OutOfStockIsConflict(t *testing.T) {
	repo := &memRepo{}
	h := newHandler(repo, &stubChecker{responses: []domain.StockAvailability{
		{ItemCode: "iphone_13_red", InStock: false},
	}})

	body := `{"items":[{"itemCode":"iphone_13_red","quantity":1,"price":999.99}]}`
	req := httptest.NewRequest("POST", "/api/orders", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Routes().ServeHTTP(rec, req)

	if rec.Code != 409 {
		t.Fatalf("expected 409, got %d", rec.Code)
	}
	if len(repo.saved) != 0 {
		t.Errorf("rejected order must not be persisted")
	}
}

func TestPlaceOrder_InventoryDownIs503(t *testing.T) {
	repo := &memRepo{}
	h := newHandler(repo, &stubChecker{err: errors.New("connection refused")})

	body := `{"items":[{"itemCode":"iphone_13","quantity":1,"price":999.99}]}`
	req := httptest.NewRequest("POST", "/api/orders", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Routes().ServeHTTP(rec, req)

	if rec.Code != 503 {
		t.Fatalf("expected 503, got %d", rec.Code)
	}
	if len(repo.saved) != 0 {
		t.Errorf("no order may be persisted when inventory is down")
	}
}

func TestPlaceOrder_PersistenceFailureIs500(t *testing.T) {
	repo := &memRepo{saveErr: errors.New("disk full")}
	h := newHandler(repo, &stubChecker{responses: []domain.StockAvailability{
		{ItemCode: "iphone_13", InStock: true},
	}})

	body := `{"items":[{"itemCode":"iphone_13","quantity":1,"price":999.99}]}`
	req := httptest.NewRequest("POST", "/api/orders", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Routes().ServeHTTP(rec, req)

	if rec.Code != 500 {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
}

func TestPlaceOrder_BadRequests(t *testing.T) {
	h := newHandler(&memRepo{}, &stubChecker{})

	cases := []struct {
		name string
		body string
	}{
		{"invalid json", `{`},
		{"empty items", `{"items":[]}`},
		{"missing item code", `{"items":[{"quantity":1,"price":1}]}`},
		{"zero quantity", `{"items":[{"itemCode":"iphone_13","quantity":0,"price":1}]}`},
		{"negative price", `{"items":[{"itemCode":"iphone_13","quantity":1,"price":-1}]}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest("POST", "/api/orders", strings.NewReader(tc.body))
			rec := httptest.NewRecorder()
			h.Routes().ServeHTTP(rec, req)
			if rec.Code != 400 {
				t.Errorf("expected 400, got %d", rec.Code)
			}
		})
	}
}

func TestListOrders_ReturnsPersistedOrders(t *testing.T) {
	repo := &memRepo{}
	h := newHandler(repo, &stubChecker{responses: []domain.StockAvailability{
		{ItemCode: "iphone_13", InStock: true},
	}})

	place := httptest.NewRequest("POST", "/api/orders",
		strings.NewReader(`{"items":[{"itemCode":"iphone_13","quantity":2,"price":999.99}]}`))
	rec := httptest.NewRecorder()
	h.Routes().ServeHTTP(rec, place)
	if rec.Code != 201 {
		t.Fatalf("place order: %d", rec.Code)
	}

	list := httptest.NewRequest("GET", "/api/orders", nil)
	rec = httptest.NewRecorder()
	h.Routes().ServeHTTP(rec, list)

	if rec.Code != 200 {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var orders []orderResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &orders); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(orders) != 1 {
		t.Fatalf("expected 1 order, got %d", len(orders))
	}
	if len(orders[0].Items) != 1 || orders[0].Items[0].Quantity != 2 {
		t.Errorf("line items not returned intact: %+v", orders[0].Items)
	}
}
