package inventory

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func testLog() *slog.Logger { return slog.New(slog.DiscardHandler) }

func TestCheck_ParsesResponses(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		codes := r.URL.Query()["itemCode"]
		if len(codes) != 2 {
			t.Errorf("expected 2 itemCode params, got %v", codes)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"itemCode":"iphone_13","inStock":true},{"itemCode":"iphone_13_red","inStock":false}]`))
	}))
	defer srv.Close()

	c := NewClient(testLog(), srv.URL, time.Second)
	got, err := c.Check(context.Background(), []string{"iphone_13", "iphone_13_red"})
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	if len(got) != 2 || !got[0].InStock || got[1].InStock {
		t.Errorf("unexpected responses: %+v", got)
	}
}

func TestCheck_EmptyResponseArray(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	c := NewClient(testLog(), srv.URL, time.Second)
	got, err := c.Check(context.Background(), []string{"unknown"})
	if err != nil {
		t.Fatalf("an empty result is not an error: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("expected no responses, got %+v", got)
	}
}

func TestCheck_ServerErrorIsFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewClient(testLog(), srv.URL, time.Second)
	if _, err := c.Check(context.Background(), []string{"iphone_13"}); err == nil {
		t.Fatal("expected error on 500 response")
	}
}

func TestCheck_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // address is now refusing connections

	c := NewClient(testLog(), srv.URL, time.Second)
	if _, err := c.Check(context.Background(), []string{"iphone_13"}); err == nil {
		t.Fatal("expected error when inventory is unreachable")
	}
}

func TestCheck_TimeoutHonored(t *testing.T) {
	block := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-block
	}))
	defer func() {
		close(block)
		srv.Close()
	}()

	c := NewClient(testLog(), srv.URL, 50*time.Millisecond)
	start := time.Now()
	_, err := c.Check(context.Background(), []string{"iphone_13"})
	if err == nil {
		t.Fatal("expected timeout error")
	}
	if elapsed := time.Since(start); elapsed > 2*time.Second {
		t.Errorf("timeout not honored, call took %v", elapsed)
	}
}
