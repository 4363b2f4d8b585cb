package orders

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"regexp"
	"testing"
)

func testSubmission() Submission {
	return Submission{
		Customer: Customer{Name: "Иван Петров", Phone: "89001234567", Email: "ivan@example.com"},
		Order: Body{
			Items: []Item{{ProductID: "n1", Name: "Труба 57х3.5", Quantity: 10, Unit: "meters", UnitPrice: 100, TotalPrice: 1000}},
			Total: 1000,
		},
	}
}

func TestClientSubmit(t *testing.T) {
	var got Submission
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("unexpected content type %q", ct)
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode submission: %v", err)
		}
		_ = json.NewEncoder(w).Encode(Response{Success: true, OrderNumber: "TMK-1-1"})
	}))
	defer srv.Close()

	number, err := NewClient(srv.URL, srv.Client()).Submit(context.Background(), testSubmission())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if number != "TMK-1-1" {
		t.Errorf("unexpected number %q", number)
	}
	if got.Order.Total != 1000 || got.Customer.Name != "Иван Петров" {
		t.Errorf("submission not delivered intact: %+v", got)
	}
}

func TestClientSubmitServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(Response{Error: "база недоступна"})
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL, srv.Client()).Submit(context.Background(), testSubmission())
	var te *TransportError
	if !errors.As(err, &te) {
		t.Fatalf("expected TransportError, got %v", err)
	}
	if te.Status != http.StatusInternalServerError || te.Message != "база недоступна" {
		t.Errorf("error payload incorrect: %+v", te)
	}
}

func TestClientSubmitRejectedBody(t *testing.T) {
	// 200 с success=false — тоже отказ.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(Response{Success: false, Error: "корзина пуста"})
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL, srv.Client()).Submit(context.Background(), testSubmission())
	var te *TransportError
	if !errors.As(err, &te) {
		t.Fatalf("expected TransportError, got %v", err)
	}
}

func TestClientSubmitNetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	_, err := NewClient(srv.URL, nil).Submit(context.Background(), testSubmission())
	var te *TransportError
	if !errors.As(err, &te) {
		t.Fatalf("expected TransportError, got %v", err)
	}
	if te.Err == nil {
		t.Error("network failure must carry the underlying error")
	}
}

func TestNewNumberFormat(t *testing.T) {
	re := regexp.MustCompile(`^TMK-\d{13,}-\d{1,3}$`)
	for i := 0; i < 100; i++ {
		if n := NewNumber(); !re.MatchString(n) {
			t.Fatalf("unexpected number format %q", n)
		}
	}
}
