package copilot

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/calery/whoopilot/internal/date"
	"github.com/shopspring/decimal"
)

func newTestClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	client, err := New("test-key", WithBaseURL(server.URL))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return client
}

func TestNewRejectsEmptyAPIKey(t *testing.T) {
	t.Parallel()

	if _, err := New(""); !errors.Is(err, ErrMissingAPIKey) {
		t.Fatalf("err = %v, want ErrMissingAPIKey", err)
	}
}

func TestTransactionListParams(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("/v1/transactions", func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Errorf("Authorization = %q", got)
		}
		q := r.URL.Query()
		if got := q.Get("start_date"); got != "2024-01-01" {
			t.Errorf("start_date = %q", got)
		}
		if got := q.Get("end_date"); got != "2024-01-31" {
			t.Errorf("end_date = %q", got)
		}
		if got := q.Get("account_id"); got != "acct-1" {
			t.Errorf("account_id = %q", got)
		}
		if got := q.Get("limit"); got != "25" {
			t.Errorf("limit = %q, want 25", got)
		}
		_, _ = w.Write([]byte(`{"transactions":[
			{"id":"t1","date":"2024-01-05","amount":42.17,"category":"Groceries","merchant":"Corner Store"}
		]}`))
	})

	client := newTestClient(t, mux)

	got, err := client.Transaction.List(context.Background(), &TransactionParams{
		Start:     date.Date("2024-01-01"),
		End:       date.Date("2024-01-31"),
		AccountID: "acct-1",
		Limit:     25,
	})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("len = %d, want 1", len(got))
	}
	if !got[0].Amount.Equal(decimal.RequireFromString("42.17")) {
		t.Errorf("Amount = %s, want 42.17", got[0].Amount)
	}
	if got[0].Merchant != "Corner Store" {
		t.Errorf("Merchant = %q", got[0].Merchant)
	}
}

func TestTransactionListDefaultLimit(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("/v1/transactions", func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("limit"); got != "100" {
			t.Errorf("limit = %q, want default 100", got)
		}
		_, _ = w.Write([]byte(`{"transactions":[]}`))
	})

	client := newTestClient(t, mux)

	if _, err := client.Transaction.List(context.Background(), nil); err != nil {
		t.Fatalf("List: %v", err)
	}
}

func TestAccountList(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("/v1/accounts", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"accounts":[
			{"id":"a1","name":"Checking","type":"depository","balance":"1204.50"}
		]}`))
	})

	client := newTestClient(t, mux)

	got, err := client.Account.List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(got) != 1 || got[0].Name != "Checking" {
		t.Fatalf("accounts = %+v", got)
	}
	if got[0].Balance == nil || !got[0].Balance.Equal(decimal.RequireFromString("1204.50")) {
		t.Errorf("Balance = %v, want 1204.50", got[0].Balance)
	}
}

func TestAPIErrorStatusAndEndpoint(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("/v1/categories", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"error":"invalid api key"}`))
	})

	client := newTestClient(t, mux)

	_, err := client.Category.List(context.Background())

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("err = %v, want *APIError", err)
	}
	if apiErr.StatusCode != http.StatusForbidden {
		t.Errorf("StatusCode = %d, want 403", apiErr.StatusCode)
	}
	if apiErr.Endpoint != "/v1/categories" {
		t.Errorf("Endpoint = %q", apiErr.Endpoint)
	}
	if apiErr.Message != "invalid api key" {
		t.Errorf("Message = %q", apiErr.Message)
	}
}
