package whoop

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/calery/whoopilot/internal/date"
	"github.com/google/go-cmp/cmp"
	"golang.org/x/oauth2"
)

type staticTokenSource struct {
	token       string
	invalidated int
}

func (s *staticTokenSource) Token() (*oauth2.Token, error) {
	return &oauth2.Token{AccessToken: s.token, TokenType: "bearer"}, nil
}

func (s *staticTokenSource) Invalidate() { s.invalidated++ }

func newTestClient(t *testing.T, handler http.Handler) (*Client, *staticTokenSource) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	source := &staticTokenSource{token: "access"}
	return New(source, WithBaseURL(server.URL)), source
}

func TestRecoveryList(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("/v1/user/profile/basic", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"user_id":1}`))
	})
	mux.HandleFunc("/v1/cycle/recovery", func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer access" {
			t.Errorf("Authorization = %q", got)
		}
		if got := r.URL.Query().Get("start"); got != "2024-01-01" {
			t.Errorf("start = %q, want 2024-01-01", got)
		}
		if got := r.URL.Query().Get("end"); got != "2024-01-31" {
			t.Errorf("end = %q, want 2024-01-31", got)
		}
		_, _ = w.Write([]byte(`{"recovery":[
			{"date":"2024-01-02","score":67.5},
			{"date":"2024-01-03","score":null}
		]}`))
	})

	client, _ := newTestClient(t, mux)

	got, err := client.Recovery.List(context.Background(), &RangeParams{
		Start: date.Date("2024-01-01"),
		End:   date.Date("2024-01-31"),
	})
	if err != nil {
		t.Fatalf("List: %v", err)
	}

	score := 67.5
	want := []Recovery{
		{Date: date.Date("2024-01-02"), Score: &score},
		{Date: date.Date("2024-01-03")},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("recoveries mismatch (-want +got):\n%s", diff)
	}
}

func TestWorkoutListMissingKey(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("/v1/user/profile/basic", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"user_id":1}`))
	})
	mux.HandleFunc("/v1/cycle/workout", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	})

	client, _ := newTestClient(t, mux)

	got, err := client.Workout.List(context.Background(), nil)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("want empty result for absent envelope key, got %d workouts", len(got))
	}
}

func TestPreflightInvalidatesOn401(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("/v1/user/profile/basic", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"message":"token expired"}`))
	})
	mux.HandleFunc("/v1/cycle/sleep", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"sleep":[]}`))
	})

	client, source := newTestClient(t, mux)

	if _, err := client.Sleep.List(context.Background(), nil); err != nil {
		t.Fatalf("List: %v", err)
	}
	if source.invalidated != 1 {
		t.Errorf("invalidated = %d, want 1", source.invalidated)
	}
}

func TestAPIErrorFields(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("/v1/user/profile/basic", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"message":"upstream exploded"}`))
	})

	client, _ := newTestClient(t, mux)

	_, err := client.User.GetProfile(context.Background())

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("err = %v, want *APIError", err)
	}
	if apiErr.StatusCode != http.StatusInternalServerError {
		t.Errorf("StatusCode = %d, want 500", apiErr.StatusCode)
	}
	if apiErr.Endpoint != "/v1/user/profile/basic" {
		t.Errorf("Endpoint = %q", apiErr.Endpoint)
	}
	if apiErr.Message != "upstream exploded" {
		t.Errorf("Message = %q", apiErr.Message)
	}
}

func TestAPIErrorPlainBody(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("/v1/user/profile/basic", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"user_id":1}`))
	})
	mux.HandleFunc("/v1/cycle", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("bad gateway"))
	})

	client, _ := newTestClient(t, mux)

	_, err := client.Cycle.List(context.Background(), nil)

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("err = %v, want *APIError", err)
	}
	if apiErr.Message != "bad gateway" {
		t.Errorf("Message = %q, want raw body", apiErr.Message)
	}
}
