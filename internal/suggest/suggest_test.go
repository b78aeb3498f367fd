package suggest

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"
	"time"
)

func TestSuggest_NoProviderUsesFallback(t *testing.T) {
	t.Parallel()

	engine := New("", "")
	ctx := context.Background()

	want := []string{
		"Review buy milk",
		"Follow up on buy milk",
		"Schedule time for buy milk",
	}

	got := engine.Suggest(ctx, "buy milk")
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected fallback: %v", got)
	}

	// Deterministic across repeated calls.
	again := engine.Suggest(ctx, "buy milk")
	if !reflect.DeepEqual(got, again) {
		t.Fatalf("fallback not deterministic: %v vs %v", got, again)
	}
	if len(got) > maxSuggestions {
		t.Fatalf("fallback longer than %d: %v", maxSuggestions, got)
	}
}

func engineForURL(apiKey, url string) *Engine {
	c := newOpenAIClient(apiKey, "gpt-4o")
	c.baseURL = url
	return &Engine{client: c}
}

func TestSuggest_ProviderSuccess(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer test-key" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"choices":[{"message":{"content":"{\"suggestions\":[\"a\",\"b\",\"c\"]}"}}]}`))
	}))
	defer srv.Close()

	engine := engineForURL("test-key", srv.URL)

	got := engine.Suggest(context.Background(), "plan trip")
	want := []string{"a", "b", "c"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected provider suggestions, got %v", got)
	}
}

func TestSuggest_ProviderTruncatedToMax(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"choices":[{"message":{"content":"{\"suggestions\":[\"a\",\"b\",\"c\",\"d\",\"e\"]}"}}]}`))
	}))
	defer srv.Close()

	engine := engineForURL("k", srv.URL)

	got := engine.Suggest(context.Background(), "x")
	if len(got) != maxSuggestions {
		t.Fatalf("expected %d suggestions, got %d", maxSuggestions, len(got))
	}
}

func TestSuggest_ProviderErrorsFallBack(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "non-2xx status",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusTooManyRequests)
				w.Write([]byte(`{"error":{"message":"quota exceeded","type":"insufficient_quota"}}`))
			},
		},
		{
			name: "body is not JSON",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`<html>gateway error</html>`))
			},
		},
		{
			name: "completion content is not JSON",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{"choices":[{"message":{"content":"here are some ideas"}}]}`))
			},
		},
		{
			name: "suggestions field missing",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{"choices":[{"message":{"content":"{\"ideas\":[\"a\"]}"}}]}`))
			},
		},
		{
			name: "suggestions not strings",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{"choices":[{"message":{"content":"{\"suggestions\":[1,2,3]}"}}]}`))
			},
		},
		{
			name: "no choices",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{"choices":[]}`))
			},
		},
	}

	want := []string{
		"Review fix the roof",
		"Follow up on fix the roof",
		"Schedule time for fix the roof",
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			srv := httptest.NewServer(tc.handler)
			defer srv.Close()

			engine := engineForURL("k", srv.URL)

			got := engine.Suggest(context.Background(), "fix the roof")
			if !reflect.DeepEqual(got, want) {
				t.Fatalf("expected fallback, got %v", got)
			}
		})
	}
}

func TestSuggest_ProviderUnreachableFallsBack(t *testing.T) {
	t.Parallel()

	// A closed server: the HTTP call itself fails.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	engine := engineForURL("k", url)

	got := engine.Suggest(context.Background(), "buy milk")
	if len(got) != 3 || got[0] != "Review buy milk" {
		t.Fatalf("expected fallback when provider unreachable, got %v", got)
	}
}

func TestSuggest_ProviderTimeoutFallsBack(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Drain the body so the server starts its background read and
		// cancels the request context when the client disconnects.
		io.Copy(io.Discard, r.Body)
		<-r.Context().Done()
	}))
	defer srv.Close()

	engine := engineForURL("k", srv.URL)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	got := engine.Suggest(ctx, "buy milk")
	if len(got) != 3 || got[0] != "Review buy milk" {
		t.Fatalf("expected fallback on timeout, got %v", got)
	}
}
