package clientutils_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/krastod/airdropscout"
	"github.com/krastod/airdropscout/internal/clientutils"
)

type echoResponse struct {
	Message string `json:"message"`
}

func TestDoJSON(t *testing.T) {
	var gotHeader string
	var gotBody map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s, want POST", r.Method)
		}
		gotHeader = r.Header.Get("x-test")
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		_, _ = w.Write([]byte(`{"message":"hi"}`))
	}))
	defer server.Close()

	got, err := clientutils.DoJSON[echoResponse](t.Context(), server.Client(), "test", clientutils.JSONRequestConfig{
		URL:     server.URL,
		Headers: map[string]string{"x-test": "yes"},
		Body:    map[string]any{"q": "ping"},
	})
	if err != nil {
		t.Fatalf("DoJSON returned error: %v", err)
	}
	if diff := cmp.Diff(&echoResponse{Message: "hi"}, got); diff != "" {
		t.Errorf("response mismatch (-want +got):\n%s", diff)
	}
	if gotHeader != "yes" {
		t.Errorf("x-test header = %q", gotHeader)
	}
	if diff := cmp.Diff(map[string]any{"q": "ping"}, gotBody); diff != "" {
		t.Errorf("body mismatch (-want +got):\n%s", diff)
	}
}

func TestDoJSONErrorKinds(t *testing.T) {
	cases := []struct {
		name       string
		handler    http.HandlerFunc
		wantKind   airdropscout.Kind
		wantStatus int
	}{
		{
			name: "status",
			handler: func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, `{"error":"quota"}`, http.StatusTooManyRequests)
			},
			wantKind:   airdropscout.StatusCode,
			wantStatus: http.StatusTooManyRequests,
		},
		{
			name: "malformed body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte("not json"))
			},
			wantKind: airdropscout.Invariant,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			server := httptest.NewServer(tc.handler)
			defer server.Close()

			_, err := clientutils.DoJSON[echoResponse](t.Context(), server.Client(), "test", clientutils.JSONRequestConfig{URL: server.URL})
			var genErr *airdropscout.GeneratorError
			if !errors.As(err, &genErr) {
				t.Fatalf("expected GeneratorError, got %v", err)
			}
			if genErr.Kind != tc.wantKind {
				t.Errorf("kind = %s, want %s", genErr.Kind, tc.wantKind)
			}
			if genErr.Status != tc.wantStatus {
				t.Errorf("status = %d, want %d", genErr.Status, tc.wantStatus)
			}
		})
	}
}

func TestDoJSONTransportError(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()

	_, err := clientutils.DoJSON[echoResponse](t.Context(), http.DefaultClient, "test", clientutils.JSONRequestConfig{URL: url})
	var genErr *airdropscout.GeneratorError
	if !errors.As(err, &genErr) || genErr.Kind != airdropscout.Transport {
		t.Fatalf("expected transport error, got %v", err)
	}
}
