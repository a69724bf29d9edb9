package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

const evmAddress = "0xde0B295669a9FD93d5F28D9Ec85E40f4cb697BAe"

func setEnv(t *testing.T, baseURL string) {
	t.Helper()
	for _, key := range []string{"API_KEY", "GOOGLE_API_KEY", "GEMINI_MODEL", "AIRDROPSCOUT_TEMPERATURE", "AIRDROPSCOUT_LANGUAGE", "OTEL_EXPORTER_OTLP_ENDPOINT"} {
		t.Setenv(key, "")
	}
	t.Setenv("GEMINI_API_KEY", "test-key")
	t.Setenv("GEMINI_BASE_URL", baseURL)
	t.Setenv("AIRDROPSCOUT_LOG_LEVEL", "error")
}

func newGemini(t *testing.T, status int, text string) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		if status >= 400 {
			_, _ = w.Write([]byte(`{"error":{"message":"boom"}}`))
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"candidates": []any{map[string]any{
				"content": map[string]any{"parts": []any{map[string]any{"text": text}}},
				"groundingMetadata": map[string]any{
					"groundingChunks": []any{map[string]any{"web": map[string]any{"uri": "https://www.coindesk.com/x"}}},
				},
			}},
		})
	}))
	t.Cleanup(server.Close)
	return server
}

func TestRunUsage(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if code := run(t.Context(), nil, &stdout, &stderr); code != exitUsage {
		t.Errorf("no args exit = %d, want %d", code, exitUsage)
	}
	if code := run(t.Context(), []string{"bogus"}, &stdout, &stderr); code != exitUsage {
		t.Errorf("unknown command exit = %d, want %d", code, exitUsage)
	}
	if !strings.Contains(stderr.String(), "unknown command: bogus") {
		t.Errorf("stderr = %q", stderr.String())
	}
	if code := run(t.Context(), []string{"analyze"}, &stdout, &stderr); code != exitUsage {
		t.Errorf("analyze without address exit = %d, want %d", code, exitUsage)
	}
}

func TestRunClassify(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if code := run(t.Context(), []string{"classify", "-json", evmAddress}, &stdout, &stderr); code != exitOK {
		t.Fatalf("exit = %d, stderr %s", code, stderr.String())
	}
	var got map[string]string
	if err := json.Unmarshal(stdout.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	want := map[string]string{"address": evmAddress, "walletType": "EVM", "label": "EVM (Ethereum/L2s)"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("classify mismatch (-want +got):\n%s", diff)
	}
}

func TestRunAnalyzeText(t *testing.T) {
	gemini := newGemini(t, http.StatusOK, "```json\n"+`{"summary":"One drop.","airdrops":[{"name":"Scroll","token":"SCR","status":"Active","category":"L2"}]}`+"\n```")
	setEnv(t, gemini.URL)

	var stdout, stderr bytes.Buffer
	if code := run(t.Context(), []string{"analyze", evmAddress}, &stdout, &stderr); code != exitOK {
		t.Fatalf("exit = %d, stderr %s", code, stderr.String())
	}
	for _, want := range []string{"0xde0B...7BAe", "\"One drop.\"", "1. Scroll [SCR] (Active)", "www.coindesk.com"} {
		if !strings.Contains(stdout.String(), want) {
			t.Errorf("stdout missing %q\n%s", want, stdout.String())
		}
	}
}

func TestRunAnalyzeJSON(t *testing.T) {
	gemini := newGemini(t, http.StatusOK, "no json here")
	setEnv(t, gemini.URL)

	var stdout, stderr bytes.Buffer
	if code := run(t.Context(), []string{"analyze", "-json", evmAddress}, &stdout, &stderr); code != exitOK {
		t.Fatalf("exit = %d, stderr %s", code, stderr.String())
	}
	var got map[string]any
	if err := json.Unmarshal(stdout.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if diff := cmp.Diff([]any{}, got["airdrops"]); diff != "" {
		t.Errorf("airdrops mismatch (-want +got):\n%s", diff)
	}
	if got["walletType"] != "EVM" {
		t.Errorf("walletType = %v", got["walletType"])
	}
}

func TestRunAnalyzeHardFailure(t *testing.T) {
	gemini := newGemini(t, http.StatusInternalServerError, "")
	setEnv(t, gemini.URL)

	var stdout, stderr bytes.Buffer
	if code := run(t.Context(), []string{"analyze", evmAddress}, &stdout, &stderr); code != exitFault {
		t.Fatalf("exit = %d, want %d", code, exitFault)
	}
	if !strings.Contains(stderr.String(), "Please try again later.") {
		t.Errorf("stderr = %q", stderr.String())
	}
	if stdout.Len() != 0 {
		t.Errorf("stdout should be empty, got %q", stdout.String())
	}
}

func TestRunAnalyzeShortAddress(t *testing.T) {
	setEnv(t, "http://127.0.0.1:0")

	var stdout, stderr bytes.Buffer
	if code := run(t.Context(), []string{"analyze", "0x1234"}, &stdout, &stderr); code != exitUsage {
		t.Fatalf("exit = %d, want %d", code, exitUsage)
	}
}

func TestRunAnalyzeMissingKey(t *testing.T) {
	setEnv(t, "http://127.0.0.1:0")
	t.Setenv("GEMINI_API_KEY", "")

	var stdout, stderr bytes.Buffer
	if code := run(t.Context(), []string{"analyze", evmAddress}, &stdout, &stderr); code != exitUsage {
		t.Fatalf("exit = %d, want %d", code, exitUsage)
	}
	if !strings.Contains(stderr.String(), "GEMINI_API_KEY") {
		t.Errorf("stderr = %q", stderr.String())
	}
}
