// Package server exposes the analyzer over HTTP and the Model Context
// Protocol.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/krastod/airdropscout"
	"github.com/krastod/airdropscout/internal/logging"
	gomcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	RequestIDHeader = "X-Request-ID"
	maxBodyBytes    = 1 << 16
)

type Options struct {
	// CORSOrigin is sent as Access-Control-Allow-Origin. Empty disables CORS headers.
	CORSOrigin string
	Logger     *slog.Logger
	// Version is reported to MCP clients.
	Version string
}

// Server routes HTTP and MCP requests to a single Session.
type Server struct {
	session    *airdropscout.Session
	logger     *slog.Logger
	corsOrigin string
	mcp        *gomcp.Server
	handler    http.Handler
}

type analyzeRequest struct {
	Address string `json:"address"`
}

type analyzeResponse struct {
	*airdropscout.SearchResult
	Outcome   airdropscout.Outcome         `json:"outcome"`
	Breakdown []airdropscout.CategoryCount `json:"breakdown"`
}

type classifyResponse struct {
	Address    string                  `json:"address"`
	WalletType airdropscout.WalletType `json:"walletType"`
	Label      string                  `json:"label"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func New(session *airdropscout.Session, options Options) *Server {
	logger := options.Logger
	if logger == nil {
		logger = logging.Logger()
	}
	version := options.Version
	if version == "" {
		version = "dev"
	}

	s := &Server{
		session:    session,
		logger:     logger,
		corsOrigin: options.CORSOrigin,
	}
	s.mcp = newMCPServer(s, version)

	mux := http.NewServeMux()
	mux.HandleFunc("POST /analyze", s.handleAnalyze)
	mux.HandleFunc("GET /classify", s.handleClassify)
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("OK"))
	})
	mux.Handle("/mcp", gomcp.NewStreamableHTTPHandler(
		func(*http.Request) *gomcp.Server { return s.mcp },
		&gomcp.StreamableHTTPOptions{Stateless: true, JSONResponse: true},
	))

	s.handler = s.withRequestID(s.withCORS(mux))
	return s
}

// Handler returns the root HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.handler
}

// MCPServer returns the MCP server backing both /mcp and RunStdio.
func (s *Server) MCPServer() *gomcp.Server {
	return s.mcp
}

// RunStdio serves MCP over stdin/stdout until ctx is done or the client
// disconnects.
func (s *Server) RunStdio(ctx context.Context) error {
	return s.mcp.Run(ctx, &gomcp.StdioTransport{})
}

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req analyzeRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	result, outcome, err := s.session.Submit(r.Context(), req.Address)
	if err != nil {
		status, message := s.errorStatus(err)
		s.requestLogger(r).Warn("analyze rejected",
			slog.Int("status", status),
			slog.String("error", err.Error()),
		)
		writeJSON(w, status, errorResponse{Error: message})
		return
	}

	writeJSON(w, http.StatusOK, analyzeResponse{
		SearchResult: result,
		Outcome:      outcome,
		Breakdown:    airdropscout.CategoryBreakdown(result.Airdrops),
	})
}

func (s *Server) handleClassify(w http.ResponseWriter, r *http.Request) {
	address := strings.TrimSpace(r.URL.Query().Get("address"))
	if address == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "address query parameter is required"})
		return
	}
	writeJSON(w, http.StatusOK, classify(address))
}

func classify(address string) classifyResponse {
	walletType := airdropscout.Classify(address)
	return classifyResponse{
		Address:    address,
		WalletType: walletType,
		Label:      walletType.Label(),
	}
}

// errorStatus maps a Session error to an HTTP status and a client message.
func (s *Server) errorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, airdropscout.ErrAddressTooShort):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, airdropscout.ErrBusy):
		return http.StatusConflict, err.Error()
	default:
		return http.StatusBadGateway, s.session.Analyzer().Messages().ServiceUnavailable
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s.corsOrigin != "" {
			w.Header().Set("Access-Control-Allow-Origin", s.corsOrigin)
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Accept, Mcp-Session-Id, Mcp-Protocol-Version, "+RequestIDHeader)
			w.Header().Set("Access-Control-Expose-Headers", RequestIDHeader)
			if r.Method == http.MethodOptions && r.Header.Get("Access-Control-Request-Method") != "" {
				w.WriteHeader(http.StatusNoContent)
				return
			}
		}
		next.ServeHTTP(w, r)
	})
}

type requestIDKey struct{}

func (s *Server) withRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(RequestIDHeader)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
		}
		w.Header().Set(RequestIDHeader, id)
		r = r.WithContext(context.WithValue(r.Context(), requestIDKey{}, id))

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()
		next.ServeHTTP(rec, r)

		s.logger.Info("http request",
			slog.String("request_id", id),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Int("status", rec.status),
			slog.Duration("duration", time.Since(start)),
		)
	})
}

// RequestID returns the id assigned to the request carried by ctx.
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

func (s *Server) requestLogger(r *http.Request) *slog.Logger {
	return s.logger.With(slog.String("request_id", RequestID(r.Context())))
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func (r *statusRecorder) Flush() {
	if f, ok := r.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

func (r *statusRecorder) Unwrap() http.ResponseWriter {
	return r.ResponseWriter
}
