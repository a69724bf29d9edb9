package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/krastod/airdropscout"
	"github.com/krastod/airdropscout/google"
	"github.com/krastod/airdropscout/internal/config"
	"github.com/krastod/airdropscout/internal/logging"
	"github.com/krastod/airdropscout/internal/render"
	"github.com/krastod/airdropscout/internal/server"
	"github.com/krastod/airdropscout/internal/telemetry"
	"github.com/sanity-io/litter"
	"golang.org/x/sync/errgroup"
)

var version = "dev"

const (
	exitOK    = 0
	exitFault = 1
	exitUsage = 2

	shutdownTimeout = 10 * time.Second
)

func main() {
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	if len(args) < 1 {
		usage(stderr)
		return exitUsage
	}
	switch args[0] {
	case "analyze":
		return cmdAnalyze(ctx, args[1:], stdout, stderr)
	case "classify":
		return cmdClassify(args[1:], stdout, stderr)
	case "serve":
		return cmdServe(ctx, args[1:], stderr)
	case "mcp":
		return cmdMCP(ctx, args[1:], stderr)
	case "-h", "--help", "help":
		usage(stdout)
		return exitOK
	default:
		fmt.Fprintf(stderr, "unknown command: %s\n", args[0])
		usage(stderr)
		return exitUsage
	}
}

func usage(w io.Writer) {
	fmt.Fprint(w, `airdropscout finds airdrops a wallet may be eligible for.
Usage:
  airdropscout analyze [-json] [-debug] <address>
  airdropscout classify [-json] <address>
  airdropscout serve [-addr host:port]
  airdropscout mcp

Env:
  GEMINI_API_KEY                Gemini API key (fallbacks: API_KEY, GOOGLE_API_KEY)
  GEMINI_MODEL                  model id (default gemini-2.5-flash)
  GEMINI_BASE_URL               override the Gemini endpoint
  AIRDROPSCOUT_TEMPERATURE      sampling temperature (default 0.4)
  AIRDROPSCOUT_LANGUAGE         en|bg
  AIRDROPSCOUT_ADDR             serve address (default :8080)
  AIRDROPSCOUT_CORS_ORIGIN      Access-Control-Allow-Origin for serve
  AIRDROPSCOUT_LOG_LEVEL        debug|info|warn|error
  OTEL_EXPORTER_OTLP_ENDPOINT   enable OTLP/HTTP trace export
`)
}

// setup loads configuration, installs the logger and tracing, and builds the
// session shared by every command that reaches the model.
func setup(ctx context.Context, stderr io.Writer) (*airdropscout.Session, config.Config, telemetry.ShutdownFunc, error) {
	cfg, err := config.Load()
	logging.SetLogger(logging.New(stderr, cfg.LogLevel))
	if err != nil {
		return nil, cfg, nil, err
	}
	logger := logging.Logger()
	logger.Debug("config loaded", slog.Any("config", cfg))

	shutdown, err := telemetry.Init(ctx, cfg.OTLPEndpoint, "airdropscout")
	if err != nil {
		return nil, cfg, nil, err
	}

	generator := google.NewGoogleGenerator(cfg.Model, google.GoogleGeneratorOptions{
		APIKey:  cfg.APIKey,
		BaseURL: cfg.BaseURL,
	})
	analyzer := airdropscout.NewAnalyzer(generator,
		airdropscout.WithLogger(logger),
		airdropscout.WithLanguage(cfg.Language),
		airdropscout.WithTemperature(cfg.Temperature),
	)
	return airdropscout.NewSession(analyzer), cfg, shutdown, nil
}

func flushTelemetry(shutdown telemetry.ShutdownFunc) {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := shutdown(ctx); err != nil {
		logging.Logger().Warn("telemetry shutdown", slog.String("error", err.Error()))
	}
}

func cmdAnalyze(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("analyze", flag.ContinueOnError)
	fs.SetOutput(stderr)
	asJSON := fs.Bool("json", false, "print the result as JSON")
	debug := fs.Bool("debug", false, "dump the raw result to stderr")
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(stderr, "usage: airdropscout analyze [-json] [-debug] <address>")
		return exitUsage
	}
	address := fs.Arg(0)

	session, cfg, shutdown, err := setup(ctx, stderr)
	if err != nil {
		fmt.Fprintln(stderr, "error:", err)
		return exitUsage
	}
	defer flushTelemetry(shutdown)

	result, outcome, err := session.Submit(ctx, address)
	switch {
	case errors.Is(err, airdropscout.ErrAddressTooShort):
		fmt.Fprintln(stderr, "error:", err)
		return exitUsage
	case err != nil:
		fmt.Fprintln(stderr, session.Analyzer().Messages().ServiceUnavailable)
		return exitFault
	}

	if *debug {
		fmt.Fprintln(stderr, litter.Sdump(outcome, result))
	}

	if *asJSON {
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(result); err != nil {
			fmt.Fprintln(stderr, "error:", err)
			return exitFault
		}
		return exitOK
	}

	if err := render.Text(stdout, address, result, render.WithLanguage(cfg.Language)); err != nil {
		fmt.Fprintln(stderr, "error:", err)
		return exitFault
	}
	return exitOK
}

func cmdClassify(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("classify", flag.ContinueOnError)
	fs.SetOutput(stderr)
	asJSON := fs.Bool("json", false, "print the result as JSON")
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(stderr, "usage: airdropscout classify [-json] <address>")
		return exitUsage
	}

	address := fs.Arg(0)
	walletType := airdropscout.Classify(address)
	if *asJSON {
		_ = json.NewEncoder(stdout).Encode(map[string]string{
			"address":    address,
			"walletType": string(walletType),
			"label":      walletType.Label(),
		})
		return exitOK
	}
	fmt.Fprintf(stdout, "%s\t%s\n", walletType, walletType.Label())
	return exitOK
}

func cmdServe(ctx context.Context, args []string, stderr io.Writer) int {
	fs := flag.NewFlagSet("serve", flag.ContinueOnError)
	fs.SetOutput(stderr)
	addr := fs.String("addr", "", "listen address (default $AIRDROPSCOUT_ADDR or :8080)")
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}

	session, cfg, shutdown, err := setup(ctx, stderr)
	if err != nil {
		fmt.Fprintln(stderr, "error:", err)
		return exitUsage
	}
	defer flushTelemetry(shutdown)

	if *addr == "" {
		*addr = cfg.Addr
	}
	logger := logging.Logger()
	srv := server.New(session, server.Options{CORSOrigin: cfg.CORSOrigin, Logger: logger, Version: version})
	httpServer := &http.Server{
		Addr:              *addr,
		Handler:           srv.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("server listening", slog.String("addr", *addr))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		logger.Info("server shutting down")
		return httpServer.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Error("server stopped", slog.String("error", err.Error()))
		return exitFault
	}
	return exitOK
}

func cmdMCP(ctx context.Context, args []string, stderr io.Writer) int {
	fs := flag.NewFlagSet("mcp", flag.ContinueOnError)
	fs.SetOutput(stderr)
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}

	session, cfg, shutdown, err := setup(ctx, stderr)
	if err != nil {
		fmt.Fprintln(stderr, "error:", err)
		return exitUsage
	}
	defer flushTelemetry(shutdown)

	srv := server.New(session, server.Options{CORSOrigin: cfg.CORSOrigin, Version: version})
	if err := srv.RunStdio(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logging.Logger().Error("mcp stopped", slog.String("error", err.Error()))
		return exitFault
	}
	return exitOK
}
