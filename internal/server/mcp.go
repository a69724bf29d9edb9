package server

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"

	"github.com/krastod/airdropscout"
	"github.com/krastod/airdropscout/internal/render"
	gomcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	AnalyzeToolName  = "analyze_wallet"
	ClassifyToolName = "classify_wallet"
)

type walletArgs struct {
	Address string `json:"address" jsonschema:"the public wallet address to inspect"`
}

func newMCPServer(s *Server, version string) *gomcp.Server {
	server := gomcp.NewServer(&gomcp.Implementation{Name: "airdropscout", Version: version}, nil)

	gomcp.AddTool(server, &gomcp.Tool{
		Name:        AnalyzeToolName,
		Description: "Search the web for airdrops the given wallet may be eligible for. Returns the result as JSON followed by a readable report.",
	}, s.analyzeTool)

	gomcp.AddTool(server, &gomcp.Tool{
		Name:        ClassifyToolName,
		Description: "Guess the blockchain network of a wallet address from its format. Does not call the network or the model.",
	}, s.classifyTool)

	return server
}

func (s *Server) analyzeTool(ctx context.Context, _ *gomcp.CallToolRequest, args walletArgs) (*gomcp.CallToolResult, any, error) {
	result, outcome, err := s.session.Submit(ctx, args.Address)
	if err != nil {
		_, message := s.errorStatus(err)
		s.logger.Warn("mcp analyze rejected", slog.String("error", err.Error()))
		return toolError(message), nil, nil
	}

	payload, err := json.Marshal(analyzeResponse{
		SearchResult: result,
		Outcome:      outcome,
		Breakdown:    airdropscout.CategoryBreakdown(result.Airdrops),
	})
	if err != nil {
		return nil, nil, err
	}

	var report strings.Builder
	lang := s.session.Analyzer().Language()
	if err := render.Text(&report, strings.TrimSpace(args.Address), result, render.WithLanguage(lang)); err != nil {
		return nil, nil, err
	}

	return &gomcp.CallToolResult{
		Content: []gomcp.Content{
			&gomcp.TextContent{Text: string(payload)},
			&gomcp.TextContent{Text: report.String()},
		},
	}, nil, nil
}

func (s *Server) classifyTool(_ context.Context, _ *gomcp.CallToolRequest, args walletArgs) (*gomcp.CallToolResult, any, error) {
	address := strings.TrimSpace(args.Address)
	if address == "" {
		return toolError("address is required"), nil, nil
	}
	payload, err := json.Marshal(classify(address))
	if err != nil {
		return nil, nil, err
	}
	return &gomcp.CallToolResult{
		Content: []gomcp.Content{&gomcp.TextContent{Text: string(payload)}},
	}, nil, nil
}

func toolError(message string) *gomcp.CallToolResult {
	return &gomcp.CallToolResult{
		IsError: true,
		Content: []gomcp.Content{&gomcp.TextContent{Text: message}},
	}
}
