package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/abdidvp/polaxis/internal/application"
	"github.com/abdidvp/polaxis/internal/domain"
)

const answersHelp = `Answers as a JSON object mapping question id to an integer in -2..2, e.g. {"econ-1": 2, "gov-3": -1}`

func registerTools(s *server.MCPServer, classify *application.ClassifyService, compare *application.CompareService) {
	// 1. polaxis_classify
	s.AddTool(
		mcplib.NewTool("polaxis_classify",
			mcplib.WithDescription("Classify one respondent's answers into axis positions, a five-letter archetype and close alternatives"),
			mcplib.WithString("answers", mcplib.Required(), mcplib.Description(answersHelp)),
			mcplib.WithString("respondent_id", mcplib.Description("Optional respondent label stored with the result")),
			mcplib.WithBoolean("save", mcplib.Description("Persist the result in the configured store")),
		),
		handleClassify(classify),
	)

	// 2. polaxis_compare
	s.AddTool(
		mcplib.NewTool("polaxis_compare",
			mcplib.WithDescription("Compare two respondents who answered the same question bank"),
			mcplib.WithString("a", mcplib.Required(), mcplib.Description(answersHelp)),
			mcplib.WithString("b", mcplib.Required(), mcplib.Description(answersHelp)),
		),
		handleCompare(compare),
	)

	// 3. polaxis_resolve_code
	s.AddTool(
		mcplib.NewTool("polaxis_resolve_code",
			mcplib.WithDescription("Look up the archetype name and traits for a five-letter code such as ELPSG"),
			mcplib.WithString("code", mcplib.Required(), mcplib.Description("Five-letter archetype code")),
		),
		handleResolveCode(),
	)

	// 4. polaxis_list_archetypes
	s.AddTool(
		mcplib.NewTool("polaxis_list_archetypes",
			mcplib.WithDescription("List all 32 archetypes with their codes and traits"),
		),
		handleListArchetypes(),
	)

	// 5. polaxis_get_result
	s.AddTool(
		mcplib.NewTool("polaxis_get_result",
			mcplib.WithDescription("Fetch a saved classification by result id"),
			mcplib.WithString("id", mcplib.Required(), mcplib.Description("Result id returned by polaxis_classify with save=true")),
		),
		handleGetResult(classify),
	)
}

func handleClassify(svc *application.ClassifyService) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		args := request.GetArguments()
		answers, err := parseAnswers(args["answers"])
		if err != nil {
			return errorResult(err.Error()), nil
		}
		respondent, _ := args["respondent_id"].(string)
		save, _ := args["save"].(bool)

		res, err := svc.Classify(ctx, answers, application.ClassifyOptions{RespondentID: respondent, Save: save})
		if err != nil {
			return errorResult(fmt.Sprintf("classify failed: %v", err)), nil
		}
		return jsonResult(res)
	}
}

func handleCompare(svc *application.CompareService) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		args := request.GetArguments()
		a, err := parseAnswers(args["a"])
		if err != nil {
			return errorResult("a: " + err.Error()), nil
		}
		b, err := parseAnswers(args["b"])
		if err != nil {
			return errorResult("b: " + err.Error()), nil
		}

		rep, err := svc.Compare(ctx, a, b)
		if err != nil {
			return errorResult(fmt.Sprintf("compare failed: %v", err)), nil
		}
		return jsonResult(rep)
	}
}

func handleResolveCode() server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		code, err := request.RequireString("code")
		if err != nil {
			return errorResult(err.Error()), nil
		}
		a, ok := domain.LookupArchetype(strings.ToUpper(strings.TrimSpace(code)))
		if !ok {
			return errorResult(fmt.Sprintf("unknown archetype code %q", code)), nil
		}
		return jsonResult(a)
	}
}

func handleListArchetypes() server.ToolHandlerFunc {
	return func(_ context.Context, _ mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		return jsonResult(domain.AllArchetypes())
	}
}

func handleGetResult(svc *application.ClassifyService) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		id, err := request.RequireString("id")
		if err != nil {
			return errorResult(err.Error()), nil
		}
		rec, err := svc.Result(ctx, id)
		switch {
		case errors.Is(err, domain.ErrResultNotFound):
			return errorResult(fmt.Sprintf("no result with id %q", id)), nil
		case err != nil:
			return errorResult(err.Error()), nil
		}
		return jsonResult(rec)
	}
}

// parseAnswers accepts the answers either as a JSON string or as an object
// the client already decoded.
func parseAnswers(v any) (domain.Answers, error) {
	var data []byte
	switch t := v.(type) {
	case nil:
		return nil, errors.New("answers are required")
	case string:
		data = []byte(t)
	default:
		var err error
		if data, err = json.Marshal(t); err != nil {
			return nil, fmt.Errorf("encoding answers: %w", err)
		}
	}

	var raw map[string]int64
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("answers must be an object of integers: %w", err)
	}
	return domain.AnswersFromInt64(raw), nil
}

// jsonResult marshals v to JSON and returns it as a text content result.
func jsonResult(v any) (*mcplib.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling result: %w", err)
	}
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(string(data))},
	}, nil
}

// errorResult returns a tool result that indicates an error occurred.
func errorResult(msg string) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(msg)},
		IsError: true,
	}
}
