package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/abdidvp/polaxis/internal/application"
	"github.com/abdidvp/polaxis/internal/domain"
)

const (
	archetypesURI = "polaxis://archetypes"
	bankURI       = "polaxis://bank"
)

type bankSummary struct {
	Version       string            `json:"version"`
	Title         string            `json:"title,omitempty"`
	Source        string            `json:"source,omitempty"`
	QuestionCount int               `json:"question_count"`
	Questions     []domain.Question `json:"questions"`
}

func registerResources(s *server.MCPServer, classify *application.ClassifyService) {
	// 1. polaxis://archetypes - the 32-entry table
	s.AddResource(
		mcplib.NewResource(
			archetypesURI,
			"Archetypes",
			mcplib.WithResourceDescription("All 32 archetypes with codes and traits"),
			mcplib.WithMIMEType("application/json"),
		),
		handleArchetypesResource(),
	)

	// 2. polaxis://bank - the loaded question bank
	s.AddResource(
		mcplib.NewResource(
			bankURI,
			"Question Bank",
			mcplib.WithResourceDescription("The question bank answers are classified against"),
			mcplib.WithMIMEType("application/json"),
		),
		handleBankResource(classify),
	)

	// 3. polaxis://archetypes/{code} - one archetype (resource template)
	s.AddResourceTemplate(
		mcplib.NewResourceTemplate(
			archetypesURI+"/{code}",
			"Archetype",
			mcplib.WithTemplateDescription("Name and traits of one archetype code"),
			mcplib.WithTemplateMIMEType("application/json"),
		),
		handleArchetypeResource(),
	)
}

func handleArchetypesResource() server.ResourceHandlerFunc {
	return func(_ context.Context, _ mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
		return jsonContents(archetypesURI, domain.AllArchetypes())
	}
}

func handleBankResource(classify *application.ClassifyService) server.ResourceHandlerFunc {
	return func(_ context.Context, _ mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
		b := classify.Bank()
		return jsonContents(bankURI, bankSummary{
			Version:       b.Version,
			Title:         b.Title,
			Source:        b.Source,
			QuestionCount: len(b.Questions),
			Questions:     b.Questions,
		})
	}
}

func handleArchetypeResource() server.ResourceTemplateHandlerFunc {
	return func(_ context.Context, request mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
		code := strings.ToUpper(templateArg(request.Params.Arguments, "code"))
		if code == "" {
			code = strings.ToUpper(strings.TrimPrefix(request.Params.URI, archetypesURI+"/"))
		}
		a, ok := domain.LookupArchetype(code)
		if !ok {
			return nil, fmt.Errorf("unknown archetype code %q", code)
		}
		return jsonContents(request.Params.URI, a)
	}
}

// templateArg reads a matched template variable, which arrives as a string
// or as the list of values the template matched.
func templateArg(args map[string]any, name string) string {
	switch v := args[name].(type) {
	case string:
		return v
	case []string:
		if len(v) > 0 {
			return v[0]
		}
	}
	return ""
}

func jsonContents(uri string, v any) ([]mcplib.ResourceContents, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling %s: %w", uri, err)
	}
	return []mcplib.ResourceContents{
		mcplib.TextResourceContents{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
