package domain

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/louisbranch/man3/internal/services/content/catalog"
)

// PracticeURIPrefix addresses practice resources: man3://practices/{id}.
const PracticeURIPrefix = "man3://practices/"

// CatalogSource returns the catalog currently in effect.
type CatalogSource interface {
	Current() *catalog.Catalog
}

func currentCatalog(source CatalogSource) *catalog.Catalog {
	if source != nil {
		if c := source.Current(); c != nil {
			return c
		}
	}
	return catalog.Default()
}

// PracticeListInput is the practice_list tool input.
type PracticeListInput struct{}

// PracticeSummary is one row of the practice list.
type PracticeSummary struct {
	ID        string `json:"id" jsonschema:"base practice identifier, for example BP4"`
	Name      string `json:"name" jsonschema:"base practice name"`
	ShortName string `json:"short_name" jsonschema:"short label"`
}

// PracticeListResult is the practice_list tool output.
type PracticeListResult struct {
	Practices []PracticeSummary `json:"practices" jsonschema:"base practices in catalog order"`
}

// PracticeListTool defines the practice_list tool.
func PracticeListTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "practice_list",
		Description: "Lists the MAN.3 base practices with their identifiers.",
	}
}

// PracticeListHandler lists the current catalog's practices.
func PracticeListHandler(source CatalogSource) mcp.ToolHandlerFor[PracticeListInput, PracticeListResult] {
	return func(_ context.Context, _ *mcp.CallToolRequest, _ PracticeListInput) (*mcp.CallToolResult, PracticeListResult, error) {
		practices := currentCatalog(source).Practices()
		result := PracticeListResult{Practices: make([]PracticeSummary, 0, len(practices))}
		for _, practice := range practices {
			result.Practices = append(result.Practices, PracticeSummary{
				ID:        practice.ID,
				Name:      practice.Name,
				ShortName: practice.ShortName,
			})
		}
		return nil, result, nil
	}
}

// PracticeGetInput is the practice_get tool input.
type PracticeGetInput struct {
	ID string `json:"id" jsonschema:"base practice identifier, case-insensitive"`
}

// PracticeGetResult is the practice_get tool output.
type PracticeGetResult struct {
	Practice catalog.BasePractice `json:"practice" jsonschema:"full base practice card"`
}

// PracticeGetTool defines the practice_get tool.
func PracticeGetTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "practice_get",
		Description: "Returns one MAN.3 base practice with inputs, outputs, L2/L3 criteria, assessor questions and pitfalls.",
	}
}

// PracticeGetHandler looks up one practice.
func PracticeGetHandler(source CatalogSource) mcp.ToolHandlerFor[PracticeGetInput, PracticeGetResult] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input PracticeGetInput) (*mcp.CallToolResult, PracticeGetResult, error) {
		practice, err := lookupPractice(source, input.ID)
		if err != nil {
			return nil, PracticeGetResult{}, err
		}
		return nil, PracticeGetResult{Practice: practice}, nil
	}
}

func lookupPractice(source CatalogSource, practiceID string) (catalog.BasePractice, error) {
	practiceID = strings.TrimSpace(practiceID)
	if practiceID == "" {
		return catalog.BasePractice{}, fmt.Errorf("practice id is required")
	}
	practice, ok := currentCatalog(source).Practice(practiceID)
	if !ok {
		return catalog.BasePractice{}, fmt.Errorf("practice %q not found", practiceID)
	}
	return practice, nil
}

// PracticeResourceTemplate describes the practice card resource.
func PracticeResourceTemplate() *mcp.ResourceTemplate {
	return &mcp.ResourceTemplate{
		Name:        "practice",
		Title:       "Base practice",
		Description: "One MAN.3 base practice card. URI format: man3://practices/{practice_id}",
		MIMEType:    "application/json",
		URITemplate: PracticeURIPrefix + "{practice_id}",
	}
}

// PracticeResourceHandler reads a practice card by URI.
func PracticeResourceHandler(source CatalogSource) mcp.ResourceHandler {
	return func(_ context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
		if req == nil || req.Params == nil || req.Params.URI == "" {
			return nil, fmt.Errorf("practice id is required; use URI format %s{practice_id}", PracticeURIPrefix)
		}
		uri := req.Params.URI
		practiceID, ok := strings.CutPrefix(uri, PracticeURIPrefix)
		if !ok {
			return nil, fmt.Errorf("unexpected practice URI %q", uri)
		}
		practice, err := lookupPractice(source, practiceID)
		if err != nil {
			return nil, err
		}
		data, err := json.MarshalIndent(practice, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("marshal practice: %w", err)
		}
		return &mcp.ReadResourceResult{
			Contents: []*mcp.ResourceContents{
				{
					URI:      uri,
					MIMEType: "application/json",
					Text:     string(data),
				},
			},
		}, nil
	}
}
