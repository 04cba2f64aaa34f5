package mcp

import (
	"context"
	"errors"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/perch-labs/perch-cli/internal/core/domain"
)

// SearchInput is the input schema for the search tool.
type SearchInput struct {
	Query string `json:"query" jsonschema:"the search query; empty browses the whole index"`
	Page  int    `json:"page,omitempty" jsonschema:"zero-based page of results (default 0)"`
	Limit int    `json:"limit,omitempty" jsonschema:"results per page (default 24)"`
}

// SearchOutput is the output schema for the search tool.
type SearchOutput struct {
	Hits        []HitOutput `json:"hits"`
	TotalHits   int         `json:"total_hits"`
	CappedTotal int         `json:"capped_total"`
	Page        int         `json:"page"`
	TotalPages  int         `json:"total_pages"`
}

// HitOutput represents a single search hit.
type HitOutput struct {
	Path     string `json:"path"`
	Name     string `json:"name"`
	Snippet  string `json:"snippet,omitempty"`
	Mime     string `json:"mime,omitempty"`
	Size     int64  `json:"size,omitempty"`
	Modified string `json:"modified,omitempty"`
}

// ForgetInput is the input schema for the forget tool.
type ForgetInput struct {
	Path string `json:"path" jsonschema:"the indexed file path to remove from the index"`
}

// ForgetOutput is the output schema for the forget tool.
type ForgetOutput struct {
	Path      string `json:"path"`
	Forgotten bool   `json:"forgotten"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "search",
		Description: "Search indexed local files by keyword with capped pagination",
	}, s.handleSearch)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "forget",
		Description: "Remove a file from the search index without touching the file on disk",
	}, s.handleForget)
}

// handleSearch handles the search tool invocation.
func (s *Server) handleSearch(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SearchInput,
) (*mcp.CallToolResult, SearchOutput, error) {
	session := s.ports.Session

	session.SetQuery(input.Query)
	req := session.CommitQuery()

	if input.Limit > 0 {
		req.Limit = input.Limit
	}
	capLimit := session.Pagination().CapLimit
	page := domain.ClampRequestedPage(input.Page, req.Limit, capLimit)
	req.Offset = page * req.Limit

	outcome := session.Fetch(ctx, req)
	if outcome.Err != nil {
		return nil, SearchOutput{}, outcome.Err
	}

	bounds := domain.ComputeBounds(outcome.TotalHits, req.Limit, capLimit)

	// The result set may end before the requested page; land on its
	// last page rather than returning an empty one.
	if page > 0 && page >= bounds.TotalPages {
		page = bounds.TotalPages - 1
		if page < 0 {
			page = 0
		}
		req.Offset = page * req.Limit
		outcome = session.Fetch(ctx, req)
		if outcome.Err != nil {
			return nil, SearchOutput{}, outcome.Err
		}
	}
	session.Apply(outcome)

	output := SearchOutput{
		Hits:        make([]HitOutput, len(outcome.Hits)),
		TotalHits:   outcome.TotalHits,
		CappedTotal: bounds.CappedTotal,
		Page:        page,
		TotalPages:  bounds.TotalPages,
	}

	for i := range outcome.Hits {
		hit := &outcome.Hits[i]
		out := HitOutput{
			Path:    hit.Path,
			Name:    hit.Name,
			Snippet: hit.Snippet(),
			Mime:    hit.Mime(),
		}
		if size, ok := hit.Size(); ok {
			out.Size = size
		}
		if modified, ok := hit.Modified(); ok {
			out.Modified = modified.Format("2006-01-02T15:04:05Z07:00")
		}
		output.Hits[i] = out
	}

	return nil, output, nil
}

// handleForget handles the forget tool invocation. The explicit tool
// call stands in for the interactive confirmation.
func (s *Server) handleForget(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ForgetInput,
) (*mcp.CallToolResult, ForgetOutput, error) {
	if s.ports.FileOps == nil {
		return nil, ForgetOutput{}, errors.New("file operations not configured")
	}

	op := domain.FileOperation{Path: input.Path, Kind: domain.FileOpForget}
	if err := s.ports.FileOps.Dispatch(ctx, op); err != nil {
		return nil, ForgetOutput{}, err
	}

	return nil, ForgetOutput{Path: input.Path, Forgotten: true}, nil
}
