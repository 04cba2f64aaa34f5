package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/perch-labs/perch-cli/internal/core/domain"
)

const (
	// uriScheme is the custom URI scheme for Perch resources.
	uriScheme = "perch://"

	// recentLimit caps the recent-files resource.
	recentLimit = 50
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	// Static resource listing the most recently indexed files.
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "recent",
		Name:        "recent",
		Description: "The most recently indexed files",
		MIMEType:    "application/json",
	}, s.handleRecentResource)
}

// handleRecentResource browses the index with an empty query, which
// returns files in reverse indexing order.
func (s *Server) handleRecentResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	outcome := s.ports.Session.Fetch(ctx, domain.SearchRequest{Limit: recentLimit})
	if outcome.Err != nil {
		return nil, fmt.Errorf("browsing index: %w", outcome.Err)
	}

	data, err := json.MarshalIndent(outcome.Hits, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling hits: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}
