package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/perch-labs/perch-cli/internal/core/domain"
	"github.com/perch-labs/perch-cli/internal/core/services"
)

var (
	searchLimit int
	searchPage  int
	searchJSON  bool
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search indexed files",
	Long: `Searches the local index by keyword. An empty query browses the
whole index in reverse indexing order. Results are paginated against a
capped total, so very large result sets stay browsable.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().IntVarP(&searchLimit, "limit", "n", 0, "results per page (default from config)")
	searchCmd.Flags().IntVarP(&searchPage, "page", "p", 0, "zero-based page of results")
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "output results as JSON")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	if indexPort == nil {
		return errors.New("index not configured")
	}

	query := ""
	if len(args) > 0 {
		query = args[0]
	}

	session := services.NewSession(indexPort, logNotifier{}, settings)
	session.SetQuery(query)
	req := session.CommitQuery()

	if searchLimit > 0 {
		req.Limit = searchLimit
	}
	capLimit := session.Pagination().CapLimit
	page := domain.ClampRequestedPage(searchPage, req.Limit, capLimit)
	req.Offset = page * req.Limit

	outcome := session.Fetch(cmd.Context(), req)
	if outcome.Err != nil {
		return fmt.Errorf("search failed: %w", outcome.Err)
	}

	bounds := domain.ComputeBounds(outcome.TotalHits, req.Limit, capLimit)

	// The result set may end before the requested page; land on its
	// last page rather than printing an empty one.
	if page > 0 && page >= bounds.TotalPages {
		page = bounds.TotalPages - 1
		if page < 0 {
			page = 0
		}
		req.Offset = page * req.Limit
		outcome = session.Fetch(cmd.Context(), req)
		if outcome.Err != nil {
			return fmt.Errorf("search failed: %w", outcome.Err)
		}
	}

	if searchJSON {
		return outputSearchJSON(cmd, outcome, bounds, page)
	}
	return outputSearchTable(cmd, outcome, bounds, page)
}

func outputSearchJSON(cmd *cobra.Command, outcome domain.SearchOutcome, bounds domain.PageBounds, page int) error {
	payload := struct {
		Query       string       `json:"query"`
		Hits        []domain.Hit `json:"hits"`
		TotalHits   int          `json:"total_hits"`
		CappedTotal int          `json:"capped_total"`
		Page        int          `json:"page"`
		TotalPages  int          `json:"total_pages"`
	}{
		Query:       outcome.Request.Text,
		Hits:        outcome.Hits,
		TotalHits:   outcome.TotalHits,
		CappedTotal: bounds.CappedTotal,
		Page:        page,
		TotalPages:  bounds.TotalPages,
	}
	if payload.Hits == nil {
		payload.Hits = []domain.Hit{}
	}

	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal results: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func outputSearchTable(cmd *cobra.Command, outcome domain.SearchOutcome, bounds domain.PageBounds, page int) error {
	if len(outcome.Hits) == 0 {
		cmd.Println("No results found.")
		return nil
	}

	cmd.Printf("Results (%d", outcome.TotalHits)
	if bounds.CappedTotal < outcome.TotalHits {
		cmd.Printf(", first %d browsable", bounds.CappedTotal)
	}
	cmd.Println("):")
	cmd.Println()

	offset := outcome.Request.Offset
	for i := range outcome.Hits {
		hit := &outcome.Hits[i]
		cmd.Printf("  [%d] %s\n", offset+i+1, hit.Name)
		cmd.Printf("      %s\n", hit.Path)
		if snippet := hit.Snippet(); snippet != "" {
			cmd.Printf("      %s\n", strings.ReplaceAll(snippet, "\n", " "))
		}
		cmd.Println()
	}

	if bounds.TotalPages > 1 {
		cmd.Printf("Page %d of %d\n", page+1, bounds.TotalPages)
	}

	return nil
}
