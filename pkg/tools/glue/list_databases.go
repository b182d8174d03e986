package glue

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/theapemachine/mcp-server-glue-catalog/core"
	"github.com/theapemachine/mcp-server-glue-catalog/pkg/metrics"
	"github.com/theapemachine/mcp-server-glue-catalog/pkg/tools"
)

// ListDatabasesTool lists the databases in the catalog.
type ListDatabasesTool struct {
	*tools.BaseTool
	catalog Catalog
	metrics metrics.Recorder
}

// NewListDatabasesTool creates the list_databases tool.
func NewListDatabasesTool(c Catalog, rec metrics.Recorder) core.Tool {
	handle := mcp.NewTool(
		"list_databases",
		mcp.WithDescription("List the databases in an AWS Glue Data Catalog"),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithIdempotentHintAnnotation(true),
	)

	return &ListDatabasesTool{
		BaseTool: tools.NewBaseTool(handle.Name, handle),
		catalog:  c,
		metrics:  rec,
	}
}

// Handler executes the tool.
func (t *ListDatabasesTool) Handler(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	inv := begin(t.Name(), t.metrics)
	inv.called()
	inv.logger.Info("Listing databases", "region", t.catalog.Region())

	result, err := t.catalog.ListDatabases(ctx)
	if err != nil {
		return inv.backend("Failed to list databases", err)
	}

	return inv.respond(result)
}
