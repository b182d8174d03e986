package glue

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/theapemachine/mcp-server-glue-catalog/core"
	"github.com/theapemachine/mcp-server-glue-catalog/pkg/metrics"
	"github.com/theapemachine/mcp-server-glue-catalog/pkg/tools"
	"github.com/theapemachine/mcp-server-glue-catalog/pkg/tools/utils"
)

// GetTableMetadataTool lists the columns of one table.
type GetTableMetadataTool struct {
	*tools.BaseTool
	catalog Catalog
	metrics metrics.Recorder
}

// NewGetTableMetadataTool creates the get_table_metadata tool.
func NewGetTableMetadataTool(c Catalog, rec metrics.Recorder) core.Tool {
	handle := mcp.NewTool(
		"get_table_metadata",
		mcp.WithDescription("Get table metadata from an AWS Glue Data Catalog, including the columns in the table"),
		mcp.WithString(
			"database_name",
			mcp.Required(),
			mcp.Description("The database name"),
		),
		mcp.WithString(
			"table_name",
			mcp.Required(),
			mcp.Description("The table name"),
		),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithIdempotentHintAnnotation(true),
	)

	return &GetTableMetadataTool{
		BaseTool: tools.NewBaseTool(handle.Name, handle),
		catalog:  c,
		metrics:  rec,
	}
}

// Handler executes the tool.
func (t *GetTableMetadataTool) Handler(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	inv := begin(t.Name(), t.metrics)

	databaseName, err := utils.GetRequiredStringParam(request, "database_name")
	if err != nil {
		return inv.invalidParams(err)
	}
	tableName, err := utils.GetRequiredStringParam(request, "table_name")
	if err != nil {
		return inv.invalidParams(err)
	}

	inv.called()
	inv.logger.Info("Getting columns for table", "database", databaseName, "table", tableName)

	result, err := t.catalog.GetTableMetadata(ctx, databaseName, tableName)
	if err != nil {
		return inv.backend("Failed to get table metadata", err)
	}

	inv.logger.Info("Got columns for table", "table", tableName, "columns", len(result.Columns))

	return inv.respond(result)
}
