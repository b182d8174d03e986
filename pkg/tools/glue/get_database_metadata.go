package glue

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/theapemachine/mcp-server-glue-catalog/core"
	"github.com/theapemachine/mcp-server-glue-catalog/pkg/metrics"
	"github.com/theapemachine/mcp-server-glue-catalog/pkg/tools"
	"github.com/theapemachine/mcp-server-glue-catalog/pkg/tools/utils"
)

// GetDatabaseMetadataTool lists the tables of one database.
type GetDatabaseMetadataTool struct {
	*tools.BaseTool
	catalog Catalog
	metrics metrics.Recorder
}

// NewGetDatabaseMetadataTool creates the get_database_metadata tool.
func NewGetDatabaseMetadataTool(c Catalog, rec metrics.Recorder) core.Tool {
	handle := mcp.NewTool(
		"get_database_metadata",
		mcp.WithDescription("Get database metadata from an AWS Glue Data Catalog, including the tables in the database"),
		mcp.WithString(
			"database_name",
			mcp.Required(),
			mcp.Description("The database name"),
		),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithIdempotentHintAnnotation(true),
	)

	return &GetDatabaseMetadataTool{
		BaseTool: tools.NewBaseTool(handle.Name, handle),
		catalog:  c,
		metrics:  rec,
	}
}

// Handler executes the tool.
func (t *GetDatabaseMetadataTool) Handler(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	inv := begin(t.Name(), t.metrics)

	databaseName, err := utils.GetRequiredStringParam(request, "database_name")
	if err != nil {
		return inv.invalidParams(err)
	}

	inv.called()
	inv.logger.Info("Getting tables for database", "database", databaseName)

	result, err := t.catalog.GetDatabaseMetadata(ctx, databaseName)
	if err != nil {
		return inv.backend("Failed to get tables", err)
	}

	return inv.respond(result)
}
